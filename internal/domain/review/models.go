package review

import "scorecard/internal/domain/scoring"

const (
	PeriodQuarterly = "quarterly"
	PeriodYearly    = "yearly"
)

// Input is the consistent snapshot a review is generated from: the
// employee's display name and every score line item inside the review
// window. Callers own fetching and filtering; generation is pure.
type Input struct {
	Name   string
	Scores []scoring.LineItem
}

// Result is the generated review. Score is the plain unweighted mean of
// ratings, deliberately distinct from the weighted scorecard total: the
// review narrates the rating distribution, not the weighted outcome.
type Result struct {
	Summary      string   `json:"summary"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
	Goals        []string `json:"goals"`
	Overall      string   `json:"overall"`
	Score        string   `json:"score"`
	MonthYear    string   `json:"monthYear,omitempty"`
}
