package scorecard

import "scorecard/internal/domain/scoring"

// TemplateLine is one pre-filled row of the default scorecard layout.
type TemplateLine struct {
	Dimension string  `json:"dimension"`
	Measure   string  `json:"measure"`
	Type      string  `json:"type,omitempty"`
	Weight    float64 `json:"weight"`
	ReadOnly  bool    `json:"readonly,omitempty"`
}

// DefaultTemplate returns the starting scorecard layout shown before a
// manager has set targets. The peer-review line is fixed; everything else
// is a suggestion the employee or manager edits.
func DefaultTemplate() []TemplateLine {
	return []TemplateLine{
		{Dimension: scoring.DimensionFinancial, Measure: "Budget Management", Type: "financial", Weight: 10},
		{Dimension: scoring.DimensionCustomer, Measure: scoring.MeasurePeerReview, Type: "peer-review", Weight: scoring.PeerReviewWeight, ReadOnly: true},
		{Dimension: scoring.DimensionCustomer, Measure: "External Customer Satisfaction", Weight: 5},
		{Dimension: scoring.DimensionInternalProcess, Measure: "Process Improvement", Weight: 50},
		{Dimension: scoring.DimensionLearningGrowth, Measure: "Training Hours", Weight: 10},
	}
}
