package recognition

import (
	"time"

	"scorecard/internal/domain/scoring"
)

const (
	AwardMonth   = "Employee of the Month"
	AwardQuarter = "Employee of the Quarter"
	AwardYear    = "Employee of the Year"

	// Department used when an organization-wide winner has no department of
	// their own on record.
	OrganizationWide = "Organization-Wide"
)

// Candidate is one employee's scored history within the award period,
// assembled by the caller (a consistent snapshot, not live state).
type Candidate struct {
	Email             string             `json:"email"`
	Name              string             `json:"name"`
	Department        string             `json:"department"`
	Scores            []scoring.LineItem `json:"scores"`
	PeerFeedbackScore float64            `json:"peerFeedbackScore"`
}

// Ranked is a candidate with their computed recognition score.
type Ranked struct {
	Candidate
	RecognitionScore float64 `json:"recognitionScore"`
	DataPoints       int     `json:"dataPoints"`
}

// Recognition is a computed award. The full set is replaced on every
// recompute; there is no incremental update.
type Recognition struct {
	ID              string    `json:"id,omitempty"`
	EmployeeEmail   string    `json:"employeeEmail"`
	EmployeeName    string    `json:"employeeName"`
	Award           string    `json:"award"`
	Department      string    `json:"department"`
	Period          string    `json:"period"`
	Score           float64   `json:"score"`
	Rank            int       `json:"rank"`
	TotalCandidates int       `json:"totalCandidates"`
	ComputedAt      time.Time `json:"computedAt,omitempty"`
}
