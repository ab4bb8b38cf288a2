package scorecard

import (
	"fmt"
	"strings"

	"scorecard/internal/domain/scoring"
)

// Issue is one field-level validation failure on a submission.
type Issue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidateSubmission applies the submit-time rules: required identity and
// period fields, a known frequency, and the weight rules from the scoring
// engine. It returns every issue found; an empty slice means the submission
// may be persisted.
func ValidateSubmission(sub Submission) []Issue {
	var issues []Issue
	add := func(field, reason string) {
		issues = append(issues, Issue{Field: field, Reason: reason})
	}

	if strings.TrimSpace(sub.EmployeeEmail) == "" {
		add("employeeEmail", "is required")
	}
	if strings.TrimSpace(sub.EmployeeName) == "" {
		add("employeeName", "is required")
	}
	if strings.TrimSpace(sub.Department) == "" {
		add("department", "is required")
	}
	if sub.Year < 2000 || sub.Year > 2100 {
		add("year", "must be a valid year")
	}
	if sub.Month < 1 || sub.Month > 12 {
		add("month", "must be between 1 and 12")
	}
	switch sub.ProgressFrequency {
	case FrequencyWeekly:
		if sub.Week < 1 || sub.Week > 5 {
			add("week", "must be between 1 and 5 for weekly progress")
		}
	case FrequencyMonthly, FrequencyQuarterly:
		// week defaults to 1; nothing to check
	default:
		add("progressFrequency", "must be weekly, monthly or quarterly")
	}
	if len(sub.Scores) == 0 {
		add("scores", "at least one score line item is required")
	}

	if err := scoring.ValidateWeights(sub.Scores); err != nil {
		add("scores", err.Error())
	}

	return issues
}

// PeriodKey identifies the uniqueness scope of a submission.
func PeriodKey(sub Submission) string {
	return fmt.Sprintf("%s/%d/%d/%d", strings.ToLower(sub.EmployeeEmail), sub.Year, sub.Month, sub.Week)
}
