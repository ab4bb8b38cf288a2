package scorecard

import (
	"fmt"
	"time"

	"scorecard/internal/domain/scoring"
)

const (
	FrequencyWeekly    = "weekly"
	FrequencyMonthly   = "monthly"
	FrequencyQuarterly = "quarterly"
)

// Submission is one employee's scorecard report for one reporting period.
// Submissions are immutable once stored; a later period supersedes, never
// mutates.
type Submission struct {
	ID                string             `json:"id,omitempty"`
	EmployeeEmail     string             `json:"employeeEmail"`
	EmployeeName      string             `json:"employeeName"`
	JobTitle          string             `json:"jobTitle"`
	Department        string             `json:"department"`
	Level             string             `json:"level,omitempty"`
	Year              int                `json:"year"`
	Month             int                `json:"month"`
	Week              int                `json:"week"`
	ProgressFrequency string             `json:"progressFrequency"`
	Quarter           string             `json:"quarter"`
	Scores            []scoring.LineItem `json:"scores"`
	Totals            scoring.Totals     `json:"totals"`
	SubmittedAt       time.Time          `json:"submittedAt,omitempty"`
}

// QuarterOf derives the quarter label from a calendar month.
func QuarterOf(month int) string {
	if month < 1 {
		return ""
	}
	return fmt.Sprintf("Q%d", (month+2)/3)
}

// QuarterMonths returns the calendar months covered by a quarter label, or
// nil for an unknown label.
func QuarterMonths(quarter string) []int {
	switch quarter {
	case "Q1":
		return []int{1, 2, 3}
	case "Q2":
		return []int{4, 5, 6}
	case "Q3":
		return []int{7, 8, 9}
	case "Q4":
		return []int{10, 11, 12}
	}
	return nil
}

// NormalizeRecord converts a loosely shaped upstream record (sheet export or
// API payload, either key casing) into a canonical Submission.
func NormalizeRecord(raw map[string]any) Submission {
	sub := Submission{
		EmployeeEmail:     scoring.Text(raw, "employeeEmail", "userEmail", "Email"),
		EmployeeName:      scoring.Text(raw, "name", "Name", "employeeName"),
		JobTitle:          scoring.Text(raw, "job", "Job", "jobTitle"),
		Department:        scoring.Text(raw, "division", "Division", "department"),
		Level:             scoring.Text(raw, "level", "Level"),
		ProgressFrequency: scoring.Text(raw, "progressFrequency", "ProgressFrequency"),
	}
	if year, ok := scoring.Integer(raw, "year", "Year"); ok {
		sub.Year = year
	}
	if month, ok := scoring.Integer(raw, "month", "Month"); ok {
		sub.Month = month
	}
	if week, ok := scoring.Integer(raw, "week", "Week"); ok {
		sub.Week = week
	}
	if sub.ProgressFrequency == "" {
		sub.ProgressFrequency = FrequencyWeekly
	}
	sub.Quarter = QuarterOf(sub.Month)
	if scores, present := firstPresent(raw, "scores", "Scores"); present {
		sub.Scores = scoring.NormalizeLineItems(scores)
	}
	return sub
}

func firstPresent(raw map[string]any, keys ...string) (any, bool) {
	for _, key := range keys {
		if value, ok := raw[key]; ok {
			return value, true
		}
	}
	return nil, false
}
