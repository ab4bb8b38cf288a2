package scorecard

import (
	"strings"
	"testing"

	"scorecard/internal/domain/scoring"
)

func validSubmission() Submission {
	return Submission{
		EmployeeEmail:     "ada@example.org",
		EmployeeName:      "Ada Example",
		Department:        "Programs",
		Year:              2026,
		Month:             5,
		Week:              2,
		ProgressFrequency: FrequencyWeekly,
		Scores: []scoring.LineItem{
			{Dimension: scoring.DimensionFinancial, Measure: "Budget Management", Rating: 3, Weight: 10, HasWeight: true},
			{Dimension: scoring.DimensionCustomer, Measure: scoring.MeasurePeerReview, Rating: 4, Weight: 25, HasWeight: true},
			{Dimension: scoring.DimensionCustomer, Measure: "External Customer Satisfaction", Rating: 3, Weight: 5, HasWeight: true},
			{Dimension: scoring.DimensionInternalProcess, Measure: "Process Improvement", Rating: 3, Weight: 50, HasWeight: true},
			{Dimension: scoring.DimensionLearningGrowth, Measure: "Training Hours", Rating: 3, Weight: 10, HasWeight: true},
		},
	}
}

func TestValidateSubmissionAccepts(t *testing.T) {
	if issues := ValidateSubmission(validSubmission()); len(issues) != 0 {
		t.Fatalf("expected no issues, got %v", issues)
	}
}

func TestValidateSubmissionWeightSum(t *testing.T) {
	sub := validSubmission()
	sub.Scores[0].Weight = 9.99

	issues := ValidateSubmission(sub)
	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %v", issues)
	}
	if !strings.Contains(issues[0].Reason, "99.99") {
		t.Fatalf("expected actual total in message, got %q", issues[0].Reason)
	}
}

func TestValidateSubmissionBlankWeight(t *testing.T) {
	sub := validSubmission()
	sub.Scores[3].HasWeight = false

	issues := ValidateSubmission(sub)
	if len(issues) != 1 || !strings.Contains(issues[0].Reason, "weight") {
		t.Fatalf("expected incomplete weight issue, got %v", issues)
	}
}

func TestValidateSubmissionRequiredFields(t *testing.T) {
	sub := validSubmission()
	sub.EmployeeEmail = ""
	sub.Month = 13
	sub.ProgressFrequency = "daily"

	issues := ValidateSubmission(sub)
	if len(issues) != 3 {
		t.Fatalf("expected 3 issues, got %v", issues)
	}
}

func TestQuarterOf(t *testing.T) {
	cases := map[int]string{1: "Q1", 3: "Q1", 4: "Q2", 9: "Q3", 10: "Q4", 12: "Q4"}
	for month, want := range cases {
		if got := QuarterOf(month); got != want {
			t.Fatalf("month %d: expected %s, got %s", month, want, got)
		}
	}
}

func TestNormalizeRecordAliases(t *testing.T) {
	sub := NormalizeRecord(map[string]any{
		"Email":    "ada@example.org",
		"Name":     "Ada Example",
		"Division": "Programs",
		"Year":     "2026",
		"Month":    "2",
		"Week":     float64(3),
		"Scores":   `[{"dimension":"Learning & Growth","measure":"Training Hours","target":"40","actual":"10","rating":"1.5","weight":"10"}]`,
	})

	if sub.Year != 2026 || sub.Month != 2 || sub.Week != 3 {
		t.Fatalf("unexpected period: %+v", sub)
	}
	if sub.Quarter != "Q1" {
		t.Fatalf("expected derived quarter Q1, got %s", sub.Quarter)
	}
	if sub.ProgressFrequency != FrequencyWeekly {
		t.Fatalf("expected weekly default, got %s", sub.ProgressFrequency)
	}
	if len(sub.Scores) != 1 || sub.Scores[0].Weight != 10 {
		t.Fatalf("unexpected scores: %+v", sub.Scores)
	}
}
