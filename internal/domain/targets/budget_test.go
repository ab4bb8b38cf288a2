package targets

import (
	"errors"
	"strings"
	"testing"
)

func balancedTargets() []Target {
	return []Target{
		{Dimension: "Financial", Measure: "Budget Utilization", TargetValue: 10000, Weight: 15, Frequency: "monthly"},
		{Dimension: "Customer", Measure: "Customer Satisfaction", TargetValue: 90, Weight: 5, Frequency: "quarterly"},
		{Dimension: "Internal Process", Measure: "Reports Delivered", TargetValue: 12, Weight: 45, Frequency: "weekly"},
		{Dimension: "Internal Process", Measure: "Process Automation", TargetValue: 2, Weight: 5, Frequency: "quarterly"},
		{Dimension: "Learning & Growth", Measure: "Training Hours", TargetValue: 20, Weight: 5, Frequency: "monthly"},
	}
}

func TestCheckBudgetBalanced(t *testing.T) {
	report := CheckBudget(balancedTargets())

	if !report.Balanced {
		t.Fatalf("expected balanced report, got total %.2f", report.TotalWeight)
	}
	if report.TotalWeight != 100 {
		t.Fatalf("expected total 100 including peer review, got %.2f", report.TotalWeight)
	}
	if report.PeerReview != 25 {
		t.Fatalf("expected automatic 25%% peer review share, got %.2f", report.PeerReview)
	}
	if err := ValidateBudget(report); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
	if len(report.Lines) != 4 {
		t.Fatalf("expected 4 dimension lines, got %d", len(report.Lines))
	}
	if report.Lines[1].Label != "External Customer" {
		t.Fatalf("expected Customer relabeled External Customer, got %q", report.Lines[1].Label)
	}
}

func TestCheckBudgetDimensionCeiling(t *testing.T) {
	items := balancedTargets()
	items[0].Weight = 20 // Financial over its 15% cap

	report := CheckBudget(items)
	err := ValidateBudget(report)
	if err == nil {
		t.Fatal("expected budget exceeded error")
	}
	var exceeded *BudgetExceededError
	if !errors.As(err, &exceeded) {
		t.Fatalf("expected *BudgetExceededError, got %T", err)
	}
	if len(exceeded.Lines) != 1 || exceeded.Lines[0].Dimension != "Financial" {
		t.Fatalf("unexpected violations: %+v", exceeded.Lines)
	}
	if !strings.Contains(err.Error(), "Financial: 20% exceeds limit of 15%") {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestCheckBudgetCeilingBeatsTotal(t *testing.T) {
	// Both a ceiling violation and a wrong total: the ceiling is reported.
	items := balancedTargets()
	items[0].Weight = 30

	err := ValidateBudget(CheckBudget(items))
	var exceeded *BudgetExceededError
	if !errors.As(err, &exceeded) {
		t.Fatalf("expected ceiling violation first, got %v", err)
	}
}

func TestCheckBudgetShortfall(t *testing.T) {
	items := balancedTargets()
	items[2].Weight = 40 // total drops to 95

	report := CheckBudget(items)
	if report.Balanced {
		t.Fatal("expected unbalanced report")
	}
	if report.Shortfall != 5 {
		t.Fatalf("expected shortfall 5, got %.2f", report.Shortfall)
	}

	err := ValidateBudget(report)
	var total *TotalWeightError
	if !errors.As(err, &total) {
		t.Fatalf("expected *TotalWeightError, got %v", err)
	}
	if total.Total != 95 {
		t.Fatalf("expected total 95, got %.2f", total.Total)
	}
}

func TestCheckBudgetTolerance(t *testing.T) {
	items := balancedTargets()
	items[2].Weight = 45.009 // within the 0.01 tolerance

	if report := CheckBudget(items); !report.Balanced {
		t.Fatalf("expected 100.009 within tolerance, got total %.3f", report.TotalWeight)
	}
}

func TestCheckBudgetSkipsIncompleteRows(t *testing.T) {
	items := append(balancedTargets(), Target{Dimension: "Financial", Weight: 90})

	report := CheckBudget(items)
	if !report.Balanced {
		t.Fatalf("expected incomplete row ignored, got total %.2f", report.TotalWeight)
	}
}

func TestCheckBudgetEmpty(t *testing.T) {
	report := CheckBudget(nil)
	if report.TotalWeight != 25 {
		t.Fatalf("expected only the fixed peer review share, got %.2f", report.TotalWeight)
	}
	if report.Shortfall != 75 {
		t.Fatalf("expected shortfall 75, got %.2f", report.Shortfall)
	}
}
