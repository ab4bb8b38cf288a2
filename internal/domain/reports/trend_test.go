package reports

import (
	"testing"

	"scorecard/internal/domain/scorecard"
	"scorecard/internal/domain/scoring"
)

func submission(year, month, week int, items ...scoring.LineItem) scorecard.Submission {
	var totals scoring.Totals
	for _, item := range items {
		totals.WeightedScore += item.Weighted
		totals.Weight += item.Weight
	}
	return scorecard.Submission{
		EmployeeEmail: "jordan@example.org",
		Year:          year, Month: month, Week: week,
		Quarter: scorecard.QuarterOf(month),
		Scores:  items,
		Totals:  totals,
	}
}

func TestPrepareChartDataTrendOrder(t *testing.T) {
	records := []scorecard.Submission{
		submission(2026, 2, 1, scoring.LineItem{Dimension: "Financial", Rating: 4, Weight: 15, Weighted: 0.6}),
		submission(2026, 1, 2, scoring.LineItem{Dimension: "Financial", Rating: 3, Weight: 15, Weighted: 0.45}),
		submission(2026, 1, 1, scoring.LineItem{Dimension: "Financial", Rating: 5, Weight: 15, Weighted: 0.75}),
	}

	data := PrepareChartData(records)
	if data == nil || len(data.Trend) != 3 {
		t.Fatalf("expected 3 trend points, got %+v", data)
	}
	if data.Trend[0].Label != "2026-01 W1" || data.Trend[2].Label != "2026-02 W1" {
		t.Fatalf("expected chronological order, got %q .. %q", data.Trend[0].Label, data.Trend[2].Label)
	}
	if data.Trend[0].Score != 0.75 {
		t.Fatalf("expected first score 0.75, got %v", data.Trend[0].Score)
	}
}

func TestPrepareChartDataDimensionAverages(t *testing.T) {
	records := []scorecard.Submission{
		submission(2026, 1, 1,
			scoring.LineItem{Dimension: "Financial", Rating: 4},
			scoring.LineItem{Dimension: "Customer", Rating: 0}, // sentinel, excluded
			scoring.LineItem{Dimension: "Internal Process", Rating: 3.5},
		),
		submission(2026, 1, 2,
			scoring.LineItem{Dimension: "Financial", Rating: 3},
			scoring.LineItem{Dimension: "Internal Process", Rating: 4.5},
		),
	}

	data := PrepareChartData(records)
	if len(data.Dimensions) != 2 {
		t.Fatalf("expected 2 dimensions with data, got %+v", data.Dimensions)
	}
	if data.Dimensions[0].Dimension != "Financial" || data.Dimensions[0].Score != 3.5 {
		t.Fatalf("unexpected financial average: %+v", data.Dimensions[0])
	}
	if data.Dimensions[1].Dimension != "Internal Process" || data.Dimensions[1].Score != 4 {
		t.Fatalf("unexpected internal process average: %+v", data.Dimensions[1])
	}
}

func TestPrepareChartDataEmpty(t *testing.T) {
	if data := PrepareChartData(nil); data != nil {
		t.Fatalf("expected nil for no records, got %+v", data)
	}
}

func TestBuildDashboardStats(t *testing.T) {
	records := []scorecard.Submission{
		submission(2026, 1, 3, scoring.LineItem{Dimension: "Financial", Rating: 4, Weighted: 3.2}),
		submission(2026, 1, 2, scoring.LineItem{Dimension: "Financial", Rating: 3, Weighted: 2.8}),
		submission(2026, 1, 1, scoring.LineItem{Dimension: "Financial", Rating: 5, Weighted: 4.5}),
	}

	dash := BuildDashboard(records)
	if dash.Submissions != 3 {
		t.Fatalf("expected 3 submissions, got %d", dash.Submissions)
	}
	if dash.AverageScore != 3.5 {
		t.Fatalf("expected average 3.5, got %v", dash.AverageScore)
	}
	if dash.BestScore != 4.5 || dash.LowestScore != 2.8 {
		t.Fatalf("unexpected best/lowest: %v/%v", dash.BestScore, dash.LowestScore)
	}
	if dash.Charts == nil {
		t.Fatal("expected chart data")
	}
}

func TestBuildDashboardEmpty(t *testing.T) {
	dash := BuildDashboard(nil)
	if dash.Submissions != 0 || dash.Charts != nil {
		t.Fatalf("expected zero dashboard, got %+v", dash)
	}
}

func TestBuildQuarterlyReviewAggregation(t *testing.T) {
	records := []scorecard.Submission{
		submission(2026, 1, 1,
			scoring.LineItem{Dimension: "Financial", Measure: "Budget Management", Rating: 4, Actual: 800, Target: 1000, Weight: 15},
			scoring.LineItem{Dimension: "Internal Process", Measure: "Reports Delivered", Rating: 3, Actual: 10, Target: 12, Weight: 50},
		),
		submission(2026, 2, 1,
			scoring.LineItem{Dimension: "Financial", Measure: "Budget Management", Rating: 3, Actual: 1000, Target: 1000, Weight: 15},
		),
	}

	review := BuildQuarterlyReview("jordan@example.org", "Jordan", 2026, "Q1", records)
	if review.Submissions != 2 {
		t.Fatalf("expected 2 submissions, got %d", review.Submissions)
	}
	if review.FrequencyCounts[scorecard.FrequencyWeekly] != 2 {
		t.Fatalf("expected blank frequency counted as weekly, got %+v", review.FrequencyCounts)
	}
	if len(review.Measures) != 2 {
		t.Fatalf("expected 2 measures, got %d", len(review.Measures))
	}

	budget := review.Measures[0]
	if budget.Measure != "Budget Management" {
		t.Fatalf("expected first-appearance order, got %q first", budget.Measure)
	}
	if budget.AvgRating != 3.5 || budget.TotalActual != 1800 || budget.AvgTarget != 1000 {
		t.Fatalf("unexpected aggregates: %+v", budget)
	}
	// 3.5 * 15 / 100
	if budget.WeightedScore != 0.53 {
		t.Fatalf("expected weighted 0.53, got %v", budget.WeightedScore)
	}
	if budget.Entries != 2 {
		t.Fatalf("expected 2 entries, got %d", budget.Entries)
	}

	// 0.53 + round2(3*50/100)=1.5 -> 2.03
	if review.TotalWeightedScore != 2.03 {
		t.Fatalf("expected total 2.03, got %v", review.TotalWeightedScore)
	}
}

func TestBuildQuarterlyReviewEmpty(t *testing.T) {
	review := BuildQuarterlyReview("jordan@example.org", "Jordan", 2026, "Q3", nil)
	if review.Submissions != 0 || len(review.Measures) != 0 || review.TotalWeightedScore != 0 {
		t.Fatalf("expected empty review, got %+v", review)
	}
}
