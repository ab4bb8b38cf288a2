package progress

import (
	"testing"

	"scorecard/internal/domain/scorecard"
	"scorecard/internal/domain/scoring"
)

func historyWith(actuals ...float64) []scorecard.Submission {
	history := make([]scorecard.Submission, len(actuals))
	for i, actual := range actuals {
		history[i] = scorecard.Submission{
			Week: i + 1,
			Scores: []scoring.LineItem{{
				Dimension: scoring.DimensionInternalProcess,
				Measure:   "Process Improvement",
				Actual:    actual,
				Rating:    scoring.AchievementRating(25, actual),
			}},
		}
	}
	return history
}

func TestCumulativeTotalAndProgress(t *testing.T) {
	history := historyWith(10, 15)
	summary := Summarize(history, scoring.DimensionInternalProcess, "Process Improvement", 25, "Monthly")

	if summary.CumulativeTotal != 25 {
		t.Fatalf("expected cumulative 25 after 2 weeks, got %v", summary.CumulativeTotal)
	}
	if summary.ProgressPercent != 100 {
		t.Fatalf("expected 100%% progress, got %v", summary.ProgressPercent)
	}
	if summary.WeeksRemaining != 2 {
		t.Fatalf("expected 2 weeks remaining of 4, got %v", summary.WeeksRemaining)
	}
}

func TestProgressClampedAboveTarget(t *testing.T) {
	history := historyWith(10, 15, 5)
	summary := Summarize(history, scoring.DimensionInternalProcess, "Process Improvement", 25, "Monthly")

	if summary.CumulativeTotal != 30 {
		t.Fatalf("expected cumulative 30 after 3 weeks, got %v", summary.CumulativeTotal)
	}
	if summary.ProgressPercent != 100 {
		t.Fatalf("expected progress clamped at 100, got %v", summary.ProgressPercent)
	}
	if summary.Remaining != 0 {
		t.Fatalf("expected nothing remaining, got %v", summary.Remaining)
	}
}

func TestQuarterlyFramingWeeks(t *testing.T) {
	summary := Summarize(historyWith(5), scoring.DimensionInternalProcess, "Process Improvement", 25, "Quarterly")
	if summary.WeeksRemaining != 12 {
		t.Fatalf("expected 12 of 13 weeks remaining, got %v", summary.WeeksRemaining)
	}
}

func TestCurrentRatingUsesProgressToDate(t *testing.T) {
	// 20 so far + 5 this week exactly meets a target of 25.
	if got := CurrentRating(25, 20, 5); got != 3.0 {
		t.Fatalf("expected 3.0 for meeting target to date, got %v", got)
	}
	// only this week's increment would rate far lower
	if got := CurrentRating(25, 0, 5); got != 1.4 {
		t.Fatalf("expected 1.4 for 5 of 25, got %v", got)
	}
}

func TestAverageRatingSkipsSentinel(t *testing.T) {
	history := historyWith(10, 15)
	history = append(history, scorecard.Submission{
		Week: 3,
		Scores: []scoring.LineItem{{
			Dimension: scoring.DimensionInternalProcess,
			Measure:   "Process Improvement",
			Actual:    0,
			Rating:    0,
		}},
	})

	withSentinel := AverageRating(history, scoring.DimensionInternalProcess, "Process Improvement")
	withoutSentinel := AverageRating(history[:2], scoring.DimensionInternalProcess, "Process Improvement")
	if withSentinel != withoutSentinel {
		t.Fatalf("sentinel ratings must not drag the average: %v vs %v", withSentinel, withoutSentinel)
	}
}

func TestWeeklyBreakdownOrder(t *testing.T) {
	breakdown := WeeklyBreakdown(historyWith(10, 15, 5), scoring.DimensionInternalProcess, "Process Improvement")
	if len(breakdown) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(breakdown))
	}
	for i, entry := range breakdown {
		if entry.Week != i+1 {
			t.Fatalf("expected week %d at position %d, got %d", i+1, i, entry.Week)
		}
	}
}
