package progress

import (
	"math"
	"strings"

	"scorecard/internal/domain/scorecard"
	"scorecard/internal/domain/scoring"
)

// Weeks available for cumulative measures within one reporting window.
const (
	WeeksMonthly   = 4
	WeeksQuarterly = 13
)

// WeekEntry is one historical data point for a measure.
type WeekEntry struct {
	Week   int     `json:"week"`
	Actual float64 `json:"actual"`
	Rating float64 `json:"rating"`
}

// Summary describes progress-to-date for a cumulative measure against its
// target over the supplied history window.
type Summary struct {
	CumulativeTotal float64     `json:"cumulativeTotal"`
	ProgressPercent float64     `json:"progressPercent"`
	Remaining       float64     `json:"remaining"`
	WeeksRemaining  int         `json:"weeksRemaining"`
	AverageRating   float64     `json:"averageRating"`
	Breakdown       []WeekEntry `json:"weeklyBreakdown"`
}

// CumulativeTotal sums the actuals recorded for a measure across the
// history window.
func CumulativeTotal(history []scorecard.Submission, dimension, measure string) float64 {
	total := 0.0
	for _, entry := range history {
		for _, score := range entry.Scores {
			if score.Dimension == dimension && score.Measure == measure {
				total += score.Actual
			}
		}
	}
	return total
}

// AverageRating averages the recorded ratings for a measure, skipping the
// 0 not-yet-measured sentinel. Display only; it never feeds scoring.
func AverageRating(history []scorecard.Submission, dimension, measure string) float64 {
	total, count := 0.0, 0
	for _, entry := range history {
		for _, score := range entry.Scores {
			if score.Dimension == dimension && score.Measure == measure && score.Rating > 0 {
				total += score.Rating
				count++
			}
		}
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}

// WeeklyBreakdown lists the per-week actual and rating for a measure in
// history order.
func WeeklyBreakdown(history []scorecard.Submission, dimension, measure string) []WeekEntry {
	var breakdown []WeekEntry
	for _, entry := range history {
		for _, score := range entry.Scores {
			if score.Dimension == dimension && score.Measure == measure {
				breakdown = append(breakdown, WeekEntry{
					Week:   entry.Week,
					Actual: score.Actual,
					Rating: score.Rating,
				})
			}
		}
	}
	return breakdown
}

// CurrentRating scores a cumulative measure for the period being entered:
// the rating reflects progress-to-date including this week's increment, not
// the increment alone.
func CurrentRating(target, cumulativeSoFar, thisWeek float64) float64 {
	return scoring.AchievementRating(target, cumulativeSoFar+thisWeek)
}

// Summarize rolls a measure's history up against its target. frequency
// follows the target entry ("Monthly"/"Quarterly", any casing); monthly
// framing allows 4 weekly entries, quarterly 13.
func Summarize(history []scorecard.Submission, dimension, measure string, target float64, frequency string) Summary {
	summary := Summary{
		CumulativeTotal: CumulativeTotal(history, dimension, measure),
		AverageRating:   AverageRating(history, dimension, measure),
		Breakdown:       WeeklyBreakdown(history, dimension, measure),
	}

	if target > 0 {
		summary.ProgressPercent = math.Min(100, summary.CumulativeTotal/target*100)
		summary.Remaining = math.Max(0, target-summary.CumulativeTotal)
	}

	weeksInPeriod := WeeksMonthly
	if strings.EqualFold(frequency, "quarterly") {
		weeksInPeriod = WeeksQuarterly
	}
	summary.WeeksRemaining = weeksInPeriod - len(history)
	if summary.WeeksRemaining < 0 {
		summary.WeeksRemaining = 0
	}

	return summary
}
