package review

import (
	"fmt"
	"time"
)

// Fallback lines used when a bucket comes up empty.
const (
	noStrengths    = "No significant strengths identified this period"
	noImprovements = "Continue maintaining current performance levels"
	noGoals        = "Set specific, measurable goals for next review period"

	insufficientData = "Insufficient data for AI-generated review."
)

// Classification thresholds on the 1-5 rating scale.
const (
	strengthThreshold    = 4.0
	improvementThreshold = 3.0
	goalThreshold        = 3.5
	maxGoalDimensions    = 3
)

// PeriodReview generates the quarterly or yearly review. Everything is
// deterministic: buckets by threshold, goals from the per-dimension
// templates, and a narrative chosen purely by score band.
func PeriodReview(in Input, periodType string) Result {
	label := "this quarter"
	if periodType == PeriodYearly {
		label = "this year"
	}
	return synthesize(in, label, "")
}

// MonthlyReview is the monthly variant, labelled with its calendar month.
func MonthlyReview(in Input, month, year int) Result {
	result := synthesize(in, "this month", "")
	if len(in.Scores) > 0 && month >= 1 && month <= 12 {
		result.MonthYear = fmt.Sprintf("%s %d", time.Month(month).String(), year)
	}
	return result
}

func synthesize(in Input, periodLabel, monthYear string) Result {
	if len(in.Scores) == 0 {
		return Result{
			Summary:      insufficientData,
			Strengths:    []string{},
			Improvements: []string{},
			Goals:        []string{},
			Score:        "0.00",
		}
	}

	total := 0.0
	for _, score := range in.Scores {
		total += score.Rating
	}
	average := total / float64(len(in.Scores))

	var strengths, improvements []string
	var weakDimensions []string
	seenDimension := make(map[string]bool)

	for _, score := range in.Scores {
		if score.Rating >= strengthThreshold {
			strengths = append(strengths,
				fmt.Sprintf("%s: Consistently strong performance with rating of %.1f", score.Measure, score.Rating))
		}
		if score.Rating < improvementThreshold {
			improvements = append(improvements,
				fmt.Sprintf("%s: Requires attention, current rating %.1f", score.Measure, score.Rating))
		}
		if score.Rating < goalThreshold && !seenDimension[score.Dimension] {
			seenDimension[score.Dimension] = true
			weakDimensions = append(weakDimensions, score.Dimension)
		}
	}

	var goals []string
	for i, dimension := range weakDimensions {
		if i == maxGoalDimensions {
			break
		}
		if suggestions := GoalSuggestions(average, dimension); len(suggestions) > 0 {
			goals = append(goals, suggestions[0])
		}
	}

	if len(strengths) == 0 {
		strengths = []string{noStrengths}
	}
	if len(improvements) == 0 {
		improvements = []string{noImprovements}
	}
	if len(goals) == 0 {
		goals = []string{noGoals}
	}

	overall := narrative(in.Name, average, periodLabel)
	return Result{
		Summary:      overall,
		Strengths:    strengths,
		Improvements: improvements,
		Goals:        goals,
		Overall:      overall,
		Score:        fmt.Sprintf("%.2f", average),
		MonthYear:    monthYear,
	}
}

// narrative picks the fixed template for the employee's score band.
func narrative(name string, average float64, periodLabel string) string {
	switch {
	case average >= 4.5:
		return fmt.Sprintf("%s has demonstrated exceptional performance %s with an average score of %.2f. Their consistent excellence across multiple dimensions makes them a valuable asset to the team.", name, periodLabel, average)
	case average >= 3.5:
		return fmt.Sprintf("%s shows strong performance %s with an average score of %.2f. They consistently meet expectations and demonstrate reliability in their responsibilities.", name, periodLabel, average)
	case average >= 3.0:
		return fmt.Sprintf("%s meets baseline expectations with an average score of %.2f. There are opportunities for growth and development in several areas.", name, average)
	default:
		return fmt.Sprintf("%s's performance %s (%.2f) indicates a need for focused improvement. Let's schedule a detailed discussion to address challenges and provide necessary support.", name, periodLabel, average)
	}
}
