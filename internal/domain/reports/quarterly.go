package reports

import (
	"scorecard/internal/domain/scorecard"
	"scorecard/internal/domain/scoring"
)

// BuildQuarterlyReview aggregates a quarter's submissions per measure:
// average rating, summed actuals, averaged targets and weights, and the
// weighted score derived from the averages. Measures keep first-appearance
// order so the review reads in scorecard order.
func BuildQuarterlyReview(employeeEmail, employeeName string, year int, quarter string, records []scorecard.Submission) QuarterlyReview {
	review := QuarterlyReview{
		EmployeeEmail:   employeeEmail,
		EmployeeName:    employeeName,
		Year:            year,
		Quarter:         quarter,
		Submissions:     len(records),
		FrequencyCounts: make(map[string]int),
	}

	type accumulator struct {
		dimension string
		measure   string
		ratings   []float64
		actuals   []float64
		targets   []float64
		weights   []float64
	}
	byMeasure := make(map[string]*accumulator)
	var order []string

	for _, rec := range records {
		freq := rec.ProgressFrequency
		if freq == "" {
			freq = scorecard.FrequencyWeekly
		}
		review.FrequencyCounts[freq]++

		for _, item := range rec.Scores {
			key := item.Dimension + "_" + item.Measure
			acc, ok := byMeasure[key]
			if !ok {
				acc = &accumulator{dimension: item.Dimension, measure: item.Measure}
				byMeasure[key] = acc
				order = append(order, key)
			}
			acc.ratings = append(acc.ratings, item.Rating)
			acc.actuals = append(acc.actuals, item.Actual)
			acc.targets = append(acc.targets, item.Target)
			acc.weights = append(acc.weights, item.Weight)
		}
	}

	var total float64
	for _, key := range order {
		acc := byMeasure[key]
		avgRating := mean(acc.ratings)
		avgWeight := mean(acc.weights)
		weighted := scoring.Round2(avgRating * avgWeight / 100)

		review.Measures = append(review.Measures, MeasureSummary{
			Dimension:     acc.dimension,
			Measure:       acc.measure,
			AvgRating:     scoring.Round2(avgRating),
			TotalActual:   scoring.Round2(sum(acc.actuals)),
			AvgTarget:     scoring.Round2(mean(acc.targets)),
			AvgWeight:     scoring.Round1(avgWeight),
			WeightedScore: weighted,
			Entries:       len(acc.ratings),
		})
		total += weighted
	}
	review.TotalWeightedScore = scoring.Round2(total)
	return review
}

func sum(values []float64) float64 {
	var s float64
	for _, v := range values {
		s += v
	}
	return s
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return sum(values) / float64(len(values))
}
