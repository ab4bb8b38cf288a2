package peerfeedback

import "scorecard/internal/domain/scoring"

// Combine reduces the independent peer records for one employee and quarter
// to a single (count, average) pair. Every reviewer and every core value
// carries equal weight: each record contributes its mean across the seven
// values, and the aggregate is the mean of those means, rounded to two
// decimals.
func Combine(records []Record) Aggregate {
	if len(records) == 0 {
		return Aggregate{}
	}

	total := 0.0
	for _, record := range records {
		total += recordMean(record)
	}

	return Aggregate{
		Count:        len(records),
		AverageScore: scoring.Round2(total / float64(len(records))),
	}
}

func recordMean(record Record) float64 {
	if len(record.Ratings) == 0 {
		return 0
	}
	sum, count := 0.0, 0
	for _, key := range CoreValueKeys {
		if rating, ok := record.Ratings[key]; ok {
			sum += rating
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}
