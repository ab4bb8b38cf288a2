package scoring

import "math"

// Aggregate sums the weighted contributions and weights of a submission's
// line items. It does not validate; call ValidateWeights before persisting.
func Aggregate(items []LineItem) Totals {
	var totals Totals
	for _, item := range items {
		totals.WeightedScore += WeightedValue(item.Rating, item.Weight)
		totals.Weight += item.Weight
	}
	totals.WeightedScore = Round2(totals.WeightedScore)
	return totals
}

// ValidateWeights enforces the submit-time weight rules: no blank weight on
// any line item, and a total of exactly 100% within WeightTolerance. A
// failing submission is rejected whole; there is no partial save.
func ValidateWeights(items []LineItem) error {
	total := 0.0
	for _, item := range items {
		if !item.HasWeight {
			return ErrIncompleteWeights
		}
		total += item.Weight
	}
	// the sum is a plain float64, so weights like 50.01+50 land at
	// 100.00999... and pass the tolerance check
	if math.Abs(total-100) > WeightTolerance {
		return &WeightSumError{Total: total}
	}
	return nil
}

// Recalculate rederives rating and weighted value for each line item from
// its target/actual pair, overriding whatever the caller supplied. Peer
// review items keep their externally supplied rating.
func Recalculate(items []LineItem) []LineItem {
	out := make([]LineItem, len(items))
	for i, item := range items {
		if item.Measure != MeasurePeerReview {
			if item.IsFinancial {
				item.Rating = FinancialRating(item.Target, item.Actual)
			} else {
				item.Rating = AchievementRating(item.Target, item.Actual)
			}
		}
		item.Weighted = WeightedValue(item.Rating, item.Weight)
		out[i] = item
	}
	return out
}
