package scoring

import "math"

// FinancialRating scores a budget measure. Spending under target is
// rewarded, overspend penalized, symmetric around 3.0 per unit of relative
// deviation. A zero target or zero actual means the measure has not been
// assessed yet and yields the 0 sentinel, not a low score.
func FinancialRating(targetBudget, actualSpent float64) float64 {
	if !positive(targetBudget) || !positive(actualSpent) {
		return 0
	}

	rating := RatingTarget
	if actualSpent < targetBudget {
		rating = RatingTarget + 2.0*((targetBudget-actualSpent)/targetBudget)
	} else if actualSpent > targetBudget {
		rating = RatingTarget - 2.0*((actualSpent-targetBudget)/targetBudget)
	}

	return Round1(clamp(rating))
}

// AchievementRating scores a higher-is-better measure. Meeting target
// exactly is 3.0; over- and under-achievement scale identically and are
// clamped to the 1.0-5.0 band.
func AchievementRating(target, actual float64) float64 {
	if !positive(target) || !positive(actual) {
		return 0
	}

	rating := RatingTarget
	if actual >= target {
		rating = RatingTarget + 2.0*((actual-target)/target)
	} else {
		rating = RatingTarget - 2.0*((target-actual)/target)
	}

	return Round1(clamp(rating))
}

// WeightedValue is a line item's contribution to the submission total.
func WeightedValue(rating, weight float64) float64 {
	return Round2(rating * weight / 100)
}

func clamp(rating float64) float64 {
	return math.Max(RatingFloor, math.Min(RatingCeiling, rating))
}

func positive(v float64) bool {
	return !math.IsNaN(v) && v > 0
}

// Round1 rounds to one decimal, the precision ratings are stored at.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Round2 rounds to two decimals, the precision of weighted contributions.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
