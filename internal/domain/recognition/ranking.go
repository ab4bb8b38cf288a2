package recognition

import (
	"math"
	"sort"
)

// peerFeedbackWeight mirrors the fixed 25% the peer review line item
// carries on the scorecard itself.
const peerFeedbackWeight = 0.25

// Score computes a candidate's recognition score: the sum of weighted
// rating contributions across every line item in the period, plus a peer
// feedback bonus when one exists, plus a consistency bonus rewarding low
// rating spread.
//
// The weighted sum is intentionally not divided by the number of entries,
// so an employee with more submissions in the period accumulates a higher
// score than an equally rated employee with fewer. Open product question;
// changing it would re-rank historical winners.
func Score(candidate Candidate) (float64, int) {
	score := 0.0
	dataPoints := 0
	for _, item := range candidate.Scores {
		score += item.Rating * item.Weight / 100
		dataPoints++
	}

	if candidate.PeerFeedbackScore > 0 {
		score += candidate.PeerFeedbackScore * peerFeedbackWeight
	}

	if len(candidate.Scores) > 1 {
		ratings := make([]float64, len(candidate.Scores))
		for i, item := range candidate.Scores {
			ratings[i] = item.Rating
		}
		score += ConsistencyBonus(ratings)
	}

	return score, dataPoints
}

// ConsistencyBonus grants up to 1.0 extra point for low rating spread:
// max(0, 1 - variance/2) over the population variance of the ratings.
func ConsistencyBonus(ratings []float64) float64 {
	if len(ratings) == 0 {
		return 0
	}
	mean := 0.0
	for _, r := range ratings {
		mean += r
	}
	mean /= float64(len(ratings))

	variance := 0.0
	for _, r := range ratings {
		variance += math.Pow(r-mean, 2)
	}
	variance /= float64(len(ratings))

	return math.Max(0, 1-variance/2)
}

// Rank filters candidates to the given department (empty means the whole
// organization), scores each, drops candidates without any data points, and
// sorts descending by recognition score. The sort is stable: equal scores
// keep roster order, and no secondary key is applied.
func Rank(candidates []Candidate, department string) []Ranked {
	var ranked []Ranked
	for _, candidate := range candidates {
		if department != "" && candidate.Department != department {
			continue
		}
		score, dataPoints := Score(candidate)
		if dataPoints == 0 {
			continue
		}
		// kept unrounded so near ties still order correctly; awards round
		// for display
		ranked = append(ranked, Ranked{
			Candidate:        candidate,
			RecognitionScore: score,
			DataPoints:       dataPoints,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].RecognitionScore > ranked[j].RecognitionScore
	})
	return ranked
}
