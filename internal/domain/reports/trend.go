package reports

import (
	"fmt"
	"sort"
	"time"

	"scorecard/internal/domain/scorecard"
	"scorecard/internal/domain/scoring"
)

var dimensionOrder = []string{
	scoring.DimensionFinancial,
	scoring.DimensionCustomer,
	scoring.DimensionInternalProcess,
	scoring.DimensionLearningGrowth,
}

// PrepareChartData converts submissions into trend points (total weighted
// score per submission, in period order) and per-dimension rating averages.
// Zero-sentinel ratings carry no information and are excluded from the
// dimension averages.
func PrepareChartData(records []scorecard.Submission) *ChartData {
	if len(records) == 0 {
		return nil
	}

	data := &ChartData{}
	dimensionScores := make(map[string][]float64, len(dimensionOrder))

	for _, rec := range records {
		var total float64
		for _, item := range rec.Scores {
			total += item.Weighted
			if item.Rating > 0 && trackedDimension(item.Dimension) {
				dimensionScores[item.Dimension] = append(dimensionScores[item.Dimension], item.Rating)
			}
		}
		data.Trend = append(data.Trend, TrendPoint{
			Label: fmt.Sprintf("%d-%02d W%d", rec.Year, rec.Month, rec.Week),
			Score: total,
			Date:  time.Date(rec.Year, time.Month(rec.Month), rec.Week*7, 0, 0, 0, 0, time.UTC),
		})
	}

	sort.SliceStable(data.Trend, func(i, j int) bool {
		return data.Trend[i].Date.Before(data.Trend[j].Date)
	})

	for _, dim := range dimensionOrder {
		ratings := dimensionScores[dim]
		if len(ratings) == 0 {
			continue
		}
		var sum float64
		for _, r := range ratings {
			sum += r
		}
		data.Dimensions = append(data.Dimensions, DimensionAverage{
			Dimension: dim,
			Score:     scoring.Round2(sum / float64(len(ratings))),
		})
	}
	return data
}

func trackedDimension(dim string) bool {
	for _, d := range dimensionOrder {
		if d == dim {
			return true
		}
	}
	return false
}

// BuildDashboard computes overview statistics plus chart data from an
// employee's submission history.
func BuildDashboard(records []scorecard.Submission) Dashboard {
	dash := Dashboard{Submissions: len(records)}
	if len(records) == 0 {
		return dash
	}

	var sum float64
	best, lowest := records[0].Totals.WeightedScore, records[0].Totals.WeightedScore
	for _, rec := range records {
		score := rec.Totals.WeightedScore
		sum += score
		if score > best {
			best = score
		}
		if score < lowest {
			lowest = score
		}
	}

	dash.AverageScore = scoring.Round2(sum / float64(len(records)))
	dash.BestScore = scoring.Round2(best)
	dash.LowestScore = scoring.Round2(lowest)
	dash.Charts = PrepareChartData(records)
	return dash
}
