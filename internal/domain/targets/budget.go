package targets

import (
	"math"

	"scorecard/internal/domain/scoring"
)

// Per-dimension weight ceilings. The internal-customer peer review is not
// listed because its 25% is fixed and applied automatically.
var dimensionLimits = map[string]float64{
	scoring.DimensionFinancial:       15,
	scoring.DimensionCustomer:        5,
	scoring.DimensionInternalProcess: 50,
	scoring.DimensionLearningGrowth:  10,
}

// budgetOrder fixes report ordering regardless of map iteration.
var budgetOrder = []string{
	scoring.DimensionFinancial,
	scoring.DimensionCustomer,
	scoring.DimensionInternalProcess,
	scoring.DimensionLearningGrowth,
}

// BudgetLine is one dimension's share of the weight budget.
type BudgetLine struct {
	Dimension string  `json:"dimension"`
	Label     string  `json:"label"`
	Total     float64 `json:"total"`
	Limit     float64 `json:"limit"`
	Within    bool    `json:"within"`
}

// BudgetReport itemizes how the manager's weights fill the 100% budget.
// PeerReview is always the automatic 25%; TotalWeight includes it.
type BudgetReport struct {
	Lines       []BudgetLine `json:"lines"`
	PeerReview  float64      `json:"peerReview"`
	TotalWeight float64      `json:"totalWeight"`
	Balanced    bool         `json:"balanced"`
	Shortfall   float64      `json:"shortfall,omitempty"`
	Excess      float64      `json:"excess,omitempty"`
}

// CheckBudget sums target weights per dimension and reports them against
// the ceilings and the overall 100% requirement. Incomplete targets are
// ignored, matching save behavior.
func CheckBudget(items []Target) BudgetReport {
	totals := make(map[string]float64, len(dimensionLimits))
	for _, t := range items {
		if !t.Complete() {
			continue
		}
		if _, ok := dimensionLimits[t.Dimension]; ok {
			totals[t.Dimension] += t.Weight
		}
	}

	report := BudgetReport{PeerReview: scoring.PeerReviewWeight}
	sum := scoring.PeerReviewWeight
	for _, dim := range budgetOrder {
		limit := dimensionLimits[dim]
		label := dim
		if dim == scoring.DimensionCustomer {
			label = "External Customer"
		}
		report.Lines = append(report.Lines, BudgetLine{
			Dimension: dim,
			Label:     label,
			Total:     totals[dim],
			Limit:     limit,
			Within:    totals[dim] <= limit,
		})
		sum += totals[dim]
	}

	report.TotalWeight = sum
	switch {
	case math.Abs(sum-100) <= scoring.WeightTolerance:
		report.Balanced = true
	case sum < 100:
		report.Shortfall = scoring.Round1(100 - sum)
	default:
		report.Excess = scoring.Round1(sum - 100)
	}
	return report
}

// ValidateBudget turns a report into an error: dimension ceilings are
// checked first, then the 100% total.
func ValidateBudget(report BudgetReport) error {
	var exceeded []BudgetLine
	for _, line := range report.Lines {
		if !line.Within {
			exceeded = append(exceeded, line)
		}
	}
	if len(exceeded) > 0 {
		return &BudgetExceededError{Lines: exceeded}
	}
	if !report.Balanced {
		return &TotalWeightError{Total: report.TotalWeight}
	}
	return nil
}
