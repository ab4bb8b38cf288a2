package scoring

// LineItem is one measured entry within a scorecard submission, after
// normalization. Financial measures report target/actual as budget figures;
// all other measures report plain achievement values.
type LineItem struct {
	Dimension    string  `json:"dimension"`
	Measure      string  `json:"measure"`
	IsFinancial  bool    `json:"isFinancial"`
	IsCumulative bool    `json:"isCumulative"`
	Target       float64 `json:"target"`
	Actual       float64 `json:"actual"`
	Rating       float64 `json:"rating"`
	Weight       float64 `json:"weight"`
	HasWeight    bool    `json:"-"`
	Weighted     float64 `json:"weighted"`
	Comment      string  `json:"comment,omitempty"`
	Evidence     string  `json:"evidence,omitempty"`
}

// Totals is the rolled-up result of one submission's line items.
type Totals struct {
	WeightedScore float64 `json:"totalWeightedScore"`
	Weight        float64 `json:"totalWeight"`
}
