package scoring

const (
	DimensionFinancial       = "Financial"
	DimensionCustomer        = "Customer"
	DimensionInternalProcess = "Internal Process"
	DimensionLearningGrowth  = "Learning & Growth"

	// MeasurePeerReview is the fixed internal-customer line item fed by
	// aggregated peer feedback rather than a self-reported actual.
	MeasurePeerReview = "Internal Customer (Peer Review)"

	// PeerReviewWeight is non-configurable; the remaining 75% is split
	// across the other dimensions subject to the per-dimension caps.
	PeerReviewWeight = 25.0

	RatingFloor   = 1.0
	RatingCeiling = 5.0
	RatingTarget  = 3.0

	// WeightTolerance is the accepted drift on the 100% weight total.
	WeightTolerance = 0.01
)

// Dimensions in scorecard display order.
var Dimensions = []string{
	DimensionFinancial,
	DimensionCustomer,
	DimensionInternalProcess,
	DimensionLearningGrowth,
}
