package peerfeedback

// The seven organizational core values every reviewer rates. Key order is
// the order they are presented and reported in.
const (
	ValueChristCentered         = "christCentered"
	ValueHolisticInvestment     = "holisticInvestment"
	ValueTrustedRelationships   = "trustedRelationships"
	ValueHumbleExcellence       = "humbleExcellence"
	ValueLocallyLed             = "locallyLed"
	ValueUnwaveringIntegrity    = "unwaveringIntegrity"
	ValueSustainableEmpowerment = "sustainableEmpowerment"
)

var CoreValueKeys = []string{
	ValueChristCentered,
	ValueHolisticInvestment,
	ValueTrustedRelationships,
	ValueHumbleExcellence,
	ValueLocallyLed,
	ValueUnwaveringIntegrity,
	ValueSustainableEmpowerment,
}

var CoreValueNames = map[string]string{
	ValueChristCentered:         "Christ-Centered",
	ValueHolisticInvestment:     "Holistic Investment in Women",
	ValueTrustedRelationships:   "Cultivating Trusted Relationships",
	ValueHumbleExcellence:       "Humble Excellence",
	ValueLocallyLed:             "Locally Led",
	ValueUnwaveringIntegrity:    "Unwavering Integrity",
	ValueSustainableEmpowerment: "Sustainable Empowerment",
}

// MinCommentLength is the minimum free-text length per core value; shorter
// feedback is rejected per field.
const MinCommentLength = 50

const (
	RequestStatusPending   = "pending"
	RequestStatusSubmitted = "submitted"
)
