package review

import (
	"regexp"
	"strconv"

	"scorecard/internal/domain/scoring"
)

// Per-dimension goal suggestion templates, strongest recommendation first.
// Review generation picks the first entry; the suggestion endpoint returns
// the full list.
var goalTemplates = map[string][]string{
	scoring.DimensionFinancial: {
		"Reduce departmental operating costs by 10% through process optimization",
		"Increase budget efficiency by identifying and eliminating redundant expenses",
		"Achieve 95% accuracy in budget forecasting and variance reporting",
		"Implement cost-saving initiatives that result in measurable ROI",
	},
	scoring.DimensionCustomer: {
		"Improve internal stakeholder satisfaction scores by 15% through enhanced communication",
		"Achieve 90% positive feedback rating from external customers",
		"Reduce customer complaint resolution time by 25%",
		"Build stronger collaborative relationships with 3+ peer departments",
	},
	scoring.DimensionInternalProcess: {
		"Streamline workflow to reduce process completion time by 20%",
		"Implement automation for repetitive tasks, saving 10 hours per week",
		"Achieve 98% quality compliance rate in deliverables",
		"Document and standardize 5 key processes for team efficiency",
	},
	scoring.DimensionLearningGrowth: {
		"Complete 40 hours of professional development training in relevant skills",
		"Mentor 2 junior team members in skill development",
		"Achieve certification in [relevant professional area]",
		"Share knowledge through 4 internal training sessions or workshops",
	},
}

var percentToken = regexp.MustCompile(`\d+%`)

// GoalSuggestions returns the goal templates for a dimension, scaled to the
// employee's overall average: struggling employees (avg below 3.0) get the
// first percentage target softened by 5 points with a floor of 5%, high
// performers (avg 4.0 and up) get it stretched by 5.
func GoalSuggestions(averageScore float64, dimension string) []string {
	templates := goalTemplates[dimension]
	if len(templates) == 0 {
		return nil
	}

	out := make([]string, len(templates))
	copy(out, templates)

	if averageScore > 0 && averageScore < 3.0 {
		for i, suggestion := range out {
			out[i] = scaleFirstPercent(suggestion, -5)
		}
	} else if averageScore >= 4.0 {
		for i, suggestion := range out {
			out[i] = scaleFirstPercent(suggestion, +5)
		}
	}
	return out
}

// scaleFirstPercent adjusts the first "N%" token in a suggestion by delta
// points, never dropping below 5%. Suggestions without a percentage are
// returned untouched.
func scaleFirstPercent(s string, delta int) string {
	loc := percentToken.FindStringIndex(s)
	if loc == nil {
		return s
	}

	n, err := strconv.Atoi(s[loc[0] : loc[1]-1])
	if err != nil {
		return s
	}
	n += delta
	if n < 5 {
		n = 5
	}
	return s[:loc[0]] + strconv.Itoa(n) + "%" + s[loc[1]:]
}
