package review

import (
	"fmt"
	"math"

	"scorecard/internal/domain/scoring"
)

// CommentSuggestions drafts review comments for one line item, selected by
// rating band, with an extra budget-variance suggestion for financial
// measures that already have data.
func CommentSuggestions(item scoring.LineItem) []string {
	measure := item.Measure
	var suggestions []string

	switch {
	case item.Rating >= 4.5:
		suggestions = []string{
			fmt.Sprintf("Exceptional performance on %s. Consistently exceeds expectations and demonstrates outstanding commitment to excellence.", measure),
			fmt.Sprintf("Outstanding achievement in %s. Your dedication and results significantly contribute to team success.", measure),
			fmt.Sprintf("Exemplary work on %s. Continue maintaining this high standard and consider sharing best practices with the team.", measure),
		}
	case item.Rating >= 3.5:
		suggestions = []string{
			fmt.Sprintf("Strong performance on %s. Consistently meets and often exceeds targets with quality work.", measure),
			fmt.Sprintf("Solid achievement in %s. Shows good understanding and execution of responsibilities.", measure),
			fmt.Sprintf("Commendable work on %s. Keep up the good momentum and look for opportunities to further excel.", measure),
		}
	case item.Rating >= 3.0:
		suggestions = []string{
			fmt.Sprintf("Satisfactory performance on %s. Meets core expectations and shows potential for growth.", measure),
			fmt.Sprintf("Adequate performance in %s. Focus on consistency and identifying areas for improvement.", measure),
			fmt.Sprintf("Meets baseline requirements for %s. Consider setting stretch goals to demonstrate higher capabilities.", measure),
		}
	default:
		suggestions = []string{
			fmt.Sprintf("%s requires improvement. Let's work together to identify obstacles and create an action plan for better results.", measure),
			fmt.Sprintf("Performance on %s is below target. Schedule a one-on-one to discuss challenges and support needed.", measure),
			fmt.Sprintf("%s needs focused attention. Consider additional training or resources to strengthen this area.", measure),
		}
	}

	if item.Dimension == scoring.DimensionFinancial && item.Target > 0 && item.Actual > 0 {
		variance := (item.Actual - item.Target) / item.Target * 100
		if item.Actual < item.Target {
			suggestions = append(suggestions,
				fmt.Sprintf("Excellent cost management with %.1f%% savings. This demonstrates strong fiscal responsibility.", math.Abs(variance)))
		} else if item.Actual > item.Target {
			suggestions = append(suggestions,
				fmt.Sprintf("Budget variance of %.1f%% needs attention. Let's review spending patterns and adjust accordingly.", variance))
		}
	}

	return suggestions
}
