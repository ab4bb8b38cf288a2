package recognition

import (
	"fmt"
	"time"

	"scorecard/internal/domain/scoring"
)

// SelectMonthWinner picks the Employee of the Month for one department.
// Returns nil when no candidate in the department has any scored data.
func SelectMonthWinner(candidates []Candidate, department string, month, year int) *Recognition {
	return selectWinner(candidates, department, AwardMonth, monthPeriod(month, year))
}

// SelectQuarterWinner picks the Employee of the Quarter for one department.
func SelectQuarterWinner(candidates []Candidate, department, quarter string, year int) *Recognition {
	return selectWinner(candidates, department, AwardQuarter, fmt.Sprintf("%s %d", quarter, year))
}

// SelectYearWinner picks the Employee of the Year for one department.
func SelectYearWinner(candidates []Candidate, department string, year int) *Recognition {
	return selectWinner(candidates, department, AwardYear, fmt.Sprintf("%d", year))
}

// SelectOrganizationWinner ranks the whole roster regardless of department.
// The award carries the winner's own department for display, falling back
// to the organization-wide label. Scoring is identical to the department
// awards; only the scope and labels differ.
func SelectOrganizationWinner(candidates []Candidate, award, period string) *Recognition {
	winner := selectWinner(candidates, "", "Organization "+award, period)
	if winner == nil {
		return nil
	}
	if winner.Department == "" {
		winner.Department = OrganizationWide
	}
	return winner
}

func selectWinner(candidates []Candidate, department, award, period string) *Recognition {
	ranked := Rank(candidates, department)
	if len(ranked) == 0 {
		return nil
	}

	winner := ranked[0]
	return &Recognition{
		EmployeeEmail:   winner.Email,
		EmployeeName:    winner.Name,
		Award:           award,
		Department:      winner.Department,
		Period:          period,
		Score:           scoring.Round2(winner.RecognitionScore),
		Rank:            1,
		TotalCandidates: len(ranked),
	}
}

func monthPeriod(month, year int) string {
	if month < 1 || month > 12 {
		return fmt.Sprintf("%d", year)
	}
	return fmt.Sprintf("%s %d", time.Month(month).String(), year)
}

// NotificationTitle and NotificationMessage are the fixed congratulation
// templates dispatched once per winner on recompute.
func NotificationTitle(rec Recognition) string {
	return fmt.Sprintf("Congratulations! You're %s!", rec.Award)
}

func NotificationMessage(rec Recognition) string {
	return fmt.Sprintf("You've been selected as %s for %s with a recognition score of %.2f!",
		rec.Award, rec.Period, rec.Score)
}
