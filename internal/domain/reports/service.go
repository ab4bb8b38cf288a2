package reports

import (
	"context"

	"scorecard/internal/domain/auth"
	"scorecard/internal/domain/scorecard"
)

const historyWindow = 200

// SubmissionSource is the slice of scorecard storage the reports need.
type SubmissionSource interface {
	ListByEmployee(ctx context.Context, employeeEmail string, limit, offset int) ([]scorecard.Submission, error)
	ListByEmployeeQuarter(ctx context.Context, employeeEmail string, year int, quarter string) ([]scorecard.Submission, error)
}

// TeamSource resolves a manager's reports.
type TeamSource interface {
	TeamMembers(ctx context.Context, managerEmail string) ([]auth.Employee, error)
}

type Service struct {
	Submissions SubmissionSource
	Team        TeamSource
}

func NewService(submissions SubmissionSource, team TeamSource) *Service {
	return &Service{Submissions: submissions, Team: team}
}

func (s *Service) Dashboard(ctx context.Context, employeeEmail string) (Dashboard, error) {
	records, err := s.Submissions.ListByEmployee(ctx, employeeEmail, historyWindow, 0)
	if err != nil {
		return Dashboard{}, err
	}
	return BuildDashboard(records), nil
}

func (s *Service) QuarterlyReview(ctx context.Context, employeeEmail, employeeName string, year int, quarter string) (QuarterlyReview, error) {
	records, err := s.Submissions.ListByEmployeeQuarter(ctx, employeeEmail, year, quarter)
	if err != nil {
		return QuarterlyReview{}, err
	}
	return BuildQuarterlyReview(employeeEmail, employeeName, year, quarter, records), nil
}

// TeamOverview summarizes each report's submission history for a manager.
func (s *Service) TeamOverview(ctx context.Context, managerEmail string) ([]TeamMemberSummary, error) {
	members, err := s.Team.TeamMembers(ctx, managerEmail)
	if err != nil {
		return nil, err
	}

	out := make([]TeamMemberSummary, 0, len(members))
	for _, member := range members {
		records, err := s.Submissions.ListByEmployee(ctx, member.Email, historyWindow, 0)
		if err != nil {
			return nil, err
		}

		summary := TeamMemberSummary{
			Email:      member.Email,
			Name:       member.Name,
			JobTitle:   member.JobTitle,
			Department: member.Department,
		}
		dash := BuildDashboard(records)
		summary.Submissions = dash.Submissions
		summary.AverageScore = dash.AverageScore
		if len(records) > 0 {
			// ListByEmployee returns newest first
			latest := records[0]
			summary.LatestScore = latest.Totals.WeightedScore
			summary.LatestPeriod = latest.Quarter
		}
		out = append(out, summary)
	}
	return out, nil
}
