package scorecard

import (
	"context"

	"scorecard/internal/domain/scoring"
)

type Service struct {
	Store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{Store: store}
}

// Submit validates and persists a scorecard submission. Ratings and weighted
// values are rederived server-side; the client-supplied ones are advisory.
// Returns the stored submission, or validation issues, or a hard error.
func (s *Service) Submit(ctx context.Context, sub Submission) (Submission, []Issue, error) {
	sub.Scores = scoring.Recalculate(sub.Scores)
	sub.Quarter = QuarterOf(sub.Month)
	if sub.ProgressFrequency != FrequencyWeekly {
		// monthly and quarterly entries occupy the first week slot
		sub.Week = 1
	}

	if issues := ValidateSubmission(sub); len(issues) > 0 {
		return Submission{}, issues, nil
	}

	exists, err := s.Store.SubmissionExists(ctx, sub.EmployeeEmail, sub.Year, sub.Month, sub.Week)
	if err != nil {
		return Submission{}, nil, err
	}
	if exists {
		return Submission{}, nil, ErrDuplicateSubmission
	}

	sub.Totals = scoring.Aggregate(sub.Scores)
	id, err := s.Store.InsertSubmission(ctx, sub)
	if err != nil {
		return Submission{}, nil, err
	}
	sub.ID = id
	return sub, nil, nil
}

// History lists an employee's submissions, newest first.
func (s *Service) History(ctx context.Context, employeeEmail string, limit, offset int) ([]Submission, error) {
	return s.Store.ListByEmployee(ctx, employeeEmail, limit, offset)
}

// QuarterHistory returns the submissions inside one quarter window in
// chronological order, the shape the progress tracker consumes.
func (s *Service) QuarterHistory(ctx context.Context, employeeEmail string, year int, quarter string) ([]Submission, error) {
	return s.Store.ListByEmployeeQuarter(ctx, employeeEmail, year, quarter)
}

func (s *Service) YearHistory(ctx context.Context, employeeEmail string, year int) ([]Submission, error) {
	return s.Store.ListByEmployeeYear(ctx, employeeEmail, year)
}

func (s *Service) MonthHistory(ctx context.Context, employeeEmail string, year, month int) ([]Submission, error) {
	return s.Store.ListByEmployeeMonth(ctx, employeeEmail, year, month)
}
