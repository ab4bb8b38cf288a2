package scorecard

import "context"

type StoreAPI interface {
	SubmissionExists(ctx context.Context, employeeEmail string, year, month, week int) (bool, error)
	InsertSubmission(ctx context.Context, sub Submission) (string, error)
	ListByEmployee(ctx context.Context, employeeEmail string, limit, offset int) ([]Submission, error)
	ListByEmployeeQuarter(ctx context.Context, employeeEmail string, year int, quarter string) ([]Submission, error)
	ListByEmployeeYear(ctx context.Context, employeeEmail string, year int) ([]Submission, error)
	ListByEmployeeMonth(ctx context.Context, employeeEmail string, year, month int) ([]Submission, error)
	ListByPeriod(ctx context.Context, year int, months []int) ([]Submission, error)
}
