package peerfeedback

import "context"

type StoreAPI interface {
	CreateRequest(ctx context.Context, employeeEmail, employeeName, reviewerEmail string, year int, quarter string) (string, error)
	ListPendingForReviewer(ctx context.Context, reviewerEmail string) ([]Request, error)
	MarkRequestSubmitted(ctx context.Context, reviewerEmail, employeeEmail string, year int, quarter string) error
	RecordExists(ctx context.Context, reviewerEmail, employeeEmail string, year int, quarter string) (bool, error)
	InsertRecord(ctx context.Context, record Record) (string, error)
	// ListRatings returns the per-record core value ratings for one employee
	// and quarter with reviewer identities already stripped.
	ListRatings(ctx context.Context, employeeEmail string, year int, quarter string) ([]Record, error)
}
