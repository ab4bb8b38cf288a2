package recognition

import "context"

type StoreAPI interface {
	// ReplaceAll swaps the stored recognition set for the computed one in a
	// single transaction.
	ReplaceAll(ctx context.Context, recognitions []Recognition) error
	List(ctx context.Context) ([]Recognition, error)
	ListForEmployee(ctx context.Context, employeeEmail string) ([]Recognition, error)
}
