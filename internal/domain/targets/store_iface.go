package targets

import "context"

type StoreAPI interface {
	ReplaceTargets(ctx context.Context, set TargetSet) error
	GetTargets(ctx context.Context, employeeEmail string, year int, quarter string) (TargetSet, error)
	ListByManager(ctx context.Context, managerEmail string, year int, quarter string) ([]TargetSet, error)
}
