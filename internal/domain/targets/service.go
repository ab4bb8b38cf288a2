package targets

import (
	"context"

	"scorecard/internal/domain/scoring"
)

var yearQuarters = []string{"Q1", "Q2", "Q3", "Q4"}

type Service struct {
	Store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{Store: store}
}

// SaveQuarter validates and stores a quarter's target set, replacing any
// previous set for the same employee and quarter.
func (s *Service) SaveQuarter(ctx context.Context, set TargetSet) (BudgetReport, error) {
	set.Targets = complete(set.Targets)
	if len(set.Targets) == 0 {
		return BudgetReport{}, ErrNoTargets
	}

	report := CheckBudget(set.Targets)
	if err := ValidateBudget(report); err != nil {
		return report, err
	}

	set.YearlyDistribution = false
	return report, s.Store.ReplaceTargets(ctx, set)
}

// SaveYearly distributes yearly targets across all four quarters: each
// quarter gets the yearly value divided by 4, weights unchanged. The whole
// set validates once against the quarterly weight budget.
func (s *Service) SaveYearly(ctx context.Context, set TargetSet) (BudgetReport, error) {
	set.Targets = complete(set.Targets)
	if len(set.Targets) == 0 {
		return BudgetReport{}, ErrNoTargets
	}

	report := CheckBudget(set.Targets)
	if err := ValidateBudget(report); err != nil {
		return report, err
	}

	quarterly := make([]Target, len(set.Targets))
	copy(quarterly, set.Targets)
	for i := range quarterly {
		quarterly[i].TargetValue = scoring.Round2(quarterly[i].TargetValue / 4)
	}

	for _, quarter := range yearQuarters {
		qSet := set
		qSet.Quarter = quarter
		qSet.Targets = quarterly
		qSet.YearlyDistribution = true
		if err := s.Store.ReplaceTargets(ctx, qSet); err != nil {
			return report, err
		}
	}
	return report, nil
}

// For returns the target set an employee is measured against this quarter.
func (s *Service) For(ctx context.Context, employeeEmail string, year int, quarter string) (TargetSet, error) {
	return s.Store.GetTargets(ctx, employeeEmail, year, quarter)
}

// TeamTargets lists every target set a manager has saved for the quarter.
func (s *Service) TeamTargets(ctx context.Context, managerEmail string, year int, quarter string) ([]TargetSet, error) {
	return s.Store.ListByManager(ctx, managerEmail, year, quarter)
}

func complete(items []Target) []Target {
	out := make([]Target, 0, len(items))
	for _, t := range items {
		if t.Complete() {
			out = append(out, t)
		}
	}
	return out
}
