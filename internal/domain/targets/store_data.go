package targets

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

// ReplaceTargets upserts the full target set for an employee's quarter.
// Saving twice overwrites; there is one row per employee/year/quarter.
func (s *Store) ReplaceTargets(ctx context.Context, set TargetSet) error {
	targetsJSON, err := json.Marshal(set.Targets)
	if err != nil {
		return err
	}

	_, err = s.DB.Exec(ctx, `
    INSERT INTO employee_targets
      (id, manager_email, employee_email, year, quarter, targets,
       yearly_distribution, saved_at)
    VALUES ($1,$2,$3,$4,$5,$6,$7, now())
    ON CONFLICT (employee_email, year, quarter) DO UPDATE SET
      manager_email = EXCLUDED.manager_email,
      targets = EXCLUDED.targets,
      yearly_distribution = EXCLUDED.yearly_distribution,
      saved_at = now()
  `, uuid.NewString(), set.ManagerEmail, set.EmployeeEmail, set.Year, set.Quarter,
		targetsJSON, set.YearlyDistribution)
	return err
}

func (s *Store) GetTargets(ctx context.Context, employeeEmail string, year int, quarter string) (TargetSet, error) {
	row := s.DB.QueryRow(ctx, baseSelect+`
    WHERE lower(employee_email) = lower($1) AND year = $2 AND quarter = $3
  `, employeeEmail, year, quarter)

	set, err := scanTargetSet(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return TargetSet{}, ErrTargetsNotFound
	}
	return set, err
}

func (s *Store) ListByManager(ctx context.Context, managerEmail string, year int, quarter string) ([]TargetSet, error) {
	rows, err := s.DB.Query(ctx, baseSelect+`
    WHERE lower(manager_email) = lower($1) AND year = $2 AND quarter = $3
    ORDER BY employee_email
  `, managerEmail, year, quarter)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TargetSet
	for rows.Next() {
		set, err := scanTargetSet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, set)
	}
	return out, rows.Err()
}

const baseSelect = `
    SELECT id, manager_email, employee_email, year, quarter, targets,
           yearly_distribution, saved_at
    FROM employee_targets
`

func scanTargetSet(row pgx.Row) (TargetSet, error) {
	var set TargetSet
	var targetsJSON []byte
	if err := row.Scan(
		&set.ID, &set.ManagerEmail, &set.EmployeeEmail, &set.Year, &set.Quarter,
		&targetsJSON, &set.YearlyDistribution, &set.SavedAt,
	); err != nil {
		return TargetSet{}, err
	}
	if len(targetsJSON) > 0 {
		if err := json.Unmarshal(targetsJSON, &set.Targets); err != nil {
			return TargetSet{}, err
		}
	}
	return set, nil
}
