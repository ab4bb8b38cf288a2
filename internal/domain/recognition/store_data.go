package recognition

import (
	"context"

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

func (s *Store) ReplaceAll(ctx context.Context, recognitions []Recognition) error {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM recognitions"); err != nil {
		return err
	}
	for _, rec := range recognitions {
		_, err := tx.Exec(ctx, `
      INSERT INTO recognitions
        (id, employee_email, employee_name, award, department, period, score, rank, total_candidates, computed_at)
      VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9, now())
    `, uuid.NewString(), rec.EmployeeEmail, rec.EmployeeName, rec.Award, rec.Department,
			rec.Period, rec.Score, rec.Rank, rec.TotalCandidates)
		if err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (s *Store) List(ctx context.Context) ([]Recognition, error) {
	rows, err := s.DB.Query(ctx, baseSelect+" ORDER BY computed_at DESC, award, department")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRecognitions(rows)
}

func (s *Store) ListForEmployee(ctx context.Context, employeeEmail string) ([]Recognition, error) {
	rows, err := s.DB.Query(ctx, baseSelect+`
    WHERE lower(employee_email) = lower($1)
    ORDER BY computed_at DESC
  `, employeeEmail)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRecognitions(rows)
}

const baseSelect = `
    SELECT id, employee_email, employee_name, award, department, period, score, rank, total_candidates, computed_at
    FROM recognitions
`

func scanRecognitions(rows pgx.Rows) ([]Recognition, error) {
	var out []Recognition
	for rows.Next() {
		var rec Recognition
		if err := rows.Scan(&rec.ID, &rec.EmployeeEmail, &rec.EmployeeName, &rec.Award, &rec.Department,
			&rec.Period, &rec.Score, &rec.Rank, &rec.TotalCandidates, &rec.ComputedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
