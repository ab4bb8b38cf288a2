package scorecard

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"scorecard/internal/domain/scoring"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) SubmissionExists(ctx context.Context, employeeEmail string, year, month, week int) (bool, error) {
	var count int
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1)
    FROM scorecard_submissions
    WHERE lower(employee_email) = lower($1) AND year = $2 AND month = $3 AND week = $4
  `, employeeEmail, year, month, week).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) InsertSubmission(ctx context.Context, sub Submission) (string, error) {
	scoresJSON, err := json.Marshal(sub.Scores)
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	_, err = s.DB.Exec(ctx, `
    INSERT INTO scorecard_submissions
      (id, employee_email, employee_name, job_title, department, level,
       year, month, week, progress_frequency, quarter, scores,
       total_weighted_score, total_weight, submitted_at)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14, now())
  `, id, sub.EmployeeEmail, sub.EmployeeName, sub.JobTitle, sub.Department, sub.Level,
		sub.Year, sub.Month, sub.Week, sub.ProgressFrequency, sub.Quarter, scoresJSON,
		sub.Totals.WeightedScore, sub.Totals.Weight)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) ListByEmployee(ctx context.Context, employeeEmail string, limit, offset int) ([]Submission, error) {
	rows, err := s.DB.Query(ctx, baseSelect+`
    WHERE lower(employee_email) = lower($1)
    ORDER BY year DESC, month DESC, week DESC
    LIMIT $2 OFFSET $3
  `, employeeEmail, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSubmissions(rows)
}

func (s *Store) ListByEmployeeQuarter(ctx context.Context, employeeEmail string, year int, quarter string) ([]Submission, error) {
	rows, err := s.DB.Query(ctx, baseSelect+`
    WHERE lower(employee_email) = lower($1) AND year = $2 AND quarter = $3
    ORDER BY month ASC, week ASC
  `, employeeEmail, year, quarter)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSubmissions(rows)
}

func (s *Store) ListByEmployeeYear(ctx context.Context, employeeEmail string, year int) ([]Submission, error) {
	rows, err := s.DB.Query(ctx, baseSelect+`
    WHERE lower(employee_email) = lower($1) AND year = $2
    ORDER BY month ASC, week ASC
  `, employeeEmail, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSubmissions(rows)
}

func (s *Store) ListByEmployeeMonth(ctx context.Context, employeeEmail string, year, month int) ([]Submission, error) {
	rows, err := s.DB.Query(ctx, baseSelect+`
    WHERE lower(employee_email) = lower($1) AND year = $2 AND month = $3
    ORDER BY week ASC
  `, employeeEmail, year, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSubmissions(rows)
}

func (s *Store) ListByPeriod(ctx context.Context, year int, months []int) ([]Submission, error) {
	rows, err := s.DB.Query(ctx, baseSelect+`
    WHERE year = $1 AND month = ANY($2)
    ORDER BY employee_email, month ASC, week ASC
  `, year, months)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSubmissions(rows)
}

const baseSelect = `
    SELECT id, employee_email, employee_name, job_title, department, level,
           year, month, week, progress_frequency, quarter, scores,
           total_weighted_score, total_weight, submitted_at
    FROM scorecard_submissions
`

func scanSubmissions(rows pgx.Rows) ([]Submission, error) {
	var out []Submission
	for rows.Next() {
		var sub Submission
		var scoresJSON []byte
		if err := rows.Scan(
			&sub.ID, &sub.EmployeeEmail, &sub.EmployeeName, &sub.JobTitle, &sub.Department, &sub.Level,
			&sub.Year, &sub.Month, &sub.Week, &sub.ProgressFrequency, &sub.Quarter, &scoresJSON,
			&sub.Totals.WeightedScore, &sub.Totals.Weight, &sub.SubmittedAt,
		); err != nil {
			return nil, err
		}
		if len(scoresJSON) > 0 {
			var scores []scoring.LineItem
			if err := json.Unmarshal(scoresJSON, &scores); err == nil {
				sub.Scores = scores
			}
		}
		for i := range sub.Scores {
			sub.Scores[i].HasWeight = true
		}
		out = append(out, sub)
	}
	return out, rows.Err()
}
