package peerfeedback

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) CreateRequest(ctx context.Context, employeeEmail, employeeName, reviewerEmail string, year int, quarter string) (string, error) {
	id := uuid.NewString()
	_, err := s.DB.Exec(ctx, `
    INSERT INTO peer_feedback_requests (id, employee_email, employee_name, reviewer_email, year, quarter, status, created_at)
    VALUES ($1,$2,$3,$4,$5,$6,$7, now())
    ON CONFLICT (employee_email, reviewer_email, year, quarter) DO NOTHING
  `, id, employeeEmail, employeeName, reviewerEmail, year, quarter, RequestStatusPending)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) ListPendingForReviewer(ctx context.Context, reviewerEmail string) ([]Request, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_email, employee_name, reviewer_email, year, quarter, status, created_at
    FROM peer_feedback_requests
    WHERE lower(reviewer_email) = lower($1) AND status = $2
    ORDER BY created_at ASC
  `, reviewerEmail, RequestStatusPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Request
	for rows.Next() {
		var req Request
		if err := rows.Scan(&req.ID, &req.EmployeeEmail, &req.EmployeeName, &req.ReviewerEmail,
			&req.Year, &req.Quarter, &req.Status, &req.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, rows.Err()
}

func (s *Store) MarkRequestSubmitted(ctx context.Context, reviewerEmail, employeeEmail string, year int, quarter string) error {
	_, err := s.DB.Exec(ctx, `
    UPDATE peer_feedback_requests
    SET status = $1
    WHERE lower(reviewer_email) = lower($2) AND lower(employee_email) = lower($3) AND year = $4 AND quarter = $5
  `, RequestStatusSubmitted, reviewerEmail, employeeEmail, year, quarter)
	return err
}

func (s *Store) RecordExists(ctx context.Context, reviewerEmail, employeeEmail string, year int, quarter string) (bool, error) {
	var count int
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1)
    FROM peer_feedback
    WHERE lower(reviewer_email) = lower($1) AND lower(employee_email) = lower($2) AND year = $3 AND quarter = $4
  `, reviewerEmail, employeeEmail, year, quarter).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) InsertRecord(ctx context.Context, record Record) (string, error) {
	ratingsJSON, err := json.Marshal(record.Ratings)
	if err != nil {
		return "", err
	}
	commentsJSON, err := json.Marshal(record.Comments)
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	_, err = s.DB.Exec(ctx, `
    INSERT INTO peer_feedback (id, reviewer_email, employee_email, year, quarter, ratings, comments, submitted_at)
    VALUES ($1,$2,$3,$4,$5,$6,$7, now())
  `, id, record.ReviewerEmail, record.EmployeeEmail, record.Year, record.Quarter, ratingsJSON, commentsJSON)
	if err != nil {
		return "", err
	}
	return id, nil
}

// ListRatings deliberately selects neither id nor reviewer_email: anonymity
// is enforced at this boundary, not in the callers.
func (s *Store) ListRatings(ctx context.Context, employeeEmail string, year int, quarter string) ([]Record, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT employee_email, year, quarter, ratings
    FROM peer_feedback
    WHERE lower(employee_email) = lower($1) AND year = $2 AND quarter = $3
    ORDER BY submitted_at ASC
  `, employeeEmail, year, quarter)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var record Record
		var ratingsJSON []byte
		if err := rows.Scan(&record.EmployeeEmail, &record.Year, &record.Quarter, &ratingsJSON); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(ratingsJSON, &record.Ratings); err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	return out, rows.Err()
}
