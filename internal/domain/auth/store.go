package auth

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

type Employee struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	JobTitle     string `json:"jobTitle"`
	Department   string `json:"department"`
	Level        string `json:"level,omitempty"`
	Role         string `json:"role"`
	ManagerEmail string `json:"managerEmail,omitempty"`
	PasswordHash string `json:"-"`
}

func (s *Store) FindActiveByEmail(ctx context.Context, email string) (Employee, error) {
	var out Employee
	err := s.DB.QueryRow(ctx, `
    SELECT id, email, name, job_title, department, level, role,
           COALESCE(manager_email, ''), password_hash
    FROM employees
    WHERE lower(email) = lower($1) AND active
  `, email).Scan(&out.ID, &out.Email, &out.Name, &out.JobTitle, &out.Department,
		&out.Level, &out.Role, &out.ManagerEmail, &out.PasswordHash)
	return out, err
}

func (s *Store) UpdateLastLogin(ctx context.Context, id string) error {
	_, err := s.DB.Exec(ctx, "UPDATE employees SET last_login = now() WHERE id = $1", id)
	return err
}

// TeamMembers lists active reports of a manager, for target setting and
// team reporting.
func (s *Store) TeamMembers(ctx context.Context, managerEmail string) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, email, name, job_title, department, level, role,
           COALESCE(manager_email, ''), ''
    FROM employees
    WHERE lower(manager_email) = lower($1) AND active
    ORDER BY name
  `, managerEmail)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Employee
	for rows.Next() {
		var e Employee
		if err := rows.Scan(&e.ID, &e.Email, &e.Name, &e.JobTitle, &e.Department,
			&e.Level, &e.Role, &e.ManagerEmail, &e.PasswordHash); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) ListActive(ctx context.Context) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, email, name, job_title, department, level, role,
           COALESCE(manager_email, ''), ''
    FROM employees
    WHERE active
    ORDER BY name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Employee
	for rows.Next() {
		var e Employee
		if err := rows.Scan(&e.ID, &e.Email, &e.Name, &e.JobTitle, &e.Department,
			&e.Level, &e.Role, &e.ManagerEmail, &e.PasswordHash); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
