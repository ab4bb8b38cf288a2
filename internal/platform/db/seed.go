package db

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"scorecard/internal/domain/auth"
	"scorecard/internal/platform/config"
)

// Seed provisions the initial admin account so a fresh install can log in.
// It is idempotent: an existing admin is left untouched.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	email := strings.TrimSpace(cfg.SeedAdminEmail)
	if email == "" {
		email = "admin@example.com"
	}
	password := cfg.SeedAdminPassword
	if password == "" {
		password = "admin123"
	}

	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM employees WHERE lower(email) = lower($1)", email).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
    INSERT INTO employees
      (id, email, name, job_title, department, level, role, password_hash, active)
    VALUES ($1, $2, 'Administrator', 'System Administrator', 'Operations', 'L5', $3, $4, true)
  `, uuid.NewString(), email, auth.RoleAdmin, hash)
	return err
}
