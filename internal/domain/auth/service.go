package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

const tokenTTL = 8 * time.Hour

type Service struct {
	Store  *Store
	Secret string
}

func NewService(store *Store, secret string) *Service {
	return &Service{Store: store, Secret: secret}
}

// Login verifies the password and issues a signed token carrying the
// employee's identity and role. Lookup and password failures are collapsed
// into one error so callers cannot probe for accounts.
func (s *Service) Login(ctx context.Context, email, password string) (string, Employee, error) {
	emp, err := s.Store.FindActiveByEmail(ctx, email)
	if err != nil {
		return "", Employee{}, ErrInvalidCredentials
	}
	if err := CheckPassword(emp.PasswordHash, password); err != nil {
		return "", Employee{}, ErrInvalidCredentials
	}

	token, err := GenerateToken(s.Secret, Claims{
		Email:      emp.Email,
		Name:       emp.Name,
		Role:       emp.Role,
		Department: emp.Department,
	}, tokenTTL)
	if err != nil {
		return "", Employee{}, err
	}

	if err := s.Store.UpdateLastLogin(ctx, emp.ID); err != nil {
		slog.Warn("last login update failed", "email", emp.Email, "err", err)
	}

	emp.PasswordHash = ""
	return token, emp, nil
}

func (s *Service) Team(ctx context.Context, managerEmail string) ([]Employee, error) {
	return s.Store.TeamMembers(ctx, managerEmail)
}

func (s *Service) Directory(ctx context.Context) ([]Employee, error) {
	return s.Store.ListActive(ctx)
}
