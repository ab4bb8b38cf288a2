package peerfeedback

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// CacheAPI is the slice of the platform cache this service needs. A nil
// cache disables caching without changing behavior.
type CacheAPI interface {
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

const aggregateTTL = 10 * time.Minute

type Service struct {
	Store StoreAPI
	Cache CacheAPI
}

func NewService(store StoreAPI, cache CacheAPI) *Service {
	return &Service{Store: store, Cache: cache}
}

// RequestFeedback fans a feedback request out to the given reviewers.
func (s *Service) RequestFeedback(ctx context.Context, employeeEmail, employeeName string, reviewerEmails []string, year int, quarter string) error {
	for _, reviewer := range reviewerEmails {
		if _, err := s.Store.CreateRequest(ctx, employeeEmail, employeeName, reviewer, year, quarter); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) PendingRequests(ctx context.Context, reviewerEmail string) ([]Request, error) {
	return s.Store.ListPendingForReviewer(ctx, reviewerEmail)
}

// Submit validates and stores one reviewer's record. A reviewer rates a
// colleague at most once per quarter.
func (s *Service) Submit(ctx context.Context, record Record) ([]FieldIssue, error) {
	if issues := ValidateRecord(record); len(issues) > 0 {
		return issues, nil
	}

	exists, err := s.Store.RecordExists(ctx, record.ReviewerEmail, record.EmployeeEmail, record.Year, record.Quarter)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadySubmitted
	}

	if _, err := s.Store.InsertRecord(ctx, record); err != nil {
		return nil, err
	}
	if err := s.Store.MarkRequestSubmitted(ctx, record.ReviewerEmail, record.EmployeeEmail, record.Year, record.Quarter); err != nil {
		slog.Warn("peer feedback request status update failed", "err", err)
	}

	if s.Cache != nil {
		if err := s.Cache.Delete(ctx, aggregateKey(record.EmployeeEmail, record.Year, record.Quarter)); err != nil {
			slog.Warn("peer feedback cache invalidation failed", "err", err)
		}
	}
	return nil, nil
}

// Aggregated returns the (count, average) pair for one employee and
// quarter, cache-aside. This is the only read path exposed to scorecard and
// recognition code.
func (s *Service) Aggregated(ctx context.Context, employeeEmail string, year int, quarter string) (Aggregate, error) {
	key := aggregateKey(employeeEmail, year, quarter)
	if s.Cache != nil {
		var cached Aggregate
		hit, err := s.Cache.GetJSON(ctx, key, &cached)
		if err != nil {
			slog.Warn("peer feedback cache read failed", "err", err)
		} else if hit {
			return cached, nil
		}
	}

	records, err := s.Store.ListRatings(ctx, employeeEmail, year, quarter)
	if err != nil {
		return Aggregate{}, err
	}
	aggregate := Combine(records)

	if s.Cache != nil {
		if err := s.Cache.SetJSON(ctx, key, aggregate, aggregateTTL); err != nil {
			slog.Warn("peer feedback cache write failed", "err", err)
		}
	}
	return aggregate, nil
}

func aggregateKey(employeeEmail string, year int, quarter string) string {
	return fmt.Sprintf("peerfeedback:aggregate:%s:%d:%s", employeeEmail, year, quarter)
}
