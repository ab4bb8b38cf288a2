package recognition

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"scorecard/internal/domain/peerfeedback"
	"scorecard/internal/domain/scorecard"
	"scorecard/internal/domain/scoring"
)

const (
	PeriodMonth   = "month"
	PeriodQuarter = "quarter"
	PeriodYear    = "year"
)

// SubmissionSource supplies the scored history for the award window.
type SubmissionSource interface {
	ListByPeriod(ctx context.Context, year int, months []int) ([]scorecard.Submission, error)
}

// PeerFeedbackSource supplies the quarterly peer aggregate per employee.
type PeerFeedbackSource interface {
	Aggregated(ctx context.Context, employeeEmail string, year int, quarter string) (peerfeedback.Aggregate, error)
}

// Notifier dispatches the congratulation message to a winner.
type Notifier interface {
	Create(ctx context.Context, recipientEmail, ntype, title, message, actionURL, priority string) error
}

type CacheAPI interface {
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

const (
	listCacheKey = "recognition:list"
	listCacheTTL = 15 * time.Minute
)

type Service struct {
	Store       StoreAPI
	Submissions SubmissionSource
	Peer        PeerFeedbackSource
	Notify      Notifier
	Cache       CacheAPI
}

func NewService(store StoreAPI, submissions SubmissionSource, peer PeerFeedbackSource, notify Notifier, cache CacheAPI) *Service {
	return &Service{Store: store, Submissions: submissions, Peer: peer, Notify: notify, Cache: cache}
}

// Compute rebuilds the recognition set for one period: a winner per
// department plus the organization-wide winner, fully replacing whatever
// was stored before, and one notification per winner. period is month,
// quarter or year; month and quarter identify the window within the year.
func (s *Service) Compute(ctx context.Context, period string, year, month int, quarter string) ([]Recognition, error) {
	months, peerQuarters, err := periodWindow(period, month, quarter)
	if err != nil {
		return nil, err
	}

	subs, err := s.Submissions.ListByPeriod(ctx, year, months)
	if err != nil {
		return nil, err
	}
	candidates := s.assembleCandidates(ctx, subs, year, peerQuarters)
	if len(candidates) == 0 {
		// a defined empty outcome, not a fault
		if err := s.Store.ReplaceAll(ctx, nil); err != nil {
			return nil, err
		}
		s.invalidate(ctx)
		return []Recognition{}, nil
	}

	var recognitions []Recognition
	for _, department := range departments(candidates) {
		if winner := s.departmentWinner(candidates, department, period, year, month, quarter); winner != nil {
			recognitions = append(recognitions, *winner)
		}
	}
	if winner := s.organizationWinner(candidates, period, year, month, quarter); winner != nil {
		recognitions = append(recognitions, *winner)
	}

	if err := s.Store.ReplaceAll(ctx, recognitions); err != nil {
		return nil, err
	}
	s.invalidate(ctx)

	if s.Notify != nil {
		for _, rec := range recognitions {
			err := s.Notify.Create(ctx, rec.EmployeeEmail, "recognition",
				NotificationTitle(rec), NotificationMessage(rec), "#recognitions", "high")
			if err != nil {
				slog.Warn("recognition notification failed", "recipient", rec.EmployeeEmail, "err", err)
			}
		}
	}
	return recognitions, nil
}

// List returns the current recognition set, cache-aside.
func (s *Service) List(ctx context.Context) ([]Recognition, error) {
	if s.Cache != nil {
		var cached []Recognition
		hit, err := s.Cache.GetJSON(ctx, listCacheKey, &cached)
		if err != nil {
			slog.Warn("recognition cache read failed", "err", err)
		} else if hit {
			return cached, nil
		}
	}

	recognitions, err := s.Store.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.Cache != nil {
		if err := s.Cache.SetJSON(ctx, listCacheKey, recognitions, listCacheTTL); err != nil {
			slog.Warn("recognition cache write failed", "err", err)
		}
	}
	return recognitions, nil
}

func (s *Service) ListForEmployee(ctx context.Context, employeeEmail string) ([]Recognition, error) {
	return s.Store.ListForEmployee(ctx, employeeEmail)
}

func (s *Service) departmentWinner(candidates []Candidate, department, period string, year, month int, quarter string) *Recognition {
	switch period {
	case PeriodMonth:
		return SelectMonthWinner(candidates, department, month, year)
	case PeriodQuarter:
		return SelectQuarterWinner(candidates, department, quarter, year)
	default:
		return SelectYearWinner(candidates, department, year)
	}
}

func (s *Service) organizationWinner(candidates []Candidate, period string, year, month int, quarter string) *Recognition {
	switch period {
	case PeriodMonth:
		return SelectOrganizationWinner(candidates, AwardMonth, monthPeriod(month, year))
	case PeriodQuarter:
		return SelectOrganizationWinner(candidates, AwardQuarter, fmt.Sprintf("%s %d", quarter, year))
	default:
		return SelectOrganizationWinner(candidates, AwardYear, fmt.Sprintf("%d", year))
	}
}

// assembleCandidates groups the period's submissions per employee and
// attaches the peer feedback aggregate. Roster order follows first
// appearance in the submission list, which is what the stable ranking sort
// preserves on ties.
func (s *Service) assembleCandidates(ctx context.Context, subs []scorecard.Submission, year int, peerQuarters []string) []Candidate {
	index := make(map[string]int)
	var candidates []Candidate

	for _, sub := range subs {
		pos, seen := index[sub.EmployeeEmail]
		if !seen {
			pos = len(candidates)
			index[sub.EmployeeEmail] = pos
			candidates = append(candidates, Candidate{
				Email:      sub.EmployeeEmail,
				Name:       sub.EmployeeName,
				Department: sub.Department,
			})
		}
		candidates[pos].Scores = append(candidates[pos].Scores, sub.Scores...)
	}

	if s.Peer != nil {
		for i := range candidates {
			candidates[i].PeerFeedbackScore = s.peerScore(ctx, candidates[i].Email, year, peerQuarters)
		}
	}
	return candidates
}

// peerScore averages the quarterly peer aggregates that actually have data
// within the award window; a single-quarter window is just that quarter's
// aggregate.
func (s *Service) peerScore(ctx context.Context, employeeEmail string, year int, quarters []string) float64 {
	total, count := 0.0, 0
	for _, quarter := range quarters {
		aggregate, err := s.Peer.Aggregated(ctx, employeeEmail, year, quarter)
		if err != nil {
			slog.Warn("peer aggregate lookup failed", "employee", employeeEmail, "quarter", quarter, "err", err)
			continue
		}
		if aggregate.HasData() {
			total += aggregate.AverageScore
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return scoring.Round2(total / float64(count))
}

func (s *Service) invalidate(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Delete(ctx, listCacheKey); err != nil {
		slog.Warn("recognition cache invalidation failed", "err", err)
	}
}

func periodWindow(period string, month int, quarter string) (months []int, peerQuarters []string, err error) {
	switch period {
	case PeriodMonth:
		if month < 1 || month > 12 {
			return nil, nil, fmt.Errorf("invalid month %d", month)
		}
		return []int{month}, []string{scorecard.QuarterOf(month)}, nil
	case PeriodQuarter:
		months = scorecard.QuarterMonths(quarter)
		if months == nil {
			return nil, nil, fmt.Errorf("invalid quarter %q", quarter)
		}
		return months, []string{quarter}, nil
	case PeriodYear:
		for m := 1; m <= 12; m++ {
			months = append(months, m)
		}
		return months, []string{"Q1", "Q2", "Q3", "Q4"}, nil
	}
	return nil, nil, fmt.Errorf("invalid period %q", period)
}

func departments(candidates []Candidate) []string {
	seen := make(map[string]bool)
	var out []string
	for _, candidate := range candidates {
		if candidate.Department == "" || seen[candidate.Department] {
			continue
		}
		seen[candidate.Department] = true
		out = append(out, candidate.Department)
	}
	sort.Strings(out)
	return out
}
