package scorecard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"scorecard/internal/domain/scoring"
)

type memStore struct {
	subs map[string]Submission
	seq  int
}

func newMemStore() *memStore {
	return &memStore{subs: map[string]Submission{}}
}

func (m *memStore) key(email string, year, month, week int) string {
	return fmt.Sprintf("%s|%d|%d|%d", strings.ToLower(email), year, month, week)
}

func (m *memStore) SubmissionExists(_ context.Context, email string, year, month, week int) (bool, error) {
	_, ok := m.subs[m.key(email, year, month, week)]
	return ok, nil
}

func (m *memStore) InsertSubmission(_ context.Context, sub Submission) (string, error) {
	m.seq++
	sub.ID = fmt.Sprintf("sub-%d", m.seq)
	m.subs[m.key(sub.EmployeeEmail, sub.Year, sub.Month, sub.Week)] = sub
	return sub.ID, nil
}

func (m *memStore) ListByEmployee(_ context.Context, email string, _, _ int) ([]Submission, error) {
	var out []Submission
	for _, sub := range m.subs {
		if strings.EqualFold(sub.EmployeeEmail, email) {
			out = append(out, sub)
		}
	}
	return out, nil
}

func (m *memStore) ListByEmployeeQuarter(_ context.Context, email string, year int, quarter string) ([]Submission, error) {
	var out []Submission
	for _, sub := range m.subs {
		if strings.EqualFold(sub.EmployeeEmail, email) && sub.Year == year && sub.Quarter == quarter {
			out = append(out, sub)
		}
	}
	return out, nil
}

func (m *memStore) ListByEmployeeYear(_ context.Context, email string, year int) ([]Submission, error) {
	var out []Submission
	for _, sub := range m.subs {
		if strings.EqualFold(sub.EmployeeEmail, email) && sub.Year == year {
			out = append(out, sub)
		}
	}
	return out, nil
}

func (m *memStore) ListByEmployeeMonth(_ context.Context, email string, year, month int) ([]Submission, error) {
	var out []Submission
	for _, sub := range m.subs {
		if strings.EqualFold(sub.EmployeeEmail, email) && sub.Year == year && sub.Month == month {
			out = append(out, sub)
		}
	}
	return out, nil
}

func (m *memStore) ListByPeriod(_ context.Context, year int, months []int) ([]Submission, error) {
	var out []Submission
	for _, sub := range m.subs {
		if sub.Year != year {
			continue
		}
		for _, month := range months {
			if sub.Month == month {
				out = append(out, sub)
				break
			}
		}
	}
	return out, nil
}

func validServiceSubmission() Submission {
	return Submission{
		EmployeeEmail:     "dev@example.org",
		EmployeeName:      "Dev One",
		Department:        "Engineering",
		Year:              2026,
		Month:             8,
		Week:              2,
		ProgressFrequency: FrequencyWeekly,
		Scores: []scoring.LineItem{
			{Dimension: scoring.DimensionCustomer, Measure: scoring.MeasurePeerReview,
				Rating: 4.0, Weight: 25, HasWeight: true},
			{Dimension: scoring.DimensionInternalProcess, Measure: "Tickets closed",
				Target: 100, Actual: 100, Weight: 75, HasWeight: true},
		},
	}
}

func TestSubmitStoresSubmission(t *testing.T) {
	store := newMemStore()
	service := NewService(store)

	stored, issues, err := service.Submit(context.Background(), validServiceSubmission())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if len(issues) > 0 {
		t.Fatalf("unexpected issues: %v", issues)
	}
	if stored.ID == "" {
		t.Fatal("expected an id after insert")
	}
	if stored.Quarter != "Q3" {
		t.Fatalf("quarter not derived from month: %q", stored.Quarter)
	}
	if stored.Totals.Weight != 100 {
		t.Fatalf("total weight = %v", stored.Totals.Weight)
	}
	if len(store.subs) != 1 {
		t.Fatalf("expected 1 stored submission, got %d", len(store.subs))
	}
}

func TestSubmitDuplicateRejected(t *testing.T) {
	store := newMemStore()
	service := NewService(store)

	if _, _, err := service.Submit(context.Background(), validServiceSubmission()); err != nil {
		t.Fatalf("first submit: %v", err)
	}

	_, issues, err := service.Submit(context.Background(), validServiceSubmission())
	if !errors.Is(err, ErrDuplicateSubmission) {
		t.Fatalf("expected ErrDuplicateSubmission, got %v", err)
	}
	if len(issues) > 0 {
		t.Fatalf("duplicate must not surface as validation issues: %v", issues)
	}
	if len(store.subs) != 1 {
		t.Fatalf("duplicate must not be stored, have %d submissions", len(store.subs))
	}
}

func TestSubmitCoercesWeekForMonthly(t *testing.T) {
	store := newMemStore()
	service := NewService(store)

	first := validServiceSubmission()
	first.ProgressFrequency = FrequencyMonthly
	first.Week = 3

	stored, issues, err := service.Submit(context.Background(), first)
	if err != nil || len(issues) > 0 {
		t.Fatalf("Submit: err=%v issues=%v", err, issues)
	}
	if stored.Week != 1 {
		t.Fatalf("monthly submission must occupy week 1, got %d", stored.Week)
	}

	// a second monthly entry for the same month collides regardless of the
	// week the client sent
	second := validServiceSubmission()
	second.ProgressFrequency = FrequencyMonthly
	second.Week = 5
	if _, _, err := service.Submit(context.Background(), second); !errors.Is(err, ErrDuplicateSubmission) {
		t.Fatalf("expected ErrDuplicateSubmission, got %v", err)
	}
}

func TestSubmitQuarterlyCoercion(t *testing.T) {
	store := newMemStore()
	service := NewService(store)

	sub := validServiceSubmission()
	sub.ProgressFrequency = FrequencyQuarterly
	sub.Week = 4

	stored, issues, err := service.Submit(context.Background(), sub)
	if err != nil || len(issues) > 0 {
		t.Fatalf("Submit: err=%v issues=%v", err, issues)
	}
	if stored.Week != 1 {
		t.Fatalf("quarterly submission must occupy week 1, got %d", stored.Week)
	}
}

func TestSubmitValidationIssuesNotStored(t *testing.T) {
	store := newMemStore()
	service := NewService(store)

	sub := validServiceSubmission()
	sub.EmployeeEmail = ""
	sub.Scores[1].Weight = 50 // total 75, outside tolerance

	_, issues, err := service.Submit(context.Background(), sub)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if len(issues) == 0 {
		t.Fatal("expected validation issues")
	}
	if len(store.subs) != 0 {
		t.Fatal("invalid submission must not be stored")
	}
}
