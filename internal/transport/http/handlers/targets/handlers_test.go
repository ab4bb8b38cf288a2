package targetshandler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"scorecard/internal/domain/auth"
	"scorecard/internal/domain/scoring"
	"scorecard/internal/domain/targets"
	"scorecard/internal/transport/http/middleware"
)

const testSecret = "handler-test-secret"

type memStore struct {
	sets map[string]targets.TargetSet
}

func newMemStore() *memStore {
	return &memStore{sets: map[string]targets.TargetSet{}}
}

func (m *memStore) key(email string, year int, quarter string) string {
	return fmt.Sprintf("%s|%d|%s", strings.ToLower(email), year, quarter)
}

func (m *memStore) ReplaceTargets(_ context.Context, set targets.TargetSet) error {
	m.sets[m.key(set.EmployeeEmail, set.Year, set.Quarter)] = set
	return nil
}

func (m *memStore) GetTargets(_ context.Context, email string, year int, quarter string) (targets.TargetSet, error) {
	set, ok := m.sets[m.key(email, year, quarter)]
	if !ok {
		return targets.TargetSet{}, targets.ErrTargetsNotFound
	}
	return set, nil
}

func (m *memStore) ListByManager(_ context.Context, managerEmail string, year int, quarter string) ([]targets.TargetSet, error) {
	var out []targets.TargetSet
	for _, set := range m.sets {
		if strings.EqualFold(set.ManagerEmail, managerEmail) && set.Year == year && set.Quarter == quarter {
			out = append(out, set)
		}
	}
	return out, nil
}

func newTestRouter(store *memStore) http.Handler {
	handler := NewHandler(targets.NewService(store), auth.Rules{})
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Auth(testSecret))
	handler.RegisterRoutes(router)
	return router
}

func tokenFor(t *testing.T, email, role string) string {
	t.Helper()
	token, err := auth.GenerateToken(testSecret, auth.Claims{Email: email, Role: role}, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	return token
}

func balancedPayload() string {
	return `{
    "employeeEmail": "dev@example.org",
    "year": 2026,
    "quarter": "Q3",
    "targets": [
      {"dimension": "Financial", "measure": "Budget adherence", "targetValue": 1000, "weight": 15, "frequency": "Monthly"},
      {"dimension": "Customer", "measure": "NPS", "targetValue": 70, "weight": 5, "frequency": "Quarterly"},
      {"dimension": "Internal Process", "measure": "Tickets closed", "targetValue": 120, "weight": 45, "frequency": "Weekly"},
      {"dimension": "Internal Process", "measure": "SLA compliance", "targetValue": 98, "weight": 5, "frequency": "Weekly"},
      {"dimension": "Learning & Growth", "measure": "Training hours", "targetValue": 12, "weight": 5, "frequency": "Monthly"}
    ]
  }`
}

func TestSaveTargetsAsManager(t *testing.T) {
	store := newMemStore()
	router := newTestRouter(store)

	req := httptest.NewRequest(http.MethodPut, "/targets/", strings.NewReader(balancedPayload()))
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, "boss@example.org", auth.RoleManager))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	saved, err := store.GetTargets(context.Background(), "dev@example.org", 2026, "Q3")
	if err != nil {
		t.Fatalf("GetTargets: %v", err)
	}
	if saved.ManagerEmail != "boss@example.org" {
		t.Fatalf("manager not taken from token: %q", saved.ManagerEmail)
	}
	if len(saved.Targets) != 5 {
		t.Fatalf("expected 5 targets saved, got %d", len(saved.Targets))
	}
}

func TestSaveTargetsForbiddenForEmployee(t *testing.T) {
	router := newTestRouter(newMemStore())

	req := httptest.NewRequest(http.MethodPut, "/targets/", strings.NewReader(balancedPayload()))
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, "dev@example.org", auth.RoleEmployee))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for employee, got %d", rec.Code)
	}
}

func TestSaveTargetsBudgetViolation(t *testing.T) {
	store := newMemStore()
	router := newTestRouter(store)

	payload := strings.Replace(balancedPayload(), `"weight": 15`, `"weight": 20`, 1)
	req := httptest.NewRequest(http.MethodPut, "/targets/", strings.NewReader(payload))
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, "boss@example.org", auth.RoleManager))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 on budget violation, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "budget_error") {
		t.Fatalf("expected budget_error code in body: %s", rec.Body.String())
	}
	if len(store.sets) != 0 {
		t.Fatal("violating set must not be stored")
	}
}

func TestValidateEndpointReportsBudget(t *testing.T) {
	router := newTestRouter(newMemStore())

	req := httptest.NewRequest(http.MethodPost, "/targets/validate", strings.NewReader(balancedPayload()))
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, "boss@example.org", auth.RoleManager))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Data targets.BudgetReport `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !envelope.Data.Balanced {
		t.Fatalf("expected balanced report, got %+v", envelope.Data)
	}
	if envelope.Data.PeerReview != scoring.PeerReviewWeight {
		t.Fatalf("peer review weight = %v", envelope.Data.PeerReview)
	}
	if envelope.Data.TotalWeight != 100 {
		t.Fatalf("total weight = %v", envelope.Data.TotalWeight)
	}
}

func TestGetTargetsNotFound(t *testing.T) {
	router := newTestRouter(newMemStore())

	req := httptest.NewRequest(http.MethodGet, "/targets/?year=2026&quarter=Q3", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, "dev@example.org", auth.RoleEmployee))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
