package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"scorecard/internal/domain/auth"
)

func TestAuthAttachesUserContext(t *testing.T) {
	const secret = "test-secret"
	token, err := auth.GenerateToken(secret, auth.Claims{
		Email: "jordan@example.org", Name: "Jordan", Role: auth.RoleManager, Department: "People Ops",
	}, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	var got auth.UserContext
	var found bool
	handler := Auth(secret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, found = GetUser(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/scorecards", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if !found {
		t.Fatal("expected user in context")
	}
	if got.Email != "jordan@example.org" || got.Role != auth.RoleManager {
		t.Fatalf("unexpected user context: %+v", got)
	}
}

func TestAuthIgnoresInvalidToken(t *testing.T) {
	handler := Auth("test-secret")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUser(r.Context()); ok {
			t.Fatal("expected anonymous context for bad token")
		}
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/scorecards", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	handler.ServeHTTP(httptest.NewRecorder(), req)
}

func TestRequirePermission(t *testing.T) {
	const secret = "test-secret"
	rules := auth.Rules{}

	protected := RequirePermission(auth.PermTargetsWrite, rules)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	wrap := Auth(secret)(protected)

	// no token
	rec := httptest.NewRecorder()
	wrap.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/v1/targets", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}

	// employee lacks targets.write
	empToken, _ := auth.GenerateToken(secret, auth.Claims{Email: "e@example.org", Role: auth.RoleEmployee}, time.Hour)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/targets", nil)
	req.Header.Set("Authorization", "Bearer "+empToken)
	rec = httptest.NewRecorder()
	wrap.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for employee, got %d", rec.Code)
	}

	// manager allowed
	mgrToken, _ := auth.GenerateToken(secret, auth.Claims{Email: "m@example.org", Role: auth.RoleManager}, time.Hour)
	req = httptest.NewRequest(http.MethodPut, "/api/v1/targets", nil)
	req.Header.Set("Authorization", "Bearer "+mgrToken)
	rec = httptest.NewRecorder()
	wrap.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for manager, got %d", rec.Code)
	}
}
