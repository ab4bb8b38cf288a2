package targetshandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"scorecard/internal/domain/auth"
	"scorecard/internal/domain/targets"
	"scorecard/internal/transport/http/api"
	"scorecard/internal/transport/http/middleware"
	"scorecard/internal/transport/http/shared"
)

type Handler struct {
	Service *targets.Service
	Perms   middleware.PermissionStore
}

func NewHandler(service *targets.Service, perms middleware.PermissionStore) *Handler {
	return &Handler{Service: service, Perms: perms}
}

type savePayload struct {
	EmployeeEmail string           `json:"employeeEmail"`
	Year          int              `json:"year"`
	Quarter       string           `json:"quarter"`
	Yearly        bool             `json:"yearly"`
	Targets       []targets.Target `json:"targets"`
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/targets", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermTargetsRead, h.Perms)).Get("/", h.handleGet)
		r.With(middleware.RequirePermission(auth.PermTargetsWrite, h.Perms)).Get("/team", h.handleTeam)
		r.With(middleware.RequirePermission(auth.PermTargetsWrite, h.Perms)).Put("/", h.handleSave)
		r.With(middleware.RequirePermission(auth.PermTargetsWrite, h.Perms)).Post("/validate", h.handleValidate)
	})
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	period := shared.ParsePeriod(r, time.Now())
	email := user.Email
	// managers may read a report's targets by email
	if requested := r.URL.Query().Get("employeeEmail"); requested != "" && requested != user.Email {
		allowed, err := h.Perms.HasPermission(r.Context(), user.Role, auth.PermTargetsWrite)
		if err != nil || !allowed {
			api.Fail(w, http.StatusForbidden, "forbidden", "insufficient permissions", middleware.GetRequestID(r.Context()))
			return
		}
		email = requested
	}

	set, err := h.Service.For(r.Context(), email, period.Year, period.Quarter)
	if err != nil {
		if errors.Is(err, targets.ErrTargetsNotFound) {
			api.Fail(w, http.StatusNotFound, "targets_not_found", "no targets set for this period", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "targets_failed", "failed to load targets", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, set, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleTeam(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	period := shared.ParsePeriod(r, time.Now())
	sets, err := h.Service.TeamTargets(r.Context(), user.Email, period.Year, period.Quarter)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "targets_failed", "failed to load team targets", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, sets, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	payload, ok := h.decodeSave(w, r)
	if !ok {
		return
	}

	set := targets.TargetSet{
		ManagerEmail:  user.Email,
		EmployeeEmail: payload.EmployeeEmail,
		Year:          payload.Year,
		Quarter:       payload.Quarter,
		Targets:       payload.Targets,
	}

	var report targets.BudgetReport
	var err error
	if payload.Yearly {
		report, err = h.Service.SaveYearly(r.Context(), set)
	} else {
		report, err = h.Service.SaveQuarter(r.Context(), set)
	}
	if err != nil {
		h.failBudget(w, r, report, err)
		return
	}
	api.Success(w, report, middleware.GetRequestID(r.Context()))
}

// handleValidate runs the budget check without persisting, so the target
// editor can show running totals.
func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	payload, ok := h.decodeSave(w, r)
	if !ok {
		return
	}
	report := targets.CheckBudget(payload.Targets)
	api.Success(w, report, middleware.GetRequestID(r.Context()))
}

func (h *Handler) decodeSave(w http.ResponseWriter, r *http.Request) (savePayload, bool) {
	var payload savePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return savePayload{}, false
	}

	if r.Method == http.MethodPut {
		v := shared.NewValidator()
		v.Required("employeeEmail", payload.EmployeeEmail, "is required")
		v.Required("quarter", payload.Quarter, "is required")
		if payload.Year < 2000 || payload.Year > 2100 {
			v.Add("year", "must be a valid year")
		}
		if len(payload.Targets) == 0 {
			v.Add("targets", "at least one target is required")
		}
		if v.Reject(w, middleware.GetRequestID(r.Context())) {
			return savePayload{}, false
		}
	}
	return payload, true
}

func (h *Handler) failBudget(w http.ResponseWriter, r *http.Request, report targets.BudgetReport, err error) {
	var exceeded *targets.BudgetExceededError
	var total *targets.TotalWeightError
	switch {
	case errors.Is(err, targets.ErrNoTargets):
		api.Fail(w, http.StatusBadRequest, "no_targets", err.Error(), middleware.GetRequestID(r.Context()))
	case errors.As(err, &exceeded), errors.As(err, &total):
		api.FailWithDetails(w, http.StatusBadRequest, "budget_error", err.Error(),
			map[string]any{"budget": report}, middleware.GetRequestID(r.Context()))
	default:
		api.Fail(w, http.StatusInternalServerError, "targets_failed", "failed to save targets", middleware.GetRequestID(r.Context()))
	}
}
