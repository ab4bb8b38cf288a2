package scorecardhandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"scorecard/internal/domain/auth"
	"scorecard/internal/domain/progress"
	"scorecard/internal/domain/scorecard"
	"scorecard/internal/transport/http/api"
	"scorecard/internal/transport/http/middleware"
	"scorecard/internal/transport/http/shared"
)

type Handler struct {
	Service *scorecard.Service
	Perms   middleware.PermissionStore
}

func NewHandler(service *scorecard.Service, perms middleware.PermissionStore) *Handler {
	return &Handler{Service: service, Perms: perms}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/scorecards", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermScorecardsWrite, h.Perms)).Post("/", h.handleSubmit)
		r.With(middleware.RequirePermission(auth.PermScorecardsRead, h.Perms)).Get("/", h.handleHistory)
		r.With(middleware.RequirePermission(auth.PermScorecardsRead, h.Perms)).Get("/history", h.handleHistory)
		r.With(middleware.RequirePermission(auth.PermScorecardsRead, h.Perms)).Get("/progress", h.handleProgress)
		r.With(middleware.RequirePermission(auth.PermScorecardsRead, h.Perms)).Get("/template", h.handleTemplate)
	})
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	sub := scorecard.NormalizeRecord(raw)
	// the authenticated identity wins over whatever the payload claims
	sub.EmployeeEmail = user.Email
	if sub.EmployeeName == "" {
		sub.EmployeeName = user.Name
	}
	if sub.Department == "" {
		sub.Department = user.Department
	}

	stored, issues, err := h.Service.Submit(r.Context(), sub)
	if err != nil {
		if errors.Is(err, scorecard.ErrDuplicateSubmission) {
			api.Fail(w, http.StatusConflict, "duplicate_submission", err.Error(), middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "submit_failed", "failed to store scorecard", middleware.GetRequestID(r.Context()))
		return
	}
	if len(issues) > 0 {
		api.FailWithDetails(w, http.StatusBadRequest, "validation_error", "payload validation failed",
			map[string]any{"fields": issues}, middleware.GetRequestID(r.Context()))
		return
	}

	api.Created(w, stored, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	query := r.URL.Query()
	if year, err := strconv.Atoi(query.Get("year")); err == nil && year > 0 {
		if quarter := strings.ToUpper(strings.TrimSpace(query.Get("quarter"))); quarter != "" {
			entries, err := h.Service.QuarterHistory(r.Context(), user.Email, year, quarter)
			if err != nil {
				api.Fail(w, http.StatusInternalServerError, "history_failed", "failed to list scorecards", middleware.GetRequestID(r.Context()))
				return
			}
			api.Success(w, entries, middleware.GetRequestID(r.Context()))
			return
		}
		if month, err := strconv.Atoi(query.Get("month")); err == nil && month >= 1 && month <= 12 {
			entries, err := h.Service.MonthHistory(r.Context(), user.Email, year, month)
			if err != nil {
				api.Fail(w, http.StatusInternalServerError, "history_failed", "failed to list scorecards", middleware.GetRequestID(r.Context()))
				return
			}
			api.Success(w, entries, middleware.GetRequestID(r.Context()))
			return
		}
		entries, err := h.Service.YearHistory(r.Context(), user.Email, year)
		if err != nil {
			api.Fail(w, http.StatusInternalServerError, "history_failed", "failed to list scorecards", middleware.GetRequestID(r.Context()))
			return
		}
		api.Success(w, entries, middleware.GetRequestID(r.Context()))
		return
	}

	page := shared.ParsePagination(r, 50, 200)
	entries, err := h.Service.History(r.Context(), user.Email, page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "history_failed", "failed to list scorecards", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, entries, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleTemplate(w http.ResponseWriter, r *http.Request) {
	api.Success(w, scorecard.DefaultTemplate(), middleware.GetRequestID(r.Context()))
}

// handleProgress rolls one cumulative measure up against its target across
// the current reporting window.
func (h *Handler) handleProgress(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	query := r.URL.Query()
	dimension := strings.TrimSpace(query.Get("dimension"))
	measure := strings.TrimSpace(query.Get("measure"))
	frequency := strings.TrimSpace(query.Get("frequency"))
	target, _ := strconv.ParseFloat(query.Get("target"), 64)

	v := shared.NewValidator()
	v.Required("dimension", dimension, "is required")
	v.Required("measure", measure, "is required")
	if target <= 0 {
		v.Add("target", "must be a positive number")
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	period := shared.ParsePeriod(r, time.Now())
	var history []scorecard.Submission
	var err error
	if strings.EqualFold(frequency, "quarterly") {
		history, err = h.Service.QuarterHistory(r.Context(), user.Email, period.Year, period.Quarter)
	} else {
		history, err = h.Service.MonthHistory(r.Context(), user.Email, period.Year, period.Month)
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "progress_failed", "failed to load scorecard history", middleware.GetRequestID(r.Context()))
		return
	}

	summary := progress.Summarize(history, dimension, measure, target, frequency)
	api.Success(w, summary, middleware.GetRequestID(r.Context()))
}
