package peerfeedbackhandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"scorecard/internal/domain/auth"
	"scorecard/internal/domain/peerfeedback"
	"scorecard/internal/transport/http/api"
	"scorecard/internal/transport/http/middleware"
	"scorecard/internal/transport/http/shared"
)

type Handler struct {
	Service *peerfeedback.Service
	Perms   middleware.PermissionStore
}

func NewHandler(service *peerfeedback.Service, perms middleware.PermissionStore) *Handler {
	return &Handler{Service: service, Perms: perms}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/peer-feedback", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermPeerFeedbackRead, h.Perms)).Get("/requests", h.handlePendingRequests)
		r.With(middleware.RequirePermission(auth.PermPeerFeedbackRequest, h.Perms)).Post("/requests", h.handleRequestFeedback)
		r.With(middleware.RequirePermission(auth.PermPeerFeedbackWrite, h.Perms)).Post("/", h.handleSubmit)
		r.With(middleware.RequirePermission(auth.PermPeerFeedbackRead, h.Perms)).Get("/aggregate", h.handleAggregate)
	})
}

func (h *Handler) handlePendingRequests(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	requests, err := h.Service.PendingRequests(r.Context(), user.Email)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "requests_failed", "failed to list feedback requests", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, requests, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleRequestFeedback(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUser(r.Context()); !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var payload struct {
		EmployeeEmail  string   `json:"employeeEmail"`
		EmployeeName   string   `json:"employeeName"`
		ReviewerEmails []string `json:"reviewerEmails"`
		Year           int      `json:"year"`
		Quarter        string   `json:"quarter"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("employeeEmail", payload.EmployeeEmail, "is required")
	v.Required("quarter", payload.Quarter, "is required")
	if payload.Year < 2000 || payload.Year > 2100 {
		v.Add("year", "must be a valid year")
	}
	if len(payload.ReviewerEmails) == 0 {
		v.Add("reviewerEmails", "at least one reviewer is required")
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	if err := h.Service.RequestFeedback(r.Context(), payload.EmployeeEmail, payload.EmployeeName,
		payload.ReviewerEmails, payload.Year, payload.Quarter); err != nil {
		api.Fail(w, http.StatusInternalServerError, "request_failed", "failed to create feedback requests", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]any{"requested": len(payload.ReviewerEmails)}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var record peerfeedback.Record
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	record.ReviewerEmail = user.Email

	issues, err := h.Service.Submit(r.Context(), record)
	if err != nil {
		if errors.Is(err, peerfeedback.ErrAlreadySubmitted) {
			api.Fail(w, http.StatusConflict, "already_submitted", err.Error(), middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "submit_failed", "failed to store feedback", middleware.GetRequestID(r.Context()))
		return
	}
	if len(issues) > 0 {
		api.FailWithDetails(w, http.StatusBadRequest, "validation_error", "payload validation failed",
			map[string]any{"fields": issues}, middleware.GetRequestID(r.Context()))
		return
	}

	// the response never carries reviewer identity back out
	api.Created(w, map[string]any{"status": "submitted"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleAggregate(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	period := shared.ParsePeriod(r, time.Now())
	aggregate, err := h.Service.Aggregated(r.Context(), user.Email, period.Year, period.Quarter)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "aggregate_failed", "failed to aggregate feedback", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, aggregate, middleware.GetRequestID(r.Context()))
}
