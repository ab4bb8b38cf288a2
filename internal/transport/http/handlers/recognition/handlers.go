package recognitionhandler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"scorecard/internal/domain/auth"
	"scorecard/internal/domain/recognition"
	"scorecard/internal/domain/scorecard"
	"scorecard/internal/transport/http/api"
	"scorecard/internal/transport/http/middleware"
	"scorecard/internal/transport/http/shared"
)

type Handler struct {
	Service *recognition.Service
	Perms   middleware.PermissionStore
}

func NewHandler(service *recognition.Service, perms middleware.PermissionStore) *Handler {
	return &Handler{Service: service, Perms: perms}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/recognition", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermRecognitionRead, h.Perms)).Get("/", h.handleList)
		r.With(middleware.RequirePermission(auth.PermRecognitionRead, h.Perms)).Get("/mine", h.handleMine)
		r.With(middleware.RequirePermission(auth.PermRecognitionCompute, h.Perms)).Post("/compute", h.handleCompute)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	recognitions, err := h.Service.List(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "recognition_failed", "failed to list recognitions", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, recognitions, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleMine(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	recognitions, err := h.Service.ListForEmployee(r.Context(), user.Email)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "recognition_failed", "failed to list recognitions", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, recognitions, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCompute(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Period  string `json:"period"`
		Year    int    `json:"year"`
		Month   int    `json:"month"`
		Quarter string `json:"quarter"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	now := time.Now()
	if payload.Period == "" {
		payload.Period = recognition.PeriodMonth
	}
	if payload.Year == 0 {
		payload.Year = now.Year()
	}
	if payload.Month == 0 {
		payload.Month = int(now.Month())
	}
	if payload.Quarter == "" {
		payload.Quarter = scorecard.QuarterOf(payload.Month)
	}

	v := shared.NewValidator()
	v.Enum("period", payload.Period,
		[]string{recognition.PeriodMonth, recognition.PeriodQuarter, recognition.PeriodYear},
		"must be month, quarter or year")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	recognitions, err := h.Service.Compute(r.Context(), payload.Period, payload.Year, payload.Month, payload.Quarter)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "compute_failed", "failed to compute recognitions", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, recognitions, middleware.GetRequestID(r.Context()))
}
