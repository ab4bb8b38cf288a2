package reportshandler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"scorecard/internal/domain/auth"
	"scorecard/internal/domain/reports"
	"scorecard/internal/transport/http/api"
	"scorecard/internal/transport/http/middleware"
	"scorecard/internal/transport/http/shared"
)

type Handler struct {
	Service *reports.Service
	Perms   middleware.PermissionStore
}

func NewHandler(service *reports.Service, perms middleware.PermissionStore) *Handler {
	return &Handler{Service: service, Perms: perms}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermReportsRead, h.Perms)).Get("/dashboard", h.handleDashboard)
		r.With(middleware.RequirePermission(auth.PermReportsTeam, h.Perms)).Get("/team", h.handleTeam)
		r.With(middleware.RequirePermission(auth.PermReportsRead, h.Perms)).Get("/quarterly-review", h.handleQuarterlyReview)
		r.With(middleware.RequirePermission(auth.PermReportsRead, h.Perms)).Get("/quarterly-review/pdf", h.handleQuarterlyReviewPDF)
	})
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	dashboard, err := h.Service.Dashboard(r.Context(), user.Email)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "dashboard_failed", "failed to build dashboard", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, dashboard, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleTeam(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	overview, err := h.Service.TeamOverview(r.Context(), user.Email)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "team_failed", "failed to build team overview", middleware.GetRequestID(r.Context()))
		return
	}
	shared.WriteTotal(w, len(overview))
	api.Success(w, overview, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleQuarterlyReview(w http.ResponseWriter, r *http.Request) {
	review, ok := h.buildQuarterlyReview(w, r)
	if !ok {
		return
	}
	api.Success(w, review, middleware.GetRequestID(r.Context()))
}

// handleQuarterlyReviewPDF streams the same review as a landscape PDF.
func (h *Handler) handleQuarterlyReviewPDF(w http.ResponseWriter, r *http.Request) {
	review, ok := h.buildQuarterlyReview(w, r)
	if !ok {
		return
	}

	doc, err := reports.QuarterlyReviewPDF(review)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "pdf_failed", "failed to render review", middleware.GetRequestID(r.Context()))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("quarterly-review-%d-%s.pdf", review.Year, review.Quarter)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}

func (h *Handler) buildQuarterlyReview(w http.ResponseWriter, r *http.Request) (reports.QuarterlyReview, bool) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return reports.QuarterlyReview{}, false
	}

	period := shared.ParsePeriod(r, time.Now())
	review, err := h.Service.QuarterlyReview(r.Context(), user.Email, user.Name, period.Year, period.Quarter)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "review_failed", "failed to build quarterly review", middleware.GetRequestID(r.Context()))
		return reports.QuarterlyReview{}, false
	}
	return review, true
}
