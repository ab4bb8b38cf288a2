package reviewshandler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"scorecard/internal/domain/auth"
	"scorecard/internal/domain/review"
	"scorecard/internal/domain/scorecard"
	"scorecard/internal/domain/scoring"
	"scorecard/internal/transport/http/api"
	"scorecard/internal/transport/http/middleware"
	"scorecard/internal/transport/http/shared"
)

const (
	periodMonthly = "monthly"
)

type Handler struct {
	Scorecards *scorecard.Service
	Perms      middleware.PermissionStore
}

func NewHandler(scorecards *scorecard.Service, perms middleware.PermissionStore) *Handler {
	return &Handler{Scorecards: scorecards, Perms: perms}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reviews", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermReviewsGenerate, h.Perms)).Post("/generate", h.handleGenerate)
		r.With(middleware.RequirePermission(auth.PermReviewsGenerate, h.Perms)).Post("/comment-suggestions", h.handleCommentSuggestions)
	})
}

// handleGenerate synthesizes a period review from the employee's stored
// scorecard history, a consistent snapshot at generation time.
func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUser(r.Context()); !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var payload struct {
		EmployeeEmail string `json:"employeeEmail"`
		EmployeeName  string `json:"employeeName"`
		PeriodType    string `json:"periodType"`
		Year          int    `json:"year"`
		Month         int    `json:"month"`
		Quarter       string `json:"quarter"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	now := time.Now()
	if payload.PeriodType == "" {
		payload.PeriodType = review.PeriodQuarterly
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
	v.Required("employeeEmail", payload.EmployeeEmail, "is required")
	v.Enum("periodType", payload.PeriodType,
		[]string{periodMonthly, review.PeriodQuarterly, review.PeriodYearly},
		"must be monthly, quarterly or yearly")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	var history []scorecard.Submission
	var err error
	switch payload.PeriodType {
	case periodMonthly:
		history, err = h.Scorecards.MonthHistory(r.Context(), payload.EmployeeEmail, payload.Year, payload.Month)
	case review.PeriodYearly:
		history, err = h.Scorecards.YearHistory(r.Context(), payload.EmployeeEmail, payload.Year)
	default:
		history, err = h.Scorecards.QuarterHistory(r.Context(), payload.EmployeeEmail, payload.Year, payload.Quarter)
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "review_failed", "failed to load scorecard history", middleware.GetRequestID(r.Context()))
		return
	}

	input := review.Input{Name: payload.EmployeeName, Scores: flatten(history)}
	if input.Name == "" && len(history) > 0 {
		input.Name = history[0].EmployeeName
	}

	var result review.Result
	if payload.PeriodType == periodMonthly {
		result = review.MonthlyReview(input, payload.Month, payload.Year)
	} else {
		result = review.PeriodReview(input, payload.PeriodType)
	}
	api.Success(w, result, middleware.GetRequestID(r.Context()))
}

// handleCommentSuggestions drafts manager comments for one score line.
func (h *Handler) handleCommentSuggestions(w http.ResponseWriter, r *http.Request) {
	var item scoring.LineItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("measure", item.Measure, "is required")
	v.Range("rating", item.Rating, 0, 5, "must be between 0 and 5")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	api.Success(w, map[string]any{
		"suggestions": review.CommentSuggestions(item),
	}, middleware.GetRequestID(r.Context()))
}

func flatten(history []scorecard.Submission) []scoring.LineItem {
	var items []scoring.LineItem
	for _, entry := range history {
		items = append(items, entry.Scores...)
	}
	return items
}
