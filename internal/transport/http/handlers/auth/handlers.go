package authhandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"scorecard/internal/domain/auth"
	"scorecard/internal/transport/http/api"
	"scorecard/internal/transport/http/middleware"
	"scorecard/internal/transport/http/shared"
)

type Handler struct {
	Service    *auth.Service
	LoginLimit func(http.Handler) http.Handler
}

func NewHandler(service *auth.Service, loginLimit func(http.Handler) http.Handler) *Handler {
	if loginLimit == nil {
		loginLimit = middleware.LoginRateLimit(20, time.Minute)
	}
	return &Handler{Service: service, LoginLimit: loginLimit}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.With(h.LoginLimit).Post("/login", h.handleLogin)
		r.Post("/logout", h.handleLogout)
		r.Get("/me", h.handleMe)
	})
	// the directory backs the peer reviewer picker
	r.Get("/employees", h.handleDirectory)
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var payload loginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("email", payload.Email, "is required")
	v.Required("password", payload.Password, "is required")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	token, emp, err := h.Service.Login(r.Context(), payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "login_failed", "failed to sign in", middleware.GetRequestID(r.Context()))
		return
	}

	api.Success(w, map[string]any{
		"token":    token,
		"employee": emp,
	}, middleware.GetRequestID(r.Context()))
}

// handleLogout acknowledges the sign-out; tokens are stateless, the client
// discards its copy.
func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	api.Success(w, map[string]string{"status": "signed_out"}, middleware.GetRequestID(r.Context()))
}

// handleMe echoes the identity carried by the presented token, the way the
// front end restores a session after reload.
func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, user, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDirectory(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUser(r.Context()); !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	employees, err := h.Service.Directory(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "directory_failed", "failed to list employees", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, employees, middleware.GetRequestID(r.Context()))
}
