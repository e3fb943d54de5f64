package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/wangserena1960-stack/fitcircle-backend/internal/httputil"
	"github.com/wangserena1960-stack/fitcircle-backend/internal/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	service  *Service
	validate *validator.Validate
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

func NewHandler(service *Service, logger *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(),
		logger:   logger,
		metrics:  m,
	}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/login", h.Login)
	router.Get("/login-debug", h.LoginDebug)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		httputil.RespondWithError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		h.metrics.RecordLogin(r.Context(), false)
		httputil.RespondServiceError(w, r, h.logger, err)
		return
	}

	h.logger.InfoContext(r.Context(), "admin logged in", "email", req.Email)
	h.metrics.RecordLogin(r.Context(), true)

	SetAuthCookie(w, resp.Token)

	httputil.RespondWithJSON(w, http.StatusOK, resp)
}

// LoginDebug compares the supplied credentials against the demo constants.
// Debug-only; touches no storage.
func (h *Handler) LoginDebug(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	password := r.URL.Query().Get("password")

	httputil.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"email":        email,
		"password":     password,
		"matchDemo":    email == DemoEmail && password == DemoPassword,
		"demoEmail":    DemoEmail,
		"demoPassword": DemoPassword,
	})
}
