package payment

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/wangserena1960-stack/fitcircle-backend/internal/httputil"
	"github.com/wangserena1960-stack/fitcircle-backend/internal/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	service  Service
	validate *validator.Validate
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

func NewHandler(service Service, logger *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(),
		logger:   logger,
		metrics:  m,
	}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/students/{id}/payments", h.ListByStudent)
	router.Post("/students/{id}/payments", h.Create)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	studentID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		httputil.RespondWithError(w, http.StatusBadRequest, "invalid student id")
		return
	}

	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		httputil.RespondWithError(w, http.StatusBadRequest, "amount, paid_at and channel are required")
		return
	}

	h.logger.InfoContext(r.Context(), "recording payment", "student_id", studentID, "amount", req.Amount)
	created, err := h.service.Create(r.Context(), studentID, &req)
	if err != nil {
		httputil.RespondServiceError(w, r, h.logger, err)
		return
	}

	h.metrics.RecordCreated(r.Context(), "payment")
	h.metrics.RecordPayment(r.Context(), created.Amount)

	httputil.RespondWithJSON(w, http.StatusCreated, map[string]int{"id": created.ID})
}

func (h *Handler) ListByStudent(w http.ResponseWriter, r *http.Request) {
	studentID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		httputil.RespondWithError(w, http.StatusBadRequest, "invalid student id")
		return
	}

	payments, err := h.service.ListByStudent(r.Context(), studentID)
	if err != nil {
		httputil.RespondServiceError(w, r, h.logger, err)
		return
	}
	if payments == nil {
		payments = []Payment{}
	}

	httputil.RespondWithJSON(w, http.StatusOK, payments)
}
