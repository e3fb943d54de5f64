package leave

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

// RegisterRoutes wires the leave-request endpoints. chi matches the literal
// /decision suffix before the bare id capture, so the decision route never
// falls through to a generic id handler.
func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/leave-requests", h.List)
	router.Post("/leave-requests", h.Create)
	router.Post("/leave-requests/{id}/decision", h.Decide)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		httputil.RespondWithError(w, http.StatusBadRequest, "student_id, class_id, type and lesson_date are required")
		return
	}

	h.logger.InfoContext(r.Context(), "creating leave request", "student_id", req.StudentID, "class_id", req.ClassID)
	created, err := h.service.Create(r.Context(), &req)
	if err != nil {
		httputil.RespondServiceError(w, r, h.logger, err)
		return
	}

	h.metrics.RecordCreated(r.Context(), "leave_request")

	httputil.RespondWithJSON(w, http.StatusCreated, map[string]int{"id": created.ID})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	requests, err := h.service.ListByStatus(r.Context(), status)
	if err != nil {
		httputil.RespondServiceError(w, r, h.logger, err)
		return
	}
	if requests == nil {
		requests = []LeaveRequest{}
	}

	httputil.RespondWithJSON(w, http.StatusOK, requests)
}

func (h *Handler) Decide(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		httputil.RespondWithError(w, http.StatusBadRequest, "invalid leave request id")
		return
	}

	var req DecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		httputil.RespondWithError(w, http.StatusBadRequest, "decision must be accept or reject")
		return
	}

	h.logger.InfoContext(r.Context(), "deciding leave request", "id", id, "decision", req.Decision)
	if err := h.service.Decide(r.Context(), id, &req); err != nil {
		httputil.RespondServiceError(w, r, h.logger, err)
		return
	}

	h.metrics.RecordLeaveDecision(r.Context(), req.Decision)

	httputil.RespondWithJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
