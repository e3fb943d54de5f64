package class

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
	router.Get("/classes", h.List)
	router.Post("/classes", h.Create)
	router.Put("/classes/{id}", h.Update)
	router.Delete("/classes/{id}", h.Delete)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		httputil.RespondWithError(w, http.StatusBadRequest, "coach_id and name are required")
		return
	}

	h.logger.InfoContext(r.Context(), "creating class", "name", req.Name, "coach_id", req.CoachID)
	created, err := h.service.Create(r.Context(), &req)
	if err != nil {
		httputil.RespondServiceError(w, r, h.logger, err)
		return
	}

	h.metrics.RecordCreated(r.Context(), "class")

	httputil.RespondWithJSON(w, http.StatusCreated, map[string]int{"id": created.ID})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	classes, err := h.service.List(r.Context())
	if err != nil {
		httputil.RespondServiceError(w, r, h.logger, err)
		return
	}
	if classes == nil {
		classes = []Class{}
	}

	httputil.RespondWithJSON(w, http.StatusOK, classes)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		httputil.RespondWithError(w, http.StatusBadRequest, "invalid class id")
		return
	}

	var patch Patch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		httputil.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.logger.InfoContext(r.Context(), "updating class", "id", id)
	if err := h.service.Update(r.Context(), id, &patch); err != nil {
		httputil.RespondServiceError(w, r, h.logger, err)
		return
	}

	httputil.RespondWithJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		httputil.RespondWithError(w, http.StatusBadRequest, "invalid class id")
		return
	}

	h.logger.InfoContext(r.Context(), "deleting class", "id", id)
	if err := h.service.Delete(r.Context(), id); err != nil {
		httputil.RespondServiceError(w, r, h.logger, err)
		return
	}

	httputil.RespondWithJSON(w, http.StatusOK, map[string]bool{"success": true})
}
