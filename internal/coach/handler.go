package coach

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

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

// RegisterRoutes wires the coach endpoints. The /admin/coaches paths are
// kept as aliases for older dashboard builds.
func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/coaches", h.List)
	router.Post("/coaches", h.Create)
	router.Get("/admin/coaches", h.List)
	router.Post("/admin/coaches", h.Create)
	router.Put("/coaches/{id}", h.Update)
	router.Delete("/coaches/{id}", h.Delete)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Name = strings.TrimSpace(req.Name)

	if err := h.validate.Struct(&req); err != nil {
		httputil.RespondWithError(w, http.StatusBadRequest, "name is required")
		return
	}

	h.logger.InfoContext(r.Context(), "creating coach", "name", req.Name)
	created, err := h.service.Create(r.Context(), &req)
	if err != nil {
		httputil.RespondServiceError(w, r, h.logger, err)
		return
	}

	h.metrics.RecordCreated(r.Context(), "coach")

	httputil.RespondWithJSON(w, http.StatusCreated, map[string]int{"id": created.ID})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	coaches, err := h.service.List(r.Context())
	if err != nil {
		httputil.RespondServiceError(w, r, h.logger, err)
		return
	}
	if coaches == nil {
		coaches = []Coach{}
	}

	httputil.RespondWithJSON(w, http.StatusOK, coaches)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		httputil.RespondWithError(w, http.StatusBadRequest, "invalid coach id")
		return
	}

	var patch Patch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		httputil.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.logger.InfoContext(r.Context(), "updating coach", "id", id)
	if err := h.service.Update(r.Context(), id, &patch); err != nil {
		httputil.RespondServiceError(w, r, h.logger, err)
		return
	}

	httputil.RespondWithJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		httputil.RespondWithError(w, http.StatusBadRequest, "invalid coach id")
		return
	}

	h.logger.InfoContext(r.Context(), "deleting coach", "id", id)
	if err := h.service.Delete(r.Context(), id); err != nil {
		httputil.RespondServiceError(w, r, h.logger, err)
		return
	}

	httputil.RespondWithJSON(w, http.StatusOK, map[string]bool{"success": true})
}
