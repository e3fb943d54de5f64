package overview

import (
	"log/slog"
	"net/http"

	"github.com/wangserena1960-stack/fitcircle-backend/internal/httputil"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service Service
	logger  *slog.Logger
}

func NewHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/admin/overview", h.Summary)
}

func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	httputil.RespondWithJSON(w, http.StatusOK, h.service.Summary(r.Context()))
}
