package httputil

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/wangserena1960-stack/fitcircle-backend/internal/apperr"
)

// RespondWithError writes an error response in JSON format
func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, map[string]string{"error": message})
}

// RespondWithJSON writes a JSON response
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// RespondServiceError is the single boundary mapper from service errors to
// HTTP responses. Client-caused categories keep their message; everything
// else is logged and surfaced as a generic 500 so storage internals never
// leak to the caller.
func RespondServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindInvalid:
		RespondWithError(w, http.StatusBadRequest, err.Error())
	case apperr.KindNotFound:
		RespondWithError(w, http.StatusNotFound, err.Error())
	case apperr.KindUnauthorized:
		RespondWithError(w, http.StatusUnauthorized, err.Error())
	default:
		logger.ErrorContext(r.Context(), "internal error", "error", err, "path", r.URL.Path)
		RespondWithError(w, http.StatusInternalServerError, "internal server error")
	}
}
