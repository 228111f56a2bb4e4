package public

import (
	"encoding/json"
	"errors"
	"net/http"

	"log/slog"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/godiehurtado/nearsy-app-sub000/pkg/e"
)

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	l := h.log(r)

	var status int
	var msg string
	switch {
	case errors.Is(err, e.ErrUnknownRequester):
		status, msg = http.StatusNotFound, "unknown requester"
	case errors.Is(err, e.ErrNotFound):
		status, msg = http.StatusNotFound, "not found"
	case errors.Is(err, e.ErrInvalidUserID),
		errors.Is(err, e.ErrInvalidCoordinates),
		errors.Is(err, e.ErrInvalidRadius),
		errors.Is(err, e.ErrInvalidStaleness),
		errors.Is(err, e.ErrInvalidInput):
		status, msg = http.StatusBadRequest, err.Error()
	default:
		status, msg = http.StatusInternalServerError, "internal error"
	}

	if status == http.StatusInternalServerError {
		l.Error("handler error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}
	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("json encode failed", slog.Any("error", err))
	}
}
