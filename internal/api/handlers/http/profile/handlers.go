package profile

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/godiehurtado/nearsy-app-sub000/internal/domain"
	"github.com/godiehurtado/nearsy-app-sub000/pkg/validator"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type ProfileWriter interface {
	ReportLocation(ctx context.Context, userID string, req domain.ReportLocationRequest) error
	SetVisibility(ctx context.Context, userID string, req domain.SetVisibilityRequest) error
	BlockContact(ctx context.Context, userID string, req domain.BlockContactRequest) error
	UnblockContact(ctx context.Context, userID string, req domain.BlockContactRequest) error
}

type Handler struct {
	logger  *slog.Logger
	Profile ProfileWriter
}

func NewHandler(logger *slog.Logger, profile ProfileWriter) *Handler {
	return &Handler{
		logger:  logger,
		Profile: profile,
	}
}

func (h *Handler) ProfileReportLocation(w http.ResponseWriter, r *http.Request) {
	var req domain.ReportLocationRequest
	if !h.decode(w, r, &req) {
		return
	}

	userID := chi.URLParam(r, "id")
	if err := h.Profile.ReportLocation(r.Context(), userID, req); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ProfileSetVisibility(w http.ResponseWriter, r *http.Request) {
	var req domain.SetVisibilityRequest
	if !h.decode(w, r, &req) {
		return
	}

	userID := chi.URLParam(r, "id")
	if err := h.Profile.SetVisibility(r.Context(), userID, req); err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Info("visibility updated", slog.String("user_id", userID), slog.Bool("visible", *req.Visible))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ProfileBlockContact(w http.ResponseWriter, r *http.Request) {
	var req domain.BlockContactRequest
	if !h.decode(w, r, &req) {
		return
	}

	userID := chi.URLParam(r, "id")
	if err := h.Profile.BlockContact(r.Context(), userID, req); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ProfileUnblockContact(w http.ResponseWriter, r *http.Request) {
	var req domain.BlockContactRequest
	if !h.decode(w, r, &req) {
		return
	}

	userID := chi.URLParam(r, "id")
	if err := h.Profile.UnblockContact(r.Context(), userID, req); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, target interface{}) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(target); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return false
	}

	if err := dec.Decode(&struct{}{}); err != io.EOF {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return false
	}

	if err := validator.ValidateStruct(target); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return false
	}
	return true
}
