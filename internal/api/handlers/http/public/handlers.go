package public

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"log/slog"

	"github.com/godiehurtado/nearsy-app-sub000/internal/domain"
	"github.com/godiehurtado/nearsy-app-sub000/pkg/validator"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type NearbyFinder interface {
	FindNearby(ctx context.Context, req domain.NearbySearchRequest) (domain.NearbySearchResponse, error)
	CountAlerts(ctx context.Context, req domain.AlertCountRequest) (domain.AlertCountResponse, error)
}

type Handler struct {
	logger *slog.Logger
	Nearby NearbyFinder
}

func NewHandler(logger *slog.Logger, nearby NearbyFinder) *Handler {
	return &Handler{
		logger: logger,
		Nearby: nearby,
	}
}

func (h *Handler) PublicNearbySearch(w http.ResponseWriter, r *http.Request) {
	var req domain.NearbySearchRequest
	if !h.decode(w, r, &req) {
		return
	}

	resp, err := h.Nearby.FindNearby(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Info("nearby search served",
		slog.String("user_id", req.UserID),
		slog.Int("matches", len(resp.Matches)),
	)
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) PublicAlertCount(w http.ResponseWriter, r *http.Request) {
	var req domain.AlertCountRequest
	if !h.decode(w, r, &req) {
		return
	}

	resp, err := h.Nearby.CountAlerts(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, target interface{}) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(target); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return false
	}

	// reject trailing garbage after the first object
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
