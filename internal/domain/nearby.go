package domain

import (
	"time"

	"github.com/google/uuid"
)

type NearbySearchRequest struct {
	UserID      string   `json:"user_id" validate:"required,uuid"`
	Lat         *float64 `json:"lat" validate:"omitempty,lat"`
	Lng         *float64 `json:"lng" validate:"omitempty,lng"`
	RadiusM     *float64 `json:"radius_m" validate:"omitempty,radius_m"`
	StalenessMS *int64   `json:"staleness_ms" validate:"omitempty,min=0"`
}

type NearbyMatch struct {
	UserID    string   `json:"user_id"`
	DistanceM *float64 `json:"distance_m,omitempty"` // absent for demo entries in reviewer mode
}

type NearbySearchResponse struct {
	Matches []NearbyMatch `json:"matches"`
}

type AlertCountRequest struct {
	UserID string   `json:"user_id" validate:"required,uuid"`
	Lat    *float64 `json:"lat" validate:"omitempty,lat"`
	Lng    *float64 `json:"lng" validate:"omitempty,lng"`
}

type AlertCountResponse struct {
	Count int `json:"count"`
}

// AlertPayload goes onto the push queue when a user has pending
// nearby alerts; the sender forwards it to the push gateway.
type AlertPayload struct {
	UserID    string    `json:"user_id"`
	Count     int       `json:"count"`
	CheckedAt time.Time `json:"checked_at"`
}

// NearbyCheck is the audit row persisted per nearby query.
type NearbyCheck struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	Lat        *float64  `json:"lat,omitempty"`
	Lng        *float64  `json:"lng,omitempty"`
	MatchCount int       `json:"match_count"`
	CheckedAt  time.Time `json:"checked_at"`
}
