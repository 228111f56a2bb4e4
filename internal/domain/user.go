package domain

import (
	"time"

	"github.com/google/uuid"
)

type Coordinates struct {
	Lat float64 `json:"lat" validate:"lat"`   // -90..90
	Lng float64 `json:"lng" validate:"lng"`   // -180..180
}

// UserLocationRecord is one user's discoverable state: last known
// position, opt-in visibility, contact identifiers and block list.
// Owned and written by its subject user; matching reads a snapshot.
type UserLocationRecord struct {
	ID              uuid.UUID    `json:"id"`
	Visible         bool         `json:"visible"`
	Coordinates     *Coordinates `json:"coordinates,omitempty"` // nil if never reported
	LastSeenAt      time.Time    `json:"last_seen_at,omitzero"` // zero means no timestamp, treated as fresh
	Email           string       `json:"email,omitempty"`
	Phone           string       `json:"phone,omitempty"`
	BlockedContacts []string     `json:"blocked_contacts,omitempty"`
	IsDemoUser      bool         `json:"is_demo_user"`
	IsReviewer      bool         `json:"is_reviewer"`
	CreatedAt       time.Time    `json:"created_at"`
}

// ContactIdentifiers returns the user's own normalized identifiers
// (email, digits-only phone) used for mutual block resolution.
func (u *UserLocationRecord) ContactIdentifiers() []string {
	ids := make([]string, 0, 2)
	if u.Email != "" {
		ids = append(ids, u.Email)
	}
	if u.Phone != "" {
		ids = append(ids, u.Phone)
	}
	return ids
}
