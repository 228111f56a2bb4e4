package match

import "time"

// Mode selects the candidate gate applied to one query.
type Mode int

const (
	// ModeNormal applies visibility, freshness and radius checks.
	ModeNormal Mode = iota
	// ModeReviewer shows only synthetic demo accounts, bypassing
	// location checks entirely. Used for app-store review.
	ModeReviewer
)

const (
	EarthRadiusMeters = 6371000.0

	// DefaultRadiusMeters is the legacy "20 feet" discovery radius.
	DefaultRadiusMeters = 20 / 3.28084

	DefaultStaleness = 30 * time.Minute
	AlertStaleness   = 5 * time.Minute

	// DefaultCandidateCap bounds the snapshot a single query scans.
	DefaultCandidateCap = 300
)
