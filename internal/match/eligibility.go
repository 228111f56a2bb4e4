package match

import (
	"time"

	"github.com/godiehurtado/nearsy-app-sub000/internal/domain"
)

// Eligible reports whether a candidate record passes the visibility and
// freshness gate. The caller excludes the requester itself beforehand.
func Eligible(rec *domain.UserLocationRecord, now time.Time, staleness time.Duration, mode Mode) bool {
	if mode == ModeReviewer {
		return rec.IsDemoUser
	}
	if !rec.Visible || rec.Coordinates == nil {
		return false
	}
	// A record without a timestamp is never treated as stale.
	if rec.LastSeenAt.IsZero() {
		return true
	}
	return now.Sub(rec.LastSeenAt) <= staleness
}
