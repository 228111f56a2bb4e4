package match

import (
	"math"
	"sort"
	"time"

	"github.com/godiehurtado/nearsy-app-sub000/internal/domain"
	"github.com/godiehurtado/nearsy-app-sub000/pkg/e"
)

// Options carries the per-query knobs. Now is threaded explicitly so the
// ranker stays a pure function over its snapshot.
type Options struct {
	Now          time.Time
	RadiusMeters float64
	Staleness    time.Duration
	Mode         Mode
}

// ModeFor derives the operating mode from the requester's own record.
func ModeFor(requester *domain.UserLocationRecord) Mode {
	if requester.IsReviewer {
		return ModeReviewer
	}
	return ModeNormal
}

// Rank evaluates the candidate pool for one requester: drops self and
// blocked pairs, applies the mode gate, computes distances and returns
// matches ordered ascending by distance. Entries without a distance
// (demo accounts in reviewer mode) sort last in insertion order.
//
// An empty pool or a requester without coordinates yields an empty
// result, never an error.
func Rank(requester *domain.UserLocationRecord, pool []domain.UserLocationRecord, opts Options) ([]domain.NearbyMatch, error) {
	if requester == nil {
		return nil, e.ErrUnknownRequester
	}
	if opts.RadiusMeters < 0 || math.IsNaN(opts.RadiusMeters) || math.IsInf(opts.RadiusMeters, 0) {
		return nil, e.ErrInvalidRadius
	}
	if opts.Staleness < 0 {
		return nil, e.ErrInvalidStaleness
	}

	requesterIDs := requester.ContactIdentifiers()
	requesterBlocked := requester.BlockedContacts

	matches := make([]domain.NearbyMatch, 0, len(pool))
	for i := range pool {
		cand := &pool[i]
		if cand.ID == requester.ID {
			continue
		}
		if Blocked(requesterIDs, requesterBlocked, cand.ContactIdentifiers(), cand.BlockedContacts) {
			continue
		}

		if opts.Mode == ModeReviewer {
			if !cand.IsDemoUser {
				continue
			}
			m := domain.NearbyMatch{UserID: cand.ID.String()}
			// Demo entries may have no real position; distance is
			// attached only when both sides have coordinates.
			if requester.Coordinates != nil && cand.Coordinates != nil {
				d := Distance(*requester.Coordinates, *cand.Coordinates)
				m.DistanceM = &d
			}
			matches = append(matches, m)
			continue
		}

		if !Eligible(cand, opts.Now, opts.Staleness, ModeNormal) {
			continue
		}
		// Requester location unknown: cannot compute distance,
		// degrade to "nobody nearby" rather than error.
		if requester.Coordinates == nil {
			continue
		}
		d := Distance(*requester.Coordinates, *cand.Coordinates)
		if d > opts.RadiusMeters {
			continue
		}
		matches = append(matches, domain.NearbyMatch{UserID: cand.ID.String(), DistanceM: &d})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		a, b := matches[i].DistanceM, matches[j].DistanceM
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a < *b
		}
	})

	return matches, nil
}
