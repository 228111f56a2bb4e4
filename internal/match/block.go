package match

import (
	"strings"
	"unicode"
)

// NormalizeIdentifier lowercases a contact identifier and strips all
// whitespace. The same normalization runs on the write path, so set
// membership below never compares raw strings.
func NormalizeIdentifier(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func buildSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		n := NormalizeIdentifier(id)
		if n == "" {
			continue
		}
		set[n] = struct{}{}
	}
	return set
}

// Blocked reports whether either party has blocked the other: any of the
// requester's own identifiers in the candidate's blocked set, or any of
// the candidate's own identifiers in the requester's blocked set.
// Symmetric regardless of who initiated the block.
func Blocked(requesterIDs, requesterBlocked, candidateIDs, candidateBlocked []string) bool {
	candSet := buildSet(candidateBlocked)
	for _, id := range requesterIDs {
		n := NormalizeIdentifier(id)
		if n == "" {
			continue
		}
		if _, ok := candSet[n]; ok {
			return true
		}
	}

	reqSet := buildSet(requesterBlocked)
	for _, id := range candidateIDs {
		n := NormalizeIdentifier(id)
		if n == "" {
			continue
		}
		if _, ok := reqSet[n]; ok {
			return true
		}
	}
	return false
}
