package middleware

import (
	"encoding/json"
	"net/http"

	"log/slog"
)

// APIKey guards the admin surface with a shared X-API-Key header.
// An empty configured key disables the check, which is only
// acceptable in local setups.
func APIKey(apiKey string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if apiKey == "" {
				next.ServeHTTP(w, r)
				return
			}

			if r.Header.Get("X-API-Key") != apiKey {
				logger.Warn("admin request with bad api key", slog.String("path", r.URL.Path))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
