package auth

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// Middleware rejects requests whose bearer token does not resolve to the
// expected user. With an empty secret the API is open (anonymous mode).
func Middleware(secret string, expected uuid.UUID) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret == "" {
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get("Authorization")

			tokenStr, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			userID, err := Parse(secret, tokenStr)
			if err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			if userID != expected {
				http.Error(w, "token does not match session owner", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
