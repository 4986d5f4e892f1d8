// Package auth gates item routes behind a static shared secret.
package auth

import (
	"crypto/subtle"
	"errors"
	"net/http"
)

// HeaderName is the request header carrying the caller's credential.
const HeaderName = "X-API-Key"

// ErrMissingAPIKey is returned when the credential header is absent.
var ErrMissingAPIKey = errors.New("missing " + HeaderName + " header")

// ExtractAPIKey pulls the caller-supplied credential from the request.
func ExtractAPIKey(r *http.Request) (string, error) {
	key := r.Header.Get(HeaderName)
	if key == "" {
		return "", ErrMissingAPIKey
	}
	return key, nil
}

// Gate validates the shared secret on every request before the handler runs.
type Gate struct {
	secret []byte
}

func NewGate(secret string) *Gate {
	return &Gate{secret: []byte(secret)}
}

// Verify reports whether the supplied key matches the configured secret. The
// comparison is constant-time so response timing leaks nothing about the
// secret's prefix.
func (g *Gate) Verify(key string) bool {
	return subtle.ConstantTimeCompare([]byte(key), g.secret) == 1
}

// Middleware rejects unauthenticated requests with a generic 401 body that
// reveals nothing about the expected secret or whether a target id exists.
func (g *Gate) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key, err := ExtractAPIKey(r)
		if err != nil || !g.Verify(key) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"Unauthorized","code":401}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}
