package middleware

import (
	"fmt"
	"net/http"

	"golang.org/x/crypto/bcrypt"
)

// PassphraseHeader carries the shared nutritionist passphrase.
const PassphraseHeader = "X-Access-Passphrase"

// HashPassphrase hashes the configured passphrase once at startup.
func HashPassphrase(passphrase string) ([]byte, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(passphrase), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash passphrase: %w", err)
	}
	return hash, nil
}

// AccessGate admits requests whose PassphraseHeader matches hash.
// A missing header is 401, a wrong one is 403.
func AccessGate(hash []byte) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			given := r.Header.Get(PassphraseHeader)
			if given == "" {
				writeError(w, http.StatusUnauthorized, "passphrase required")
				return
			}
			if bcrypt.CompareHashAndPassword(hash, []byte(given)) != nil {
				writeError(w, http.StatusForbidden, "forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
