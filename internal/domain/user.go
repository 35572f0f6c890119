package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxUsernameLength bounds the username accepted at login.
const MaxUsernameLength = 100

// User is an identity created lazily on first login. Usernames are
// case-sensitive and never change.
type User struct {
	ID        uuid.UUID
	Username  string
	CreatedAt time.Time
}

// NormalizeUsername trims surrounding whitespace; case is preserved.
func NormalizeUsername(s string) string {
	return strings.TrimSpace(s)
}
