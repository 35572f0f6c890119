package identity

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/heartmarshall/healthscan-backend/internal/domain"
)

// LoginInput holds the parameters for a login.
type LoginInput struct {
	Username string
}

// Validate checks all fields and collects all errors.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Username)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if utf8.RuneCountInString(name) > domain.MaxUsernameLength {
		errs = append(errs, domain.FieldError{Field: "username", Message: "max 100 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	User        domain.User
	Created     bool
	AccessToken string
	ExpiresAt   time.Time
}
