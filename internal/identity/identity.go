// Package identity is the boundary between the backend and the external
// identity provider. The backend never verifies credentials: it accepts the
// caller-supplied email as the authenticated principal. That trust gap is
// the contract; Verifier exists so a verifying implementation can replace
// Trusted without touching any handler.
package identity

import (
	"errors"
	"strings"
)

// ErrMissing is returned when a request carries no principal at all.
var ErrMissing = errors.New("missing identity")

// Verifier resolves a caller-supplied raw principal to a canonical email.
type Verifier interface {
	Verify(raw string) (string, error)
}

// Trusted accepts any non-empty string as-is. It performs no verification
// whatsoever; any caller can act as any email.
type Trusted struct{}

func (Trusted) Verify(raw string) (string, error) {
	email := strings.TrimSpace(raw)
	if email == "" {
		return "", ErrMissing
	}
	return email, nil
}
