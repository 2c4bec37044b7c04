package utils

import (
	"github.com/google/uuid"
)

// GenerateSessionToken returns an opaque identifier for a new session.
// Tokens carry no information about the user; the binding lives server-side.
func GenerateSessionToken() string {
	return uuid.NewString()
}
