package services

import (
	"errors"
	"strings"
)

var (
	// ErrConflict is returned when a username or email is already taken.
	ErrConflict = errors.New("username or email already exists")

	// ErrInvalidCredentials is returned for both an unknown username and a
	// wrong password. Callers must not be able to tell which one failed.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")
)

// ValidationError reports which input fields were rejected.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid fields: " + strings.Join(e.Fields, ", ")
}
