// Package services defines the business logic for the recipe blog: recipe
// lifecycle, catalog feeds, search, comment moderation, ratings, likes, and
// account sessions. This file centralizes common service-level error values
// so that they can be consistently returned by service methods and checked
// by callers.
//
// These errors are intended for internal use by the service layer; translation
// into user-facing messages or HTTP status codes is performed at the
// handler layer.
package services

import (
	"errors"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/foodlog/go-recipe-backend/internal/repo"
)

var (
	// ErrRecipeNotFound indicates that the requested recipe does not exist
	// or, for owner-scoped operations, is not owned by the current user.
	ErrRecipeNotFound = errors.New("recipe not found")

	// ErrCategoryNotFound indicates that the requested category does not exist.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCommentNotFound indicates that the requested comment does not exist.
	ErrCommentNotFound = errors.New("comment not found")

	// ErrPermissionDenied is returned when a caller attempts a staff-only or
	// owner-only operation without the required privilege.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrInvalidRating is returned when a rating value is outside [1,5].
	ErrInvalidRating = errors.New("rating value must be between 1 and 5")

	// ErrUsernameTaken is returned when registering an already-used username.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidCredentials is returned on login with a wrong username or
	// password. Deliberately indistinct between the two cases.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrSessionNotFound indicates a missing or expired session token.
	ErrSessionNotFound = errors.New("session not found")
)

// ValidationError carries per-field messages for recoverable input errors
// (missing publish fields, blank comment text, weak registration input).
// The request is rejected without any persistence; handlers surface the
// field map to the client.
type ValidationError struct {
	Fields map[string]string
}

// Error lists the offending fields in stable order.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	return "validation failed: " + strings.Join(names, ", ")
}

// AsValidation unwraps err into a *ValidationError when it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// isNotFound treats repo-level not found sentinels as "not found" in a
// driver-agnostic way. It also checks gorm.ErrRecordNotFound for safety.
func isNotFound(err error) bool {
	if errors.Is(err, repo.ErrNotFound) {
		return true
	}
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// isDuplicate attempts to detect unique-constraint violations across drivers
// that may not map to gorm.ErrDuplicatedKey.
func isDuplicate(err error) bool {
	// SQLite typically: "UNIQUE constraint failed"
	// Postgres typically: "duplicate key value violates unique constraint"
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key")
}
