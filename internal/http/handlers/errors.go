// Package handlers defines HTTP-layer error codes used across all API
// endpoints.
//
// These symbolic constants give clients a stable, machine-readable error
// taxonomy that supplements the human-readable messages. Codes are lowercase
// snake_case; generic ones mirror common HTTP status semantics, while
// validation_failed marks responses that carry a `fields` map.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foodlog/go-recipe-backend/internal/services"
)

const (
	ErrCodeBadRequest       = "bad_request"
	ErrCodeUnauthorized     = "unauthorized"
	ErrCodeForbidden        = "forbidden"
	ErrCodeNotFound         = "not_found"
	ErrCodeConflict         = "conflict"
	ErrCodeValidation       = "validation_failed"
	ErrCodeRateLimited      = "too_many_requests"
	ErrCodeInternal         = "internal_error"
	ErrCodeMethodNotAllowed = "method_not_allowed"
)

// svcError translates a service-layer error into the matching HTTP response.
//
// The mapping is:
//   - *ValidationError           → 400 validation_failed (+fields)
//   - ErrInvalidRating           → 400 bad_request
//   - ErrInvalidCredentials      → 401 unauthorized
//   - ErrSessionNotFound         → 401 unauthorized
//   - ErrPermissionDenied        → 403 forbidden
//   - not-found sentinels        → 404 not_found
//   - ErrUsernameTaken           → 409 conflict
//   - anything else              → 500 internal_error
func svcError(c *gin.Context, err error) {
	if ve, okv := services.AsValidation(err); okv {
		failFields(c, http.StatusBadRequest, ErrCodeValidation, ve.Error(), ve.Fields)
		return
	}

	switch {
	case errors.Is(err, services.ErrInvalidRating):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrSessionNotFound):
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, err.Error())
	case errors.Is(err, services.ErrPermissionDenied):
		fail(c, http.StatusForbidden, ErrCodeForbidden, err.Error())
	case errors.Is(err, services.ErrRecipeNotFound),
		errors.Is(err, services.ErrCategoryNotFound),
		errors.Is(err, services.ErrCommentNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, err.Error())
	case errors.Is(err, services.ErrUsernameTaken):
		fail(c, http.StatusConflict, ErrCodeConflict, err.Error())
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
	}
}
