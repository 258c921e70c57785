// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements cookie-session authentication. CurrentUser() resolves
// the session cookie to a user once per request and stores the result in the
// Gin context; RequireAuth() and RequireStaff() gate routes on that result.
// Resolution is best effort: an invalid or expired cookie simply leaves the
// request anonymous, and the guards decide whether that is acceptable.
package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foodlog/go-recipe-backend/internal/domain"
)

const (
	// userKey is the Gin context key holding the resolved *domain.User.
	userKey = "user"
	// userIDKey mirrors the user's ID as a plain string for log and
	// rate-limit consumers that only need an identity.
	userIDKey = "userID"
)

// SessionResolver turns an opaque session token into its user.
//
// Implementations must honor the provided context and return an error for
// missing, unknown, or expired tokens.
type SessionResolver interface {
	UserFromToken(ctx context.Context, token string) (*domain.User, error)
}

// CurrentUser resolves the session cookie named cookieName through resolver
// and, on success, stores the user under "user" and its ID under "userID".
// Requests without a valid session pass through anonymous.
func CurrentUser(resolver SessionResolver, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err == nil && token != "" {
			if u, err := resolver.UserFromToken(c.Request.Context(), token); err == nil {
				c.Set(userKey, u)
				c.Set(userIDKey, u.ID)
			}
		}
		c.Next()
	}
}

// RequireAuth aborts with 401 unless CurrentUser resolved a user.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if UserFrom(c) == nil {
			abortJSON(c, http.StatusUnauthorized, "unauthorized", "authentication required")
			return
		}
		c.Next()
	}
}

// RequireStaff aborts with 401 for anonymous requests and 403 for
// authenticated non-staff users.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		u := UserFrom(c)
		if u == nil {
			abortJSON(c, http.StatusUnauthorized, "unauthorized", "authentication required")
			return
		}
		if !u.IsStaff {
			abortJSON(c, http.StatusForbidden, "forbidden", "staff access required")
			return
		}
		c.Next()
	}
}

// UserFrom returns the authenticated user for this request, or nil when the
// request is anonymous.
func UserFrom(c *gin.Context) *domain.User {
	if v, ok := c.Get(userKey); ok {
		if u, ok := v.(*domain.User); ok {
			return u
		}
	}
	return nil
}

// abortJSON writes the standard error envelope without depending on the
// handlers package (which imports this one).
func abortJSON(c *gin.Context, status int, code, msg string) {
	c.AbortWithStatusJSON(status, gin.H{
		"request_id": c.Writer.Header().Get(requestIDHeader),
		"code":       code,
		"message":    msg,
	})
}
