// Package services – AuthService
//
// This file implements account registration, login, and logout over
// DB-backed sessions. Passwords are stored as bcrypt hashes; the session ID
// is the opaque token carried by an HttpOnly cookie. Registration
// auto-logs-in the new user, matching the original account flow.
package services

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/foodlog/go-recipe-backend/internal/domain"
	"github.com/foodlog/go-recipe-backend/internal/repo"
)

// MinPasswordLen is the minimum accepted password length in runes.
const MinPasswordLen = 8

// AuthService implements account and session use-cases.
type AuthService struct {
	// DB is the database handle used for all account operations.
	DB *gorm.DB
	// SessionTTL bounds how long a login session stays valid.
	SessionTTL time.Duration
}

// Register creates an account and an initial session. The username must be
// non-blank and unused; the password must reach MinPasswordLen. Validation
// problems come back as a *ValidationError, a taken username as
// ErrUsernameTaken.
func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.User, *domain.Session, error) {
	username = strings.TrimSpace(username)
	fields := map[string]string{}
	if username == "" {
		fields["username"] = "this field is required"
	}
	if utf8.RuneCountInString(password) < MinPasswordLen {
		fields["password"] = "password must be at least 8 characters"
	}
	if len(fields) > 0 {
		return nil, nil, &ValidationError{Fields: fields}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	u, err := repo.CreateUser(ctx, s.DB, username, string(hash), false)
	if err != nil {
		if isDuplicate(err) {
			return nil, nil, ErrUsernameTaken
		}
		return nil, nil, err
	}

	sess, err := s.startSession(ctx, u.ID)
	if err != nil {
		return nil, nil, err
	}
	return u, sess, nil
}

// Login verifies credentials and opens a session. Wrong username and wrong
// password both yield ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, *domain.Session, error) {
	u, err := repo.GetUserByUsername(ctx, s.DB, strings.TrimSpace(username))
	if err != nil {
		if isNotFound(err) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, nil, ErrInvalidCredentials
	}

	// Opportunistic reaping keeps the sessions table bounded.
	_ = repo.DeleteExpiredSessions(ctx, s.DB, time.Now().UTC())

	sess, err := s.startSession(ctx, u.ID)
	if err != nil {
		return nil, nil, err
	}
	return u, sess, nil
}

// Logout invalidates the session token. Unknown tokens are ignored so
// logout stays idempotent.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return repo.DeleteSession(ctx, s.DB, token)
}

// UserFromToken resolves a session token to its user, or ErrSessionNotFound
// when the token is missing, unknown, or expired.
func (s *AuthService) UserFromToken(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, ErrSessionNotFound
	}
	sess, err := repo.GetSession(ctx, s.DB, token, time.Now().UTC())
	if err != nil {
		if isNotFound(err) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	u, err := repo.GetUser(ctx, s.DB, sess.UserID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *AuthService) startSession(ctx context.Context, userID string) (*domain.Session, error) {
	ttl := s.SessionTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return repo.CreateSession(ctx, s.DB, userID, time.Now().UTC().Add(ttl))
}
