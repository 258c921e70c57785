// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the User and
// Session models.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a record is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/foodlog/go-recipe-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// CreateUser inserts a new user row with the given username, bcrypt hash,
// and staff flag. The ID is a randomly generated UUID. A duplicate username
// surfaces as the driver's unique-constraint error.
func CreateUser(ctx context.Context, db *gorm.DB, username, passwordHash string, isStaff bool) (*domain.User, error) {
	u := &domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: passwordHash,
		IsStaff:      isStaff,
		CreatedAt:    time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

// GetUserByUsername fetches a user by exact username, or ErrNotFound.
func GetUserByUsername(ctx context.Context, db *gorm.DB, username string) (*domain.User, error) {
	var u domain.User
	err := db.WithContext(ctx).
		Where("username = ?", username).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUser fetches a user by ID, or ErrNotFound.
func GetUser(ctx context.Context, db *gorm.DB, id string) (*domain.User, error) {
	var u domain.User
	if err := db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateSession inserts a session row for userID expiring at expiresAt.
// The session ID doubles as the opaque cookie token.
func CreateSession(ctx context.Context, db *gorm.DB, userID string, expiresAt time.Time) (*domain.Session, error) {
	s := &domain.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

// GetSession fetches a live (unexpired at now) session by token, or
// ErrNotFound. Expired sessions are treated as missing.
func GetSession(ctx context.Context, db *gorm.DB, token string, now time.Time) (*domain.Session, error) {
	var s domain.Session
	err := db.WithContext(ctx).
		Where("id = ? AND expires_at > ?", token, now).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// DeleteSession removes a session row by token. Deleting a missing session
// is not an error (logout is idempotent).
func DeleteSession(ctx context.Context, db *gorm.DB, token string) error {
	return db.WithContext(ctx).
		Delete(&domain.Session{}, "id = ?", token).Error
}

// DeleteExpiredSessions reaps all sessions expired at now. Invoked
// opportunistically from the auth service.
func DeleteExpiredSessions(ctx context.Context, db *gorm.DB, now time.Time) error {
	return db.WithContext(ctx).
		Delete(&domain.Session{}, "expires_at <= ?", now).Error
}
