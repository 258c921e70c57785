// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Rating
// model.
//
// A user holds at most one rating per recipe, enforced by the unique
// (recipe_id, user_id) index. Re-rating updates the existing row in place;
// UpsertRating reports which of the two happened so callers can phrase
// user feedback accordingly.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/foodlog/go-recipe-backend/internal/domain"
)

// UpsertRating creates or updates the single (recipe, user) rating row with
// the given value. It returns created=true when a new row was inserted and
// created=false when an existing rating was updated in place.
//
// The read-then-write pair runs inside a transaction so concurrent upserts
// on the same pair serialize at the store.
func UpsertRating(ctx context.Context, db *gorm.DB, recipeID, userID string, value int) (created bool, err error) {
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing domain.Rating
		findErr := tx.
			Where("recipe_id = ? AND user_id = ?", recipeID, userID).
			First(&existing).Error
		switch {
		case findErr == nil:
			created = false
			return tx.Model(&existing).Update("value", value).Error
		case findErr == gorm.ErrRecordNotFound:
			created = true
			r := &domain.Rating{
				ID:        uuid.NewString(),
				RecipeID:  recipeID,
				UserID:    userID,
				Value:     value,
				CreatedAt: time.Now().UTC(),
			}
			return tx.Create(r).Error
		default:
			return findErr
		}
	})
	if err != nil {
		created = false
	}
	return created, err
}

// ListRatingValues returns the raw rating values attached to a recipe.
func ListRatingValues(ctx context.Context, db *gorm.DB, recipeID string) ([]int, error) {
	var values []int
	err := db.WithContext(ctx).
		Model(&domain.Rating{}).
		Where("recipe_id = ?", recipeID).
		Pluck("value", &values).Error
	return values, err
}

// HasRated reports whether userID already rated recipeID.
func HasRated(ctx context.Context, db *gorm.DB, recipeID, userID string) (bool, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.Rating{}).
		Where("recipe_id = ? AND user_id = ?", recipeID, userID).
		Count(&n).Error
	return n > 0, err
}
