// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the
// RecipeLike relation (the User × Recipe like set).
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/foodlog/go-recipe-backend/internal/domain"
)

// ToggleLike flips userID's membership in recipeID's liked-by set and
// returns the resulting membership. The check-then-write pair runs in a
// transaction; the unique (recipe_id, user_id) index backstops races.
func ToggleLike(ctx context.Context, db *gorm.DB, recipeID, userID string) (liked bool, err error) {
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&domain.RecipeLike{}, "recipe_id = ? AND user_id = ?", recipeID, userID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			liked = false
			return nil
		}
		liked = true
		l := &domain.RecipeLike{
			ID:        uuid.NewString(),
			RecipeID:  recipeID,
			UserID:    userID,
			CreatedAt: time.Now().UTC(),
		}
		return tx.Create(l).Error
	})
	if err != nil {
		liked = false
	}
	return liked, err
}

// CountLikes returns the size of a recipe's liked-by set.
func CountLikes(ctx context.Context, db *gorm.DB, recipeID string) (int64, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.RecipeLike{}).
		Where("recipe_id = ?", recipeID).
		Count(&n).Error
	return n, err
}

// HasLiked reports whether userID is currently in recipeID's liked-by set.
func HasLiked(ctx context.Context, db *gorm.DB, recipeID, userID string) (bool, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.RecipeLike{}).
		Where("recipe_id = ? AND user_id = ?", recipeID, userID).
		Count(&n).Error
	return n > 0, err
}
