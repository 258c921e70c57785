// Package services – LikeService
//
// This file implements like toggling: a single endpoint flips the caller's
// membership in a recipe's liked-by set, so toggling twice restores the
// original state. There are no separate like/unlike operations.
package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/foodlog/go-recipe-backend/internal/repo"
)

// LikeService implements the use-cases around recipe likes.
type LikeService struct {
	// DB is the database handle used for all like operations.
	DB *gorm.DB
}

// Toggle flips userID's like on recipeID and returns the resulting
// membership along with the recipe's updated like count. A missing recipe
// is ErrRecipeNotFound.
func (s *LikeService) Toggle(ctx context.Context, userID, recipeID string) (liked bool, likes int64, err error) {
	if _, err := repo.GetRecipe(ctx, s.DB, recipeID); err != nil {
		if isNotFound(err) {
			return false, 0, ErrRecipeNotFound
		}
		return false, 0, err
	}
	liked, err = repo.ToggleLike(ctx, s.DB, recipeID, userID)
	if err != nil {
		return false, 0, err
	}
	likes, err = repo.CountLikes(ctx, s.DB, recipeID)
	if err != nil {
		return false, 0, err
	}
	return liked, likes, nil
}
