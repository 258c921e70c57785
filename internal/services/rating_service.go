// Package services – RatingService
//
// This file implements rating upserts and the derived average. A user holds
// at most one rating per recipe; re-rating updates the value in place. The
// service reports created vs updated so handlers can phrase user feedback
// ("thanks for rating" vs "your rating has been updated").
package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/foodlog/go-recipe-backend/internal/domain"
	"github.com/foodlog/go-recipe-backend/internal/repo"
)

// RatingService implements the use-cases around recipe ratings.
type RatingService struct {
	// DB is the database handle used for all rating operations.
	DB *gorm.DB
}

// Rate records value as userID's rating of recipeID, creating or updating
// the single (recipe, user) row. Values outside [1,5] are rejected with
// ErrInvalidRating before any record changes; a missing recipe is
// ErrRecipeNotFound. The returned flag is true when this was the user's
// first rating of the recipe.
func (s *RatingService) Rate(ctx context.Context, userID, recipeID string, value int) (created bool, err error) {
	if value < 1 || value > 5 {
		return false, ErrInvalidRating
	}
	if _, err := repo.GetRecipe(ctx, s.DB, recipeID); err != nil {
		if isNotFound(err) {
			return false, ErrRecipeNotFound
		}
		return false, err
	}
	return repo.UpsertRating(ctx, s.DB, recipeID, userID, value)
}

// Average returns the recipe's mean rating rounded to one decimal place,
// 0 when the recipe has no ratings.
func (s *RatingService) Average(ctx context.Context, recipeID string) (float64, error) {
	values, err := repo.ListRatingValues(ctx, s.DB, recipeID)
	if err != nil {
		return 0, err
	}
	return domain.RoundAverage(values), nil
}

// Stars decomposes an average into the full/half/empty display form.
func (s *RatingService) Stars(average float64) domain.Stars {
	return domain.StarsFor(average)
}
