// Package services – CatalogService
//
// This file implements the CatalogService, which assembles the public
// read-side of the blog: the recent landing feed, the paginated published
// listing, per-category feeds, category administration, and the recipe
// detail view with its derived rating, like, and comment data.
package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/foodlog/go-recipe-backend/internal/config"
	"github.com/foodlog/go-recipe-backend/internal/domain"
	"github.com/foodlog/go-recipe-backend/internal/repo"
	"github.com/foodlog/go-recipe-backend/internal/utils"
)

// Page is a window over an ordered recipe feed plus pagination metadata.
type Page struct {
	Items    []domain.Recipe `json:"items"`
	Page     int             `json:"page"`
	NumPages int             `json:"num_pages"`
	Total    int64           `json:"total"`
}

// RecipeDetail is the assembled detail view of a recipe: the entity itself
// plus the derived interaction data the detail page renders.
type RecipeDetail struct {
	Recipe        domain.Recipe    `json:"recipe"`
	AverageRating float64          `json:"average_rating"`
	Stars         domain.Stars     `json:"stars"`
	Likes         int64            `json:"likes"`
	UserHasLiked  bool             `json:"user_has_liked"`
	UserHasRated  bool             `json:"user_has_rated"`
	Comments      []domain.Comment `json:"comments"`
}

// CatalogService provides the read-side feeds and category management.
type CatalogService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Feed carries the configured page sizes.
	Feed config.FeedConfig
}

// Recent returns the landing feed: the most recently created published
// recipes, capped at the configured recent limit.
func (s *CatalogService) Recent(ctx context.Context) ([]domain.Recipe, error) {
	return repo.ListPublishedRecent(ctx, s.DB, s.Feed.RecentLimit)
}

// ListPublished returns one page of the published listing, most recent
// first. Page numbers below 1 clamp to the first page and past-the-end
// pages clamp to the last.
func (s *CatalogService) ListPublished(ctx context.Context, page int) (*Page, error) {
	total, err := repo.CountPublished(ctx, s.DB)
	if err != nil {
		return nil, err
	}
	size := s.Feed.ListPageSize
	numPages := utils.NumPages(int(total), size)
	page = utils.ClampPage(page, numPages)

	items, err := repo.ListPublishedPage(ctx, s.DB, (page-1)*size, size)
	if err != nil {
		return nil, err
	}
	return &Page{Items: items, Page: page, NumPages: numPages, Total: total}, nil
}

// ListByCategory returns one page of a category's recipes, most recent
// first. An unknown category yields ErrCategoryNotFound.
func (s *CatalogService) ListByCategory(ctx context.Context, categoryID string, page int) (*domain.Category, *Page, error) {
	cat, err := repo.GetCategory(ctx, s.DB, categoryID)
	if err != nil {
		if isNotFound(err) {
			return nil, nil, ErrCategoryNotFound
		}
		return nil, nil, err
	}

	total, err := repo.CountByCategory(ctx, s.DB, categoryID)
	if err != nil {
		return nil, nil, err
	}
	size := s.Feed.CategoryPageSize
	numPages := utils.NumPages(int(total), size)
	page = utils.ClampPage(page, numPages)

	items, err := repo.ListByCategoryPage(ctx, s.DB, categoryID, (page-1)*size, size)
	if err != nil {
		return nil, nil, err
	}
	return cat, &Page{Items: items, Page: page, NumPages: numPages, Total: total}, nil
}

// Categories returns all categories ordered by name.
func (s *CatalogService) Categories(ctx context.Context) ([]domain.Category, error) {
	return repo.ListCategories(ctx, s.DB)
}

// CreateCategory adds a category. The name must be non-blank.
func (s *CatalogService) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &ValidationError{Fields: map[string]string{"name": "this field is required"}}
	}
	return repo.CreateCategory(ctx, s.DB, name)
}

// DeleteCategory removes a category; its recipes keep a NULL category.
func (s *CatalogService) DeleteCategory(ctx context.Context, id string) error {
	if err := repo.DeleteCategory(ctx, s.DB, id); err != nil {
		if isNotFound(err) {
			return ErrCategoryNotFound
		}
		return err
	}
	return nil
}

// Detail assembles the recipe detail view for the given viewer. Staff
// viewers see all comments; everyone else sees only comments that were not
// explicitly rejected. The viewer may be nil (anonymous).
func (s *CatalogService) Detail(ctx context.Context, recipeID string, viewer *domain.User) (*RecipeDetail, error) {
	r, err := repo.GetRecipe(ctx, s.DB, recipeID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	values, err := repo.ListRatingValues(ctx, s.DB, recipeID)
	if err != nil {
		return nil, err
	}
	avg := domain.RoundAverage(values)

	likes, err := repo.CountLikes(ctx, s.DB, recipeID)
	if err != nil {
		return nil, err
	}

	isStaff := viewer != nil && viewer.IsStaff
	comments, err := repo.ListComments(ctx, s.DB, recipeID, isStaff)
	if err != nil {
		return nil, err
	}

	d := &RecipeDetail{
		Recipe:        *r,
		AverageRating: avg,
		Stars:         domain.StarsFor(avg),
		Likes:         likes,
		Comments:      comments,
	}
	if viewer != nil {
		if d.UserHasRated, err = repo.HasRated(ctx, s.DB, recipeID, viewer.ID); err != nil {
			return nil, err
		}
		if d.UserHasLiked, err = repo.HasLiked(ctx, s.DB, recipeID, viewer.ID); err != nil {
			return nil, err
		}
	}
	return d, nil
}
