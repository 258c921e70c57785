// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Recipe
// model: lifecycle persistence plus the filtered, sorted, paginated feeds
// consumed by the catalog and search services.
//
// The repository follows a "thin" approach: it performs persistence and
// query composition, leaving lifecycle rules (publish validation, autosave
// semantics, ownership) to the services package.
//
// Functions:
//
//   - InsertRecipe / SaveRecipe: create or update a row in place.
//   - GetRecipe / GetOwnedRecipe: fetch by ID, optionally scoped to author.
//   - ListPublishedRecent: fixed-size landing feed.
//   - CountPublished / ListPublishedPage: paginated published listing.
//   - CountByCategory / ListByCategoryPage: paginated category feed.
//   - ListPublishedWithCategory: materialized published set (category
//     preloaded) for search-side filtering.
//   - LatestAutosavedDraft: the author's in-progress draft, if any.
//   - DeleteRecipe: hard delete.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/foodlog/go-recipe-backend/internal/domain"
)

// InsertRecipe persists a brand-new recipe row. The caller populates all
// lifecycle fields (status, is_autosaved, author); the ID and creation time
// are assigned here.
func InsertRecipe(ctx context.Context, db *gorm.DB, r *domain.Recipe) error {
	r.ID = uuid.NewString()
	r.CreatedAt = time.Now().UTC()
	return db.WithContext(ctx).Create(r).Error
}

// SaveRecipe writes all fields of an existing recipe back to its row.
func SaveRecipe(ctx context.Context, db *gorm.DB, r *domain.Recipe) error {
	return db.WithContext(ctx).Save(r).Error
}

// GetRecipe fetches a recipe by ID with its category preloaded, or
// ErrNotFound.
func GetRecipe(ctx context.Context, db *gorm.DB, id string) (*domain.Recipe, error) {
	var r domain.Recipe
	err := db.WithContext(ctx).
		Preload("Category").
		First(&r, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// GetOwnedRecipe fetches a recipe by ID restricted to the given author, or
// ErrNotFound when the recipe is missing or owned by someone else.
func GetOwnedRecipe(ctx context.Context, db *gorm.DB, id, authorID string) (*domain.Recipe, error) {
	var r domain.Recipe
	err := db.WithContext(ctx).
		Where("id = ? AND author_id = ?", id, authorID).
		First(&r).Error
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// ListPublishedRecent returns up to limit published recipes, most recent
// first (the landing feed).
func ListPublishedRecent(ctx context.Context, db *gorm.DB, limit int) ([]domain.Recipe, error) {
	var out []domain.Recipe
	err := db.WithContext(ctx).
		Preload("Category").
		Where("status = ?", domain.StatusPublished).
		Order("created_at desc").
		Limit(limit).
		Find(&out).Error
	return out, err
}

// CountPublished returns the total number of published recipes.
func CountPublished(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.Recipe{}).
		Where("status = ?", domain.StatusPublished).
		Count(&total).Error
	return total, err
}

// ListPublishedPage returns a page of published recipes, most recent first.
// The caller computes offset and limit (e.g., (page-1)*pageSize).
func ListPublishedPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.Recipe, error) {
	var out []domain.Recipe
	err := db.WithContext(ctx).
		Preload("Category").
		Where("status = ?", domain.StatusPublished).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// CountByCategory returns the number of recipes in a category.
func CountByCategory(ctx context.Context, db *gorm.DB, categoryID string) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.Recipe{}).
		Where("category_id = ?", categoryID).
		Count(&total).Error
	return total, err
}

// ListByCategoryPage returns a page of recipes in a category, most recent
// first. Existence of the category is the service's concern.
func ListByCategoryPage(ctx context.Context, db *gorm.DB, categoryID string, offset, limit int) ([]domain.Recipe, error) {
	var out []domain.Recipe
	err := db.WithContext(ctx).
		Preload("Category").
		Where("category_id = ?", categoryID).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// ListPublishedWithCategory materializes the published set (category
// preloaded), most recent first, optionally bounded by prep_time. The
// search service applies the text and rating filters on the result, since
// average rating is derived rather than stored.
func ListPublishedWithCategory(ctx context.Context, db *gorm.DB, maxPrepTime *int) ([]domain.Recipe, error) {
	q := db.WithContext(ctx).
		Preload("Category").
		Where("status = ?", domain.StatusPublished)
	if maxPrepTime != nil {
		q = q.Where("prep_time IS NOT NULL AND prep_time <= ?", *maxPrepTime)
	}
	var out []domain.Recipe
	err := q.Order("created_at desc").Find(&out).Error
	return out, err
}

// LatestAutosavedDraft returns the author's most recently updated autosaved
// draft, or ErrNotFound when none exists.
func LatestAutosavedDraft(ctx context.Context, db *gorm.DB, authorID string) (*domain.Recipe, error) {
	var r domain.Recipe
	err := db.WithContext(ctx).
		Where("author_id = ? AND status = ? AND is_autosaved = ?",
			authorID, domain.StatusDraft, true).
		Order("updated_at desc").
		First(&r).Error
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// DeleteRecipe hard-deletes a recipe by ID. Comments, ratings, and likes
// cascade at the schema level. Returns ErrNotFound when no row was removed.
func DeleteRecipe(ctx context.Context, db *gorm.DB, id string) error {
	res := db.WithContext(ctx).Delete(&domain.Recipe{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
