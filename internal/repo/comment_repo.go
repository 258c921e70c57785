// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Comment
// model. Moderation rules (who may approve, reject, or delete) live in the
// services package; here only persistence and visibility composition exist.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/foodlog/go-recipe-backend/internal/domain"
)

// CreateComment inserts a pending comment (approved and rejected both
// false) by userID on recipeID.
func CreateComment(ctx context.Context, db *gorm.DB, recipeID, userID, text string) (*domain.Comment, error) {
	c := &domain.Comment{
		ID:        uuid.NewString(),
		RecipeID:  recipeID,
		UserID:    userID,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

// GetComment fetches a comment by ID, or ErrNotFound.
func GetComment(ctx context.Context, db *gorm.DB, id string) (*domain.Comment, error) {
	var c domain.Comment
	if err := db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// ListComments returns a recipe's comments, most recent first. When
// includeRejected is false, explicitly rejected comments are filtered out
// (the public view); pending and approved comments always appear.
func ListComments(ctx context.Context, db *gorm.DB, recipeID string, includeRejected bool) ([]domain.Comment, error) {
	q := db.WithContext(ctx).
		Where("recipe_id = ?", recipeID)
	if !includeRejected {
		q = q.Where("rejected = ?", false)
	}
	var out []domain.Comment
	err := q.Order("created_at desc").Find(&out).Error
	return out, err
}

// SetCommentApproved sets approved=true on a comment, leaving rejected
// untouched. Returns ErrNotFound when the comment does not exist.
func SetCommentApproved(ctx context.Context, db *gorm.DB, id string) error {
	return setCommentFlag(ctx, db, id, "approved")
}

// SetCommentRejected sets rejected=true on a comment, leaving approved
// untouched. Returns ErrNotFound when the comment does not exist.
func SetCommentRejected(ctx context.Context, db *gorm.DB, id string) error {
	return setCommentFlag(ctx, db, id, "rejected")
}

func setCommentFlag(ctx context.Context, db *gorm.DB, id, column string) error {
	res := db.WithContext(ctx).
		Model(&domain.Comment{}).
		Where("id = ?", id).
		Update(column, true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteComment hard-deletes a comment row. Returns ErrNotFound when no
// row was removed.
func DeleteComment(ctx context.Context, db *gorm.DB, id string) error {
	res := db.WithContext(ctx).Delete(&domain.Comment{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
