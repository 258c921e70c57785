// Package services – CommentService
//
// This file implements comment creation and staff moderation. Approved and
// rejected are independent flags: approving a comment never clears a prior
// rejection and vice versa. Moderation state is owned by staff; the comment
// text is owned by its author. Rejection hides a comment from public views
// but never deletes it.
package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/foodlog/go-recipe-backend/internal/domain"
	"github.com/foodlog/go-recipe-backend/internal/repo"
)

// CommentService implements the use-cases around recipe comments.
type CommentService struct {
	// DB is the database handle used for all comment operations.
	DB *gorm.DB
}

// Add attaches a comment by userID to recipeID. The recipe must exist and
// the text must be non-blank. New comments start pending: approved and
// rejected both false.
func (s *CommentService) Add(ctx context.Context, userID, recipeID, text string) (*domain.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &ValidationError{Fields: map[string]string{"text": "this field is required"}}
	}
	if _, err := repo.GetRecipe(ctx, s.DB, recipeID); err != nil {
		if isNotFound(err) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	return repo.CreateComment(ctx, s.DB, recipeID, userID, text)
}

// Approve marks a comment approved. Staff only; the rejected flag is left
// untouched.
func (s *CommentService) Approve(ctx context.Context, caller *domain.User, commentID string) error {
	return s.moderate(ctx, caller, commentID, repo.SetCommentApproved)
}

// Reject marks a comment rejected, hiding it from public views. Staff
// only; the comment is not deleted and the approved flag is left untouched.
func (s *CommentService) Reject(ctx context.Context, caller *domain.User, commentID string) error {
	return s.moderate(ctx, caller, commentID, repo.SetCommentRejected)
}

// Delete hard-deletes a comment. Staff only.
func (s *CommentService) Delete(ctx context.Context, caller *domain.User, commentID string) error {
	return s.moderate(ctx, caller, commentID, repo.DeleteComment)
}

func (s *CommentService) moderate(ctx context.Context, caller *domain.User, commentID string,
	op func(context.Context, *gorm.DB, string) error) error {
	if caller == nil || !caller.IsStaff {
		return ErrPermissionDenied
	}
	if err := op(ctx, s.DB, commentID); err != nil {
		if isNotFound(err) {
			return ErrCommentNotFound
		}
		return err
	}
	return nil
}
