// Package services – RecipeService
//
// This file implements the RecipeService, which governs the recipe
// lifecycle: manual draft saves, publishing with field-completeness
// validation, background autosave, draft resumption, and owner-scoped
// edit/delete. Publishing requires title, description, and prep time;
// autosave deliberately bypasses that check so client-driven partial saves
// never fail on incomplete data. Service-level errors (ErrRecipeNotFound,
// ErrPermissionDenied, *ValidationError) are returned for predictable cases
// so handlers can map them to HTTP results consistently.
package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/foodlog/go-recipe-backend/internal/domain"
	"github.com/foodlog/go-recipe-backend/internal/repo"
)

// Save actions accepted by Create and Update.
const (
	ActionDraft   = "draft"
	ActionPublish = "publish"
)

// RecipeInput is the permissive parse of a recipe form: every field is
// optional at this stage. Publish readiness is a separate predicate applied
// only when the caller asks to publish (two-stage validation).
type RecipeInput struct {
	Title        string
	Description  string
	CategoryID   string // empty means uncategorized
	Ingredients  string
	Instructions string
	ImageURL     string
	VideoLink    string
	Servings     *int
	PrepTime     *int // minutes
}

// RecipeService implements the use-cases around recipe authoring. All
// operations are context-aware and run against the provided GORM handle.
type RecipeService struct {
	// DB is the database handle used for all recipe operations.
	DB *gorm.DB
}

// ResumeDraft returns the caller's most recently updated autosaved draft,
// or nil when none exists. The add form edits this record instead of
// starting a blank one, keeping at most one in-progress draft per author.
func (s *RecipeService) ResumeDraft(ctx context.Context, authorID string) (*domain.Recipe, error) {
	r, err := repo.LatestAutosavedDraft(ctx, s.DB, authorID)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return r, nil
}

// Create saves a recipe from the add form on behalf of author. When an
// autosaved draft exists it is overwritten in place rather than creating a
// second record. action selects the lifecycle transition:
//
//   - ActionDraft: status=draft, is_autosaved=true, no completeness check.
//   - ActionPublish: status=published, is_autosaved=false; title,
//     description, and prep time must be present or a *ValidationError is
//     returned and nothing is persisted.
//
// Only staff may author recipes; other callers get ErrPermissionDenied.
func (s *RecipeService) Create(ctx context.Context, author *domain.User, in RecipeInput, action string) (*domain.Recipe, error) {
	if author == nil || !author.IsStaff {
		return nil, ErrPermissionDenied
	}

	r, err := repo.LatestAutosavedDraft(ctx, s.DB, author.ID)
	if err != nil {
		if !isNotFound(err) {
			return nil, err
		}
		r = &domain.Recipe{AuthorID: author.ID}
	}

	if err := s.apply(ctx, r, in, action); err != nil {
		return nil, err
	}

	if r.ID == "" {
		err = repo.InsertRecipe(ctx, s.DB, r)
	} else {
		err = repo.SaveRecipe(ctx, s.DB, r)
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Update edits an existing recipe. The caller must be staff and the
// recipe's author; anyone else gets ErrPermissionDenied. A missing recipe
// is ErrRecipeNotFound. action carries the same draft/publish semantics as
// Create.
func (s *RecipeService) Update(ctx context.Context, caller *domain.User, id string, in RecipeInput, action string) (*domain.Recipe, error) {
	if caller == nil || !caller.IsStaff {
		return nil, ErrPermissionDenied
	}

	r, err := repo.GetRecipe(ctx, s.DB, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	if r.AuthorID != caller.ID {
		return nil, ErrPermissionDenied
	}

	if err := s.apply(ctx, r, in, action); err != nil {
		return nil, err
	}
	if err := repo.SaveRecipe(ctx, s.DB, r); err != nil {
		return nil, err
	}
	return r, nil
}

// Delete removes a recipe. The caller must be staff and the author.
func (s *RecipeService) Delete(ctx context.Context, caller *domain.User, id string) error {
	if caller == nil || !caller.IsStaff {
		return ErrPermissionDenied
	}
	r, err := repo.GetRecipe(ctx, s.DB, id)
	if err != nil {
		if isNotFound(err) {
			return ErrRecipeNotFound
		}
		return err
	}
	if r.AuthorID != caller.ID {
		return ErrPermissionDenied
	}
	return repo.DeleteRecipe(ctx, s.DB, id)
}

// AutosaveInput is the partial field set accepted by Autosave. ID is
// optional: when present it must name a recipe owned by the caller.
// Numeric fields are pointers so that absent input stays absent (NULL)
// instead of collapsing to zero.
type AutosaveInput struct {
	ID           string
	Title        string
	Description  string
	CategoryID   string
	Ingredients  string
	Instructions string
	ImageURL     string
	VideoLink    string
	Servings     *int
	PrepTime     *int
}

// Autosave creates or overwrites the caller's in-progress draft from a
// partial field set. The record is always stored as status=draft with
// is_autosaved=true regardless of completeness (publish validation is
// bypassed entirely: autosave must never block on incomplete data). An
// unresolvable category reference is ignored and the category left unset.
// The only failure mode besides storage errors is ErrRecipeNotFound for an
// id that does not name a recipe owned by the caller.
func (s *RecipeService) Autosave(ctx context.Context, userID string, in AutosaveInput) (*domain.Recipe, error) {
	var r *domain.Recipe
	if in.ID != "" {
		existing, err := repo.GetOwnedRecipe(ctx, s.DB, in.ID, userID)
		if err != nil {
			if isNotFound(err) {
				return nil, ErrRecipeNotFound
			}
			return nil, err
		}
		r = existing
	} else {
		r = &domain.Recipe{AuthorID: userID}
	}

	r.Title = in.Title
	r.Description = in.Description
	r.Ingredients = in.Ingredients
	r.Instructions = in.Instructions
	r.ImageURL = in.ImageURL
	r.VideoLink = in.VideoLink
	r.Servings = in.Servings
	r.PrepTime = in.PrepTime
	r.Status = domain.StatusDraft
	r.IsAutosaved = true
	r.CategoryID = s.resolveCategory(ctx, in.CategoryID)
	r.UpdatedAt = time.Now().UTC()

	var err error
	if r.ID == "" {
		err = repo.InsertRecipe(ctx, s.DB, r)
	} else {
		err = repo.SaveRecipe(ctx, s.DB, r)
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// resolveCategory maps a raw category reference to a nullable FK value.
// Unknown references resolve to nil (autosave degrades instead of failing).
func (s *RecipeService) resolveCategory(ctx context.Context, id string) *string {
	if id == "" {
		return nil
	}
	if _, err := repo.GetCategory(ctx, s.DB, id); err != nil {
		return nil
	}
	return &id
}

// apply copies the input onto the recipe and performs the requested
// lifecycle transition, validating publish readiness when needed.
func (s *RecipeService) apply(ctx context.Context, r *domain.Recipe, in RecipeInput, action string) error {
	fields := map[string]string{}

	var categoryID *string
	if in.CategoryID != "" {
		if _, err := repo.GetCategory(ctx, s.DB, in.CategoryID); err != nil {
			if !isNotFound(err) {
				return err
			}
			fields["category"] = "unknown category"
		} else {
			id := in.CategoryID
			categoryID = &id
		}
	}

	if action == ActionPublish {
		if in.Title == "" {
			fields["title"] = "this field is required for publishing"
		}
		if in.Description == "" {
			fields["description"] = "this field is required for publishing"
		}
		if in.PrepTime == nil || *in.PrepTime == 0 {
			fields["prep_time"] = "this field is required for publishing"
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}

	r.Title = in.Title
	r.Description = in.Description
	r.CategoryID = categoryID
	r.Ingredients = in.Ingredients
	r.Instructions = in.Instructions
	r.ImageURL = in.ImageURL
	r.VideoLink = in.VideoLink
	r.Servings = in.Servings
	r.PrepTime = in.PrepTime
	r.UpdatedAt = time.Now().UTC()

	if action == ActionPublish {
		r.Status = domain.StatusPublished
		r.IsAutosaved = false
	} else {
		r.Status = domain.StatusDraft
		r.IsAutosaved = true
	}
	return nil
}
