// Recipe authoring HTTP handlers.
//
// This file exposes REST endpoints for the recipe lifecycle:
//   - GET    /recipes/new     (resume in-progress draft)
//   - POST   /recipes         (create, draft or publish)
//   - PUT    /recipes/{id}    (update, draft or publish)
//   - DELETE /recipes/{id}    (delete)
//   - POST   /autosave        (background partial save)
//
// Create and update share two-stage validation: any field set is accepted
// for a draft, while publishing requires title, description, and prep time.
package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/foodlog/go-recipe-backend/internal/services"
)

//
// DTOs
//

// RecipeRequest is the JSON payload for creating or updating a recipe.
type RecipeRequest struct {
	// Title of the recipe; required for publishing.
	Title string `json:"title" example:"Tomato Soup"`
	// Description shown on the detail page; required for publishing.
	Description string `json:"description" example:"A rich, slow-simmered soup."`
	// CategoryID optionally files the recipe under a category.
	CategoryID string `json:"category_id" example:"141add05-4415-4938-b5a1-17e0d3171aff"`
	// Ingredients as free text, one per line.
	Ingredients string `json:"ingredients" example:"4 tomatoes\n1 onion"`
	// Instructions as free text.
	Instructions string `json:"instructions" example:"Chop. Simmer. Blend."`
	// ImageURL points at a hero image.
	ImageURL string `json:"image_url" example:"https://cdn.example.com/soup.jpg"`
	// VideoLink points at an optional walkthrough video.
	VideoLink string `json:"video_link" example:"https://videos.example.com/soup"`
	// Servings the recipe yields.
	Servings *int `json:"servings" example:"4"`
	// PrepTime in minutes; required for publishing.
	PrepTime *int `json:"prep_time" example:"45"`
	// Action selects the lifecycle transition: "draft" (default) or "publish".
	Action string `json:"action" enums:"draft,publish" example:"publish"`
}

// AutosaveRequest is the payload posted by the editor's background save.
// Numeric fields arrive as strings straight from form inputs; values that do
// not parse are stored as absent rather than failing the save.
type AutosaveRequest struct {
	ID           string `json:"id" example:"141add05-4415-4938-b5a1-17e0d3171aff"`
	Title        string `json:"title" example:"Tomato Sou"`
	Description  string `json:"description"`
	CategoryID   string `json:"category_id"`
	Ingredients  string `json:"ingredients"`
	Instructions string `json:"instructions"`
	ImageURL     string `json:"image_url"`
	VideoLink    string `json:"video_link"`
	Servings     string `json:"servings" example:"4"`
	PrepTime     string `json:"prep_time" example:""`
}

// AutosaveResponse acknowledges a background save with the draft's id, so
// the editor can attach subsequent saves to the same record.
type AutosaveResponse struct {
	Success bool   `json:"success" example:"true"`
	ID      string `json:"id" example:"141add05-4415-4938-b5a1-17e0d3171aff"`
}

// input converts the request into the service-layer field set.
func (r *RecipeRequest) input() services.RecipeInput {
	return services.RecipeInput{
		Title:        strings.TrimSpace(r.Title),
		Description:  strings.TrimSpace(r.Description),
		CategoryID:   r.CategoryID,
		Ingredients:  r.Ingredients,
		Instructions: r.Instructions,
		ImageURL:     r.ImageURL,
		VideoLink:    r.VideoLink,
		Servings:     r.Servings,
		PrepTime:     r.PrepTime,
	}
}

// action normalizes the requested lifecycle transition, defaulting to draft.
// The second return is false for unrecognized values.
func (r *RecipeRequest) action() (string, bool) {
	switch r.Action {
	case "", services.ActionDraft:
		return services.ActionDraft, true
	case services.ActionPublish:
		return services.ActionPublish, true
	default:
		return "", false
	}
}

// parseOptionalInt maps a form-style numeric string to a nullable int.
// Empty or unparseable input becomes nil.
func parseOptionalInt(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

//
// Handlers
//

// NewRecipe godoc
// @ID          newRecipe
// @Summary     Resume the in-progress draft
// @Description Returns the caller's autosaved draft so the editor can resume it, or 204 when none exists.
// @Tags        Recipes
// @Produce     json
//
// @Success     200  {object}  domain.Recipe
// @Success     204  {string}  string "No draft to resume"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthenticated"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /recipes/new [get]
func (h *Handlers) NewRecipe(c *gin.Context) {
	u := currentUser(c)
	if u == nil {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "authentication required")
		return
	}

	draft, err := h.recipeSvc.ResumeDraft(c.Request.Context(), u.ID)
	if err != nil {
		svcError(c, err)
		return
	}
	if draft == nil {
		noContent(c)
		return
	}
	ok(c, http.StatusOK, draft)
}

// CreateRecipe godoc
// @ID          createRecipe
// @Summary     Create a recipe
// @Description Saves a recipe as draft or published. Publishing requires title, description, and prep time; an existing autosaved draft is overwritten instead of creating a second record.
// @Tags        Recipes
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.RecipeRequest  true  "Recipe payload"
//
// @Success     201  {object}  domain.Recipe
// @Failure     400  {object}  handlers.ErrorResponse  "Validation failed"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthenticated"
// @Failure     403  {object}  handlers.ErrorResponse  "Staff only"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /recipes [post]
func (h *Handlers) CreateRecipe(c *gin.Context) {
	var req RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	action, valid := req.action()
	if !valid {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "action must be draft or publish")
		return
	}

	r, err := h.recipeSvc.Create(c.Request.Context(), currentUser(c), req.input(), action)
	if err != nil {
		svcError(c, err)
		return
	}
	ok(c, http.StatusCreated, r)
}

// UpdateRecipe godoc
// @ID          updateRecipe
// @Summary     Update a recipe
// @Description Edits a recipe owned by the caller, with the same draft/publish semantics as creation.
// @Tags        Recipes
// @Accept      json
// @Produce     json
//
// @Param       id    path  string                  true  "Recipe ID"
// @Param       body  body  handlers.RecipeRequest  true  "Recipe payload"
//
// @Success     200  {object}  domain.Recipe
// @Failure     400  {object}  handlers.ErrorResponse  "Validation failed"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthenticated"
// @Failure     403  {object}  handlers.ErrorResponse  "Not the author"
// @Failure     404  {object}  handlers.ErrorResponse  "Recipe not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /recipes/{id} [put]
func (h *Handlers) UpdateRecipe(c *gin.Context) {
	var req RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	action, valid := req.action()
	if !valid {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "action must be draft or publish")
		return
	}

	r, err := h.recipeSvc.Update(c.Request.Context(), currentUser(c), c.Param("id"), req.input(), action)
	if err != nil {
		svcError(c, err)
		return
	}
	ok(c, http.StatusOK, r)
}

// DeleteRecipe godoc
// @ID          deleteRecipe
// @Summary     Delete a recipe
// @Description Removes a recipe owned by the caller.
// @Tags        Recipes
// @Produce     json
//
// @Param       id  path  string  true  "Recipe ID"
//
// @Success     204  {string}  string "No Content"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthenticated"
// @Failure     403  {object}  handlers.ErrorResponse  "Not the author"
// @Failure     404  {object}  handlers.ErrorResponse  "Recipe not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /recipes/{id} [delete]
func (h *Handlers) DeleteRecipe(c *gin.Context) {
	if err := h.recipeSvc.Delete(c.Request.Context(), currentUser(c), c.Param("id")); err != nil {
		svcError(c, err)
		return
	}
	noContent(c)
}

// Autosave godoc
// @ID          autosaveRecipe
// @Summary     Autosave the recipe editor
// @Description Persists a partial draft in the background. The result is always a draft regardless of completeness; an unknown category reference is ignored. The returned id attaches subsequent saves to the same record.
// @Tags        Recipes
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.AutosaveRequest  true  "Partial recipe fields"
//
// @Success     200  {object}  handlers.AutosaveResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthenticated"
// @Failure     404  {object}  handlers.ErrorResponse  "Recipe not owned by caller"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /autosave [post]
func (h *Handlers) Autosave(c *gin.Context) {
	u := currentUser(c)
	if u == nil {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "authentication required")
		return
	}

	var req AutosaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	r, err := h.recipeSvc.Autosave(c.Request.Context(), u.ID, services.AutosaveInput{
		ID:           req.ID,
		Title:        req.Title,
		Description:  req.Description,
		CategoryID:   req.CategoryID,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		ImageURL:     req.ImageURL,
		VideoLink:    req.VideoLink,
		Servings:     parseOptionalInt(req.Servings),
		PrepTime:     parseOptionalInt(req.PrepTime),
	})
	if err != nil {
		svcError(c, err)
		return
	}
	ok(c, http.StatusOK, AutosaveResponse{Success: true, ID: r.ID})
}
