// Catalog HTTP handlers.
//
// This file exposes the public read-side of the blog:
//   - GET    /recipes/recent               (landing feed)
//   - GET    /recipes                      (paginated published listing)
//   - GET    /recipes/{id}                 (detail with ratings, likes, comments)
//   - GET    /categories                   (all categories)
//   - POST   /categories                   (create, staff)
//   - DELETE /categories/{id}              (delete, staff)
//   - GET    /categories/{id}/recipes      (per-category feed)
//   - GET    /search                       (filtered search)
//
// Page numbers clamp instead of erroring: anything below 1 falls back to the
// first page and past-the-end values to the last.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/foodlog/go-recipe-backend/internal/domain"
	"github.com/foodlog/go-recipe-backend/internal/services"
	"github.com/foodlog/go-recipe-backend/internal/utils"
)

// CreateCategoryRequest is the JSON payload for creating a category.
type CreateCategoryRequest struct {
	// Name of the category (non-blank).
	Name string `json:"name" binding:"required" example:"Desserts"`
}

// pageParam reads the "page" query parameter, defaulting to 1. Garbage input
// is treated as 1 rather than rejected; range clamping happens downstream.
func pageParam(c *gin.Context) int {
	return utils.AtoiDefault(c.Query("page"), 1)
}

// RecentRecipes godoc
// @ID          recentRecipes
// @Summary     Landing feed
// @Description Returns the most recently created published recipes.
// @Tags        Catalog
// @Produce     json
//
// @Success     200  {array}   domain.Recipe
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /recipes/recent [get]
func (h *Handlers) RecentRecipes(c *gin.Context) {
	items, err := h.catalogSvc.Recent(c.Request.Context())
	if err != nil {
		svcError(c, err)
		return
	}
	ok(c, http.StatusOK, items)
}

// ListRecipes godoc
// @ID          listRecipes
// @Summary     List published recipes (paginated)
// @Description Returns one page of the published listing, newest first.
// @Tags        Catalog
// @Produce     json
//
// @Param       page  query  int  false  "Page number (clamped)"  default(1)
//
// @Success     200  {object}  services.Page
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /recipes [get]
func (h *Handlers) ListRecipes(c *gin.Context) {
	page, err := h.catalogSvc.ListPublished(c.Request.Context(), pageParam(c))
	if err != nil {
		svcError(c, err)
		return
	}
	ok(c, http.StatusOK, page)
}

// GetRecipe godoc
// @ID          getRecipe
// @Summary     Recipe detail
// @Description Returns the recipe with its average rating, star breakdown, like count, the caller's interaction state, and comments. Staff viewers see all comments; everyone else sees only comments that were not rejected.
// @Tags        Catalog
// @Produce     json
//
// @Param       id  path  string  true  "Recipe ID"
//
// @Success     200  {object}  services.RecipeDetail
// @Failure     404  {object}  handlers.ErrorResponse  "Recipe not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /recipes/{id} [get]
func (h *Handlers) GetRecipe(c *gin.Context) {
	d, err := h.catalogSvc.Detail(c.Request.Context(), c.Param("id"), currentUser(c))
	if err != nil {
		svcError(c, err)
		return
	}
	ok(c, http.StatusOK, d)
}

// ListCategories godoc
// @ID          listCategories
// @Summary     List categories
// @Description Returns all categories ordered by name.
// @Tags        Categories
// @Produce     json
//
// @Success     200  {array}   domain.Category
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /categories [get]
func (h *Handlers) ListCategories(c *gin.Context) {
	cats, err := h.catalogSvc.Categories(c.Request.Context())
	if err != nil {
		svcError(c, err)
		return
	}
	ok(c, http.StatusOK, cats)
}

// CreateCategory godoc
// @ID          createCategory
// @Summary     Create a category
// @Description Adds a category. Staff only.
// @Tags        Categories
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.CreateCategoryRequest  true  "Category payload"
//
// @Success     201  {object}  domain.Category
// @Failure     400  {object}  handlers.ErrorResponse  "Validation failed"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthenticated"
// @Failure     403  {object}  handlers.ErrorResponse  "Staff only"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /categories [post]
func (h *Handlers) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "name required")
		return
	}

	cat, err := h.catalogSvc.CreateCategory(c.Request.Context(), req.Name)
	if err != nil {
		svcError(c, err)
		return
	}
	ok(c, http.StatusCreated, cat)
}

// DeleteCategory godoc
// @ID          deleteCategory
// @Summary     Delete a category
// @Description Removes a category; its recipes survive uncategorized. Staff only.
// @Tags        Categories
// @Produce     json
//
// @Param       id  path  string  true  "Category ID"
//
// @Success     204  {string}  string "No Content"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthenticated"
// @Failure     403  {object}  handlers.ErrorResponse  "Staff only"
// @Failure     404  {object}  handlers.ErrorResponse  "Category not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /categories/{id} [delete]
func (h *Handlers) DeleteCategory(c *gin.Context) {
	if err := h.catalogSvc.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		svcError(c, err)
		return
	}
	noContent(c)
}

// CategoryRecipesResponse wraps a category and one page of its recipes.
type CategoryRecipesResponse struct {
	Category *domain.Category `json:"category"`
	Page     *services.Page   `json:"page"`
}

// ListCategoryRecipes godoc
// @ID          listCategoryRecipes
// @Summary     List a category's recipes (paginated)
// @Description Returns the category and one page of its published recipes, newest first.
// @Tags        Categories
// @Produce     json
//
// @Param       id    path   string  true   "Category ID"
// @Param       page  query  int     false  "Page number (clamped)"  default(1)
//
// @Success     200  {object}  handlers.CategoryRecipesResponse
// @Failure     404  {object}  handlers.ErrorResponse  "Category not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /categories/{id}/recipes [get]
func (h *Handlers) ListCategoryRecipes(c *gin.Context) {
	cat, page, err := h.catalogSvc.ListByCategory(c.Request.Context(), c.Param("id"), pageParam(c))
	if err != nil {
		svcError(c, err)
		return
	}
	ok(c, http.StatusOK, CategoryRecipesResponse{Category: cat, Page: page})
}

// SearchRecipes godoc
// @ID          searchRecipes
// @Summary     Search published recipes
// @Description Case-insensitive containment search over title, description, ingredients, and category name, optionally narrowed by a minimum average rating and a maximum prep time. Filter values that do not parse are ignored.
// @Tags        Catalog
// @Produce     json
//
// @Param       q              query  string  false  "Search query"
// @Param       min_rating     query  int     false  "Minimum average rating (1-5)"
// @Param       max_prep_time  query  int     false  "Maximum prep time in minutes"
// @Param       page           query  int     false  "Page number (clamped)"  default(1)
//
// @Success     200  {object}  services.SearchResult
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /search [get]
func (h *Handlers) SearchRecipes(c *gin.Context) {
	res, err := h.searchSvc.Search(
		c.Request.Context(),
		c.Query("q"),
		c.Query("min_rating"),
		c.Query("max_prep_time"),
		pageParam(c),
	)
	if err != nil {
		svcError(c, err)
		return
	}
	ok(c, http.StatusOK, res)
}
