// Rating and like HTTP handlers.
//
// This file exposes the two interaction endpoints:
//   - POST /recipes/{id}/rating   (upsert the caller's 1-5 rating)
//   - POST /recipes/{id}/like     (toggle the caller's like)
//
// A user holds at most one rating per recipe; posting again updates the
// value in place. Likes have no separate like/unlike operations, the single
// endpoint flips membership.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RateRequest is the JSON payload for rating a recipe.
type RateRequest struct {
	// Value is the star rating, 1 through 5.
	Value int `json:"value" binding:"required" minimum:"1" maximum:"5" example:"4"`
}

// RateResponse reports whether the rating was newly created or an update of
// the caller's previous rating.
type RateResponse struct {
	Created bool `json:"created" example:"true"`
	Value   int  `json:"value" example:"4"`
}

// LikeResponse reports the caller's resulting like state and the recipe's
// updated like count.
type LikeResponse struct {
	Liked bool  `json:"liked" example:"true"`
	Likes int64 `json:"likes" example:"12"`
}

// RateRecipe godoc
// @ID          rateRecipe
// @Summary     Rate a recipe
// @Description Records the caller's 1-5 rating of a recipe, updating any previous rating in place. Values outside the range are rejected without touching stored data.
// @Tags        Interactions
// @Accept      json
// @Produce     json
//
// @Param       id    path  string                true  "Recipe ID"
// @Param       body  body  handlers.RateRequest  true  "Rating payload"
//
// @Success     200  {object}  handlers.RateResponse  "Existing rating updated"
// @Success     201  {object}  handlers.RateResponse  "First rating recorded"
// @Failure     400  {object}  handlers.ErrorResponse  "Value out of range"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthenticated"
// @Failure     404  {object}  handlers.ErrorResponse  "Recipe not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /recipes/{id}/rating [post]
func (h *Handlers) RateRecipe(c *gin.Context) {
	u := currentUser(c)
	if u == nil {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "authentication required")
		return
	}

	var req RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	created, err := h.ratingSvc.Rate(c.Request.Context(), u.ID, c.Param("id"), req.Value)
	if err != nil {
		svcError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	ok(c, status, RateResponse{Created: created, Value: req.Value})
}

// ToggleLike godoc
// @ID          toggleLike
// @Summary     Toggle a like
// @Description Flips the caller's like on a recipe. Toggling twice restores the original state.
// @Tags        Interactions
// @Produce     json
//
// @Param       id  path  string  true  "Recipe ID"
//
// @Success     200  {object}  handlers.LikeResponse
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthenticated"
// @Failure     404  {object}  handlers.ErrorResponse  "Recipe not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /recipes/{id}/like [post]
func (h *Handlers) ToggleLike(c *gin.Context) {
	u := currentUser(c)
	if u == nil {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "authentication required")
		return
	}

	liked, likes, err := h.likeSvc.Toggle(c.Request.Context(), u.ID, c.Param("id"))
	if err != nil {
		svcError(c, err)
		return
	}
	ok(c, http.StatusOK, LikeResponse{Liked: liked, Likes: likes})
}
