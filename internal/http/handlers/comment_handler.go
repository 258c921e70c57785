// Comment HTTP handlers.
//
// This file exposes comment creation and staff moderation:
//   - POST   /recipes/{id}/comments       (add, any authenticated user)
//   - POST   /comments/{id}/approve       (moderate, staff)
//   - POST   /comments/{id}/reject        (moderate, staff)
//   - DELETE /comments/{id}               (moderate, staff)
//
// Approve and reject are independent: neither clears the other flag, and
// rejecting never deletes the comment.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AddCommentRequest is the JSON payload for posting a comment.
type AddCommentRequest struct {
	// Text of the comment (non-blank).
	Text string `json:"text" binding:"required" example:"Turned out great with less salt."`
}

// AddComment godoc
// @ID          addComment
// @Summary     Comment on a recipe
// @Description Attaches a comment to a recipe. New comments start pending moderation.
// @Tags        Comments
// @Accept      json
// @Produce     json
//
// @Param       id    path  string                      true  "Recipe ID"
// @Param       body  body  handlers.AddCommentRequest  true  "Comment payload"
//
// @Success     201  {object}  domain.Comment
// @Failure     400  {object}  handlers.ErrorResponse  "Validation failed"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthenticated"
// @Failure     404  {object}  handlers.ErrorResponse  "Recipe not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /recipes/{id}/comments [post]
func (h *Handlers) AddComment(c *gin.Context) {
	u := currentUser(c)
	if u == nil {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "authentication required")
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	cm, err := h.commentSvc.Add(c.Request.Context(), u.ID, c.Param("id"), req.Text)
	if err != nil {
		svcError(c, err)
		return
	}
	ok(c, http.StatusCreated, cm)
}

// ApproveComment godoc
// @ID          approveComment
// @Summary     Approve a comment
// @Description Marks a comment approved. Staff only; the rejected flag is left untouched.
// @Tags        Comments
// @Produce     json
//
// @Param       id  path  string  true  "Comment ID"
//
// @Success     204  {string}  string "No Content"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthenticated"
// @Failure     403  {object}  handlers.ErrorResponse  "Staff only"
// @Failure     404  {object}  handlers.ErrorResponse  "Comment not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /comments/{id}/approve [post]
func (h *Handlers) ApproveComment(c *gin.Context) {
	if err := h.commentSvc.Approve(c.Request.Context(), currentUser(c), c.Param("id")); err != nil {
		svcError(c, err)
		return
	}
	noContent(c)
}

// RejectComment godoc
// @ID          rejectComment
// @Summary     Reject a comment
// @Description Marks a comment rejected, hiding it from public views without deleting it. Staff only.
// @Tags        Comments
// @Produce     json
//
// @Param       id  path  string  true  "Comment ID"
//
// @Success     204  {string}  string "No Content"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthenticated"
// @Failure     403  {object}  handlers.ErrorResponse  "Staff only"
// @Failure     404  {object}  handlers.ErrorResponse  "Comment not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /comments/{id}/reject [post]
func (h *Handlers) RejectComment(c *gin.Context) {
	if err := h.commentSvc.Reject(c.Request.Context(), currentUser(c), c.Param("id")); err != nil {
		svcError(c, err)
		return
	}
	noContent(c)
}

// DeleteComment godoc
// @ID          deleteComment
// @Summary     Delete a comment
// @Description Hard-deletes a comment. Staff only.
// @Tags        Comments
// @Produce     json
//
// @Param       id  path  string  true  "Comment ID"
//
// @Success     204  {string}  string "No Content"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthenticated"
// @Failure     403  {object}  handlers.ErrorResponse  "Staff only"
// @Failure     404  {object}  handlers.ErrorResponse  "Comment not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /comments/{id} [delete]
func (h *Handlers) DeleteComment(c *gin.Context) {
	if err := h.commentSvc.Delete(c.Request.Context(), currentUser(c), c.Param("id")); err != nil {
		svcError(c, err)
		return
	}
	noContent(c)
}
