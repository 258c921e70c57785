// Account HTTP handlers.
//
// This file exposes registration, login, and logout over cookie-based
// sessions:
//   - POST /auth/register
//   - POST /auth/login
//   - POST /auth/logout
//
// The session token travels in an HttpOnly cookie; handlers never return it
// in the response body. Registration logs the new account in immediately.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foodlog/go-recipe-backend/internal/domain"
)

// CredentialsRequest is the JSON payload for register and login.
type CredentialsRequest struct {
	// Username identifies the account (unique, non-blank).
	Username string `json:"username" binding:"required" example:"alice"`
	// Password in clear text; stored only as a bcrypt hash.
	Password string `json:"password" binding:"required" example:"correct horse battery staple"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID       string `json:"id" example:"141add05-4415-4938-b5a1-17e0d3171aff"`
	Username string `json:"username" example:"alice"`
	IsStaff  bool   `json:"is_staff" example:"false"`
}

func userView(u *domain.User) UserResponse {
	return UserResponse{ID: u.ID, Username: u.Username, IsStaff: u.IsStaff}
}

// setSessionCookie installs the session token as an HttpOnly cookie scoped
// to the whole site.
func (h *Handlers) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.session.CookieName, token, int(h.session.TTL.Seconds()), "/", "", h.session.CookieSecure, true)
}

// clearSessionCookie expires the session cookie immediately.
func (h *Handlers) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.session.CookieName, "", -1, "/", "", h.session.CookieSecure, true)
}

// Register godoc
// @ID          register
// @Summary     Register an account
// @Description Creates an account and logs it in, setting the session cookie.
// @Tags        Auth
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.CredentialsRequest  true  "Credentials"
//
// @Success     201  {object}  handlers.UserResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Validation failed"
// @Failure     409  {object}  handlers.ErrorResponse  "Username taken"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /auth/register [post]
func (h *Handlers) Register(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	u, sess, err := h.authSvc.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		svcError(c, err)
		return
	}

	h.setSessionCookie(c, sess.ID)
	ok(c, http.StatusCreated, userView(u))
}

// Login godoc
// @ID          login
// @Summary     Log in
// @Description Verifies credentials and sets the session cookie. Wrong username and wrong password are indistinguishable in the response.
// @Tags        Auth
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.CredentialsRequest  true  "Credentials"
//
// @Success     200  {object}  handlers.UserResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse  "Invalid credentials"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /auth/login [post]
func (h *Handlers) Login(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	u, sess, err := h.authSvc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		svcError(c, err)
		return
	}

	h.setSessionCookie(c, sess.ID)
	ok(c, http.StatusOK, userView(u))
}

// Logout godoc
// @ID          logout
// @Summary     Log out
// @Description Invalidates the current session and clears the cookie. Safe to call without a session.
// @Tags        Auth
// @Produce     json
//
// @Success     204  {string}  string "No Content"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /auth/logout [post]
func (h *Handlers) Logout(c *gin.Context) {
	token, _ := c.Cookie(h.session.CookieName)
	if err := h.authSvc.Logout(c.Request.Context(), token); err != nil {
		svcError(c, err)
		return
	}
	h.clearSessionCookie(c)
	noContent(c)
}
