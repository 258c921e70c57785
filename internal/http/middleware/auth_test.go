package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/foodlog/go-recipe-backend/internal/domain"
)

type stubResolver struct {
	fn func(ctx context.Context, token string) (*domain.User, error)
}

func (s stubResolver) UserFromToken(ctx context.Context, token string) (*domain.User, error) {
	return s.fn(ctx, token)
}

func TestCurrentUser_ResolvesCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	resolver := stubResolver{fn: func(ctx context.Context, token string) (*domain.User, error) {
		if token != "tok-1" {
			t.Fatalf("token = %q, want tok-1", token)
		}
		return &domain.User{ID: "u1", Username: "alice"}, nil
	}}

	r := gin.New()
	r.Use(CurrentUser(resolver, "session"))
	r.GET("/whoami", func(c *gin.Context) {
		u := UserFrom(c)
		if u == nil {
			c.String(http.StatusOK, "anonymous")
			return
		}
		c.String(http.StatusOK, u.Username)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: "tok-1"})
	r.ServeHTTP(w, req)

	if w.Body.String() != "alice" {
		t.Fatalf("body = %q, want alice", w.Body.String())
	}
}

func TestCurrentUser_InvalidTokenStaysAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)
	resolver := stubResolver{fn: func(ctx context.Context, token string) (*domain.User, error) {
		return nil, errors.New("session not found")
	}}

	r := gin.New()
	r.Use(CurrentUser(resolver, "session"))
	r.GET("/open", func(c *gin.Context) {
		if UserFrom(c) != nil {
			t.Fatalf("expected anonymous request")
		}
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: "stale"})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("anonymous request must pass open routes, got %d", w.Code)
	}
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/guarded", RequireAuth(), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guarded", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous: status = %d, want 401", w.Code)
	}

	r2 := gin.New()
	r2.GET("/guarded",
		func(c *gin.Context) { c.Set(userKey, &domain.User{ID: "u1"}); c.Next() },
		RequireAuth(),
		func(c *gin.Context) { c.Status(http.StatusOK) })

	w = httptest.NewRecorder()
	r2.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guarded", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("authenticated: status = %d, want 200", w.Code)
	}
}

func TestRequireStaff(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		user *domain.User
		want int
	}{
		{"anonymous", nil, http.StatusUnauthorized},
		{"non_staff", &domain.User{ID: "u1"}, http.StatusForbidden},
		{"staff", &domain.User{ID: "u2", IsStaff: true}, http.StatusOK},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/admin",
				func(c *gin.Context) {
					if tc.user != nil {
						c.Set(userKey, tc.user)
					}
					c.Next()
				},
				RequireStaff(),
				func(c *gin.Context) { c.Status(http.StatusOK) })

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
			if w.Code != tc.want {
				t.Fatalf("status = %d, want %d", w.Code, tc.want)
			}
		})
	}
}
