// Handler wiring and service contracts.
//
// Handlers are transport-thin: they bind and validate input, call
// application services, and translate results (including sentinel errors)
// into HTTP responses. The service contracts below are satisfied by the
// concrete types in internal/services; handler tests substitute stubs.
package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/foodlog/go-recipe-backend/internal/config"
	"github.com/foodlog/go-recipe-backend/internal/domain"
	"github.com/foodlog/go-recipe-backend/internal/http/middleware"
	"github.com/foodlog/go-recipe-backend/internal/services"
)

// RecipeService defines the recipe authoring lifecycle consumed by HTTP
// handlers. Implementations must honor the provided context.
type RecipeService interface {
	// ResumeDraft returns the author's in-progress autosaved draft, or nil.
	ResumeDraft(ctx context.Context, authorID string) (*domain.Recipe, error)
	// Create saves a new recipe as draft or published.
	Create(ctx context.Context, author *domain.User, in services.RecipeInput, action string) (*domain.Recipe, error)
	// Update edits an owned recipe with the same draft/publish semantics.
	Update(ctx context.Context, caller *domain.User, id string, in services.RecipeInput, action string) (*domain.Recipe, error)
	// Delete removes an owned recipe.
	Delete(ctx context.Context, caller *domain.User, id string) error
	// Autosave persists a partial draft without publish validation.
	Autosave(ctx context.Context, userID string, in services.AutosaveInput) (*domain.Recipe, error)
}

// CatalogService defines the read-side feeds and category administration.
type CatalogService interface {
	Recent(ctx context.Context) ([]domain.Recipe, error)
	ListPublished(ctx context.Context, page int) (*services.Page, error)
	ListByCategory(ctx context.Context, categoryID string, page int) (*domain.Category, *services.Page, error)
	Categories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, name string) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	Detail(ctx context.Context, recipeID string, viewer *domain.User) (*services.RecipeDetail, error)
}

// SearchService defines the filtered, paginated recipe search.
type SearchService interface {
	Search(ctx context.Context, query, minRating, maxPrepTime string, page int) (*services.SearchResult, error)
}

// CommentService defines comment creation and staff moderation.
type CommentService interface {
	Add(ctx context.Context, userID, recipeID, text string) (*domain.Comment, error)
	Approve(ctx context.Context, caller *domain.User, commentID string) error
	Reject(ctx context.Context, caller *domain.User, commentID string) error
	Delete(ctx context.Context, caller *domain.User, commentID string) error
}

// RatingService defines the one-rating-per-user upsert.
type RatingService interface {
	Rate(ctx context.Context, userID, recipeID string, value int) (created bool, err error)
}

// LikeService defines like-set membership toggling.
type LikeService interface {
	Toggle(ctx context.Context, userID, recipeID string) (liked bool, likes int64, err error)
}

// AuthService defines account registration, login, and logout.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.User, *domain.Session, error)
	Login(ctx context.Context, username, password string) (*domain.User, *domain.Session, error)
	Logout(ctx context.Context, token string) error
}

// Handlers groups the HTTP endpoints for recipes, feeds, comments, ratings,
// likes, and accounts. It depends on abstract service interfaces to keep
// transport concerns separate from business logic.
type Handlers struct {
	recipeSvc  RecipeService
	catalogSvc CatalogService
	searchSvc  SearchService
	commentSvc CommentService
	ratingSvc  RatingService
	likeSvc    LikeService
	authSvc    AuthService

	session config.SessionConfig
}

// New constructs a Handlers instance bound to the given services.
func New(
	recipeSvc RecipeService,
	catalogSvc CatalogService,
	searchSvc SearchService,
	commentSvc CommentService,
	ratingSvc RatingService,
	likeSvc LikeService,
	authSvc AuthService,
	session config.SessionConfig,
) *Handlers {
	return &Handlers{
		recipeSvc:  recipeSvc,
		catalogSvc: catalogSvc,
		searchSvc:  searchSvc,
		commentSvc: commentSvc,
		ratingSvc:  ratingSvc,
		likeSvc:    likeSvc,
		authSvc:    authSvc,
		session:    session,
	}
}

// currentUser returns the authenticated user resolved by the session
// middleware, or nil for anonymous requests.
func currentUser(c *gin.Context) *domain.User {
	return middleware.UserFrom(c)
}
