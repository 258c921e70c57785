package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/foodlog/go-recipe-backend/internal/config"
	"github.com/foodlog/go-recipe-backend/internal/domain"
	"github.com/foodlog/go-recipe-backend/internal/services"
)

// ---- stubs to satisfy handlers.New() dependencies ----
//
// Each stub delegates to optional function fields so individual tests only
// wire the calls they care about; unexpected calls fail loudly via nil
// dereference.

type stubRecipeSvc struct {
	resume   func(ctx context.Context, authorID string) (*domain.Recipe, error)
	create   func(ctx context.Context, author *domain.User, in services.RecipeInput, action string) (*domain.Recipe, error)
	update   func(ctx context.Context, caller *domain.User, id string, in services.RecipeInput, action string) (*domain.Recipe, error)
	remove   func(ctx context.Context, caller *domain.User, id string) error
	autosave func(ctx context.Context, userID string, in services.AutosaveInput) (*domain.Recipe, error)
}

func (s stubRecipeSvc) ResumeDraft(ctx context.Context, authorID string) (*domain.Recipe, error) {
	return s.resume(ctx, authorID)
}
func (s stubRecipeSvc) Create(ctx context.Context, author *domain.User, in services.RecipeInput, action string) (*domain.Recipe, error) {
	return s.create(ctx, author, in, action)
}
func (s stubRecipeSvc) Update(ctx context.Context, caller *domain.User, id string, in services.RecipeInput, action string) (*domain.Recipe, error) {
	return s.update(ctx, caller, id, in, action)
}
func (s stubRecipeSvc) Delete(ctx context.Context, caller *domain.User, id string) error {
	return s.remove(ctx, caller, id)
}
func (s stubRecipeSvc) Autosave(ctx context.Context, userID string, in services.AutosaveInput) (*domain.Recipe, error) {
	return s.autosave(ctx, userID, in)
}

type stubCatalogSvc struct {
	recent         func(ctx context.Context) ([]domain.Recipe, error)
	listPublished  func(ctx context.Context, page int) (*services.Page, error)
	listByCategory func(ctx context.Context, categoryID string, page int) (*domain.Category, *services.Page, error)
	categories     func(ctx context.Context) ([]domain.Category, error)
	createCategory func(ctx context.Context, name string) (*domain.Category, error)
	deleteCategory func(ctx context.Context, id string) error
	detail         func(ctx context.Context, recipeID string, viewer *domain.User) (*services.RecipeDetail, error)
}

func (s stubCatalogSvc) Recent(ctx context.Context) ([]domain.Recipe, error) { return s.recent(ctx) }
func (s stubCatalogSvc) ListPublished(ctx context.Context, page int) (*services.Page, error) {
	return s.listPublished(ctx, page)
}
func (s stubCatalogSvc) ListByCategory(ctx context.Context, categoryID string, page int) (*domain.Category, *services.Page, error) {
	return s.listByCategory(ctx, categoryID, page)
}
func (s stubCatalogSvc) Categories(ctx context.Context) ([]domain.Category, error) {
	return s.categories(ctx)
}
func (s stubCatalogSvc) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	return s.createCategory(ctx, name)
}
func (s stubCatalogSvc) DeleteCategory(ctx context.Context, id string) error {
	return s.deleteCategory(ctx, id)
}
func (s stubCatalogSvc) Detail(ctx context.Context, recipeID string, viewer *domain.User) (*services.RecipeDetail, error) {
	return s.detail(ctx, recipeID, viewer)
}

type stubSearchSvc struct {
	search func(ctx context.Context, query, minRating, maxPrepTime string, page int) (*services.SearchResult, error)
}

func (s stubSearchSvc) Search(ctx context.Context, query, minRating, maxPrepTime string, page int) (*services.SearchResult, error) {
	return s.search(ctx, query, minRating, maxPrepTime, page)
}

type stubCommentSvc struct {
	add     func(ctx context.Context, userID, recipeID, text string) (*domain.Comment, error)
	approve func(ctx context.Context, caller *domain.User, commentID string) error
	reject  func(ctx context.Context, caller *domain.User, commentID string) error
	remove  func(ctx context.Context, caller *domain.User, commentID string) error
}

func (s stubCommentSvc) Add(ctx context.Context, userID, recipeID, text string) (*domain.Comment, error) {
	return s.add(ctx, userID, recipeID, text)
}
func (s stubCommentSvc) Approve(ctx context.Context, caller *domain.User, commentID string) error {
	return s.approve(ctx, caller, commentID)
}
func (s stubCommentSvc) Reject(ctx context.Context, caller *domain.User, commentID string) error {
	return s.reject(ctx, caller, commentID)
}
func (s stubCommentSvc) Delete(ctx context.Context, caller *domain.User, commentID string) error {
	return s.remove(ctx, caller, commentID)
}

type stubRatingSvc struct {
	rate func(ctx context.Context, userID, recipeID string, value int) (bool, error)
}

func (s stubRatingSvc) Rate(ctx context.Context, userID, recipeID string, value int) (bool, error) {
	return s.rate(ctx, userID, recipeID, value)
}

type stubLikeSvc struct {
	toggle func(ctx context.Context, userID, recipeID string) (bool, int64, error)
}

func (s stubLikeSvc) Toggle(ctx context.Context, userID, recipeID string) (bool, int64, error) {
	return s.toggle(ctx, userID, recipeID)
}

type stubAuthSvc struct {
	register func(ctx context.Context, username, password string) (*domain.User, *domain.Session, error)
	login    func(ctx context.Context, username, password string) (*domain.User, *domain.Session, error)
	logout   func(ctx context.Context, token string) error
}

func (s stubAuthSvc) Register(ctx context.Context, username, password string) (*domain.User, *domain.Session, error) {
	return s.register(ctx, username, password)
}
func (s stubAuthSvc) Login(ctx context.Context, username, password string) (*domain.User, *domain.Session, error) {
	return s.login(ctx, username, password)
}
func (s stubAuthSvc) Logout(ctx context.Context, token string) error {
	return s.logout(ctx, token)
}

// deps bundles one stub per service so tests override only what they need.
type deps struct {
	recipe  stubRecipeSvc
	catalog stubCatalogSvc
	search  stubSearchSvc
	comment stubCommentSvc
	rating  stubRatingSvc
	like    stubLikeSvc
	auth    stubAuthSvc
}

func testSession() config.SessionConfig {
	return config.SessionConfig{CookieName: "session", TTL: time.Hour}
}

func newTestHandlers(d deps) *Handlers {
	return New(d.recipe, d.catalog, d.search, d.comment, d.rating, d.like, d.auth, testSession())
}

// asUser returns a route middleware that injects an authenticated user the
// way the session middleware would.
func asUser(u *domain.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		if u != nil {
			c.Set("user", u)
			c.Set("userID", u.ID)
		}
		c.Next()
	}
}

func staffUser() *domain.User {
	return &domain.User{ID: "staff-1", Username: "chef", IsStaff: true}
}

func visitorUser() *domain.User {
	return &domain.User{ID: "visitor-1", Username: "guest"}
}

func init() {
	gin.SetMode(gin.TestMode)
}
