package services

import (
	"fmt"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/foodlog/go-recipe-backend/internal/config"
	"github.com/foodlog/go-recipe-backend/internal/domain"
)

// testFeed mirrors the default feed page sizes.
func testFeed() config.FeedConfig {
	return config.FeedConfig{
		RecentLimit:      6,
		ListPageSize:     6,
		CategoryPageSize: 4,
		SearchPageSize:   4,
	}
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:recipesvc_%s?mode=memory&cache=shared", uuid.NewString())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.Exec("PRAGMA foreign_keys=ON;")
	if err := db.AutoMigrate(
		&domain.User{}, &domain.Session{}, &domain.Category{},
		&domain.Recipe{}, &domain.Comment{}, &domain.Rating{}, &domain.RecipeLike{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string, staff bool) *domain.User {
	t.Helper()
	u := &domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: "x",
		IsStaff:      staff,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
	return u
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *domain.Category {
	t.Helper()
	c := &domain.Category{ID: uuid.NewString(), Name: name}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("seed category %s: %v", name, err)
	}
	return c
}

// seedRecipe inserts a recipe directly, bypassing lifecycle rules, with an
// explicit creation time so ordering tests stay deterministic.
func seedRecipe(t *testing.T, db *gorm.DB, authorID, title, status string, createdAt time.Time, mut ...func(*domain.Recipe)) *domain.Recipe {
	t.Helper()
	prep := 10
	r := &domain.Recipe{
		ID:          uuid.NewString(),
		Title:       title,
		AuthorID:    authorID,
		Description: "desc of " + title,
		Ingredients: "water, salt",
		PrepTime:    &prep,
		Status:      status,
		CreatedAt:   createdAt,
	}
	for _, m := range mut {
		m(r)
	}
	if err := db.Create(r).Error; err != nil {
		t.Fatalf("seed recipe %s: %v", title, err)
	}
	return r
}

func seedRating(t *testing.T, db *gorm.DB, recipeID, userID string, value int) {
	t.Helper()
	r := &domain.Rating{
		ID:       uuid.NewString(),
		RecipeID: recipeID,
		UserID:   userID,
		Value:    value,
	}
	if err := db.Create(r).Error; err != nil {
		t.Fatalf("seed rating: %v", err)
	}
}

func seedComment(t *testing.T, db *gorm.DB, recipeID, userID string, mut ...func(*domain.Comment)) *domain.Comment {
	t.Helper()
	c := &domain.Comment{
		ID:       uuid.NewString(),
		RecipeID: recipeID,
		UserID:   userID,
		Text:     "tasty",
	}
	for _, m := range mut {
		m(c)
	}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("seed comment: %v", err)
	}
	return c
}
