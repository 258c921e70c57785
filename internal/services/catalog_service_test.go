package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/foodlog/go-recipe-backend/internal/domain"
)

func TestCatalog_Recent(t *testing.T) {
	db := newTestDB(t)
	author := seedUser(t, db, "chef", true)
	svc := &CatalogService{DB: db, Feed: testFeed()}

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 8; i++ {
		seedRecipe(t, db, author.ID, "published", domain.StatusPublished, base.Add(time.Duration(i)*time.Hour))
	}
	seedRecipe(t, db, author.ID, "draft", domain.StatusDraft, base.Add(100*time.Hour))

	recent, err := svc.Recent(context.Background())
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 6 {
		t.Fatalf("recent feed size = %d, want 6", len(recent))
	}
	for i, r := range recent {
		if r.Status != domain.StatusPublished {
			t.Fatalf("recent feed leaked a %s recipe", r.Status)
		}
		if i > 0 && recent[i-1].CreatedAt.Before(r.CreatedAt) {
			t.Fatalf("recent feed not ordered newest first")
		}
	}
}

func TestCatalog_ListPublished_Pagination(t *testing.T) {
	db := newTestDB(t)
	author := seedUser(t, db, "chef", true)
	svc := &CatalogService{DB: db, Feed: testFeed()}

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 13; i++ { // 3 pages of 6: 6+6+1
		seedRecipe(t, db, author.ID, "r", domain.StatusPublished, base.Add(time.Duration(i)*time.Minute))
	}

	page, err := svc.ListPublished(context.Background(), 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.Page != 2 || page.NumPages != 3 || page.Total != 13 || len(page.Items) != 6 {
		t.Fatalf("page 2 = %+v (items=%d)", page, len(page.Items))
	}

	// Below 1 clamps to the first page.
	page, err = svc.ListPublished(context.Background(), -5)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.Page != 1 {
		t.Fatalf("page below 1 should clamp to 1, got %d", page.Page)
	}

	// Past the end clamps to the last page.
	page, err = svc.ListPublished(context.Background(), 99)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.Page != 3 || len(page.Items) != 1 {
		t.Fatalf("past-the-end page = %d with %d items, want 3/1", page.Page, len(page.Items))
	}
}

func TestCatalog_ListPublished_Empty(t *testing.T) {
	db := newTestDB(t)
	svc := &CatalogService{DB: db, Feed: testFeed()}

	page, err := svc.ListPublished(context.Background(), 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.Page != 1 || page.NumPages != 1 || page.Total != 0 || len(page.Items) != 0 {
		t.Fatalf("empty listing = %+v (items=%d)", page, len(page.Items))
	}
}

func TestCatalog_ListByCategory(t *testing.T) {
	db := newTestDB(t)
	author := seedUser(t, db, "chef", true)
	svc := &CatalogService{DB: db, Feed: testFeed()}

	soups := seedCategory(t, db, "Soups")
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ { // 2 pages of 4: 4+1
		seedRecipe(t, db, author.ID, "soup", domain.StatusPublished, base.Add(time.Duration(i)*time.Minute),
			func(r *domain.Recipe) { r.CategoryID = &soups.ID })
	}
	seedRecipe(t, db, author.ID, "stray", domain.StatusPublished, base)

	cat, page, err := svc.ListByCategory(context.Background(), soups.ID, 1)
	if err != nil {
		t.Fatalf("list by category: %v", err)
	}
	if cat.Name != "Soups" {
		t.Fatalf("category = %q", cat.Name)
	}
	if page.Total != 5 || page.NumPages != 2 || len(page.Items) != 4 {
		t.Fatalf("category page = %+v (items=%d)", page, len(page.Items))
	}

	if _, _, err := svc.ListByCategory(context.Background(), "missing", 1); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestCatalog_CategoryAdmin(t *testing.T) {
	db := newTestDB(t)
	svc := &CatalogService{DB: db, Feed: testFeed()}

	if _, err := svc.CreateCategory(context.Background(), "  "); err == nil {
		t.Fatalf("blank name should be rejected")
	} else if _, ok := AsValidation(err); !ok {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	cat, err := svc.CreateCategory(context.Background(), "Desserts")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	all, err := svc.Categories(context.Background())
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	if len(all) != 1 || all[0].Name != "Desserts" {
		t.Fatalf("categories = %+v", all)
	}

	if err := svc.DeleteCategory(context.Background(), cat.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.DeleteCategory(context.Background(), cat.ID); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("double delete: expected ErrCategoryNotFound, got %v", err)
	}
}

func TestCatalog_DeleteCategory_DetachesRecipes(t *testing.T) {
	db := newTestDB(t)
	author := seedUser(t, db, "chef", true)
	svc := &CatalogService{DB: db, Feed: testFeed()}

	cat := seedCategory(t, db, "Soups")
	r := seedRecipe(t, db, author.ID, "Broth", domain.StatusPublished, time.Now(),
		func(r *domain.Recipe) { r.CategoryID = &cat.ID })

	if err := svc.DeleteCategory(context.Background(), cat.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var got domain.Recipe
	if err := db.First(&got, "id = ?", r.ID).Error; err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.CategoryID != nil {
		t.Fatalf("recipe should survive with NULL category, got %v", *got.CategoryID)
	}
}

func TestCatalog_Detail(t *testing.T) {
	db := newTestDB(t)
	author := seedUser(t, db, "chef", true)
	fan := seedUser(t, db, "fan", false)
	other := seedUser(t, db, "other", false)
	r := seedRecipe(t, db, author.ID, "Tart", domain.StatusPublished, time.Now())
	svc := &CatalogService{DB: db, Feed: testFeed()}

	seedRating(t, db, r.ID, fan.ID, 5)
	seedRating(t, db, r.ID, other.ID, 4)
	likes := &LikeService{DB: db}
	if _, _, err := likes.Toggle(context.Background(), fan.ID, r.ID); err != nil {
		t.Fatalf("like: %v", err)
	}
	seedComment(t, db, r.ID, fan.ID)

	d, err := svc.Detail(context.Background(), r.ID, fan)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if d.AverageRating != 4.5 {
		t.Fatalf("average = %v, want 4.5", d.AverageRating)
	}
	if d.Stars.Full != 4 || !d.Stars.Half || d.Stars.Empty != 0 {
		t.Fatalf("stars = %+v", d.Stars)
	}
	if d.Likes != 1 || !d.UserHasLiked || !d.UserHasRated {
		t.Fatalf("interaction state = likes=%d liked=%v rated=%v", d.Likes, d.UserHasLiked, d.UserHasRated)
	}
	if len(d.Comments) != 1 {
		t.Fatalf("comments = %d, want 1", len(d.Comments))
	}

	// Anonymous viewers get no personal interaction state.
	d, err = svc.Detail(context.Background(), r.ID, nil)
	if err != nil {
		t.Fatalf("anonymous detail: %v", err)
	}
	if d.UserHasLiked || d.UserHasRated {
		t.Fatalf("anonymous viewer must not inherit interaction state")
	}

	if _, err := svc.Detail(context.Background(), "missing", nil); !errors.Is(err, ErrRecipeNotFound) {
		t.Fatalf("expected ErrRecipeNotFound, got %v", err)
	}
}
