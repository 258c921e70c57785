package services

import (
	"context"
	"testing"
	"time"

	"github.com/foodlog/go-recipe-backend/internal/domain"
)

func TestSearch_PublishedOnly(t *testing.T) {
	db := newTestDB(t)
	author := seedUser(t, db, "chef", true)
	svc := &SearchService{DB: db, PageSize: 4}

	seedRecipe(t, db, author.ID, "Tomato Soup", domain.StatusPublished, time.Now())
	seedRecipe(t, db, author.ID, "Tomato Tart", domain.StatusDraft, time.Now())

	res, err := svc.Search(context.Background(), "tomato", "", "", 1)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if res.Total != 1 || res.Items[0].Recipe.Title != "Tomato Soup" {
		t.Fatalf("drafts leaked into search: %+v", res.Items)
	}
}

func TestSearch_FieldsAndCase(t *testing.T) {
	db := newTestDB(t)
	author := seedUser(t, db, "chef", true)
	svc := &SearchService{DB: db, PageSize: 4}

	cat := seedCategory(t, db, "Breakfast")
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	byTitle := seedRecipe(t, db, author.ID, "Shakshuka Pan", domain.StatusPublished, base)
	byDesc := seedRecipe(t, db, author.ID, "Eggs", domain.StatusPublished, base.Add(time.Minute),
		func(r *domain.Recipe) { r.Description = "a quick SHAKSHUKA variant" })
	byIngr := seedRecipe(t, db, author.ID, "Skillet", domain.StatusPublished, base.Add(2*time.Minute),
		func(r *domain.Recipe) { r.Ingredients = "eggs, shakshuka spice mix" })
	byCat := seedRecipe(t, db, author.ID, "Porridge", domain.StatusPublished, base.Add(3*time.Minute),
		func(r *domain.Recipe) { r.CategoryID = &cat.ID })
	seedRecipe(t, db, author.ID, "Unrelated", domain.StatusPublished, base.Add(4*time.Minute))

	res, err := svc.Search(context.Background(), "ShAkShUkA", "", "", 1)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	got := map[string]bool{}
	for _, it := range res.Items {
		got[it.Recipe.ID] = true
	}
	if res.Total != 3 || !got[byTitle.ID] || !got[byDesc.ID] || !got[byIngr.ID] {
		t.Fatalf("field matching wrong: total=%d hits=%v", res.Total, got)
	}

	// Category name is a match field too.
	res, err = svc.Search(context.Background(), "breakfast", "", "", 1)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if res.Total != 1 || res.Items[0].Recipe.ID != byCat.ID {
		t.Fatalf("category match wrong: %+v", res.Items)
	}
}

func TestSearch_EmptyQueryMatchesAll(t *testing.T) {
	db := newTestDB(t)
	author := seedUser(t, db, "chef", true)
	svc := &SearchService{DB: db, PageSize: 4}

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		seedRecipe(t, db, author.ID, "r", domain.StatusPublished, base.Add(time.Duration(i)*time.Minute))
	}

	res, err := svc.Search(context.Background(), "", "", "", 1)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if res.Total != 3 {
		t.Fatalf("empty query should match all published, got %d", res.Total)
	}
	for i := 1; i < len(res.Items); i++ {
		if res.Items[i-1].Recipe.CreatedAt.Before(res.Items[i].Recipe.CreatedAt) {
			t.Fatalf("results not ordered newest first")
		}
	}
}

func TestSearch_PrepTimeCeiling(t *testing.T) {
	db := newTestDB(t)
	author := seedUser(t, db, "chef", true)
	svc := &SearchService{DB: db, PageSize: 4}

	quick := seedRecipe(t, db, author.ID, "Quick", domain.StatusPublished, time.Now(),
		func(r *domain.Recipe) { p := 15; r.PrepTime = &p })
	seedRecipe(t, db, author.ID, "Slow", domain.StatusPublished, time.Now(),
		func(r *domain.Recipe) { p := 90; r.PrepTime = &p })
	seedRecipe(t, db, author.ID, "Unknown", domain.StatusPublished, time.Now(),
		func(r *domain.Recipe) { r.PrepTime = nil })

	res, err := svc.Search(context.Background(), "", "", "30", 1)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	// Recipes without a prep time cannot satisfy the ceiling.
	if res.Total != 1 || res.Items[0].Recipe.ID != quick.ID {
		t.Fatalf("prep filter wrong: %+v", res.Items)
	}

	// A non-numeric bound is ignored, not rejected.
	res, err = svc.Search(context.Background(), "", "", "soon", 1)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if res.Total != 3 {
		t.Fatalf("invalid bound should be ignored, got total=%d", res.Total)
	}
}

func TestSearch_MinRatingSubset(t *testing.T) {
	db := newTestDB(t)
	author := seedUser(t, db, "chef", true)
	u1 := seedUser(t, db, "u1", false)
	u2 := seedUser(t, db, "u2", false)
	svc := &SearchService{DB: db, PageSize: 4}

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	high := seedRecipe(t, db, author.ID, "High", domain.StatusPublished, base)
	mid := seedRecipe(t, db, author.ID, "Mid", domain.StatusPublished, base.Add(time.Minute))
	seedRecipe(t, db, author.ID, "Unrated", domain.StatusPublished, base.Add(2*time.Minute))

	seedRating(t, db, high.ID, u1.ID, 5)
	seedRating(t, db, high.ID, u2.ID, 5)
	seedRating(t, db, mid.ID, u1.ID, 3)

	unfiltered, err := svc.Search(context.Background(), "", "", "", 1)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	filtered, err := svc.Search(context.Background(), "", "4", "", 1)
	if err != nil {
		t.Fatalf("search: %v", err)
	}

	// Filtered results are a subset of the unfiltered set and every hit
	// meets the threshold.
	if filtered.Total >= unfiltered.Total {
		t.Fatalf("filter removed nothing: %d vs %d", filtered.Total, unfiltered.Total)
	}
	if filtered.Total != 1 || filtered.Items[0].Recipe.ID != high.ID {
		t.Fatalf("min_rating filter wrong: %+v", filtered.Items)
	}
	for _, it := range filtered.Items {
		if it.AverageRating < 4 {
			t.Fatalf("hit below threshold: %v", it.AverageRating)
		}
	}
}

func TestSearch_PageClamping(t *testing.T) {
	db := newTestDB(t)
	author := seedUser(t, db, "chef", true)
	svc := &SearchService{DB: db, PageSize: 4}

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 9; i++ { // 3 pages of 4: 4+4+1
		seedRecipe(t, db, author.ID, "r", domain.StatusPublished, base.Add(time.Duration(i)*time.Minute))
	}

	res, err := svc.Search(context.Background(), "", "", "", 0)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if res.Page != 1 || len(res.Items) != 4 {
		t.Fatalf("page 0 should clamp to 1, got page=%d items=%d", res.Page, len(res.Items))
	}

	res, err = svc.Search(context.Background(), "", "", "", 42)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if res.Page != 3 || res.NumPages != 3 || len(res.Items) != 1 {
		t.Fatalf("past-the-end clamp wrong: page=%d/%d items=%d", res.Page, res.NumPages, len(res.Items))
	}
}

func TestSearch_EchoesFilters(t *testing.T) {
	db := newTestDB(t)
	svc := &SearchService{DB: db, PageSize: 4}

	res, err := svc.Search(context.Background(), "pie", "3", "45", 1)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if res.Query != "pie" || res.MinRating != "3" || res.MaxPrepTime != "45" {
		t.Fatalf("filters not echoed: %+v", res)
	}
}
