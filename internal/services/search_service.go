// Package services – SearchService
//
// This file implements the search feed: a case-folded containment filter
// over title, description, ingredients, and category name, OR-combined,
// narrowed by an optional prep-time ceiling and an optional minimum average
// rating. The rating filter requires materializing the candidate set first,
// since average rating is derived rather than stored. Results are sorted by
// creation time descending (stable) and paginated with clamping semantics:
// an invalid page number falls back to page 1, a past-the-end page to the
// last page.
package services

import (
	"context"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/foodlog/go-recipe-backend/internal/domain"
	"github.com/foodlog/go-recipe-backend/internal/repo"
	"github.com/foodlog/go-recipe-backend/internal/search"
	"github.com/foodlog/go-recipe-backend/internal/utils"
)

// SearchItem is one search hit with its computed average rating attached
// (the detail the result list renders next to each recipe).
type SearchItem struct {
	Recipe        domain.Recipe `json:"recipe"`
	AverageRating float64       `json:"average_rating"`
}

// SearchResult is a page of search hits plus pagination metadata and the
// echoed filter inputs.
type SearchResult struct {
	Items    []SearchItem `json:"items"`
	Page     int          `json:"page"`
	NumPages int          `json:"num_pages"`
	Total    int          `json:"total"`

	Query       string `json:"query"`
	MinRating   string `json:"min_rating"`
	MaxPrepTime string `json:"max_prep_time"`
}

// SearchService filters, sorts, and paginates the published recipe set.
type SearchService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// PageSize is the fixed result page size.
	PageSize int
}

// Search runs the filter pipeline. minRating and maxPrepTime arrive as raw
// request strings; values that do not parse as non-negative integers are
// ignored rather than rejected, mirroring lenient form handling.
func (s *SearchService) Search(ctx context.Context, query, minRating, maxPrepTime string, page int) (*SearchResult, error) {
	tr := otel.Tracer("services/SearchService")
	ctx, span := tr.Start(ctx, "Search",
		trace.WithAttributes(
			attribute.String("search.query", query),
			attribute.Int("search.page", page),
		),
	)
	defer span.End()

	maxPrep := parseNonNegative(maxPrepTime)

	// Candidate set: published recipes, newest first, prep-time bound
	// applied at the store.
	candidates, err := repo.ListPublishedWithCategory(ctx, s.DB, maxPrep)
	if err != nil {
		return nil, err
	}

	q := search.NewQuery(query)
	if !q.Empty() {
		kept := candidates[:0]
		for _, r := range candidates {
			category := ""
			if r.Category != nil {
				category = r.Category.Name
			}
			if q.MatchesAny(r.Title, r.Description, r.Ingredients, category) {
				kept = append(kept, r)
			}
		}
		candidates = kept
	}

	// The rating filter runs over the materialized set: averages are
	// derived from rating rows, not stored on the recipe.
	items := make([]SearchItem, 0, len(candidates))
	minAvg := parseNonNegative(minRating)
	for _, r := range candidates {
		values, err := repo.ListRatingValues(ctx, s.DB, r.ID)
		if err != nil {
			return nil, err
		}
		avg := domain.RoundAverage(values)
		if minAvg != nil && avg < float64(*minAvg) {
			continue
		}
		items = append(items, SearchItem{Recipe: r, AverageRating: avg})
	}

	total := len(items)
	numPages := utils.NumPages(total, s.PageSize)
	page = utils.ClampPage(page, numPages)
	lo, hi := utils.PageSlice(page, s.PageSize, total)

	return &SearchResult{
		Items:       items[lo:hi],
		Page:        page,
		NumPages:    numPages,
		Total:       total,
		Query:       query,
		MinRating:   minRating,
		MaxPrepTime: maxPrepTime,
	}, nil
}

// parseNonNegative returns the parsed value when s is a valid non-negative
// integer, nil otherwise (the filter is skipped).
func parseNonNegative(s string) *int {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return nil
	}
	return &n
}
