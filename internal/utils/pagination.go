// Package utils provides small, generic helper functions used across
// different layers of the application. These utilities are independent
// of domain or business logic.
package utils

import "strconv"

// AtoiDefault converts a string to an int using strconv.Atoi.
// If the string is empty or cannot be parsed as an integer,
// it returns the provided default value instead.
//
// Example:
//
//	n := utils.AtoiDefault("42", 0) // returns 42
//	n = utils.AtoiDefault("", 10)   // returns 10
//	n = utils.AtoiDefault("x", 5)   // returns 5
func AtoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}

// NumPages returns the number of pages needed to hold total items at
// pageSize per page. An empty set still renders as one (empty) page.
func NumPages(total, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}
	n := (total + pageSize - 1) / pageSize
	if n < 1 {
		n = 1
	}
	return n
}

// ClampPage normalizes a requested page number: values below 1 clamp to
// the first page and values past the end clamp to the last page.
func ClampPage(page, numPages int) int {
	if page < 1 {
		return 1
	}
	if page > numPages {
		return numPages
	}
	return page
}

// PageSlice returns the half-open index range [lo, hi) of the given page
// within a slice of length total.
func PageSlice(page, pageSize, total int) (lo, hi int) {
	lo = (page - 1) * pageSize
	if lo > total {
		lo = total
	}
	hi = lo + pageSize
	if hi > total {
		hi = total
	}
	return lo, hi
}
