// Package pagination holds the page math shared by the search path: offset
// derivation and total-page-count calculation.
package pagination

import "fmt"

// TotalPages returns ceil(total/perPage), and 0 when total is 0. A
// non-positive perPage is a programming error, not runtime input.
func TotalPages(total, perPage int) int {
	if perPage <= 0 {
		panic(fmt.Sprintf("pagination: per-page must be positive, got %d", perPage))
	}
	if total <= 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}

// Offset returns the row offset of a 1-based page.
func Offset(page, perPage int) int {
	if perPage <= 0 {
		panic(fmt.Sprintf("pagination: per-page must be positive, got %d", perPage))
	}
	if page < 1 {
		page = 1
	}
	return (page - 1) * perPage
}
