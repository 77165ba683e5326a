// Package paging slices ordered result sets into fixed-size pages addressed
// by a 1-based page number.
package paging

// PerPage is the fixed page size for every paginated endpoint.
const PerPage = 10

// Page returns the page-th slice of items. Pages are 1-based; values below 1
// are treated as 1. A page past the end yields an empty slice.
func Page[T any](items []T, page int) []T {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * PerPage
	if start >= len(items) {
		return nil
	}
	end := start + PerPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
