// ABOUTME: Pagination utilities for the country collection
// ABOUTME: Computes page counts and page slices for the filtered list

package countries

import "countries-app-api/core/domain"

// DefaultPageSize is the number of countries shown per page
const DefaultPageSize = 15

// TotalPages returns ceil(total/pageSize), never less than 1
func TotalPages(total, pageSize int) int {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	pages := (total + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// ClampPage limits page to [1, totalPages]
func ClampPage(page, totalPages int) int {
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return page
}

// Paginate returns the page-th slice of items (1-based) holding at most
// pageSize countries. The last page may be shorter; pages past the end are
// empty.
func Paginate(items []domain.Country, page, pageSize int) []domain.Country {
	// Handle invalid page
	if page < 1 {
		page = 1
	}

	// Handle invalid pageSize
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	start := (page - 1) * pageSize
	end := start + pageSize

	if start >= len(items) {
		return []domain.Country{}
	}

	if end > len(items) {
		end = len(items)
	}

	return items[start:end]
}
