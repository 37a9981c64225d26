// ABOUTME: Request DTOs for country browsing endpoints
// ABOUTME: Huma validates these through their struct tags before handlers run

package requests

// SetQueryRequest replaces the search query of the shared browsing state
type SetQueryRequest struct {
	// Query is matched accent- and case-insensitively; empty clears the filter
	Query string `json:"query" maxLength:"200" doc:"Free-text search over names, region and capitals"`
}

// SetPageRequest jumps to a page and optionally changes the page size
type SetPageRequest struct {
	// Page is clamped to the available pages
	Page int `json:"page" minimum:"1" doc:"Page number (1-based); clamped to the last page"`

	// PageSize, when set, changes how many countries a page holds
	PageSize int `json:"page_size,omitempty" minimum:"0" maximum:"250" doc:"Countries per page; 0 keeps the current size"`
}

// SelectCountryRequest selects a country by ISO code
type SelectCountryRequest struct {
	Code string `json:"code" minLength:"2" maxLength:"3" doc:"ISO 3166-1 alpha-2 or alpha-3 code"`
}
