// ABOUTME: Response DTOs for country endpoints
// ABOUTME: Shapes the store state and country records for API clients

package responses

// CountryResponse represents a single country in API responses
type CountryResponse struct {
	// Code is the alpha-3 code, or alpha-2 when alpha-3 is unknown
	Code       string              `json:"code" doc:"Identifier usable with /countries/{code}"`
	Name       CountryNameResponse `json:"name"`
	Flags      FlagsResponse       `json:"flags"`
	Capital    []string            `json:"capital" doc:"Capital cities, possibly empty"`
	Region     string              `json:"region,omitempty"`
	Population int64               `json:"population"`
	CCA2       string              `json:"cca2,omitempty"`
	CCA3       string              `json:"cca3,omitempty"`
}

// CountryNameResponse holds the names of a country
type CountryNameResponse struct {
	Common   string `json:"common"`
	Official string `json:"official,omitempty"`
}

// FlagsResponse holds flag image URLs
type FlagsResponse struct {
	PNG string `json:"png,omitempty"`
	SVG string `json:"svg,omitempty"`
	Alt string `json:"alt,omitempty"`
}

// StoreResponse is the current browsing state with the visible page
type StoreResponse struct {
	Countries  []CountryResponse `json:"countries" doc:"Countries on the current page"`
	Query      string            `json:"query"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	Total      int               `json:"total" doc:"Countries matching the query"`
	TotalPages int               `json:"total_pages"`
	Loaded     int               `json:"loaded" doc:"Size of the full collection"`
	IsLoading  bool              `json:"is_loading"`
	Error      string            `json:"error,omitempty" doc:"Message of the last failed load"`
	Selected   *CountryResponse  `json:"selected,omitempty"`
}

// SearchResponse is one page of a stateless search
type SearchResponse struct {
	Countries  []CountryResponse `json:"countries"`
	Query      string            `json:"query"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	Total      int               `json:"total"`
	TotalPages int               `json:"total_pages"`
}
