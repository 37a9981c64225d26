// ABOUTME: Stateless search handler over the loaded country collection
// ABOUTME: Filters and pages per request without touching the shared browsing state

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"countries-app-api/api/dto/mappers"
	"countries-app-api/api/dto/responses"
	"countries-app-api/core/countries"
	"countries-app-api/pkg/featureflags"
)

// SearchHandler serves request-scoped searches
type SearchHandler struct {
	store CountryStore
	flags featureflags.Manager
}

// NewSearchHandler creates a new search handler. A nil flag manager falls
// back to the one carried by the request context.
func NewSearchHandler(store CountryStore, flags featureflags.Manager) *SearchHandler {
	return &SearchHandler{store: store, flags: flags}
}

// RegisterRoutes registers search routes
func (h *SearchHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "searchCountries",
		Method:      http.MethodGet,
		Path:        "/search",
		Summary:     "Search countries",
		Description: "Accent- and case-insensitive search over names, region and capitals of the loaded collection",
		Tags:        []string{"Search"},
	}, h.Search)
}

// SearchInput defines the input for the Search operation
type SearchInput struct {
	Query    string `query:"q" maxLength:"200" doc:"Search text; empty returns every country"`
	Page     int    `query:"page" minimum:"1" default:"1" doc:"Page number, clamped to the last page"`
	PageSize int    `query:"page_size" minimum:"0" maximum:"250" doc:"Countries per page; 0 uses the server default"`
}

// SearchOutput defines the output for the Search operation
type SearchOutput struct {
	Body responses.SearchResponse
}

// Search handles GET /search
func (h *SearchHandler) Search(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	if !h.enabled(ctx) {
		return nil, huma.Error404NotFound("search is disabled")
	}

	pageSize := input.PageSize
	if pageSize < 1 {
		pageSize = h.store.PageSize()
	}

	filtered := h.store.Search(input.Query)
	page := countries.ClampPage(input.Page, countries.TotalPages(len(filtered), pageSize))
	paged := countries.Paginate(filtered, page, pageSize)

	return &SearchOutput{
		Body: mappers.ToSearchResponse(input.Query, page, pageSize, filtered, paged),
	}, nil
}

func (h *SearchHandler) enabled(ctx context.Context) bool {
	if h.flags != nil {
		return h.flags.IsEnabled(ctx, featureflags.SearchEnabled)
	}
	return featureflags.IsEnabled(ctx, featureflags.SearchEnabled)
}
