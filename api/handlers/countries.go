// ABOUTME: Country handlers for the Huma API
// ABOUTME: Exposes the shared country store: loading, query, paging, and selection

package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"countries-app-api/api/dto/mappers"
	"countries-app-api/api/dto/requests"
	"countries-app-api/api/dto/responses"
	"countries-app-api/core/countries"
	"countries-app-api/core/domain"
)

// CountryStore is the part of the country store the handlers drive
type CountryStore interface {
	Load(ctx context.Context)
	SetQuery(query string)
	Select(c *domain.Country)
	SelectByCode(code string) (domain.Country, error)
	NextPage()
	PrevPage()
	SetPage(page int)
	SetPageAndSize(page, size int) error
	FindByCode(code string) (domain.Country, error)
	Search(query string) []domain.Country
	PageSize() int
	Snapshot() countries.View
}

// CountriesHandler handles the shared browsing state
type CountriesHandler struct {
	store CountryStore
}

// NewCountriesHandler creates a new countries handler
func NewCountriesHandler(store CountryStore) *CountriesHandler {
	return &CountriesHandler{store: store}
}

// RegisterRoutes registers all country routes
func (h *CountriesHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getCountries",
		Method:      http.MethodGet,
		Path:        "/countries",
		Summary:     "Get the current page of countries",
		Description: "Returns the visible page of the filtered collection together with the browsing state",
		Tags:        []string{"Countries"},
	}, h.GetCountries)

	huma.Register(api, huma.Operation{
		OperationID: "loadCountries",
		Method:      http.MethodPost,
		Path:        "/countries/load",
		Summary:     "Reload countries from the data source",
		Description: "Fetches the collection again. A failed load keeps the previous collection and reports the message in the error field.",
		Tags:        []string{"Countries"},
	}, h.LoadCountries)

	huma.Register(api, huma.Operation{
		OperationID: "setQuery",
		Method:      http.MethodPut,
		Path:        "/countries/query",
		Summary:     "Set the search query",
		Description: "Replaces the search query and goes back to the first page",
		Tags:        []string{"Countries"},
	}, h.SetQuery)

	huma.Register(api, huma.Operation{
		OperationID: "nextPage",
		Method:      http.MethodPost,
		Path:        "/countries/page/next",
		Summary:     "Go to the next page",
		Tags:        []string{"Countries"},
	}, h.NextPage)

	huma.Register(api, huma.Operation{
		OperationID: "prevPage",
		Method:      http.MethodPost,
		Path:        "/countries/page/prev",
		Summary:     "Go to the previous page",
		Tags:        []string{"Countries"},
	}, h.PrevPage)

	huma.Register(api, huma.Operation{
		OperationID: "setPage",
		Method:      http.MethodPut,
		Path:        "/countries/page",
		Summary:     "Jump to a page",
		Description: "Sets the page, clamped to the available pages, and optionally the page size",
		Tags:        []string{"Countries"},
	}, h.SetPage)

	huma.Register(api, huma.Operation{
		OperationID: "selectCountry",
		Method:      http.MethodPut,
		Path:        "/countries/selected",
		Summary:     "Select a country",
		Tags:        []string{"Countries"},
	}, h.SelectCountry)

	huma.Register(api, huma.Operation{
		OperationID: "clearSelection",
		Method:      http.MethodDelete,
		Path:        "/countries/selected",
		Summary:     "Clear the selected country",
		Tags:        []string{"Countries"},
	}, h.ClearSelection)

	huma.Register(api, huma.Operation{
		OperationID: "getCountry",
		Method:      http.MethodGet,
		Path:        "/countries/{code}",
		Summary:     "Get a single country",
		Description: "Looks up a country by its alpha-2 or alpha-3 code",
		Tags:        []string{"Countries"},
	}, h.GetCountry)
}

// StoreOutput is returned by every operation that changes or reads the browsing state
type StoreOutput struct {
	Body responses.StoreResponse
}

func (h *CountriesHandler) snapshot() *StoreOutput {
	return &StoreOutput{Body: mappers.ToStoreResponse(h.store.Snapshot())}
}

// GetCountries handles GET /countries
func (h *CountriesHandler) GetCountries(ctx context.Context, input *struct{}) (*StoreOutput, error) {
	return h.snapshot(), nil
}

// LoadCountries handles POST /countries/load
func (h *CountriesHandler) LoadCountries(ctx context.Context, input *struct{}) (*StoreOutput, error) {
	h.store.Load(ctx)
	return h.snapshot(), nil
}

// SetQueryInput defines the input for the SetQuery operation
type SetQueryInput struct {
	Body requests.SetQueryRequest
}

// SetQuery handles PUT /countries/query
func (h *CountriesHandler) SetQuery(ctx context.Context, input *SetQueryInput) (*StoreOutput, error) {
	h.store.SetQuery(input.Body.Query)
	return h.snapshot(), nil
}

// NextPage handles POST /countries/page/next
func (h *CountriesHandler) NextPage(ctx context.Context, input *struct{}) (*StoreOutput, error) {
	h.store.NextPage()
	return h.snapshot(), nil
}

// PrevPage handles POST /countries/page/prev
func (h *CountriesHandler) PrevPage(ctx context.Context, input *struct{}) (*StoreOutput, error) {
	h.store.PrevPage()
	return h.snapshot(), nil
}

// SetPageInput defines the input for the SetPage operation
type SetPageInput struct {
	Body requests.SetPageRequest
}

// SetPage handles PUT /countries/page
func (h *CountriesHandler) SetPage(ctx context.Context, input *SetPageInput) (*StoreOutput, error) {
	if input.Body.PageSize > 0 {
		if err := h.store.SetPageAndSize(input.Body.Page, input.Body.PageSize); err != nil {
			return nil, toHumaError(err)
		}
		return h.snapshot(), nil
	}
	h.store.SetPage(input.Body.Page)
	return h.snapshot(), nil
}

// SelectCountryInput defines the input for the SelectCountry operation
type SelectCountryInput struct {
	Body requests.SelectCountryRequest
}

// SelectCountry handles PUT /countries/selected
func (h *CountriesHandler) SelectCountry(ctx context.Context, input *SelectCountryInput) (*StoreOutput, error) {
	if _, err := h.store.SelectByCode(input.Body.Code); err != nil {
		return nil, toHumaError(err)
	}
	return h.snapshot(), nil
}

// ClearSelection handles DELETE /countries/selected
func (h *CountriesHandler) ClearSelection(ctx context.Context, input *struct{}) (*StoreOutput, error) {
	h.store.Select(nil)
	return h.snapshot(), nil
}

// GetCountryInput defines the input for the GetCountry operation
type GetCountryInput struct {
	Code string `path:"code" minLength:"2" maxLength:"3" doc:"ISO 3166-1 alpha-2 or alpha-3 code"`
}

// GetCountryOutput defines the output for the GetCountry operation
type GetCountryOutput struct {
	Body responses.CountryResponse
}

// GetCountry handles GET /countries/{code}
func (h *CountriesHandler) GetCountry(ctx context.Context, input *GetCountryInput) (*GetCountryOutput, error) {
	c, err := h.store.FindByCode(strings.TrimSpace(input.Code))
	if err != nil {
		return nil, toHumaError(err)
	}
	return &GetCountryOutput{Body: *mappers.ToCountryResponse(&c)}, nil
}
