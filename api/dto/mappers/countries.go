// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Provides clean separation between business logic and API layer

package mappers

import (
	"countries-app-api/api/dto/responses"
	"countries-app-api/core/countries"
	"countries-app-api/core/domain"
)

// ToCountryResponse converts a domain Country to a CountryResponse DTO
func ToCountryResponse(c *domain.Country) *responses.CountryResponse {
	if c == nil {
		return nil
	}

	capital := c.Capital
	if capital == nil {
		capital = []string{}
	}

	return &responses.CountryResponse{
		Code: c.Code(),
		Name: responses.CountryNameResponse{
			Common:   c.Name.Common,
			Official: c.Name.Official,
		},
		Flags: responses.FlagsResponse{
			PNG: c.Flags.PNG,
			SVG: c.Flags.SVG,
			Alt: c.Flags.Alt,
		},
		Capital:    capital,
		Region:     c.Region,
		Population: c.Population,
		CCA2:       c.CCA2,
		CCA3:       c.CCA3,
	}
}

// ToCountryResponses converts a slice of countries, never returning nil
func ToCountryResponses(list []domain.Country) []responses.CountryResponse {
	out := make([]responses.CountryResponse, 0, len(list))
	for i := range list {
		out = append(out, *ToCountryResponse(&list[i]))
	}
	return out
}

// ToStoreResponse converts a store snapshot
func ToStoreResponse(view countries.View) responses.StoreResponse {
	return responses.StoreResponse{
		Countries:  ToCountryResponses(view.Paged),
		Query:      view.Query,
		Page:       view.Page,
		PageSize:   view.PageSize,
		Total:      view.Total,
		TotalPages: view.TotalPages,
		Loaded:     len(view.All),
		IsLoading:  view.IsLoading,
		Error:      view.Error,
		Selected:   ToCountryResponse(view.Selected),
	}
}

// ToSearchResponse converts one page of search results
func ToSearchResponse(query string, page, pageSize int, filtered, paged []domain.Country) responses.SearchResponse {
	return responses.SearchResponse{
		Countries:  ToCountryResponses(paged),
		Query:      query,
		Page:       page,
		PageSize:   pageSize,
		Total:      len(filtered),
		TotalPages: countries.TotalPages(len(filtered), pageSize),
	}
}
