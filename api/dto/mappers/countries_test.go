package mappers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"countries-app-api/core/countries"
	"countries-app-api/core/domain"
)

func germany() domain.Country {
	return domain.Country{
		Name:       domain.CountryName{Common: "Germany", Official: "Federal Republic of Germany"},
		Flags:      domain.Flags{PNG: "de.png", SVG: "de.svg", Alt: "Black, red and gold"},
		Capital:    []string{"Berlin"},
		Region:     "Europe",
		Population: 83240525,
		CCA2:       "DE",
		CCA3:       "DEU",
	}
}

func TestToCountryResponse(t *testing.T) {
	c := germany()

	resp := ToCountryResponse(&c)

	require.NotNil(t, resp)
	assert.Equal(t, "DEU", resp.Code)
	assert.Equal(t, "Germany", resp.Name.Common)
	assert.Equal(t, "Federal Republic of Germany", resp.Name.Official)
	assert.Equal(t, "de.svg", resp.Flags.SVG)
	assert.Equal(t, []string{"Berlin"}, resp.Capital)
	assert.Equal(t, int64(83240525), resp.Population)
}

func TestToCountryResponse_Nil(t *testing.T) {
	assert.Nil(t, ToCountryResponse(nil))
}

func TestToCountryResponse_NilCapital(t *testing.T) {
	c := domain.Country{Name: domain.CountryName{Common: "Antarctica"}, CCA2: "AQ"}

	resp := ToCountryResponse(&c)

	assert.NotNil(t, resp.Capital)
	assert.Empty(t, resp.Capital)
	assert.Equal(t, "AQ", resp.Code)
}

func TestToCountryResponses_Empty(t *testing.T) {
	out := ToCountryResponses(nil)

	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestToStoreResponse(t *testing.T) {
	c := germany()
	view := countries.View{
		All:        []domain.Country{c, c},
		Query:      "ger",
		Page:       1,
		PageSize:   15,
		Filtered:   []domain.Country{c},
		Paged:      []domain.Country{c},
		Total:      1,
		TotalPages: 1,
		Error:      "HTTP 500",
		Selected:   &c,
	}

	resp := ToStoreResponse(view)

	assert.Len(t, resp.Countries, 1)
	assert.Equal(t, "ger", resp.Query)
	assert.Equal(t, 2, resp.Loaded)
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, "HTTP 500", resp.Error)
	require.NotNil(t, resp.Selected)
	assert.Equal(t, "DEU", resp.Selected.Code)
}

func TestToSearchResponse(t *testing.T) {
	c := germany()
	filtered := []domain.Country{c, c, c}

	resp := ToSearchResponse("e", 2, 2, filtered, filtered[2:])

	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, 2, resp.TotalPages)
	assert.Equal(t, 2, resp.Page)
	assert.Len(t, resp.Countries, 1)
}
