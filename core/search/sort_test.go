package search

import (
	"testing"

	"golang.org/x/text/language"

	"countries-app-api/core/domain"
)

func TestSortByCommonName_LocaleOrder(t *testing.T) {
	countries := []domain.Country{
		{Name: domain.CountryName{Common: "Zimbabwe"}},
		{Name: domain.CountryName{Common: "Åland"}},
		{Name: domain.CountryName{Common: "austria"}},
		{Name: domain.CountryName{Common: "Albania"}},
	}

	SortByCommonName(countries, language.Und)

	// Root collation places accented and lower-case letters next to their
	// base letter instead of after "Z" as a byte comparison would.
	want := []string{"Åland", "Albania", "austria", "Zimbabwe"}
	got := names(countries)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("SortByCommonName() = %v, want %v", got, want)
		}
	}
}

func TestSortByCommonName_Empty(t *testing.T) {
	var countries []domain.Country
	SortByCommonName(countries, language.Und)
	if len(countries) != 0 {
		t.Error("sorting an empty slice should leave it empty")
	}
}
