package search

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"countries-app-api/core/domain"
)

// SortByCommonName sorts countries in place by common name using the
// collation rules of locale. Equal names keep their relative order.
func SortByCommonName(countries []domain.Country, locale language.Tag) {
	// Collators carry scratch buffers; one per sort keeps this safe to call
	// from concurrent loads.
	col := collate.New(locale)
	sort.SliceStable(countries, func(i, j int) bool {
		return col.CompareString(countries[i].Name.Common, countries[j].Name.Common) < 0
	})
}
