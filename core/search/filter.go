// ABOUTME: Country filtering over the normalized search query
// ABOUTME: Matches a query against common name, official name, region, and capitals

package search

import (
	"strings"

	"countries-app-api/core/domain"
)

// NormalizeQuery trims surrounding whitespace and normalizes the query
func NormalizeQuery(query string) string {
	return Normalize(strings.TrimSpace(query))
}

// Matches reports whether the country matches an already normalized query.
// A country matches when any of its common name, official name, region, or
// joined capital list contains the query. An empty query matches everything.
func Matches(c *domain.Country, normalizedQuery string) bool {
	if normalizedQuery == "" {
		return true
	}
	return NewKey(c).Matches(normalizedQuery)
}

// Key holds the normalized searchable fields of one country. Fields are kept
// apart so a query never matches across a field boundary.
type Key [4]string

// NewKey normalizes the searchable fields of c
func NewKey(c *domain.Country) Key {
	return Key{
		Normalize(c.Name.Common),
		Normalize(c.Name.Official),
		Normalize(c.Region),
		Normalize(c.CapitalList()),
	}
}

// Keys builds the key of every country, index for index
func Keys(countries []domain.Country) []Key {
	keys := make([]Key, len(countries))
	for i := range countries {
		keys[i] = NewKey(&countries[i])
	}
	return keys
}

// Matches reports whether any field contains the normalized query
func (k Key) Matches(normalizedQuery string) bool {
	if normalizedQuery == "" {
		return true
	}
	for _, field := range k {
		if strings.Contains(field, normalizedQuery) {
			return true
		}
	}
	return false
}

// Filter returns the countries that match query. When the normalized query is
// empty the input slice is returned as is, preserving load order.
func Filter(countries []domain.Country, query string) []domain.Country {
	return FilterKeyed(countries, nil, query)
}

// FilterKeyed is Filter over precomputed keys; keys[i] must belong to
// countries[i]. When the lengths differ the keys are rebuilt.
func FilterKeyed(countries []domain.Country, keys []Key, query string) []domain.Country {
	q := NormalizeQuery(query)
	if q == "" {
		return countries
	}
	if len(keys) != len(countries) {
		keys = Keys(countries)
	}

	filtered := make([]domain.Country, 0, len(countries))
	for i := range countries {
		if keys[i].Matches(q) {
			filtered = append(filtered, countries[i])
		}
	}
	return filtered
}
