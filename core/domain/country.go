// ABOUTME: Country domain model represents a single country record from the data source
// ABOUTME: Provides code lookup helpers and the capital list used for matching

package domain

import "strings"

// Country represents a country as returned by the country data source.
// Only the fields the application uses are kept.
type Country struct {
	// Name holds the display (common) and formal (official) names
	Name CountryName `json:"name"`

	// Flags holds flag image URLs and their alt text
	Flags Flags `json:"flags"`

	// Capital lists the capital cities; empty for some territories, never nil
	// once normalized by the source
	Capital []string `json:"capital"`

	// Region is the continent or world region (e.g. "Europe")
	Region string `json:"region,omitempty"`

	// Population is the total population
	Population int64 `json:"population,omitempty"`

	// CCA2 is the ISO 3166-1 alpha-2 code (e.g. "DE")
	CCA2 string `json:"cca2,omitempty"`

	// CCA3 is the ISO 3166-1 alpha-3 code (e.g. "DEU")
	CCA3 string `json:"cca3,omitempty"`
}

// CountryName holds the names of a country
type CountryName struct {
	Common   string `json:"common"`
	Official string `json:"official,omitempty"`
}

// Flags holds the flag image URLs of a country
type Flags struct {
	PNG string `json:"png,omitempty"`
	SVG string `json:"svg,omitempty"`
	Alt string `json:"alt,omitempty"`
}

// IsValid checks if the country has its required fields
func (c *Country) IsValid() bool {
	return strings.TrimSpace(c.Name.Common) != ""
}

// Code returns the preferred identifier of the country: the alpha-3 code,
// or the alpha-2 code when alpha-3 is missing.
func (c *Country) Code() string {
	if c.CCA3 != "" {
		return c.CCA3
	}
	return c.CCA2
}

// HasCode reports whether code matches the alpha-2 or alpha-3 code,
// ignoring case.
func (c *Country) HasCode(code string) bool {
	code = strings.TrimSpace(code)
	if code == "" {
		return false
	}
	return strings.EqualFold(c.CCA2, code) || strings.EqualFold(c.CCA3, code)
}

// CapitalList joins the capitals with a single space
func (c *Country) CapitalList() string {
	return strings.Join(c.Capital, " ")
}

// EnsureCapital replaces a nil capital list with an empty one
func (c *Country) EnsureCapital() {
	if c.Capital == nil {
		c.Capital = []string{}
	}
}
