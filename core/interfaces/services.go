// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines the contract of the country data source consumed by the store

package interfaces

import (
	"context"

	"countries-app-api/core/domain"
)

// CountrySource retrieves the full list of countries from a remote endpoint.
//
// Implementations must return every country with a non-nil Capital slice,
// sorted by common name in locale collation order. When the remote call does
// not succeed, the returned error carries a message derived from the HTTP
// status (for example "HTTP 500").
type CountrySource interface {
	FetchCountries(ctx context.Context) ([]domain.Country, error)
}
