// Package core contains the business logic for the Countries API.
// It is framework-agnostic and can be used without the HTTP layer.
//
// The core package is organized into several sub-packages:
//
// - domain: the Country record and its code and capital helpers
// - search: accent- and case-insensitive normalization, matching, and ordering
// - countries: the collection store with its query, paging, and selection state
// - source: the REST Countries adapter that feeds the store
// - workers: background reload of the store
// - errors: custom error types for better error handling
// - interfaces: contracts for external dependencies (cache, HTTP, logger)
//
// # Design Principles
//
// - No web framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
//
// # Usage Example
//
//	import (
//	    "countries-app-api/core/countries"
//	    "countries-app-api/core/interfaces"
//	    "countries-app-api/core/source"
//	)
//
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // optional, implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	store := countries.NewStore(source.NewRESTCountries(deps, source.Options{}))
//	store.Load(ctx)
//
//	store.SetQuery("aland")
//	page := store.Paged()
package core
