// Package api provides the HTTP API layer for the countries application.
// It uses the Huma framework on a chi router to provide OpenAPI documentation,
// request validation, and a small handler surface over the country store.
//
// # Architecture
//
// - server.go: Huma API configuration, CORS, and the catch-all redirect
// - handlers/: HTTP request handlers for the shared store and stateless search
// - dto/: request and response shapes plus domain mappers
// - middleware/: request logging and per-client rate limiting
//
// # Routes
//
//	GET    /countries               current page and browsing state
//	POST   /countries/load          reload from the data source
//	PUT    /countries/query         set the search query
//	POST   /countries/page/next     next page
//	POST   /countries/page/prev     previous page
//	PUT    /countries/page          jump to a page
//	PUT    /countries/selected      select by code
//	DELETE /countries/selected      clear the selection
//	GET    /countries/{code}        country detail
//	GET    /search                  stateless search
//
// Any other path redirects to /countries. The OpenAPI spec is served at
// /openapi.json and the docs UI at /docs.
//
// # Usage Example
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:      logger,
//	    RateLimiter: middleware.NewRateLimiter(120, 20),
//	})
//
//	handlers.NewCountriesHandler(store).RegisterRoutes(humaAPI)
//	handlers.NewSearchHandler(store, flags).RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Errors use the RFC 7807 problem format:
//
//	{
//	    "status": 404,
//	    "title": "Not Found",
//	    "detail": "country not found: XYZ"
//	}
package api
