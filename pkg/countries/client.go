// ABOUTME: Main client for the countries library
// ABOUTME: Offers loading, searching, and lookup without any HTTP server

package countries

import (
	"context"
	"sync"
	"time"

	corecountries "countries-app-api/core/countries"
	"countries-app-api/core/domain"
	coreerrors "countries-app-api/core/errors"
	"countries-app-api/core/interfaces"
	"countries-app-api/core/source"
	"countries-app-api/core/workers"
	stdhttp "countries-app-api/infrastructure/http/standard"
)

// Country is a country record as served by the library
type Country = domain.Country

// DefaultHTTPTimeout bounds a single upstream request
const DefaultHTTPTimeout = 30 * time.Second

// DefaultCacheTTL is how long a response stays cached when a cache is set
const DefaultCacheTTL = 10 * time.Minute

// Client is the main entry point for the countries library
type Client struct {
	store   *corecountries.Store
	source  *source.RESTCountries
	refresh *workers.RefreshWorker
	config  Config

	mu     sync.Mutex
	closed bool
}

// Page is one page of search results
type Page struct {
	Countries  []Country
	Query      string
	Page       int
	PageSize   int
	Total      int
	TotalPages int
}

func defaultConfig() Config {
	return Config{
		Endpoint: source.DefaultEndpoint,
		PageSize: corecountries.DefaultPageSize,
		CacheTTL: DefaultCacheTTL,
	}
}

// NewClient creates a new client with the given options. The collection is
// empty until Load is called.
func NewClient(options ...Option) (*Client, error) {
	config := defaultConfig()
	for _, opt := range options {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	if config.HTTPClient == nil {
		config.HTTPClient = stdhttp.NewStandardHTTPClient(DefaultHTTPTimeout)
	}
	if config.Logger == nil {
		config.Logger = interfaces.NopLogger{}
	}

	deps := interfaces.Dependencies{
		Cache:      config.Cache,
		HTTPClient: config.HTTPClient,
		Logger:     config.Logger,
	}

	src := source.NewRESTCountries(deps, source.Options{
		Endpoint: config.Endpoint,
		Locale:   config.Locale,
		CacheTTL: config.CacheTTL,
	})

	client := &Client{
		source: src,
		store: corecountries.NewStore(src,
			corecountries.WithLogger(config.Logger),
			corecountries.WithPageSize(config.PageSize),
			corecountries.WithLocale(config.Locale),
		),
		config: config,
	}

	if config.RefreshInterval > 0 {
		client.refresh = workers.NewRefreshWorker(client.store, workers.RefreshConfig{
			Interval: config.RefreshInterval,
			Timeout:  DefaultHTTPTimeout,
		}, config.Logger)
		if err := client.refresh.Start(); err != nil {
			return nil, NewError(ErrorTypeConfiguration, "failed to start refresh").WithCause(err)
		}
	}

	return client, nil
}

// Store returns the underlying store holding the browsing state
func (c *Client) Store() *corecountries.Store {
	return c.store
}

// Endpoint returns the URL the client reads from
func (c *Client) Endpoint() string {
	return c.source.Endpoint()
}

// Load fetches the collection. On failure the previous collection stays in
// place and the returned error carries the upstream message.
func (c *Client) Load(ctx context.Context) error {
	if c.isClosed() {
		return ErrClientClosed
	}

	if err := c.store.Reload(ctx); err != nil {
		errType := ErrorTypeNetwork
		if coreerrors.IsParse(err) {
			errType = ErrorTypeParsing
		}
		return NewError(errType, "failed to load countries").
			WithCause(err).
			WithContext("endpoint", c.Endpoint())
	}
	return nil
}

// Search filters the loaded collection by query and returns the requested
// page, clamped to the available pages. It does not change the store's own
// query or page.
func (c *Client) Search(query string, page int) Page {
	return c.SearchWithPageSize(query, page, c.store.PageSize())
}

// SearchWithPageSize is Search with an explicit page size
func (c *Client) SearchWithPageSize(query string, page, pageSize int) Page {
	if pageSize < 1 {
		pageSize = c.store.PageSize()
	}

	filtered := c.store.Search(query)
	totalPages := corecountries.TotalPages(len(filtered), pageSize)
	page = corecountries.ClampPage(page, totalPages)

	return Page{
		Countries:  corecountries.Paginate(filtered, page, pageSize),
		Query:      query,
		Page:       page,
		PageSize:   pageSize,
		Total:      len(filtered),
		TotalPages: totalPages,
	}
}

// Country looks up a country by alpha-2 or alpha-3 code
func (c *Client) Country(code string) (Country, error) {
	country, err := c.store.FindByCode(code)
	if err != nil {
		if coreerrors.IsNotFound(err) {
			return Country{}, NewError(ErrorTypeNotFound, "country not found").
				WithCause(err).
				WithContext("code", code)
		}
		return Country{}, err
	}
	return country, nil
}

// Close stops the background refresh. The client cannot load afterwards.
func (c *Client) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.mu.Unlock()

	if c.refresh != nil {
		return c.refresh.Stop()
	}
	return nil
}

func (c *Client) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}
