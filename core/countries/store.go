// ABOUTME: Country collection store holds the loaded list and browsing state
// ABOUTME: Derives filtered and paged views on demand from the current state

package countries

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/text/language"

	"countries-app-api/core/domain"
	coreerrors "countries-app-api/core/errors"
	"countries-app-api/core/interfaces"
	"countries-app-api/core/search"
)

// Store holds the full country collection together with the browsing state
// (query, page, selection) and derives the filtered and paged views from it.
//
// A Store is safe for concurrent use. Each operation is atomic with respect
// to the state, but overlapping Load calls are not deduplicated: whichever
// finishes last decides the collection, the loading flag, and the error.
type Store struct {
	source interfaces.CountrySource
	logger interfaces.Logger
	locale language.Tag

	mu        sync.RWMutex
	all       []domain.Country
	keys      []search.Key
	isLoading bool
	err       string
	query     string
	page      int
	pageSize  int
	selected  *domain.Country
}

// Option configures a Store
type Option func(*Store)

// WithLogger sets the logger used for load events
func WithLogger(logger interfaces.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithPageSize sets the initial page size. Values below 1 are ignored.
func WithPageSize(size int) Option {
	return func(s *Store) {
		if size >= 1 {
			s.pageSize = size
		}
	}
}

// WithLocale sets the collation locale used to order the loaded collection
func WithLocale(tag language.Tag) Option {
	return func(s *Store) {
		s.locale = tag
	}
}

// NewStore creates an empty store reading from source
func NewStore(source interfaces.CountrySource, opts ...Option) *Store {
	s := &Store{
		source:   source,
		logger:   interfaces.NopLogger{},
		locale:   language.Und,
		all:      []domain.Country{},
		page:     1,
		pageSize: DefaultPageSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// View is a consistent, read-only snapshot of the store. Slices share
// memory with the store and must not be modified.
type View struct {
	All        []domain.Country
	IsLoading  bool
	Error      string
	Query      string
	Page       int
	PageSize   int
	Selected   *domain.Country
	Filtered   []domain.Country
	Paged      []domain.Country
	Total      int
	TotalPages int
}

// Load fetches the collection from the source. On success the collection is
// replaced, sorted by common name, and the page goes back to 1. On failure
// the error message is recorded and the previous collection stays visible.
// The loading flag is cleared either way. Load never returns an error;
// callers read it back through Err or Snapshot.
func (s *Store) Load(ctx context.Context) {
	_ = s.Reload(ctx)
}

// Reload is Load that also returns the error of this particular call. Err
// may already reflect a later, overlapping load by the time Reload returns.
func (s *Store) Reload(ctx context.Context) error {
	s.mu.Lock()
	s.isLoading = true
	s.err = ""
	s.mu.Unlock()

	start := time.Now()
	s.logger.Debug("Loading countries", nil)

	// The source is called without holding the lock so readers keep working
	// while the request is in flight.
	countries, err := s.fetch(ctx)
	var keys []search.Key
	if err == nil {
		search.SortByCommonName(countries, s.locale)
		keys = search.Keys(countries)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.isLoading = false

	if err != nil {
		s.err = err.Error()
		s.logger.Error("Failed to load countries", map[string]interface{}{
			"error":       s.err,
			"duration_ms": time.Since(start).Milliseconds(),
			"kept":        len(s.all),
		})
		return err
	}

	s.all = countries
	s.keys = keys
	s.page = 1
	s.logger.Info("Countries loaded", map[string]interface{}{
		"count":       len(countries),
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return nil
}

// fetch calls the source and turns a panic into an error carrying its string
// form, so a misbehaving source still ends in a recoverable state.
func (s *Store) fetch(ctx context.Context) (countries []domain.Country, err error) {
	if s.source == nil {
		return nil, errors.New("country source not configured")
	}

	defer func() {
		if r := recover(); r != nil {
			countries = nil
			err = fmt.Errorf("%v", r)
		}
	}()

	countries, err = s.source.FetchCountries(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Country, len(countries))
	copy(out, countries)
	for i := range out {
		out[i].EnsureCapital()
	}
	return out, nil
}

// SetAll replaces the collection verbatim, without sorting. The page is
// clamped to the new page count.
func (s *Store) SetAll(countries []domain.Country) {
	if countries == nil {
		countries = []domain.Country{}
	}
	keys := search.Keys(countries)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.all = countries
	s.keys = keys
	s.clampPageLocked()
}

// SetQuery replaces the search query and goes back to page 1
func (s *Store) SetQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.query = query
	s.page = 1
}

// Select sets the selected country, or clears it when c is nil
func (s *Store) Select(c *domain.Country) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c == nil {
		s.selected = nil
		return
	}
	selected := *c
	s.selected = &selected
}

// SelectByCode selects the country with the given alpha-2 or alpha-3 code
func (s *Store) SelectByCode(code string) (domain.Country, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.findLocked(code)
	if err != nil {
		return domain.Country{}, err
	}
	s.selected = &c
	return c, nil
}

// NextPage advances one page; no-op on the last page
func (s *Store) NextPage() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.page < s.totalPagesLocked() {
		s.page++
	}
}

// PrevPage goes back one page; no-op on page 1
func (s *Store) PrevPage() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.page > 1 {
		s.page--
	}
}

// SetPage jumps to page, clamped to [1, TotalPages]
func (s *Store) SetPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.page = ClampPage(page, s.totalPagesLocked())
}

// SetPageSize changes the page size and clamps the current page
func (s *Store) SetPageSize(size int) error {
	if size < 1 {
		return &coreerrors.ValidationError{Field: "page_size", Message: "must be at least 1"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pageSize = size
	s.clampPageLocked()
	return nil
}

// SetPageAndSize changes the page size and then jumps to page, clamped
// against the new page count, as one step
func (s *Store) SetPageAndSize(page, size int) error {
	if size < 1 {
		return &coreerrors.ValidationError{Field: "page_size", Message: "must be at least 1"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pageSize = size
	s.page = ClampPage(page, s.totalPagesLocked())
	return nil
}

// FindByCode returns the country with the given alpha-2 or alpha-3 code
func (s *Store) FindByCode(code string) (domain.Country, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.findLocked(code)
}

// All returns the full collection
func (s *Store) All() []domain.Country {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.all
}

// IsLoading reports whether a load is in flight
func (s *Store) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isLoading
}

// Err returns the message of the last failed load, or "" when the last load
// succeeded or none ran yet
func (s *Store) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Query returns the current search query
func (s *Store) Query() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.query
}

// Page returns the current 1-based page
func (s *Store) Page() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.page
}

// PageSize returns the number of countries per page
func (s *Store) PageSize() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pageSize
}

// Selected returns a copy of the selected country, or nil
func (s *Store) Selected() *domain.Country {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedCopyLocked()
}

// Filtered returns the countries matching the current query
func (s *Store) Filtered() []domain.Country {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filteredLocked()
}

// Search returns the countries matching query without touching the stored
// query or page
func (s *Store) Search(query string) []domain.Country {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return search.FilterKeyed(s.all, s.keys, query)
}

// Total returns the number of countries matching the current query
func (s *Store) Total() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.filteredLocked())
}

// TotalPages returns the page count of the filtered collection, at least 1
func (s *Store) TotalPages() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalPagesLocked()
}

// Paged returns the current page of the filtered collection
func (s *Store) Paged() []domain.Country {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Paginate(s.filteredLocked(), s.page, s.pageSize)
}

// Snapshot returns every state field and derived value read under one lock
func (s *Store) Snapshot() View {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := s.filteredLocked()
	return View{
		All:        s.all,
		IsLoading:  s.isLoading,
		Error:      s.err,
		Query:      s.query,
		Page:       s.page,
		PageSize:   s.pageSize,
		Selected:   s.selectedCopyLocked(),
		Filtered:   filtered,
		Paged:      Paginate(filtered, s.page, s.pageSize),
		Total:      len(filtered),
		TotalPages: TotalPages(len(filtered), s.pageSize),
	}
}

func (s *Store) filteredLocked() []domain.Country {
	return search.FilterKeyed(s.all, s.keys, s.query)
}

func (s *Store) totalPagesLocked() int {
	return TotalPages(len(s.filteredLocked()), s.pageSize)
}

func (s *Store) clampPageLocked() {
	s.page = ClampPage(s.page, s.totalPagesLocked())
}

func (s *Store) selectedCopyLocked() *domain.Country {
	if s.selected == nil {
		return nil
	}
	c := *s.selected
	return &c
}

func (s *Store) findLocked(code string) (domain.Country, error) {
	for i := range s.all {
		if s.all[i].HasCode(code) {
			return s.all[i], nil
		}
	}
	return domain.Country{}, &coreerrors.NotFoundError{Resource: "country", ID: code}
}
