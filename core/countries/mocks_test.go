package countries

import (
	"context"
	"fmt"
	"sync"

	"countries-app-api/core/domain"
)

// mockSource is a mock implementation of the CountrySource interface
type mockSource struct {
	fetchFunc func(ctx context.Context) ([]domain.Country, error)

	mu    sync.Mutex
	calls int
}

func (m *mockSource) FetchCountries(ctx context.Context) ([]domain.Country, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	if m.fetchFunc != nil {
		return m.fetchFunc(ctx)
	}
	return nil, nil
}

func (m *mockSource) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// mockLogger records log messages by level
type mockLogger struct {
	mu     sync.Mutex
	errors []string
	infos  []string
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}

func (m *mockLogger) Info(msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.infos = append(m.infos, msg)
}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {}

func (m *mockLogger) Error(msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors = append(m.errors, msg)
}

func country(name, region string, capitals ...string) domain.Country {
	return domain.Country{
		Name:    domain.CountryName{Common: name},
		Region:  region,
		Capital: capitals,
	}
}

// numbered returns n countries named "Country 001".."Country n"
func numbered(n int) []domain.Country {
	out := make([]domain.Country, n)
	for i := range out {
		out[i] = domain.Country{
			Name:    domain.CountryName{Common: fmt.Sprintf("Country %03d", i+1)},
			Capital: []string{},
		}
	}
	return out
}
