package countries

import (
	"context"
	"fmt"
	"testing"

	"countries-app-api/core/domain"
)

func benchCountries(n int) []domain.Country {
	regions := []string{"Africa", "Americas", "Asia", "Europe", "Oceania"}
	out := make([]domain.Country, n)
	for i := range out {
		out[i] = domain.Country{
			Name: domain.CountryName{
				Common:   fmt.Sprintf("Ćountry %03d", i),
				Official: fmt.Sprintf("Republic of Ćountry %03d", i),
			},
			Region:  regions[i%len(regions)],
			Capital: []string{fmt.Sprintf("Capital %03d", i), "Second City"},
		}
	}
	return out
}

func TestStore_FilteredAllocations(t *testing.T) {
	store := NewStore(nil)
	store.SetAll(benchCountries(250))
	store.SetQuery("ćountry 1")

	if got := len(store.Filtered()); got != 100 {
		t.Fatalf("Filtered returned %d countries, want 100", got)
	}

	// Keys are built once per collection, so a filter pass allocates the
	// folded query and the result slice, not a string per field
	allocs := testing.AllocsPerRun(50, func() {
		_ = store.Snapshot()
	})
	if allocs > 10 {
		t.Errorf("Snapshot allocated %.0f times per call, want at most 10", allocs)
	}
}

func TestStore_WriteLockedPagingAllocations(t *testing.T) {
	store := NewStore(nil)
	store.SetAll(benchCountries(250))
	store.SetQuery("europe")

	allocs := testing.AllocsPerRun(50, func() {
		store.NextPage()
		store.SetPage(1)
		_ = store.SetPageAndSize(2, 10)
	})
	if allocs > 20 {
		t.Errorf("paging allocated %.0f times per round, want at most 20", allocs)
	}
}

// Benchmarks
func BenchmarkStore_Load(b *testing.B) {
	list := benchCountries(250)
	store := NewStore(&mockSource{
		fetchFunc: func(ctx context.Context) ([]domain.Country, error) {
			return list, nil
		},
	})

	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		store.Load(ctx)
	}
}

func BenchmarkStore_Paged_NoQuery(b *testing.B) {
	store := NewStore(nil)
	store.SetAll(benchCountries(250))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = store.Paged()
	}
}

func BenchmarkStore_Paged_WithQuery(b *testing.B) {
	store := NewStore(nil)
	store.SetAll(benchCountries(250))
	store.SetQuery("country 1")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = store.Paged()
	}
}

func BenchmarkStore_Snapshot(b *testing.B) {
	store := NewStore(nil)
	store.SetAll(benchCountries(250))
	store.SetQuery("europe")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = store.Snapshot()
	}
}

func BenchmarkStore_ConcurrentReads(b *testing.B) {
	store := NewStore(nil)
	store.SetAll(benchCountries(250))
	store.SetQuery("capital")

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = store.Total()
		}
	})
}

func BenchmarkStore_Search(b *testing.B) {
	store := NewStore(nil)
	store.SetAll(benchCountries(250))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = store.Search("Republic of Ćountry 2")
	}
}
