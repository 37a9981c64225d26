package search

import (
	"sync"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty string", "", ""},
		{"plain ascii", "Germany", "germany"},
		{"ring above", "Åland", "aland"},
		{"upper case accented", "ÅLAND", "aland"},
		{"acute and cedilla", "Curaçao São Tomé", "curacao sao tome"},
		{"diaeresis", "Côte d'Ivoire", "cote d'ivoire"},
		{"already folded", "reunion", "reunion"},
		{"compatibility form", "ﬁji", "fiji"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Åland Islands",
		"ÅLAND",
		"Réunion",
		"São Tomé and Príncipe",
		"Türkiye",
		"Việt Nam",
		"ﬁji",
		"Ελλάδα",
		"",
		"   spaced   ",
	}

	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: once=%q twice=%q", input, once, twice)
		}
	}
}

func TestNormalizeQuery_TrimsWhitespace(t *testing.T) {
	if got := NormalizeQuery("  Åland \t"); got != "aland" {
		t.Errorf("NormalizeQuery() = %q, want %q", got, "aland")
	}
	if got := NormalizeQuery("   "); got != "" {
		t.Errorf("NormalizeQuery() of blanks = %q, want empty", got)
	}
}

func TestNormalize_Allocations(t *testing.T) {
	if allocs := testing.AllocsPerRun(100, func() { Normalize("germany") }); allocs != 0 {
		t.Errorf("Normalize on folded ascii allocated %.0f times, want 0", allocs)
	}

	// The fold chain is reused across calls; only the output is allocated
	if allocs := testing.AllocsPerRun(100, func() { Normalize("Åland Islands") }); allocs > 4 {
		t.Errorf("Normalize allocated %.0f times per call, want at most 4", allocs)
	}
}

func TestNormalize_ConcurrentUse(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				if got := Normalize("Curaçao São Tomé"); got != "curacao sao tome" {
					t.Errorf("Normalize = %q under concurrent use", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}
