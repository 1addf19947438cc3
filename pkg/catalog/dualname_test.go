package catalog

import "testing"

func TestExtractDualNames(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		first  string
		second string
	}{
		{"spaced dash", "The Penguin - Tučňák", "The Penguin", "Tučňák"},
		{"brackets", "Duna [Dune]", "Duna", "Dune"},
		{"tight dash multiword", "Pelíšky-Cosy Dens", "Pelíšky", "Cosy Dens"},
		{"slash", "Dune / Duna", "Dune", "Duna"},
		{"double space", "Vlny  Waves", "Vlny", "Waves"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractDualNames(tt.in)
			if got == nil {
				t.Fatalf("ExtractDualNames(%q) = nil, want pair", tt.in)
			}
			if got.First != tt.first || got.Second != tt.second {
				t.Errorf("ExtractDualNames(%q) = {%q, %q}, want {%q, %q}",
					tt.in, got.First, got.Second, tt.first, tt.second)
			}
		})
	}
}

func TestExtractDualNames_Rejections(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"quality in brackets", "Movie [1080p]"},
		{"bare year in parens", "Film (2020)"},
		{"roman sequel", "Rocky II (2) - Rocky II"},
		{"same name both sides", "Želary - Zelary"},
		{"hyphenated word", "Spider-Man"},
		{"single name", "Breaking Bad"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractDualNames(tt.in); got != nil {
				t.Errorf("ExtractDualNames(%q) = {%q, %q}, want nil", tt.in, got.First, got.Second)
			}
		})
	}
}

func TestDualCanonical(t *testing.T) {
	t.Run("distinct names", func(t *testing.T) {
		dual := DualCanonical("The Penguin", "Tučňák")
		if dual == nil {
			t.Fatal("DualCanonical = nil, want result")
		}
		if dual.CanonicalKey != "penguin|tucnak" {
			t.Errorf("CanonicalKey = %q, want %q", dual.CanonicalKey, "penguin|tucnak")
		}
		if dual.DisplayName != "Tučňák / The Penguin" {
			t.Errorf("DisplayName = %q", dual.DisplayName)
		}
		if dual.Original != "The Penguin" || dual.Czech != "Tučňák" {
			t.Errorf("Original/Czech = %q/%q", dual.Original, dual.Czech)
		}
	})

	t.Run("substring collapses to longer", func(t *testing.T) {
		dual := DualCanonical("South Park", "Mestecko South Park")
		if dual == nil {
			t.Fatal("DualCanonical = nil, want result")
		}
		if dual.CanonicalKey != "mestecko south park" {
			t.Errorf("CanonicalKey = %q", dual.CanonicalKey)
		}
		if dual.DisplayName != "Mestecko South Park" {
			t.Errorf("DisplayName = %q", dual.DisplayName)
		}
	})

	t.Run("equal after folding", func(t *testing.T) {
		if dual := DualCanonical("Zelary", "Želary"); dual != nil {
			t.Errorf("DualCanonical = %+v, want nil", dual)
		}
	})

	t.Run("empty side", func(t *testing.T) {
		if dual := DualCanonical("", "Tučňák"); dual != nil {
			t.Errorf("DualCanonical = %+v, want nil", dual)
		}
	})
}
