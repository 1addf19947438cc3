package main

import (
	"testing"

	"github.com/vmunix/sharecat/pkg/catalog"
)

func TestPreferredIndex(t *testing.T) {
	versions := []*catalog.FileRecord{
		{Name: "a.mkv", Language: "EN"},
		{Name: "b.mkv", Language: "CZ"},
		{Name: "c.mkv"},
	}

	tests := []struct {
		name     string
		primary  string
		fallback string
		want     int
	}{
		{"primary match", "cs", "", 1},
		{"fallback match", "de", "en", 0},
		{"no preference", "", "sk", -1},
		{"nothing matches", "de", "sk", -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := preferredIndex(versions, tt.primary, tt.fallback); got != tt.want {
				t.Errorf("preferredIndex(%q, %q) = %d, want %d", tt.primary, tt.fallback, got, tt.want)
			}
		})
	}

	if got := preferredIndex(nil, "cs", ""); got != -1 {
		t.Errorf("preferredIndex(nil) = %d, want -1", got)
	}
}
