package catalog

import (
	"io"
	"log/slog"
	"reflect"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func seriesWith(episodes map[int][]int) *SeriesEntry {
	entry := &SeriesEntry{Seasons: make(map[int]map[EpisodeNumber][]*FileRecord)}
	for season, eps := range episodes {
		entry.Seasons[season] = make(map[EpisodeNumber][]*FileRecord)
		for _, ep := range eps {
			entry.Seasons[season][Ep(ep)] = []*FileRecord{{Name: "f", Ident: "i", Size: "1"}}
		}
	}
	entry.TotalEpisodes = countEpisodes(entry)
	return entry
}

func TestMergeWordOrderSeries(t *testing.T) {
	cat := newCatalog()
	cat.addSeries("south park", seriesWith(map[int][]int{1: {1}}))
	cat.addSeries("park south", seriesWith(map[int][]int{1: {2}}))

	mergeWordOrderSeries(cat, discardLogger())

	if len(cat.Series) != 1 {
		t.Fatalf("series = %v", cat.SeriesKeys())
	}
	entry := cat.Series["south park"]
	if entry == nil {
		t.Fatalf("first-seen key should win, got %v", cat.SeriesKeys())
	}
	if entry.TotalEpisodes != 2 {
		t.Errorf("TotalEpisodes = %d, want 2", entry.TotalEpisodes)
	}
}

func TestMergeDualCanonicalSeries_KeepsDualKeyWithoutComponentTarget(t *testing.T) {
	cat := newCatalog()
	cat.addSeries("penguin|tucnak", seriesWith(map[int][]int{1: {1}}))
	cat.addSeries("tucnak", seriesWith(map[int][]int{1: {2}}))

	mergeDualCanonicalSeries(cat, discardLogger())

	// "penguin" does not exist as a standalone key, so the dual key itself
	// is the target.
	if len(cat.Series) != 1 {
		t.Fatalf("series = %v", cat.SeriesKeys())
	}
	entry := cat.Series["penguin|tucnak"]
	if entry == nil {
		t.Fatalf("dual key should survive, got %v", cat.SeriesKeys())
	}
	if entry.TotalEpisodes != 2 {
		t.Errorf("TotalEpisodes = %d, want 2", entry.TotalEpisodes)
	}
}

func TestMergeSubstringSeries_NoWordSubsetNoMerge(t *testing.T) {
	cat := newCatalog()
	// "ark" is a substring of "park south" but not one of its words.
	cat.addSeries("ark", seriesWith(map[int][]int{1: {1}}))
	cat.addSeries("park south", seriesWith(map[int][]int{1: {2}}))

	mergeSubstringSeries(cat, discardLogger())

	if len(cat.Series) != 2 {
		t.Fatalf("series = %v, want no merge", cat.SeriesKeys())
	}
}

// Running the three passes a second time on an already-merged catalog
// must change nothing.
func TestMergePasses_Idempotent(t *testing.T) {
	build := func() *Catalog {
		cat := newCatalog()
		cat.addSeries("south park", seriesWith(map[int][]int{1: {1, 2}}))
		cat.addSeries("mestecko south park", seriesWith(map[int][]int{1: {3}}))
		cat.addSeries("park south", seriesWith(map[int][]int{2: {1}}))
		cat.addSeries("penguin|tucnak", seriesWith(map[int][]int{1: {1}}))
		cat.addSeries("penguin", seriesWith(map[int][]int{1: {2}}))
		return cat
	}

	runPasses := func(cat *Catalog) {
		log := discardLogger()
		mergeSubstringSeries(cat, log)
		mergeWordOrderSeries(cat, log)
		mergeDualCanonicalSeries(cat, log)
	}

	cat := build()
	runPasses(cat)

	before := make(map[string]SeriesEntry, len(cat.Series))
	for k, v := range cat.Series {
		before[k] = *v
	}

	runPasses(cat)

	if len(cat.Series) != len(before) {
		t.Fatalf("second run changed key count: %v", cat.SeriesKeys())
	}
	for k, v := range cat.Series {
		if !reflect.DeepEqual(before[k], *v) {
			t.Errorf("second run changed entry %q", k)
		}
	}
}

func TestWordsSubset(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"south park", "mestecko south park", true},
		{"south park", "south park", true},
		{"ark", "park south", false},
		{"", "anything", true},
		{"south dakota", "south park", false},
	}
	for _, tt := range tests {
		if got := wordsSubset(tt.a, tt.b); got != tt.want {
			t.Errorf("wordsSubset(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
