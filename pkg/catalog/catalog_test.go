package catalog

import (
	"encoding/json"
	"testing"
)

func TestSize_Bytes(t *testing.T) {
	tests := []struct {
		in   Size
		want int64
	}{
		{"1473873920", 1473873920},
		{" 42 ", 42},
		{"", 0},
		{"not a number", 0},
	}
	for _, tt := range tests {
		if got := tt.in.Bytes(); got != tt.want {
			t.Errorf("Size(%q).Bytes() = %d, want %d", tt.in, got, tt.want)
		}
	}
}

// Listings deliver sizes as either bare numbers or strings.
func TestFileRecord_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Size
	}{
		{"number", `{"name":"a.mkv","ident":"x","size":123}`, "123"},
		{"string", `{"name":"a.mkv","ident":"x","size":"456"}`, "456"},
		{"null", `{"name":"a.mkv","ident":"x","size":null}`, ""},
		{"absent", `{"name":"a.mkv","ident":"x"}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rec FileRecord
			if err := json.Unmarshal([]byte(tt.in), &rec); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if rec.Size != tt.want {
				t.Errorf("Size = %q, want %q", rec.Size, tt.want)
			}
		})
	}
}

func TestEpisodeNumber(t *testing.T) {
	if got := Ep(5).String(); got != "5" {
		t.Errorf("String() = %q", got)
	}
	if got := (EpisodeNumber{Num: 6, Sub: 5}).String(); got != "6.5" {
		t.Errorf("String() = %q", got)
	}
	if !Ep(6).Less(EpisodeNumber{Num: 6, Sub: 5}) {
		t.Error("6 should sort before 6.5")
	}
	if !Ep(2).Less(Ep(10)) {
		t.Error("2 should sort before 10")
	}
	if !(EpisodeNumber{}).IsZero() || Ep(1).IsZero() {
		t.Error("IsZero mismatch")
	}

	var ep EpisodeNumber
	if err := ep.UnmarshalText([]byte("6.5")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if ep != (EpisodeNumber{Num: 6, Sub: 5}) {
		t.Errorf("UnmarshalText = %+v", ep)
	}
	if err := ep.UnmarshalText([]byte("abc")); err == nil {
		t.Error("want error for non-numeric episode")
	}
}

func TestCatalog_KeyOrder(t *testing.T) {
	cat := newCatalog()
	cat.addSeries("b", &SeriesEntry{})
	cat.addSeries("a", &SeriesEntry{})
	cat.addSeries("c", &SeriesEntry{})
	cat.removeSeries("a")

	got := cat.SeriesKeys()
	want := []string{"b", "c"}
	if len(got) != len(want) {
		t.Fatalf("SeriesKeys = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("SeriesKeys = %v, want %v", got, want)
		}
	}
}
