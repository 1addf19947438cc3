package catalog

import "testing"

func TestCleanName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"dots", "Game.of.Thrones", "game of thrones"},
		{"spaces", "Game of Thrones", "game of thrones"},
		{"dashes", "Game-of-Thrones", "game of thrones"},
		{"diacritics", "Kravaťáci", "kravataci"},
		{"diacritics folded already", "Kravataci", "kravataci"},
		{"czech title", "Přátelé", "pratele"},
		{"leading article", "The Walking Dead", "walking dead"},
		{"indefinite article", "A Quiet Place", "quiet place"},
		{"trailing article", "Visitors The", "visitors"},
		{"episode marker", "South.Park.S01E01", "south park"},
		{"quality and language", "Taboo CZ 1080p", "taboo"},
		{"year", "Dune 2021", "dune"},
		{"codec and audio", "Zaklinac x265 DTS", "zaklinac"},
		{"paren note", "Podfukari (komplet)", "podfukari"},
		{"repeated interior articles", "x a a y", "x y"},
		{"mixed adjacent articles", "x a an the y", "x y"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanName(tt.in); got != tt.want {
				t.Errorf("CleanName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanName_Idempotent(t *testing.T) {
	inputs := []string{
		"Game.of.Thrones",
		"Kravaťáci",
		"The Walking Dead S02E04 CZ 720p",
		"Mestecko.South.Park",
		"Tučňák - The Penguin 2024",
		"x a a y",
		"shadow the a an the hedgehog",
		"",
	}
	for _, in := range inputs {
		once := CleanName(in)
		if twice := CleanName(once); twice != once {
			t.Errorf("CleanName not idempotent for %q: %q -> %q", in, once, twice)
		}
	}
}

func TestExtractLanguageTag(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"dotted", "Zaklinac.S01E01.CZ.1080p.mkv", "CZ"},
		{"bracketed", "Film [SK] 720p", "SK"},
		{"lowercase", "file.en.avi", "EN"},
		{"inside word ignored", "The.Penguin.S01E01.mkv", ""},
		{"none", "Breaking.Bad.S01E05.mkv", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractLanguageTag(tt.in); got != tt.want {
				t.Errorf("ExtractLanguageTag(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestWordSetKey(t *testing.T) {
	if got := WordSetKey("south park mestecko"); got != "mestecko park south" {
		t.Errorf("WordSetKey = %q", got)
	}
	if WordSetKey("park south") != WordSetKey("south park") {
		t.Error("word order should not matter")
	}
}

func TestExtractDisplayName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"dotted with quality", "Breaking.Bad.S01E05.720p.HDTV.x264.mkv", "Breaking Bad"},
		{"diacritics kept", "Město.CZ.S01E01.1080p.mkv", "Město"},
		{"season x episode", "Sopranos 3x07.avi", "Sopranos"},
		{"no marker unchanged", "randomfile.txt", "randomfile.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractDisplayName(tt.in); got != tt.want {
				t.Errorf("ExtractDisplayName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
