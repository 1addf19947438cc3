package lang

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"iso code", "en", "en"},
		{"three letter", "eng", "en"},
		{"full name", "English", "en"},
		{"czech legacy code", "cz", "cs"},
		{"czech native", "Čeština", "cs"},
		{"slovak native", "slovensky", "sk"},
		{"label with codec noise", "English (AC3 5.1)", "en"},
		{"label with track prefix", "Track 1 - Japanese", "ja"},
		{"japanese native", "日本語", "ja"},
		{"russian native", "русский", "ru"},
		{"unknown", "xx", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMatchStream(t *testing.T) {
	streams := []string{"Deutsch", "čeština", "English (stereo)"}

	tests := []struct {
		name     string
		primary  string
		fallback string
		want     int
	}{
		{"primary match", "cs", "", 1},
		{"fallback match", "hu", "en", 2},
		{"no match", "ja", "ko", -1},
		{"no preference", "", "en", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchStream(streams, tt.primary, tt.fallback); got != tt.want {
				t.Errorf("MatchStream(%q, %q) = %d, want %d", tt.primary, tt.fallback, got, tt.want)
			}
		})
	}

	if got := MatchStream(nil, "en", ""); got != -1 {
		t.Errorf("MatchStream(nil) = %d, want -1", got)
	}
}

func TestSettingToCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Czech", "cs"},
		{"en", "en"},
		{"Disabled", ""},
		{"disabled", ""},
		{"", ""},
		{"Klingon", ""},
	}
	for _, tt := range tests {
		if got := SettingToCode(tt.in); got != tt.want {
			t.Errorf("SettingToCode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
