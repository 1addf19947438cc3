// Package lang maps language names, codes and native spellings to ISO
// 639-1 codes and matches audio/subtitle stream labels against language
// preferences.
package lang

import (
	"regexp"
	"strings"
)

// codeMap maps every known variant to its two-letter ISO 639-1 code.
var codeMap = map[string]string{
	// English
	"en": "en", "eng": "en", "english": "en",
	// Czech
	"cs": "cs", "cz": "cs", "ces": "cs", "cze": "cs", "czech": "cs",
	"čeština": "cs", "česky": "cs",
	// Slovak
	"sk": "sk", "slk": "sk", "slo": "sk", "slovak": "sk",
	"slovenčina": "sk", "slovensky": "sk",
	// German
	"de": "de", "deu": "de", "ger": "de", "german": "de", "deutsch": "de",
	// French
	"fr": "fr", "fra": "fr", "fre": "fr", "french": "fr", "français": "fr",
	// Spanish
	"es": "es", "spa": "es", "spanish": "es", "español": "es",
	// Italian
	"it": "it", "ita": "it", "italian": "it", "italiano": "it",
	// Portuguese
	"pt": "pt", "por": "pt", "portuguese": "pt", "português": "pt",
	// Russian
	"ru": "ru", "rus": "ru", "russian": "ru", "русский": "ru",
	// Ukrainian
	"uk": "uk", "ukr": "uk", "ukrainian": "uk", "українська": "uk",
	// Polish
	"pl": "pl", "pol": "pl", "polish": "pl", "polski": "pl",
	// Hungarian
	"hu": "hu", "hun": "hu", "hungarian": "hu", "magyar": "hu",
	// Japanese
	"ja": "ja", "jp": "ja", "jpn": "ja", "japanese": "ja", "日本語": "ja",
	// Korean
	"ko": "ko", "kor": "ko", "korean": "ko", "한국어": "ko",
	// Chinese
	"zh": "zh", "zho": "zh", "chi": "zh", "chinese": "zh", "中文": "zh",
	// Turkish
	"tr": "tr", "tur": "tr", "turkish": "tr", "türkçe": "tr",
	// Dutch
	"nl": "nl", "nld": "nl", "dut": "nl", "dutch": "nl", "nederlands": "nl",
	// Swedish
	"sv": "sv", "swe": "sv", "swedish": "sv", "svenska": "sv",
	// Norwegian
	"no": "no", "nor": "no", "nb": "no", "nob": "no", "nn": "no", "nno": "no",
	"norwegian": "no", "norsk": "no",
	// Danish
	"da": "da", "dan": "da", "danish": "da", "dansk": "da",
	// Finnish
	"fi": "fi", "fin": "fi", "finnish": "fi", "suomi": "fi",
	// Greek
	"el": "el", "ell": "el", "gre": "el", "greek": "el", "ελληνικά": "el",
	// Romanian
	"ro": "ro", "ron": "ro", "rum": "ro", "romanian": "ro", "română": "ro",
	// Bulgarian
	"bg": "bg", "bul": "bg", "bulgarian": "bg", "български": "bg",
	// Croatian
	"hr": "hr", "hrv": "hr", "croatian": "hr", "hrvatski": "hr",
	// Serbian
	"sr": "sr", "srp": "sr", "serbian": "sr", "српски": "sr",
	// Hindi
	"hi": "hi", "hin": "hi", "hindi": "hi",
	// Thai
	"th": "th", "tha": "th", "thai": "th",
	// Vietnamese
	"vi": "vi", "vie": "vi", "vietnamese": "vi",
	// Indonesian
	"id": "id", "ind": "id", "indonesian": "id",
	// Hebrew
	"he": "he", "heb": "he", "hebrew": "he",
	// Undetermined
	"und": "und", "undetermined": "und",
}

// labelTokenRe pulls word tokens out of stream labels like
// "English (AC3 5.1)" or "Track 1 - Japanese", across scripts.
var labelTokenRe = regexp.MustCompile(`[\p{Latin}\p{Cyrillic}\p{Hebrew}\p{Arabic}\p{Devanagari}\p{Thai}\p{Han}\p{Hiragana}\p{Katakana}\p{Hangul}\p{Greek}]+`)

// Normalize maps a stream label to an ISO 639-1 code, or "" when no
// language can be recognized. Raw codes ("en", "eng"), full names
// ("English") and native spellings ("日本語") all resolve.
func Normalize(label string) string {
	if label == "" {
		return ""
	}
	lower := strings.ToLower(strings.TrimSpace(label))
	if code, ok := codeMap[lower]; ok {
		return code
	}
	for _, token := range labelTokenRe.FindAllString(lower, -1) {
		if code, ok := codeMap[token]; ok {
			return code
		}
	}
	return ""
}

// MatchStream returns the index of the first stream matching the primary
// language, falling back to the fallback language, or -1 when nothing
// matches or no preference is set.
func MatchStream(streams []string, primary, fallback string) int {
	if len(streams) == 0 || primary == "" {
		return -1
	}
	for _, code := range []string{primary, fallback} {
		if code == "" {
			continue
		}
		for i, label := range streams {
			if Normalize(label) == code {
				return i
			}
		}
	}
	return -1
}

// SettingToCode converts a settings value ("Czech", "Disabled", "en") to
// an ISO 639-1 code; "Disabled" and unknown values return "".
func SettingToCode(value string) string {
	if value == "" || strings.EqualFold(value, "disabled") {
		return ""
	}
	return codeMap[strings.ToLower(value)]
}
