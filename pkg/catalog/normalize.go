package catalog

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	episodeMarkerRe = regexp.MustCompile(`\b[Ss]\d{1,2}[Ee]\d{1,3}\b`)
	qualityTokenRe  = regexp.MustCompile(`(?i)\b(1080p|720p|2160p|4K|BluRay|WEB-DL|HDTV|WEBRip|BRRip)\b`)
	codecTokenRe    = regexp.MustCompile(`(?i)\b(x264|x265|H\.?264|H\.?265|HEVC|XviD)\b`)
	audioTokenRe    = regexp.MustCompile(`(?i)\b(DD5\.1|DTS|AC3|AAC)\b`)
	langTokenRe     = regexp.MustCompile(`(?i)(\b(CZ|EN|SK|DE|FR|ES|IT|PL|RU|JP|KR)\b|[(\[](CZ|EN|SK|DE|FR|ES|IT|PL|RU|JP|KR)[)\]])`)
	yearTokenRe     = regexp.MustCompile(`\[?\d{4}\]?`)
	separatorRe     = regexp.MustCompile(`[-_.,:;]+`)
	parenNoteRe     = regexp.MustCompile(`\([^)]*\)`)
)

// CleanName normalizes a title fragment into its canonical grouping form:
// structural tokens (episode markers, quality, codec, audio, language
// tags, years) are stripped, separators become single spaces, diacritics
// are folded to ASCII, the result is lowercased and articles are removed.
// Idempotent: CleanName(CleanName(x)) == CleanName(x).
func CleanName(raw string) string {
	s := episodeMarkerRe.ReplaceAllString(raw, "")
	s = qualityTokenRe.ReplaceAllString(s, "")
	s = codecTokenRe.ReplaceAllString(s, "")
	s = audioTokenRe.ReplaceAllString(s, "")
	s = langTokenRe.ReplaceAllString(s, "")
	s = yearTokenRe.ReplaceAllString(s, "")
	s = separatorRe.ReplaceAllString(s, " ")
	s = collapseSpaces(s)
	s = parenNoteRe.ReplaceAllString(s, "")
	s = collapseSpaces(s)
	s = foldASCII(s)
	s = strings.ToLower(strings.TrimSpace(s))
	s = stripLeadingArticle(s)
	s = stripInteriorArticles(s)
	s = stripTrailingArticle(s)
	return strings.TrimSpace(collapseSpaces(s))
}

// ExtractDisplayName pulls a display-friendly series name out of a
// filename, preserving case and diacritics. Only separator normalization
// and quality/codec/audio/language stripping are applied; if the filename
// carries no episode marker it is returned unchanged.
func ExtractDisplayName(filename string) string {
	m := patternSeasonEpisode.FindStringSubmatch(filename)
	if m == nil {
		m = patternSeasonXEpisode.FindStringSubmatch(filename)
	}
	if m == nil {
		return filename
	}
	name := strings.NewReplacer(".", " ", "_", " ").Replace(m[1])
	name = qualityTokenRe.ReplaceAllString(name, "")
	name = codecTokenRe.ReplaceAllString(name, "")
	name = audioTokenRe.ReplaceAllString(name, "")
	name = langTokenRe.ReplaceAllString(name, "")
	return strings.TrimSpace(collapseSpaces(name))
}

// ExtractLanguageTag returns the uppercase language code found in a
// filename ("CZ", "EN", ...) or "" when none is present. Codes only
// count as standalone words or bracketed tags, never inside a word.
func ExtractLanguageTag(filename string) string {
	m := langTokenRe.FindStringSubmatch(filename)
	if m == nil {
		return ""
	}
	if m[2] != "" {
		return strings.ToUpper(m[2])
	}
	return strings.ToUpper(m[3])
}

// WordSetKey builds an order-independent signature for a canonical key:
// whitespace-split words, sorted, rejoined with single spaces.
func WordSetKey(key string) string {
	words := strings.Fields(key)
	sort.Strings(words)
	return strings.Join(words, " ")
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func stripLeadingArticle(s string) string {
	for _, article := range []string{"the ", "a ", "an "} {
		if strings.HasPrefix(s, article) {
			return strings.TrimPrefix(s, article)
		}
	}
	return s
}

// stripInteriorArticles removes every interior article word, running to a
// fixed point so adjacent repeated articles ("x a a y") fully collapse.
func stripInteriorArticles(s string) string {
	for {
		next := s
		for _, article := range []string{" the ", " a ", " an "} {
			next = strings.ReplaceAll(next, article, " ")
		}
		if next == s {
			return s
		}
		s = next
	}
}

func stripTrailingArticle(s string) string {
	for _, article := range []string{" the", " a", " an"} {
		if strings.HasSuffix(s, article) {
			return strings.TrimSuffix(s, article)
		}
	}
	return s
}

// foldASCII removes combining marks after canonical decomposition, turning
// e.g. "Kravaťáci" into "Kravataci". A fresh transformer chain per call
// keeps the function safe for concurrent use.
func foldASCII(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return result
}

// foldKey is the equality form used by dual-name guards: ASCII-folded and
// lowercased.
func foldKey(s string) string {
	return strings.ToLower(foldASCII(s))
}
