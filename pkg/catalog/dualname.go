package catalog

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Dual-name separators, tried in strict order. Guards keep quality tags,
// years, bare language codes and plain hyphenated words from reading as a
// second title.
var (
	dualBracketRe    = regexp.MustCompile(`^(.+?)\s*\[([^\]]+)\]`)
	dualParenRe      = regexp.MustCompile(`^(.+?)\s*\(([^)]+)\)`)
	dualTightDashRe  = regexp.MustCompile(`^([A-ZÁČĎÉĚÍŇÓŘŠŤÚŮÝŽ][^-]+)-([A-ZÁČĎÉĚÍŇÓŘŠŤÚŮÝŽ].+)$`)
	dualMultiSpaceRe = regexp.MustCompile(`^(.+?)\s{2,}(.+)$`)

	romanSequelRe = regexp.MustCompile(`[IVX]+\s*\(\d+\)`)
	bareYearRe    = regexp.MustCompile(`^\d{4}$`)
	bareLangRe    = regexp.MustCompile(`^[A-Z]{2,3}$`)
)

var dualQualityKeywords = []string{
	"p", "hd", "fps", "x264", "x265", "hevc", "aac", "dts", "bluray", "webrip",
}

// ExtractDualNames detects two co-occurring title variants in a raw title
// fragment, e.g. "The Penguin - Tučňák". Returns nil when no separator
// structure matches or a guard rejects the candidate pair.
func ExtractDualNames(raw string) *NamePair {
	if m := dualBracketRe.FindStringSubmatch(raw); m != nil {
		name1, name2 := strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
		if longEnough(name1, name2) && !looksLikeQuality(name2) {
			return &NamePair{First: name1, Second: name2}
		}
	}

	if m := dualParenRe.FindStringSubmatch(raw); m != nil {
		name1, name2 := strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
		if longEnough(name1, name2) && !bareYearRe.MatchString(name2) &&
			!looksLikeQuality(name2) && !bareLangRe.MatchString(name2) {
			return &NamePair{First: name1, Second: name2}
		}
	}

	if before, after, found := strings.Cut(raw, " - "); found {
		name1, name2 := strings.TrimSpace(before), strings.TrimSpace(after)
		if romanSequelRe.MatchString(name1) {
			return nil
		}
		if foldKey(name1) == foldKey(name2) {
			return nil
		}
		if longEnough(name1, name2) {
			return &NamePair{First: name1, Second: name2}
		}
	}

	if m := dualTightDashRe.FindStringSubmatch(raw); m != nil {
		name1, name2 := strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
		if romanSequelRe.MatchString(name1) {
			return nil
		}
		if foldKey(name1) == foldKey(name2) {
			return nil
		}
		// Ordinary hyphenated words have one capital per side at most.
		multiWord := strings.Contains(name1, " ") || strings.Contains(name2, " ") ||
			countUpper(name1) > 1 || countUpper(name2) > 1
		if longEnough(name1, name2) && multiWord {
			return &NamePair{First: name1, Second: name2}
		}
	}

	if before, after, found := strings.Cut(raw, " / "); found {
		name1, name2 := strings.TrimSpace(before), strings.TrimSpace(after)
		if longEnough(name1, name2) {
			return &NamePair{First: name1, Second: name2}
		}
	}

	if m := dualMultiSpaceRe.FindStringSubmatch(raw); m != nil {
		name1, name2 := strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
		if longEnough(name1, name2) && countUpper(name1) > 0 && countUpper(name2) > 0 &&
			foldKey(name1) != foldKey(name2) {
			return &NamePair{First: name1, Second: name2}
		}
	}

	return nil
}

// DualCanonical builds a canonical identity from a dual-name pair without
// consulting any external resolver: both sides cleaned, a substring pair
// collapses to the longer side, otherwise the cleaned names are sorted and
// pipe-joined with a "Second / First" display form. Returns nil when the
// two sides collapse to the same or an empty canonical form.
func DualCanonical(name1, name2 string) *DualNames {
	if name1 == "" || name2 == "" {
		return nil
	}
	clean1, clean2 := CleanName(name1), CleanName(name2)
	if clean1 == "" || clean2 == "" || clean1 == clean2 {
		return nil
	}

	dual := &DualNames{Original: name1, Czech: name2}
	switch {
	case strings.Contains(clean2, clean1):
		dual.CanonicalKey = clean2
		dual.DisplayName = name2
	case strings.Contains(clean1, clean2):
		dual.CanonicalKey = clean1
		dual.DisplayName = name1
	default:
		keys := []string{clean1, clean2}
		sort.Strings(keys)
		dual.CanonicalKey = strings.Join(keys, "|")
		dual.DisplayName = name2 + " / " + name1
	}
	return dual
}

func longEnough(name1, name2 string) bool {
	return utf8.RuneCountInString(name1) > 1 && utf8.RuneCountInString(name2) > 1
}

func looksLikeQuality(name string) bool {
	lower := strings.ToLower(name)
	for _, kw := range dualQualityKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func countUpper(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsUpper(r) {
			n++
		}
	}
	return n
}
