package catalog

import (
	"strings"
	"unicode/utf8"
)

// SearchRelevance scores a catalog entry against a user query for ranked
// listing. Scores fall into fixed bands: 1000 exact, 800 prefix, 700+
// all-words-prefix, 600+ some-words-prefix, 500 word prefix, up to 300
// substring with a position penalty, 0 no match. An empty query returns
// -1 so callers can fall back to alphabetical ordering. When a canonical
// key is given, its pipe-separated components (minus a trailing year)
// are scored too and the best band wins.
func SearchRelevance(displayName, query, canonicalKey string) int {
	if query == "" {
		return -1
	}

	q := strings.TrimSpace(strings.ToLower(query))
	d := strings.TrimSpace(strings.ToLower(displayName))
	title, _, _ := strings.Cut(d, "(")

	targets := []string{strings.TrimSpace(title)}
	if canonicalKey != "" {
		parts := strings.Split(strings.ToLower(canonicalKey), "|")
		for i, part := range parts {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if i == len(parts)-1 && looksLikeYear(part) {
				continue
			}
			targets = append(targets, part)
		}
	}

	best := 0
	for _, target := range targets {
		if score := scoreSingleMatch(target, q); score > best {
			best = score
		}
	}
	return best
}

func scoreSingleMatch(target, query string) int {
	if target == query {
		return 1000
	}
	if strings.HasPrefix(target, query) {
		return 800
	}

	queryWords := strings.Fields(query)
	targetWords := strings.Fields(target)

	if len(queryWords) > 1 {
		matches := 0
		for _, qw := range queryWords {
			for _, tw := range targetWords {
				if strings.HasPrefix(tw, qw) {
					matches++
					break
				}
			}
		}
		if matches == len(queryWords) {
			return 700 + len(queryWords)*10
		}
		if matches > 0 {
			return 600 + matches*15
		}
	}

	for _, tw := range targetWords {
		if strings.HasPrefix(tw, query) {
			return 500
		}
	}

	if idx := strings.Index(target, query); idx >= 0 {
		pos := utf8.RuneCountInString(target[:idx])
		penalty := pos * 2
		if penalty > 100 {
			penalty = 100
		}
		return 300 - penalty
	}

	return 0
}

func looksLikeYear(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
