package catalog

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// Strip passes applied to display-name candidates, in order. These are
// more aggressive than CleanName: the goal is a human-readable label, so
// case and diacritics survive but every piece of filename cruft goes.
var displayStripRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\.(mkv|mp4|avi|rar|zip|7z|ts|iso|m4v|flac|mp3)$`),
	regexp.MustCompile(`(?i)\b(480p|720p|1080p|2160p|4K|UHD|FHD|HD)\b`),
	regexp.MustCompile(`(?i)\b(BluRay|Blu-ray|WEB-DL|WEBDL|WEBRip|HDTV|BRRip|DVDRip|REMUX|Theatrical)\b`),
	regexp.MustCompile(`(?i)\b(x264|x265|H\.?264|H\.?265|HEVC|XviD|AAC|AC3|DTS|DD5\.1|Atmos|TrueHD)\b`),
	regexp.MustCompile(`(?i)\b(CZ|EN|SK|MULTi)\s+(DABING|TITULKY|sub|dub)\b`),
	regexp.MustCompile(`(?i)\s+(CZ|EN|SK)\b`),
	regexp.MustCompile(`\s*[(\[][^)\]]{0,40}[)\]]$`),
	regexp.MustCompile(`(?i)[-\s]+\d{1,3}(\.\d+)?(\s+(serie|série|season|sezona|disk))?\s*(dab|BEZ HESLA)?$`),
	regexp.MustCompile(`\s*[Ss]\d{1,2}[Ee]\d{1,3}.*$`),
	regexp.MustCompile(`\s*\d{1,2}x\d{1,3}.*$`),
	regexp.MustCompile(`[\s\-_.]+$`),
}

func cleanDisplayName(name string) string {
	cleaned := name
	for _, re := range displayStripRes {
		cleaned = re.ReplaceAllString(cleaned, "")
	}
	return strings.TrimSpace(collapseSpaces(cleaned))
}

// PickBestDisplayName chooses the best human-readable label from the
// display-name variants observed across a series' episodes: candidates
// are cleaned of filename cruft, then the cleaned form seen most often
// wins, with shorter length and alphabetical order as tie-breakers.
func PickBestDisplayName(candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}

	counts := make(map[string]int)
	var order []string
	for _, name := range candidates {
		cleaned := cleanDisplayName(name)
		if utf8.RuneCountInString(cleaned) < 2 {
			continue
		}
		if _, ok := counts[cleaned]; !ok {
			order = append(order, cleaned)
		}
		counts[cleaned]++
	}
	if len(order) == 0 {
		return candidates[0]
	}

	sort.Slice(order, func(i, j int) bool {
		a, b := order[i], order[j]
		if counts[a] != counts[b] {
			return counts[a] > counts[b]
		}
		if la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b); la != lb {
			return la < lb
		}
		return a < b
	})
	return order[0]
}
