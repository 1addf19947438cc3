package catalog

import (
	"regexp"
	"strconv"
	"strings"
)

// Filename classification tries these patterns in order; the first match
// wins. Guards on the later, more ambiguous patterns reject quality
// markers, audio channel layouts and other numeric noise masquerading as
// episode numbers.
var (
	releaseGroupRe = regexp.MustCompile(`^[(\[]([^)\]]+)[)\]]\s*`)

	patternSeasonEpisode         = regexp.MustCompile(`^(.+?)[\s_.\-]+[(\[]?[Ss](\d{1,2})[Ee](\d{1,3})[)\]]?`)
	patternSeasonEpisodeReversed = regexp.MustCompile(`^[Ss](\d{1,2})[Ee](\d{1,3})[\s_.\-]+(.+)$`)
	patternSeasonXEpisode        = regexp.MustCompile(`^(.+?)[\s_.\-]+[(\[]?(\d{1,2})x(\d{1,3})[)\]]?`)

	// Absolute episode numbers: "Series - 05", "Series ep9". The trailing
	// group stands in for a not-followed-by-digit lookahead, which RE2
	// does not support; four-digit runs therefore never match.
	patternAbsoluteEpisode = regexp.MustCompile(`(?i)^(.+?)[\s.\-]+(ep?\.?\s*)?(\d{1,3}(?:\.\d)?)([^0-9]|$)`)

	// Season spelled out in text: "Season 3", "2nd Season", "S 2".
	patternSeasonWord    = regexp.MustCompile(`(?i)Season\s*(\d{1,2})`)
	patternOrdinalSeason = regexp.MustCompile(`(?i)(\d{1,2})(?:st|nd|rd|th)\s*Season`)
	patternBareSeason    = regexp.MustCompile(`(?i)(^|\s)S(?:eason)?\s+(\d{1,2})`)

	patternMovieYear = regexp.MustCompile(`^(.+?)[\s_.\-]*[(\[]?((?:19|20)\d{2})[)\]]?`)

	reversedExtensionRe = regexp.MustCompile(`(?i)\.(mkv|avi|mp4|m4v|wmv|flv|webm|mov)$`)
	reversedQualityRe   = regexp.MustCompile(`(?i)[\s_.\-]*(1080p|720p|2160p|4K|BluRay|WEB-DL|HDTV|WEBRip|BRRip|x264|x265|HEVC).*$`)
	reversedDashTailRe  = regexp.MustCompile(`[\s_]*-[\s_].*$`)

	seasonTextGapRe = regexp.MustCompile(`[\s\-]+`)
	firstSpaceRunRe = regexp.MustCompile(`\s+`)
)

// ParseEpisode classifies a filename as a series episode. It returns nil
// when no episode pattern matches or a guard rejects the match.
func ParseEpisode(filename string) *EpisodeInfo {
	// A leading "[SubsPlease] " or "(Lena) " tag is release-group noise.
	filename = releaseGroupRe.ReplaceAllString(filename, "")

	if m := patternSeasonEpisode.FindStringSubmatch(filename); m != nil {
		return &EpisodeInfo{
			SeriesName:   CleanName(m[1]),
			Season:       mustAtoi(m[2]),
			Episode:      Ep(mustAtoi(m[3])),
			OriginalName: filename,
		}
	}

	if m := patternSeasonEpisodeReversed.FindStringSubmatch(filename); m != nil {
		raw := reversedExtensionRe.ReplaceAllString(m[3], "")
		raw = reversedQualityRe.ReplaceAllString(raw, "")
		raw = reversedDashTailRe.ReplaceAllString(raw, "")
		raw = strings.Trim(raw, " .-_")
		name := CleanName(raw)
		if len(name) >= 2 {
			return &EpisodeInfo{
				SeriesName:   name,
				Season:       mustAtoi(m[1]),
				Episode:      Ep(mustAtoi(m[2])),
				OriginalName: filename,
			}
		}
	}

	if m := patternSeasonXEpisode.FindStringSubmatch(filename); m != nil {
		return &EpisodeInfo{
			SeriesName:   CleanName(m[1]),
			Season:       mustAtoi(m[2]),
			Episode:      Ep(mustAtoi(m[3])),
			OriginalName: filename,
		}
	}

	return parseAbsoluteEpisode(filename)
}

func parseAbsoluteEpisode(filename string) *EpisodeInfo {
	seasonFromText, cleaned := extractSeasonFromText(filename)

	idx := patternAbsoluteEpisode.FindStringSubmatchIndex(cleaned)
	if idx == nil {
		return nil
	}
	rawName := cleaned[idx[2]:idx[3]]
	episodeStr := cleaned[idx[6]:idx[7]]
	numberEnd := idx[7]

	// "720p"-style quality markers: the digits end right before a p.
	if numberEnd < len(cleaned) && (cleaned[numberEnd] == 'p' || cleaned[numberEnd] == 'P') {
		return nil
	}

	// Audio channel layouts ("5.1", "AC3.7.1") look like tiny episode
	// numbers. The digit pairs are empirical, kept as observed. A decimal
	// candidate is re-split so "5.1" checks as name-ending-5 plus "1".
	if rawName != "" {
		last := rawName[len(rawName)-1]
		if isAudioChannelPair(last, episodeStr) {
			return nil
		}
	}
	if intPart, sub, found := strings.Cut(episodeStr, "."); found && intPart != "" {
		if isAudioChannelPair(intPart[len(intPart)-1], sub) {
			return nil
		}
	}

	episode, err := parseEpisodeNumber(episodeStr)
	if err != nil || episode.Num < 1 || episode.Num > 999 {
		return nil
	}

	season := 1
	if seasonFromText > 0 {
		season = seasonFromText
	}

	name := CleanName(rawName)
	if len(name) < 2 {
		return nil
	}

	// Without an explicit ep/episode marker, demand a name long enough to
	// rule out movie titles like "Blade 01" reading as episode 1.
	if !strings.Contains(strings.ToLower(cleaned), "ep") {
		words := strings.Fields(name)
		if len(words) == 1 && len(name) < 6 {
			return nil
		}
	}

	return &EpisodeInfo{
		SeriesName:   name,
		Season:       season,
		Episode:      episode,
		OriginalName: filename,
	}
}

// extractSeasonFromText finds a season spelled out in words, removes it
// from the filename and returns the number plus the cleaned remainder.
// Returns 0 and the filename untouched when no marker is present.
func extractSeasonFromText(filename string) (int, string) {
	season, start, end := findSeasonText(filename)
	if season == 0 {
		return 0, filename
	}

	cleaned := filename[:start] + filename[end:]
	cleaned = strings.TrimSpace(seasonTextGapRe.ReplaceAllString(cleaned, " "))
	// The original separator was a spaced dash; put the first one back so
	// the absolute-episode pattern still sees "Name - 01".
	if strings.Contains(filename, " - ") {
		if loc := firstSpaceRunRe.FindStringIndex(cleaned); loc != nil {
			cleaned = cleaned[:loc[0]] + " - " + cleaned[loc[1]:]
		}
	}
	return season, cleaned
}

// findSeasonText returns the leftmost season-text marker; the three forms
// compete on position, not pattern order.
func findSeasonText(filename string) (season, start, end int) {
	start = -1
	consider := func(value, s, e int) {
		if value > 0 && (start == -1 || s < start) {
			season, start, end = value, s, e
		}
	}
	if m := patternSeasonWord.FindStringSubmatchIndex(filename); m != nil {
		consider(mustAtoi(filename[m[2]:m[3]]), m[0], m[1])
	}
	if m := patternOrdinalSeason.FindStringSubmatchIndex(filename); m != nil {
		consider(mustAtoi(filename[m[2]:m[3]]), m[0], m[1])
	}
	// Bare "S 2" only counts when not the S of an "S 1 E 2" style marker.
	for _, m := range patternBareSeason.FindAllStringSubmatchIndex(filename, -1) {
		rest := strings.TrimLeft(filename[m[1]:], " ")
		if rest != "" && (rest[0] == 'E' || rest[0] == 'e') {
			continue
		}
		consider(mustAtoi(filename[m[4]:m[5]]), m[0], m[1])
		break
	}
	if start == -1 {
		return 0, 0, 0
	}
	return season, start, end
}

// ParseMovie classifies a filename as a movie by its release year. The
// raw title fragment is preserved for the dual-name detector.
func ParseMovie(filename string) *MovieInfo {
	m := patternMovieYear.FindStringSubmatch(filename)
	if m == nil {
		return nil
	}
	rawTitle := m[1]
	return &MovieInfo{
		Title:     CleanName(rawTitle),
		Year:      mustAtoi(m[2]),
		RawTitle:  rawTitle,
		DualNames: ExtractDualNames(rawTitle),
	}
}

// HasEpisodeMarker reports whether the filename carries an explicit
// S##E## marker. A year next to such a marker does not make the file a
// movie.
func HasEpisodeMarker(filename string) bool {
	return episodeMarkerRe.MatchString(filename)
}

// titleFragment returns the raw series-name fragment preceding an episode
// marker, for dual-name detection on the unnormalized text.
func titleFragment(filename string) (string, bool) {
	if m := patternSeasonEpisode.FindStringSubmatch(filename); m != nil {
		return m[1], true
	}
	if m := patternSeasonXEpisode.FindStringSubmatch(filename); m != nil {
		return m[1], true
	}
	return "", false
}

func isAudioChannelPair(last byte, candidate string) bool {
	if (last == '2' || last == '3' || last == '5' || last == '7') &&
		(candidate == "0" || candidate == "1") {
		return true
	}
	return last == '3' && (candidate == "1" || candidate == "7")
}

func mustAtoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
