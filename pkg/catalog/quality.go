package catalog

import (
	"regexp"
	"strings"
)

// QualityMeta is quality metadata extracted from one filename. The score
// ranks duplicate versions of the same episode or movie; it never takes
// part in identity or dedup decisions.
type QualityMeta struct {
	Quality string `json:"quality,omitempty"`
	Source  string `json:"source,omitempty"`
	Codec   string `json:"codec,omitempty"`
	Audio   string `json:"audio,omitempty"`
	Score   int    `json:"quality_score"`
}

const qualityBaseScore = 50

var (
	resolutionRe = regexp.MustCompile(`(?i)\b(2160p|4K|1080p|720p|480p)\b`)
	sourceRe     = regexp.MustCompile(`(?i)\b(BluRay|Blu-Ray|WEB-DL|WEBDL|HDTV|WEBRip|BRRip|DVDRip)\b`)
	codecRe      = regexp.MustCompile(`(?i)\b(x265|x264|H\.?265|H\.?264|HEVC|XviD)\b`)
	audioRe      = regexp.MustCompile(`(?i)\b(DTS-HD|DTS|DD5\.1|DD5|AC3|AAC)\b`)
)

// ParseQualityMeta extracts resolution, source, codec and audio tokens
// from a filename and computes the ranking score: the resolution tier
// replaces the base score, the remaining categories add bonuses on top.
// First occurrence wins per category.
func ParseQualityMeta(filename string) QualityMeta {
	meta := QualityMeta{Score: qualityBaseScore}

	if m := resolutionRe.FindStringSubmatch(filename); m != nil {
		quality := strings.ToLower(m[1])
		meta.Quality = quality
		switch quality {
		case "2160p", "4k":
			meta.Score = 100
		case "1080p":
			meta.Score = 80
		case "720p":
			meta.Score = 60
		case "480p":
			meta.Score = 40
		}
	}

	if m := sourceRe.FindStringSubmatch(filename); m != nil {
		switch strings.ToUpper(m[1]) {
		case "BLURAY", "BLU-RAY":
			meta.Source = "BluRay"
		case "WEB-DL", "WEBDL":
			meta.Source = "WEB-DL"
		case "WEBRIP":
			meta.Source = "WEBRip"
		case "BRRIP":
			meta.Source = "BRRip"
		case "DVDRIP":
			meta.Source = "DVDRip"
		case "HDTV":
			meta.Source = "HDTV"
		}
		switch meta.Source {
		case "BluRay":
			meta.Score += 15
		case "WEB-DL":
			meta.Score += 10
		case "HDTV":
			meta.Score += 5
		case "WEBRip":
			meta.Score += 3
		}
	}

	if m := codecRe.FindStringSubmatch(filename); m != nil {
		switch strings.ToUpper(strings.ReplaceAll(m[1], ".", "")) {
		case "X265", "H265", "HEVC":
			meta.Codec = "x265"
			meta.Score += 5
		case "X264", "H264":
			meta.Codec = "x264"
		case "XVID":
			meta.Codec = "XviD"
		}
	}

	if m := audioRe.FindStringSubmatch(filename); m != nil {
		audio := strings.ToUpper(m[1])
		if audio == "DD5" || audio == "DD5.1" {
			audio = "DD5.1"
		}
		meta.Audio = audio
		switch {
		case strings.Contains(audio, "DTS"):
			meta.Score += 5
		case audio == "DD5.1":
			meta.Score += 3
		case audio == "AC3":
			meta.Score += 2
		case audio == "AAC":
			meta.Score += 1
		}
	}

	return meta
}
