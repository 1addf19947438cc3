package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/sharecat/pkg/catalog"
)

// ParseResult holds everything extracted from a single filename.
type ParseResult struct {
	Input    string                `json:"input"`
	Kind     string                `json:"kind"` // episode, movie, or unknown
	Series   string                `json:"series,omitempty"`
	Season   int                   `json:"season,omitempty"`
	Episode  catalog.EpisodeNumber `json:"episode,omitzero"`
	Title    string                `json:"title,omitempty"`
	Year     int                   `json:"year,omitempty"`
	DualName *catalog.NamePair     `json:"dual_name,omitempty"`
	Language string                `json:"language,omitempty"`
	Quality  catalog.QualityMeta   `json:"quality"`
}

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <filename>",
	Short: "Parse a filename into series/episode or movie metadata",
	Long: `Parse a media filename to extract series, season, episode,
movie title and year, dual-language names, and quality metadata.

Examples:
  sharecat parse "Breaking.Bad.S01E05.720p.BluRay.x264.mkv"
  sharecat parse --file listing.txt --json`,
	RunE: runParseCmd,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringP("file", "f", "", "Read filenames from file (one per line)")
}

func runParseCmd(cmd *cobra.Command, args []string) error {
	inputFile, _ := cmd.Flags().GetString("file")

	var names []string
	if inputFile != "" {
		read, err := readNameFile(inputFile)
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}
		names = read
	} else if len(args) > 0 {
		names = []string{args[0]}
	} else {
		return fmt.Errorf("usage: sharecat parse <filename> or sharecat parse --file <listing>")
	}

	results := make([]ParseResult, 0, len(names))
	for _, name := range names {
		results = append(results, parseOne(name))
	}

	if jsonOutput {
		printJSON(results)
		return nil
	}
	for i, r := range results {
		if i > 0 {
			fmt.Println()
		}
		printParseHuman(r)
	}
	return nil
}

func parseOne(name string) ParseResult {
	result := ParseResult{
		Input:    name,
		Kind:     "unknown",
		Language: catalog.ExtractLanguageTag(name),
		Quality:  catalog.ParseQualityMeta(name),
	}

	movie := catalog.ParseMovie(name)
	if ep := catalog.ParseEpisode(name); ep != nil && (movie == nil || catalog.HasEpisodeMarker(name)) {
		result.Kind = "episode"
		result.Series = ep.SeriesName
		result.Season = ep.Season
		result.Episode = ep.Episode
		result.DualName = catalog.ExtractDualNames(name)
		return result
	}
	if movie != nil {
		result.Kind = "movie"
		result.Title = movie.Title
		result.Year = movie.Year
		result.DualName = movie.DualNames
	}
	return result
}

func printParseHuman(r ParseResult) {
	fmt.Printf("Input:    %s\n", r.Input)
	switch r.Kind {
	case "episode":
		fmt.Printf("Series:   %s\n", r.Series)
		fmt.Printf("Season:   %d\n", r.Season)
		fmt.Printf("Episode:  %s\n", r.Episode)
	case "movie":
		fmt.Printf("Movie:    %s (%d)\n", r.Title, r.Year)
	default:
		fmt.Println("No episode or movie pattern matched")
	}
	if r.DualName != nil {
		fmt.Printf("Names:    %s / %s\n", r.DualName.First, r.DualName.Second)
	}
	if r.Language != "" {
		fmt.Printf("Language: %s\n", r.Language)
	}
	if r.Quality.Quality != "" || r.Quality.Source != "" {
		fmt.Printf("Quality:  %s %s %s %s (score %d)\n",
			r.Quality.Quality, r.Quality.Source, r.Quality.Codec, r.Quality.Audio, r.Quality.Score)
	}
}

// readNameFile reads filenames from a file, one per line.
func readNameFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" && !strings.HasPrefix(line, "#") {
			names = append(names, line)
		}
	}
	return names, scanner.Err()
}
