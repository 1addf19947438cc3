package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/sharecat/internal/config"
	"github.com/vmunix/sharecat/pkg/catalog"
	"github.com/vmunix/sharecat/pkg/lang"
)

// SearchHit is one ranked entry from a catalog search.
type SearchHit struct {
	DisplayName string `json:"display_name"`
	Kind        string `json:"kind"` // series or movie
	Key         string `json:"key"`
	Relevance   int    `json:"relevance"`
	Versions    int    `json:"versions"`
}

var searchCmd = &cobra.Command{
	Use:   "search [flags] --in <listing.json> <query>...",
	Short: "Search a grouped catalog by title relevance",
	Long: `Group listing files and rank series and movies against a query.
Without a query the whole catalog is listed alphabetically.

Examples:
  sharecat search --in listing.json "south park"
  sharecat search --in a.json --in b.json --lang cs blade
  sharecat search --in listing.json`,
	Args: cobra.ArbitraryArgs,
	RunE: runSearchCmd,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().StringArray("in", nil, "Listing file to search (repeatable)")
	searchCmd.Flags().String("lang", "", "Only show entries with a version in this language")
	searchCmd.Flags().IntP("limit", "n", 20, "Maximum number of results")
	_ = searchCmd.MarkFlagRequired("in")
}

func runSearchCmd(cmd *cobra.Command, args []string) error {
	listings, _ := cmd.Flags().GetStringArray("in")
	langFilter, _ := cmd.Flags().GetString("lang")
	limit, _ := cmd.Flags().GetInt("limit")
	query := strings.Join(args, " ")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.Grouping.Movies = true

	files, err := loadListings(listings)
	if err != nil {
		return err
	}
	cat, closeFn, err := buildCatalog(files, cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	langCode := effectiveLangCode(langFilter, cfg)
	hits := searchCatalog(cat, query, langCode)
	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}

	if jsonOutput {
		printJSON(hits)
		return nil
	}
	if len(hits) == 0 {
		fmt.Println("No matches")
		return nil
	}
	for _, hit := range hits {
		fmt.Printf("%5d  %-7s %s (%d version(s))\n", hit.Relevance, hit.Kind, hit.DisplayName, hit.Versions)
	}
	return nil
}

// effectiveLangCode resolves the language filter: an explicit --lang value
// wins, otherwise the configured audio preference applies. "Disabled" and
// unknown values fall back to no filter.
func effectiveLangCode(flagValue string, cfg *config.Config) string {
	if flagValue != "" {
		return lang.SettingToCode(flagValue)
	}
	return lang.SettingToCode(cfg.Languages.Audio)
}

// searchCatalog scores every series and movie against the query and
// returns hits with positive relevance, best first. Ties keep key order
// for stable output. An empty query lists the whole catalog in
// alphabetical order instead.
func searchCatalog(cat *catalog.Catalog, query, langCode string) []SearchHit {
	var hits []SearchHit
	browse := strings.TrimSpace(query) == ""

	for _, key := range cat.SeriesKeys() {
		entry := cat.Series[key]
		score := catalog.SearchRelevance(entry.DisplayName, query, key)
		if !browse && score <= 0 {
			continue
		}
		if browse {
			score = 0
		}
		versions := seriesVersions(entry, langCode)
		if versions == 0 {
			continue
		}
		hits = append(hits, SearchHit{
			DisplayName: entry.DisplayName,
			Kind:        "series",
			Key:         key,
			Relevance:   score,
			Versions:    versions,
		})
	}

	for _, key := range cat.MovieKeys() {
		entry := cat.Movies[key]
		score := catalog.SearchRelevance(entry.DisplayName, query, entry.CanonicalKey)
		if !browse && score <= 0 {
			continue
		}
		if browse {
			score = 0
		}
		versions := countMatching(entry.Versions, langCode)
		if versions == 0 {
			continue
		}
		hits = append(hits, SearchHit{
			DisplayName: entry.DisplayName,
			Kind:        "movie",
			Key:         key,
			Relevance:   score,
			Versions:    versions,
		})
	}

	if browse {
		sort.SliceStable(hits, func(i, j int) bool {
			return strings.ToLower(hits[i].DisplayName) < strings.ToLower(hits[j].DisplayName)
		})
		return hits
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Relevance > hits[j].Relevance })
	return hits
}

func seriesVersions(entry *catalog.SeriesEntry, langCode string) int {
	total := 0
	for _, season := range entry.Seasons {
		for _, versions := range season {
			total += countMatching(versions, langCode)
		}
	}
	return total
}

// countMatching counts versions whose language tag normalizes to
// langCode. An empty filter matches everything; untagged versions only
// match an empty filter.
func countMatching(versions []*catalog.FileRecord, langCode string) int {
	if langCode == "" {
		return len(versions)
	}
	n := 0
	for _, rec := range versions {
		if lang.Normalize(rec.Language) == langCode {
			n++
		}
	}
	return n
}
