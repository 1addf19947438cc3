package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vmunix/sharecat/internal/config"
	"github.com/vmunix/sharecat/internal/resolver"
	"github.com/vmunix/sharecat/pkg/catalog"
	"github.com/vmunix/sharecat/pkg/lang"
)

var groupCmd = &cobra.Command{
	Use:   "group [flags] <listing.json>...",
	Short: "Group listing files into a series and movie catalog",
	Long: `Group one or more listing files into a catalog.

Each listing file is a JSON array of file entries:
  [{"name": "Show.S01E02.720p.mkv", "ident": "abc123", "size": 1473873920}, ...]

Examples:
  sharecat group listing.json
  sharecat group --movies --json a.json b.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGroupCmd,
}

func init() {
	rootCmd.AddCommand(groupCmd)
	groupCmd.Flags().Bool("movies", false, "Also group movie files by title and year")
}

func runGroupCmd(cmd *cobra.Command, args []string) error {
	moviesFlag, _ := cmd.Flags().GetBool("movies")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if moviesFlag {
		cfg.Grouping.Movies = true
	}

	files, err := loadListings(args)
	if err != nil {
		return err
	}

	cat, closeFn, err := buildCatalog(files, cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	if jsonOutput {
		printJSON(cat)
		return nil
	}
	printCatalogHuman(cat, lang.SettingToCode(cfg.Languages.Audio), lang.SettingToCode(cfg.Languages.Subtitles))
	return nil
}

// loadListings reads all listing files concurrently and concatenates
// their entries in argument order.
func loadListings(paths []string) ([]catalog.FileRecord, error) {
	var g errgroup.Group
	perFile := make([][]catalog.FileRecord, len(paths))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}
			var records []catalog.FileRecord
			if err := json.Unmarshal(data, &records); err != nil {
				return fmt.Errorf("parsing %s: %w", path, err)
			}
			perFile[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []catalog.FileRecord
	for _, records := range perFile {
		all = append(all, records...)
	}
	return all, nil
}

// buildCatalog wires the resolver from config and runs the grouping.
// The returned func closes the resolver cache, if one was opened.
func buildCatalog(files []catalog.FileRecord, cfg *config.Config) (*catalog.Catalog, func(), error) {
	log := newLogger(cfg.Grouping.LogLevel)
	opts := catalog.Options{
		GroupMovies: cfg.Grouping.Movies,
		Logger:      log,
	}
	closeFn := func() {}

	if cfg.Resolver.Enabled {
		resolverOpts := []resolver.Option{resolver.WithLogger(log)}

		if cfg.Resolver.Titles != "" {
			titles, err := readNameFile(cfg.Resolver.Titles)
			if err != nil {
				return nil, nil, fmt.Errorf("loading titles: %w", err)
			}
			resolverOpts = append(resolverOpts, resolver.WithTitles(titles))
		}

		if cfg.Resolver.CachePath != "" {
			cache, err := resolver.OpenCache(cfg.Resolver.CachePath)
			if err != nil {
				return nil, nil, fmt.Errorf("opening resolver cache: %w", err)
			}
			resolverOpts = append(resolverOpts, resolver.WithCache(cache, cfg.Resolver.CacheTTL))
			closeFn = func() { _ = cache.Close() }
		}

		opts.Resolver = resolver.New(resolverOpts...)
	}

	return catalog.GroupBySeries(files, opts), closeFn, nil
}

// printCatalogHuman renders the catalog tree. primary and fallback are
// ISO 639-1 preference codes; when the best version is not in the
// preferred language but another one is, that version is shown too.
func printCatalogHuman(cat *catalog.Catalog, primary, fallback string) {
	seriesKeys := cat.SeriesKeys()
	sort.Strings(seriesKeys)
	for _, key := range seriesKeys {
		entry := cat.Series[key]
		fmt.Printf("%s (%d episodes)\n", entry.DisplayName, entry.TotalEpisodes)

		seasons := make([]int, 0, len(entry.Seasons))
		for s := range entry.Seasons {
			seasons = append(seasons, s)
		}
		sort.Ints(seasons)
		for _, s := range seasons {
			episodes := make([]catalog.EpisodeNumber, 0, len(entry.Seasons[s]))
			for ep := range entry.Seasons[s] {
				episodes = append(episodes, ep)
			}
			sort.Slice(episodes, func(i, j int) bool { return episodes[i].Less(episodes[j]) })
			for _, ep := range episodes {
				versions := entry.Seasons[s][ep]
				fmt.Printf("  S%02dE%-4s %d version(s)", s, ep, len(versions))
				if len(versions) > 0 {
					fmt.Printf("  best: %s", versionLabel(versions[0]))
				}
				if idx := preferredIndex(versions, primary, fallback); idx > 0 {
					fmt.Printf("  preferred: %s", versionLabel(versions[idx]))
				}
				fmt.Println()
			}
		}
	}

	if len(cat.Movies) > 0 {
		fmt.Println()
		movieKeys := cat.MovieKeys()
		sort.Strings(movieKeys)
		for _, key := range movieKeys {
			entry := cat.Movies[key]
			fmt.Printf("%s (%d), %d version(s)", entry.DisplayName, entry.Year, len(entry.Versions))
			if len(entry.Versions) > 0 {
				fmt.Printf("  best: %s", versionLabel(entry.Versions[0]))
			}
			if idx := preferredIndex(entry.Versions, primary, fallback); idx > 0 {
				fmt.Printf("  preferred: %s", versionLabel(entry.Versions[idx]))
			}
			fmt.Println()
		}
	}

	if len(cat.NonSeries) > 0 {
		fmt.Printf("\n%d file(s) not grouped\n", len(cat.NonSeries))
	}
}

// preferredIndex finds the best-ranked version whose language tag matches
// the primary preference, falling back to the fallback preference. -1 when
// no preference is set or nothing matches.
func preferredIndex(versions []*catalog.FileRecord, primary, fallback string) int {
	labels := make([]string, len(versions))
	for i, rec := range versions {
		labels[i] = rec.Language
	}
	return lang.MatchStream(labels, primary, fallback)
}

func versionLabel(rec *catalog.FileRecord) string {
	label := rec.Name
	if bytes := rec.Size.Bytes(); bytes > 0 {
		label += " (" + humanize.Bytes(uint64(bytes)) + ")"
	}
	return label
}
