package catalog

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
)

// Options configures one grouping run. The zero value groups series only,
// with no external resolver and no logging.
type Options struct {
	// Resolver is the optional external dual-name capability. When nil,
	// dual names detected in filenames are canonicalized locally.
	Resolver Resolver

	// GroupMovies enables the movie grouping pass over unclassified files.
	GroupMovies bool

	// Logger receives debug output for merge and dedup decisions. Nil
	// discards.
	Logger *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// GroupBySeries groups a flat file listing into a catalog of series,
// movies and unclassified files. The catalog is rebuilt from scratch on
// every call and owned by the caller afterwards; input records are copied,
// never mutated. Output is a deterministic function of input order.
func GroupBySeries(files []FileRecord, opts Options) *Catalog {
	log := opts.logger()
	cat := newCatalog()

	for i := range files {
		rec := files[i]
		if rec.Name == "" {
			cat.NonSeries = append(cat.NonSeries, &rec)
			continue
		}

		// A year pattern claims the file as a movie before episode
		// parsing is tried, unless an explicit S##E## marker overrides.
		movie := ParseMovie(rec.Name)
		var ep *EpisodeInfo
		if movie == nil || HasEpisodeMarker(rec.Name) {
			ep = ParseEpisode(rec.Name)
		}
		if ep == nil {
			cat.NonSeries = append(cat.NonSeries, &rec)
			continue
		}

		key := ep.SeriesName
		display := ExtractDisplayName(ep.OriginalName)
		if raw, ok := titleFragment(rec.Name); ok {
			if pair := ExtractDualNames(raw); pair != nil {
				if dual := resolveDualNames(opts.Resolver, pair, log); dual != nil {
					key = dual.CanonicalKey
					display = dual.DisplayName
					log.Debug("dual names detected",
						"first", pair.First, "second", pair.Second, "key", key)
				}
			}
		}

		rec.Season = ep.Season
		rec.Episode = ep.Episode
		rec.SeriesName = ep.SeriesName
		rec.Language = ExtractLanguageTag(rec.Name)
		meta := ParseQualityMeta(rec.Name)
		rec.Quality = &meta

		entry, ok := cat.Series[key]
		if !ok {
			entry = &SeriesEntry{
				DisplayName: display,
				Seasons:     make(map[int]map[EpisodeNumber][]*FileRecord),
			}
			cat.addSeries(key, entry)
		}
		entry.nameCandidates = append(entry.nameCandidates, display)

		season, ok := entry.Seasons[ep.Season]
		if !ok {
			season = make(map[EpisodeNumber][]*FileRecord)
			entry.Seasons[ep.Season] = season
		}
		if isDuplicateVersion(season[ep.Episode], &rec) {
			log.Debug("skipping duplicate version", "name", rec.Name, "ident", rec.Ident)
			continue
		}
		season[ep.Episode] = append(season[ep.Episode], &rec)
	}

	finalizeSeries(cat)

	mergeSubstringSeries(cat, log)
	mergeWordOrderSeries(cat, log)
	mergeDualCanonicalSeries(cat, log)

	if opts.GroupMovies {
		groupMovies(cat, opts.Resolver, log)
	}

	return cat
}

// finalizeSeries runs the final dedup and size sort over every episode
// bucket, recomputes episode totals and settles display names.
func finalizeSeries(cat *Catalog) {
	for _, key := range cat.SeriesKeys() {
		entry := cat.Series[key]
		for _, episodes := range entry.Seasons {
			for ep, versions := range episodes {
				deduped := DeduplicateVersions(versions)
				sortVersionsBySize(deduped)
				episodes[ep] = deduped
			}
		}
		entry.TotalEpisodes = countEpisodes(entry)
		if len(entry.nameCandidates) > 0 {
			if best := PickBestDisplayName(entry.nameCandidates); best != "" {
				entry.DisplayName = best
			}
			entry.nameCandidates = nil
		}
	}
}

// groupMovies builds movie entries out of the unclassified pile, then
// removes the claimed files from it.
func groupMovies(cat *Catalog, resolver Resolver, log *slog.Logger) {
	for _, rec := range cat.NonSeries {
		movie := ParseMovie(rec.Name)
		if movie == nil {
			continue
		}

		key := fmt.Sprintf("%s|%d", movie.Title, movie.Year)
		display := movie.RawTitle
		if movie.DualNames != nil {
			if dual := resolveDualNames(resolver, movie.DualNames, log); dual != nil {
				key = fmt.Sprintf("%s|%d", dual.CanonicalKey, movie.Year)
				display = dual.DisplayName
			}
		}

		entry, ok := cat.Movies[key]
		if !ok {
			entry = &MovieEntry{
				DisplayName:  display,
				Year:         movie.Year,
				CanonicalKey: key,
			}
			cat.addMovie(key, entry)
		}
		entry.Versions = append(entry.Versions, rec)
	}

	for _, key := range cat.MovieKeys() {
		entry := cat.Movies[key]
		entry.Versions = DeduplicateVersions(entry.Versions)
		sortVersionsBySize(entry.Versions)
	}

	mergeSubstringMovies(cat, log)

	// Files claimed by a movie entry leave the unclassified pile. Records
	// without an ident cannot be claimed back.
	claimed := make(map[string]struct{})
	for _, key := range cat.MovieKeys() {
		for _, v := range cat.Movies[key].Versions {
			if v.Ident != "" {
				claimed[v.Ident] = struct{}{}
			}
		}
	}
	remaining := cat.NonSeries[:0]
	for _, rec := range cat.NonSeries {
		if _, ok := claimed[rec.Ident]; ok && rec.Ident != "" {
			continue
		}
		remaining = append(remaining, rec)
	}
	cat.NonSeries = remaining
}

// resolveDualNames applies the external resolver when present, treating
// errors as "no resolution" per the collaborator contract; without a
// resolver it degrades to local canonicalization.
func resolveDualNames(resolver Resolver, pair *NamePair, log *slog.Logger) *DualNames {
	if resolver == nil {
		return DualCanonical(pair.First, pair.Second)
	}
	dual, err := resolver.ResolveDualNames(pair.First, pair.Second)
	if err != nil {
		log.Error("dual name resolution failed",
			"first", pair.First, "second", pair.Second, "error", err)
		return nil
	}
	if dual == nil {
		log.Debug("dual name resolution unavailable",
			"first", pair.First, "second", pair.Second)
		return nil
	}
	return dual
}

// DeduplicateVersions removes duplicate files from a version list: two
// records are the same file when their non-"unknown" idents match, or
// when both name and size are present and equal. First-seen wins and the
// surviving order is the first-occurrence order of the input.
func DeduplicateVersions(versions []*FileRecord) []*FileRecord {
	if len(versions) == 0 {
		return versions
	}
	seenIdents := make(map[string]struct{})
	type nameSize struct {
		name string
		size Size
	}
	seenNameSize := make(map[nameSize]struct{})

	result := make([]*FileRecord, 0, len(versions))
	for _, v := range versions {
		duplicate := false
		if v.Ident != "" && v.Ident != unknownIdent {
			if _, ok := seenIdents[v.Ident]; ok {
				duplicate = true
			} else {
				seenIdents[v.Ident] = struct{}{}
			}
		}
		if !duplicate && v.Name != "" && v.Size != "" {
			key := nameSize{v.Name, v.Size}
			if _, ok := seenNameSize[key]; ok {
				duplicate = true
			} else {
				seenNameSize[key] = struct{}{}
			}
		}
		if !duplicate {
			result = append(result, v)
		}
	}
	return result
}

// isDuplicateVersion is the incremental form of the dedup rule, checked
// before a record enters an episode bucket.
func isDuplicateVersion(existing []*FileRecord, rec *FileRecord) bool {
	for _, e := range existing {
		if rec.Ident != "" && e.Ident != "" &&
			rec.Ident != unknownIdent && e.Ident != unknownIdent &&
			rec.Ident == e.Ident {
			return true
		}
		if rec.Name != "" && rec.Size != "" && rec.Name == e.Name && rec.Size == e.Size {
			return true
		}
	}
	return false
}

// sortVersionsBySize orders a version list largest-first; unparseable or
// missing sizes sort as zero. The sort is stable so dedup order breaks
// ties.
func sortVersionsBySize(versions []*FileRecord) {
	sort.SliceStable(versions, func(i, j int) bool {
		return versions[i].Size.Bytes() > versions[j].Size.Bytes()
	})
}

func countEpisodes(entry *SeriesEntry) int {
	n := 0
	for _, episodes := range entry.Seasons {
		for _, versions := range episodes {
			if len(versions) > 0 {
				n++
			}
		}
	}
	return n
}
