package catalog

import (
	"log/slog"
	"strings"
)

// The merge passes fix under-grouping left by per-file canonicalization.
// Each pass plans its merges over a stable snapshot of the key order and
// applies them afterwards, skipping entries a prior merge already
// consumed. All passes are idempotent.

// mergeSubstringSeries merges series where one canonical key is a
// substring of the other and every word of the shorter key occurs in the
// longer one, e.g. "south park" absorbing "mestecko south park".
func mergeSubstringSeries(cat *Catalog, log *slog.Logger) {
	keys := cat.SeriesKeys()
	type plan struct{ shorter, longer string }
	var merges []plan

	for i, key1 := range keys {
		for _, key2 := range keys[i+1:] {
			var shorter, longer string
			switch {
			case strings.Contains(key2, key1):
				shorter, longer = key1, key2
			case strings.Contains(key1, key2):
				shorter, longer = key2, key1
			default:
				continue
			}
			if wordsSubset(shorter, longer) {
				merges = append(merges, plan{shorter, longer})
			}
		}
	}

	for _, m := range merges {
		target, source := cat.Series[m.shorter], cat.Series[m.longer]
		if target == nil || source == nil {
			continue // consumed by an earlier merge in this pass
		}
		log.Debug("substring merge", "source", m.longer, "target", m.shorter)
		mergeSeasonData(target, source)
		target.DisplayName = PickBestDisplayName([]string{target.DisplayName, source.DisplayName})
		cat.removeSeries(m.longer)
	}
}

// mergeWordOrderSeries merges series whose canonical keys contain the same
// words in a different order; the first-seen key wins.
func mergeWordOrderSeries(cat *Catalog, log *slog.Logger) {
	keys := cat.SeriesKeys()
	groups := make(map[string][]string)
	var order []string
	for _, key := range keys {
		sig := WordSetKey(key)
		if _, ok := groups[sig]; !ok {
			order = append(order, sig)
		}
		groups[sig] = append(groups[sig], key)
	}

	for _, sig := range order {
		members := groups[sig]
		if len(members) < 2 {
			continue
		}
		targetKey := members[0]
		for _, sourceKey := range members[1:] {
			target, source := cat.Series[targetKey], cat.Series[sourceKey]
			if target == nil || source == nil {
				continue
			}
			log.Debug("word-order merge", "source", sourceKey, "target", targetKey)
			mergeSeasonData(target, source)
			target.DisplayName = PickBestDisplayName([]string{target.DisplayName, source.DisplayName})
			cat.removeSeries(sourceKey)
		}
	}
}

// mergeDualCanonicalSeries reconciles pipe-joined dual keys with their
// standalone components: "the penguin|tucnak" pulls in "the penguin" and
// "tucnak" entries. The first dual component is preferred as the merge
// target when it exists as its own key; otherwise the dual key stays.
func mergeDualCanonicalSeries(cat *Catalog, log *slog.Logger) {
	keys := cat.SeriesKeys()

	type plan struct {
		target  string
		sources []string
	}
	var plans []plan
	planned := make(map[string]int)

	for _, dualKey := range keys {
		if !strings.Contains(dualKey, "|") {
			continue
		}
		parts := strings.Split(dualKey, "|")

		var matches []string
		for _, key := range keys {
			if key == dualKey {
				continue
			}
			for _, part := range parts {
				if key == part {
					matches = append(matches, key)
					break
				}
			}
		}
		if len(matches) == 0 {
			continue
		}

		target := parts[0]
		if _, ok := cat.Series[target]; !ok {
			target = dualKey
		}

		idx, ok := planned[target]
		if !ok {
			plans = append(plans, plan{target: target})
			idx = len(plans) - 1
			planned[target] = idx
		}
		if target != dualKey {
			plans[idx].sources = append(plans[idx].sources, dualKey)
		}
		for _, match := range matches {
			if match != target {
				plans[idx].sources = append(plans[idx].sources, match)
			}
		}
	}

	for _, p := range plans {
		target := cat.Series[p.target]
		if target == nil {
			log.Debug("dual merge target missing", "target", p.target)
			continue
		}
		for _, sourceKey := range p.sources {
			source := cat.Series[sourceKey]
			if source == nil {
				continue
			}
			log.Debug("dual-canonical merge", "source", sourceKey, "target", p.target)
			mergeSeasonData(target, source)
			target.DisplayName = PickBestDisplayName([]string{target.DisplayName, source.DisplayName})
			cat.removeSeries(sourceKey)
		}
	}
}

// mergeSubstringMovies merges movies whose titles are word-subsets of each
// other, scoped to candidates of the same year.
func mergeSubstringMovies(cat *Catalog, log *slog.Logger) {
	keys := cat.MovieKeys()

	byYear := make(map[int][]string)
	var years []int
	for _, key := range keys {
		year := cat.Movies[key].Year
		if _, ok := byYear[year]; !ok {
			years = append(years, year)
		}
		byYear[year] = append(byYear[year], key)
	}

	type plan struct{ target, source string }
	var merges []plan
	doomed := make(map[string]struct{})

	for _, year := range years {
		group := byYear[year]
		if len(group) < 2 {
			continue
		}

		// Title portion of the key, dual components included, year cut off.
		titles := make(map[string]string, len(group))
		for _, key := range group {
			title := key
			if i := strings.LastIndex(key, "|"); i >= 0 {
				title = key[:i]
			}
			titles[key] = title
		}

		for i, key1 := range group {
			if _, dead := doomed[key1]; dead {
				continue
			}
			for _, key2 := range group[i+1:] {
				if _, dead := doomed[key2]; dead {
					continue
				}
				switch {
				case wordsSubset(titles[key1], titles[key2]):
					merges = append(merges, plan{target: key1, source: key2})
					doomed[key2] = struct{}{}
				case wordsSubset(titles[key2], titles[key1]):
					merges = append(merges, plan{target: key2, source: key1})
					doomed[key1] = struct{}{}
				}
				if _, dead := doomed[key1]; dead {
					break
				}
			}
		}
	}

	for _, m := range merges {
		target, source := cat.Movies[m.target], cat.Movies[m.source]
		if target == nil || source == nil {
			continue
		}
		log.Debug("movie merge", "source", m.source, "target", m.target)
		target.Versions = DeduplicateVersions(append(target.Versions, source.Versions...))
		sortVersionsBySize(target.Versions)
		if len(source.DisplayName) < len(target.DisplayName) &&
			!strings.ContainsAny(source.DisplayName, "|/") {
			target.DisplayName = source.DisplayName
		}
	}
	for key := range doomed {
		cat.removeMovie(key)
	}
}

// mergeSeasonData folds the source entry's seasons into the target,
// deduplicating and re-sorting shared episode buckets, then recomputes
// the target's episode total.
func mergeSeasonData(target, source *SeriesEntry) {
	for seasonNum, sourceEpisodes := range source.Seasons {
		targetEpisodes, ok := target.Seasons[seasonNum]
		if !ok {
			target.Seasons[seasonNum] = sourceEpisodes
			continue
		}
		for epNum, versions := range sourceEpisodes {
			existing, ok := targetEpisodes[epNum]
			if !ok {
				targetEpisodes[epNum] = versions
				continue
			}
			merged := DeduplicateVersions(append(existing, versions...))
			sortVersionsBySize(merged)
			targetEpisodes[epNum] = merged
		}
	}
	target.TotalEpisodes = countEpisodes(target)
}

// wordsSubset reports whether every word of a occurs in b's word set.
func wordsSubset(a, b string) bool {
	bWords := make(map[string]struct{})
	for _, w := range strings.Fields(b) {
		bWords[w] = struct{}{}
	}
	for _, w := range strings.Fields(a) {
		if _, ok := bWords[w]; !ok {
			return false
		}
	}
	return true
}
