// Package resolver implements the dual-name resolution capability the
// grouping engine accepts: canonical identities for dual-language title
// pairs, optionally snapped onto a known-title index and cached in SQLite.
package resolver

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"time"

	"github.com/hbollon/go-edlib"

	"github.com/vmunix/sharecat/pkg/catalog"
)

// MatchConfidence grades a fuzzy title match.
type MatchConfidence int

const (
	ConfidenceNone   MatchConfidence = iota // score < 0.70
	ConfidenceLow                           // score >= 0.70
	ConfidenceMedium                        // score >= 0.85
	ConfidenceHigh                          // score >= 0.95
)

func (c MatchConfidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "high"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceLow:
		return "low"
	default:
		return "none"
	}
}

// MatchResult is the outcome of matching one name against the title index.
type MatchResult struct {
	Title      string
	Score      float64
	Confidence MatchConfidence
}

const defaultCacheTTL = 24 * time.Hour

// Resolver resolves dual-name pairs. Zero dependencies are required: with
// no title index it degrades to pure canonicalization, and with no cache
// every call recomputes.
type Resolver struct {
	titles []string
	cache  *Cache
	ttl    time.Duration
	log    *slog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithTitles installs a known-title index; resolved display names snap
// onto high-confidence index matches.
func WithTitles(titles []string) Option {
	return func(r *Resolver) { r.titles = titles }
}

// WithCache stores resolved pairs in the given cache.
func WithCache(cache *Cache, ttl time.Duration) Option {
	return func(r *Resolver) {
		r.cache = cache
		if ttl > 0 {
			r.ttl = ttl
		}
	}
}

// WithLogger directs debug output.
func WithLogger(log *slog.Logger) Option {
	return func(r *Resolver) { r.log = log }
}

func New(opts ...Option) *Resolver {
	r := &Resolver{
		ttl: defaultCacheTTL,
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ResolveDualNames implements catalog.Resolver. A nil result means the
// pair collapses to a single name and no dual identity applies.
func (r *Resolver) ResolveDualNames(name1, name2 string) (*catalog.DualNames, error) {
	cacheKey := catalog.CleanName(name1) + "|" + catalog.CleanName(name2)
	if cached, ok := r.cacheGet(cacheKey); ok {
		return cached, nil
	}

	dual := catalog.DualCanonical(name1, name2)
	if dual == nil {
		return nil, nil
	}

	// A high-confidence index hit replaces the raw filename spelling
	// with the index's canonical spelling.
	if m := r.MatchTitle(dual.DisplayName); m.Confidence >= ConfidenceHigh {
		r.log.Debug("display name snapped to title index",
			"from", dual.DisplayName, "to", m.Title, "score", m.Score)
		dual.DisplayName = m.Title
	}

	r.cachePut(cacheKey, dual)
	return dual, nil
}

// MatchTitle finds the best index entry for a name using Jaro-Winkler
// similarity, which favors shared prefixes and suits media titles.
func (r *Resolver) MatchTitle(name string) MatchResult {
	if len(r.titles) == 0 {
		return MatchResult{Confidence: ConfidenceNone}
	}

	normalized := catalog.CleanName(name)
	best := MatchResult{}
	for _, candidate := range r.titles {
		score := float64(edlib.JaroWinklerSimilarity(normalized, catalog.CleanName(candidate)))
		if score > best.Score {
			best.Title = candidate
			best.Score = score
		}
	}

	switch {
	case best.Score >= 0.95:
		best.Confidence = ConfidenceHigh
	case best.Score >= 0.85:
		best.Confidence = ConfidenceMedium
	case best.Score >= 0.70:
		best.Confidence = ConfidenceLow
	default:
		best.Confidence = ConfidenceNone
		best.Title = ""
	}
	return best
}

func (r *Resolver) cacheGet(key string) (*catalog.DualNames, bool) {
	if r.cache == nil {
		return nil, false
	}
	data, ok := r.cache.Get(context.Background(), key)
	if !ok {
		return nil, false
	}
	var dual catalog.DualNames
	if err := json.Unmarshal(data, &dual); err != nil {
		r.log.Debug("discarding unreadable cache entry", "key", key, "error", err)
		return nil, false
	}
	return &dual, true
}

func (r *Resolver) cachePut(key string, dual *catalog.DualNames) {
	if r.cache == nil {
		return
	}
	data, err := json.Marshal(dual)
	if err != nil {
		return
	}
	if err := r.cache.Set(context.Background(), key, data, r.ttl); err != nil {
		r.log.Debug("cache write failed", "key", key, "error", err)
	}
}
