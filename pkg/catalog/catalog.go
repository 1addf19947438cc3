// Package catalog turns flat file-share search listings into a browsable
// hierarchy of series (season/episode) and movies with quality-ranked
// version lists.
package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// unknownIdent is the placeholder identifier some listings carry for files
// whose real identifier is not known. It never participates in dedup.
const unknownIdent = "unknown"

// Size is a byte count carried as opaque text. Listings deliver it as
// either a JSON string or a bare number; anything unparseable counts as 0
// so that size ordering stays total.
type Size string

func (s Size) Bytes() int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(string(s)), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func (s *Size) UnmarshalJSON(data []byte) error {
	text := strings.TrimSpace(string(data))
	if text == "null" {
		*s = ""
		return nil
	}
	if unquoted, err := strconv.Unquote(text); err == nil {
		text = unquoted
	}
	*s = Size(text)
	return nil
}

// FileRecord is one entry of a search listing. Name, Ident and Size come
// from the provider; the remaining fields are derived during grouping and
// only ever set on the grouped copy, never on the caller's record.
type FileRecord struct {
	Name  string `json:"name"`
	Ident string `json:"ident"`
	Size  Size   `json:"size,omitempty"`

	Season     int           `json:"season,omitempty"`
	Episode    EpisodeNumber `json:"episode,omitzero"`
	SeriesName string        `json:"series_name,omitempty"`
	Language   string        `json:"language,omitempty"`
	Quality    *QualityMeta  `json:"quality_meta,omitempty"`
}

// EpisodeNumber is an episode count that may carry one decimal place, as
// used for specials in absolute numbering ("6.5"). It is comparable and
// usable as a map key, unlike a float.
type EpisodeNumber struct {
	Num int
	Sub int // tenths, 0 for whole-numbered episodes
}

// Ep returns a whole-numbered episode.
func Ep(n int) EpisodeNumber { return EpisodeNumber{Num: n} }

func (e EpisodeNumber) IsZero() bool { return e.Num == 0 && e.Sub == 0 }

func (e EpisodeNumber) Less(o EpisodeNumber) bool {
	if e.Num != o.Num {
		return e.Num < o.Num
	}
	return e.Sub < o.Sub
}

func (e EpisodeNumber) String() string {
	if e.Sub == 0 {
		return strconv.Itoa(e.Num)
	}
	return fmt.Sprintf("%d.%d", e.Num, e.Sub)
}

func (e EpisodeNumber) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

func (e *EpisodeNumber) UnmarshalText(text []byte) error {
	num, err := parseEpisodeNumber(string(text))
	if err != nil {
		return err
	}
	*e = num
	return nil
}

func parseEpisodeNumber(s string) (EpisodeNumber, error) {
	whole, frac, found := strings.Cut(s, ".")
	num, err := strconv.Atoi(whole)
	if err != nil {
		return EpisodeNumber{}, fmt.Errorf("episode number %q: %w", s, err)
	}
	if !found {
		return EpisodeNumber{Num: num}, nil
	}
	sub, err := strconv.Atoi(frac)
	if err != nil {
		return EpisodeNumber{}, fmt.Errorf("episode number %q: %w", s, err)
	}
	return EpisodeNumber{Num: num, Sub: sub}, nil
}

// EpisodeInfo is the result of classifying a filename as a series episode.
type EpisodeInfo struct {
	SeriesName   string
	Season       int
	Episode      EpisodeNumber
	OriginalName string
}

// MovieInfo is the result of classifying a filename as a movie.
type MovieInfo struct {
	Title     string
	Year      int
	RawTitle  string
	DualNames *NamePair
}

// NamePair holds two co-occurring title variants extracted from one
// filename fragment, e.g. an English and a Czech title.
type NamePair struct {
	First  string
	Second string
}

// DualNames is a resolved dual-title identity.
type DualNames struct {
	CanonicalKey string
	DisplayName  string
	Original     string
	Czech        string
}

//go:generate mockgen -destination=mocks/resolver.go -package=mocks github.com/vmunix/sharecat/pkg/catalog Resolver

// Resolver resolves a dual-title pair to a canonical identity, typically by
// consulting an external title database. A nil result with a nil error
// means no resolution is available; errors are treated the same way by the
// grouping engine and never abort the batch.
type Resolver interface {
	ResolveDualNames(name1, name2 string) (*DualNames, error)
}

// SeriesEntry is one grouped series: seasons mapping to episodes mapping to
// version lists sorted by size descending.
type SeriesEntry struct {
	DisplayName   string                                  `json:"display_name"`
	Seasons       map[int]map[EpisodeNumber][]*FileRecord `json:"seasons"`
	TotalEpisodes int                                     `json:"total_episodes"`

	// Every display-name variant observed for this series; consumed by
	// the name picker during finalization and discarded afterwards.
	nameCandidates []string
}

// MovieEntry is one grouped movie with its version list sorted by size
// descending.
type MovieEntry struct {
	DisplayName  string        `json:"display_name"`
	Year         int           `json:"year"`
	Versions     []*FileRecord `json:"versions"`
	CanonicalKey string        `json:"canonical_key"`
}

// Catalog is the grouped result. Series and movie keys preserve insertion
// order via SeriesKeys/MovieKeys so that merge passes and callers iterate
// deterministically; merging removes keys but never reorders them.
type Catalog struct {
	Series    map[string]*SeriesEntry `json:"series"`
	Movies    map[string]*MovieEntry  `json:"movies"`
	NonSeries []*FileRecord           `json:"non_series"`

	seriesOrder []string
	movieOrder  []string
}

func newCatalog() *Catalog {
	return &Catalog{
		Series: make(map[string]*SeriesEntry),
		Movies: make(map[string]*MovieEntry),
	}
}

// SeriesKeys returns the live series keys in insertion order.
func (c *Catalog) SeriesKeys() []string {
	keys := make([]string, 0, len(c.Series))
	for _, k := range c.seriesOrder {
		if _, ok := c.Series[k]; ok {
			keys = append(keys, k)
		}
	}
	return keys
}

// MovieKeys returns the live movie keys in insertion order.
func (c *Catalog) MovieKeys() []string {
	keys := make([]string, 0, len(c.Movies))
	for _, k := range c.movieOrder {
		if _, ok := c.Movies[k]; ok {
			keys = append(keys, k)
		}
	}
	return keys
}

func (c *Catalog) addSeries(key string, entry *SeriesEntry) {
	if _, ok := c.Series[key]; !ok {
		c.seriesOrder = append(c.seriesOrder, key)
	}
	c.Series[key] = entry
}

func (c *Catalog) removeSeries(key string) {
	delete(c.Series, key)
}

func (c *Catalog) addMovie(key string, entry *MovieEntry) {
	if _, ok := c.Movies[key]; !ok {
		c.movieOrder = append(c.movieOrder, key)
	}
	c.Movies[key] = entry
}

func (c *Catalog) removeMovie(key string) {
	delete(c.Movies, key)
}
