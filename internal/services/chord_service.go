package services

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/Conceptual-Machines/songbook-api/internal/models"
	"github.com/Conceptual-Machines/songbook-api/internal/theory"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Operation names used as the first half of a cache key
const (
	opNormalize  = "normalize"
	opParse      = "parse"
	opTranspose  = "transpose"
	opInterval   = "interval"
	opSuggest    = "suggest"
	opSuggestAll = "suggest_all"
)

// DefaultCacheSize is used when the configured size is missing or invalid
const DefaultCacheSize = 4096

type cacheKey struct {
	op   string
	args string
}

// CacheStats reports memoization counters
type CacheStats struct {
	Enabled bool   `json:"enabled"`
	Size    int    `json:"size"`
	Entries int    `json:"entries"`
	Hits    uint64 `json:"hits"`
	Misses  uint64 `json:"misses"`
}

// ChordService fronts the theory engine for the HTTP API and the CLI and
// memoizes results. It is safe for concurrent use.
type ChordService struct {
	cache  *lru.Cache[cacheKey, any]
	size   int
	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewChordService creates a service with an LRU cache of cacheSize entries.
// A size of zero or less disables caching.
func NewChordService(cacheSize int) (*ChordService, error) {
	svc := &ChordService{}
	if cacheSize <= 0 {
		return svc, nil
	}

	cache, err := lru.New[cacheKey, any](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create chord cache: %w", err)
	}
	svc.cache = cache
	svc.size = cacheSize
	return svc, nil
}

// memo returns the cached value for key or computes and stores it
func memo[T any](s *ChordService, key cacheKey, compute func() T) T {
	if s.cache == nil {
		return compute()
	}
	if v, ok := s.cache.Get(key); ok {
		s.hits.Add(1)
		return v.(T)
	}
	s.misses.Add(1)
	v := compute()
	s.cache.Add(key, v)
	return v
}

func joinArgs(args ...string) string {
	return strings.Join(args, "\x00")
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// Normalize rewrites a chord alias to its canonical spelling
func (s *ChordService) Normalize(symbol string) string {
	return memo(s, cacheKey{opNormalize, symbol}, func() string {
		return theory.Normalize(symbol)
	})
}

// Parse splits a chord symbol into root, quality and bass
func (s *ChordService) Parse(symbol string) theory.ChordSymbol {
	return memo(s, cacheKey{opParse, symbol}, func() theory.ChordSymbol {
		return theory.Parse(symbol)
	})
}

// Transpose shifts a chord by interval semitones
func (s *ChordService) Transpose(symbol string, interval int) string {
	shift := theory.ReduceInterval(interval)
	if shift == 0 {
		return symbol
	}
	key := cacheKey{opTranspose, joinArgs(symbol, strconv.Itoa(int(shift)))}
	return memo(s, key, func() string {
		return theory.TransposeChord(symbol, int(shift))
	})
}

// Interval returns the upward distance between two keys
func (s *ChordService) Interval(fromKey, toKey string) theory.Interval {
	return memo(s, cacheKey{opInterval, joinArgs(fromKey, toKey)}, func() theory.Interval {
		return theory.ComputeInterval(fromKey, toKey)
	})
}

// Suggest returns one category of suggestions for a tonic
func (s *ChordService) Suggest(tonic string, mode theory.Mode, category theory.Category, preset theory.Preset) []string {
	key := cacheKey{opSuggest, joinArgs(tonic, string(mode), string(category), string(preset))}
	chords := memo(s, key, func() []string {
		return theory.GenerateWithPreset(tonic, mode, category, preset)
	})
	return cloneStrings(chords)
}

// SuggestAll returns every category for a tonic
func (s *ChordService) SuggestAll(tonic string, mode theory.Mode, preset theory.Preset) theory.Suggestions {
	key := cacheKey{opSuggestAll, joinArgs(tonic, string(mode), string(preset))}
	all := memo(s, key, func() theory.Suggestions {
		return theory.GenerateAll(tonic, mode, preset)
	})

	all.Diatonic = cloneStrings(all.Diatonic)
	all.Secondary = cloneStrings(all.Secondary)
	all.SubdominantMinor = cloneStrings(all.SubdominantMinor)
	all.TwoFiveOne = cloneStrings(all.TwoFiveOne)
	all.TritoneSub = cloneStrings(all.TritoneSub)
	all.Suspended = cloneStrings(all.Suspended)
	return all
}

// TransposeSheet moves the placed chords of a lead sheet from one key to
// another. Nothing is transposed when TransposeAll is off or the keys are
// the same pitch; bar separators are always left in place.
func (s *ChordService) TransposeSheet(req models.SheetTransposeRequest) models.SheetTransposeResponse {
	interval := s.Interval(req.FromKey, req.ToKey)
	resp := models.SheetTransposeResponse{
		FromKey:    req.FromKey,
		ToKey:      req.ToKey,
		Interval:   interval,
		Transposed: req.TransposeAll && interval != 0,
		Chords:     make([]string, 0, len(req.Chords)),
	}

	for _, chip := range req.Chords {
		if models.IsBarSeparator(strings.TrimSpace(chip)) {
			resp.Chords = append(resp.Chords, chip)
			continue
		}
		if req.Normalize {
			chip = s.Normalize(chip)
		}
		if resp.Transposed {
			chip = s.Transpose(chip, int(interval))
		}
		resp.Chords = append(resp.Chords, chip)
	}
	return resp
}

// Enabled reports whether results are memoized
func (s *ChordService) Enabled() bool {
	return s.cache != nil
}

// Stats returns the cache counters
func (s *ChordService) Stats() CacheStats {
	stats := CacheStats{
		Enabled: s.Enabled(),
		Size:    s.size,
		Hits:    s.hits.Load(),
		Misses:  s.misses.Load(),
	}
	if s.cache != nil {
		stats.Entries = s.cache.Len()
	}
	return stats
}

// Purge drops every cached result and resets the counters
func (s *ChordService) Purge() {
	if s.cache != nil {
		s.cache.Purge()
	}
	s.hits.Store(0)
	s.misses.Store(0)
}
