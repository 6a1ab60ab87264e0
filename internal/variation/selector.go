// Package variation rotates SEO phrasing so that a pool is exhausted before any
// phrase is reused for the same vehicle group.
package variation

import (
	"cmp"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"

	"github.com/jonathan/review-schedule/internal/types"
)

// Field is the SEO field a rotation applies to.
type Field string

// Rotated SEO fields.
const (
	FieldPageTitle       Field = "page_title"
	FieldMetaDescription Field = "meta_description"
)

// Key scopes rotation history to a vehicle group and a field.
type Key struct {
	Group string
	Field Field
}

func (k Key) String() string {
	return fmt.Sprintf("%s_%s", k.Group, k.Field)
}

// GroupKey groups vehicles by type, lowercased make and a two-year bucket, so
// adjacent model years share rotation history.
func GroupKey(vehicleType types.VehicleType, vehicleMake string, year int) string {
	bucket := (year / 2) * 2
	return fmt.Sprintf("seo_%s_%s_%d", vehicleType.Normalize(), strings.ToLower(strings.TrimSpace(vehicleMake)), bucket)
}

// KeyFor builds the rotation key of a field for a vehicle.
func KeyFor(p types.VehicleProfile, field Field) Key {
	return Key{Group: GroupKey(p.VehicleType, p.Make, p.Year), Field: field}
}

// Option configures a Selector.
type Option func(*Selector)

// WithRand sets the function used to draw an index in [0, n).
func WithRand(intn func(n int) int) Option {
	return func(s *Selector) {
		s.intn = intn
	}
}

// WithResetHook sets a callback invoked, outside the lock, each time a key's
// history is exhausted and cleared.
func WithResetHook(fn func(Key)) Option {
	return func(s *Selector) {
		s.onReset = fn
	}
}

// Selector keeps per-key rotation history in memory. It is safe for
// concurrent use; history is neither persisted nor shared across processes.
type Selector struct {
	mu      sync.Mutex
	history map[Key][]string
	intn    func(n int) int
	onReset func(Key)
}

// New creates an empty Selector.
func New(opts ...Option) *Selector {
	s := &Selector{
		history: make(map[Key][]string),
		intn:    rand.IntN,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Pick returns a pool entry not yet emitted for key. When every entry has been
// emitted, the key's history is cleared first and the draw uses the full pool,
// so the value right after a reset may equal the one before it. Duplicate pool
// entries count once. An empty pool yields "".
func (s *Selector) Pick(pool []string, key Key) string {
	pool = dedupe(pool)
	if len(pool) == 0 {
		return ""
	}

	s.mu.Lock()
	used := s.history[key]
	available := make([]string, 0, len(pool))
	for _, candidate := range pool {
		if !slices.Contains(used, candidate) {
			available = append(available, candidate)
		}
	}

	reset := false
	if len(available) == 0 {
		delete(s.history, key)
		available = pool
		reset = true
	}

	choice := available[s.intn(len(available))]
	s.history[key] = append(s.history[key], choice)
	s.mu.Unlock()

	if reset && s.onReset != nil {
		s.onReset(key)
	}
	return choice
}

// Clear forgets the history of a single key.
func (s *Selector) Clear(key Key) {
	s.mu.Lock()
	delete(s.history, key)
	s.mu.Unlock()
}

// ClearAll forgets all history.
func (s *Selector) ClearAll() {
	s.mu.Lock()
	s.history = make(map[Key][]string)
	s.mu.Unlock()
}

// Used returns a copy of the values emitted for key since its last reset.
func (s *Selector) Used(key Key) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.history[key])
}

// KeyCount is the number of values emitted for one key.
type KeyCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// UsageStats summarizes rotation history.
type UsageStats struct {
	TotalKeys    int            `json:"total_keys"`
	PerKey       map[string]int `json:"per_key"`
	MostUsedKeys []KeyCount     `json:"most_used_keys"`
}

const mostUsedLimit = 5

// UsageStats reports how many values each key has emitted since its last reset.
func (s *Selector) UsageStats() UsageStats {
	s.mu.Lock()
	stats := UsageStats{
		TotalKeys: len(s.history),
		PerKey:    make(map[string]int, len(s.history)),
	}
	counts := make([]KeyCount, 0, len(s.history))
	for k, used := range s.history {
		stats.PerKey[k.String()] = len(used)
		counts = append(counts, KeyCount{Key: k.String(), Count: len(used)})
	}
	s.mu.Unlock()

	slices.SortFunc(counts, func(a, b KeyCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Key, b.Key)
	})
	if len(counts) > mostUsedLimit {
		counts = counts[:mostUsedLimit]
	}
	stats.MostUsedKeys = counts
	return stats
}

func dedupe(pool []string) []string {
	out := make([]string, 0, len(pool))
	for _, v := range pool {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}
