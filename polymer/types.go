package polymer

import (
	"errors"
	"sync"
)

// Sentinel errors for parsing and expansion.
var (
	// ErrBadRule indicates a malformed rule line.
	ErrBadRule = errors.New("polymer: malformed rule")

	// ErrMissingRule indicates a reachable pair without an insertion rule.
	ErrMissingRule = errors.New("polymer: no rule for pair")

	// ErrEmpty indicates an empty template.
	ErrEmpty = errors.New("polymer: empty template")
)

// Pair is an ordered pair of adjacent symbols.
type Pair [2]rune

// String returns the two symbols side by side, e.g. "NN".
func (p Pair) String() string { return string(p[:]) }

// Rules maps each pair to the symbol inserted between its halves.
type Rules map[Pair]rune

// Counts maps a symbol to how many times it occurs.
type Counts map[rune]uint64

// Add merges other into c.
func (c Counts) Add(other Counts) {
	for k, v := range other {
		c[k] += v
	}
}

// Clone returns an independent copy of c.
func (c Counts) Clone() Counts {
	out := make(Counts, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// Spread returns the most common count minus the least common count.
// Returns 0 for an empty tally.
func (c Counts) Spread() uint64 {
	first := true
	var lo, hi uint64
	for _, v := range c {
		if first {
			lo, hi, first = v, v, false
			continue
		}
		lo, hi = min(lo, v), max(hi, v)
	}
	return hi - lo
}

// cacheKey identifies one sub-expansion.
type cacheKey struct {
	pair  Pair
	depth int // remaining steps
}

// Cache memoizes sub-expansions for a single rule set. Entries are immutable
// once stored and are never evicted. Safe for concurrent use.
type Cache struct {
	mu      sync.Mutex
	entries map[cacheKey]Counts
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[cacheKey]Counts)}
}

// get returns the stored counts; callers must not modify them.
func (c *Cache) get(k cacheKey) (Counts, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[k]
	return v, ok
}

// put stores v unless k is present and returns the stored value.
// The first writer for a key wins.
func (c *Cache) put(k cacheKey, v Counts) Counts {
	c.mu.Lock()
	defer c.mu.Unlock()
	if old, ok := c.entries[k]; ok {
		return old
	}
	c.entries[k] = v
	return v
}

// Len returns the number of memoized sub-expansions.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Reset drops every entry.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[cacheKey]Counts)
}
