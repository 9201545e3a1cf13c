package polymer

import (
	"fmt"
	"strings"
)

// Counter expands pairs under one rule set and memoizes the results.
// A Counter is safe for concurrent use.
type Counter struct {
	rules Rules
	cache *Cache
}

// NewCounter returns a Counter with its own empty cache. The rules map is
// read but never modified; the caller must not change it while the Counter is
// in use, since cached results would go stale.
func NewCounter(rules Rules) *Counter {
	return &Counter{rules: rules, cache: NewCache()}
}

// Cache exposes the counter's memo table.
func (c *Counter) Cache() *Cache { return c.cache }

// Expand returns the symbols inserted between p[0] and p[1] over depth steps,
// excluding the two endpoints themselves. depth ≤ 0 yields an empty tally.
// The returned Counts belongs to the caller.
func (c *Counter) Expand(p Pair, depth int) (Counts, error) {
	if depth <= 0 {
		return Counts{}, nil
	}
	got, err := c.expand(p, depth)
	if err != nil {
		return nil, err
	}
	return got.Clone(), nil
}

// expand returns cached counts that must not be modified.
func (c *Counter) expand(p Pair, depth int) (Counts, error) {
	k := cacheKey{pair: p, depth: depth}
	if v, ok := c.cache.get(k); ok {
		return v, nil
	}
	m, ok := c.rules[p]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingRule, p)
	}

	out := Counts{m: 1}
	if depth > 1 {
		left, err := c.expand(Pair{p[0], m}, depth-1)
		if err != nil {
			return nil, err
		}
		right, err := c.expand(Pair{m, p[1]}, depth-1)
		if err != nil {
			return nil, err
		}
		out.Add(left)
		out.Add(right)
	}

	return c.cache.put(k, out), nil
}

// Tally counts every symbol of template after steps insertion steps. Each
// template symbol is counted once here; pair expansions add only inserted
// symbols.
func (c *Counter) Tally(template string, steps int) (Counts, error) {
	syms := []rune(template)
	if len(syms) == 0 {
		return nil, ErrEmpty
	}
	out := make(Counts)
	for _, s := range syms {
		out[s]++
	}
	if steps <= 0 {
		return out, nil
	}
	for i := 0; i+1 < len(syms); i++ {
		got, err := c.expand(Pair{syms[i], syms[i+1]}, steps)
		if err != nil {
			return nil, err
		}
		out.Add(got)
	}

	return out, nil
}

// Spread returns max-count minus min-count after steps steps, using a cache
// scoped to this call.
func Spread(template string, rules Rules, steps int) (uint64, error) {
	counts, err := NewCounter(rules).Tally(template, steps)
	if err != nil {
		return 0, err
	}
	return counts.Spread(), nil
}

// BruteForce materializes the sequence after steps steps. Its length grows
// as 2^steps, so it is only practical for small step counts.
func BruteForce(template string, rules Rules, steps int) (string, error) {
	syms := []rune(template)
	if len(syms) == 0 {
		return "", ErrEmpty
	}
	for s := 0; s < steps; s++ {
		next := make([]rune, 0, 2*len(syms))
		for i := 0; i+1 < len(syms); i++ {
			p := Pair{syms[i], syms[i+1]}
			m, ok := rules[p]
			if !ok {
				return "", fmt.Errorf("%w: %s", ErrMissingRule, p)
			}
			next = append(next, syms[i], m)
		}
		syms = append(next, syms[len(syms)-1])
	}

	return string(syms), nil
}

// CountSymbols tallies the symbols of s.
func CountSymbols(s string) Counts {
	out := make(Counts)
	for _, r := range s {
		out[r]++
	}
	return out
}

// ParseRules reads "AB -> C" lines; blank lines are skipped.
func ParseRules(lines []string) (Rules, error) {
	rules := make(Rules, len(lines))
	for n, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lhs, rhs, ok := strings.Cut(line, "->")
		pair, ins := []rune(strings.TrimSpace(lhs)), []rune(strings.TrimSpace(rhs))
		if !ok || len(pair) != 2 || len(ins) != 1 {
			return nil, fmt.Errorf("%w: line %d %q", ErrBadRule, n+1, line)
		}
		rules[Pair{pair[0], pair[1]}] = ins[0]
	}

	return rules, nil
}

// Parse splits text into its first line (the template) and the rules that
// follow it.
func Parse(text string) (string, Rules, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	template := strings.TrimSpace(lines[0])
	if template == "" {
		return "", nil, ErrEmpty
	}
	rules, err := ParseRules(lines[1:])
	if err != nil {
		return "", nil, err
	}

	return template, rules, nil
}
