package caves

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"unicode"
)

// Cave is a named node of the cave system.
type Cave struct {
	// ID uniquely identifies the cave within its Graph.
	ID string

	// Small is true when every letter of ID is lowercase.
	Small bool
}

// Graph is an undirected, unweighted cave system without self-loops or
// parallel tunnels. mu guards both maps.
type Graph struct {
	mu      sync.RWMutex
	caves   map[string]*Cave
	tunnels map[string]map[string]struct{} // cave ID → neighbor IDs, mirrored
	count   int                            // number of tunnels
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		caves:   make(map[string]*Cave),
		tunnels: make(map[string]map[string]struct{}),
	}
}

// IsSmall reports whether id names a small cave: non-empty, with every rune
// a lowercase letter.
func IsSmall(id string) bool {
	if id == "" {
		return false
	}
	for _, r := range id {
		if !unicode.IsLower(r) {
			return false
		}
	}

	return true
}

// AddCave inserts a cave if it is not already present.
// Returns ErrEmptyCaveID for an empty id.
// Complexity: O(1)
func (g *Graph) AddCave(id string) error {
	if id == "" {
		return ErrEmptyCaveID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addCave(id)

	return nil
}

// addCave requires g.mu held for writing.
func (g *Graph) addCave(id string) {
	if _, ok := g.caves[id]; ok {
		return
	}
	g.caves[id] = &Cave{ID: id, Small: IsSmall(id)}
	g.tunnels[id] = make(map[string]struct{})
}

// AddTunnel joins a and b, adding either cave if missing.
// Returns ErrEmptyCaveID, ErrLoopNotAllowed (a == b) or ErrMultiTunnel.
// Complexity: O(1)
func (g *Graph) AddTunnel(a, b string) error {
	// 1) Input validation
	if a == "" || b == "" {
		return ErrEmptyCaveID
	}
	if a == b {
		return fmt.Errorf("%w: %q", ErrLoopNotAllowed, a)
	}

	// 2) Ensure caves exist, then link both directions under one lock
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addCave(a)
	g.addCave(b)
	if _, ok := g.tunnels[a][b]; ok {
		return fmt.Errorf("%w: %s-%s", ErrMultiTunnel, a, b)
	}
	g.tunnels[a][b] = struct{}{}
	g.tunnels[b][a] = struct{}{}
	g.count++

	return nil
}

// HasCave reports whether id exists.
func (g *Graph) HasCave(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.caves[id]

	return ok
}

// HasTunnel reports whether a and b are joined.
func (g *Graph) HasTunnel(a, b string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.tunnels[a][b]

	return ok
}

// Cave returns a copy of the cave named id, or ErrCaveNotFound.
func (g *Graph) Cave(id string) (Cave, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	c, ok := g.caves[id]
	if !ok {
		return Cave{}, fmt.Errorf("%w: %q", ErrCaveNotFound, id)
	}

	return *c, nil
}

// Neighbors returns the caves joined to id, sorted by name.
// Returns ErrCaveNotFound for an unknown id.
// Complexity: O(d log d)
func (g *Graph) Neighbors(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	adj, ok := g.tunnels[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrCaveNotFound, id)
	}

	return sortedKeys(adj), nil
}

// Caves returns every cave name, sorted.
func (g *Graph) Caves() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, 0, len(g.caves))
	for id := range g.caves {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// CaveCount returns the number of caves.
func (g *Graph) CaveCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.caves)
}

// TunnelCount returns the number of tunnels.
func (g *Graph) TunnelCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.count
}

// String renders one "a-b" line per tunnel with a < b, sorted.
func (g *Graph) String() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	lines := make([]string, 0, g.count)
	for a, adj := range g.tunnels {
		for b := range adj {
			if a < b {
				lines = append(lines, a+"-"+b)
			}
		}
	}
	sort.Strings(lines)

	return strings.Join(lines, "\n")
}

// ParseEdges builds a Graph from one "a-b" tunnel per non-empty line.
// Surrounding whitespace is ignored. Returns ErrBadTunnel (with the line
// number) for a line without exactly one dash or with an empty side, plus
// the errors of AddTunnel.
func ParseEdges(text string) (*Graph, error) {
	g := NewGraph()
	for n, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		a, b, ok := strings.Cut(line, "-")
		if !ok || a == "" || b == "" || strings.Contains(b, "-") {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadTunnel, n+1, line)
		}
		if err := g.AddTunnel(a, b); err != nil {
			return nil, fmt.Errorf("line %d: %w", n+1, err)
		}
	}

	return g, nil
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
