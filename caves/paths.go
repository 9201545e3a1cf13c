package caves

import (
	"context"
	"fmt"
	"sort"
)

// pathState is one partial route on the frontier. visits is shared between
// states until a small cave is entered, and is never mutated after creation.
type pathState struct {
	cave   int
	visits []uint8 // per small-cave slot
	twice  bool    // the one double visit has been spent
	prev   *pathState
}

// walker encapsulates the mutable state of one CountPaths call.
type walker struct {
	opts  Options
	ctx   context.Context
	ids   []string // dense index → cave ID
	adj   [][]int  // neighbors per dense index, sorted by ID
	slot  []int    // small-cave slot per dense index, -1 for big caves
	start int
	end   int
	queue []*pathState
	found int
}

// CountPaths counts the distinct routes from Options.Start to Options.End
// under Options.Policy.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrGraphNil).
//  2. Options must be valid, with Start ≠ End (ErrOptionViolation).
//  3. Start and End must exist (ErrCaveNotFound).
//  4. No two big caves may be joined, unless one of them is an endpoint
//     (ErrUnbounded).
//
// Cancellation of Options.Ctx is checked once per frontier entry.
//
// Complexity:
//
//   - Time:  O(P·L), P partial routes of length up to L
//   - Space: O(P)
func CountPaths(g *Graph, opts ...Option) (int, error) {
	// 1) Validate graph is non-nil
	if g == nil {
		return 0, ErrGraphNil
	}

	// 2) Build and validate Options
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return 0, o.err
	}
	if o.Start == o.End {
		return 0, fmt.Errorf("%w: start and end are both %q", ErrOptionViolation, o.Start)
	}

	// 3) Snapshot the graph into dense tables
	w := newWalker(g, o)
	var ok bool
	if w.start, ok = w.index(o.Start); !ok {
		return 0, fmt.Errorf("%w: start %q", ErrCaveNotFound, o.Start)
	}
	if w.end, ok = w.index(o.End); !ok {
		return 0, fmt.Errorf("%w: end %q", ErrCaveNotFound, o.End)
	}

	// 4) Reject cycles through big caves
	if err := w.checkBounded(); err != nil {
		return 0, err
	}

	// 5) Search
	if err := w.loop(); err != nil {
		return 0, err
	}

	return w.found, nil
}

func newWalker(g *Graph, o Options) *walker {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.caves))
	for id := range g.caves {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	idx := make(map[string]int, len(ids))
	for i, id := range ids {
		idx[id] = i
	}

	w := &walker{
		opts:  o,
		ctx:   o.Ctx,
		ids:   ids,
		adj:   make([][]int, len(ids)),
		slot:  make([]int, len(ids)),
		start: -1,
		end:   -1,
	}
	small := 0
	for i, id := range ids {
		for _, nb := range sortedKeys(g.tunnels[id]) {
			w.adj[i] = append(w.adj[i], idx[nb])
		}
		w.slot[i] = -1
		if g.caves[id].Small {
			w.slot[i] = small
			small++
		}
	}

	return w
}

// index returns the dense index of id.
func (w *walker) index(id string) (int, bool) {
	i := sort.SearchStrings(w.ids, id)
	if i < len(w.ids) && w.ids[i] == id {
		return i, true
	}

	return -1, false
}

func (w *walker) checkBounded() error {
	for a, adj := range w.adj {
		if w.slot[a] >= 0 || a == w.start || a == w.end {
			continue
		}
		for _, b := range adj {
			if w.slot[b] < 0 && b != w.start && b != w.end {
				return fmt.Errorf("%w: %s-%s", ErrUnbounded, w.ids[a], w.ids[b])
			}
		}
	}

	return nil
}

// loop drains the frontier. A complete route is counted the moment a
// neighbor is End; routes never continue past End.
func (w *walker) loop() error {
	nSmall := 0
	for _, s := range w.slot {
		if s >= 0 {
			nSmall++
		}
	}
	root := &pathState{cave: w.start, visits: make([]uint8, nSmall)}
	if s := w.slot[w.start]; s >= 0 {
		root.visits[s] = 1
	}
	w.queue = append(w.queue, root)

	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		cur := w.queue[0]
		w.queue[0] = nil
		w.queue = w.queue[1:]
		for _, nb := range w.adj[cur.cave] {
			if nb == w.end {
				w.found++
				w.emit(cur)
				continue
			}
			if next, ok := w.step(cur, nb); ok {
				w.queue = append(w.queue, next)
			}
		}
	}

	return nil
}

// step extends cur into nb if the policy allows it.
func (w *walker) step(cur *pathState, nb int) (*pathState, bool) {
	if nb == w.start {
		return nil, false
	}
	s := w.slot[nb]
	if s < 0 {
		return &pathState{cave: nb, visits: cur.visits, twice: cur.twice, prev: cur}, true
	}

	twice := cur.twice
	switch cur.visits[s] {
	case 0:
	case 1:
		if w.opts.Policy != OneSmallTwice || twice {
			return nil, false
		}
		twice = true
	default:
		return nil, false
	}
	visits := make([]uint8, len(cur.visits))
	copy(visits, cur.visits)
	visits[s]++

	return &pathState{cave: nb, visits: visits, twice: twice, prev: cur}, true
}

// emit hands the route ending cur→End to OnPath, if set.
func (w *walker) emit(cur *pathState) {
	if w.opts.OnPath == nil {
		return
	}
	n := 1
	for st := cur; st != nil; st = st.prev {
		n++
	}
	path := make([]string, n)
	path[n-1] = w.ids[w.end]
	i := n - 2
	for st := cur; st != nil; st = st.prev {
		path[i] = w.ids[st.cave]
		i--
	}
	w.opts.OnPath(path)
}
