// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted grids.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all cells (O(V)) to detect negative costs and fail fast.
//   - Edge weight is the destination cell's value, so the graph is directed in
//     effect: moving a→b costs value(b) while b→a costs value(a).
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/puzzlekit/gridgraph"
)

// ShortestPath computes the cheapest cost of moving from Options.Source to
// Options.Target over 4-connected neighbors of gg, paying each entered cell's value.
//
// Preconditions and validation (in order):
//  1. gg must be non-nil (ErrNilGrid).
//  2. Options must be valid (ErrBadTiles).
//  3. Source and Target must lie inside the searched grid (ErrOutOfBounds).
//  4. No cell may be negative (ErrNegativeCost).
//
// Complexity:
//
//   - Time:  O(V log V)
//   - Space: O(V)
func ShortestPath(gg *gridgraph.GridGraph, opts ...Option) (Result, error) {
	// 1) Validate grid is non-nil
	if gg == nil {
		return Result{}, ErrNilGrid
	}

	// 2) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}

	// 3) Expand before search so endpoints are checked against the real board.
	if cfg.Tiles > 1 {
		var err error
		if gg, err = Tile(gg, cfg.Tiles); err != nil {
			return Result{}, err
		}
	}
	if !cfg.hasTarget {
		cfg.Target = gridgraph.Point{X: gg.Width - 1, Y: gg.Height - 1}
	}
	if !gg.InBounds(cfg.Source.X, cfg.Source.Y) {
		return Result{}, fmt.Errorf("%w: source %v", ErrOutOfBounds, cfg.Source)
	}
	if !gg.InBounds(cfg.Target.X, cfg.Target.Y) {
		return Result{}, fmt.Errorf("%w: target %v", ErrOutOfBounds, cfg.Target)
	}

	// 4) Pre-scan all cells to detect negative costs.
	for y, row := range gg.CellValues {
		for x, v := range row {
			if v < 0 {
				return Result{}, fmt.Errorf("%w: cell (%d,%d) cost=%d", ErrNegativeCost, x, y, v)
			}
		}
	}

	// 5) Run the search.
	r := newRunner(gg, cfg)
	r.init()
	r.process()

	t := gg.Index(cfg.Target.X, cfg.Target.Y)
	if !r.visited[t] {
		return Result{}, fmt.Errorf("%w: %v", ErrUnreachable, cfg.Target)
	}
	res := Result{Cost: r.dist[t]}
	if cfg.ReturnPath {
		res.Path = r.path(t)
	}

	return res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
// Tables are indexed row-major by gg.Index.
type runner struct {
	gg      *gridgraph.GridGraph // read-only within ShortestPath
	options Options
	dist    []int64 // best known cost from Source
	prev    []int   // predecessor on the cheapest path, -1 if none
	visited []bool  // cost finalized
	pq      nodePQ
}

func newRunner(gg *gridgraph.GridGraph, cfg Options) *runner {
	n := gg.Len()
	r := &runner{
		gg:      gg,
		options: cfg,
		dist:    make([]int64, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	if cfg.ReturnPath {
		r.prev = make([]int, n)
	}

	return r
}

// init sets every distance to +∞ except the source, and pushes the source.
func (r *runner) init() {
	for i := range r.dist {
		r.dist[i] = math.MaxInt64
		if r.prev != nil {
			r.prev[i] = -1
		}
	}
	s := r.gg.Index(r.options.Source.X, r.options.Source.Y)
	r.dist[s] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{idx: s, dist: 0})
}

// process is the core loop. It repeatedly extracts the cheapest unfinalized
// cell and relaxes its neighbors, until the heap is empty.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-cost item from the heap.
		item := heap.Pop(&r.pq).(*nodeItem)

		// 2) Skip stale entries for already finalized cells.
		if r.visited[item.idx] {
			continue
		}

		// 3) Its cost is now final.
		r.visited[item.idx] = true

		// 4) Relax all neighbors.
		r.relax(item.idx)
	}
}

// relax pushes cost(u)+value(v) for every unfinalized in-bounds neighbor v
// whenever that improves the best known cost of v.
func (r *runner) relax(u int) {
	gg := r.gg
	ux, uy := gg.Coordinate(u)
	for _, d := range gridgraph.Offsets(gridgraph.Conn4) {
		vx, vy := ux+d[0], uy+d[1]
		if !gg.InBounds(vx, vy) {
			continue
		}
		v := gg.Index(vx, vy)
		if r.visited[v] {
			continue
		}

		newDist := r.dist[u] + int64(gg.CellValues[vy][vx])
		// strict improvement only, so equal-cost ties do not re-enter the heap
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, &nodeItem{idx: v, dist: newDist})
	}
}

// path walks predecessors back from t and returns source→t.
func (r *runner) path(t int) []gridgraph.Point {
	var rev []gridgraph.Point
	for at := t; at >= 0; at = r.prev[at] {
		x, y := r.gg.Coordinate(at)
		rev = append(rev, gridgraph.Point{X: x, Y: y})
	}
	out := make([]gridgraph.Point, len(rev))
	for i, p := range rev {
		out[len(rev)-1-i] = p
	}

	return out
}

// nodeItem represents a cell and its tentative cost from the source.
type nodeItem struct {
	idx  int   // row-major cell index
	dist int64 // accumulated cost
}

// nodePQ is a priority queue of *nodeItem for container/heap.
// container/heap pops the element its Less ranks first, so Less deliberately
// places the smaller accumulated cost first: this turns the heap into a
// min-heap on cost. Inverting the comparison would yield the most expensive
// frontier cell and break the algorithm.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the
// minimum there.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
