package flood

import (
	"fmt"

	"github.com/katalvlaran/puzzlekit/gridgraph"
)

// Engine holds the mutable state of one simulation.
// It owns a private copy of the grid; the caller's grid is never modified.
// An Engine is not safe for concurrent use.
type Engine struct {
	grid      *gridgraph.GridGraph
	offsets   [][2]int
	threshold int

	steps int // completed steps
	fired int // total fires across all steps

	// per-step scratch, reused to avoid allocation
	hot   []bool
	queue []int
}

// New builds an Engine over a clone of gg.
// Returns ErrNilGrid for a nil grid or ErrOptionViolation for bad options.
func New(gg *gridgraph.GridGraph, opts ...Option) (*Engine, error) {
	if gg == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	g := gg.Clone()
	return &Engine{
		grid:      g,
		offsets:   gridgraph.Offsets(o.Conn),
		threshold: o.Threshold,
		hot:       make([]bool, g.Len()),
		queue:     make([]int, 0, g.Len()),
	}, nil
}

// Step advances the simulation by one step and returns how many cells fired.
//
//  1. Raise every cell by one; cells reaching the threshold join the worklist.
//  2. Pop cells from the worklist. A cell already fired this step is skipped;
//     otherwise it fires and raises every neighbor that has not fired,
//     queueing each one that reaches the threshold.
//  3. Reset every fired cell to zero.
func (e *Engine) Step() int {
	g := e.grid
	for i := range e.hot {
		e.hot[i] = false
	}
	e.queue = e.queue[:0]

	// 1) raise every cell
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			g.CellValues[y][x]++
			if g.CellValues[y][x] >= e.threshold {
				e.queue = append(e.queue, g.Index(x, y))
			}
		}
	}

	// 2) propagate until no unfired cell is at the threshold
	count := 0
	for qi := 0; qi < len(e.queue); qi++ {
		u := e.queue[qi]
		if e.hot[u] {
			// queued twice by two firing neighbors
			continue
		}
		e.hot[u] = true
		count++
		ux, uy := g.Coordinate(u)
		for _, d := range e.offsets {
			vx, vy := ux+d[0], uy+d[1]
			if !g.InBounds(vx, vy) {
				continue
			}
			v := g.Index(vx, vy)
			if e.hot[v] {
				continue
			}
			g.CellValues[vy][vx]++
			if g.CellValues[vy][vx] == e.threshold {
				// only the crossing increment enqueues; later ones would duplicate
				e.queue = append(e.queue, v)
			}
		}
	}

	// 3) reset fired cells
	for i, fired := range e.hot {
		if fired {
			x, y := g.Coordinate(i)
			g.CellValues[y][x] = 0
		}
	}

	e.steps++
	e.fired += count

	return count
}

// Run advances steps steps and returns the number of fires among them.
func (e *Engine) Run(steps int) int {
	total := 0
	for i := 0; i < steps; i++ {
		total += e.Step()
	}

	return total
}

// FirstSynchronized steps until every cell fires in the same step and returns
// that step's 1-based index, counted from the engine's creation.
// At most maxSteps further steps run; ErrNoSync is returned if none of them
// fires every cell.
func (e *Engine) FirstSynchronized(maxSteps int) (int, error) {
	all := e.grid.Len()
	for i := 0; i < maxSteps; i++ {
		if e.Step() == all {
			return e.steps, nil
		}
	}

	return 0, fmt.Errorf("%w: within %d steps (at step %d)", ErrNoSync, maxSteps, e.steps)
}

// Steps reports how many steps have completed.
func (e *Engine) Steps() int { return e.steps }

// Fired reports the total fires over all completed steps.
func (e *Engine) Fired() int { return e.fired }

// Snapshot returns a copy of the current energy levels.
func (e *Engine) Snapshot() [][]int {
	return e.grid.Clone().CellValues
}
