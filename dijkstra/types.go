package dijkstra

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/puzzlekit/gridgraph"
)

// Sentinel errors returned by the grid Dijkstra implementation.
var (
	// ErrNilGrid indicates that a nil grid was passed.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrOutOfBounds indicates a source or target outside the grid.
	ErrOutOfBounds = errors.New("dijkstra: endpoint outside grid")

	// ErrNegativeCost indicates a cell with a negative entry cost.
	ErrNegativeCost = errors.New("dijkstra: negative cell cost encountered")

	// ErrUnreachable indicates that the target was never finalized.
	ErrUnreachable = errors.New("dijkstra: target unreachable")

	// ErrBadTiles indicates a tiling factor below one.
	ErrBadTiles = errors.New("dijkstra: tile factor must be at least 1")

	// ErrTileValue indicates a base cell outside 1..9, which tiling cannot wrap.
	ErrTileValue = errors.New("dijkstra: tiled cell value must be in 1..9")
)

// Options configures the behavior of ShortestPath.
//
// Source     : starting cell; its own value is not paid. Default (0,0).
// Target     : destination cell. Default bottom-right corner.
// ReturnPath : if true, Result.Path lists the cells of one cheapest path.
// Tiles      : search the Tile(grid, Tiles) expansion. Default 1 (the grid itself).
type Options struct {
	Source     gridgraph.Point
	Target     gridgraph.Point
	ReturnPath bool
	Tiles      int

	hasTarget bool  // Target set explicitly
	err       error // recorded by an invalid Option
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// Source sets the starting cell.
func Source(p gridgraph.Point) Option {
	return func(o *Options) {
		o.Source = p
	}
}

// Target sets the destination cell. Coordinates refer to the searched grid,
// i.e. the tiled expansion when WithTiles is also given.
func Target(p gridgraph.Point) Option {
	return func(o *Options) {
		o.Target = p
		o.hasTarget = true
	}
}

// WithReturnPath enables path reconstruction in the Result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithTiles searches the factor×factor tiled expansion of the grid.
// A factor below one is recorded as ErrBadTiles.
func WithTiles(factor int) Option {
	return func(o *Options) {
		if factor < 1 {
			o.err = fmt.Errorf("%w: got %d", ErrBadTiles, factor)
			return
		}
		o.Tiles = factor
	}
}

// DefaultOptions returns Source=(0,0), no explicit Target (bottom-right),
// ReturnPath=false and Tiles=1.
func DefaultOptions() Options {
	return Options{
		Source: gridgraph.Point{},
		Tiles:  1,
	}
}

// Result is the outcome of a search.
type Result struct {
	// Cost is the sum of the values of every cell entered after the source.
	Cost int64
	// Path runs from source to target inclusive; nil unless ReturnPath was set.
	Path []gridgraph.Point
}
