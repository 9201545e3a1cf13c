package flood

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/puzzlekit/gridgraph"
)

// DefaultThreshold is the energy level at which a cell fires.
const DefaultThreshold = 10

// Sentinel errors for flood simulation.
var (
	// ErrNilGrid is returned when New receives a nil grid.
	ErrNilGrid = errors.New("flood: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("flood: invalid option supplied")

	// ErrNoSync is returned when no fully synchronized step occurs within the limit.
	ErrNoSync = errors.New("flood: cells never fired together")
)

// Option configures an Engine via functional arguments.
type Option func(*Options)

// Options holds the engine parameters.
type Options struct {
	// Threshold is the level at or above which a cell fires. Must be > 0.
	Threshold int

	// Conn selects which neighbors receive energy from a firing cell.
	Conn gridgraph.Connectivity

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Threshold=DefaultThreshold and Conn8.
func DefaultOptions() Options {
	return Options{
		Threshold: DefaultThreshold,
		Conn:      gridgraph.Conn8,
	}
}

// WithThreshold sets the firing level.
//
//	n > 0:  fire when a cell reaches n
//	n <= 0: invalid option → ErrOptionViolation
func WithThreshold(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: Threshold must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Threshold = n
	}
}

// WithConnectivity selects 4- or 8-neighbor spreading.
func WithConnectivity(c gridgraph.Connectivity) Option {
	return func(o *Options) {
		o.Conn = c
	}
}
