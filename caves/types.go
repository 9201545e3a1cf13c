package caves

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for graph building and route counting.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("caves: graph is nil")

	// ErrEmptyCaveID indicates a cave with an empty name.
	ErrEmptyCaveID = errors.New("caves: cave ID is empty")

	// ErrCaveNotFound indicates an operation referenced a missing cave.
	ErrCaveNotFound = errors.New("caves: cave not found")

	// ErrLoopNotAllowed indicates a tunnel from a cave to itself.
	ErrLoopNotAllowed = errors.New("caves: self-loop not allowed")

	// ErrMultiTunnel indicates a second tunnel between the same two caves.
	ErrMultiTunnel = errors.New("caves: parallel tunnels not allowed")

	// ErrBadTunnel indicates an input line that is not "a-b".
	ErrBadTunnel = errors.New("caves: malformed tunnel")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("caves: invalid option supplied")

	// ErrUnbounded indicates two adjacent big caves, which allow endless routes.
	ErrUnbounded = errors.New("caves: adjacent big caves allow unbounded routes")
)

// Default endpoint names.
const (
	DefaultStart = "start"
	DefaultEnd   = "end"
)

// Policy selects how often small caves may be revisited.
type Policy int

const (
	// SmallOnce visits every small cave at most once.
	SmallOnce Policy = iota

	// OneSmallTwice lets one small cave per route be visited twice.
	OneSmallTwice
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case SmallOnce:
		return "small-once"
	case OneSmallTwice:
		return "one-small-twice"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// Option configures CountPaths via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when
// CountPaths is invoked.
type Option func(*Options)

// Options holds the parameters of a route search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Start and End name the endpoint caves.
	Start, End string

	// Policy governs small-cave revisits.
	Policy Policy

	// OnPath, if set, receives every complete route, start to end.
	// The slice is freshly allocated for each call.
	OnPath func(path []string)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - Start "start", End "end"
//   - SmallOnce
//   - no OnPath hook
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Start:  DefaultStart,
		End:    DefaultEnd,
		Policy: SmallOnce,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStart names the cave every route begins at.
func WithStart(id string) Option {
	return func(o *Options) {
		if id == "" {
			o.err = fmt.Errorf("%w: empty start cave", ErrOptionViolation)
			return
		}
		o.Start = id
	}
}

// WithEnd names the cave every route finishes at.
func WithEnd(id string) Option {
	return func(o *Options) {
		if id == "" {
			o.err = fmt.Errorf("%w: empty end cave", ErrOptionViolation)
			return
		}
		o.End = id
	}
}

// WithPolicy selects the small-cave revisit policy.
func WithPolicy(p Policy) Option {
	return func(o *Options) {
		if p != SmallOnce && p != OneSmallTwice {
			o.err = fmt.Errorf("%w: unknown %v", ErrOptionViolation, p)
			return
		}
		o.Policy = p
	}
}

// WithOnPath registers a callback that receives every complete route.
func WithOnPath(fn func(path []string)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPath = fn
		}
	}
}
