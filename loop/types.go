// Package loop defines options, results and sentinel errors for loop tracing.
package loop

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pipemaze/pipegrid"
)

// DefaultMaxSteps bounds a single tracer when no WithMaxSteps option is given.
const DefaultMaxSteps = 1_000_000

// Sentinel errors for loop discovery.
var (
	// ErrMalformedStart is returned when the start cell does not have
	// exactly two neighbors opening toward it.
	ErrMalformedStart = errors.New("loop: start cell must have exactly two connecting neighbors")

	// ErrBrokenConnection is returned when a step lands on a cell that does
	// not route the traveler onward, or would step outside the grid.
	ErrBrokenConnection = errors.New("loop: broken connection")

	// ErrTraceOverrun is returned when the step ceiling is exceeded before
	// the loop closes.
	ErrTraceOverrun = errors.New("loop: step ceiling exceeded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("loop: invalid option supplied")
)

// Option configures tracing via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// trace starts.
type Option func(*Options)

// Options holds parameters and callbacks for tracing.
type Options struct {
	// MaxSteps bounds how many cells a single tracer may enter.
	MaxSteps int

	// OnStep is called by Trace for every loop cell in order, starting with
	// the start cell at step 0. Returning an error aborts the trace.
	OnStep func(step int, c pipegrid.Coordinate) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with MaxSteps = DefaultMaxSteps and a
// no-op OnStep hook.
func DefaultOptions() Options {
	return Options{
		MaxSteps: DefaultMaxSteps,
		OnStep:   func(int, pipegrid.Coordinate) error { return nil },
	}
}

// WithMaxSteps sets the step ceiling.
//
//	n > 0: at most n steps per tracer
//	n == 0: DefaultMaxSteps
//	n < 0: invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			o.MaxSteps = DefaultMaxSteps
		default:
			o.MaxSteps = n
		}
	}
}

// WithOnStep registers a callback invoked for each traced loop cell.
func WithOnStep(fn func(step int, c pipegrid.Coordinate) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

// Start is the resolved start cell: its position, the two sides it opens
// toward, the neighbors on those sides, and the connector shape it stands for.
type Start struct {
	At    pipegrid.Coordinate
	Exits [2]pipegrid.Direction
	Next  [2]pipegrid.Coordinate
	Shape pipegrid.Symbol
}

// Loop is the ordered cycle of cells through the start cell.
// Cells[0] is the start cell; the start cell is not repeated at the end.
type Loop struct {
	Cells []pipegrid.Coordinate
}

// Len returns the number of distinct cells on the loop.
func (l *Loop) Len() int { return len(l.Cells) }

// Farthest returns the number of steps from the start cell to the loop cell
// farthest from it in either direction: ceil(Len/2).
func (l *Loop) Farthest() int { return (len(l.Cells) + 1) / 2 }

// Set returns the loop cells as a membership set.
func (l *Loop) Set() map[pipegrid.Coordinate]struct{} {
	set := make(map[pipegrid.Coordinate]struct{}, len(l.Cells))
	for _, c := range l.Cells {
		set[c] = struct{}{}
	}
	return set
}
