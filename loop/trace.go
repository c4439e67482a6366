package loop

import (
	"fmt"

	"github.com/katalvlaran/pipemaze/pipegrid"
)

// Tracer walks the loop one cell at a time.
// Its state is the pair (previous cell, current cell); the start cell is the
// terminal marker.
type Tracer struct {
	g         *pipegrid.Grid
	start     pipegrid.Coordinate
	prev, cur pipegrid.Coordinate
	steps     int
	maxSteps  int
	closed    bool
}

// NewTracer returns a tracer positioned on s.Next[exit], having just left the
// start cell. exit must be 0 or 1.
func NewTracer(g *pipegrid.Grid, s Start, exit int, opts ...Option) (*Tracer, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if exit != 0 && exit != 1 {
		return nil, fmt.Errorf("%w: exit must be 0 or 1 (%d)", ErrOptionViolation, exit)
	}
	return newTracer(g, s, exit, o.MaxSteps), nil
}

func newTracer(g *pipegrid.Grid, s Start, exit, maxSteps int) *Tracer {
	return &Tracer{
		g:        g,
		start:    s.At,
		prev:     s.At,
		cur:      s.Next[exit],
		steps:    1,
		maxSteps: maxSteps,
	}
}

// Current returns the cell the tracer stands on.
func (t *Tracer) Current() pipegrid.Coordinate { return t.cur }

// Steps returns how many cells the tracer has entered, the current one included.
func (t *Tracer) Steps() int { return t.steps }

// Next advances one cell and returns it. When the step would re-enter the
// start cell, Next returns (start, true, nil) and the tracer stays closed;
// the start cell is not a new loop member.
//
// Returns ErrBrokenConnection if the current cell does not route the
// traveler onward or the next cell lies outside the grid, and
// ErrTraceOverrun once the step ceiling is exceeded.
func (t *Tracer) Next() (c pipegrid.Coordinate, done bool, err error) {
	if t.closed {
		return t.start, true, nil
	}
	in, _ := pipegrid.DirectionBetween(t.cur, t.prev)
	sym := t.g.At(t.cur)
	out, ok := pipegrid.Route(in, sym)
	if !ok {
		return pipegrid.Coordinate{}, false,
			fmt.Errorf("%w: %q at %v has no opening toward %v", ErrBrokenConnection, sym, t.cur, in)
	}
	next, ok := t.g.Neighbor(t.cur, out)
	if !ok {
		return pipegrid.Coordinate{}, false,
			fmt.Errorf("%w: %q at %v leads %v off the grid", ErrBrokenConnection, sym, t.cur, out)
	}
	if next == t.start {
		t.closed = true
		return t.start, true, nil
	}
	if t.steps >= t.maxSteps {
		return pipegrid.Coordinate{}, false,
			fmt.Errorf("%w: no closure within %d steps", ErrTraceOverrun, t.maxSteps)
	}
	t.steps++
	t.prev, t.cur = t.cur, next

	return next, false, nil
}

// Trace returns the full ordered loop, leaving the start cell through its
// first exit (in N, E, S, W order).
func Trace(g *pipegrid.Grid, opts ...Option) (*Loop, error) {
	return TraceFrom(g, 0, opts...)
}

// TraceFrom is like Trace but leaves the start cell through exit 0 or 1.
// The two loops agree on Cells[0] and are reverses of each other after it.
func TraceFrom(g *pipegrid.Grid, exit int, opts ...Option) (*Loop, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if exit != 0 && exit != 1 {
		return nil, fmt.Errorf("%w: exit must be 0 or 1 (%d)", ErrOptionViolation, exit)
	}
	s, err := ResolveStart(g)
	if err != nil {
		return nil, err
	}

	t := newTracer(g, s, exit, o.MaxSteps)
	cells := []pipegrid.Coordinate{s.At, t.Current()}
	if err = o.OnStep(0, s.At); err != nil {
		return nil, err
	}
	if err = o.OnStep(1, t.Current()); err != nil {
		return nil, err
	}
	for {
		c, done, err := t.Next()
		if err != nil {
			return nil, err
		}
		if done {
			break
		}
		if err = o.OnStep(len(cells), c); err != nil {
			return nil, err
		}
		cells = append(cells, c)
	}

	return &Loop{Cells: cells}, nil
}

// FarthestSteps returns the number of steps from the start cell to the loop
// cell farthest from it. Two tracers leave the start cell through opposite
// exits in lockstep; the step count at which they occupy the same cell (or
// pass each other on an odd-length loop) is ceil(L/2).
//
// Each tracer is bounded by the step ceiling independently.
func FarthestSteps(g *pipegrid.Grid, opts ...Option) (int, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}
	s, err := ResolveStart(g)
	if err != nil {
		return 0, err
	}

	a := newTracer(g, s, 0, o.MaxSteps)
	b := newTracer(g, s, 1, o.MaxSteps)
	for step := 1; ; step++ {
		if a.cur == b.cur || (a.cur == b.prev && b.cur == a.prev) {
			return step, nil
		}
		for _, t := range [2]*Tracer{a, b} {
			_, done, err := t.Next()
			if err != nil {
				return 0, err
			}
			if done {
				return 0, fmt.Errorf("%w: tracers returned to %v without meeting", ErrBrokenConnection, s.At)
			}
		}
	}
}
