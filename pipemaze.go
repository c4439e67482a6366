package pipemaze

import (
	"github.com/katalvlaran/pipemaze/enclosure"
	"github.com/katalvlaran/pipemaze/loop"
	"github.com/katalvlaran/pipemaze/pipegrid"
)

// Answer holds the two measurements of a loop.
type Answer struct {
	// Farthest is the number of steps from the start cell to the loop cell
	// farthest from it: ceil(loop length / 2).
	Farthest int
	// Enclosed is the number of cells strictly inside the loop.
	Enclosed int
	// Length is the number of cells on the loop.
	Length int
}

// Solve traces the loop of g once and derives both answers from it.
// Options are passed to loop.Trace. Any loop error is returned unchanged
// and no partial Answer is produced.
func Solve(g *pipegrid.Grid, opts ...loop.Option) (Answer, error) {
	s, err := loop.ResolveStart(g)
	if err != nil {
		return Answer{}, err
	}
	lp, err := loop.Trace(g, opts...)
	if err != nil {
		return Answer{}, err
	}
	return Answer{
		Farthest: lp.Farthest(),
		Enclosed: enclosure.Classify(g, s, lp).Count(),
		Length:   lp.Len(),
	}, nil
}

// SolveText parses text and solves it.
func SolveText(text string, opts ...loop.Option) (Answer, error) {
	g, err := pipegrid.Parse(text)
	if err != nil {
		return Answer{}, err
	}
	return Solve(g, opts...)
}
