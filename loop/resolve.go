package loop

import (
	"fmt"

	"github.com/katalvlaran/pipemaze/pipegrid"
)

// ResolveStart infers the hidden shape of the start cell.
//
// For each direction N, E, S, W the neighbor in that direction (if inside the
// grid) is accepted when its own symbol opens toward the opposite direction,
// i.e. back toward the start cell. Exactly two neighbors must be accepted;
// otherwise ErrMalformedStart is returned.
//
// Exits and Next are ordered N, E, S, W.
func ResolveStart(g *pipegrid.Grid) (Start, error) {
	s := Start{At: g.Start()}
	found := 0
	for _, d := range pipegrid.Directions {
		n, ok := g.Neighbor(s.At, d)
		if !ok || !g.At(n).Opens(d.Opposite()) {
			continue
		}
		if found < 2 {
			s.Exits[found] = d
			s.Next[found] = n
		}
		found++
	}
	if found != 2 {
		return Start{}, fmt.Errorf("%w: %v has %d", ErrMalformedStart, s.At, found)
	}
	s.Shape, _ = pipegrid.SymbolFor(s.Exits[0], s.Exits[1])

	return s, nil
}
