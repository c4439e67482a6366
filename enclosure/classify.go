package enclosure

import (
	"strings"

	"github.com/katalvlaran/pipemaze/loop"
	"github.com/katalvlaran/pipemaze/pipegrid"
)

// Classify assigns a Region to every cell of g relative to the loop lp.
//
// Behavior:
//  1. Expand the loop 3× (see Expand).
//  2. Multi-source BFS from every non-loop border cell of the expanded grid,
//     4-connected, never entering a loop cell; reached cells are outside.
//  3. Fold back: a loop member is OnLoop; any other cell is Outside when its
//     block center was reached and Inside otherwise.
//
// Complexity: O(W×H) time and memory.
func Classify(g *pipegrid.Grid, s loop.Start, lp *loop.Loop) *Classification {
	eg := Expand(g, s, lp)
	reached := eg.floodFromBorder()
	members := lp.Set()

	cl := &Classification{
		grid:    g,
		regions: make([]Region, g.Width()*g.Height()),
	}
	g.Each(func(c pipegrid.Coordinate, _ pipegrid.Symbol) {
		i := c.Y*g.Width() + c.X
		switch _, on := members[c]; {
		case on:
			cl.regions[i] = OnLoop
		case reached[eg.index(c.X*Scale+1, c.Y*Scale+1)]:
			cl.regions[i] = Outside
		default:
			cl.regions[i] = Inside
			cl.inside++
		}
	})

	return cl
}

// CountEnclosed resolves the start cell, traces the loop and returns the
// number of cells it encloses. Options are passed to loop.Trace.
func CountEnclosed(g *pipegrid.Grid, opts ...loop.Option) (int, error) {
	s, err := loop.ResolveStart(g)
	if err != nil {
		return 0, err
	}
	lp, err := loop.Trace(g, opts...)
	if err != nil {
		return 0, err
	}
	return Classify(g, s, lp).Count(), nil
}

// floodFromBorder marks every non-loop cell reachable from the border.
// Returns a row-major reached flag per expanded cell.
func (eg *ExpandedGrid) floodFromBorder() []bool {
	reached := make([]bool, len(eg.cells))
	queue := make([]int, 0, 2*(eg.Width+eg.Height))
	visit := func(x, y int) {
		if !eg.InBounds(x, y) {
			return
		}
		i := eg.index(x, y)
		if reached[i] || eg.cells[i] != pipegrid.Empty {
			return
		}
		reached[i] = true
		queue = append(queue, i)
	}

	for x := 0; x < eg.Width; x++ {
		visit(x, 0)
		visit(x, eg.Height-1)
	}
	for y := 0; y < eg.Height; y++ {
		visit(0, y)
		visit(eg.Width-1, y)
	}
	for qi := 0; qi < len(queue); qi++ {
		ux, uy := eg.coordinate(queue[qi])
		for _, d := range pipegrid.Directions {
			dx, dy := d.Offset()
			visit(ux+dx, uy+dy)
		}
	}

	return reached
}

// Count returns the number of Inside cells.
func (cl *Classification) Count() int { return cl.inside }

// At returns the region of c. Cells outside the grid are Outside.
func (cl *Classification) At(c pipegrid.Coordinate) Region {
	if !cl.grid.InBounds(c.X, c.Y) {
		return Outside
	}
	return cl.regions[c.Y*cl.grid.Width()+c.X]
}

// Inside returns the enclosed cells in row-major order.
func (cl *Classification) Inside() []pipegrid.Coordinate {
	out := make([]pipegrid.Coordinate, 0, cl.inside)
	for i, r := range cl.regions {
		if r == Inside {
			out = append(out, pipegrid.Coordinate{X: i % cl.grid.Width(), Y: i / cl.grid.Width()})
		}
	}
	return out
}

// Overlay renders the grid with loop cells as their symbols and every other
// cell as 'I' (Inside) or 'O' (Outside).
func (cl *Classification) Overlay() string {
	var b strings.Builder
	w := cl.grid.Width()
	b.Grow((w + 1) * cl.grid.Height())
	cl.grid.Each(func(c pipegrid.Coordinate, s pipegrid.Symbol) {
		if c.X == 0 && c.Y > 0 {
			b.WriteByte('\n')
		}
		switch r := cl.regions[c.Y*w+c.X]; r {
		case OnLoop:
			b.WriteByte(byte(s))
		default:
			b.WriteString(r.String())
		}
	})
	return b.String()
}
