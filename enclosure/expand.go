package enclosure

import (
	"strings"

	"github.com/katalvlaran/pipemaze/loop"
	"github.com/katalvlaran/pipemaze/pipegrid"
)

// Expand draws the loop lp of grid g into a fresh grid three times larger in
// each dimension.
//
// Behavior, for each loop cell (x,y) with block origin (3x, 3y):
//  1. The center (3x+1, 3y+1) holds the cell's own symbol; the start cell
//     keeps its Start mark.
//  2. For each side d the cell's shape opens toward, the block's edge-middle
//     cell in direction d holds a stroke: EastWest for E/W, NorthSouth for N/S.
//     The start cell's sides come from s.Shape, drawn by the same code path.
//
// Every other cell is Empty. Strokes of adjacent connected cells meet across
// the block boundary; pipes that merely touch stay one empty cell apart.
//
// Complexity: O(W×H) time and memory.
func Expand(g *pipegrid.Grid, s loop.Start, lp *loop.Loop) *ExpandedGrid {
	eg := &ExpandedGrid{
		Width:  g.Width() * Scale,
		Height: g.Height() * Scale,
	}
	eg.cells = make([]pipegrid.Symbol, eg.Width*eg.Height)
	for i := range eg.cells {
		eg.cells[i] = pipegrid.Empty
	}

	for _, c := range lp.Cells {
		shape := g.At(c)
		if c == s.At {
			shape = s.Shape
		}
		sides, ok := shape.Openings()
		if !ok {
			continue
		}
		cx, cy := c.X*Scale+1, c.Y*Scale+1
		eg.cells[eg.index(cx, cy)] = g.At(c)
		for _, d := range sides {
			dx, dy := d.Offset()
			stroke := pipegrid.NorthSouth
			if dy == 0 {
				stroke = pipegrid.EastWest
			}
			eg.cells[eg.index(cx+dx, cy+dy)] = stroke
		}
	}

	return eg
}

// InBounds reports whether (x,y) lies within the expanded grid.
func (eg *ExpandedGrid) InBounds(x, y int) bool {
	return x >= 0 && x < eg.Width && y >= 0 && y < eg.Height
}

// At returns the symbol at (x,y), or Empty outside the grid.
func (eg *ExpandedGrid) At(x, y int) pipegrid.Symbol {
	if !eg.InBounds(x, y) {
		return pipegrid.Empty
	}
	return eg.cells[eg.index(x, y)]
}

// IsLoop reports whether (x,y) is a center or stroke cell of the loop.
func (eg *ExpandedGrid) IsLoop(x, y int) bool {
	return eg.At(x, y) != pipegrid.Empty
}

// LoopCells returns the number of expanded cells occupied by the loop:
// three per original loop cell.
func (eg *ExpandedGrid) LoopCells() int {
	n := 0
	for _, s := range eg.cells {
		if s != pipegrid.Empty {
			n++
		}
	}
	return n
}

// String renders the expanded grid in text form, rows separated by '\n'.
func (eg *ExpandedGrid) String() string {
	var b strings.Builder
	b.Grow((eg.Width + 1) * eg.Height)
	for y := 0; y < eg.Height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < eg.Width; x++ {
			b.WriteByte(byte(eg.cells[eg.index(x, y)]))
		}
	}
	return b.String()
}

// index maps (x,y) to a row-major index: y*Width + x.
func (eg *ExpandedGrid) index(x, y int) int {
	return y*eg.Width + x
}

// coordinate converts a row-major index back to (x,y).
func (eg *ExpandedGrid) coordinate(idx int) (x, y int) {
	return idx % eg.Width, idx / eg.Width
}
