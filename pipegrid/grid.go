package pipegrid

import (
	"fmt"
	"strings"
)

// New constructs a Grid from a non-empty, rectangular 2D slice indexed
// rows[y][x]. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrUnknownSymbol, ErrNoStart or
// ErrMultipleStarts.
// Complexity: O(W×H) time and memory.
func New(rows [][]Symbol) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	cells := make([][]Symbol, h)
	var (
		start  Coordinate
		starts int
	)
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		cells[y] = make([]Symbol, w)
		for x, s := range row {
			if _, err := ParseSymbol(rune(s)); err != nil {
				return nil, fmt.Errorf("%w at (%d,%d)", err, x, y)
			}
			if s == Start {
				start = Coordinate{X: x, Y: y}
				starts++
			}
			cells[y][x] = s
		}
	}
	switch {
	case starts == 0:
		return nil, ErrNoStart
	case starts > 1:
		return nil, fmt.Errorf("%w: found %d", ErrMultipleStarts, starts)
	}

	return &Grid{width: w, height: h, cells: cells, start: start}, nil
}

// Parse builds a Grid from its text form: one row per line, one symbol per
// character. Surrounding whitespace on each line is ignored, as are blank
// lines, so indented literals and trailing newlines parse cleanly.
func Parse(text string) (*Grid, error) {
	var rows [][]Symbol
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row := make([]Symbol, 0, len(line))
		for x, r := range []rune(line) {
			s, err := ParseSymbol(r)
			if err != nil {
				return nil, fmt.Errorf("%w at (%d,%d)", err, x, len(rows))
			}
			row = append(row, s)
		}
		rows = append(rows, row)
	}

	return New(rows)
}

// MustParse is like Parse but panics on error. Intended for fixtures.
func MustParse(text string) *Grid {
	g, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Start returns the coordinate of the start cell.
func (g *Grid) Start() Coordinate { return g.start }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the symbol at c, or Empty if c is outside the grid.
func (g *Grid) At(c Coordinate) Symbol {
	if !g.InBounds(c.X, c.Y) {
		return Empty
	}
	return g.cells[c.Y][c.X]
}

// Neighbor returns the cell adjacent to c in direction d.
// ok is false when that cell would lie outside the grid.
func (g *Grid) Neighbor(c Coordinate, d Direction) (Coordinate, bool) {
	dx, dy := d.Offset()
	n := Coordinate{X: c.X + dx, Y: c.Y + dy}
	if !g.InBounds(n.X, n.Y) {
		return Coordinate{}, false
	}
	return n, true
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(c Coordinate, s Symbol)) {
	for y, row := range g.cells {
		for x, s := range row {
			fn(Coordinate{X: x, Y: y}, s)
		}
	}
}

// String renders the grid in its text form, rows separated by '\n'.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for y, row := range g.cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, s := range row {
			b.WriteByte(byte(s))
		}
	}
	return b.String()
}
