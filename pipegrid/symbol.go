package pipegrid

import "fmt"

// Symbol is a single grid cell. Its value is the character used in the
// text form of the grid.
type Symbol byte

// Connector shapes, named by the sides they open toward.
const (
	Empty      Symbol = '.'
	NorthSouth Symbol = '|'
	EastWest   Symbol = '-'
	NorthEast  Symbol = 'L'
	NorthWest  Symbol = 'J'
	SouthWest  Symbol = '7'
	SouthEast  Symbol = 'F'
	// Start marks the cell the loop passes through whose shape is unknown
	// until its neighbors have been inspected.
	Start Symbol = 'S'
)

// openings holds the two sides of every connector shape.
var openings = map[Symbol][2]Direction{
	NorthSouth: {North, South},
	EastWest:   {East, West},
	NorthEast:  {North, East},
	NorthWest:  {North, West},
	SouthWest:  {South, West},
	SouthEast:  {East, South},
}

// ParseSymbol maps a character to its Symbol.
// Returns ErrUnknownSymbol for characters outside ".|-LJ7FS".
func ParseSymbol(r rune) (Symbol, error) {
	if r <= 0x7f {
		switch s := Symbol(r); s {
		case Empty, NorthSouth, EastWest, NorthEast, NorthWest, SouthWest, SouthEast, Start:
			return s, nil
		}
	}
	return Empty, fmt.Errorf("%w: %q", ErrUnknownSymbol, r)
}

// Openings returns the two sides s connects. ok is false for Empty and
// Start, whose shape is not fixed.
func (s Symbol) Openings() (sides [2]Direction, ok bool) {
	sides, ok = openings[s]
	return sides, ok
}

// Opens reports whether s has an opening toward d.
func (s Symbol) Opens(d Direction) bool {
	sides, ok := openings[s]
	return ok && (sides[0] == d || sides[1] == d)
}

// SymbolFor returns the connector that opens toward exactly a and b.
// ok is false when a == b.
func SymbolFor(a, b Direction) (Symbol, bool) {
	for s, sides := range openings {
		if (sides[0] == a && sides[1] == b) || (sides[0] == b && sides[1] == a) {
			return s, true
		}
	}
	return Empty, false
}

// Route is the connectivity table. in is the side of the cell the traveler
// entered through; Route returns the side it must leave through.
// ok is false if s does not open toward in, which includes Empty and Start.
//
// Complexity: O(1).
func Route(in Direction, s Symbol) (out Direction, ok bool) {
	sides, found := openings[s]
	switch {
	case !found:
		return 0, false
	case sides[0] == in:
		return sides[1], true
	case sides[1] == in:
		return sides[0], true
	}
	return 0, false
}

func (s Symbol) String() string {
	return string(rune(s))
}
