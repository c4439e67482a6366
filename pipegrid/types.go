// Package pipegrid defines core types and sentinel errors for connector grids.
package pipegrid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("pipegrid: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("pipegrid: all rows must have the same length")
	// ErrUnknownSymbol indicates a character outside the connector alphabet.
	ErrUnknownSymbol = errors.New("pipegrid: unknown symbol")
	// ErrNoStart indicates the grid holds no start cell.
	ErrNoStart = errors.New("pipegrid: no start cell")
	// ErrMultipleStarts indicates more than one start cell.
	ErrMultipleStarts = errors.New("pipegrid: more than one start cell")
)

// Coordinate addresses a cell by column X and row Y.
// It is comparable and may be used as a map key.
type Coordinate struct {
	X, Y int
}

// String renders the coordinate as "(x,y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is one of the four compass directions.
type Direction uint8

const (
	// North points to the previous row (Y-1).
	North Direction = iota
	// East points to the next column (X+1).
	East
	// South points to the next row (Y+1).
	South
	// West points to the previous column (X-1).
	West
)

// Directions lists every direction in N, E, S, W order.
// Start resolution and expansion iterate in this order, which keeps
// their results deterministic.
var Directions = [4]Direction{North, East, South, West}

// Opposite returns the inverse direction: North⇄South, East⇄West.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Offset returns the (dx, dy) unit step for d.
func (d Direction) Offset() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	default:
		return -1, 0
	}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// DirectionBetween reports the direction that leads from one cell to an
// orthogonally adjacent cell. ok is false if the cells are not adjacent.
func DirectionBetween(from, to Coordinate) (d Direction, ok bool) {
	switch dx, dy := to.X-from.X, to.Y-from.Y; {
	case dx == 0 && dy == -1:
		return North, true
	case dx == 1 && dy == 0:
		return East, true
	case dx == 0 && dy == 1:
		return South, true
	case dx == -1 && dy == 0:
		return West, true
	}
	return 0, false
}

// Grid is an immutable rectangular store of connector symbols with exactly
// one Start cell. Build it with New or Parse.
type Grid struct {
	width, height int
	cells         [][]Symbol
	start         Coordinate
}
