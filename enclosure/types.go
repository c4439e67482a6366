// Package enclosure defines the expanded grid and classification types.
package enclosure

import (
	"github.com/katalvlaran/pipemaze/pipegrid"
)

// Scale is the side length of the block each original cell expands into.
const Scale = 3

// Region classifies an original grid cell relative to the loop.
type Region uint8

const (
	// Outside cells are reachable from the grid border without crossing the loop.
	Outside Region = iota
	// Inside cells are strictly enclosed by the loop.
	Inside
	// OnLoop cells are loop members.
	OnLoop
)

func (r Region) String() string {
	switch r {
	case Outside:
		return "O"
	case Inside:
		return "I"
	default:
		return "loop"
	}
}

// ExpandedGrid is the 3× upscaled drawing of a loop. It is read-only once
// Expand returns. Width and Height are three times the original dimensions.
type ExpandedGrid struct {
	Width, Height int
	cells         []pipegrid.Symbol
}

// Classification is the per-cell Region of an original grid.
type Classification struct {
	grid    *pipegrid.Grid
	regions []Region
	inside  int
}
