// Package enclosure counts the grid cells enclosed by a traced pipe loop.
//
// What:
//
//   - Expand redraws every loop cell as a 3×3 block: the cell's symbol in
//     the center and a stroke on each side the shape opens toward. Cells off
//     the loop, decoy pipes included, become empty blocks.
//   - Classify floods the expanded grid from its border over non-loop cells
//     and folds the result back: a cell is Inside when its block center was
//     not reached, Outside when it was, OnLoop when it is a loop member.
//   - CountEnclosed runs start resolution, tracing and classification and
//     returns the number of Inside cells.
//
// Why:
//
//	A loop is one cell thick, so two pipes can touch side by side without
//	being connected. Flooding the original grid cannot pass between them
//	even though the gap is topologically outside. In the expanded grid the
//	gap is an empty row or column of cells the flood walks through freely.
//
// Complexity:
//
//   - Expand:   O(W×H) time and memory (9×W×H cells).
//   - Classify: O(W×H) time and memory.
//
// Errors:
//
//	CountEnclosed propagates the loop package errors (ErrMalformedStart,
//	ErrBrokenConnection, ErrTraceOverrun, ErrOptionViolation) unchanged.
package enclosure
