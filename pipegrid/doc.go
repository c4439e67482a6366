// Package pipegrid models a rectangular grid of pipe connector symbols.
//
// What:
//
//   - Symbol enumerates the connector shapes: empty ground, two straight
//     pipes, four corner bends and the distinguished start cell.
//   - Direction is one of the four compass directions with Opposite and Offset.
//   - Route is the connectivity table: given the side a traveler entered a
//     cell through, it names the side the traveler leaves through.
//   - Grid is an immutable, bounds-checked store of symbols built either from
//     a [][]Symbol (New) or from its text form (Parse).
//
// Coordinates are (X = column, Y = row) with the origin in the top-left
// corner. Neighbor lookups that would leave the grid report ok=false rather
// than producing a negative or out-of-range coordinate.
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrUnknownSymbol: a character outside the connector alphabet.
//   - ErrNoStart / ErrMultipleStarts: the grid must hold exactly one 'S'.
//
// Complexity:
//
//   - New, Parse: O(W×H) time and memory.
//   - At, Neighbor, Route: O(1).
package pipegrid
