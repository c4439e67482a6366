// Package loop discovers the closed pipe loop that passes through the start
// cell of a pipegrid.Grid.
//
// What
//
//   - ResolveStart inspects the four neighbors of the start cell and infers
//     its hidden connector shape: a neighbor is accepted when its own shape
//     opens back toward the start cell. Exactly two must be accepted.
//   - Tracer is a (previous, current) state machine that advances one cell
//     per call using pipegrid.Route, and reports closure when the next cell
//     is the start cell.
//   - Trace returns the whole ordered loop; FarthestSteps walks two tracers in
//     opposite directions until they meet at the antipodal cell.
//
// Step ceiling
//
//	Every tracer is bounded by Options.MaxSteps (DefaultMaxSteps unless
//	overridden with WithMaxSteps). Exceeding it yields ErrTraceOverrun
//	instead of walking forever on malformed input.
//
// Errors
//
//   - ErrMalformedStart     start cell does not have exactly two compatible neighbors.
//   - ErrBrokenConnection   a step reached a cell that does not route the traveler,
//     or would leave the grid.
//   - ErrTraceOverrun       step ceiling exceeded before the loop closed.
//   - ErrOptionViolation    invalid Option (e.g. negative MaxSteps).
//   - Errors returned from an OnStep hook are propagated unchanged.
//
// Complexity (L = loop length)
//
//   - ResolveStart: O(1).
//   - Trace, FarthestSteps: O(L) time; Trace uses O(L) memory, FarthestSteps O(1).
//
// Usage
//
//	lp, err := loop.Trace(g, loop.WithMaxSteps(50_000))
//	if err != nil {
//		// errors.Is(err, loop.ErrBrokenConnection) ...
//	}
//	fmt.Println(lp.Len(), lp.Farthest())
package loop
