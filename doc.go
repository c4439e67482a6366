// Package pipemaze finds the closed pipe loop in a grid of connector symbols
// and measures it: how far its farthest cell is from the start, and how many
// cells it encloses.
//
// What is pipemaze?
//
//	A small, dependency-light library that brings together:
//		• pipegrid/  — connector symbols, directions, the routing table and an immutable Grid
//		• loop/      — start-shape inference, the step-by-step loop tracer, farthest point
//		• enclosure/ — 3× expansion and border flood fill to classify enclosed cells
//		• cmd/pipemaze — command-line front-end reading a grid file
//
// Quick ASCII example:
//
//	.....        the loop S-7|J-L| encloses one cell;
//	.S-7.        its farthest cell is 4 steps from S.
//	.|.|.
//	.L-J.
//	.....
//
// Solve returns both answers in one call:
//
//	g, err := pipegrid.Parse(text)
//	ans, err := pipemaze.Solve(g, loop.WithMaxSteps(100_000))
//	fmt.Println(ans.Farthest, ans.Enclosed)
package pipemaze
