// Package fixtures holds hand-checked grids shared by the package tests.
package fixtures

// Fixture is a grid in text form with its known answers.
type Fixture struct {
	Name     string
	Text     string
	Length   int
	Farthest int
	Enclosed int
}

// Rectangle is a 2×4 ring in a 5×5 grid: no interior at all.
var Rectangle = Fixture{
	Name: "rectangle",
	Text: `
.....
.S--7
.L--J
.....
.....
`,
	Length:   8,
	Farthest: 4,
	Enclosed: 0,
}

// Square is the smallest loop with an interior cell.
var Square = Fixture{
	Name: "square",
	Text: `
.....
.S-7.
.|.|.
.L-J.
.....
`,
	Length:   8,
	Farthest: 4,
	Enclosed: 1,
}

// SquareDecoys is Square with every empty cell replaced by unconnected pipes.
var SquareDecoys = Fixture{
	Name: "square with decoys",
	Text: `
-L|F7
7S-7|
L|7||
-L-J|
L|-JF
`,
	Length:   8,
	Farthest: 4,
	Enclosed: 1,
}

// Winding is a 16-cell loop entering the start cell from the east and south.
var Winding = Fixture{
	Name: "winding",
	Text: `
..F7.
.FJ|.
SJ.L7
|F--J
LJ...
`,
	Length:   16,
	Farthest: 8,
	Enclosed: 1,
}

// WindingDecoys is Winding with decoys around it.
var WindingDecoys = Fixture{
	Name: "winding with decoys",
	Text: `
7-F7-
.FJ|7
SJLL7
|F--J
LJ.LJ
`,
	Length:   16,
	Farthest: 8,
	Enclosed: 1,
}

// Squeeze is the 10×9 grid whose outer region reaches the middle only by
// passing between pipes that touch without connecting.
var Squeeze = Fixture{
	Name: "squeeze",
	Text: `
..........
.S------7.
.|F----7|.
.||....||.
.||....||.
.|L-7F-J|.
.|..||..|.
.L--JL--J.
..........
`,
	Length:   44,
	Farthest: 22,
	Enclosed: 4,
}

// Ring is the 11×9 variant of Squeeze with a wider gap.
var Ring = Fixture{
	Name: "ring",
	Text: `
...........
.S-------7.
.|F-----7|.
.||.....||.
.||.....||.
.|L-7.F-J|.
.|..|.|..|.
.L--J.L--J.
...........
`,
	Length:   46,
	Farthest: 23,
	Enclosed: 4,
}

// Scattered has several pockets, some squeezed, some open.
var Scattered = Fixture{
	Name: "scattered",
	Text: `
.F----7F7F7F7F-7....
.|F--7||||||||FJ....
.||.FJ||||||||L7....
FJL7L7LJLJ||LJ.L-7..
L--J.L7...LJS7F-7L7.
....F-J..F7FJ|L7L7L7
....L7.F7||L7|.L7L7|
.....|FJLJ|FJ|F7|.LJ
....FJL-7.||.||||...
....L---J.LJ.LJLJ...
`,
	Length:   140,
	Farthest: 70,
	Enclosed: 8,
}

// Junk is filled with decoy pipes everywhere the loop is not.
var Junk = Fixture{
	Name: "junk",
	Text: `
FF7FSF7F7F7F7F7F---7
L|LJ||||||||||||F--J
FL-7LJLJ||||||LJL-77
F--JF--7||LJLJ7F7FJ-
L---JF-JLJ.||-FJLJJ7
|F|F-JF---7F7-L7L|7|
|FFJF7L7F-JF7|JL---7
7-L-JL7||F7|L7F-7F7|
L.L7LFJ|||||FJL7||LJ
L7JLJL-JLJLJL--JLJ.L
`,
	Length:   160,
	Farthest: 80,
	Enclosed: 10,
}

// All lists every fixture.
var All = []Fixture{Rectangle, Square, SquareDecoys, Winding, WindingDecoys, Squeeze, Ring, Scattered, Junk}
