package pipegrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRoute_Table checks every connector against every entry side.
func TestRoute_Table(t *testing.T) {
	cases := []struct {
		sym  Symbol
		in   Direction
		out  Direction
		pass bool
	}{
		{NorthSouth, North, South, true},
		{NorthSouth, South, North, true},
		{NorthSouth, East, 0, false},
		{NorthSouth, West, 0, false},
		{EastWest, East, West, true},
		{EastWest, West, East, true},
		{EastWest, North, 0, false},
		{EastWest, South, 0, false},
		{NorthEast, North, East, true},
		{NorthEast, East, North, true},
		{NorthEast, South, 0, false},
		{NorthEast, West, 0, false},
		{NorthWest, North, West, true},
		{NorthWest, West, North, true},
		{NorthWest, South, 0, false},
		{NorthWest, East, 0, false},
		{SouthWest, South, West, true},
		{SouthWest, West, South, true},
		{SouthWest, North, 0, false},
		{SouthWest, East, 0, false},
		{SouthEast, South, East, true},
		{SouthEast, East, South, true},
		{SouthEast, North, 0, false},
		{SouthEast, West, 0, false},
	}
	for _, tc := range cases {
		out, ok := Route(tc.in, tc.sym)
		require.Equal(t, tc.pass, ok, "Route(%v, %v)", tc.in, tc.sym)
		if ok {
			assert.Equal(t, tc.out, out, "Route(%v, %v)", tc.in, tc.sym)
		}
	}
}

// TestRoute_NotConnectors verifies Empty and Start never route.
func TestRoute_NotConnectors(t *testing.T) {
	for _, d := range Directions {
		_, ok := Route(d, Empty)
		assert.False(t, ok)
		_, ok = Route(d, Start)
		assert.False(t, ok)
	}
}

// TestRoute_Reversible: leaving through out and coming back through out
// must lead out through the original entry side.
func TestRoute_Reversible(t *testing.T) {
	for s := range openings {
		for _, in := range Directions {
			out, ok := Route(in, s)
			if !ok {
				continue
			}
			back, ok := Route(out, s)
			require.True(t, ok)
			assert.Equal(t, in, back, "symbol %v", s)
		}
	}
}

func TestSymbolFor(t *testing.T) {
	for s, sides := range openings {
		got, ok := SymbolFor(sides[1], sides[0])
		require.True(t, ok)
		assert.Equal(t, s, got)
	}
	_, ok := SymbolFor(North, North)
	assert.False(t, ok)
}

func TestParseSymbol(t *testing.T) {
	for _, r := range ".|-LJ7FS" {
		s, err := ParseSymbol(r)
		require.NoError(t, err)
		assert.Equal(t, string(r), s.String())
	}
	for _, r := range []rune{'x', 'I', ' ', 'Į', '┌'} {
		_, err := ParseSymbol(r)
		assert.ErrorIs(t, err, ErrUnknownSymbol, "rune %q", r)
	}
}

func TestDirection_Opposite(t *testing.T) {
	assert.Equal(t, South, North.Opposite())
	assert.Equal(t, North, South.Opposite())
	assert.Equal(t, West, East.Opposite())
	assert.Equal(t, East, West.Opposite())
	for _, d := range Directions {
		dx, dy := d.Offset()
		ox, oy := d.Opposite().Offset()
		assert.Equal(t, 0, dx+ox)
		assert.Equal(t, 0, dy+oy)
	}
}

func TestDirectionBetween(t *testing.T) {
	c := Coordinate{X: 3, Y: 3}
	for _, d := range Directions {
		dx, dy := d.Offset()
		got, ok := DirectionBetween(c, Coordinate{X: c.X + dx, Y: c.Y + dy})
		require.True(t, ok)
		assert.Equal(t, d, got)
	}
	_, ok := DirectionBetween(c, c)
	assert.False(t, ok)
	_, ok = DirectionBetween(c, Coordinate{X: 4, Y: 4})
	assert.False(t, ok)
}
