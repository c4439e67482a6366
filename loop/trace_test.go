package loop_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipemaze/internal/fixtures"
	"github.com/katalvlaran/pipemaze/loop"
	"github.com/katalvlaran/pipemaze/pipegrid"
)

// TestTrace_Fixtures checks loop length, distinctness and farthest point on
// every hand-checked grid.
func TestTrace_Fixtures(t *testing.T) {
	for _, fx := range fixtures.All {
		t.Run(fx.Name, func(t *testing.T) {
			g := pipegrid.MustParse(fx.Text)
			lp, err := loop.Trace(g)
			require.NoError(t, err)

			assert.Equal(t, fx.Length, lp.Len())
			assert.Len(t, lp.Set(), lp.Len(), "loop must not revisit a cell")
			assert.Equal(t, g.Start(), lp.Cells[0])
			assert.Equal(t, fx.Farthest, lp.Farthest())

			// consecutive cells, including the wrap-around, are adjacent
			for i, c := range lp.Cells {
				next := lp.Cells[(i+1)%lp.Len()]
				_, ok := pipegrid.DirectionBetween(c, next)
				assert.True(t, ok, "%v and %v are not adjacent", c, next)
			}
		})
	}
}

// TestTraceFrom_Reverse: leaving through the other exit walks the same loop
// backwards.
func TestTraceFrom_Reverse(t *testing.T) {
	for _, fx := range fixtures.All {
		t.Run(fx.Name, func(t *testing.T) {
			g := pipegrid.MustParse(fx.Text)
			a, err := loop.TraceFrom(g, 0)
			require.NoError(t, err)
			b, err := loop.TraceFrom(g, 1)
			require.NoError(t, err)

			require.Equal(t, a.Len(), b.Len())
			assert.Equal(t, a.Cells[0], b.Cells[0])
			rev := slices.Clone(b.Cells[1:])
			slices.Reverse(rev)
			assert.Equal(t, a.Cells[1:], rev)
		})
	}
}

// TestFarthestSteps_MatchesLoop compares the two-tracer walk with ceil(L/2).
func TestFarthestSteps_MatchesLoop(t *testing.T) {
	for _, fx := range fixtures.All {
		t.Run(fx.Name, func(t *testing.T) {
			g := pipegrid.MustParse(fx.Text)
			steps, err := loop.FarthestSteps(g)
			require.NoError(t, err)
			assert.Equal(t, fx.Farthest, steps)

			lp, err := loop.Trace(g)
			require.NoError(t, err)
			assert.Equal(t, lp.Farthest(), steps)
		})
	}
}

// TestLoop_FarthestRounding covers odd and even lengths.
func TestLoop_FarthestRounding(t *testing.T) {
	cases := []struct{ n, want int }{{4, 2}, {7, 4}, {8, 4}, {9, 5}, {1, 1}}
	for _, tc := range cases {
		lp := &loop.Loop{Cells: make([]pipegrid.Coordinate, tc.n)}
		assert.Equal(t, tc.want, lp.Farthest(), "len %d", tc.n)
	}
}

//----------------------------------------------------------------------------//
// Failures
//----------------------------------------------------------------------------//

// TestTrace_BrokenConnection covers a dead end and a pipe leaving the grid.
func TestTrace_BrokenConnection(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"DeadEnd", ".....\n.S-7.\n.|...\n.L-J."},
		{"OffGrid", "S-\n|."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := pipegrid.MustParse(tc.text)
			_, err := loop.Trace(g)
			assert.ErrorIs(t, err, loop.ErrBrokenConnection)
			_, err = loop.FarthestSteps(g)
			assert.ErrorIs(t, err, loop.ErrBrokenConnection)
		})
	}
}

// TestTrace_StepCeiling checks the exact overrun boundary on an 8-cell loop:
// a tracer enters 7 cells before closing.
func TestTrace_StepCeiling(t *testing.T) {
	g := pipegrid.MustParse(fixtures.Square.Text)

	lp, err := loop.Trace(g, loop.WithMaxSteps(7))
	require.NoError(t, err)
	assert.Equal(t, 8, lp.Len())

	_, err = loop.Trace(g, loop.WithMaxSteps(6))
	assert.ErrorIs(t, err, loop.ErrTraceOverrun)

	_, err = loop.FarthestSteps(g, loop.WithMaxSteps(3))
	assert.ErrorIs(t, err, loop.ErrTraceOverrun)

	steps, err := loop.FarthestSteps(g, loop.WithMaxSteps(4))
	require.NoError(t, err)
	assert.Equal(t, 4, steps)
}

// TestOptions_Violations covers invalid options and exits.
func TestOptions_Violations(t *testing.T) {
	g := pipegrid.MustParse(fixtures.Square.Text)

	_, err := loop.Trace(g, loop.WithMaxSteps(-1))
	assert.ErrorIs(t, err, loop.ErrOptionViolation)
	_, err = loop.FarthestSteps(g, loop.WithMaxSteps(-5))
	assert.ErrorIs(t, err, loop.ErrOptionViolation)
	_, err = loop.TraceFrom(g, 2)
	assert.ErrorIs(t, err, loop.ErrOptionViolation)

	// zero restores the default ceiling
	_, err = loop.Trace(g, loop.WithMaxSteps(0))
	assert.NoError(t, err)
}

// TestTrace_OnStep verifies the hook sees every cell in order and can abort.
func TestTrace_OnStep(t *testing.T) {
	g := pipegrid.MustParse(fixtures.Winding.Text)

	var seen []pipegrid.Coordinate
	lp, err := loop.Trace(g, loop.WithOnStep(func(step int, c pipegrid.Coordinate) error {
		assert.Equal(t, len(seen), step)
		seen = append(seen, c)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, lp.Cells, seen)

	stop := errors.New("stop")
	_, err = loop.Trace(g, loop.WithOnStep(func(step int, _ pipegrid.Coordinate) error {
		if step == 5 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
}

// TestTracer_Manual drives the state machine by hand.
func TestTracer_Manual(t *testing.T) {
	g := pipegrid.MustParse(fixtures.Square.Text)
	s, err := loop.ResolveStart(g)
	require.NoError(t, err)

	tr, err := loop.NewTracer(g, s, 0)
	require.NoError(t, err)
	assert.Equal(t, pipegrid.Coordinate{X: 2, Y: 1}, tr.Current())

	want := []pipegrid.Coordinate{{X: 3, Y: 1}, {X: 3, Y: 2}, {X: 3, Y: 3}, {X: 2, Y: 3}, {X: 1, Y: 3}, {X: 1, Y: 2}}
	for _, w := range want {
		c, done, err := tr.Next()
		require.NoError(t, err)
		require.False(t, done)
		assert.Equal(t, w, c)
	}
	c, done, err := tr.Next()
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, s.At, c)
	assert.Equal(t, 7, tr.Steps())

	// stays closed
	_, done, err = tr.Next()
	assert.NoError(t, err)
	assert.True(t, done)

	_, err = loop.NewTracer(g, s, -1)
	assert.ErrorIs(t, err, loop.ErrOptionViolation)
}
