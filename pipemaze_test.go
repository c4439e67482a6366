package pipemaze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipemaze"
	"github.com/katalvlaran/pipemaze/internal/fixtures"
	"github.com/katalvlaran/pipemaze/loop"
	"github.com/katalvlaran/pipemaze/pipegrid"
)

// TestSolve_Fixtures checks both answers on every hand-checked grid and that
// the lockstep walk agrees with the traced length.
func TestSolve_Fixtures(t *testing.T) {
	for _, fx := range fixtures.All {
		t.Run(fx.Name, func(t *testing.T) {
			ans, err := pipemaze.SolveText(fx.Text)
			require.NoError(t, err)
			assert.Equal(t, pipemaze.Answer{Farthest: fx.Farthest, Enclosed: fx.Enclosed, Length: fx.Length}, ans)

			steps, err := loop.FarthestSteps(pipegrid.MustParse(fx.Text))
			require.NoError(t, err)
			assert.Equal(t, ans.Farthest, steps)
		})
	}
}

// TestSolve_ScenarioA: a minimal 8-cell loop in a 5×5 grid with no interior.
func TestSolve_ScenarioA(t *testing.T) {
	ans, err := pipemaze.SolveText(fixtures.Rectangle.Text)
	require.NoError(t, err)
	assert.Equal(t, 4, ans.Farthest)
	assert.Equal(t, 0, ans.Enclosed)
}

// TestSolve_Errors ensures every failure surfaces as its sentinel and no
// answer is produced.
func TestSolve_Errors(t *testing.T) {
	cases := []struct {
		name string
		text string
		opts []loop.Option
		err  error
	}{
		{"EmptyGrid", "\n\n", nil, pipegrid.ErrEmptyGrid},
		{"MalformedStart", ".|.\n-S-\n...", nil, loop.ErrMalformedStart},
		{"BrokenConnection", "S-\n|.", nil, loop.ErrBrokenConnection},
		{"TraceOverrun", fixtures.Junk.Text, []loop.Option{loop.WithMaxSteps(10)}, loop.ErrTraceOverrun},
		{"OptionViolation", fixtures.Square.Text, []loop.Option{loop.WithMaxSteps(-1)}, loop.ErrOptionViolation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ans, err := pipemaze.SolveText(tc.text, tc.opts...)
			assert.ErrorIs(t, err, tc.err)
			assert.Zero(t, ans)
		})
	}
}
