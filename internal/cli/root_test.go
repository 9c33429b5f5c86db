package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-rules/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rules/internal/entity"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	root := Root()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()

	return out.String(), err
}

func TestWinner(t *testing.T) {
	t.Run("Traditional", func(t *testing.T) {
		out, err := run(t, "winner", "XXX/OO./...")
		require.NoError(t, err)
		assert.Equal(t, "X\n", out)
	})

	t.Run("Misere with a last move hint", func(t *testing.T) {
		out, err := run(t, "winner", "--mode", "misere", "--last", "0,2", "XXX/OO./...")
		require.NoError(t, err)
		assert.Equal(t, "O\n", out)
	})

	t.Run("Placeholder never finds a winner", func(t *testing.T) {
		out, err := run(t, "winner", "-m", "placeholder", "XXX/OO./...")
		require.NoError(t, err)
		assert.Equal(t, "none\n", out)
	})

	t.Run("Bad hint", func(t *testing.T) {
		_, err := run(t, "winner", "--last", "0;2", "XXX/OO./...")
		require.Error(t, err)
	})

	t.Run("Unknown mode", func(t *testing.T) {
		_, err := run(t, "winner", "--mode", "numerical", "XXX/OO./...")
		require.ErrorIs(t, err, apperror.ErrUnknownMode)
	})
}

func TestEvaluate(t *testing.T) {
	out, err := run(t, "evaluate", "--mode", "feral", "--mark", "o", "XO./.X./...")
	require.NoError(t, err)
	assert.Equal(t, "-0.5\n", out)

	_, err = run(t, "evaluate", "--mark", "Z", "XO./.X./...")
	require.ErrorIs(t, err, entity.ErrInvalidMark)
}

func TestWinningMoves(t *testing.T) {
	out, err := run(t, "winning-moves", "XX./X.O/.OO")
	require.NoError(t, err)
	assert.Equal(t, "(0,2) (2,0)\n", out)

	out, err = run(t, "winning-moves", "--mark", "O", ".../.../...")
	require.NoError(t, err)
	assert.Equal(t, "none\n", out)

	_, err = run(t, "winning-moves", "XX/..")
	require.ErrorIs(t, err, entity.ErrMalformedBoard)
}
