package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-rules/internal/entity"
)

func TestPlaceholder(t *testing.T) {
	rules := Placeholder{}

	t.Run("Empty board has no winner and scores zero", func(t *testing.T) {
		// Given: an empty 3x3 board
		board := mustParse(t, ".../.../...")

		// When: querying the placeholder rules
		winner := rules.CheckWinner(board, nil)
		score := rules.EvaluateBoard(board, entity.PlayerX)

		// Then: there is no winner and the score is zero
		assert.Equal(t, entity.EmptyCell, winner)
		assert.Zero(t, score)
	})

	t.Run("Full top row is not reported as a win", func(t *testing.T) {
		// Given: X fills the top row, last move at (0,2)
		board := mustParse(t, "XXX/OO./...")
		lastMove := &entity.Move{Row: 0, Col: 2}

		// When: checking the winner
		winner := rules.CheckWinner(board, lastMove)

		// Then: the placeholder still reports no winner
		assert.Equal(t, entity.EmptyCell, winner)
	})

	t.Run("Out of range move is not winning and does not fail", func(t *testing.T) {
		// Given: an empty board
		board := mustParse(t, ".../.../...")

		// When: asking about (5,5)
		winning := rules.IsWinningMove(board, 5, 5, entity.PlayerX)

		// Then: the answer is false
		assert.False(t, winning)
	})

	t.Run("Calls are repeatable and do not mutate the board", func(t *testing.T) {
		// Given: a board in progress and a copy of it
		board := mustParse(t, "XO./.X./..O")
		before := board.Clone()

		for range 3 {
			// When: calling every operation again
			assert.Equal(t, entity.EmptyCell, rules.CheckWinner(board, &entity.Move{Row: 1, Col: 1}))
			assert.Zero(t, rules.EvaluateBoard(board, entity.PlayerO))
			assert.False(t, rules.IsWinningMove(board, 2, 0, entity.PlayerX))
		}

		// Then: the board is unchanged
		require.Equal(t, before, board)
	})
}

func mustParse(t *testing.T, notation string) entity.Board {
	t.Helper()

	board, err := entity.ParseBoard(notation)
	require.NoError(t, err)

	return board
}
