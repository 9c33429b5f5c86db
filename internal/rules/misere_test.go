package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/tictactoe-rules/internal/entity"
)

func TestMisere(t *testing.T) {
	rules := Misere{}

	t.Run("Completing a line loses", func(t *testing.T) {
		// Given: X filled the top row
		board := mustParse(t, "XXX/OO./...")

		// When: checking the winner
		winner := rules.CheckWinner(board, &entity.Move{Row: 0, Col: 2})

		// Then: O wins
		assert.Equal(t, entity.PlayerO, winner)
	})

	t.Run("Last move does not change the winner", func(t *testing.T) {
		// Given: both players completed a line
		board := mustParse(t, "XXX/.../OOO")

		// When: checking with and without the last move on O's row
		full := rules.CheckWinner(board, nil)
		hinted := rules.CheckWinner(board, &entity.Move{Row: 2, Col: 0})

		// Then: both answers agree
		assert.Equal(t, entity.PlayerO, full)
		assert.Equal(t, full, hinted)
	})

	t.Run("No line, no winner", func(t *testing.T) {
		board := mustParse(t, "XO./.../...")

		assert.Equal(t, entity.EmptyCell, rules.CheckWinner(board, nil))
	})

	t.Run("Evaluation is flipped", func(t *testing.T) {
		board := mustParse(t, "XXX/OO./...")

		assert.InDelta(t, -10.0, rules.EvaluateBoard(board, entity.PlayerX), 0)
		assert.InDelta(t, 10.0, rules.EvaluateBoard(board, entity.PlayerO), 0)
	})

	t.Run("Safe moves are winning, completing moves are not", func(t *testing.T) {
		// Given: X has two in the top row
		board := mustParse(t, "XX./OO./...")

		// Then: completing the row is not a winning move, a quiet cell is
		assert.False(t, rules.IsWinningMove(board, 0, 2, entity.PlayerX))
		assert.True(t, rules.IsWinningMove(board, 2, 0, entity.PlayerX))
	})

	t.Run("Occupied and out of range cells are not winning", func(t *testing.T) {
		board := mustParse(t, "XX./OO./...")

		assert.False(t, rules.IsWinningMove(board, 0, 0, entity.PlayerO))
		assert.False(t, rules.IsWinningMove(board, 5, 5, entity.PlayerO))
	})
}
