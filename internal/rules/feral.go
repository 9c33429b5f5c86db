package rules

import "github.com/rocketscienceinc/tictactoe-rules/internal/entity"

const controlBonus = 0.5

// Feral - traditional lines, but a player may overwrite the opponent's marks.
type Feral struct {
	Traditional
}

// IsValidMove - the cell is empty or holds the opponent's mark.
func (Feral) IsValidMove(board entity.Board, row, col int, player entity.Mark) bool {
	if !player.IsPlayer() || !board.InBounds(row, col) {
		return false
	}

	current := board.At(row, col)

	return current == entity.EmptyCell || current == player.Opponent()
}

// EvaluateBoard - the traditional score plus half a point per mark of board control.
func (that Feral) EvaluateBoard(board entity.Board, player entity.Mark) float64 {
	if !player.IsPlayer() {
		return 0
	}

	basic := that.Traditional.EvaluateBoard(board, player)
	control := board.Count(player) - board.Count(player.Opponent())

	return basic + float64(control)*controlBonus
}

func (that Feral) IsWinningMove(board entity.Board, row, col int, player entity.Mark) bool {
	if !that.IsValidMove(board, row, col, player) {
		return false
	}

	return completesLine(board, row, col, player)
}
