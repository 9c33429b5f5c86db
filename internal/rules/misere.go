package rules

import "github.com/rocketscienceinc/tictactoe-rules/internal/entity"

// Misere - whoever fills a line loses.
type Misere struct {
	Traditional
}

// CheckWinner - the opponent of the player who completed a line.
func (that Misere) CheckWinner(board entity.Board, lastMove *entity.Move) entity.Mark {
	return that.Traditional.CheckWinner(board, lastMove).Opponent()
}

func (that Misere) EvaluateBoard(board entity.Board, player entity.Mark) float64 {
	return -that.Traditional.EvaluateBoard(board, player)
}

// IsWinningMove - a legal move that does not complete a line for player.
func (that Misere) IsWinningMove(board entity.Board, row, col int, player entity.Mark) bool {
	if !that.IsValidMove(board, row, col, player) {
		return false
	}

	return !completesLine(board, row, col, player)
}
