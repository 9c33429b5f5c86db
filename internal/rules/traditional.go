package rules

import "github.com/rocketscienceinc/tictactoe-rules/internal/entity"

// Traditional - whoever fills a row, column or diagonal wins.
type Traditional struct{}

// CheckWinner - the whole board is always scanned; the last move does not pick between
// two completed lines.
func (Traditional) CheckWinner(board entity.Board, _ *entity.Move) entity.Mark {
	return completedLine(board)
}

// EvaluateBoard - +10 when player has won, -10 when the opponent has, 0 otherwise.
func (that Traditional) EvaluateBoard(board entity.Board, player entity.Mark) float64 {
	return scoreFor(that.CheckWinner(board, nil), player)
}

func (that Traditional) IsWinningMove(board entity.Board, row, col int, player entity.Mark) bool {
	if !that.IsValidMove(board, row, col, player) {
		return false
	}

	return completesLine(board, row, col, player)
}

func (Traditional) IsValidMove(board entity.Board, row, col int, player entity.Mark) bool {
	return player.IsPlayer() && board.IsEmpty(row, col)
}
