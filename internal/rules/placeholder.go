package rules

import "github.com/rocketscienceinc/tictactoe-rules/internal/entity"

// Placeholder - a rule set that never finds a winner, scores every board 0 and
// never reports a winning move. Front-ends use it before a real rule set is chosen.
type Placeholder struct{}

func (Placeholder) CheckWinner(entity.Board, *entity.Move) entity.Mark {
	return entity.EmptyCell
}

func (Placeholder) EvaluateBoard(entity.Board, entity.Mark) float64 {
	return 0
}

func (Placeholder) IsWinningMove(entity.Board, int, int, entity.Mark) bool {
	return false
}

func (Placeholder) IsValidMove(board entity.Board, row, col int, player entity.Mark) bool {
	return player.IsPlayer() && board.IsEmpty(row, col)
}
