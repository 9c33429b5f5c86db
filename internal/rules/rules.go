// Package rules holds the tic-tac-toe rule sets a front-end queries for win
// detection, board evaluation and winning-move checks.
package rules

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-rules/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rules/internal/entity"
)

type Mode string

const (
	ModePlaceholder Mode = "placeholder"
	ModeTraditional Mode = "traditional"
	ModeMisere      Mode = "misere"
	ModeFeral       Mode = "feral"
)

const (
	winScore  = 10
	lossScore = -10
)

// GameRules - the capability surface of a rule set. Every method is pure: boards are
// never mutated and no state is kept between calls.
type GameRules interface {
	// CheckWinner returns the winning player, or entity.EmptyCell when there is none.
	// lastMove is an optional hint for the most recently played cell.
	CheckWinner(board entity.Board, lastMove *entity.Move) entity.Mark
	// EvaluateBoard returns a signed score favouring player.
	EvaluateBoard(board entity.Board, player entity.Mark) float64
	// IsWinningMove reports whether placing player at (row, col) wins.
	IsWinningMove(board entity.Board, row, col int, player entity.Mark) bool
}

type MoveValidator interface {
	IsValidMove(board entity.Board, row, col int, player entity.Mark) bool
}

// Rules - a rule set that can also referee a game.
type Rules interface {
	GameRules
	MoveValidator
}

// ParseMode - a known mode from its case-insensitive name.
func ParseMode(name string) (Mode, error) {
	mode := Mode(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Modes() {
		if mode == known {
			return mode, nil
		}
	}

	return "", fmt.Errorf("%w: %q", apperror.ErrUnknownMode, name)
}

// New - returns the rule set for mode.
func New(mode Mode) (Rules, error) {
	mode, err := ParseMode(string(mode))
	if err != nil {
		return nil, err
	}

	switch mode {
	case ModePlaceholder:
		return Placeholder{}, nil
	case ModeTraditional:
		return Traditional{}, nil
	case ModeMisere:
		return Misere{}, nil
	case ModeFeral:
		return Feral{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownMode, mode)
	}
}

func Modes() []Mode {
	return []Mode{ModePlaceholder, ModeTraditional, ModeMisere, ModeFeral}
}

// WinningMoves - every cell where player would win under rules. Occupied cells are
// asked too, since feral moves may overwrite the opponent.
func WinningMoves(rules GameRules, board entity.Board, player entity.Mark) []entity.Move {
	moves := make([]entity.Move, 0)
	for row := 0; row < board.Size; row++ {
		for col := 0; col < board.Size; col++ {
			if rules.IsWinningMove(board, row, col, player) {
				moves = append(moves, entity.Move{Row: row, Col: col})
			}
		}
	}

	return moves
}

// completedLine - the owner of the first full line on board, rows before columns before diagonals.
func completedLine(board entity.Board) entity.Mark {
	for _, line := range board.Lines() {
		if owner := board.LineOwner(line); owner != entity.EmptyCell {
			return owner
		}
	}

	return entity.EmptyCell
}

// completesLine - whether player at (row, col) fills a line, checked on a copy of board.
func completesLine(board entity.Board, row, col int, player entity.Mark) bool {
	trial := board.Clone()
	if err := trial.Set(row, col, player); err != nil {
		return false
	}

	for _, line := range trial.LinesThrough(row, col) {
		if trial.LineOwner(line) == player {
			return true
		}
	}

	return false
}

func scoreFor(winner, player entity.Mark) float64 {
	switch {
	case !player.IsPlayer() || !winner.IsPlayer():
		return 0
	case winner == player:
		return winScore
	default:
		return lossScore
	}
}
