package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-rules/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Referee - the part of a rule set a game needs to accept turns and decide results.
type Referee interface {
	CheckWinner(board Board, lastMove *Move) Mark
	IsValidMove(board Board, row, col int, player Mark) bool
}

type Game struct {
	ID       string `json:"id"`
	Mode     string `json:"mode"`
	Board    Board  `json:"board"`
	Winner   Mark   `json:"winner"`
	Status   string `json:"status"`
	Turn     Mark   `json:"player_turn"`
	LastMove *Move  `json:"last_move,omitempty"`
}

func NewGame(id, mode string, size int) (*Game, error) {
	board, err := NewBoard(size)
	if err != nil {
		return nil, err
	}

	return &Game{
		ID:     id,
		Mode:   mode,
		Board:  board,
		Turn:   PlayerX,
		Status: StatusWaiting,
	}, nil
}

// Start - moves a waiting game to ongoing.
func (that *Game) Start() {
	if that.IsWaiting() {
		that.Status = StatusOngoing
	}
}

// UpdateGameState - settles winner and status from the board using the referee.
func (that *Game) UpdateGameState(referee Referee) {
	winner := referee.CheckWinner(that.Board, that.LastMove)

	switch {
	// one player wins
	case winner.IsPlayer():
		that.Winner = winner
		that.Status = StatusFinished
		that.Turn = EmptyCell
	// tie
	case that.Board.IsFull():
		that.Winner = PlayerTie
		that.Status = StatusFinished
		that.Turn = EmptyCell
	// game continue
	default:
		that.Status = StatusOngoing
	}
}

func (that *Game) MakeTurn(referee Referee, playerMark Mark, row, col int) error {
	if err := that.ConfirmOngoingState(); err != nil {
		return err
	}

	if !that.Board.InBounds(row, col) {
		return fmt.Errorf("%w: %s", ErrInvalidCell, Move{Row: row, Col: col})
	}

	if that.Turn != playerMark {
		return apperror.ErrNotYourTurn
	}

	if !referee.IsValidMove(that.Board, row, col, playerMark) {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidMove, Move{Row: row, Col: col})
	}

	if err := that.Board.Set(row, col, playerMark); err != nil {
		return err
	}

	that.LastMove = &Move{Row: row, Col: col}
	that.Turn = playerMark.Opponent()

	that.UpdateGameState(referee)

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}
