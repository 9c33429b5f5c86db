package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrGameIsNotStarted = errors.New("game is not started")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrInvalidMove      = errors.New("move is not allowed by the rules")
	ErrGameNotFound     = errors.New("game not found")
	ErrUnknownMode      = errors.New("unknown rules mode")
	ErrConcurrentUpdate = errors.New("game was changed by another request")
)
