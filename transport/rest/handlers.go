package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-rules/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rules/internal/entity"
	"github.com/rocketscienceinc/tictactoe-rules/internal/rules"
)

const maxBodyBytes = 1 << 16

var (
	errInvalidPlayer = errors.New("mark must be X or O")
	errBadBody       = errors.New("invalid request body")
)

type gameUseCase interface {
	CreateGame(ctx context.Context, mode rules.Mode, size int) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	MakeTurn(ctx context.Context, id string, mark entity.Mark, row, col int) (*entity.Game, error)
	Evaluate(ctx context.Context, id string, mark entity.Mark) (float64, error)
	WinningMoves(ctx context.Context, id string, mark entity.Mark) ([]entity.Move, error)
	DeleteGame(ctx context.Context, id string) error
}

type createGameRequest struct {
	Mode rules.Mode `json:"mode"`
	Size int        `json:"size"`
}

type turnRequest struct {
	Mark entity.Mark `json:"mark"`
	Row  int         `json:"row"`
	Col  int         `json:"col"`
}

type evaluationResponse struct {
	Mark  entity.Mark `json:"mark"`
	Score float64     `json:"score"`
}

type winningMovesResponse struct {
	Mark  entity.Mark   `json:"mark"`
	Moves []entity.Move `json:"moves"`
}

type checkRequest struct {
	Board    string       `json:"board"`
	LastMove *entity.Move `json:"last_move,omitempty"`
	Mark     entity.Mark  `json:"mark"`
	Row      *int         `json:"row,omitempty"`
	Col      *int         `json:"col,omitempty"`
}

type checkResponse struct {
	Winner      entity.Mark `json:"winner"`
	Score       float64     `json:"score"`
	WinningMove *bool       `json:"winning_move,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type handlers struct {
	logger *slog.Logger
	games  gameUseCase
}

func newHandlers(logger *slog.Logger, games gameUseCase) *handlers {
	return &handlers{
		logger: logger.With("component", "rest_handlers"),
		games:  games,
	}
}

func (that *handlers) register(mux *http.ServeMux) {
	mux.HandleFunc("POST /games", that.createGame)
	mux.HandleFunc("GET /games/{id}", that.getGame)
	mux.HandleFunc("DELETE /games/{id}", that.deleteGame)
	mux.HandleFunc("POST /games/{id}/turns", that.makeTurn)
	mux.HandleFunc("GET /games/{id}/evaluation", that.evaluate)
	mux.HandleFunc("GET /games/{id}/winning-moves", that.winningMoves)
	mux.HandleFunc("POST /rules/{mode}/check", that.checkBoard)
}

func (that *handlers) createGame(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if err := decodeBody(w, r, &req); err != nil {
		that.writeError(w, "createGame", err)
		return
	}

	game, err := that.games.CreateGame(r.Context(), req.Mode, req.Size)
	if err != nil {
		that.writeError(w, "createGame", err)
		return
	}

	that.writeJSON(w, http.StatusCreated, game)
}

func (that *handlers) getGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.games.GetGame(r.Context(), r.PathValue("id"))
	if err != nil {
		that.writeError(w, "getGame", err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *handlers) deleteGame(w http.ResponseWriter, r *http.Request) {
	if err := that.games.DeleteGame(r.Context(), r.PathValue("id")); err != nil {
		that.writeError(w, "deleteGame", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *handlers) makeTurn(w http.ResponseWriter, r *http.Request) {
	var req turnRequest
	if err := decodeBody(w, r, &req); err != nil {
		that.writeError(w, "makeTurn", err)
		return
	}

	game, err := that.games.MakeTurn(r.Context(), r.PathValue("id"), req.Mark, req.Row, req.Col)
	if err != nil {
		that.writeError(w, "makeTurn", err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *handlers) evaluate(w http.ResponseWriter, r *http.Request) {
	mark, err := markParam(r)
	if err != nil {
		that.writeError(w, "evaluate", err)
		return
	}

	score, err := that.games.Evaluate(r.Context(), r.PathValue("id"), mark)
	if err != nil {
		that.writeError(w, "evaluate", err)
		return
	}

	that.writeJSON(w, http.StatusOK, evaluationResponse{Mark: mark, Score: score})
}

func (that *handlers) winningMoves(w http.ResponseWriter, r *http.Request) {
	mark, err := markParam(r)
	if err != nil {
		that.writeError(w, "winningMoves", err)
		return
	}

	moves, err := that.games.WinningMoves(r.Context(), r.PathValue("id"), mark)
	if err != nil {
		that.writeError(w, "winningMoves", err)
		return
	}

	that.writeJSON(w, http.StatusOK, winningMovesResponse{Mark: mark, Moves: moves})
}

// checkBoard - runs the rule set of {mode} against a board sent by the client. Nothing is stored.
func (that *handlers) checkBoard(w http.ResponseWriter, r *http.Request) {
	gameRules, err := rules.New(rules.Mode(r.PathValue("mode")))
	if err != nil {
		that.writeError(w, "checkBoard", err)
		return
	}

	var req checkRequest
	if err = decodeBody(w, r, &req); err != nil {
		that.writeError(w, "checkBoard", err)
		return
	}

	board, err := entity.ParseBoard(req.Board)
	if err != nil {
		that.writeError(w, "checkBoard", err)
		return
	}

	resp := checkResponse{
		Winner: gameRules.CheckWinner(board, req.LastMove),
		Score:  gameRules.EvaluateBoard(board, req.Mark),
	}

	if req.Row != nil && req.Col != nil {
		winning := gameRules.IsWinningMove(board, *req.Row, *req.Col, req.Mark)
		resp.WinningMove = &winning
	}

	that.writeJSON(w, http.StatusOK, resp)
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}

func (that *handlers) writeError(w http.ResponseWriter, method string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "method", method, "error", err)
	} else {
		that.logger.Debug("request rejected", "method", method, "error", err)
	}

	that.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrGameFinished),
		errors.Is(err, apperror.ErrGameIsNotStarted),
		errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrInvalidMove),
		errors.Is(err, apperror.ErrConcurrentUpdate):
		return http.StatusConflict
	case errors.Is(err, apperror.ErrUnknownMode),
		errors.Is(err, errInvalidPlayer),
		errors.Is(err, entity.ErrInvalidBoardSize),
		errors.Is(err, entity.ErrInvalidCell),
		errors.Is(err, entity.ErrInvalidMark),
		errors.Is(err, entity.ErrMalformedBoard),
		errors.Is(err, errBadBody):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", errBadBody, err)
	}

	return nil
}

func markParam(r *http.Request) (entity.Mark, error) {
	mark := entity.Mark(r.URL.Query().Get("mark"))
	if !mark.IsPlayer() {
		return "", fmt.Errorf("%w: %q", errInvalidPlayer, mark)
	}

	return mark, nil
}
