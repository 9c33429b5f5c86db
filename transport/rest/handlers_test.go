package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-rules/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rules/internal/entity"
	"github.com/rocketscienceinc/tictactoe-rules/internal/rules"
)

type mockGames struct {
	mock.Mock
}

func (m *mockGames) CreateGame(ctx context.Context, mode rules.Mode, size int) (*entity.Game, error) {
	args := m.Called(ctx, mode, size)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (m *mockGames) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	args := m.Called(ctx, id)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (m *mockGames) MakeTurn(ctx context.Context, id string, mark entity.Mark, row, col int) (*entity.Game, error) {
	args := m.Called(ctx, id, mark, row, col)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (m *mockGames) Evaluate(ctx context.Context, id string, mark entity.Mark) (float64, error) {
	args := m.Called(ctx, id, mark)
	return args.Get(0).(float64), args.Error(1)
}

func (m *mockGames) WinningMoves(ctx context.Context, id string, mark entity.Mark) ([]entity.Move, error) {
	args := m.Called(ctx, id, mark)
	moves, _ := args.Get(0).([]entity.Move)
	return moves, args.Error(1)
}

func (m *mockGames) DeleteGame(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestMux(t *testing.T) (*http.ServeMux, *mockGames) {
	t.Helper()

	games := &mockGames{}
	t.Cleanup(func() { games.AssertExpectations(t) })

	mux := http.NewServeMux()
	mux.HandleFunc("GET /ping", pingHandler)
	newHandlers(slog.New(slog.NewTextHandler(io.Discard, nil)), games).register(mux)

	return mux, games
}

func serve(mux *http.ServeMux, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	return rec
}

func newGame(t *testing.T) *entity.Game {
	t.Helper()

	game, err := entity.NewGame("g1", string(rules.ModeTraditional), 3)
	require.NoError(t, err)
	game.Start()

	return game
}

func TestPing(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := serve(mux, http.MethodGet, "/ping", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestHandlers_CreateGame(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		// Given: the usecase creates a feral game
		mux, games := newTestMux(t)
		game := newGame(t)
		games.On("CreateGame", mock.Anything, rules.ModeFeral, 4).Return(game, nil).Once()

		// When: posting a new game
		rec := serve(mux, http.MethodPost, "/games", `{"mode":"feral","size":4}`)

		// Then: the game is returned with 201
		require.Equal(t, http.StatusCreated, rec.Code)

		var got entity.Game
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "g1", got.ID)
	})

	t.Run("Unknown mode is a bad request", func(t *testing.T) {
		mux, games := newTestMux(t)
		games.On("CreateGame", mock.Anything, rules.Mode("numerical"), 0).Return(nil, apperror.ErrUnknownMode).Once()

		rec := serve(mux, http.MethodPost, "/games", `{"mode":"numerical"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "unknown rules mode")
	})

	t.Run("Malformed body is a bad request", func(t *testing.T) {
		mux, _ := newTestMux(t)

		rec := serve(mux, http.MethodPost, "/games", `{"mode":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandlers_GetAndDeleteGame(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		mux, games := newTestMux(t)
		games.On("GetGame", mock.Anything, "g1").Return(newGame(t), nil).Once()

		rec := serve(mux, http.MethodGet, "/games/g1", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	})

	t.Run("Not found", func(t *testing.T) {
		mux, games := newTestMux(t)
		games.On("GetGame", mock.Anything, "nope").Return(nil, apperror.ErrGameNotFound).Once()

		rec := serve(mux, http.MethodGet, "/games/nope", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Deleted", func(t *testing.T) {
		mux, games := newTestMux(t)
		games.On("DeleteGame", mock.Anything, "g1").Return(nil).Once()

		rec := serve(mux, http.MethodDelete, "/games/g1", "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestHandlers_MakeTurn(t *testing.T) {
	t.Run("Accepted", func(t *testing.T) {
		mux, games := newTestMux(t)
		games.On("MakeTurn", mock.Anything, "g1", entity.PlayerX, 1, 2).Return(newGame(t), nil).Once()

		rec := serve(mux, http.MethodPost, "/games/g1/turns", `{"mark":"X","row":1,"col":2}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Out of turn is a conflict", func(t *testing.T) {
		mux, games := newTestMux(t)
		games.On("MakeTurn", mock.Anything, "g1", entity.PlayerO, 0, 0).Return(nil, apperror.ErrNotYourTurn).Once()

		rec := serve(mux, http.MethodPost, "/games/g1/turns", `{"mark":"O","row":0,"col":0}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("Lost race is a conflict", func(t *testing.T) {
		mux, games := newTestMux(t)
		games.On("MakeTurn", mock.Anything, "g1", entity.PlayerX, 0, 0).
			Return(nil, fmt.Errorf("failed update game: %w", apperror.ErrConcurrentUpdate)).Once()

		rec := serve(mux, http.MethodPost, "/games/g1/turns", `{"mark":"X","row":0,"col":0}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("Bad cell is a bad request", func(t *testing.T) {
		mux, games := newTestMux(t)
		games.On("MakeTurn", mock.Anything, "g1", entity.PlayerX, 9, 9).Return(nil, entity.ErrInvalidCell).Once()

		rec := serve(mux, http.MethodPost, "/games/g1/turns", `{"mark":"X","row":9,"col":9}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandlers_EvaluationAndWinningMoves(t *testing.T) {
	t.Run("Evaluation", func(t *testing.T) {
		mux, games := newTestMux(t)
		games.On("Evaluate", mock.Anything, "g1", entity.PlayerO).Return(-10.0, nil).Once()

		rec := serve(mux, http.MethodGet, "/games/g1/evaluation?mark=O", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"mark":"O","score":-10}`, rec.Body.String())
	})

	t.Run("Winning moves", func(t *testing.T) {
		mux, games := newTestMux(t)
		games.On("WinningMoves", mock.Anything, "g1", entity.PlayerX).
			Return([]entity.Move{{Row: 0, Col: 2}}, nil).Once()

		rec := serve(mux, http.MethodGet, "/games/g1/winning-moves?mark=X", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"mark":"X","moves":[{"row":0,"col":2}]}`, rec.Body.String())
	})

	t.Run("Missing mark", func(t *testing.T) {
		mux, _ := newTestMux(t)

		rec := serve(mux, http.MethodGet, "/games/g1/evaluation", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandlers_CheckBoard(t *testing.T) {
	t.Run("Traditional board", func(t *testing.T) {
		// Given: X fills the top row
		mux, _ := newTestMux(t)
		body := `{"board":"XXX/OO./...","last_move":{"row":0,"col":2},"mark":"X","row":2,"col":2}`

		// When: checking it under traditional rules
		rec := serve(mux, http.MethodPost, "/rules/traditional/check", body)

		// Then: X wins, scores 10 and (2,2) is not a legal winning move for a won row
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"winner":"X","score":10,"winning_move":false}`, rec.Body.String())
	})

	t.Run("Placeholder board", func(t *testing.T) {
		mux, _ := newTestMux(t)
		body := `{"board":"XXX/OO./...","last_move":{"row":0,"col":2},"mark":"X","row":5,"col":5}`

		rec := serve(mux, http.MethodPost, "/rules/placeholder/check", body)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"winner":"","score":0,"winning_move":false}`, rec.Body.String())
	})

	t.Run("Without a candidate move", func(t *testing.T) {
		mux, _ := newTestMux(t)

		rec := serve(mux, http.MethodPost, "/rules/misere/check", `{"board":"XXX/OO./...","mark":"X"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"winner":"O","score":-10}`, rec.Body.String())
	})

	t.Run("Unknown mode", func(t *testing.T) {
		mux, _ := newTestMux(t)

		rec := serve(mux, http.MethodPost, "/rules/numerical/check", `{"board":".../.../..."}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Malformed board", func(t *testing.T) {
		mux, _ := newTestMux(t)

		rec := serve(mux, http.MethodPost, "/rules/feral/check", `{"board":"XX/..."}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
