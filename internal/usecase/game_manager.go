package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-rules/internal/entity"
	"github.com/rocketscienceinc/tictactoe-rules/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-rules/internal/rules"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
	Update(ctx context.Context, id string, apply func(game *entity.Game) error) (*entity.Game, error)
}

type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo

	defaultMode rules.Mode
	defaultSize int
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, defaultMode rules.Mode, defaultSize int) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		gameRepo: gameRepo,

		defaultMode: defaultMode,
		defaultSize: defaultSize,
	}
}

// CreateGame - starts a new game; an empty mode or zero size falls back to the configured defaults.
func (that *GameManager) CreateGame(ctx context.Context, mode rules.Mode, size int) (*entity.Game, error) {
	log := that.logger.With("method", "CreateGame")

	if mode == "" {
		mode = that.defaultMode
	}

	if size == 0 {
		size = that.defaultSize
	}

	mode, err := rules.ParseMode(string(mode))
	if err != nil {
		return nil, err
	}

	gameID, err := pkg.GenerateGameID()
	if err != nil {
		return nil, fmt.Errorf("error generating game ID: %w", err)
	}

	game, err := entity.NewGame(gameID, string(mode), size)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	game.Start()

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	log.Info("game created", "game_id", game.ID, "mode", game.Mode, "size", size)

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// MakeTurn - plays mark at (row, col) and returns the updated game. Concurrent turns on
// the same game are serialized by the repository, so none is silently lost.
func (that *GameManager) MakeTurn(ctx context.Context, id string, mark entity.Mark, row, col int) (*entity.Game, error) {
	log := that.logger.With("method", "MakeTurn", "game_id", id)

	game, err := that.gameRepo.Update(ctx, id, func(game *entity.Game) error {
		gameRules, err := that.rulesFor(game)
		if err != nil {
			return err
		}

		if err = game.MakeTurn(gameRules, mark, row, col); err != nil {
			return fmt.Errorf("failed make turn: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed update game: %w", err)
	}

	if game.IsFinished() {
		log.Info("game finished", "winner", game.Winner)
	} else {
		log.Debug("turn made", "mark", mark, "row", row, "col", col)
	}

	return game, nil
}

// Evaluate - the score of the current board for mark under the game's rules.
func (that *GameManager) Evaluate(ctx context.Context, id string, mark entity.Mark) (float64, error) {
	game, gameRules, err := that.loadGame(ctx, id)
	if err != nil {
		return 0, err
	}

	return gameRules.EvaluateBoard(game.Board, mark), nil
}

// WinningMoves - the cells where mark would win immediately.
func (that *GameManager) WinningMoves(ctx context.Context, id string, mark entity.Mark) ([]entity.Move, error) {
	game, gameRules, err := that.loadGame(ctx, id)
	if err != nil {
		return nil, err
	}

	if game.IsFinished() {
		return []entity.Move{}, nil
	}

	return rules.WinningMoves(gameRules, game.Board, mark), nil
}

func (that *GameManager) DeleteGame(ctx context.Context, id string) error {
	log := that.logger.With("method", "DeleteGame", "game_id", id)

	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	log.Info("game deleted")

	return nil
}

func (that *GameManager) loadGame(ctx context.Context, id string) (*entity.Game, rules.Rules, error) {
	game, err := that.GetGame(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	gameRules, err := that.rulesFor(game)
	if err != nil {
		return nil, nil, err
	}

	return game, gameRules, nil
}

func (that *GameManager) rulesFor(game *entity.Game) (rules.Rules, error) {
	gameRules, err := rules.New(rules.Mode(game.Mode))
	if err != nil {
		that.logger.Error("stored game has unknown mode", "game_id", game.ID, "mode", game.Mode)

		return nil, fmt.Errorf("failed to load rules: %w", err)
	}

	return gameRules, nil
}
