package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-rules/internal/config"
	"github.com/rocketscienceinc/tictactoe-rules/internal/entity"
	"github.com/rocketscienceinc/tictactoe-rules/internal/repository"
	"github.com/rocketscienceinc/tictactoe-rules/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-rules/internal/rules"
	"github.com/rocketscienceinc/tictactoe-rules/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-rules/transport/rest"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	defaultMode, err := gameDefaults(conf.Rules)
	if err != nil {
		return err
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	gameRepo := repository.NewGameRepository(redisStorage, conf.Redis.GameTTL)
	gameManager := usecase.NewGameManager(logger, gameRepo, defaultMode, conf.Rules.BoardSize)

	log.Info("Starting HTTP server", "port", conf.HTTPPort, "default_mode", defaultMode)

	if err = rest.New(logger, conf.HTTPPort, gameManager).Start(ctx); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}

// gameDefaults - checks the configured defaults for new games before anything starts.
func gameDefaults(conf config.Rules) (rules.Mode, error) {
	mode, err := rules.ParseMode(conf.DefaultMode)
	if err != nil {
		return "", fmt.Errorf("invalid default rules mode: %w", err)
	}

	if err = entity.ValidateBoardSize(conf.BoardSize); err != nil {
		return "", fmt.Errorf("invalid default board size: %w", err)
	}

	return mode, nil
}
