package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-rules/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rules/internal/entity"
)

const (
	gameKeyPrefix = "game:"

	maxUpdateAttempts = 3
)

type GameRepository interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
	Update(ctx context.Context, id string, apply func(game *entity.Game) error) (*entity.Game, error)
}

type stringGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

type dbGame struct {
	client *redis.Client
	ttl    time.Duration
}

// NewGameRepository - games expire after ttl of inactivity; zero keeps them forever.
func NewGameRepository(client *redis.Client, ttl time.Duration) GameRepository {
	return &dbGame{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbGame) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	if err = that.client.Set(ctx, gameKeyPrefix+game.ID, gameJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	return nil
}

func (that *dbGame) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	return getGame(ctx, that.client, gameKeyPrefix+id)
}

// Update - loads the game, applies the change and writes it back, all under WATCH.
// A write by someone else in between restarts the attempt on the fresh game.
func (that *dbGame) Update(ctx context.Context, id string, apply func(game *entity.Game) error) (*entity.Game, error) {
	key := gameKeyPrefix + id

	for range maxUpdateAttempts {
		var updated *entity.Game

		err := that.client.Watch(ctx, func(tx *redis.Tx) error {
			game, err := getGame(ctx, tx, key)
			if err != nil {
				return err
			}

			if err = apply(game); err != nil {
				return err
			}

			gameJSON, err := json.Marshal(game)
			if err != nil {
				return fmt.Errorf("could not marshal game: %w", err)
			}

			if _, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.Set(ctx, key, gameJSON, that.ttl)
				return nil
			}); err != nil {
				return err
			}

			updated = game

			return nil
		}, key)

		if errors.Is(err, redis.TxFailedErr) {
			continue
		}

		if err != nil {
			return nil, err
		}

		return updated, nil
	}

	return nil, apperror.ErrConcurrentUpdate
}

func (that *dbGame) DeleteByID(ctx context.Context, id string) error {
	deleted, err := that.client.Del(ctx, gameKeyPrefix+id).Result()
	if err != nil {
		return fmt.Errorf("failed to delete game by id: %w", err)
	}

	if deleted == 0 {
		return apperror.ErrGameNotFound
	}

	return nil
}

func getGame(ctx context.Context, getter stringGetter, key string) (*entity.Game, error) {
	response, err := getter.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrGameNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	var existingGame entity.Game
	if err = json.Unmarshal(response, &existingGame); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &existingGame, nil
}
