package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

var ErrScoreNotFound = errors.New("score not found")

type ScoreRepository interface {
	CreateOrUpdate(ctx context.Context, sessionID string, score *entity.Score) error
	GetBySessionID(ctx context.Context, sessionID string) (*entity.Score, error)
}

type dbScore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewScoreRepository - stores scores in Redis, each key expiring ttl after the last update.
func NewScoreRepository(client *redis.Client, ttl time.Duration) ScoreRepository {
	return &dbScore{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbScore) CreateOrUpdate(ctx context.Context, sessionID string, score *entity.Score) error {
	scoreJSON, err := json.Marshal(score)
	if err != nil {
		return fmt.Errorf("could not marshal score: %w", err)
	}

	err = that.client.Set(ctx, scoreKey(sessionID), scoreJSON, that.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set score: %w", err)
	}

	return nil
}

func (that *dbScore) GetBySessionID(ctx context.Context, sessionID string) (*entity.Score, error) {
	response, err := that.client.Get(ctx, scoreKey(sessionID)).Result()

	if errors.Is(err, redis.Nil) {
		return &entity.Score{}, ErrScoreNotFound
	}

	if err != nil {
		return &entity.Score{}, fmt.Errorf("failed to get score by session id: %w", err)
	}

	var existingScore entity.Score
	if err = json.Unmarshal([]byte(response), &existingScore); err != nil {
		return &entity.Score{}, fmt.Errorf("failed to unmarshal score: %w", err)
	}

	return &existingScore, nil
}

func scoreKey(sessionID string) string {
	return "score:" + sessionID
}
