package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type memoryScore struct {
	mu     sync.Mutex
	scores map[string]entity.Score
}

// NewMemoryScoreRepository - keeps scores for the lifetime of the process.
func NewMemoryScoreRepository() ScoreRepository {
	return &memoryScore{
		scores: make(map[string]entity.Score),
	}
}

func (that *memoryScore) CreateOrUpdate(_ context.Context, sessionID string, score *entity.Score) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.scores[sessionID] = *score

	return nil
}

func (that *memoryScore) GetBySessionID(_ context.Context, sessionID string) (*entity.Score, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	score, ok := that.scores[sessionID]
	if !ok {
		return &entity.Score{}, ErrScoreNotFound
	}

	return &score, nil
}
