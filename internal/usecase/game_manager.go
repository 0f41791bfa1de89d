package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

type scoreRepo interface {
	CreateOrUpdate(ctx context.Context, sessionID string, score *entity.Score) error
	GetBySessionID(ctx context.Context, sessionID string) (*entity.Score, error)
}

type botService interface {
	MakeTurn(round *entity.Round) (int, error)
}

// GameManager drives the rounds of one console session and keeps its score.
type GameManager struct {
	logger    *slog.Logger
	scoreRepo scoreRepo
	bot       botService
	sessionID string
}

func NewGameManager(logger *slog.Logger, scoreRepo scoreRepo, bot botService, sessionID string) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager", "session", sessionID),

		scoreRepo: scoreRepo,
		bot:       bot,
		sessionID: sessionID,
	}
}

func (that *GameManager) StartRound(_ context.Context) *entity.Round {
	that.logger.Info("round started")

	return entity.NewRound()
}

func (that *GameManager) MakeHumanTurn(ctx context.Context, round *entity.Round, cell int) error {
	if err := tictactoe.MakeTurn(round, entity.HumanMark, cell); err != nil {
		return fmt.Errorf("failed make turn: %w", err)
	}

	that.logger.Debug("human turn", "cell", cell)

	if round.IsFinished() {
		if err := that.recordRound(ctx, round); err != nil {
			return fmt.Errorf("failed record round: %w", err)
		}
	}

	return nil
}

func (that *GameManager) MakeComputerTurn(ctx context.Context, round *entity.Round) (int, error) {
	cell, err := that.bot.MakeTurn(round)
	if err != nil {
		return cell, fmt.Errorf("failed make computer turn: %w", err)
	}

	that.logger.Debug("computer turn", "cell", cell)

	if round.IsFinished() {
		if err = that.recordRound(ctx, round); err != nil {
			return cell, fmt.Errorf("failed record round: %w", err)
		}
	}

	return cell, nil
}

func (that *GameManager) Score(ctx context.Context) (*entity.Score, error) {
	score, err := that.scoreRepo.GetBySessionID(ctx, that.sessionID)
	if errors.Is(err, repository.ErrScoreNotFound) {
		return &entity.Score{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get score: %w", err)
	}

	return score, nil
}

func (that *GameManager) recordRound(ctx context.Context, round *entity.Round) error {
	log := that.logger.With("method", "recordRound")

	score, err := that.Score(ctx)
	if err != nil {
		log.Error("failed to get score", "error", err)
		return err
	}

	score.Record(round)

	if err = that.scoreRepo.CreateOrUpdate(ctx, that.sessionID, score); err != nil {
		log.Error("failed to update score", "error", err)
		return fmt.Errorf("failed to update score: %w", err)
	}

	log.Info("round finished", "status", round.Status, "rounds", score.Rounds())

	return nil
}
