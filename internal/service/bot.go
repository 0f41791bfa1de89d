package service

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

var ErrNoAvailableMoves = errors.New("no available moves")

type BotService interface {
	MakeTurn(round *entity.Round) (int, error)
}

type botService struct{}

func NewBotService() BotService {
	return &botService{}
}

// MakeTurn - plays the computer's optimal move and returns the chosen cell.
func (that *botService) MakeTurn(round *entity.Round) (int, error) {
	if round.Board.IsFull() {
		return tictactoe.NoMove, ErrNoAvailableMoves
	}

	chosenCell := tictactoe.BestComputerMove(&round.Board)

	if err := tictactoe.MakeTurn(round, entity.ComputerMark, chosenCell); err != nil {
		return tictactoe.NoMove, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return chosenCell, nil
}
