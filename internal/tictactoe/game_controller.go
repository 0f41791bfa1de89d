package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// MakeTurn - validates and applies a move, then advances the round.
func MakeTurn(round *entity.Round, player entity.Mark, cell int) error {
	if round.IsFinished() {
		return apperror.ErrGameFinished
	}

	if err := validateMove(round, player, cell); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	round.Board.ApplyMove(cell, player)
	updateRoundStatus(round, player)

	return nil
}

// validateMove - checks if the move is valid.
func validateMove(round *entity.Round, player entity.Mark, cell int) error {
	current, err := round.Board.Cell(cell)
	if err != nil {
		return err
	}

	if round.Turn != player {
		return apperror.ErrNotYourTurn
	}

	if current != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	return nil
}

// updateRoundStatus - checks the round status after a move of player.
func updateRoundStatus(round *entity.Round, player entity.Mark) {
	switch {
	case round.Board.HasWinningLine(player):
		round.Winner = player
		round.Turn = entity.EmptyCell
		if player == entity.HumanMark {
			round.Status = entity.StatusHumanWon
		} else {
			round.Status = entity.StatusComputerWon
		}
	case round.Board.IsFull():
		round.Winner = entity.PlayerTie
		round.Turn = entity.EmptyCell
		round.Status = entity.StatusDraw
	default:
		round.Turn = toggleMark(player)
	}
}

func toggleMark(currentMark entity.Mark) entity.Mark {
	if currentMark == entity.PlayerX {
		return entity.PlayerO
	}
	return entity.PlayerX
}
