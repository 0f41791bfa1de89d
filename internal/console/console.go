package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/chzyer/readline"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	welcomeMessage  = "Welcome to Tic-Tac-Toe! You are X, the computer is O."
	thinkingMessage = "Computer is thinking..."
	goodbyeMessage  = "Thanks for playing!"

	movePrompt   = "Choose your move (row,col) e.g. 1,3: "
	answerPrompt = "Play again? (y/n): "
)

// errQuit ends the session when input is closed or interrupted.
var errQuit = errors.New("player quit")

type lineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

type gameManager interface {
	StartRound(ctx context.Context) *entity.Round
	MakeHumanTurn(ctx context.Context, round *entity.Round, cell int) error
	MakeComputerTurn(ctx context.Context, round *entity.Round) (int, error)
	Score(ctx context.Context) (*entity.Score, error)
}

// Console plays rounds against the computer over a line based terminal.
type Console struct {
	logger  *slog.Logger
	reader  lineReader
	out     io.Writer
	manager gameManager
}

func New(logger *slog.Logger, reader lineReader, out io.Writer, manager gameManager) *Console {
	return &Console{
		logger:  logger.With("component", "console"),
		reader:  reader,
		out:     out,
		manager: manager,
	}
}

// Run plays rounds until the player declines another one. Closed input or a
// canceled context end the session without an error.
func (that *Console) Run(ctx context.Context) error {
	for {
		err := that.playRound(ctx)
		if errors.Is(err, errQuit) {
			that.logger.Info("session ended by player")
			return nil
		}

		if err != nil {
			return fmt.Errorf("failed to play round: %w", err)
		}

		if err = that.printScore(ctx); err != nil {
			return err
		}

		again, err := that.askPlayAgain(ctx)
		if errors.Is(err, errQuit) {
			that.logger.Info("session ended by player")
			return nil
		}

		if err != nil {
			return err
		}

		if !again {
			that.println(goodbyeMessage)
			return nil
		}
	}
}

func (that *Console) playRound(ctx context.Context) error {
	round := that.manager.StartRound(ctx)

	that.println(welcomeMessage)
	if err := RenderBoard(that.out, &round.Board); err != nil {
		return err
	}

	for !round.IsFinished() {
		if round.IsHumanTurn() {
			if err := that.humanTurn(ctx, round); err != nil {
				return err
			}
		} else {
			that.println(thinkingMessage)
			if _, err := that.manager.MakeComputerTurn(ctx, round); err != nil {
				return fmt.Errorf("computer turn: %w", err)
			}
		}

		if err := RenderBoard(that.out, &round.Board); err != nil {
			return err
		}
	}

	that.println(announcement(round))

	return nil
}

func (that *Console) humanTurn(ctx context.Context, round *entity.Round) error {
	for {
		line, err := that.readLine(ctx, movePrompt)
		if err != nil {
			return err
		}

		cell, err := ParseMove(line)
		if err != nil {
			that.println(hint(err))
			continue
		}

		err = that.manager.MakeHumanTurn(ctx, round, cell)
		if errors.Is(err, apperror.ErrCellOccupied) {
			that.println(hint(err))
			continue
		}

		if err != nil {
			return fmt.Errorf("human turn: %w", err)
		}

		return nil
	}
}

func (that *Console) askPlayAgain(ctx context.Context) (bool, error) {
	for {
		line, err := that.readLine(ctx, answerPrompt)
		if err != nil {
			return false, err
		}

		again, err := ParseAnswer(line)
		if err != nil {
			that.println(hint(err))
			continue
		}

		return again, nil
	}
}

func (that *Console) printScore(ctx context.Context) error {
	score, err := that.manager.Score(ctx)
	if err != nil {
		return fmt.Errorf("failed to get score: %w", err)
	}

	that.println(fmt.Sprintf("Score: you %d, computer %d, draws %d", score.Human, score.Computer, score.Draws))

	return nil
}

func (that *Console) readLine(ctx context.Context, prompt string) (string, error) {
	if ctx.Err() != nil {
		return "", errQuit
	}

	that.reader.SetPrompt(prompt)

	line, err := that.reader.Readline()
	if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
		return "", errQuit
	}

	if err != nil {
		return "", fmt.Errorf("failed to read line: %w", err)
	}

	return line, nil
}

func (that *Console) println(msg string) {
	if _, err := fmt.Fprintln(that.out, msg); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}

func announcement(round *entity.Round) string {
	switch round.Status {
	case entity.StatusHumanWon:
		return "You win!"
	case entity.StatusComputerWon:
		return "Computer wins!"
	default:
		return "It's a draw!"
	}
}

func hint(err error) string {
	switch {
	case errors.Is(err, ErrMoveFormat):
		return "Please use the format row,col (e.g. 2,1)."
	case errors.Is(err, ErrMoveNotNumber):
		return "Row and column must be numbers between 1 and 3."
	case errors.Is(err, ErrMoveOutOfRange):
		return "Row and column must each be between 1 and 3."
	case errors.Is(err, apperror.ErrCellOccupied):
		return "That square is already taken. Try again."
	case errors.Is(err, ErrInvalidAnswer):
		return "Please enter 'y' or 'n'."
	default:
		return err.Error()
	}
}
