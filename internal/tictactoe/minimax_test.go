package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	x = entity.PlayerX
	o = entity.PlayerO
	e = entity.EmptyCell
)

func TestSearch(t *testing.T) {
	t.Run("Empty board picks cell 0", func(t *testing.T) {
		// Given: an empty board
		var board entity.Board

		// When: the computer searches first
		result := Search(&board, true)

		// Then: every opening draws, so the lowest cell wins the tie
		assert.Equal(t, 0, result.Move)
		assert.Equal(t, scoreDraw, result.Score)
		assert.Equal(t, 549946, result.Nodes)
		assert.Equal(t, entity.Board{}, board)
	})

	t.Run("Lowest winning cell beats a faster win", func(t *testing.T) {
		// Given: O can win at once on 5, and also forces a win by playing 2
		board := entity.Board{
			x, x, e,
			o, o, e,
			e, e, x,
		}

		// When: searching for the computer
		result := Search(&board, true)

		// Then: both score +1 and the strict comparison keeps cell 2
		assert.Equal(t, 2, result.Move)
		assert.Equal(t, scoreComputerWin, result.Score)
	})

	t.Run("Blocks an immediate threat", func(t *testing.T) {
		board := entity.Board{
			x, x, e,
			e, o, e,
			e, e, e,
		}

		result := Search(&board, true)

		assert.Equal(t, 2, result.Move)
		assert.Equal(t, scoreDraw, result.Score)
	})

	t.Run("Minimizing side takes the human win", func(t *testing.T) {
		board := entity.Board{
			x, x, e,
			o, o, e,
			e, e, e,
		}

		result := Search(&board, false)

		assert.Equal(t, 2, result.Move)
		assert.Equal(t, scoreHumanWin, result.Score)
	})

	t.Run("Terminal positions have no move", func(t *testing.T) {
		tests := []struct {
			name  string
			board entity.Board
			score int
		}{
			{"computer won", entity.Board{o, o, o, x, x, e, x, e, e}, scoreComputerWin},
			{"human won", entity.Board{x, x, x, o, o, e, e, e, e}, scoreHumanWin},
			{"draw", entity.Board{x, o, x, x, o, o, o, x, x}, scoreDraw},
			{"computer line is checked first", entity.Board{o, o, o, x, x, x, e, e, e}, scoreComputerWin},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				before := tt.board

				result := Search(&tt.board, true)

				assert.Equal(t, tt.score, result.Score)
				assert.Equal(t, NoMove, result.Move)
				assert.Equal(t, 1, result.Nodes)
				assert.Equal(t, before, tt.board)
			})
		}
	})

	t.Run("Board is restored after every search", func(t *testing.T) {
		// Given: every position after one move from each side
		for first := 0; first < entity.BoardSize; first++ {
			for second := 0; second < entity.BoardSize; second++ {
				if first == second {
					continue
				}

				var board entity.Board
				board[first] = x
				board[second] = o
				before := board

				// When: searching from both sides
				maxResult := Search(&board, true)
				minResult := Search(&board, false)

				// Then: the board is unchanged and the scores are valid
				require.Equal(t, before, board)
				assert.Contains(t, []int{-1, 0, 1}, maxResult.Score)
				assert.Contains(t, []int{-1, 0, 1}, minResult.Score)
				assert.NotEqual(t, NoMove, maxResult.Move)
				assert.NotEqual(t, NoMove, minResult.Move)
			}
		}
	})
}

func TestBestComputerMove(t *testing.T) {
	t.Run("Never loses when the human moves first", func(t *testing.T) {
		var board entity.Board
		assertComputerNeverLoses(t, &board, true)
	})

	t.Run("Never loses when the computer moves first", func(t *testing.T) {
		var board entity.Board
		assertComputerNeverLoses(t, &board, false)
	})

	t.Run("Falls back to the first empty cell on a decided board", func(t *testing.T) {
		board := entity.Board{
			x, x, x,
			o, o, e,
			e, e, e,
		}

		assert.Equal(t, 5, BestComputerMove(&board))
	})

	t.Run("No move on a full board", func(t *testing.T) {
		board := entity.Board{x, o, x, x, o, o, o, x, x}

		assert.Equal(t, NoMove, BestComputerMove(&board))
	})
}

// assertComputerNeverLoses plays every legal human line against the computer.
func assertComputerNeverLoses(t *testing.T, board *entity.Board, humanToMove bool) {
	t.Helper()

	if board.HasWinningLine(x) {
		require.FailNow(t, "human won", "board %v", *board)
	}

	if board.HasWinningLine(o) || board.IsFull() {
		return
	}

	if !humanToMove {
		cell := BestComputerMove(board)
		require.NotEqual(t, NoMove, cell)

		board.ApplyMove(cell, o)
		assertComputerNeverLoses(t, board, true)
		board[cell] = e

		return
	}

	for _, cell := range board.AvailableMoves() {
		board.ApplyMove(cell, x)
		assertComputerNeverLoses(t, board, false)
		board[cell] = e
	}
}
