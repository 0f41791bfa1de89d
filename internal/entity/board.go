package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

type Mark string

const (
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
	PlayerTie Mark = "-"

	EmptyCell Mark = ""

	HumanMark    = PlayerX
	ComputerMark = PlayerO
)

const BoardSize = 9

// WinCombos lists every row, column and diagonal of the board.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is a 3x3 grid in row-major order: index = row*3 + col.
type Board [BoardSize]Mark

// HasWinningLine reports whether mark occupies a whole row, column or diagonal.
func (that *Board) HasWinningLine(mark Mark) bool {
	for _, combo := range WinCombos {
		if that[combo[0]] == mark && that[combo[1]] == mark && that[combo[2]] == mark {
			return true
		}
	}

	return false
}

func (that *Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// AvailableMoves returns the empty cells in ascending order.
func (that *Board) AvailableMoves() []int {
	moves := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == EmptyCell {
			moves = append(moves, i)
		}
	}

	return moves
}

// ApplyMove places mark on an empty cell. Callers validate the cell first;
// breaking that contract panics instead of corrupting the board.
func (that *Board) ApplyMove(cell int, mark Mark) {
	if cell < 0 || cell >= BoardSize {
		panic(fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell))
	}

	if that[cell] != EmptyCell {
		panic(fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell))
	}

	that[cell] = mark
}

func (that *Board) Cell(cell int) (Mark, error) {
	if cell < 0 || cell >= BoardSize {
		return EmptyCell, fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	return that[cell], nil
}
