package tictactoe

import "github.com/rocketscienceinc/tictactoe-console/internal/entity"

// NoMove marks a search result without a recommended cell.
const NoMove = -1

const (
	scoreComputerWin = 1
	scoreHumanWin    = -1
	scoreDraw        = 0

	// any real score beats these
	worstForMax = scoreHumanWin - 1
	worstForMin = scoreComputerWin + 1
)

// Result is the minimax value of a position from the computer's side.
type Result struct {
	Score int
	Move  int
	Nodes int
}

// Search runs a full minimax over board with the computer maximizing.
// Candidates are tried in ascending cell order and only a strictly better
// score replaces the current best, so ties go to the lowest cell.
// The board is changed during the search and restored before returning.
func Search(board *entity.Board, maximizing bool) Result {
	var nodes int

	score, move := minimax(board, maximizing, &nodes)

	return Result{Score: score, Move: move, Nodes: nodes}
}

func minimax(board *entity.Board, maximizing bool, nodes *int) (int, int) {
	*nodes++

	switch {
	case board.HasWinningLine(entity.ComputerMark):
		return scoreComputerWin, NoMove
	case board.HasWinningLine(entity.HumanMark):
		return scoreHumanWin, NoMove
	case board.IsFull():
		return scoreDraw, NoMove
	}

	best, bestMove := worstForMin, NoMove
	mark := entity.HumanMark
	if maximizing {
		best, mark = worstForMax, entity.ComputerMark
	}

	for _, cell := range board.AvailableMoves() {
		board[cell] = mark
		score, _ := minimax(board, !maximizing, nodes)
		board[cell] = entity.EmptyCell

		if (maximizing && score > best) || (!maximizing && score < best) {
			best, bestMove = score, cell
		}
	}

	return best, bestMove
}

// BestComputerMove returns the computer's optimal cell. On a board that is
// already decided it falls back to the first empty cell, and to NoMove when
// the board is full.
func BestComputerMove(board *entity.Board) int {
	if result := Search(board, true); result.Move != NoMove {
		return result.Move
	}

	if moves := board.AvailableMoves(); len(moves) > 0 {
		return moves[0]
	}

	return NoMove
}
