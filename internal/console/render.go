package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const rowSeparator = "  ---+---+---\n"

// RenderBoard writes the board with 1-based row and column headers.
func RenderBoard(w io.Writer, board *entity.Board) error {
	var sb strings.Builder

	sb.WriteString("\n\n   1   2   3\n")
	for row := 0; row < 3; row++ {
		if row > 0 {
			sb.WriteString(rowSeparator)
		}

		fmt.Fprintf(&sb, "%d  %s | %s | %s\n",
			row+1, cellSymbol(board[row*3]), cellSymbol(board[row*3+1]), cellSymbol(board[row*3+2]))
	}
	sb.WriteString("\n\n")

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to render board: %w", err)
	}

	return nil
}

func cellSymbol(mark entity.Mark) string {
	if mark == entity.EmptyCell {
		return " "
	}

	return string(mark)
}
