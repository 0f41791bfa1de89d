package console

import (
	"errors"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

var (
	ErrMoveFormat     = errors.New("move must look like row,col")
	ErrMoveNotNumber  = errors.New("row and column must be numbers")
	ErrMoveOutOfRange = errors.New("row and column must be between 1 and 3")
	ErrInvalidAnswer  = errors.New("answer must be yes or no")
)

var (
	yesAnswers = []string{"y", "yes"}
	noAnswers  = []string{"n", "no"}
)

// ParseMove converts "row,col" with 1-based coordinates into a board index.
func ParseMove(line string) (int, error) {
	rowPart, colPart, found := strings.Cut(strings.TrimSpace(line), ",")
	if !found {
		return 0, ErrMoveFormat
	}

	row, err := parseCoordinate(rowPart)
	if err != nil {
		return 0, err
	}

	col, err := parseCoordinate(colPart)
	if err != nil {
		return 0, err
	}

	return (row-1)*3 + (col - 1), nil
}

func parseCoordinate(part string) (int, error) {
	part = strings.TrimSpace(part)
	if part == "" || !lo.EveryBy([]rune(part), isASCIIDigit) {
		return 0, ErrMoveNotNumber
	}

	value, err := strconv.Atoi(part)
	if err != nil {
		return 0, ErrMoveNotNumber
	}

	if value < 1 || value > 3 {
		return 0, ErrMoveOutOfRange
	}

	return value, nil
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// ParseAnswer reads a yes/no reply.
func ParseAnswer(line string) (bool, error) {
	answer := strings.ToLower(strings.TrimSpace(line))

	switch {
	case lo.Contains(yesAnswers, answer):
		return true, nil
	case lo.Contains(noAnswers, answer):
		return false, nil
	default:
		return false, ErrInvalidAnswer
	}
}
