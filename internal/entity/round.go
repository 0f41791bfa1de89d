package entity

const (
	StatusInProgress  = "in_progress"
	StatusHumanWon    = "human_won"
	StatusComputerWon = "computer_won"
	StatusDraw        = "draw"
)

// Round is a single game from the empty board to a win or a draw.
type Round struct {
	Board  Board  `json:"board"`
	Turn   Mark   `json:"turn"`
	Winner Mark   `json:"winner"`
	Status string `json:"status"`
}

func NewRound() *Round {
	return &Round{
		Turn:   HumanMark,
		Status: StatusInProgress,
	}
}

func (that *Round) IsFinished() bool {
	return that.Status != StatusInProgress
}

func (that *Round) IsHumanTurn() bool {
	return that.Turn == HumanMark
}
