package entity

// Score counts finished rounds of one session.
type Score struct {
	Human    int `json:"human"`
	Computer int `json:"computer"`
	Draws    int `json:"draws"`
}

// Record adds the outcome of a finished round. Unfinished rounds are ignored.
func (that *Score) Record(round *Round) {
	switch round.Status {
	case StatusHumanWon:
		that.Human++
	case StatusComputerWon:
		that.Computer++
	case StatusDraw:
		that.Draws++
	}
}

func (that *Score) Rounds() int {
	return that.Human + that.Computer + that.Draws
}
