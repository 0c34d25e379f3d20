package entity

// Score - results of the rounds played since the process started.
type Score struct {
	WinsX int
	WinsO int
	Ties  int
}

// Record - counts a finished round, ongoing outcomes are ignored.
func (that *Score) Record(outcome Outcome) {
	switch outcome.Status {
	case StatusWin:
		if outcome.Winner == PlayerX {
			that.WinsX++
		} else {
			that.WinsO++
		}
	case StatusTie:
		that.Ties++
	case StatusOngoing:
	}
}

func (that Score) Rounds() int {
	return that.WinsX + that.WinsO + that.Ties
}
