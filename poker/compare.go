package poker

// Outcome is the result of comparing two hands
type Outcome int

const (
	HandAWins Outcome = iota
	HandBWins
	Tie
)

// String returns the wire code for the outcome: "0" for a hand A win, "1"
// for a hand B win, "01" for a tie
func (o Outcome) String() string {
	switch o {
	case HandAWins:
		return "0"
	case HandBWins:
		return "1"
	case Tie:
		return "01"
	default:
		return "?"
	}
}

// Compare determines the winner between two hands. A higher category wins
// outright; within a category the tie-break rank vectors are compared
// position by position, and hands that never differ are tied.
func Compare(a, b *Hand) Outcome {
	if a.category != b.category {
		if a.category > b.category {
			return HandAWins
		}
		return HandBWins
	}

	for i := 0; i < len(a.tiebreak) && i < len(b.tiebreak); i++ {
		if a.tiebreak[i] == b.tiebreak[i] {
			continue
		}
		if a.tiebreak[i] > b.tiebreak[i] {
			return HandAWins
		}
		return HandBWins
	}
	return Tie
}
