package poker

// Rank represents a card rank. This is a rank-only poker variant: there are
// no suits, a card is entirely described by its rank symbol.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Wildcard is the input symbol for the joker-like card that may substitute
// for any rank. It is resolved during classification and is never a Rank.
const Wildcard byte = '*'

// String returns the lowercase rank symbol
func (r Rank) String() string {
	switch r {
	case Two:
		return "2"
	case Three:
		return "3"
	case Four:
		return "4"
	case Five:
		return "5"
	case Six:
		return "6"
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "t"
	case Jack:
		return "j"
	case Queen:
		return "q"
	case King:
		return "k"
	case Ace:
		return "a"
	default:
		return "?"
	}
}

// parseRank converts a lowercase symbol to a Rank
func parseRank(c byte) (Rank, bool) {
	switch c {
	case '2':
		return Two, true
	case '3':
		return Three, true
	case '4':
		return Four, true
	case '5':
		return Five, true
	case '6':
		return Six, true
	case '7':
		return Seven, true
	case '8':
		return Eight, true
	case '9':
		return Nine, true
	case 't':
		return Ten, true
	case 'j':
		return Jack, true
	case 'q':
		return Queen, true
	case 'k':
		return King, true
	case 'a':
		return Ace, true
	default:
		return 0, false
	}
}
