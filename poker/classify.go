package poker

import (
	"fmt"
	"sort"
)

// Category represents the strength class of a hand. Higher values beat
// lower ones. There is no Flush or StraightFlush in a rank-only variant,
// and a Straight sits between ThreeOfAKind and FullHouse.
type Category int

const (
	HighCard Category = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	FullHouse
	FourOfAKind
)

// String returns the category name as printed by the CLI
func (c Category) String() string {
	switch c {
	case HighCard:
		return "HIGHCARD"
	case Pair:
		return "PAIR"
	case TwoPair:
		return "TWOPAIR"
	case ThreeOfAKind:
		return "THREEOFAKIND"
	case Straight:
		return "STRAIGHT"
	case FullHouse:
		return "FULLHOUSE"
	case FourOfAKind:
		return "FOUROFAKIND"
	default:
		return "UNKNOWN"
	}
}

// rankGroup pairs a rank with how many copies of it the hand holds
type rankGroup struct {
	rank  Rank
	count int
}

// classify determines the category and tie-break rank vector for a
// validated hand. Straights are tried first; every other category falls out
// of the count signature. Panics on a signature that maps to no category,
// which is unreachable for a hand that passed validation.
func classify(cards string) (Category, []Rank) {
	if high, ok := straightHigh(cards); ok {
		return Straight, []Rank{high}
	}

	groups, wilds := countRanks(cards)
	groups = backfillWildcards(groups, wilds)
	groups = dropExtraSingles(groups)

	sig := 0
	tiebreak := make([]Rank, 0, len(groups))
	for _, g := range groups {
		sig = sig*10 + g.count
		tiebreak = append(tiebreak, g.rank)
	}

	cat, ok := categoryForSignature(sig)
	if !ok {
		panic(fmt.Sprintf("no category for count signature %d (hand %q)", sig, cards))
	}
	return cat, tiebreak
}

// straightHigh reports the high card of the straight the hand makes, if
// any. Five-card windows over the ace-low..ace-high rank sequence are
// scanned from the top down and the first window covering every non-wild
// rank wins, so a wildcard always fills the gap that yields the highest
// straight: *2345 is 6-high, not 5-high.
func straightHigh(cards string) (Rank, bool) {
	distinct := make(map[byte]bool, HandSize)
	for i := 0; i < len(cards); i++ {
		distinct[cards[i]] = true
	}

	// A repeated symbol means a duplicated rank the wildcard cannot undo
	if len(distinct) < HandSize {
		return 0, false
	}

	ranks := make([]Rank, 0, HandSize)
	for c := range distinct {
		if c == Wildcard {
			continue
		}
		r, _ := parseRank(c)
		ranks = append(ranks, r)
	}

	for hi := Ace; hi >= Five; hi-- {
		covered := true
		for _, r := range ranks {
			if !windowContains(hi, r) {
				covered = false
				break
			}
		}
		if covered {
			return hi, true
		}
	}
	return 0, false
}

// windowContains reports whether rank r falls in the straight window ending
// at hi. The five-high window reaches down to the low ace.
func windowContains(hi, r Rank) bool {
	lo := hi - (HandSize - 1)
	if r >= lo && r <= hi {
		return true
	}
	return r == Ace && lo == Rank(1)
}

// countRanks tallies the non-wild ranks and sorts the groups descending by
// count, then by rank within equal counts
func countRanks(cards string) ([]rankGroup, int) {
	counts := make(map[Rank]int, HandSize)
	wilds := 0
	for i := 0; i < len(cards); i++ {
		if cards[i] == Wildcard {
			wilds++
			continue
		}
		r, _ := parseRank(cards[i])
		counts[r]++
	}

	groups := make([]rankGroup, 0, len(counts))
	for r, n := range counts {
		groups = append(groups, rankGroup{rank: r, count: n})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}
		return groups[i].rank > groups[j].rank
	})
	return groups, wilds
}

// backfillWildcards spends the wildcard where it raises the hand most: top
// up the existing groups in sorted order, then add new singles of the
// highest rank not already in the hand
func backfillWildcards(groups []rankGroup, wilds int) []rankGroup {
	used := make(map[Rank]bool, len(groups))
	for i := range groups {
		extra := min(wilds, maxSameRank-groups[i].count)
		groups[i].count += extra
		wilds -= extra
		used[groups[i].rank] = true
	}

	for wilds > 0 {
		r := highestUnused(used)
		n := min(wilds, maxSameRank)
		groups = append(groups, rankGroup{rank: r, count: n})
		used[r] = true
		wilds -= n
	}
	return groups
}

func highestUnused(used map[Rank]bool) Rank {
	for r := Ace; r >= Two; r-- {
		if !used[r] {
			return r
		}
	}
	// unreachable: a five-card hand never holds all thirteen ranks
	return 0
}

// dropExtraSingles truncates the group list after the first count-1 group.
// Only the first unmatched high card breaks ties; later singles never
// matter.
func dropExtraSingles(groups []rankGroup) []rankGroup {
	for i, g := range groups {
		if g.count == 1 {
			return groups[:i+1]
		}
	}
	return groups
}

// categoryForSignature maps a truncated count signature, encoded as decimal
// digits (two pair is 221), to its category. The five-card hand size bounds
// the domain to these six entries.
func categoryForSignature(sig int) (Category, bool) {
	switch sig {
	case 41:
		return FourOfAKind, true
	case 32:
		return FullHouse, true
	case 31:
		return ThreeOfAKind, true
	case 221:
		return TwoPair, true
	case 21:
		return Pair, true
	case 1:
		return HighCard, true
	default:
		return 0, false
	}
}
