// Package poker classifies five-card, rank-only poker hands and compares
// them. A hand may contain a single wildcard ('*') which is resolved to
// whatever rank gives the strongest result.
package poker

import (
	"fmt"
	"strings"
)

const (
	// HandSize is the only supported hand size
	HandSize = 5

	// maxSameRank is the most copies of one rank a hand may hold
	maxSameRank = 4
)

// InvalidHandError reports raw input that failed hand validation. It is
// returned by New and can be matched with errors.As.
type InvalidHandError struct {
	Hand   string
	Reason string
}

func (e *InvalidHandError) Error() string {
	return fmt.Sprintf("invalid hand %q: %s", e.Hand, e.Reason)
}

// Hand is a validated, immutable five-card hand. Its category and
// tie-breaking rank vector are computed once at construction.
type Hand struct {
	cards    string
	category Category
	tiebreak []Rank
}

// New parses and validates a raw hand string such as "2q2*2". Input is
// case-insensitive; each character must be a rank symbol (2-9, t, j, q, k,
// a) or the wildcard '*'. At most four of any rank and at most one wildcard
// are allowed. Returns an *InvalidHandError describing the violated rule
// otherwise.
func New(raw string) (*Hand, error) {
	cards := strings.ToLower(raw)

	if len(cards) != HandSize {
		return nil, &InvalidHandError{
			Hand:   raw,
			Reason: fmt.Sprintf("expected %d cards, got %d", HandSize, len(cards)),
		}
	}

	counts := make(map[byte]int, HandSize)
	for i := 0; i < len(cards); i++ {
		c := cards[i]
		if _, ok := parseRank(c); !ok && c != Wildcard {
			return nil, &InvalidHandError{
				Hand:   raw,
				Reason: fmt.Sprintf("invalid card %q", string(c)),
			}
		}
		counts[c]++
	}

	for c, n := range counts {
		if c != Wildcard && n > maxSameRank {
			return nil, &InvalidHandError{
				Hand:   raw,
				Reason: fmt.Sprintf("too many %ss: expected at most %d, got %d", string(c), maxSameRank, n),
			}
		}
	}

	if counts[Wildcard] > 1 {
		return nil, &InvalidHandError{
			Hand:   raw,
			Reason: fmt.Sprintf("expected at most one wild card, got %d", counts[Wildcard]),
		}
	}

	h := &Hand{cards: cards}
	h.category, h.tiebreak = classify(cards)
	return h, nil
}

// MustNew parses a hand and panics on error (for tests)
func MustNew(raw string) *Hand {
	h, err := New(raw)
	if err != nil {
		panic(fmt.Sprintf("failed to parse hand %q: %v", raw, err))
	}
	return h
}

// Category returns the hand's category
func (h *Hand) Category() Category {
	return h.category
}

// Tiebreak returns the hand's rank vector, highest significance first. The
// wildcard never appears here; it is resolved during classification.
func (h *Hand) Tiebreak() []Rank {
	out := make([]Rank, len(h.tiebreak))
	copy(out, h.tiebreak)
	return out
}

// String returns the normalized card symbols the hand was built from
func (h *Hand) String() string {
	return h.cards
}
