package poker

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsInvalidHands(t *testing.T) {
	tests := []struct {
		name string
		hand string
	}{
		{"empty string", ""},
		{"too short", "aaaa"},
		{"too long", "aaaaaa"},
		{"invalid letter", "aaaaf"},
		{"digit outside alphabet", "aaaa1"},
		{"five of one rank", "aaaaa"},
		{"two wildcards", "**234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.hand)
			require.Error(t, err)

			var invalid *InvalidHandError
			require.True(t, errors.As(err, &invalid), "want *InvalidHandError, got %T", err)
			assert.Equal(t, tt.hand, invalid.Hand)
			assert.NotEmpty(t, invalid.Reason)
		})
	}
}

func TestNewIsCaseInsensitive(t *testing.T) {
	upper, err := New("TJQKA")
	require.NoError(t, err)
	lower, err := New("tjqka")
	require.NoError(t, err)

	assert.Equal(t, lower.Category(), upper.Category())
	assert.Equal(t, lower.Tiebreak(), upper.Tiebreak())
	assert.Equal(t, "tjqka", upper.String())
}

func TestNewAcceptsAnyCardOrder(t *testing.T) {
	// A hand is a multiset; order of input symbols must not matter
	a := MustNew("2q222")
	b := MustNew("2222q")

	assert.Equal(t, a.Category(), b.Category())
	assert.Equal(t, a.Tiebreak(), b.Tiebreak())
}

func TestTiebreakReturnsCopy(t *testing.T) {
	h := MustNew("53929")
	v := h.Tiebreak()
	v[0] = Two

	assert.Equal(t, []Rank{Nine, Five}, h.Tiebreak(), "mutating the returned vector must not touch the hand")
}

func TestReparseIsIdempotent(t *testing.T) {
	// Re-parsing a hand's own normalized form classifies identically
	for _, raw := range []string{"2Q2*2", "TJQKA", "a2a32", "*9725"} {
		h := MustNew(raw)
		again := MustNew(h.String())
		assert.Equal(t, h.Category(), again.Category(), "hand %q", raw)
		assert.Equal(t, h.Tiebreak(), again.Tiebreak(), "hand %q", raw)
	}
}
