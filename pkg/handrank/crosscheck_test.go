package handrank

import (
	"testing"

	"github.com/paulhankin/poker"
	"github.com/stretchr/testify/assert"

	"mondaynightpoker-handeval/pkg/deck"
)

var phSuits = map[deck.Suit]poker.Suit{
	deck.Clubs:    poker.Club,
	deck.Diamonds: poker.Diamond,
	deck.Hearts:   poker.Heart,
	deck.Spades:   poker.Spade,
}

func evalPH(t *testing.T, h deck.Hand) int16 {
	t.Helper()

	var cards [5]poker.Card
	for i, c := range h {
		r, ok := c.Rank()
		if !assert.True(t, ok) {
			return 0
		}

		// aces are low in the library
		if r == deck.Ace {
			r = 1
		}

		card, err := poker.MakeCard(phSuits[c.Suit()], poker.Rank(r))
		if !assert.NoError(t, err) {
			return 0
		}

		cards[i] = card
	}

	return poker.Eval5(&cards)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}

	return 0
}

// TestHandRank_agreesWithPaulhankin compares the ordering of every pair of hands
// against an independent evaluator. Wheel straights are left out as they are
// never straights here.
func TestHandRank_agreesWithPaulhankin(t *testing.T) {
	hands := []string{
		"AS KD 7C 3H 4S",
		"KS QD 7C 3H 4S",
		"2S 2D 4C 5H 6S",
		"AS AD 2C 3H 4S",
		"AS AD KC 3H 4S",
		"3S 3D 2C 2H 4S",
		"AS AD KC KH 2S",
		"AS AD KC KH QS",
		"2S 2D 2C 3H 4S",
		"AS AD AC 2H 3S",
		"2S 3D 4C 5H 6S",
		"9S TD JC QH KS",
		"TS JD QC KH AS",
		"2H 3H 4H 5H 7H",
		"AH 3H 4H 5H 7H",
		"AH KH QH JH 9H",
		"2S 2D 2C 3H 3S",
		"3S 3D 3C 2H 2S",
		"2S 2D 2C 2H 3S",
		"3S 3D 3C 3H 2S",
		"AS AD AC AH KS",
		"2H 3H 4H 5H 6H",
		"9C TC JC QC KC",
		"TH JH QH KH AH",
	}

	// find out which way the library orders hands
	direction := sign(int(evalPH(t, hand("TH JH QH KH AH"))) - int(evalPH(t, hand("KS QD 7C 3H 4S"))))
	assert.NotEqual(t, 0, direction)

	for i, h1 := range hands {
		r1, err := HandRank(hand(h1))
		assert.NoError(t, err)
		p1 := int(evalPH(t, hand(h1)))

		for _, h2 := range hands[i+1:] {
			r2, err := HandRank(hand(h2))
			assert.NoError(t, err)
			p2 := int(evalPH(t, hand(h2)))

			assert.Equal(t, direction*sign(p1-p2), r1.Compare(r2), "%s vs %s", h1, h2)
		}
	}
}
