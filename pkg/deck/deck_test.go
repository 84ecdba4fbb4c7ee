package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDeck(t *testing.T) {
	deck := New()

	assert.Len(t, deck.Cards, 52)
	assert.Equal(t, Hand{"2C", "2S", "2H", "2D", "3C"}, deck.Cards[0:5])
	assert.Equal(t, Card("AC"), deck.Cards[48])
	assert.Equal(t, Card("AD"), deck.Cards[51])
	assert.Len(t, deck.Cards.Unique(), 52)
}

func TestDeck_Substitutes(t *testing.T) {
	a := assert.New(t)
	d := New()

	subs := d.Substitutes(BlackJoker, nil)
	a.Len(subs, 26)
	a.Equal(Hand{"2C", "2S", "3C", "3S"}, subs[0:4])
	a.Equal(Hand{"AC", "AS"}, subs[24:])

	subs = d.Substitutes(RedJoker, Hand{"2H", "AD", "AS"})
	a.Len(subs, 24)
	a.Equal(Card("2D"), subs[0])
	a.Equal(Card("AH"), subs[23])
	a.False(subs.HasCard("2H"))
	a.False(subs.HasCard("AD"))

	a.Len(d.Substitutes("AS", nil), 0)
}

func TestDeck_Substitutes_onlyFromDeck(t *testing.T) {
	a := assert.New(t)

	// a reduced deck limits the substitutes
	d := &Deck{Cards: Hand{"2C", "2H", "KS", "KD", "AC"}}
	a.Equal(Hand{"2C", "KS", "AC"}, d.Substitutes(BlackJoker, nil))
	a.Equal(Hand{"KS"}, d.Substitutes(BlackJoker, Hand{"2C", "AC"}))
	a.Equal(Hand{"2H", "KD"}, d.Substitutes(RedJoker, nil))
}
