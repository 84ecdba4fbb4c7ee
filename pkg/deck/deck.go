package deck

// Deck is the reference 52-card deck
// Cards are never shuffled or drawn, the deck is only used to enumerate
// what a joker may stand in for.
type Deck struct {
	Cards Hand `json:"cards"`
}

// New returns a new deck ordered by rank, then by suit in the order of Suits
func New() *Deck {
	d := &Deck{}
	d.buildDeck()
	return d
}

func (d *Deck) buildDeck() {
	cards := make(Hand, 0, 52)
	for rank := 2; rank <= Ace; rank++ {
		for _, suit := range Suits {
			cards = append(cards, MakeCard(rank, suit))
		}
	}

	d.Cards = cards
}

// Substitutes returns every card of the deck the joker may represent, in deck order,
// skipping any card that is already held.
// A non-joker card has no substitutes.
func (d *Deck) Substitutes(joker Card, held Hand) Hand {
	suits := joker.WildSuits()
	if len(suits) == 0 {
		return Hand{}
	}

	subs := make(Hand, 0, len(suits)*13)
	for _, card := range d.Cards {
		if !hasSuit(suits, card.Suit()) || held.HasCard(card) {
			continue
		}

		subs = append(subs, card)
	}

	return subs
}

func hasSuit(suits []Suit, suit Suit) bool {
	for _, s := range suits {
		if s == suit {
			return true
		}
	}

	return false
}
