package deck

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrInvalidCard is returned when a card token is not exactly two characters
var ErrInvalidCard = errors.New("invalid card")

// ErrUnknownRank is returned when a card token has a rank outside of 23456789TJQKA
var ErrUnknownRank = errors.New("unknown rank")

// ErrUnknownSuit is returned when a card token has a suit outside of CSHD
var ErrUnknownSuit = errors.New("unknown suit")

// Suit represents a card suit
type Suit byte

// suit constants
const (
	Clubs    Suit = 'C'
	Spades   Suit = 'S'
	Hearts   Suit = 'H'
	Diamonds Suit = 'D'
)

// Suits lists the suits in the order used when building a deck
var Suits = []Suit{Clubs, Spades, Hearts, Diamonds}

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "clubs"
	case Spades:
		return "spades"
	case Hearts:
		return "hearts"
	case Diamonds:
		return "diamonds"
	default:
		return string(rune(s))
	}
}

// Symbol returns the unicode symbol for the suit
func (s Suit) Symbol() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♢"
	case Hearts:
		return "♡"
	case Spades:
		return "♠"
	default:
		return string(rune(s))
	}
}

// face cards
const (
	Jack  = 11
	Queen = 12
	King  = 13
	Ace   = 14
)

// rankOrder maps a rank character to its value by index
const rankOrder = "0023456789TJQKA"

// Card is a two character token, rank first and suit second, e.g., TH is the ten of hearts
type Card string

// jokers
const (
	// BlackJoker can stand in for any club or spade
	BlackJoker Card = "?B"
	// RedJoker can stand in for any heart or diamond
	RedJoker Card = "?R"
)

// MakeCard returns the card for the rank and suit
func MakeCard(rank int, suit Suit) Card {
	if rank < 2 || rank > Ace {
		panic(fmt.Sprintf("rank out of range: %d", rank))
	}

	return Card([]byte{rankOrder[rank], byte(suit)})
}

func (c Card) String() string {
	return string(c)
}

// Valid returns true if the card has the shape of a token (two characters)
// It does not check that the rank or suit are known
func (c Card) Valid() bool {
	return len(c) == 2
}

// Rank returns the rank value of the card (2 through 14)
// The boolean is false if the rank character is unknown or the card is a joker
func (c Card) Rank() (int, bool) {
	if !c.Valid() || c[0] == '0' {
		return 0, false
	}

	i := strings.IndexByte(rankOrder, c[0])
	if i < 0 {
		return 0, false
	}

	return i, true
}

// Suit returns the suit of the card
// Jokers and malformed cards return whatever character is in the suit position
func (c Card) Suit() Suit {
	if len(c) < 2 {
		return 0
	}

	return Suit(c[1])
}

// IsWild returns true if the card is one of the two jokers
func (c Card) IsWild() bool {
	return c == BlackJoker || c == RedJoker
}

// WildSuits returns the suits a joker may represent
func (c Card) WildSuits() []Suit {
	switch c {
	case BlackJoker:
		return []Suit{Clubs, Spades}
	case RedJoker:
		return []Suit{Hearts, Diamonds}
	default:
		return nil
	}
}

// Pretty returns a human friendly representation, i.e., J♣
func (c Card) Pretty() string {
	switch c {
	case BlackJoker:
		return "🃏B"
	case RedJoker:
		return "🃏R"
	}

	rank, ok := c.Rank()
	if !ok {
		return string(c)
	}

	var r string
	switch rank {
	case 10:
		r = "10"
	default:
		r = string(rankOrder[rank])
	}

	return r + c.Suit().Symbol()
}

// ParseCard strictly parses a card token
// The token is case-insensitive. Jokers are accepted.
func ParseCard(s string) (Card, error) {
	c := Card(strings.ToUpper(s))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	if c.IsWild() {
		return c, nil
	}

	if _, ok := c.Rank(); !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRank, s)
	}

	switch c.Suit() {
	case Clubs, Spades, Hearts, Diamonds:
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSuit, s)
	}

	return c, nil
}

// CardsFromString parses cards separated by whitespace or commas, i.e., "TD TC 5H" or "TD,TC,5H"
func CardsFromString(s string) (Hand, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	cards := make(Hand, len(fields))
	for i, field := range fields {
		card, err := ParseCard(field)
		if err != nil {
			return nil, err
		}

		cards[i] = card
	}

	return cards, nil
}

// CardsToString joins the cards with a single space
func CardsToString(cards []Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = string(card)
	}

	return strings.Join(c, " ")
}
