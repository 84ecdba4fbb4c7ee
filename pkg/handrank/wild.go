package handrank

import (
	"github.com/sirupsen/logrus"

	"mondaynightpoker-handeval/pkg/deck"
)

// splitJokers separates the jokers from the concrete cards
// Repeated cards are only counted once.
func splitJokers(hand deck.Hand) (jokers, concrete deck.Hand) {
	unique := hand.Unique()
	jokers = make(deck.Hand, 0, 2)
	concrete = make(deck.Hand, 0, len(unique))
	for _, c := range unique {
		if c.IsWild() {
			jokers.AddCard(c)
		} else {
			concrete.AddCard(c)
		}
	}

	return jokers, concrete
}

// BestWildHand returns the best five cards of a hand that may hold a black
// joker (?B, any club or spade) and a red joker (?R, any heart or diamond).
// A joker never stands in for a card that is already held, with one joker as
// well as with two, so AS AC KD QH 2D 3H ?B is two pair rather than trip aces.
// The result never contains a joker.
func (e *Evaluator) BestWildHand(hand deck.Hand) (deck.Hand, error) {
	if err := validate(hand); err != nil {
		return nil, err
	}

	jokers, concrete := splitJokers(hand)

	switch len(jokers) {
	case 0:
		best, _, err := e.bestHand(concrete, HandSize)
		return best, err
	case 1:
		return e.bestWithOneJoker(jokers[0], concrete)
	default:
		return e.bestWithTwoJokers(concrete)
	}
}

// bestWithOneJoker completes the best four concrete cards with every substitute
func (e *Evaluator) bestWithOneJoker(joker deck.Card, concrete deck.Hand) (deck.Hand, error) {
	four, _, err := e.bestHand(concrete, HandSize-1)
	if err != nil {
		return nil, err
	}

	var best deck.Hand
	var bestRank Rank
	for _, sub := range e.deck.Substitutes(joker, concrete) {
		candidate := append(four.Clone(), sub)
		r, err := e.handRank(candidate)
		if err != nil {
			return nil, err
		}

		if best == nil || r.Compare(bestRank) > 0 {
			best = candidate
			bestRank = r
		}
	}

	e.log.WithFields(logrus.Fields{
		"joker": joker,
		"hand":  best.String(),
		"rank":  bestRank.String(),
	}).Debug("joker substituted")

	return best, nil
}

// bestWithTwoJokers searches every pair of substitutes.
//
// Extending the best three concrete cards one joker at a time is not enough.
// For TD TC 5H 5C 7C ?R ?B the best three cards are the club flush TC 7C 5C,
// which only reaches three tens once both jokers are added, while using both
// jokers as tens alongside TD TC makes four of a kind.
func (e *Evaluator) bestWithTwoJokers(concrete deck.Hand) (deck.Hand, error) {
	blacks := e.deck.Substitutes(deck.BlackJoker, concrete)
	reds := e.deck.Substitutes(deck.RedJoker, concrete)

	var best deck.Hand
	var bestRank Rank
	pool := make(deck.Hand, len(concrete), len(concrete)+2)
	copy(pool, concrete)
	for _, black := range blacks {
		for _, red := range reds {
			h, r, err := e.bestHand(append(pool[:len(concrete)], black, red), HandSize)
			if err != nil {
				return nil, err
			}

			if best == nil || r.Compare(bestRank) > 0 {
				best = h
				bestRank = r
			}
		}
	}

	e.log.WithFields(logrus.Fields{
		"hand": best.String(),
		"rank": bestRank.String(),
	}).Debug("jokers substituted")

	return best, nil
}
