package handrank

import "mondaynightpoker-handeval/pkg/deck"

var defaultEvaluator = New()

// CardRanks returns the rank values of the hand, highest first
// Cards with an unknown rank character are dropped.
func CardRanks(hand deck.Hand) ([]int, error) {
	return defaultEvaluator.CardRanks(hand)
}

// IsFlush returns true if all cards share one suit
func IsFlush(hand deck.Hand) (bool, error) {
	return defaultEvaluator.IsFlush(hand)
}

// HandRank returns the rank of the hand
func HandRank(hand deck.Hand) (Rank, error) {
	return defaultEvaluator.HandRank(hand)
}

// BestHand returns the best five cards of the hand
func BestHand(hand deck.Hand) (deck.Hand, error) {
	return defaultEvaluator.BestHand(hand)
}

// BestHandOfSize returns the best {size} cards of the hand
func BestHandOfSize(hand deck.Hand, size int) (deck.Hand, error) {
	return defaultEvaluator.BestHandOfSize(hand, size)
}

// BestWildHand returns the best five cards of a hand that may hold jokers
func BestWildHand(hand deck.Hand) (deck.Hand, error) {
	return defaultEvaluator.BestWildHand(hand)
}
