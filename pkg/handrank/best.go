package handrank

import (
	"fmt"

	"mondaynightpoker-handeval/pkg/deck"
)

// HandSize is the number of cards in a poker hand
const HandSize = 5

// BestHand returns the best five cards of the hand
func (e *Evaluator) BestHand(hand deck.Hand) (deck.Hand, error) {
	return e.BestHandOfSize(hand, HandSize)
}

// BestHandOfSize returns the best {size} cards of the hand
// When two combinations rank the same, the one found first wins. The hand is
// not modified.
func (e *Evaluator) BestHandOfSize(hand deck.Hand, size int) (deck.Hand, error) {
	if err := validate(hand); err != nil {
		return nil, err
	}

	best, _, err := e.bestHand(hand, size)
	return best, err
}

func (e *Evaluator) bestHand(hand deck.Hand, size int) (deck.Hand, Rank, error) {
	if size < 1 {
		return nil, Rank{}, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	if len(hand) < size {
		return nil, Rank{}, fmt.Errorf("%w: need %d, have %d", ErrNotEnoughCards, size, len(hand))
	}

	var best deck.Hand
	var bestRank Rank

	combo := make(deck.Hand, size)
	err := eachCombination(len(hand), size, func(indexes []int) error {
		for i, j := range indexes {
			combo[i] = hand[j]
		}

		r, err := e.handRank(combo)
		if err != nil {
			return err
		}

		if best == nil || r.Compare(bestRank) > 0 {
			best = combo.Clone()
			bestRank = r
		}

		return nil
	})
	if err != nil {
		return nil, Rank{}, err
	}

	return best, bestRank, nil
}

// eachCombination calls fn with every {choose} sized combination of the indexes 0..n-1,
// in lexicographic order. The slice passed to fn is reused between calls.
func eachCombination(n, choose int, fn func(indexes []int) error) error {
	combo := make([]int, choose)

	var walk func(start, depth int) error
	walk = func(start, depth int) error {
		if depth == choose {
			return fn(combo)
		}

		for i := start; i <= n-(choose-depth); i++ {
			combo[depth] = i
			if err := walk(i+1, depth+1); err != nil {
				return err
			}
		}

		return nil
	}

	return walk(0, 0)
}
