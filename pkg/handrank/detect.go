package handrank

import (
	"sort"

	"mondaynightpoker-handeval/pkg/deck"
)

// isFlush returns true if every card shares one suit character
func isFlush(hand deck.Hand) bool {
	if len(hand) == 0 {
		return false
	}

	suit := hand[0].Suit()
	for _, c := range hand[1:] {
		if c.Suit() != suit {
			return false
		}
	}

	return true
}

// IsStraight returns true if there are exactly five distinct ranks and the
// highest is four above the lowest.
// An ace is always high, so A-2-3-4-5 is not a straight.
func IsStraight(ranks []int) bool {
	if len(ranks) == 0 {
		return false
	}

	distinct := make(map[int]bool, len(ranks))
	high, low := ranks[0], ranks[0]
	for _, r := range ranks {
		distinct[r] = true
		if r > high {
			high = r
		}

		if r < low {
			low = r
		}
	}

	return len(distinct) == 5 && high-low == 4
}

// Kind returns the first rank that appears exactly n times
func Kind(n int, ranks []int) (int, bool) {
	counts := countRanks(ranks)
	for _, r := range ranks {
		if counts[r] == n {
			return r, true
		}
	}

	return 0, false
}

// TwoPairRanks returns the two highest ranks that appear exactly twice, highest first
func TwoPairRanks(ranks []int) ([]int, bool) {
	counts := countRanks(ranks)
	pairs := make([]int, 0, 2)
	for r, n := range counts {
		if n == 2 {
			pairs = append(pairs, r)
		}
	}

	if len(pairs) < 2 {
		return nil, false
	}

	sortDescending(pairs)
	return pairs[0:2], true
}

func countRanks(ranks []int) map[int]int {
	counts := make(map[int]int, len(ranks))
	for _, r := range ranks {
		counts[r]++
	}

	return counts
}

func sortDescending(ranks []int) {
	sort.Sort(sort.Reverse(sort.IntSlice(ranks)))
}
