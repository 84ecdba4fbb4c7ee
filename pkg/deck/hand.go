package deck

import "sort"

// Hand represents a collection of cards
type Hand []Card

func (h Hand) Len() int {
	return len(h)
}

// Less orders by rank descending, then by suit
// Jokers and unknown ranks sort last
func (h Hand) Less(i, j int) bool {
	ri, _ := h[i].Rank()
	rj, _ := h[j].Rank()
	if ri != rj {
		return ri > rj
	}

	return h[i] < h[j]
}

func (h Hand) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

// AddCard adds a card to the hand
func (h *Hand) AddCard(card Card) {
	*h = append(*h, card)
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card Card) bool {
	for _, c := range h {
		if c == card {
			return true
		}
	}

	return false
}

// Sorted returns a sorted copy of the hand
func (h Hand) Sorted() Hand {
	h2 := h.Clone()
	sort.Sort(h2)
	return h2
}

// Unique returns a copy of the hand with repeated cards removed, keeping the first occurrence
func (h Hand) Unique() Hand {
	seen := make(map[Card]bool, len(h))
	h2 := make(Hand, 0, len(h))
	for _, c := range h {
		if seen[c] {
			continue
		}

		seen[c] = true
		h2 = append(h2, c)
	}

	return h2
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
