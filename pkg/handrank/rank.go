package handrank

import "mondaynightpoker-handeval/pkg/deck"

// Rank is the comparable value of a hand
// Ranks compare by category first and then by Values, element by element.
// When one set of values is a prefix of the other, the shorter one is lower.
type Rank struct {
	Category Category `json:"category"`
	Values   []int    `json:"values"`
}

// Compare returns -1 if r is weaker than other, 0 if equal, and 1 if r is stronger
func (r Rank) Compare(other Rank) int {
	if r.Category != other.Category {
		if r.Category < other.Category {
			return -1
		}

		return 1
	}

	for i := 0; i < len(r.Values) && i < len(other.Values); i++ {
		if r.Values[i] != other.Values[i] {
			if r.Values[i] < other.Values[i] {
				return -1
			}

			return 1
		}
	}

	switch {
	case len(r.Values) < len(other.Values):
		return -1
	case len(r.Values) > len(other.Values):
		return 1
	}

	return 0
}

// Less returns true if r is weaker than other
func (r Rank) Less(other Rank) bool {
	return r.Compare(other) < 0
}

// Equal returns true if neither rank beats the other
func (r Rank) Equal(other Rank) bool {
	return r.Compare(other) == 0
}

// IsRoyalFlush returns true for an ace-high straight flush
func (r Rank) IsRoyalFlush() bool {
	return r.Category == StraightFlush && len(r.Values) > 0 && r.Values[0] == deck.Ace
}

func (r Rank) String() string {
	if r.IsRoyalFlush() {
		return "Royal flush"
	}

	return r.Category.String()
}
