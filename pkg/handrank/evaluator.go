// Package handrank ranks poker hands and finds the best five cards of a larger hand,
// optionally with a black (?B) and a red (?R) joker.
package handrank

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"mondaynightpoker-handeval/pkg/deck"
)

// ErrNotEnoughCards is returned when a hand has fewer cards than the requested size
var ErrNotEnoughCards = errors.New("not enough cards")

// ErrInvalidSize is returned when the requested hand size is less than one
var ErrInvalidSize = errors.New("invalid hand size")

// RankPolicy decides what happens to cards with an unknown rank character
type RankPolicy int

const (
	// SkipUnknownRanks silently drops cards with an unknown rank when extracting ranks
	SkipUnknownRanks RankPolicy = iota
	// StrictRanks fails with deck.ErrUnknownRank
	StrictRanks
)

func (p RankPolicy) String() string {
	switch p {
	case SkipUnknownRanks:
		return "skip"
	case StrictRanks:
		return "strict"
	default:
		return fmt.Sprintf("RankPolicy(%d)", int(p))
	}
}

// ParseRankPolicy parses "skip" or "strict"
// An empty string is the default, skip.
func ParseRankPolicy(s string) (RankPolicy, error) {
	switch strings.ToLower(s) {
	case "", "skip":
		return SkipUnknownRanks, nil
	case "strict":
		return StrictRanks, nil
	default:
		return 0, fmt.Errorf("unknown rank policy: %s", s)
	}
}

// Evaluator ranks hands
// An Evaluator is immutable and safe for concurrent use.
type Evaluator struct {
	policy RankPolicy
	log    logrus.FieldLogger
	deck   *deck.Deck
}

// Option configures an Evaluator
type Option func(e *Evaluator)

// WithRankPolicy sets the rank policy
func WithRankPolicy(policy RankPolicy) Option {
	return func(e *Evaluator) {
		e.policy = policy
	}
}

// WithLogger sets the logger used for debug output
func WithLogger(log logrus.FieldLogger) Option {
	return func(e *Evaluator) {
		e.log = log
	}
}

// New returns a new Evaluator
func New(opts ...Option) *Evaluator {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	e := &Evaluator{
		policy: SkipUnknownRanks,
		log:    discard,
		deck:   deck.New(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Policy returns the rank policy
func (e *Evaluator) Policy() RankPolicy {
	return e.policy
}

// validate ensures every card is a two character token
func validate(hand deck.Hand) error {
	for _, c := range hand {
		if !c.Valid() {
			return fmt.Errorf("%w: %q in [%s]", deck.ErrInvalidCard, string(c), hand)
		}
	}

	return nil
}

// CardRanks returns the rank values of the hand, highest first
func (e *Evaluator) CardRanks(hand deck.Hand) ([]int, error) {
	if err := validate(hand); err != nil {
		return nil, err
	}

	return e.cardRanks(hand)
}

func (e *Evaluator) cardRanks(hand deck.Hand) ([]int, error) {
	ranks := make([]int, 0, len(hand))
	for _, c := range hand {
		r, ok := c.Rank()
		if !ok {
			if e.policy == StrictRanks {
				return nil, fmt.Errorf("%w: %q in [%s]", deck.ErrUnknownRank, string(c), hand)
			}

			continue
		}

		ranks = append(ranks, r)
	}

	sortDescending(ranks)
	return ranks, nil
}

// IsFlush returns true if all cards share one suit
func (e *Evaluator) IsFlush(hand deck.Hand) (bool, error) {
	if err := validate(hand); err != nil {
		return false, err
	}

	return isFlush(hand), nil
}

// HandRank returns the rank of the hand
func (e *Evaluator) HandRank(hand deck.Hand) (Rank, error) {
	if err := validate(hand); err != nil {
		return Rank{}, err
	}

	return e.handRank(hand)
}

// handRank classifies the hand, the order of the checks matters
func (e *Evaluator) handRank(hand deck.Hand) (Rank, error) {
	ranks, err := e.cardRanks(hand)
	if err != nil {
		return Rank{}, err
	}

	flush := isFlush(hand)
	straight := IsStraight(ranks)

	if straight && flush {
		return Rank{Category: StraightFlush, Values: []int{ranks[0]}}, nil
	}

	if quads, ok := Kind(4, ranks); ok {
		kicker, _ := Kind(1, ranks)
		return Rank{Category: FourOfAKind, Values: []int{quads, kicker}}, nil
	}

	trips, hasTrips := Kind(3, ranks)
	pair, hasPair := Kind(2, ranks)
	if hasTrips && hasPair {
		return Rank{Category: FullHouse, Values: []int{trips, pair}}, nil
	}

	if flush {
		return Rank{Category: Flush, Values: ranks}, nil
	}

	if straight {
		return Rank{Category: Straight, Values: []int{ranks[0]}}, nil
	}

	if hasTrips {
		return Rank{Category: ThreeOfAKind, Values: append([]int{trips}, ranks...)}, nil
	}

	if twoPair, ok := TwoPairRanks(ranks); ok {
		return Rank{Category: TwoPair, Values: append([]int{twoPair[0], twoPair[1]}, ranks...)}, nil
	}

	if hasPair {
		return Rank{Category: OnePair, Values: append([]int{pair}, ranks...)}, nil
	}

	return Rank{Category: HighCard, Values: ranks}, nil
}
