package poker

import (
	"errors"
	"holdem-evaluator/pkg/deck"
)

// ErrInvalidInputSize is returned when the pool does not have exactly seven cards
var ErrInvalidInputSize = errors.New("invalid input size")

// ErrEmptyCombinationSet is returned if there were no combinations to reduce.
// Combinations() always returns 21 for a valid pool, so this indicates a programming error.
var ErrEmptyCombinationSet = errors.New("no combinations to evaluate")

// EvaluatedHand is the result of classifying one five-card combination
type EvaluatedHand struct {
	Category Category `json:"category"`

	// Cards are in tie-break order, i.e., the pair first, then the kickers from high to low
	Cards [HandSize]deck.Card `json:"cards"`

	// Kickers are the cards outside the category's main group, from high to low
	Kickers []deck.Card `json:"kickers"`

	Ranking Ranking `json:"-"`
}

// String returns the description of the hand, i.e., "Pair of Aces"
func (e EvaluatedHand) String() string {
	if e.Ranking == nil {
		return e.Category.String()
	}

	return e.Ranking.Describe()
}

// EvaluateFive classifies a single five-card combination
func EvaluateFive(c Combination) EvaluatedHand {
	h := analyze(c)
	category := h.category()
	ordered := h.orderedCards()

	return EvaluatedHand{
		Category: category,
		Cards:    ordered,
		Kickers:  kickers(ordered, category),
		Ranking:  h.ranking(category, ordered),
	}
}

// Evaluate returns the best five-card hand that can be made from a seven-card pool.
// The pool is assumed to hold seven distinct cards.
func Evaluate(pool []deck.Card) (EvaluatedHand, error) {
	combos, err := Combinations(pool)
	if err != nil {
		return EvaluatedHand{}, err
	}

	return best(combos)
}

// best reduces the combinations to the strongest hand.
// A candidate only replaces the current best if it strictly beats it, so ties keep the first combination.
func best(combos []Combination) (EvaluatedHand, error) {
	if len(combos) == 0 {
		return EvaluatedHand{}, ErrEmptyCombinationSet
	}

	bestHand := EvaluateFive(combos[0])
	for _, combo := range combos[1:] {
		if candidate := EvaluateFive(combo); Compare(candidate, bestHand) == FirstWins {
			bestHand = candidate
		}
	}

	return bestHand, nil
}

// kickers returns the cards that are not part of the category's main group.
// ordered must be in tie-break order, which puts the kickers at the end from high to low.
func kickers(ordered [HandSize]deck.Card, category Category) []deck.Card {
	var n int
	switch category {
	case FourOfAKind:
		n = 1
	case ThreeOfAKind:
		n = 2
	case OnePair:
		n = 3
	case HighCard:
		n = 4
	default:
		// straights, flushes, full houses and two pair are decided by their own ranks
		return []deck.Card{}
	}

	k := make([]deck.Card, n)
	copy(k, ordered[HandSize-n:])

	return k
}

// Dealer supplies cards, i.e., a *deck.Deck
type Dealer interface {
	DrawN(n int) ([]deck.Card, error)
}

// DealAndEvaluate draws a pool from the dealer and evaluates it.
// Errors from the dealer are returned unchanged.
func DealAndEvaluate(d Dealer) (EvaluatedHand, []deck.Card, error) {
	pool, err := d.DrawN(PoolSize)
	if err != nil {
		return EvaluatedHand{}, nil, err
	}

	hand, err := Evaluate(pool)
	if err != nil {
		return EvaluatedHand{}, pool, err
	}

	return hand, pool, nil
}
