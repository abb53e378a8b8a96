package poker

import (
	"holdem-evaluator/pkg/deck"
)

// Result is the outcome of comparing two hands
type Result int

// Constants for result
const (
	Tie Result = iota
	FirstWins
	SecondWins
)

func (r Result) String() string {
	switch r {
	case FirstWins:
		return "first wins"
	case SecondWins:
		return "second wins"
	default:
		return "tie"
	}
}

// Invert swaps the winner
func (r Result) Invert() Result {
	switch r {
	case FirstWins:
		return SecondWins
	case SecondWins:
		return FirstWins
	default:
		return Tie
	}
}

// Compare orders two evaluated hands.
// The category decides first, then the ranking's tie-break ranks, then the kickers.
// Straights are ranked by their top card, which is Five for the wheel.
func Compare(a, b EvaluatedHand) Result {
	if a.Category != b.Category {
		if a.Category > b.Category {
			return FirstWins
		}

		return SecondWins
	}

	if r := compareRanks(a.tieBreak(), b.tieBreak()); r != Tie {
		return r
	}

	return compareRanks(descendingRanks(a.Kickers), descendingRanks(b.Kickers))
}

// Beats returns true if the hand strictly beats the other hand
func (e EvaluatedHand) Beats(other EvaluatedHand) bool {
	return Compare(e, other) == FirstWins
}

// tieBreak rebuilds the ranking from the cards when the hand was not built by the evaluator,
// i.e., decoded from JSON
func (e EvaluatedHand) tieBreak() []deck.Rank {
	if e.Ranking != nil {
		return e.Ranking.TieBreak()
	}

	return EvaluateFive(e.Cards).Ranking.TieBreak()
}

// compareRanks compares position by position up to the shorter length
func compareRanks(a, b []deck.Rank) Result {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	for i := 0; i < n; i++ {
		if a[i] > b[i] {
			return FirstWins
		}

		if a[i] < b[i] {
			return SecondWins
		}
	}

	return Tie
}

func descendingRanks(cards []deck.Card) []deck.Rank {
	sorted := deck.Hand(cards).SortedDesc()
	ranks := make([]deck.Rank, len(sorted))
	for i, card := range sorted {
		ranks[i] = card.Rank
	}

	return ranks
}
