package showdown

import (
	"holdem-evaluator/pkg/poker"
	"sort"
)

// winManager groups seats into tiers of equal hands
type winManager struct {
	results []SeatResult
}

func newWinManager(size int) *winManager {
	return &winManager{
		results: make([]SeatResult, 0, size),
	}
}

func (w *winManager) addSeat(seat Seat, hand poker.EvaluatedHand) {
	w.results = append(w.results, SeatResult{
		Seat: seat,
		Hand: hand,
	})
}

// sortedTiers returns the tiers from the best hand to the worst.
// Seats in the same tier tie exactly and keep their seating order.
func (w *winManager) sortedTiers() [][]SeatResult {
	results := make([]SeatResult, len(w.results))
	copy(results, w.results)

	sort.SliceStable(results, func(i, j int) bool {
		return poker.Compare(results[i].Hand, results[j].Hand) == poker.FirstWins
	})

	tiers := make([][]SeatResult, 0, len(results))
	for i, result := range results {
		if i == 0 || poker.Compare(results[i-1].Hand, result.Hand) != poker.Tie {
			tiers = append(tiers, make([]SeatResult, 0, 1))
		}

		n := len(tiers) - 1
		result.Place = n + 1
		tiers[n] = append(tiers[n], result)
	}

	return tiers
}
