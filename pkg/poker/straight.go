package poker

import (
	"holdem-evaluator/pkg/deck"
	"sort"
)

// straightHigh returns the top card of the straight formed by the distinct ranks, or 0 if there is none.
// The wheel (A-2-3-4-5) is found by testing the ranks a second time with the ace counted as LowAce,
// so its high card is Five.
func straightHigh(ranks []deck.Rank) deck.Rank {
	if high := consecutiveHigh(ranks); high > 0 {
		return high
	}

	lowRanks := make([]deck.Rank, len(ranks))
	hasAce := false
	for i, r := range ranks {
		if r == deck.Ace {
			r = deck.LowAce
			hasAce = true
		}

		lowRanks[i] = r
	}

	if !hasAce {
		return 0
	}

	return consecutiveHigh(lowRanks)
}

// consecutiveHigh requires exactly five distinct ranks with no gaps
func consecutiveHigh(ranks []deck.Rank) deck.Rank {
	if len(ranks) != HandSize {
		return 0
	}

	sorted := make([]deck.Rank, len(ranks))
	copy(sorted, ranks)
	sort.Sort(sort.Reverse(byRank(sorted)))

	for i := 1; i < len(sorted); i++ {
		if sorted[i-1] != sorted[i]+1 {
			return 0
		}
	}

	return sorted[0]
}

type byRank []deck.Rank

func (s byRank) Len() int {
	return len(s)
}

func (s byRank) Less(i, j int) bool {
	return s[i] < s[j]
}

func (s byRank) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}
