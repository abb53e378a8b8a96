package poker

import (
	"fmt"
	"holdem-evaluator/pkg/deck"
)

// sizes of the Hold'em showdown
const (
	HandSize = 5
	PoolSize = 7
)

// Combination is one five-card hand chosen from a pool
type Combination [HandSize]deck.Card

// poolIndexes are the 21 ways to pick 5 of 7 positions, in lexicographic order
var poolIndexes = indexCombinations(PoolSize, HandSize)

// indexCombinations returns every k-sized subset of the positions 0..n-1
func indexCombinations(n, k int) [][]int {
	result := make([][]int, 0)
	path := make([]int, 0, k)

	var backtrack func(start int)
	backtrack = func(start int) {
		if len(path) == k {
			subset := make([]int, k)
			copy(subset, path)
			result = append(result, subset)
			return
		}

		for i := start; i <= n-(k-len(path)); i++ {
			path = append(path, i)
			backtrack(i + 1)
			path = path[:len(path)-1]
		}
	}

	backtrack(0)
	return result
}

// Combinations returns the 21 five-card combinations of a seven-card pool.
// Cards are addressed by their position in the pool, so two equal cards from different sources stay distinct.
func Combinations(pool []deck.Card) ([]Combination, error) {
	if len(pool) != PoolSize {
		return nil, fmt.Errorf("%w: got %d cards, want %d", ErrInvalidInputSize, len(pool), PoolSize)
	}

	combos := make([]Combination, len(poolIndexes))
	for i, indexes := range poolIndexes {
		for j, idx := range indexes {
			combos[i][j] = pool[idx]
		}
	}

	return combos, nil
}
