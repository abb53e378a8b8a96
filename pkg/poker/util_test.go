package poker

import (
	"holdem-evaluator/pkg/deck"
)

func combo(s string) Combination {
	cards := deck.CardsFromString(s)
	if len(cards) != HandSize {
		panic("combo requires five cards")
	}

	var c Combination
	copy(c[:], cards)

	return c
}

func ranks(cards []deck.Card) []deck.Rank {
	r := make([]deck.Rank, len(cards))
	for i, card := range cards {
		r[i] = card.Rank
	}

	return r
}

// randomPools deals n seven-card pools from a seeded deck
func randomPools(seed int64, n int) [][]deck.Card {
	d := deck.New()
	d.SetSeed(seed)

	pools := make([][]deck.Card, n)
	for i := range pools {
		d.Shuffle()
		pool, err := d.DrawN(PoolSize)
		if err != nil {
			panic(err)
		}

		pools[i] = pool
	}

	return pools
}
