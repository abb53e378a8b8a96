package poker

import (
	"holdem-evaluator/pkg/deck"
	"sort"
)

// rankGroup is every card of one rank within a combination
type rankGroup struct {
	rank  deck.Rank
	count int
}

// handAnalyzer holds the rank and suit multisets of a single five-card combination.
// Every detector reads from it, so the counting only happens once per combination.
type handAnalyzer struct {
	cards Combination

	// groups are ordered by count, then rank, both descending
	groups []rankGroup
	flush  bool

	// straight is the high card of the straight, or 0 if the ranks do not form one
	straight deck.Rank
}

func analyze(c Combination) *handAnalyzer {
	h := &handAnalyzer{cards: c}

	var counts [deck.Ace + 1]int
	for _, card := range c {
		counts[card.Rank]++
	}

	ranks := make([]deck.Rank, 0, HandSize)
	for rank := deck.Ace; rank >= deck.Two; rank-- {
		if counts[rank] > 0 {
			h.groups = append(h.groups, rankGroup{rank: rank, count: counts[rank]})
			ranks = append(ranks, rank)
		}
	}

	// stable so equal counts stay in descending rank order
	sort.SliceStable(h.groups, func(i, j int) bool {
		return h.groups[i].count > h.groups[j].count
	})

	h.flush = true
	for _, card := range c[1:] {
		if card.Suit != c[0].Suit {
			h.flush = false
			break
		}
	}

	h.straight = straightHigh(ranks)

	return h
}

// countOf returns how many distinct ranks appear exactly n times
func (h *handAnalyzer) countOf(n int) int {
	found := 0
	for _, g := range h.groups {
		if g.count == n {
			found++
		}
	}

	return found
}

func (h *handAnalyzer) isFlush() bool {
	return h.flush
}

func (h *handAnalyzer) isStraight() bool {
	return h.straight > 0
}

func (h *handAnalyzer) isStraightFlush() bool {
	return h.isStraight() && h.isFlush()
}

// the lowest card must be a ten, so the wheel never counts
func (h *handAnalyzer) isRoyalFlush() bool {
	return h.isStraightFlush() && h.straight == deck.Ace
}

func (h *handAnalyzer) isFourOfAKind() bool {
	return h.countOf(4) == 1
}

func (h *handAnalyzer) isFullHouse() bool {
	return h.countOf(3) == 1 && h.countOf(2) == 1
}

// full house must be checked first
func (h *handAnalyzer) isThreeOfAKind() bool {
	return h.countOf(3) == 1
}

func (h *handAnalyzer) isTwoPair() bool {
	return h.countOf(2) >= 2
}

func (h *handAnalyzer) isOnePair() bool {
	return h.countOf(2) == 1 && h.countOf(3) == 0 && h.countOf(4) == 0
}

func (h *handAnalyzer) isHighCard() bool {
	return true
}

// detectors are ordered from the strongest category to the weakest.
// A stronger category can also satisfy a weaker predicate, so the first match wins.
var detectors = []struct {
	category Category
	match    func(*handAnalyzer) bool
}{
	{RoyalFlush, (*handAnalyzer).isRoyalFlush},
	{StraightFlush, (*handAnalyzer).isStraightFlush},
	{FourOfAKind, (*handAnalyzer).isFourOfAKind},
	{FullHouse, (*handAnalyzer).isFullHouse},
	{Flush, (*handAnalyzer).isFlush},
	{Straight, (*handAnalyzer).isStraight},
	{ThreeOfAKind, (*handAnalyzer).isThreeOfAKind},
	{TwoPair, (*handAnalyzer).isTwoPair},
	{OnePair, (*handAnalyzer).isOnePair},
	{HighCard, (*handAnalyzer).isHighCard},
}

func (h *handAnalyzer) category() Category {
	for _, d := range detectors {
		if d.match(h) {
			return d.category
		}
	}

	// isHighCard always matches
	panic("no category matched")
}

// Classify returns the category of a five-card combination
func Classify(c Combination) Category {
	return analyze(c).category()
}

// orderedCards returns the cards in tie-break order: larger rank groups first, then higher ranks.
// In a wheel the ace plays low and is placed last.
func (h *handAnalyzer) orderedCards() [HandSize]deck.Card {
	sizes := make(map[deck.Rank]int, len(h.groups))
	for _, g := range h.groups {
		sizes[g.rank] = g.count
	}

	wheel := h.straight == deck.Five
	effective := func(c deck.Card) deck.Rank {
		if wheel {
			return c.AceLowRank()
		}

		return c.Rank
	}

	cards := h.cards
	sort.SliceStable(cards[:], func(i, j int) bool {
		a, b := cards[i], cards[j]
		if sizes[a.Rank] != sizes[b.Rank] {
			return sizes[a.Rank] > sizes[b.Rank]
		}

		if ra, rb := effective(a), effective(b); ra != rb {
			return ra > rb
		}

		return a.Suit < b.Suit
	})

	return cards
}
