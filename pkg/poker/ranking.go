package poker

import (
	"fmt"
	"holdem-evaluator/pkg/deck"
)

// Ranking carries exactly the ranks a category needs to break a tie with another hand of the same category.
// There is one implementation per category.
type Ranking interface {
	Category() Category

	// TieBreak returns the ranks to compare, most significant first
	TieBreak() []deck.Rank

	// Describe returns a human readable description, i.e., "Full house, Kings over Sevens"
	Describe() string

	isRanking()
}

// HighCardRanking is five unpaired cards
type HighCardRanking struct {
	Ranks [5]deck.Rank
}

// OnePairRanking is a pair plus three kickers
type OnePairRanking struct {
	Pair    deck.Rank
	Kickers [3]deck.Rank
}

// TwoPairRanking is two pairs plus the fifth card
type TwoPairRanking struct {
	High   deck.Rank
	Low    deck.Rank
	Kicker deck.Rank
}

// ThreeOfAKindRanking is trips plus two kickers
type ThreeOfAKindRanking struct {
	Trips   deck.Rank
	Kickers [2]deck.Rank
}

// StraightRanking is identified by its top card. The wheel's top card is Five.
type StraightRanking struct {
	High deck.Rank
}

// FlushRanking compares all five ranks
type FlushRanking struct {
	Ranks [5]deck.Rank
}

// FullHouseRanking compares trips first, then the pair
type FullHouseRanking struct {
	Trips deck.Rank
	Pair  deck.Rank
}

// FourOfAKindRanking is quads plus a kicker
type FourOfAKindRanking struct {
	Quads  deck.Rank
	Kicker deck.Rank
}

// StraightFlushRanking is identified by its top card
type StraightFlushRanking struct {
	High deck.Rank
}

// RoyalFlushRanking always ties with another royal flush
type RoyalFlushRanking struct{}

func (HighCardRanking) Category() Category      { return HighCard }
func (OnePairRanking) Category() Category       { return OnePair }
func (TwoPairRanking) Category() Category       { return TwoPair }
func (ThreeOfAKindRanking) Category() Category  { return ThreeOfAKind }
func (StraightRanking) Category() Category      { return Straight }
func (FlushRanking) Category() Category         { return Flush }
func (FullHouseRanking) Category() Category     { return FullHouse }
func (FourOfAKindRanking) Category() Category   { return FourOfAKind }
func (StraightFlushRanking) Category() Category { return StraightFlush }
func (RoyalFlushRanking) Category() Category    { return RoyalFlush }

func (HighCardRanking) isRanking()      {}
func (OnePairRanking) isRanking()       {}
func (TwoPairRanking) isRanking()       {}
func (ThreeOfAKindRanking) isRanking()  {}
func (StraightRanking) isRanking()      {}
func (FlushRanking) isRanking()         {}
func (FullHouseRanking) isRanking()     {}
func (FourOfAKindRanking) isRanking()   {}
func (StraightFlushRanking) isRanking() {}
func (RoyalFlushRanking) isRanking()    {}

func (r HighCardRanking) TieBreak() []deck.Rank {
	return r.Ranks[:]
}

func (r OnePairRanking) TieBreak() []deck.Rank {
	return append([]deck.Rank{r.Pair}, r.Kickers[:]...)
}

func (r TwoPairRanking) TieBreak() []deck.Rank {
	return []deck.Rank{r.High, r.Low, r.Kicker}
}

func (r ThreeOfAKindRanking) TieBreak() []deck.Rank {
	return append([]deck.Rank{r.Trips}, r.Kickers[:]...)
}

func (r StraightRanking) TieBreak() []deck.Rank {
	return []deck.Rank{r.High}
}

func (r FlushRanking) TieBreak() []deck.Rank {
	return r.Ranks[:]
}

func (r FullHouseRanking) TieBreak() []deck.Rank {
	return []deck.Rank{r.Trips, r.Pair}
}

func (r FourOfAKindRanking) TieBreak() []deck.Rank {
	return []deck.Rank{r.Quads, r.Kicker}
}

func (r StraightFlushRanking) TieBreak() []deck.Rank {
	return []deck.Rank{r.High}
}

func (RoyalFlushRanking) TieBreak() []deck.Rank {
	return []deck.Rank{}
}

func (r HighCardRanking) Describe() string {
	return fmt.Sprintf("High card, %s", rankName(r.Ranks[0]))
}

func (r OnePairRanking) Describe() string {
	return fmt.Sprintf("Pair of %s", rankPlural(r.Pair))
}

func (r TwoPairRanking) Describe() string {
	return fmt.Sprintf("Two pair, %s and %s", rankPlural(r.High), rankPlural(r.Low))
}

func (r ThreeOfAKindRanking) Describe() string {
	return fmt.Sprintf("Three of a kind, %s", rankPlural(r.Trips))
}

func (r StraightRanking) Describe() string {
	return fmt.Sprintf("Straight, %s high", rankName(r.High))
}

func (r FlushRanking) Describe() string {
	return fmt.Sprintf("Flush, %s high", rankName(r.Ranks[0]))
}

func (r FullHouseRanking) Describe() string {
	return fmt.Sprintf("Full house, %s over %s", rankPlural(r.Trips), rankPlural(r.Pair))
}

func (r FourOfAKindRanking) Describe() string {
	return fmt.Sprintf("Four of a kind, %s", rankPlural(r.Quads))
}

func (r StraightFlushRanking) Describe() string {
	return fmt.Sprintf("Straight flush, %s high", rankName(r.High))
}

func (RoyalFlushRanking) Describe() string {
	return "Royal flush"
}

// ranking builds the tie-break data for the category. ordered must come from orderedCards().
func (h *handAnalyzer) ranking(category Category, ordered [HandSize]deck.Card) Ranking {
	var r [HandSize]deck.Rank
	for i, card := range ordered {
		r[i] = card.Rank
	}

	switch category {
	case RoyalFlush:
		return RoyalFlushRanking{}
	case StraightFlush:
		return StraightFlushRanking{High: h.straight}
	case FourOfAKind:
		return FourOfAKindRanking{Quads: r[0], Kicker: r[4]}
	case FullHouse:
		return FullHouseRanking{Trips: r[0], Pair: r[3]}
	case Flush:
		return FlushRanking{Ranks: r}
	case Straight:
		return StraightRanking{High: h.straight}
	case ThreeOfAKind:
		return ThreeOfAKindRanking{Trips: r[0], Kickers: [2]deck.Rank{r[3], r[4]}}
	case TwoPair:
		return TwoPairRanking{High: r[0], Low: r[2], Kicker: r[4]}
	case OnePair:
		return OnePairRanking{Pair: r[0], Kickers: [3]deck.Rank{r[2], r[3], r[4]}}
	default:
		return HighCardRanking{Ranks: r}
	}
}

var rankNames = map[deck.Rank]string{
	deck.Two:   "Two",
	deck.Three: "Three",
	deck.Four:  "Four",
	deck.Five:  "Five",
	deck.Six:   "Six",
	deck.Seven: "Seven",
	deck.Eight: "Eight",
	deck.Nine:  "Nine",
	deck.Ten:   "Ten",
	deck.Jack:  "Jack",
	deck.Queen: "Queen",
	deck.King:  "King",
	deck.Ace:   "Ace",
}

func rankName(r deck.Rank) string {
	if name, ok := rankNames[r]; ok {
		return name
	}

	return r.String()
}

func rankPlural(r deck.Rank) string {
	if r == deck.Six {
		return "Sixes"
	}

	return rankName(r) + "s"
}
