package poker

import (
	"fmt"
	"strings"
)

// Category is a poker hand category, i.e., royal flush
// Categories are ordered from weakest to strongest
type Category int

// Constants for category
const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// Categories lists every category from strongest to weakest
var Categories = []Category{
	RoyalFlush,
	StraightFlush,
	FourOfAKind,
	FullHouse,
	Flush,
	Straight,
	ThreeOfAKind,
	TwoPair,
	OnePair,
	HighCard,
}

// String returns the string representation of a category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High card"
	case OnePair:
		return "Pair"
	case TwoPair:
		return "Two pair"
	case ThreeOfAKind:
		return "Three of a kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full house"
	case FourOfAKind:
		return "Four of a kind"
	case StraightFlush:
		return "Straight flush"
	case RoyalFlush:
		return "Royal flush"
	default:
		panic(fmt.Sprintf("unknown category: %d", c))
	}
}

// Slug returns a machine friendly name, i.e., full_house
func (c Category) Slug() string {
	return strings.ReplaceAll(strings.ToLower(c.String()), " ", "_")
}

// MarshalText encodes the category as its slug
func (c Category) MarshalText() ([]byte, error) {
	if c < HighCard || c > RoyalFlush {
		return nil, fmt.Errorf("unknown category: %d", c)
	}

	return []byte(c.Slug()), nil
}

// UnmarshalText decodes a slug or display name
func (c *Category) UnmarshalText(text []byte) error {
	category, err := ParseCategory(string(text))
	if err != nil {
		return err
	}

	*c = category
	return nil
}

// ParseCategory accepts either the slug (one_pair) or the display name (Pair)
func ParseCategory(s string) (Category, error) {
	needle := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
	if needle == "one_pair" {
		return OnePair, nil
	}

	for _, c := range Categories {
		if c.Slug() == needle {
			return c, nil
		}
	}

	return HighCard, fmt.Errorf("unknown category: %q", s)
}
