package deck

import (
	"github.com/stretchr/testify/assert"
	"sort"
	"testing"
)

func TestHand_Sort(t *testing.T) {
	h := Hand(CardsFromString("5h,14c,2d,5c,13s"))
	sort.Sort(h)
	assert.Equal(t, "2d,5c,5h,13s,14c", h.String())
}

func TestHand_SortedDesc(t *testing.T) {
	h := Hand(CardsFromString("5h,14c,2d,5c,13s"))
	desc := h.SortedDesc()
	assert.Equal(t, "14c,13s,5h,5c,2d", desc.String())
	assert.Equal(t, "5h,14c,2d,5c,13s", h.String(), "original hand is not modified")
}

func TestHand_HasCard(t *testing.T) {
	h := Hand(CardsFromString("5h,14c"))
	assert.True(t, h.HasCard(CardFromString("14c")))
	assert.False(t, h.HasCard(CardFromString("14d")))
}

func TestHand_FirstDuplicate(t *testing.T) {
	card, ok := Hand(CardsFromString("5h,14c,2d,14c,5h")).FirstDuplicate()
	assert.True(t, ok)
	assert.Equal(t, CardFromString("14c"), card)

	_, ok = Hand(CardsFromString("5h,14c,2d")).FirstDuplicate()
	assert.False(t, ok)
}

func TestHand_Clone(t *testing.T) {
	h := Hand(CardsFromString("5h,14c"))
	h2 := h.Clone()
	h2[0] = CardFromString("2c")
	assert.Equal(t, "5h,14c", h.String())
}
