package showdown

import (
	"errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"holdem-evaluator/pkg/deck"
	"holdem-evaluator/pkg/poker"
	"testing"
)

func seat(id, hole string) Seat {
	return Seat{ID: id, Hole: deck.CardsFromString(hole)}
}

func seatIDs(results []SeatResult) []string {
	ids := make([]string, len(results))
	for i, r := range results {
		ids[i] = r.Seat.ID
	}

	return ids
}

func TestResolver_Resolve(t *testing.T) {
	a := assert.New(t)
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	board := deck.CardsFromString("2c,7d,9h,11s,13c")
	result, err := NewResolver(logger).Resolve(board, []Seat{
		seat("alice", "14h,14d"),
		seat("bob", "13h,13d"),
		seat("carol", "3s,4s"),
	})
	a.NoError(err)
	a.NotEmpty(result.ID)
	a.Equal(board, result.Board)

	a.Len(result.Tiers, 3)
	a.Equal([]string{"bob"}, seatIDs(result.Winners()))
	a.False(result.IsSplit())
	a.Equal(poker.ThreeOfAKind, result.Winners()[0].Hand.Category)
	a.Equal(1, result.Winners()[0].Place)

	a.Equal([]string{"alice"}, seatIDs(result.Tiers[1]))
	a.Equal(2, result.Tiers[1][0].Place)
	a.Equal(poker.OnePair, result.Tiers[1][0].Hand.Category)

	a.Equal([]string{"carol"}, seatIDs(result.Tiers[2]))
	a.Equal(3, result.Tiers[2][0].Place)
	a.Equal(poker.HighCard, result.Tiers[2][0].Hand.Category)

	// three seats evaluated, one winner
	a.Len(hook.AllEntries(), 4)
	last := hook.LastEntry()
	a.Equal(logrus.DebugLevel, last.Level)
	a.Equal("seat won", last.Message)
	a.Equal("bob", last.Data["seat"])
	a.Equal("Three of a kind, Kings", last.Data["hand"])
	a.Equal(result.ID, last.Data["showdown"])
}

func TestResolver_Split(t *testing.T) {
	a := assert.New(t)
	logger, hook := test.NewNullLogger()

	// the board plays
	result, err := NewResolver(logger).Resolve(deck.CardsFromString("10h,11h,12h,13h,14h"), []Seat{
		seat("alice", "2c,3d"),
		seat("bob", "4s,5s"),
	})
	a.NoError(err)
	a.Len(result.Tiers, 1)
	a.True(result.IsSplit())
	a.Equal([]string{"alice", "bob"}, seatIDs(result.Winners()))
	for _, w := range result.Winners() {
		a.Equal(poker.RoyalFlush, w.Hand.Category)
		a.Equal(1, w.Place)
	}

	a.Len(hook.AllEntries(), 2)
	a.Equal(true, hook.LastEntry().Data["split"])
}

func TestResolver_TieForSecond(t *testing.T) {
	a := assert.New(t)
	logger, _ := test.NewNullLogger()

	result, err := NewResolver(logger).Resolve(deck.CardsFromString("2c,7d,9h,11s,13c"), []Seat{
		seat("alice", "3h,4d"),
		seat("bob", "14h,14d"),
		seat("carol", "3s,4s"),
		seat("dave", "14c,14s"),
	})
	a.NoError(err)
	a.Len(result.Tiers, 2)
	a.Equal([]string{"bob", "dave"}, seatIDs(result.Tiers[0]))
	a.Equal([]string{"alice", "carol"}, seatIDs(result.Tiers[1]))
	a.Equal(2, result.Tiers[1][1].Place)
}

func TestResolver_Errors(t *testing.T) {
	a := assert.New(t)
	logger, hook := test.NewNullLogger()
	r := NewResolver(logger)
	board := deck.CardsFromString("2c,7d,9h,11s,13c")

	_, err := r.Resolve(board, nil)
	a.Equal(ErrNoSeats, err)

	_, err = r.Resolve(board[:4], []Seat{seat("alice", "3h,4d")})
	a.True(errors.Is(err, ErrInvalidBoard))

	_, err = r.Resolve(board, []Seat{seat("alice", "3h,4d,5d")})
	a.True(errors.Is(err, ErrInvalidHoleCards))
	a.Contains(err.Error(), "alice")

	_, err = r.Resolve(board, []Seat{seat("alice", "3h,4d"), seat("bob", "4d,5d")})
	a.True(errors.Is(err, ErrDuplicateCard))

	_, err = r.Resolve(board, []Seat{seat("alice", "3h,13c")})
	a.True(errors.Is(err, ErrDuplicateCard))

	a.Empty(hook.AllEntries(), "nothing is logged for a bad deal")
}

func TestNewResolver_DefaultLogger(t *testing.T) {
	r := NewResolver(nil)
	assert.Equal(t, logrus.StandardLogger(), r.logger)
}

func TestResult_WinnersEmpty(t *testing.T) {
	r := &Result{}
	assert.Nil(t, r.Winners())
	assert.False(t, r.IsSplit())
}
