package showdown

import (
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"holdem-evaluator/pkg/deck"
	"holdem-evaluator/pkg/poker"
)

// number of cards on the board and in each seat's hand
const (
	BoardSize = 5
	HoleSize  = 2
)

// ErrNoSeats is returned when there is nobody left to show down
var ErrNoSeats = errors.New("no seats to resolve")

// ErrInvalidBoard is returned when the board does not have five cards
var ErrInvalidBoard = errors.New("invalid board")

// ErrInvalidHoleCards is returned when a seat does not have two hole cards
var ErrInvalidHoleCards = errors.New("invalid hole cards")

// ErrDuplicateCard is returned when the same card shows up twice at the table
var ErrDuplicateCard = errors.New("duplicate card")

// Seat is a player that reached the showdown
type Seat struct {
	ID   string      `json:"id"`
	Hole []deck.Card `json:"hole"`
}

// SeatResult is a seat's best hand and where it placed
type SeatResult struct {
	Seat  Seat                `json:"seat"`
	Hand  poker.EvaluatedHand `json:"hand"`
	Place int                 `json:"place"`
}

// Result is the outcome of a showdown
type Result struct {
	ID    string         `json:"id"`
	Board []deck.Card    `json:"board"`
	Tiers [][]SeatResult `json:"tiers"`
}

// Winners returns the seats in the first tier. More than one winner is a split.
func (r *Result) Winners() []SeatResult {
	if len(r.Tiers) == 0 {
		return nil
	}

	return r.Tiers[0]
}

// IsSplit returns true if more than one seat won
func (r *Result) IsSplit() bool {
	return len(r.Winners()) > 1
}

// Resolver determines the winners of a showdown
type Resolver struct {
	logger logrus.FieldLogger
}

// NewResolver returns a new Resolver. A nil logger uses the standard logger.
func NewResolver(logger logrus.FieldLogger) *Resolver {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Resolver{logger: logger}
}

// Resolve evaluates every seat against the board and ranks them
func (r *Resolver) Resolve(board []deck.Card, seats []Seat) (*Result, error) {
	if len(seats) == 0 {
		return nil, ErrNoSeats
	}

	if len(board) != BoardSize {
		return nil, fmt.Errorf("%w: got %d cards, want %d", ErrInvalidBoard, len(board), BoardSize)
	}

	table := make(deck.Hand, 0, BoardSize+HoleSize*len(seats))
	table = append(table, board...)
	for _, seat := range seats {
		if len(seat.Hole) != HoleSize {
			return nil, fmt.Errorf("%w: seat %s has %d cards", ErrInvalidHoleCards, seat.ID, len(seat.Hole))
		}

		table = append(table, seat.Hole...)
	}

	// the evaluator trusts its input, so check for a bad deal here
	if card, ok := table.FirstDuplicate(); ok {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateCard, card)
	}

	result := &Result{
		ID:    uuid.New().String(),
		Board: board,
	}

	log := r.logger.WithField("showdown", result.ID)

	wm := newWinManager(len(seats))
	for _, seat := range seats {
		pool := make([]deck.Card, 0, poker.PoolSize)
		pool = append(pool, seat.Hole...)
		pool = append(pool, board...)

		hand, err := poker.Evaluate(pool)
		if err != nil {
			return nil, fmt.Errorf("seat %s: %w", seat.ID, err)
		}

		log.WithFields(logrus.Fields{
			"seat": seat.ID,
			"hand": hand.String(),
		}).Debug("seat evaluated")

		wm.addSeat(seat, hand)
	}

	result.Tiers = wm.sortedTiers()

	for _, winner := range result.Winners() {
		log.WithFields(logrus.Fields{
			"seat":  winner.Seat.ID,
			"hand":  winner.Hand.String(),
			"split": result.IsSplit(),
		}).Debug("seat won")
	}

	return result, nil
}
