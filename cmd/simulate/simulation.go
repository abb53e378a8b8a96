package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"holdem-evaluator/internal/util"
	"holdem-evaluator/pkg/deck"
	"holdem-evaluator/pkg/poker"
	"holdem-evaluator/pkg/showdown"
	"runtime"
)

// MaxSeats is the most players a 52 card deck can serve with a five card board
const MaxSeats = (52 - showdown.BoardSize) / showdown.HoleSize

var errInvalidSeats = errors.New("invalid number of seats")
var errInvalidHands = errors.New("invalid number of hands")

type options struct {
	Hands   int
	Seats   int
	Seed    int64
	Workers int
}

// categoryCount is one row of the distribution
type categoryCount struct {
	Category poker.Category `json:"category"`
	Hands    int            `json:"hands"`
	Wins     int            `json:"wins"`
}

type summary struct {
	RunID  string          `json:"runId"`
	Seed   int64           `json:"seed"`
	Tables int             `json:"tables"`
	Seats  int             `json:"seats"`
	Splits int             `json:"splits"`
	Counts []categoryCount `json:"counts"`
}

// table is one dealt hand waiting for its showdown
type table struct {
	board []deck.Card
	seats []showdown.Seat
}

// simulate deals opts.Hands tables, resolves the showdowns in parallel and tallies
// every seat's best hand along with the categories that won
func simulate(ctx context.Context, log logrus.FieldLogger, opts options) (*summary, error) {
	if opts.Seats < 1 || opts.Seats > MaxSeats {
		return nil, fmt.Errorf("%w: got %d, want 1 to %d", errInvalidSeats, opts.Seats, MaxSeats)
	}

	if opts.Hands < 0 {
		return nil, fmt.Errorf("%w: got %d", errInvalidHands, opts.Hands)
	}

	d := deck.New()
	if opts.Seed != 0 {
		d.SetSeed(opts.Seed)
	}

	tables, err := deal(ctx, d, opts)
	if err != nil {
		return nil, err
	}

	results, err := resolveAll(ctx, showdown.NewResolver(log), tables, opts.Workers)
	if err != nil {
		return nil, err
	}

	s := tally(results)
	s.Seed = d.GetSeed()
	s.Tables = opts.Hands
	s.Seats = opts.Seats

	return s, nil
}

// deal shuffles once per table. Dealing stays sequential so a seeded deck always produces the same tables.
func deal(ctx context.Context, d *deck.Deck, opts options) ([]table, error) {
	names := util.GetRandomNames(opts.Seats)
	tables := make([]table, opts.Hands)

	for i := range tables {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		d.Shuffle()

		seats := make([]showdown.Seat, opts.Seats)
		for s := range seats {
			hole, err := d.DrawN(showdown.HoleSize)
			if err != nil {
				return nil, err
			}

			seats[s] = showdown.Seat{ID: names[s], Hole: hole}
		}

		board, err := d.DrawN(showdown.BoardSize)
		if err != nil {
			return nil, err
		}

		tables[i] = table{board: board, seats: seats}
	}

	return tables, nil
}

// resolveAll runs the showdowns on up to workers goroutines. Results are stored by table index.
func resolveAll(ctx context.Context, resolver *showdown.Resolver, tables []table, workers int) ([]*showdown.Result, error) {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]*showdown.Result, len(tables))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, t := range tables {
		i, t := i, t
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			result, err := resolver.Resolve(t.board, t.seats)
			if err != nil {
				return fmt.Errorf("table %d: %w", i, err)
			}

			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// tally counts every seat's category and the category that won each table
func tally(results []*showdown.Result) *summary {
	seen := make(map[poker.Category]int)
	wins := make(map[poker.Category]int)
	splits := 0

	for _, result := range results {
		for _, tier := range result.Tiers {
			for _, seat := range tier {
				seen[seat.Hand.Category]++
			}
		}

		if winners := result.Winners(); len(winners) > 0 {
			wins[winners[0].Hand.Category]++
		}

		if result.IsSplit() {
			splits++
		}
	}

	counts := make([]categoryCount, 0, len(poker.Categories))
	for _, category := range poker.Categories {
		counts = append(counts, categoryCount{
			Category: category,
			Hands:    seen[category],
			Wins:     wins[category],
		})
	}

	return &summary{
		Splits: splits,
		Counts: counts,
	}
}
