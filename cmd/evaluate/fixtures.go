package main

import (
	"context"
	"fmt"
	"gopkg.in/yaml.v2"
	"holdem-evaluator/pkg/deck"
	"holdem-evaluator/pkg/poker"
	"io"
)

// fixture is a named pool, optionally with the category it should evaluate to
type fixture struct {
	Name   string `yaml:"name"`
	Pool   string `yaml:"pool"`
	Expect string `yaml:"expect"`
}

type fixtureResult struct {
	Name     string              `json:"name"`
	Pool     string              `json:"pool"`
	Hand     poker.EvaluatedHand `json:"hand"`
	Describe string              `json:"describe"`
	Expect   *poker.Category     `json:"expect,omitempty"`
	Passed   bool                `json:"passed"`
}

func readFixtures(r io.Reader) ([]fixture, error) {
	var fixtures []fixture
	if err := yaml.NewDecoder(r).Decode(&fixtures); err != nil {
		return nil, fmt.Errorf("could not decode fixtures: %w", err)
	}

	return fixtures, nil
}

// runFixtures evaluates every fixture in one batch
func runFixtures(ctx context.Context, fixtures []fixture, workers int) ([]fixtureResult, error) {
	pools := make([][]deck.Card, len(fixtures))
	expects := make([]*poker.Category, len(fixtures))
	for i, f := range fixtures {
		pool, err := deck.ParseCards(f.Pool)
		if err != nil {
			return nil, fmt.Errorf("fixture %s: %w", f.Name, err)
		}

		if len(pool) != poker.PoolSize {
			return nil, fmt.Errorf("fixture %s: %w: got %d cards, want %d", f.Name, poker.ErrInvalidInputSize, len(pool), poker.PoolSize)
		}

		if _, ok := deck.Hand(pool).FirstDuplicate(); ok {
			return nil, fmt.Errorf("fixture %s: duplicate card in pool", f.Name)
		}

		if f.Expect != "" {
			category, err := poker.ParseCategory(f.Expect)
			if err != nil {
				return nil, fmt.Errorf("fixture %s: %w", f.Name, err)
			}

			expects[i] = &category
		}

		pools[i] = pool
	}

	hands, err := poker.EvaluateAll(ctx, pools, workers)
	if err != nil {
		return nil, err
	}

	results := make([]fixtureResult, len(fixtures))
	for i, f := range fixtures {
		results[i] = fixtureResult{
			Name:     f.Name,
			Pool:     deck.CardsToString(pools[i]),
			Hand:     hands[i],
			Describe: hands[i].String(),
			Expect:   expects[i],
			Passed:   expects[i] == nil || *expects[i] == hands[i].Category,
		}
	}

	return results, nil
}
