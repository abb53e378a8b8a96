package poker

import (
	"context"
	"errors"
	"github.com/stretchr/testify/assert"
	"holdem-evaluator/pkg/deck"
	"testing"
)

func TestEvaluateAll(t *testing.T) {
	a := assert.New(t)
	pools := randomPools(17, 500)

	for _, workers := range []int{0, 1, 4, 64} {
		hands, err := EvaluateAll(context.Background(), pools, workers)
		a.NoError(err)
		a.Len(hands, len(pools))

		for i, pool := range pools {
			expected, err := Evaluate(pool)
			a.NoError(err)
			a.Equal(expected, hands[i])
		}
	}
}

func TestEvaluateAll_Empty(t *testing.T) {
	hands, err := EvaluateAll(context.Background(), nil, 2)
	assert.NoError(t, err)
	assert.Empty(t, hands)
}

func TestEvaluateAll_Error(t *testing.T) {
	pools := randomPools(17, 10)
	pools[6] = deck.CardsFromString("2c,3c")

	hands, err := EvaluateAll(context.Background(), pools, 3)
	assert.Nil(t, hands)
	assert.True(t, errors.Is(err, ErrInvalidInputSize))
	assert.Contains(t, err.Error(), "pool 6")
}

func TestEvaluateAll_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := EvaluateAll(ctx, randomPools(17, 10), 2)
	assert.True(t, errors.Is(err, context.Canceled))
}
