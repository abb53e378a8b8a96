package main

import (
	"bytes"
	"context"
	"errors"
	"github.com/stretchr/testify/assert"
	"holdem-evaluator/pkg/poker"
	"os"
	"strings"
	"testing"
)

func TestRunFixtures(t *testing.T) {
	a := assert.New(t)

	file, err := os.Open("testdata/fixtures.yaml")
	if !a.NoError(err) {
		return
	}
	defer file.Close()

	fixtures, err := readFixtures(file)
	a.NoError(err)
	a.Len(fixtures, 4)

	results, err := runFixtures(context.Background(), fixtures, 2)
	a.NoError(err)
	a.Len(results, 4)

	a.Equal("royal", results[0].Name)
	a.Equal(poker.RoyalFlush, results[0].Hand.Category)
	a.True(results[0].Passed)

	a.Equal("Straight, Five high", results[1].Describe)
	a.True(results[1].Passed)

	a.Equal("Full house, Sixes over Threes", results[2].Describe)
	a.True(results[2].Passed)

	a.Nil(results[3].Expect)
	a.Equal(poker.HighCard, results[3].Hand.Category)
	a.True(results[3].Passed)
}

func TestRunFixtures_Mismatch(t *testing.T) {
	results, err := runFixtures(context.Background(), []fixture{
		{Name: "pair", Pool: "2c,2d,5h,7s,9c,11d,13h", Expect: "flush"},
	}, 1)
	assert.NoError(t, err)
	assert.False(t, results[0].Passed)
	assert.Equal(t, poker.Flush, *results[0].Expect)
}

func TestRunFixtures_Errors(t *testing.T) {
	_, err := runFixtures(context.Background(), []fixture{{Name: "short", Pool: "2c,3c"}}, 1)
	assert.True(t, errors.Is(err, poker.ErrInvalidInputSize))

	_, err = runFixtures(context.Background(), []fixture{{Name: "bad", Pool: "2c,3c,4c,5c,6c,7c,1z"}}, 1)
	assert.Error(t, err)

	_, err = runFixtures(context.Background(), []fixture{{Name: "dupe", Pool: "2c,2c,4c,5c,6c,7c,8d"}}, 1)
	assert.EqualError(t, err, "fixture dupe: duplicate card in pool")

	_, err = runFixtures(context.Background(), []fixture{{Name: "expect", Pool: "2c,3c,4c,5c,6c,7c,8d", Expect: "nope"}}, 1)
	assert.Error(t, err)
}

func TestReadFixtures_Invalid(t *testing.T) {
	_, err := readFixtures(strings.NewReader("name: [unclosed"))
	assert.Error(t, err)
}

func TestCompare(t *testing.T) {
	var buf bytes.Buffer
	err := compare(&buf, "14c,14d,2h,5s,7c,9d,11h", "13c,13d,2s,5h,7d,9c,11s")
	assert.NoError(t, err)
	assert.Equal(t, "Pair of Aces vs Pair of Kings: first wins\n", buf.String())

	assert.Error(t, compare(&buf, "14c,14c,2h,5s,7c,9d,11h", "13c,13d,2s,5h,7d,9c,11s"))
}
