package rng

import (
	crand "crypto/rand"
	"math/big"
	"math/rand"
)

// Generator picks the swap index while shuffling
type Generator interface {
	// Intn returns a number in [0, n)
	Intn(n int) int
}

// Crypto draws from crypto/rand. It is the default for real deals.
type Crypto struct{}

// Intn panics if crypto/rand cannot be read
func (Crypto) Intn(n int) int {
	b, err := crand.Int(crand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(b.Int64())
}

// Seeded is a deterministic generator backed by math/rand
type Seeded struct {
	rand *rand.Rand
}

// NewSeeded returns a generator that always produces the same sequence for the same seed
func NewSeeded(seed int64) *Seeded {
	return &Seeded{rand: rand.New(rand.NewSource(seed))} // nolint:gosec
}

func (s *Seeded) Intn(n int) int {
	return s.rand.Intn(n)
}
