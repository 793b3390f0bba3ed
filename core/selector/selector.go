// Package selector draws random, duplicate-free samples from a menu.
package selector

import (
	"errors"
	"math/rand/v2"
	"slices"
)

// ErrEmptySelection is returned when there is nothing to sample from.
var ErrEmptySelection = errors.New("menu is empty, nothing to select")

// Result is the outcome of a sampling request.
type Result struct {
	// Dishes holds the selected dish names.
	Dishes []string `json:"dishes"`
	// Requested is the count the caller asked for.
	Requested int `json:"requested"`
	// Effective is the count actually used after clamping.
	Effective int `json:"effective"`
	// Clamped is true when Effective differs from Requested.
	Clamped bool `json:"clamped"`
}

// Selector samples without replacement.
type Selector struct {
	rng *rand.Rand
}

// New creates a Selector backed by the given random source.
// A nil source uses a randomly seeded PCG.
func New(src rand.Source) *Selector {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Selector{rng: rand.New(src)}
}

// EffectiveCount clamps count to [1, size]. It returns 0 for an empty menu.
func EffectiveCount(count, size int) int {
	if size <= 0 {
		return 0
	}
	if count < 1 {
		count = 1
	}
	if count > size {
		count = size
	}
	return count
}

// Sample returns count distinct dishes chosen uniformly at random.
func (s *Selector) Sample(dishes []string, count int) (Result, error) {
	if len(dishes) == 0 {
		return Result{Requested: count}, ErrEmptySelection
	}

	effective := EffectiveCount(count, len(dishes))

	// Partial Fisher-Yates: only the first effective slots are shuffled.
	pool := slices.Clone(dishes)
	for i := 0; i < effective; i++ {
		j := i + s.rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	return Result{
		Dishes:    pool[:effective:effective],
		Requested: count,
		Effective: effective,
		Clamped:   effective != count,
	}, nil
}
