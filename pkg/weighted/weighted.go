// Package weighted draws syllable counts from a fixed discrete distribution.
package weighted

import (
	"errors"
	"fmt"

	"github.com/rnglib/rng/pkg/random"
)

var (
	ErrNoWeights       = errors.New("at least one weight must be positive")
	ErrMismatchedPairs = errors.New("counts and weights differ in length")
)

// Pair maps a syllable count to its relative weight.
type Pair struct {
	Count  int
	Weight int
}

// Profile is an immutable weighted table of syllable counts.
type Profile struct {
	counts     []int
	cumulative []int
	total      int
}

var (
	// Normal favours three-syllable names.
	Normal = MustNew(Pair{2, 4}, Pair{3, 10}, Pair{4, 3}, Pair{5, 1})
	// Short favours two-syllable names.
	Short = MustNew(Pair{2, 4}, Pair{3, 1})
)

// New builds a Profile. Weights must be non-negative and at least one
// positive. Zero-weight counts are kept but never sampled.
func New(pairs ...Pair) (Profile, error) {
	p := Profile{
		counts:     make([]int, 0, len(pairs)),
		cumulative: make([]int, 0, len(pairs)),
	}
	for _, pair := range pairs {
		if pair.Weight < 0 {
			return Profile{}, fmt.Errorf("negative weight %d for count %d", pair.Weight, pair.Count)
		}
		p.total += pair.Weight
		p.counts = append(p.counts, pair.Count)
		p.cumulative = append(p.cumulative, p.total)
	}
	if p.total == 0 {
		return Profile{}, ErrNoWeights
	}
	return p, nil
}

// FromSlices builds a Profile from parallel count and weight lists.
func FromSlices(counts, weights []int) (Profile, error) {
	if len(counts) != len(weights) {
		return Profile{}, ErrMismatchedPairs
	}
	pairs := make([]Pair, len(counts))
	for i := range counts {
		pairs[i] = Pair{Count: counts[i], Weight: weights[i]}
	}
	return New(pairs...)
}

func MustNew(pairs ...Pair) Profile {
	p, err := New(pairs...)
	if err != nil {
		panic(err)
	}
	return p
}

// Sample draws one count. A nil src uses random.Default.
func (p Profile) Sample(src random.Source) int {
	if p.total == 0 {
		return 0
	}
	roll := random.OrDefault(src).IntN(p.total)
	for i, upper := range p.cumulative {
		if roll < upper {
			return p.counts[i]
		}
	}
	return p.counts[len(p.counts)-1]
}

// Counts returns the configured counts in declaration order.
func (p Profile) Counts() []int {
	out := make([]int, len(p.counts))
	copy(out, p.counts)
	return out
}

// Weight returns the weight configured for count, or 0.
func (p Profile) Weight(count int) int {
	prev := 0
	weight := 0
	for i, c := range p.counts {
		if c == count {
			weight += p.cumulative[i] - prev
		}
		prev = p.cumulative[i]
	}
	return weight
}

func (p Profile) Total() int {
	return p.total
}
