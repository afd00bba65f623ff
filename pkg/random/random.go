// Package random defines the random source used for syllable selection and
// provides the two implementations the rest of the module needs.
package random

import "math/rand/v2"

// Source yields uniformly distributed integers in [0, n). It panics if n <= 0,
// matching math/rand/v2. A *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

type global struct{}

func (global) IntN(n int) int {
	return rand.IntN(n)
}

// Default returns the process-wide source. It is safe for concurrent use.
func Default() Source {
	return global{}
}

// NewSeeded returns a deterministic source. It is not safe for concurrent use;
// give each goroutine its own.
func NewSeeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// OrDefault returns src, or Default when src is nil.
func OrDefault(src Source) Source {
	if src == nil {
		return Default()
	}
	return src
}
