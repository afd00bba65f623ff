package rng

import "github.com/rnglib/rng/pkg/syllable"

// DeadEnd is a syllable after which no syllable of Missing can follow.
type DeadEnd struct {
	Syllable syllable.Syllable
	Missing  syllable.Classification
}

// DeadEnds lists prefixes and centers that can strand a chain. A prefix dead
// end on Suffix makes every two-syllable name starting with it fail.
func (g *Generator) DeadEnds() []DeadEnd {
	var out []DeadEnd
	check := func(items []syllable.Syllable) {
		for _, s := range items {
			if !g.Centers.IsEmpty() && g.Centers.FilterByPrevious(s.Next).IsEmpty() {
				out = append(out, DeadEnd{Syllable: s, Missing: syllable.Center})
			}
			if !g.Suffixes.IsEmpty() && g.Suffixes.FilterByPrevious(s.Next).IsEmpty() {
				out = append(out, DeadEnd{Syllable: s, Missing: syllable.Suffix})
			}
		}
	}
	check(g.Prefixes.All())
	check(g.Centers.All())
	return out
}
