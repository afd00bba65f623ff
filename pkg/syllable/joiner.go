package syllable

import "strconv"

// Joiner is a bitset describing one edge of a Syllable: whether the edge is
// active, whether its adjacent character is a vowel, and what it demands of
// the neighbouring edge.
//
// A Joiner has no notion of direction. Whether it guards what may precede or
// what may follow is decided by the Syllable holding it.
type Joiner uint8

const (
	Some Joiner = 1 << iota
	Vowel
	OnlyVowel
	OnlyConsonant
)

// None is the empty Joiner. Nothing joins to or from it.
const None Joiner = 0

// Has reports whether every bit of flags is set.
func (j Joiner) Has(flags Joiner) bool {
	return j&flags == flags
}

func (j Joiner) IsEmpty() bool {
	return j == None
}

// Joins reports whether j and to may sit next to each other. Both edges have
// to accept the other, so the relation is symmetric.
func (j Joiner) Joins(to Joiner) bool {
	return j.joinsTo(to) && to.joinsTo(j)
}

// joinsTo reports whether to accepts being adjacent to j.
func (j Joiner) joinsTo(to Joiner) bool {
	switch {
	case to.IsEmpty():
		return false
	case !to.Has(Some):
		return false
	case j.Has(Vowel) && to.Has(OnlyConsonant):
		return false
	case !j.Has(Vowel) && to.Has(OnlyVowel):
		return false
	default:
		return true
	}
}

// ValuePrevious renders j as the directive that would have produced it on the
// previous edge: " -c", " -v" or "".
func (j Joiner) ValuePrevious() string {
	return j.directive('-')
}

// ValueNext renders j as the directive that would have produced it on the
// next edge: " +c", " +v" or "".
func (j Joiner) ValueNext() string {
	return j.directive('+')
}

func (j Joiner) directive(sign byte) string {
	switch {
	case j.Has(OnlyConsonant):
		return " " + string(sign) + "c"
	case j.Has(OnlyVowel):
		return " " + string(sign) + "v"
	default:
		return ""
	}
}

// String renders the raw bits, e.g. "1011".
func (j Joiner) String() string {
	return strconv.FormatUint(uint64(j), 2)
}
