package syllable

import (
	"strings"

	"github.com/rnglib/rng/pkg/random"
)

// Collection is an ordered list of syllables. Duplicates are kept and make
// their value proportionally more likely to be picked.
type Collection struct {
	items []Syllable
}

func NewCollection(items ...Syllable) Collection {
	c := Collection{items: make([]Syllable, 0, len(items))}
	c.items = append(c.items, items...)
	return c
}

// ParseCollection parses every raw line and fails on the first invalid one.
func ParseCollection(lines ...string) (Collection, error) {
	c := Collection{items: make([]Syllable, 0, len(lines))}
	for _, line := range lines {
		s, err := Parse(line)
		if err != nil {
			return Collection{}, err
		}
		c.Add(s)
	}
	return c, nil
}

func (c *Collection) Add(s Syllable) {
	c.items = append(c.items, s)
}

// All returns a copy of the contents.
func (c Collection) All() []Syllable {
	out := make([]Syllable, len(c.items))
	copy(out, c.items)
	return out
}

func (c Collection) Len() int {
	return len(c.items)
}

func (c Collection) IsEmpty() bool {
	return len(c.items) == 0
}

func (c Collection) Get(i int) (Syllable, bool) {
	if i < 0 || i >= len(c.items) {
		return Syllable{}, false
	}
	return c.items[i], true
}

func (c Collection) First() (Syllable, bool) {
	return c.Get(0)
}

func (c Collection) Last() (Syllable, bool) {
	return c.Get(len(c.items) - 1)
}

// Contains compares value, classification and both joiners.
func (c Collection) Contains(s Syllable) bool {
	for _, item := range c.items {
		if item == s {
			return true
		}
	}
	return false
}

// FilterByPrevious returns the syllables that may follow an edge whose next
// Joiner is from.
func (c Collection) FilterByPrevious(from Joiner) Collection {
	out := Collection{}
	for _, item := range c.items {
		if from.Joins(item.Previous) {
			out.items = append(out.items, item)
		}
	}
	return out
}

// PickRandom returns a uniformly chosen syllable, or false when c is empty.
func (c Collection) PickRandom(src random.Source) (Syllable, bool) {
	if len(c.items) == 0 {
		return Syllable{}, false
	}
	return c.items[random.OrDefault(src).IntN(len(c.items))], true
}

// NextFrom picks a random syllable that may follow s.
func (c Collection) NextFrom(s Syllable, src random.Source) (Syllable, bool) {
	return c.FilterByPrevious(s.Next).PickRandom(src)
}

// Collapse concatenates every value in order.
func (c Collection) Collapse() string {
	var b strings.Builder
	for _, item := range c.items {
		b.WriteString(item.Value)
	}
	return b.String()
}
