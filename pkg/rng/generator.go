package rng

import (
	"fmt"

	"github.com/rnglib/rng/pkg/random"
	"github.com/rnglib/rng/pkg/syllable"
	"github.com/rnglib/rng/pkg/weighted"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// minSyllables is a prefix followed by a suffix.
const minSyllables = 2

// Generator is a loaded language. It is read-only after Load and safe for
// concurrent generation as long as each goroutine brings its own Source or
// uses random.Default.
type Generator struct {
	Name         string
	Prefixes     syllable.Collection
	Centers      syllable.Collection
	Suffixes     syllable.Collection
	InvalidLines []string
}

// Load parses every line and routes it by classification. Lines that fail to
// parse are kept in InvalidLines; Load itself never fails.
func Load(name string, lines []string) *Generator {
	g := &Generator{Name: name}
	for _, line := range lines {
		s, err := syllable.Parse(line)
		if err != nil {
			g.InvalidLines = append(g.InvalidLines, line)
			continue
		}
		switch s.Classification {
		case syllable.Prefix:
			g.Prefixes.Add(s)
		case syllable.Suffix:
			g.Suffixes.Add(s)
		default:
			g.Centers.Add(s)
		}
	}
	return g
}

// New is Load followed by a validity check. An invalid language is returned
// together with an *InvalidLanguageError wrapping the same generator.
func New(name string, lines []string) (*Generator, error) {
	g := Load(name, lines)
	if !g.IsValid() {
		return g, &InvalidLanguageError{Generator: g}
	}
	return g, nil
}

// IsValid reports whether g has a name, every classification group is
// populated and no line failed to parse.
func (g *Generator) IsValid() bool {
	return len(g.Problems()) == 0
}

// Problems lists the reasons g is not valid.
func (g *Generator) Problems() []string {
	var problems []string
	if g.Name == "" {
		problems = append(problems, "empty name")
	}
	if g.Prefixes.IsEmpty() {
		problems = append(problems, "no prefixes")
	}
	if g.Centers.IsEmpty() {
		problems = append(problems, "no centers")
	}
	if g.Suffixes.IsEmpty() {
		problems = append(problems, "no suffixes")
	}
	if n := len(g.InvalidLines); n > 0 {
		problems = append(problems, fmt.Sprintf("%d invalid lines", n))
	}
	return problems
}

// Syllables returns prefixes, centers and suffixes in that order.
func (g *Generator) Syllables() []syllable.Syllable {
	out := make([]syllable.Syllable, 0, g.Prefixes.Len()+g.Centers.Len()+g.Suffixes.Len())
	out = append(out, g.Prefixes.All()...)
	out = append(out, g.Centers.All()...)
	out = append(out, g.Suffixes.All()...)
	return out
}

// Dump renders every syllable back into the language file grammar.
func (g *Generator) Dump() []string {
	syllables := g.Syllables()
	out := make([]string, len(syllables))
	for i, s := range syllables {
		out[i] = s.String()
	}
	return out
}

// GenerateName builds a name using the weighted.Normal profile.
func (g *Generator) GenerateName() (string, error) {
	return g.Generate(weighted.Normal, nil)
}

// GenerateShortName builds a name using the weighted.Short profile.
func (g *Generator) GenerateShortName() (string, error) {
	return g.Generate(weighted.Short, nil)
}

// Generate samples a syllable count from profile and builds a name of that
// length. A nil src uses random.Default.
func (g *Generator) Generate(profile weighted.Profile, src random.Source) (string, error) {
	src = random.OrDefault(src)
	return g.GenerateCount(profile.Sample(src), src)
}

// GenerateCount builds a name of exactly n syllables, n being raised to 2 when
// lower. The result is title-cased.
func (g *Generator) GenerateCount(n int, src random.Source) (string, error) {
	chain, err := g.Chain(n, src)
	if err != nil {
		return "", err
	}
	return titleCase(chain.Collapse()), nil
}

// Chain picks the syllables of one name: a prefix, n-2 centers and a suffix,
// each one filtered by the next-edge Joiner of the syllable before it.
func (g *Generator) Chain(n int, src random.Source) (syllable.Collection, error) {
	src = random.OrDefault(src)
	if n < minSyllables {
		n = minSyllables
	}

	var chain syllable.Collection
	prefix, ok := g.Prefixes.PickRandom(src)
	if !ok {
		return syllable.Collection{}, g.exhausted(syllable.Prefix, syllable.None, 0)
	}
	chain.Add(prefix)
	frontier := prefix.Next

	for chain.Len() < n-1 {
		center, ok := g.Centers.FilterByPrevious(frontier).PickRandom(src)
		if !ok {
			return syllable.Collection{}, g.exhausted(syllable.Center, frontier, chain.Len())
		}
		chain.Add(center)
		frontier = center.Next
	}

	suffix, ok := g.Suffixes.FilterByPrevious(frontier).PickRandom(src)
	if !ok {
		return syllable.Collection{}, g.exhausted(syllable.Suffix, frontier, chain.Len())
	}
	chain.Add(suffix)

	return chain, nil
}

// FullName returns "First Last", both drawn from the Normal profile.
func (g *Generator) FullName(src random.Source) (string, error) {
	src = random.OrDefault(src)
	first, err := g.Generate(weighted.Normal, src)
	if err != nil {
		return "", err
	}
	last, err := g.Generate(weighted.Normal, src)
	if err != nil {
		return "", err
	}
	return first + " " + last, nil
}

func (g *Generator) exhausted(stage syllable.Classification, frontier syllable.Joiner, emitted int) error {
	return &ExhaustedCandidatesError{
		Language: g.Name,
		Stage:    stage,
		Frontier: frontier,
		Emitted:  emitted,
	}
}

// A Caser is stateful, so one is built per call.
func titleCase(s string) string {
	return cases.Title(language.Und, cases.NoLower).String(s)
}
