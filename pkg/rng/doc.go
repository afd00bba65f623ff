// Package rng assembles pronounceable names from the syllables of a language.
//
// A language is a list of lines in the syllable grammar understood by
// syllable.Parse. Lines starting with "-" are prefixes, lines starting with
// "+" are suffixes and everything else is a center:
//
//	-ael
//	-dr +v
//	an
//	thi -c
//	+wen
//	+ra -v
//
// # Assembly
//
// A name of n syllables is one prefix, n-2 centers and one suffix. Every pick
// after the prefix is drawn uniformly from the syllables whose previous-edge
// Joiner joins the next-edge Joiner of the syllable before it (the frontier).
// When a step finds no candidate, generation fails with an
// *ExhaustedCandidatesError instead of returning a shorter name. The whole
// string is title-cased.
//
// The count is drawn from a weighted.Profile: GenerateName uses
// weighted.Normal (2-5 syllables, mostly 3) and GenerateShortName uses
// weighted.Short (2-3 syllables, mostly 2).
//
// # Validity
//
// Load never fails. Lines that do not parse are collected in InvalidLines and
// IsValid reports false, as it does for an empty name or an empty
// classification group. New returns the generator together with an
// *InvalidLanguageError so the failed lines stay inspectable:
//
//	g, err := rng.New("Elven", lines)
//	if errors.Is(err, rng.ErrInvalidLanguage) {
//		for _, line := range g.InvalidLines {
//			fmt.Println("bad line:", line)
//		}
//	}
//
// # Randomness
//
// Every generating method takes a random.Source. Passing nil uses the
// process source from random.Default; tests pass random.NewSeeded for
// reproducible output. A Generator holds no mutable state, so one instance can
// serve many goroutines. GenerateMany does exactly that with one seeded
// source per name.
package rng
