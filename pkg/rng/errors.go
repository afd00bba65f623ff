package rng

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rnglib/rng/pkg/syllable"
)

var (
	// ErrInvalidLanguage is matched by *InvalidLanguageError.
	ErrInvalidLanguage = errors.New("invalid language")
	// ErrExhaustedCandidates is matched by *ExhaustedCandidatesError.
	ErrExhaustedCandidates = errors.New("no syllable candidates left")
)

// InvalidLanguageError carries the partially built generator so callers can
// inspect which lines failed.
type InvalidLanguageError struct {
	Generator *Generator
}

func (e *InvalidLanguageError) Error() string {
	if e.Generator == nil {
		return ErrInvalidLanguage.Error()
	}
	return fmt.Sprintf("%s %q: %s", ErrInvalidLanguage, e.Generator.Name, strings.Join(e.Generator.Problems(), ", "))
}

func (e *InvalidLanguageError) Unwrap() error {
	return ErrInvalidLanguage
}

// ExhaustedCandidatesError reports a chain step where no syllable of Stage
// accepted the frontier left by the previous pick. The same language fails the
// same way on retry, so it points at a sparse or inconsistent data set.
type ExhaustedCandidatesError struct {
	Language string
	Stage    syllable.Classification
	Frontier syllable.Joiner
	Emitted  int
}

func (e *ExhaustedCandidatesError) Error() string {
	return fmt.Sprintf("%s: language %q has no %s joining frontier %s after %d syllables",
		ErrExhaustedCandidates, e.Language, e.Stage, e.Frontier, e.Emitted)
}

func (e *ExhaustedCandidatesError) Unwrap() error {
	return ErrExhaustedCandidates
}
