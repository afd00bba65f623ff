package syllable

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Classification is the position a Syllable may take in a name.
type Classification int

const (
	Prefix Classification = iota
	Center
	Suffix
)

func (c Classification) String() string {
	switch c {
	case Prefix:
		return "prefix"
	case Center:
		return "center"
	case Suffix:
		return "suffix"
	default:
		return fmt.Sprintf("classification(%d)", int(c))
	}
}

// Marker returns the leading token that selects c in the syllable grammar.
func (c Classification) Marker() string {
	switch c {
	case Prefix:
		return "-"
	case Suffix:
		return "+"
	default:
		return ""
	}
}

var (
	ErrEmpty              = errors.New("empty line")
	ErrMalformed          = errors.New("does not match syllable grammar")
	ErrDuplicateDirective = errors.New("more than one directive for the same edge")
)

// ParseError is returned by Parse for a line outside the syllable grammar.
type ParseError struct {
	Line string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid syllable %q: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// marker, letters, then up to two [+-][vc] directives.
var linePattern = regexp.MustCompile(`^([+-]?)(\p{L}+)((?:\s+[+-][vVcC]){0,2})$`)

// Syllable is one phonetic fragment together with its position and the
// Joiners guarding its two edges.
type Syllable struct {
	Value          string
	Classification Classification
	Previous       Joiner
	Next           Joiner
}

// Parse reads one line of a language file. The grammar is an optional "-"
// (prefix) or "+" (suffix) marker, one or more letters, then up to two
// directives: "-v"/"-c" constrain what may precede, "+v"/"+c" what may follow.
func Parse(raw string) (Syllable, error) {
	line := strings.TrimSpace(norm.NFC.String(raw))
	if line == "" {
		return Syllable{}, &ParseError{Line: raw, Err: ErrEmpty}
	}

	m := linePattern.FindStringSubmatch(line)
	if m == nil {
		return Syllable{}, &ParseError{Line: raw, Err: ErrMalformed}
	}

	s := Syllable{
		Value:          m[2],
		Classification: classify(m[1]),
		Previous:       Some,
		Next:           Some,
	}

	first, last := edges(s.Value)
	if IsVowel(first) {
		s.Previous |= Vowel
	}
	if IsVowel(last) {
		s.Next |= Vowel
	}

	var sawPrevious, sawNext bool
	for _, d := range strings.Fields(m[3]) {
		flag := OnlyConsonant
		if strings.EqualFold(d[1:], "v") {
			flag = OnlyVowel
		}
		if d[0] == '-' {
			if sawPrevious {
				return Syllable{}, &ParseError{Line: raw, Err: ErrDuplicateDirective}
			}
			sawPrevious = true
			s.Previous |= flag
			continue
		}
		if sawNext {
			return Syllable{}, &ParseError{Line: raw, Err: ErrDuplicateDirective}
		}
		sawNext = true
		s.Next |= flag
	}

	return s, nil
}

// MustParse is like Parse but panics on error. Intended for literals.
func MustParse(raw string) Syllable {
	s, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return s
}

func classify(marker string) Classification {
	switch marker {
	case "-":
		return Prefix
	case "+":
		return Suffix
	default:
		return Center
	}
}

func edges(value string) (first, last rune) {
	runes := []rune(value)
	return runes[0], runes[len(runes)-1]
}

// Connects reports whether other may directly follow s.
func (s Syllable) Connects(other Syllable) bool {
	return s.Next.Joins(other.Previous)
}

// String renders s back into the syllable grammar with normalised directives.
func (s Syllable) String() string {
	return s.Classification.Marker() + s.Value + s.Previous.ValuePrevious() + s.Next.ValueNext()
}

// IsVowel reports whether r is phonetically a vowel. Accented letters count as
// their base letter, so "é" and "Å" are vowels.
func IsVowel(r rune) bool {
	base := []rune(norm.NFD.String(string(r)))
	if len(base) == 0 {
		return false
	}
	switch unicode.ToLower(base[0]) {
	case 'a', 'e', 'i', 'o', 'u', 'æ', 'ø', 'œ':
		return true
	default:
		return false
	}
}
