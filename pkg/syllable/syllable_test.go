package syllable

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClassification(t *testing.T) {
	assert.Equal(t, Prefix, MustParse("-abc").Classification)
	assert.Equal(t, Suffix, MustParse("+abc").Classification)
	assert.Equal(t, Center, MustParse("abc").Classification)
	assert.Equal(t, "abc", MustParse("-abc").Value)
}

func TestParseDerivesVowelEdges(t *testing.T) {
	tests := []struct {
		line     string
		previous Joiner
		next     Joiner
	}{
		{"abc", Some | Vowel, Some},
		{"cha", Some, Some | Vowel},
		{"ae", Some | Vowel, Some | Vowel},
		{"th", Some, Some},
		{"-Élan", Some | Vowel, Some},
		{"+rú", Some, Some | Vowel},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			s, err := Parse(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.previous, s.Previous)
			assert.Equal(t, tt.next, s.Next)
		})
	}
}

func TestParseDirectives(t *testing.T) {
	tests := []struct {
		line     string
		previous Joiner
		next     Joiner
		rendered string
	}{
		{"-ch +v", Some, Some | OnlyVowel, "-ch +v"},
		{"ka -C +V", Some | OnlyConsonant, Some | Vowel | OnlyVowel, "ka -c +v"},
		{"ka +v -c", Some | OnlyConsonant, Some | Vowel | OnlyVowel, "ka -c +v"},
		{"+dor  -v", Some | OnlyVowel, Some, "+dor -v"},
		{"  el +c  ", Some | Vowel, Some | OnlyConsonant, "el +c"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			s, err := Parse(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.previous, s.Previous)
			assert.Equal(t, tt.next, s.Next)
			assert.Equal(t, tt.rendered, s.String())
		})
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		line string
		want error
	}{
		{"", ErrEmpty},
		{"   ", ErrEmpty},
		{"ab1", ErrMalformed},
		{"a-b", ErrMalformed},
		{"ab -x", ErrMalformed},
		{"ab-v", ErrMalformed},
		{"-", ErrMalformed},
		{"ab +v +c +c", ErrMalformed},
		{"ab -v -c", ErrDuplicateDirective},
		{"ab +c +c", ErrDuplicateDirective},
		{"--ab", ErrMalformed},
		{"ab'", ErrMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, err := Parse(tt.line)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)

			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tt.line, parseErr.Line)
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	lines := []string{
		"a", "-a", "+a", "ch", "-ch +v", "+ro -c", "dal -v +c", "ri -V", "ǫr +C",
		"-Ælf", "+wyn", "Ωm +v",
	}

	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			first := MustParse(line)
			second, err := Parse(first.String())
			require.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
}

func TestParseNormalizesToComposedForm(t *testing.T) {
	s := MustParse("e\u0301l")

	assert.Equal(t, "\u00e9l", s.Value)
	assert.True(t, s.Previous.Has(Vowel))
}

func TestConnects(t *testing.T) {
	a := MustParse("a")
	b := MustParse("b")
	wantsVowel := MustParse("-ch +v")

	assert.True(t, a.Connects(b))
	assert.True(t, b.Connects(a))
	assert.True(t, wantsVowel.Connects(a))
	assert.False(t, wantsVowel.Connects(b))
	assert.False(t, a.Connects(MustParse("+th -c")))
}

func TestIsVowel(t *testing.T) {
	for _, r := range "aeiouAEIOUáÉîõüÅæØœ" {
		assert.True(t, IsVowel(r), "%q", r)
	}
	for _, r := range "bcdyYñßΩ" {
		assert.False(t, IsVowel(r), "%q", r)
	}
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParse("a1") })
}

func TestClassificationString(t *testing.T) {
	assert.Equal(t, "prefix", Prefix.String())
	assert.Equal(t, "center", Center.String())
	assert.Equal(t, "suffix", Suffix.String())
	assert.Equal(t, "-", Prefix.Marker())
	assert.Equal(t, "", Center.Marker())
	assert.Equal(t, "+", Suffix.Marker())
}
