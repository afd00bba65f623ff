package syllable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var allJoiners = func() []Joiner {
	out := make([]Joiner, 0, 16)
	for bits := Joiner(0); bits < 16; bits++ {
		out = append(out, bits)
	}
	return out
}()

func TestJoinerValuePrevious(t *testing.T) {
	assert.Equal(t, "", (Some | Vowel).ValuePrevious())
	assert.Equal(t, "", Some.ValuePrevious())
	assert.Equal(t, " -c", (Some | OnlyConsonant).ValuePrevious())
	assert.Equal(t, " -c", (Some | Vowel | OnlyConsonant).ValuePrevious())
	assert.Equal(t, " -v", (Some | OnlyVowel).ValuePrevious())
	assert.Equal(t, " -v", (Some | Vowel | OnlyVowel).ValuePrevious())
}

func TestJoinerValueNext(t *testing.T) {
	assert.Equal(t, "", (Some | Vowel).ValueNext())
	assert.Equal(t, "", Some.ValueNext())
	assert.Equal(t, " +c", (Some | OnlyConsonant).ValueNext())
	assert.Equal(t, " +c", (Some | Vowel | OnlyConsonant).ValueNext())
	assert.Equal(t, " +v", (Some | OnlyVowel).ValueNext())
	assert.Equal(t, " +v", (Some | Vowel | OnlyVowel).ValueNext())
}

func TestJoinerJoinsMatrix(t *testing.T) {
	tests := []struct {
		name string
		from Joiner
		to   Joiner
	}{
		{"1 to 1", Some, Some},
		{"1 to 3", Some, Some | Vowel},
		{"1 to 9", Some, Some | OnlyConsonant},
		{"1 to 11", Some, Some | Vowel | OnlyConsonant},
		{"3 to 1", Some | Vowel, Some},
		{"3 to 3", Some | Vowel, Some | Vowel},
		{"3 to 5", Some | Vowel, Some | OnlyVowel},
		{"3 to 7", Some | Vowel, Some | Vowel | OnlyVowel},
		{"5 to 3", Some | OnlyVowel, Some | Vowel},
		{"5 to 11", Some | OnlyVowel, Some | Vowel | OnlyConsonant},
		{"7 to 3", Some | Vowel | OnlyVowel, Some | Vowel},
		{"7 to 7", Some | Vowel | OnlyVowel, Some | Vowel | OnlyVowel},
		{"9 to 1", Some | OnlyConsonant, Some},
		{"9 to 9", Some | OnlyConsonant, Some | OnlyConsonant},
		{"11 to 1", Some | Vowel | OnlyConsonant, Some},
		{"11 to 5", Some | Vowel | OnlyConsonant, Some | OnlyVowel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.from.Joins(tt.to))
		})
	}
}

func TestJoinerJoinsMatrixRejects(t *testing.T) {
	tests := []struct {
		name string
		from Joiner
		to   Joiner
	}{
		{"1 to 5", Some, Some | OnlyVowel},
		{"3 to 9", Some | Vowel, Some | OnlyConsonant},
		{"3 to 11", Some | Vowel, Some | Vowel | OnlyConsonant},
		{"5 to 1", Some | OnlyVowel, Some},
		{"5 to 5", Some | OnlyVowel, Some | OnlyVowel},
		{"5 to 7", Some | OnlyVowel, Some | Vowel | OnlyVowel},
		{"5 to 9", Some | OnlyVowel, Some | OnlyConsonant},
		{"7 to 1", Some | Vowel | OnlyVowel, Some},
		{"7 to 5", Some | Vowel | OnlyVowel, Some | OnlyVowel},
		{"7 to 9", Some | Vowel | OnlyVowel, Some | OnlyConsonant},
		{"7 to 11", Some | Vowel | OnlyVowel, Some | Vowel | OnlyConsonant},
		{"9 to 3", Some | OnlyConsonant, Some | Vowel},
		{"9 to 5", Some | OnlyConsonant, Some | OnlyVowel},
		{"9 to 7", Some | OnlyConsonant, Some | Vowel | OnlyVowel},
		{"9 to 11", Some | OnlyConsonant, Some | Vowel | OnlyConsonant},
		{"11 to 3", Some | Vowel | OnlyConsonant, Some | Vowel},
		{"11 to 7", Some | Vowel | OnlyConsonant, Some | Vowel | OnlyVowel},
		{"11 to 9", Some | Vowel | OnlyConsonant, Some | OnlyConsonant},
		{"11 to 11", Some | Vowel | OnlyConsonant, Some | Vowel | OnlyConsonant},
		{"missing some", Some, Vowel},
		{"from missing some", Vowel, Some | Vowel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, tt.from.Joins(tt.to))
		})
	}
}

func TestJoinerJoinsIsSymmetric(t *testing.T) {
	for _, a := range allJoiners {
		for _, b := range allJoiners {
			assert.Equal(t, a.Joins(b), b.Joins(a), "%s vs %s", a, b)
		}
	}
}

func TestJoinerNoneNeverJoins(t *testing.T) {
	for _, j := range allJoiners {
		assert.False(t, j.Joins(None), "%s joined None", j)
		assert.False(t, None.Joins(j), "None joined %s", j)
	}
}

func TestJoinerJoinsToIsOneDirectional(t *testing.T) {
	from := Some | Vowel
	to := Some | OnlyVowel

	assert.True(t, from.joinsTo(to))
	assert.False(t, to.joinsTo(to))
}

func TestJoinerHas(t *testing.T) {
	assert.False(t, Some.Has(Vowel))
	assert.True(t, (Some | Vowel).Has(Vowel))
	assert.True(t, (Some | Vowel).Has(Some|Vowel))
	assert.True(t, None.IsEmpty())
	assert.Equal(t, "1011", (Some | Vowel | OnlyConsonant).String())
}
