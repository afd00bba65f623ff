package weighted

import (
	"testing"

	"github.com/rnglib/rng/pkg/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scripted returns its rolls in order.
type scripted struct {
	rolls []int
	i     int
}

func (s *scripted) IntN(n int) int {
	r := s.rolls[s.i%len(s.rolls)] % n
	s.i++
	return r
}

func TestNormalBounds(t *testing.T) {
	src := random.NewSeeded(1)
	seen := make(map[int]int)
	for i := 0; i < 1000; i++ {
		n := Normal.Sample(src)
		require.Contains(t, []int{2, 3, 4, 5}, n)
		seen[n]++
	}
	assert.Greater(t, seen[3], seen[2], "3 carries the largest weight")
}

func TestShortBounds(t *testing.T) {
	src := random.NewSeeded(2)
	for i := 0; i < 1000; i++ {
		require.Contains(t, []int{2, 3}, Short.Sample(src))
	}
}

func TestDefaultSourceBounds(t *testing.T) {
	for i := 0; i < 1000; i++ {
		require.Contains(t, []int{2, 3, 4, 5}, Normal.Sample(nil))
	}
}

func TestProfilesMatchConfiguredWeights(t *testing.T) {
	assert.Equal(t, []int{2, 3, 4, 5}, Normal.Counts())
	assert.Equal(t, 4, Normal.Weight(2))
	assert.Equal(t, 10, Normal.Weight(3))
	assert.Equal(t, 3, Normal.Weight(4))
	assert.Equal(t, 1, Normal.Weight(5))
	assert.Equal(t, 18, Normal.Total())

	assert.Equal(t, []int{2, 3}, Short.Counts())
	assert.Equal(t, 4, Short.Weight(2))
	assert.Equal(t, 1, Short.Weight(3))
	assert.Equal(t, 0, Short.Weight(4))
}

func TestSampleBoundaries(t *testing.T) {
	// Normal cumulative weights: 4, 14, 17, 18.
	tests := []struct {
		roll int
		want int
	}{
		{0, 2}, {3, 2}, {4, 3}, {13, 3}, {14, 4}, {16, 4}, {17, 5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normal.Sample(&scripted{rolls: []int{tt.roll}}), "roll %d", tt.roll)
	}
}

func TestZeroWeightNeverSampled(t *testing.T) {
	p, err := New(Pair{2, 0}, Pair{7, 3})
	require.NoError(t, err)

	src := random.NewSeeded(9)
	for i := 0; i < 200; i++ {
		assert.Equal(t, 7, p.Sample(src))
	}
}

func TestNewRejectsInvalidWeights(t *testing.T) {
	_, err := New()
	assert.ErrorIs(t, err, ErrNoWeights)

	_, err = New(Pair{2, 0}, Pair{3, 0})
	assert.ErrorIs(t, err, ErrNoWeights)

	_, err = New(Pair{2, -1}, Pair{3, 5})
	assert.Error(t, err)

	_, err = FromSlices([]int{2, 3}, []int{1})
	assert.ErrorIs(t, err, ErrMismatchedPairs)
}

func TestFromSlices(t *testing.T) {
	p, err := FromSlices([]int{2, 3}, []int{4, 1})
	require.NoError(t, err)
	assert.Equal(t, Short, p)
}

func TestMustNewPanics(t *testing.T) {
	assert.Panics(t, func() { MustNew() })
}
