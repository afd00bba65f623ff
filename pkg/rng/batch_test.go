package rng

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateManyIsDeterministicAcrossWorkers(t *testing.T) {
	g := mustNew(t, "Rich", richLines)

	serial, err := GenerateMany(context.Background(), g, BatchOptions{Count: 64, Seed: 7, Workers: 1})
	require.NoError(t, err)
	parallel, err := GenerateMany(context.Background(), g, BatchOptions{Count: 64, Seed: 7, Workers: 8})
	require.NoError(t, err)

	assert.Len(t, serial, 64)
	assert.Equal(t, serial, parallel)
	for _, name := range serial {
		assert.NotEmpty(t, name)
	}
}

func TestGenerateManyShort(t *testing.T) {
	g := mustNew(t, "Min", minLines)

	names, err := GenerateMany(context.Background(), g, BatchOptions{Count: 50, Short: true})
	require.NoError(t, err)
	for _, name := range names {
		assert.Contains(t, []string{"Ac", "Abc"}, name)
	}
}

func TestGenerateManyFull(t *testing.T) {
	g := mustNew(t, "Min", minLines)

	names, err := GenerateMany(context.Background(), g, BatchOptions{Count: 20, Full: true, Short: true, Seed: 3})
	require.NoError(t, err)
	for _, name := range names {
		parts := strings.Split(name, " ")
		require.Len(t, parts, 2)
		for _, part := range parts {
			assert.Regexp(t, `^Ab*c$`, part)
		}
	}
}

func TestGenerateManyZero(t *testing.T) {
	g := mustNew(t, "Min", minLines)

	names, err := GenerateMany(context.Background(), g, BatchOptions{})
	require.NoError(t, err)
	assert.Empty(t, names)

	_, err = GenerateMany(context.Background(), g, BatchOptions{Count: -1})
	assert.Error(t, err)
}

func TestGenerateManyPropagatesExhaustion(t *testing.T) {
	g := Load("Empty", nil)

	_, err := GenerateMany(context.Background(), g, BatchOptions{Count: 10, Seed: 1})
	assert.True(t, errors.Is(err, ErrExhaustedCandidates))
}

func TestGenerateManyHonoursCancellation(t *testing.T) {
	g := mustNew(t, "Min", minLines)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := GenerateMany(ctx, g, BatchOptions{Count: 10, Seed: 1})
	assert.ErrorIs(t, err, context.Canceled)
}
