package selector

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSample_ClampsAboveLength(t *testing.T) {
	s := New(rand.NewPCG(7, 7))

	res, err := s.Sample([]string{"A", "B", "C"}, 5)
	require.NoError(t, err)

	assert.Equal(t, 5, res.Requested)
	assert.Equal(t, 3, res.Effective)
	assert.True(t, res.Clamped)
	assert.ElementsMatch(t, []string{"A", "B", "C"}, res.Dishes)
}

func TestSample_ClampsNonPositive(t *testing.T) {
	s := New(rand.NewPCG(1, 1))

	for _, count := range []int{0, -3} {
		res, err := s.Sample([]string{"A", "B"}, count)
		require.NoError(t, err)
		assert.Equal(t, 1, res.Effective)
		assert.True(t, res.Clamped)
		assert.Len(t, res.Dishes, 1)
	}
}

func TestSample_EmptyMenu(t *testing.T) {
	s := New(nil)

	res, err := s.Sample(nil, 2)
	assert.ErrorIs(t, err, ErrEmptySelection)
	assert.Empty(t, res.Dishes)
}

func TestSample_ExactCountNoDuplicates(t *testing.T) {
	s := New(rand.NewPCG(42, 0))
	dishes := []string{"A", "B", "C", "D", "E", "F"}

	for i := 0; i < 200; i++ {
		res, err := s.Sample(dishes, 4)
		require.NoError(t, err)
		require.Len(t, res.Dishes, 4)
		assert.False(t, res.Clamped)

		seen := map[string]bool{}
		for _, d := range res.Dishes {
			assert.False(t, seen[d], "duplicate %q", d)
			seen[d] = true
		}
	}
}

func TestSample_DoesNotMutateInput(t *testing.T) {
	s := New(rand.NewPCG(3, 9))
	dishes := []string{"A", "B", "C", "D"}

	_, err := s.Sample(dishes, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, dishes)
}

func TestSample_Distribution(t *testing.T) {
	s := New(rand.NewPCG(11, 13))
	dishes := []string{"A", "B", "C", "D"}
	const rounds = 20000

	hits := map[string]int{}
	for i := 0; i < rounds; i++ {
		res, err := s.Sample(dishes, 1)
		require.NoError(t, err)
		hits[res.Dishes[0]]++
	}

	// Each dish should land near rounds/4; allow a wide band.
	for _, d := range dishes {
		assert.InDelta(t, rounds/4, hits[d], rounds*0.05, "dish %s", d)
	}
}

func TestEffectiveCount(t *testing.T) {
	tests := []struct {
		count, size, want int
	}{
		{2, 5, 2},
		{0, 5, 1},
		{9, 5, 5},
		{3, 0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EffectiveCount(tt.count, tt.size))
	}
}
