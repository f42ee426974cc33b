package hackathon

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartition_EvenWithRemainder(t *testing.T) {
	counts, err := Partition(10, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 3, 2, 2}, counts)
}

func TestPartition_Properties(t *testing.T) {
	for total := 0; total <= 50; total++ {
		for workers := 1; workers <= 12; workers++ {
			counts, err := Partition(total, workers)
			require.NoError(t, err)
			require.Len(t, counts, workers)

			sum := 0
			for _, c := range counts {
				sum += c
			}
			assert.Equal(t, total, sum, "partition(%d, %d)", total, workers)
			assert.LessOrEqual(t, slices.Max(counts)-slices.Min(counts), 1, "partition(%d, %d)", total, workers)

			// Remainder goes to the lowest-indexed workers.
			assert.True(t, slices.IsSortedFunc(counts, func(a, b int) int { return b - a }),
				"partition(%d, %d) = %v not non-increasing", total, workers, counts)
		}
	}
}

func TestPartition_ZeroWorkers(t *testing.T) {
	_, err := Partition(5, 0)
	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))
}

func TestPartition_NegativeTotal(t *testing.T) {
	_, err := Partition(-1, 2)
	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))
}

func TestOffsets(t *testing.T) {
	assert.Equal(t, []int{0, 3, 6, 8}, offsets([]int{3, 3, 2, 2}))
	assert.Equal(t, []int{}, offsets([]int{}))
}
