package dp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGridStrictlyIncreasing(t *testing.T) {
	t.Parallel()

	for _, n := range []int{2, 5, 10, 30} {
		grid := NewGrid(n)
		require.Len(t, grid, n)
		for i := 1; i < n; i++ {
			require.Greater(t, grid[i], grid[i-1], "n=%d index %d", n, i)
		}
	}
}

func TestGridMatchesNormalQuantiles(t *testing.T) {
	t.Parallel()

	// Quantiles at 1/4, 1/2, 3/4 of the standard normal.
	grid := NewGrid(3)
	require.InDelta(t, -0.6744897501960817, grid[0], 1e-12)
	require.InDelta(t, 0, grid[1], 1e-12)
	require.InDelta(t, 0.6744897501960817, grid[2], 1e-12)
}

func TestGridSymmetric(t *testing.T) {
	t.Parallel()

	grid := NewGrid(10)
	for i := 0; i < 10; i++ {
		require.InDelta(t, -grid[9-i], grid[i], 1e-12)
	}
}

func TestGridDeterministic(t *testing.T) {
	t.Parallel()

	require.Equal(t, NewGrid(17), NewGrid(17))
}
