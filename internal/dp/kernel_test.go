package dp

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestKernelRowsSumToOne(t *testing.T) {
	t.Parallel()

	grid := NewGrid(10)
	for _, drift := range []float64{-0.2, 0, 1} {
		kernel, err := NewKernel(grid, drift, 0.2)
		require.NoError(t, err)
		rows, cols := kernel.Dims()
		require.Equal(t, 10, rows)
		require.Equal(t, 10, cols)
		for i := 0; i < rows; i++ {
			row := kernel.RawRowView(i)
			require.InDelta(t, 1.0, floats.Sum(row), 1e-9, "drift %g row %d", drift, i)
			for j, p := range row {
				require.GreaterOrEqual(t, p, 0.0, "drift %g entry (%d,%d)", drift, i, j)
			}
		}
	}
}

func TestKernelRejectsNonPositiveDispersion(t *testing.T) {
	t.Parallel()

	grid := NewGrid(5)
	_, err := NewKernel(grid, 0, 0)
	require.Error(t, err)
	_, err = NewKernel(grid, 0, -0.1)
	require.Error(t, err)
}

func TestKernelDriftShiftsMass(t *testing.T) {
	t.Parallel()

	grid := NewGrid(10)
	flat, err := NewKernel(grid, 0, 0.2)
	require.NoError(t, err)
	up, err := NewKernel(grid, 1, 0.2)
	require.NoError(t, err)

	// Expected next-state value from the lowest grid point must be strictly
	// higher under positive drift.
	meanNext := func(kernel interface{ RawRowView(int) []float64 }) float64 {
		var m float64
		for j, p := range kernel.RawRowView(0) {
			m += p * grid[j]
		}
		return m
	}
	require.Greater(t, meanNext(up), meanNext(flat))
}
