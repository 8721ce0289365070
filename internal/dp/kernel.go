package dp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// NewKernel builds the row-stochastic transition matrix for one action.
// Entry (i,j) is the Normal(grid[i]+drift, dispersion) density at grid[j],
// with each row normalized to sum to 1. This discretizes the latent
// transition x' = x + drift + noise onto the fixed grid.
func NewKernel(grid []float64, drift, dispersion float64) (*mat.Dense, error) {
	if dispersion <= 0 {
		return nil, fmt.Errorf("dispersion must be positive, got %g", dispersion)
	}
	n := len(grid)
	kernel := mat.NewDense(n, n, nil)
	for i, x := range grid {
		step := distuv.Normal{Mu: x + drift, Sigma: dispersion}
		mass := 0.0
		for j, next := range grid {
			density := step.Prob(next)
			kernel.Set(i, j, density)
			mass += density
		}
		if mass <= 0 || math.IsNaN(mass) {
			return nil, fmt.Errorf("row %d (state %g, drift %g): %w", i, x, drift, ErrDegenerateRow)
		}
		for j := 0; j < n; j++ {
			kernel.Set(i, j, kernel.At(i, j)/mass)
		}
	}
	return kernel, nil
}
