package dp

import "gonum.org/v1/gonum/stat/distuv"

// NewGrid returns the discretized state support: the standard-normal
// quantiles at k/(N+1) for k=1..N. The result is strictly increasing and
// deterministic in n, so every per-action kernel built from it shares one
// index space.
func NewGrid(n int) []float64 {
	grid := make([]float64, n)
	for k := range grid {
		grid[k] = distuv.UnitNormal.Quantile(float64(k+1) / float64(n+1))
	}
	return grid
}
