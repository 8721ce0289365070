package dp

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Solution holds the solved model: the state grid, one transition kernel per
// action, and the fully populated value tensors. All fields are written once
// by Solve and must be treated as immutable afterwards; the simulator only
// reads them.
type Solution struct {
	Params  Params
	Grid    []float64
	Kernels []*mat.Dense

	// Q[t-1][x][a] is the action-specific value at period t (1-based),
	// state index x: flow payoff plus discounted expected continuation.
	Q [][][]float64
	// V[t-1][x] is the integrated (log-sum-exp over actions) value.
	V [][]float64
}

// Solve runs backward induction from t=T down to t=1. The terminal period is
// annuitized: its flow payoff is divided by TerminalDivisor instead of
// carrying a continuation value.
func Solve(p Params) (*Solution, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("params: %w", err)
	}

	grid := NewGrid(p.GridSize)
	kernels := make([]*mat.Dense, len(p.Actions))
	for ai, a := range p.Actions {
		k, err := NewKernel(grid, a.Drift, p.Dispersion)
		if err != nil {
			return nil, fmt.Errorf("kernel for %s: %w", a.Name, err)
		}
		kernels[ai] = k
	}

	horizon, states, actions := p.Horizon, p.GridSize, len(p.Actions)
	q := make([][][]float64, horizon)
	v := make([][]float64, horizon)
	for t := 0; t < horizon; t++ {
		q[t] = make([][]float64, states)
		v[t] = make([]float64, states)
		for x := 0; x < states; x++ {
			q[t][x] = make([]float64, actions)
		}
	}

	// Terminal base case: annuity of the flow payoff, no continuation.
	for x := 0; x < states; x++ {
		for ai, a := range p.Actions {
			flow, err := FlowPayoff(p, a, grid[x], horizon)
			if err != nil {
				return nil, err
			}
			q[horizon-1][x][ai] = flow / p.TerminalDivisor
		}
		v[horizon-1][x] = floats.LogSumExp(q[horizon-1][x])
	}

	beta := p.Beta()
	for t := horizon - 1; t >= 1; t-- {
		next := v[t] // integrated values for period t+1
		for x := 0; x < states; x++ {
			for ai, a := range p.Actions {
				flow, err := FlowPayoff(p, a, grid[x], t)
				if err != nil {
					return nil, err
				}
				row := kernels[ai].RawRowView(x)
				continuation := 0.0
				for xNext, prob := range row {
					continuation += prob * next[xNext]
				}
				q[t-1][x][ai] = flow + beta*continuation
			}
			v[t-1][x] = floats.LogSumExp(q[t-1][x])
		}
	}

	return &Solution{Params: p, Grid: grid, Kernels: kernels, Q: q, V: v}, nil
}

// Value returns V at 1-based period t and state index x.
func (s *Solution) Value(t, x int) float64 { return s.V[t-1][x] }

// ChoiceValues returns the per-action Q slice at 1-based period t and state
// index x. The slice is owned by the Solution; callers must not mutate it.
func (s *Solution) ChoiceValues(t, x int) []float64 { return s.Q[t-1][x] }
