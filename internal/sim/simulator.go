// Package sim draws a synthetic panel of agent trajectories from a solved
// model. Each agent is simulated with its own seeded generator, so runs are
// reproducible and agents never share random state.
package sim

import (
	"fmt"
	"math"

	"github.com/jask/jasklabor/internal/dp"
)

// Observation is one agent-period record of the simulated panel.
type Observation struct {
	Agent      int
	Period     int // 1-based
	Action     string
	StateIndex int
	StateValue float64
	// Wage is nil when the agent took the non-wage stay option; a missing
	// wage is never recorded as zero.
	Wage *float64
}

// InitialStatePrior returns the (normalized) prior over grid indices from
// which each agent's first state is drawn. Mass is proportional to
// 1/(index+1), favoring low human-capital entrants.
func InitialStatePrior(n int) []float64 {
	weights := make([]float64, n)
	total := 0.0
	for i := range weights {
		weights[i] = 1 / float64(i+1)
		total += weights[i]
	}
	for i := range weights {
		weights[i] /= total
	}
	return weights
}

// Simulate draws one independent trajectory per agent from the solved choice
// probabilities and transition kernels. Observations are ordered by agent,
// then period. The same seed always yields an identical panel.
func Simulate(sol *dp.Solution, agents int, seed int64) ([]Observation, error) {
	if agents < 1 {
		return nil, fmt.Errorf("agent count must be >= 1, got %d", agents)
	}

	p := sol.Params
	prior := InitialStatePrior(p.GridSize)
	panel := make([]Observation, 0, agents*p.Horizon)

	for agent := 0; agent < agents; agent++ {
		rng := agentRNG(seed, agent)

		state, err := sampleIndex(rng, prior)
		if err != nil {
			return nil, fmt.Errorf("agent %d initial state: %w", agent, err)
		}

		for t := 1; t <= p.Horizon; t++ {
			probs, err := sol.ChoiceProbs(t, state)
			if err != nil {
				return nil, fmt.Errorf("agent %d period %d: %w", agent, t, err)
			}
			choice, err := sampleIndex(rng, probs)
			if err != nil {
				return nil, fmt.Errorf("agent %d period %d: %w", agent, t, err)
			}
			action := p.Actions[choice]

			obs := Observation{
				Agent:      agent,
				Period:     t,
				Action:     action.Name,
				StateIndex: state,
				StateValue: sol.Grid[state],
			}
			if action.Wage {
				level := dp.WageLevel(p, action, sol.Grid[state], t)
				wage := level * math.Exp(p.Sigma*rng.NormFloat64())
				obs.Wage = &wage
			}
			panel = append(panel, obs)

			if t < p.Horizon {
				next, err := sampleIndex(rng, sol.Kernels[choice].RawRowView(state))
				if err != nil {
					return nil, fmt.Errorf("agent %d period %d transition: %w", agent, t, err)
				}
				state = next
			}
		}
	}
	return panel, nil
}

// sampleIndex draws one index from an unnormalized weight vector. Zero-mass
// or NaN vectors are a fatal sampling error rather than a silent default.
func sampleIndex(rng randSource, weights []float64) (int, error) {
	total := 0.0
	for _, w := range weights {
		if w < 0 || math.IsNaN(w) {
			return 0, dp.ErrDegenerateProbs
		}
		total += w
	}
	if total <= 0 {
		return 0, dp.ErrDegenerateProbs
	}
	u := rng.Float64() * total
	for i, w := range weights {
		u -= w
		if u < 0 {
			return i, nil
		}
	}
	return len(weights) - 1, nil
}
