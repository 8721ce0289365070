package dp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ChoiceProbs returns the multinomial-logit choice probabilities over actions
// at 1-based period t and state index x. The per-state maximum is subtracted
// before exponentiating, the same stabilization the solver's log-sum-exp
// uses, so simulated behavior cannot drift from the solved values.
func (s *Solution) ChoiceProbs(t, x int) ([]float64, error) {
	q := s.Q[t-1][x]
	maxQ := floats.Max(q)
	probs := make([]float64, len(q))
	total := 0.0
	for ai, value := range q {
		e := math.Exp(value - maxQ)
		probs[ai] = e
		total += e
	}
	if total <= 0 || math.IsNaN(total) {
		return nil, fmt.Errorf("period %d state %d: %w", t, x, ErrDegenerateProbs)
	}
	for ai := range probs {
		probs[ai] /= total
	}
	return probs, nil
}
