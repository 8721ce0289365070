package dp

import (
	"fmt"
	"math"
)

// WageLevel returns the deterministic wage for a wage action: the mean of the
// lognormal wage draw before the idiosyncratic shock. period is 1-based.
func WageLevel(p Params, a ActionSpec, state float64, period int) float64 {
	return math.Exp(a.Return*state + p.Trend*float64(period))
}

// FlowPayoff returns the deterministic flow utility of taking action a at the
// given state and 1-based period, before taste shocks. The stay option earns
// only its intercept; wage actions earn the expected CRRA utility of their
// lognormal wage plus the intercept.
func FlowPayoff(p Params, a ActionSpec, state float64, period int) (float64, error) {
	if !a.Wage {
		return a.Intercept, nil
	}
	u, err := wageUtility(p, WageLevel(p, a, state, period))
	if err != nil {
		return 0, fmt.Errorf("action %s: %w", a.Name, err)
	}
	return u + a.Intercept, nil
}

// wageUtility is the expectation of the CRRA transform of a lognormal wage
// with deterministic level w and log-scale std dev Sigma. The factor
// exp(sigma^2 (1-rho)^2 / 2) corrects E[w^(1-rho)] for the lognormal shock.
// rho=1 collapses to log utility, where the shock term has zero mean.
func wageUtility(p Params, w float64) (float64, error) {
	if w <= 0 || math.IsNaN(w) {
		return 0, fmt.Errorf("%w: %g", ErrInvalidWage, w)
	}
	if p.Rho == 1 {
		return math.Log(w), nil
	}
	correction := math.Exp(p.Sigma * p.Sigma * (1 - p.Rho) * (1 - p.Rho) / 2)
	return (correction*math.Pow(w, 1-p.Rho) - 1) / (1 - p.Rho), nil
}
