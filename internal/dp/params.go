// Package dp solves a finite-horizon discrete-choice dynamic program over a
// discretized human-capital state: backward induction over Gumbel-shocked
// action values, with per-action Markov transition kernels on a fixed grid.
package dp

import "fmt"

// ActionSpec describes one per-period choice.
type ActionSpec struct {
	Name string
	// Wage marks actions that pay a lognormal wage; the stay/outside
	// option has Wage=false and earns only its intercept.
	Wage bool
	// Return is the wage-return coefficient on the state (wage actions only).
	Return float64
	// Intercept is the flow-utility constant added for this action.
	Intercept float64
	// Drift shifts the state transition: x' ~ Normal(x+Drift, dispersion).
	Drift float64
}

// Params holds the model configuration for one solve. All fields are fixed
// for the lifetime of a Solution.
type Params struct {
	Horizon  int // number of periods T
	GridSize int // number of state grid points N

	InterestRate float64 // per-period rate r; discount factor is 1/(1+r)
	Rho          float64 // CRRA risk-aversion exponent
	Sigma        float64 // wage-shock std dev (log scale)
	Trend        float64 // time-trend coefficient on log wages

	// TerminalDivisor annuitizes the terminal flow payoff: the last period is
	// treated as "repeat this choice forever", so its flow utility is divided
	// by this rate instead of adding a continuation value. Conventionally
	// equal to InterestRate; kept separate as a modeling knob because the
	// same annuity treatment is applied to the non-wage stay option.
	TerminalDivisor float64

	// Dispersion is the std dev of the state transition, shared by all actions.
	Dispersion float64

	Actions []ActionSpec
}

// Beta returns the per-period discount factor 1/(1+r).
func (p Params) Beta() float64 { return 1 / (1 + p.InterestRate) }

// Validate rejects parameter combinations that would make the solve
// undefined. Called by Solve before any allocation.
func (p Params) Validate() error {
	if p.Horizon < 1 {
		return fmt.Errorf("horizon must be >= 1, got %d", p.Horizon)
	}
	if p.GridSize < 2 {
		return fmt.Errorf("grid size must be >= 2, got %d", p.GridSize)
	}
	if p.InterestRate <= 0 {
		return fmt.Errorf("interest rate must be positive, got %g", p.InterestRate)
	}
	if p.Sigma <= 0 {
		return fmt.Errorf("wage-shock sigma must be positive, got %g", p.Sigma)
	}
	if p.Dispersion <= 0 {
		return fmt.Errorf("transition dispersion must be positive, got %g", p.Dispersion)
	}
	if p.TerminalDivisor <= 0 {
		return fmt.Errorf("terminal divisor must be positive, got %g", p.TerminalDivisor)
	}
	if len(p.Actions) < 2 {
		return fmt.Errorf("need at least 2 actions, got %d", len(p.Actions))
	}
	for i, a := range p.Actions {
		if a.Name == "" {
			return fmt.Errorf("action %d has no name", i)
		}
	}
	return nil
}

// DefaultParams is the reference three-action configuration: an outside
// "stay" option under which skills depreciate, a sector that maintains the
// state, and a sector that accumulates it quickly.
func DefaultParams() Params {
	return Params{
		Horizon:         40,
		GridSize:        30,
		InterestRate:    0.05,
		Rho:             0.5,
		Sigma:           0.2,
		Trend:           0.01,
		TerminalDivisor: 0.05,
		Dispersion:      0.2,
		Actions: []ActionSpec{
			{Name: "stay", Intercept: 0.1, Drift: -0.2},
			{Name: "sector1", Wage: true, Return: 0.05, Drift: 0},
			{Name: "sector2", Wage: true, Return: 0.08, Drift: 1},
		},
	}
}
