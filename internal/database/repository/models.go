package repository

import "time"

// Run represents one solve-and-simulate run.
type Run struct {
	ID        string
	Seed      int64
	Agents    int
	Horizon   int
	GridSize  int
	CreatedAt time.Time
}

// Observation represents one agent-period row of a simulated panel.
type Observation struct {
	RunID      string
	Agent      int
	Period     int
	Action     string
	StateIndex int
	StateValue float64
	Wage       *float64 // nil = stayed out, no wage observed
}
