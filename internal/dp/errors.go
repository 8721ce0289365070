package dp

import "errors"

// Domain errors for the solve pipeline.
var (
	// ErrDegenerateRow indicates a transition-kernel row with zero (or NaN)
	// unnormalized mass, usually from a pathological dispersion.
	ErrDegenerateRow = errors.New("dp: transition row has no probability mass")

	// ErrInvalidWage indicates a non-positive wage level reaching the
	// CRRA transform, which is undefined there.
	ErrInvalidWage = errors.New("dp: non-positive wage level")

	// ErrDegenerateProbs indicates a choice-probability vector that does not
	// sum to positive mass.
	ErrDegenerateProbs = errors.New("dp: choice probabilities have no mass")
)
