package tsaiwu

import "errors"

// Domain errors for criterion construction and evaluation.
var (
	// ErrInvalidStrength indicates a nonpositive ultimate stress parameter.
	ErrInvalidStrength = errors.New("tsaiwu: strength parameter must be positive")

	// ErrDegenerateSolve indicates the safety-factor quadratic collapsed
	// (zero quadratic coefficient, e.g. for a zero stress state).
	ErrDegenerateSolve = errors.New("tsaiwu: safety factor undefined (degenerate quadratic)")

	// ErrNoRealRoot indicates a negative discriminant in the safety-factor solve.
	ErrNoRealRoot = errors.New("tsaiwu: safety factor has no real root")
)
