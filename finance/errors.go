// Package finance holds the time-value-of-money formulas behind the calculator: fund-flow
// compounding, profitability indicators, promissory-note discounting and loan amortization.
//
// Rates are fractions (0.05 for 5%). Functions are pure and report degenerate inputs through
// the sentinel errors below instead of returning NaN or infinities.
package finance

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidInput is returned for non-finite arguments and results that are not real numbers.
	ErrInvalidInput = errors.New("invalid input")
	// ErrEmptyInput is returned when a required collection is empty. It also matches ErrInvalidInput.
	ErrEmptyInput = fmt.Errorf("%w: empty input", ErrInvalidInput)
	// ErrDivisionByZero is returned when a rate or denominator degenerates to zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrNoConvergence is returned when an iterative root finder exceeds its cap.
	ErrNoConvergence = errors.New("no convergence")
	// ErrNotDifferentiable is returned when Newton-Raphson hits a zero derivative.
	ErrNotDifferentiable = errors.New("not differentiable")
)

// Kind maps an error returned by this package to a stable identifier.
// It returns an empty string for errors that did not originate here.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyInput):
		return "empty_input"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, ErrDivisionByZero):
		return "division_by_zero"
	case errors.Is(err, ErrNoConvergence):
		return "no_convergence"
	case errors.Is(err, ErrNotDifferentiable):
		return "not_differentiable"
	}
	return ""
}

// arg names a numeric argument for validation messages.
type arg struct {
	name  string
	value float64
}

// finite returns ErrInvalidInput naming the first argument that is NaN or infinite.
func finite(args ...arg) error {
	for _, a := range args {
		if math.IsNaN(a.value) || math.IsInf(a.value, 0) {
			return fmt.Errorf("%w: %s must be a finite number", ErrInvalidInput, a.name)
		}
	}
	return nil
}

// checkReal rejects results that left the real line, e.g. a negative base raised to a
// fractional power.
func checkReal(name string, v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s is not a real number", ErrInvalidInput, name)
	}
	return v, nil
}
