package finance

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

const (
	// DefaultIRRGuess is the starting rate for both IRR procedures.
	DefaultIRRGuess = 0.1

	probeStep = 0.001
	// MaxProbeSteps bounds the linear IRR probe; the last rate tried is roughly 100.1 (10010%).
	MaxProbeSteps = 100_000

	newtonMaxIter   = 1000
	newtonTolerance = 1e-4
	// newtonDivergence bounds the iterate; past it the series has no usable root.
	newtonDivergence = 1e6
)

const (
	noConvergenceMarker = "no-convergence"
	notReachedMarker    = "n/a"
)

// PeriodFlow is a signed cash flow placed at a whole period index.
// It is not interchangeable with DayFlow: periods are discounted by whole exponents.
type PeriodFlow struct {
	Period int     `json:"period"`
	Amount float64 `json:"amount"`
}

// IRR is the outcome of an iterative rate search. Value is meaningful only when Converged.
type IRR struct {
	Value     float64
	Converged bool
}

// MarshalJSON encodes a converged rate as a number and anything else as "no-convergence".
func (r IRR) MarshalJSON() ([]byte, error) {
	if !r.Converged {
		return json.Marshal(noConvergenceMarker)
	}
	return json.Marshal(r.Value)
}

// UnmarshalJSON accepts either a number or the "no-convergence" marker.
func (r *IRR) UnmarshalJSON(b []byte) error {
	var marker string
	if err := json.Unmarshal(b, &marker); err == nil {
		if marker != noConvergenceMarker {
			return fmt.Errorf("unknown irr marker %q", marker)
		}
		*r = IRR{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*r = IRR{Value: v, Converged: true}
	return nil
}

// Payback is the first day or period at which the cumulative cash flow turns non-negative.
type Payback struct {
	At      float64
	Reached bool
}

// MarshalJSON encodes an unreached payback as "n/a".
func (p Payback) MarshalJSON() ([]byte, error) {
	if !p.Reached {
		return json.Marshal(notReachedMarker)
	}
	return json.Marshal(p.At)
}

// UnmarshalJSON accepts either a number or the "n/a" marker.
func (p *Payback) UnmarshalJSON(b []byte) error {
	var marker string
	if err := json.Unmarshal(b, &marker); err == nil {
		if marker != notReachedMarker {
			return fmt.Errorf("unknown payback marker %q", marker)
		}
		*p = Payback{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*p = Payback{At: v, Reached: true}
	return nil
}

// IndicatorResult groups the profitability indicators of a cash-flow series.
type IndicatorResult struct {
	NPV           float64 `json:"npv"`
	IRR           IRR     `json:"irr"`
	BCR           float64 `json:"bcr"`
	PaybackPeriod Payback `json:"paybackPeriod"`
}

func npvDays(flows []DayFlow, rate float64) float64 {
	var sum float64
	for _, f := range flows {
		sum += f.Amount / growth(rate, f.Day)
	}
	return sum
}

func validateDayFlows(flows []DayFlow) error {
	if len(flows) == 0 {
		return fmt.Errorf("%w: at least one cash flow is required", ErrEmptyInput)
	}
	for i, f := range flows {
		if err := finite(arg{"flow day", f.Day}, arg{"flow amount", f.Amount}); err != nil {
			return fmt.Errorf("flow %d: %w", i, err)
		}
	}
	return nil
}

// ComputeIndicators evaluates day-based flows at discountRate using a 365-day basis.
//
// IRR is found by probing upward from 0.1 in steps of 0.001 until the NPV is no longer positive.
// The payback period uses the undiscounted cumulative cash flow.
func ComputeIndicators(flows []DayFlow, discountRate float64) (IndicatorResult, error) {
	if err := finite(arg{"discount rate", discountRate}); err != nil {
		return IndicatorResult{}, err
	}
	if err := validateDayFlows(flows); err != nil {
		return IndicatorResult{}, err
	}

	npv, err := checkReal("npv", npvDays(flows, discountRate))
	if err != nil {
		return IndicatorResult{}, err
	}

	var benefits, costs float64
	for _, f := range flows {
		pv := f.Amount / growth(discountRate, f.Day)
		switch {
		case f.Amount > 0:
			benefits += pv
		case f.Amount < 0:
			costs += math.Abs(pv)
		}
	}
	if costs == 0 {
		return IndicatorResult{}, fmt.Errorf("%w: benefit/cost ratio needs at least one negative cash flow", ErrDivisionByZero)
	}
	bcr, err := checkReal("benefit/cost ratio", benefits/costs)
	if err != nil {
		return IndicatorResult{}, err
	}

	var payback Payback
	var cumulative float64
	for _, f := range flows {
		cumulative += f.Amount
		if cumulative >= 0 {
			payback = Payback{At: f.Day, Reached: true}
			break
		}
	}

	return IndicatorResult{
		NPV:           npv,
		IRR:           ProbeIRR(flows),
		BCR:           bcr,
		PaybackPeriod: payback,
	}, nil
}

// ProbeIRR walks the rate upward from DefaultIRRGuess by 0.001 and returns the first rate whose
// NPV is not positive. The rate is accumulated by repeated addition.
func ProbeIRR(flows []DayFlow) IRR {
	rate := DefaultIRRGuess
	for step := 0; step <= MaxProbeSteps; step++ {
		v := npvDays(flows, rate)
		if math.IsNaN(v) {
			return IRR{}
		}
		if v <= 0 {
			return IRR{Value: rate, Converged: true}
		}
		rate += probeStep
	}
	return IRR{}
}

func npvAndDerivative(flows []PeriodFlow, rate float64) (f, df float64) {
	for _, flow := range flows {
		p := float64(flow.Period)
		f += flow.Amount / math.Pow(1+rate, p)
		df -= p * flow.Amount / math.Pow(1+rate, p+1)
	}
	return f, df
}

func validatePeriodFlows(flows []PeriodFlow) error {
	if len(flows) == 0 {
		return fmt.Errorf("%w: at least one cash flow is required", ErrEmptyInput)
	}
	for i, f := range flows {
		if err := finite(arg{"flow amount", f.Amount}); err != nil {
			return fmt.Errorf("flow %d: %w", i, err)
		}
	}
	return nil
}

// IRRNewton solves NPV(rate) = 0 over period flows with Newton-Raphson, starting at guess.
// It stops once successive rates differ by less than 1e-4 and gives up after 1000 iterations
// or once the iterate diverges.
func IRRNewton(flows []PeriodFlow, guess float64) (float64, error) {
	if err := finite(arg{"guess", guess}); err != nil {
		return 0, err
	}
	if err := validatePeriodFlows(flows); err != nil {
		return 0, err
	}

	rate := guess
	for iter := 0; iter < newtonMaxIter; iter++ {
		f, df := npvAndDerivative(flows, rate)
		if df == 0 {
			return 0, fmt.Errorf("%w: npv derivative is zero at rate %g", ErrNotDifferentiable, rate)
		}

		next := rate - f/df
		if math.IsNaN(next) || math.Abs(next) > newtonDivergence {
			return 0, fmt.Errorf("%w: iterate diverged at iteration %d", ErrNoConvergence, iter)
		}
		if math.Abs(next-rate) < newtonTolerance {
			return next, nil
		}
		rate = next
	}

	return 0, fmt.Errorf("%w: %d iterations exceeded", ErrNoConvergence, newtonMaxIter)
}

// SimulateIndicators evaluates period flows at discountRate with whole-period discounting.
// IRR uses Newton-Raphson and the payback period uses the discounted cumulative cash flow.
func SimulateIndicators(flows []PeriodFlow, discountRate float64) (IndicatorResult, error) {
	if err := finite(arg{"discount rate", discountRate}); err != nil {
		return IndicatorResult{}, err
	}
	if err := validatePeriodFlows(flows); err != nil {
		return IndicatorResult{}, err
	}

	var npv, benefits, costs float64
	var payback Payback
	for _, f := range flows {
		pv := f.Amount / math.Pow(1+discountRate, float64(f.Period))
		npv += pv
		switch {
		case f.Amount > 0:
			benefits += pv
		case f.Amount < 0:
			costs += pv
		}
		if !payback.Reached && npv >= 0 {
			payback = Payback{At: float64(f.Period), Reached: true}
		}
	}
	if _, err := checkReal("npv", npv); err != nil {
		return IndicatorResult{}, err
	}
	if costs == 0 {
		return IndicatorResult{}, fmt.Errorf("%w: benefit/cost ratio needs at least one negative cash flow", ErrDivisionByZero)
	}
	bcr, err := checkReal("benefit/cost ratio", benefits/math.Abs(costs))
	if err != nil {
		return IndicatorResult{}, err
	}

	var irr IRR
	rate, err := IRRNewton(flows, DefaultIRRGuess)
	switch {
	case err == nil:
		irr = IRR{Value: rate, Converged: true}
	case !errors.Is(err, ErrNoConvergence):
		return IndicatorResult{}, err
	}

	return IndicatorResult{
		NPV:           npv,
		IRR:           irr,
		BCR:           bcr,
		PaybackPeriod: payback,
	}, nil
}
