package finance_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowfinance/finance"
)

func TestComputeIndicators(t *testing.T) {
	t.Run("investment paid back within a year", func(t *testing.T) {
		res, err := finance.ComputeIndicators([]finance.DayFlow{
			{Day: 0, Amount: -1000},
			{Day: 365, Amount: 1200},
		}, 0.05)
		require.NoError(t, err)

		assert.InDelta(t, -1000+1200/1.05, res.NPV, 1e-9)
		assert.InDelta(t, (1200/1.05)/1000, res.BCR, 1e-9)
		require.True(t, res.IRR.Converged)
		assert.InDelta(t, 0.2, res.IRR.Value, 0.0011)
		assert.GreaterOrEqual(t, res.IRR.Value, 0.2-1e-9)
		assert.Equal(t, finance.Payback{At: 365, Reached: true}, res.PaybackPeriod)
	})

	t.Run("payback uses the undiscounted cumulative flow", func(t *testing.T) {
		res, err := finance.ComputeIndicators([]finance.DayFlow{
			{Day: 0, Amount: -1000},
			{Day: 365, Amount: 1000},
		}, 0.5)
		require.NoError(t, err)
		assert.Less(t, res.NPV, 0.0)
		assert.Equal(t, finance.Payback{At: 365, Reached: true}, res.PaybackPeriod)
	})

	t.Run("payback not reached", func(t *testing.T) {
		res, err := finance.ComputeIndicators([]finance.DayFlow{
			{Day: 0, Amount: -1000},
			{Day: 365, Amount: 500},
		}, 0.05)
		require.NoError(t, err)
		assert.False(t, res.PaybackPeriod.Reached)
	})

	t.Run("probe returns the starting rate when npv is already negative", func(t *testing.T) {
		res, err := finance.ComputeIndicators([]finance.DayFlow{
			{Day: 0, Amount: -1000},
			{Day: 365, Amount: 500},
		}, 0.05)
		require.NoError(t, err)
		assert.Equal(t, finance.IRR{Value: 0.1, Converged: true}, res.IRR)
	})

	t.Run("no costs", func(t *testing.T) {
		_, err := finance.ComputeIndicators([]finance.DayFlow{
			{Day: 0, Amount: 100},
			{Day: 365, Amount: 100},
		}, 0.05)
		assert.ErrorIs(t, err, finance.ErrDivisionByZero)
	})

	t.Run("empty flows", func(t *testing.T) {
		_, err := finance.ComputeIndicators(nil, 0.05)
		assert.ErrorIs(t, err, finance.ErrEmptyInput)
	})

	t.Run("non-finite rate", func(t *testing.T) {
		_, err := finance.ComputeIndicators([]finance.DayFlow{{Day: 0, Amount: -1}}, math.NaN())
		assert.ErrorIs(t, err, finance.ErrInvalidInput)
	})
}

func TestProbeIRR_NoConvergence(t *testing.T) {
	// A cost followed by an ever larger benefit keeps the npv positive past the probe cap.
	irr := finance.ProbeIRR([]finance.DayFlow{
		{Day: 0, Amount: -1},
		{Day: 1, Amount: 1e12},
	})
	assert.False(t, irr.Converged)
}

func TestIRRNewton(t *testing.T) {
	t.Run("single period", func(t *testing.T) {
		rate, err := finance.IRRNewton([]finance.PeriodFlow{
			{Period: 0, Amount: -1000},
			{Period: 1, Amount: 1100},
		}, finance.DefaultIRRGuess)
		require.NoError(t, err)
		assert.InDelta(t, 0.1, rate, 1e-6)
	})

	t.Run("flat series is not differentiable", func(t *testing.T) {
		_, err := finance.IRRNewton([]finance.PeriodFlow{
			{Period: 0, Amount: -100},
			{Period: 0, Amount: 100},
		}, finance.DefaultIRRGuess)
		assert.ErrorIs(t, err, finance.ErrNotDifferentiable)
	})

	t.Run("all inflows never converge", func(t *testing.T) {
		_, err := finance.IRRNewton([]finance.PeriodFlow{
			{Period: 1, Amount: 100},
			{Period: 2, Amount: 100},
		}, finance.DefaultIRRGuess)
		assert.ErrorIs(t, err, finance.ErrNoConvergence)
	})

	t.Run("empty flows", func(t *testing.T) {
		_, err := finance.IRRNewton(nil, finance.DefaultIRRGuess)
		assert.ErrorIs(t, err, finance.ErrEmptyInput)
	})
}

func TestIRRStrategiesAgree(t *testing.T) {
	amounts := []float64{-1000, 500, 400, 600}

	var days []finance.DayFlow
	var periods []finance.PeriodFlow
	for i, a := range amounts {
		days = append(days, finance.DayFlow{Day: float64(i) * finance.DaysInYear, Amount: a})
		periods = append(periods, finance.PeriodFlow{Period: i, Amount: a})
	}

	probe := finance.ProbeIRR(days)
	require.True(t, probe.Converged)

	newton, err := finance.IRRNewton(periods, finance.DefaultIRRGuess)
	require.NoError(t, err)

	assert.InDelta(t, newton, probe.Value, 0.001)
}

func TestSimulateIndicators(t *testing.T) {
	res, err := finance.SimulateIndicators([]finance.PeriodFlow{
		{Period: 1, Amount: -1000},
		{Period: 2, Amount: 600},
		{Period: 3, Amount: 600},
	}, 0.1)
	require.NoError(t, err)

	pv1, pv2, pv3 := -1000/1.1, 600/math.Pow(1.1, 2), 600/math.Pow(1.1, 3)
	assert.InDelta(t, pv1+pv2+pv3, res.NPV, 1e-9)
	assert.InDelta(t, (pv2+pv3)/-pv1, res.BCR, 1e-9)
	require.True(t, res.IRR.Converged)
	assert.InDelta(t, 0.1306624, res.IRR.Value, 1e-5)
	// discounted cumulative: -909.09, -413.22, +37.57
	assert.Equal(t, finance.Payback{At: 3, Reached: true}, res.PaybackPeriod)

	t.Run("no costs", func(t *testing.T) {
		_, err := finance.SimulateIndicators([]finance.PeriodFlow{{Period: 1, Amount: 5}}, 0.1)
		assert.ErrorIs(t, err, finance.ErrDivisionByZero)
	})
}

func TestIndicatorResultJSON(t *testing.T) {
	b, err := json.Marshal(finance.IndicatorResult{NPV: 1.5, BCR: 2})
	require.NoError(t, err)
	assert.JSONEq(t, `{"npv":1.5,"irr":"no-convergence","bcr":2,"paybackPeriod":"n/a"}`, string(b))

	var back finance.IndicatorResult
	require.NoError(t, json.Unmarshal([]byte(`{"npv":1,"irr":0.12,"bcr":1.1,"paybackPeriod":730}`), &back))
	assert.Equal(t, finance.IRR{Value: 0.12, Converged: true}, back.IRR)
	assert.Equal(t, finance.Payback{At: 730, Reached: true}, back.PaybackPeriod)

	assert.Error(t, json.Unmarshal([]byte(`{"irr":"maybe"}`), &back))
}
