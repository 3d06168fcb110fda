package finance_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowfinance/finance"
)

func TestLoanAmount(t *testing.T) {
	got, err := finance.LoanAmount(500, []float64{1000, 250})
	require.NoError(t, err)
	assert.Equal(t, 750.0, got)

	_, err = finance.LoanAmount(500, nil)
	assert.ErrorIs(t, err, finance.ErrEmptyInput)

	_, err = finance.LoanAmount(500, []float64{1, math.NaN()})
	assert.ErrorIs(t, err, finance.ErrInvalidInput)
}

func TestMonthlyRate(t *testing.T) {
	got, err := finance.MonthlyRate(0.12)
	require.NoError(t, err)
	assert.InDelta(t, math.Pow(1+0.12/180, 30)-1, got, 1e-15)
}

func TestMonthlyPayment(t *testing.T) {
	t.Run("zero rate", func(t *testing.T) {
		got, err := finance.MonthlyPayment(1000, 0, 1)
		require.NoError(t, err)
		assert.Equal(t, 1000.0/12, got)
	})

	t.Run("annuity", func(t *testing.T) {
		got, err := finance.MonthlyPayment(10000, 0.12, 2)
		require.NoError(t, err)

		i := math.Pow(1+0.12/180, 30) - 1
		f := math.Pow(1+i, 24)
		assert.InDelta(t, 10000*i*f/(f-1), got, 1e-9)
		assert.Greater(t, got*24, 10000.0)
	})

	t.Run("zero term", func(t *testing.T) {
		_, err := finance.MonthlyPayment(1000, 0.1, 0)
		assert.ErrorIs(t, err, finance.ErrDivisionByZero)
	})
}

func TestPrepaymentAmount(t *testing.T) {
	got, err := finance.PrepaymentAmount(100, 0.01, 3)
	require.NoError(t, err)
	assert.InDelta(t, 100+100*(1.0201-1)/(0.01*1.0201), got, 1e-9)

	last, err := finance.PrepaymentAmount(100, 0.01, 1)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, last, 1e-12)

	_, err = finance.PrepaymentAmount(100, 0, 3)
	assert.ErrorIs(t, err, finance.ErrDivisionByZero)
}

func TestInstallment(t *testing.T) {
	got, err := finance.Installment(1200, 0, 1, 12)
	require.NoError(t, err)
	assert.Equal(t, 100.0, got)

	got, err = finance.Installment(12000, 0.12, 1, 12)
	require.NoError(t, err)
	assert.InDelta(t, 1066.19, got, 0.01)

	_, err = finance.Installment(1200, 0.1, 1, 0)
	assert.ErrorIs(t, err, finance.ErrDivisionByZero)

	_, err = finance.Installment(1200, 0.1, 0, 12)
	assert.ErrorIs(t, err, finance.ErrDivisionByZero)
}

func TestEvaluateLoan(t *testing.T) {
	res, err := finance.EvaluateLoan(2000, []float64{10000, 2000}, 0.12, 2, 24)
	require.NoError(t, err)

	assert.Equal(t, 10000.0, res.LoanAmount)
	payment, err := finance.MonthlyPayment(10000, 0.12, 2)
	require.NoError(t, err)
	assert.Equal(t, payment, res.MonthlyPayment)
	// with every payment still due, paying one now and discounting the rest is the loan
	// amount carried one month forward
	i, err := finance.MonthlyRate(0.12)
	require.NoError(t, err)
	assert.InDelta(t, 10000*(1+i), res.PrepaymentAmount, 1e-6)

	_, err = finance.EvaluateLoan(0, []float64{1000}, 0, 1, 12)
	assert.ErrorIs(t, err, finance.ErrDivisionByZero)
}
