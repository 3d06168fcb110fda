package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowfinance/domain"
)

func TestCalculateLoan_WithInterest(t *testing.T) {
	mockRepo := &MockCalculationRepository{}
	service := NewLoanService(mockRepo, nil)

	result, err := service.CalculateLoan(domain.LoanInput{
		Savings:           2000,
		Expenses:          []float64{10000, 2000},
		NominalRate:       12,
		LoanTermYears:     2,
		RemainingPayments: 12,
	})
	require.NoError(t, err)

	assert.Equal(t, 10000.0, result.LoanAmount)
	assert.Greater(t, result.MonthlyPayment, 10000.0/24)
	assert.Greater(t, result.PrepaymentAmount, result.MonthlyPayment)
	assert.Less(t, result.PrepaymentAmount, result.MonthlyPayment*12)
	assert.InDelta(t, 2.02, result.MonthlyRate, 0.01)
	require.True(t, mockRepo.SaveCalled)
	assert.Equal(t, domain.KindLoan, mockRepo.Saved[0].Kind)
}

func TestCalculateLoan_SavingsCoverExpenses(t *testing.T) {
	mockRepo := &MockCalculationRepository{}
	service := NewLoanService(mockRepo, nil)

	_, err := service.CalculateLoan(domain.LoanInput{
		Savings:           5000,
		Expenses:          []float64{1000},
		NominalRate:       12,
		LoanTermYears:     1,
		RemainingPayments: 6,
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.False(t, mockRepo.SaveCalled)
}

func TestCalculateLoan_InvalidInput(t *testing.T) {
	valid := domain.LoanInput{
		Savings:           0,
		Expenses:          []float64{1000},
		NominalRate:       12,
		LoanTermYears:     1,
		RemainingPayments: 6,
	}

	cases := map[string]func(in *domain.LoanInput){
		"no expenses":       func(in *domain.LoanInput) { in.Expenses = nil },
		"negative expense":  func(in *domain.LoanInput) { in.Expenses = []float64{-1} },
		"zero rate":         func(in *domain.LoanInput) { in.NominalRate = 0 },
		"rate too high":     func(in *domain.LoanInput) { in.NominalRate = MaxInterestRate + 1 },
		"zero term":         func(in *domain.LoanInput) { in.LoanTermYears = 0 },
		"too many payments": func(in *domain.LoanInput) { in.RemainingPayments = 13 },
		"no payments":       func(in *domain.LoanInput) { in.RemainingPayments = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			mockRepo := &MockCalculationRepository{}
			service := NewLoanService(mockRepo, nil)

			in := valid
			mutate(&in)
			_, err := service.CalculateLoan(in)

			assert.Equal(t, "validation", ErrorKind(err))
			assert.False(t, mockRepo.SaveCalled)
		})
	}
}

func TestCalculateLoan_SaveFailureIsNotFatal(t *testing.T) {
	mockRepo := &MockCalculationRepository{ForceError: true}
	service := NewLoanService(mockRepo, nil)

	_, err := service.CalculateLoan(domain.LoanInput{
		Expenses:          []float64{1000},
		NominalRate:       10,
		LoanTermYears:     1,
		RemainingPayments: 12,
	})
	assert.NoError(t, err)
	assert.True(t, mockRepo.SaveCalled)
}

func TestCalculateInstallment_ZeroInterest(t *testing.T) {
	service := NewLoanService(&MockCalculationRepository{}, nil)

	result, err := service.CalculateInstallment(domain.InstallmentInput{
		Principal:    1200,
		InterestRate: 0,
		Years:        1,
		Frequency:    12,
	})
	require.NoError(t, err)

	assert.Equal(t, 100.0, result.Installment)
	assert.Equal(t, 12, result.Payments)
	assert.Equal(t, 0.0, result.TotalInterest)
}

func TestCalculateInstallment_WithInterest(t *testing.T) {
	service := NewLoanService(&MockCalculationRepository{}, nil)

	result, err := service.CalculateInstallment(domain.InstallmentInput{
		Principal:    12000,
		InterestRate: 12,
		Years:        1,
		Frequency:    12,
	})
	require.NoError(t, err)

	assert.Equal(t, 1066.19, result.Installment)
	assert.InDelta(t, 794.22, result.TotalInterest, 0.02)
}

func TestCalculateInstallment_Invalid(t *testing.T) {
	mockRepo := &MockCalculationRepository{}
	service := NewLoanService(mockRepo, nil)

	inputs := []domain.InstallmentInput{
		{Principal: 0, InterestRate: 10, Years: 1, Frequency: 12},
		{Principal: 1000, InterestRate: -1, Years: 1, Frequency: 12},
		{Principal: 1000, InterestRate: 10, Years: 1, Frequency: 0},
		{Principal: 1000, InterestRate: 10, Years: 0, Frequency: 12},
		{Principal: 1000, InterestRate: 10, Years: 0.3, Frequency: 12},
	}
	for _, in := range inputs {
		_, err := service.CalculateInstallment(in)
		assert.Error(t, err, "input %+v", in)
	}
	assert.False(t, mockRepo.SaveCalled)
}
