package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowfinance/domain"
	"flowfinance/finance"
)

func TestFundService_Convert(t *testing.T) {
	service := NewFundService(&MockCalculationRepository{}, nil)

	result, err := service.Convert(domain.ConversionInput{Amount: 1000, InterestRate: 10, Days: 365})
	require.NoError(t, err)
	assert.Equal(t, 1100.0, result.Amount)

	_, err = service.Convert(domain.ConversionInput{Amount: 1000, InterestRate: 10, Days: -1})
	assert.Equal(t, "validation", ErrorKind(err))
}

func TestFundService_ProjectKeepsOrder(t *testing.T) {
	service := NewFundService(&MockCalculationRepository{}, nil)
	a := finance.Transaction{Days: 365, Amount: 500}
	b := finance.Transaction{Days: 0, Amount: -200}

	ab, err := service.Project(domain.ProjectionInput{InitialAmount: 1000, InterestRate: 10, Transactions: []finance.Transaction{a, b}})
	require.NoError(t, err)
	ba, err := service.Project(domain.ProjectionInput{InitialAmount: 1000, InterestRate: 10, Transactions: []finance.Transaction{b, a}})
	require.NoError(t, err)

	assert.Equal(t, 1400.0, ab.Amount)
	assert.Equal(t, 1380.0, ba.Amount)
}

func TestFundService_AvailableAmount(t *testing.T) {
	mockRepo := &MockCalculationRepository{}
	service := NewFundService(mockRepo, nil)

	result, err := service.AvailableAmount(domain.AvailableAmountInput{
		InitialCapital: 1000,
		InterestRate:   10,
		ClosingDay:     730,
		CashFlows:      []finance.DayFlow{{Day: 365, Amount: 100}, {Day: 900, Amount: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, 1320.0, result.Amount)

	_, err = service.AvailableAmount(domain.AvailableAmountInput{InitialCapital: 1000, InterestRate: 10, ClosingDay: 30})
	assert.ErrorIs(t, err, finance.ErrEmptyInput)
	assert.Equal(t, "empty_input", ErrorKind(err))
	assert.Len(t, mockRepo.Saved, 1)
}

func TestFundService_TotalCosts(t *testing.T) {
	service := NewFundService(&MockCalculationRepository{}, nil)

	result, err := service.TotalCosts(domain.CostsInput{DirectCosts: 10.25, IndirectCosts: 5.5})
	require.NoError(t, err)
	assert.Equal(t, 15.75, result.Amount)

	_, err = service.TotalCosts(domain.CostsInput{DirectCosts: -1})
	assert.Equal(t, "validation", ErrorKind(err))
}
