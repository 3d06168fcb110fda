package domain

import "flowfinance/finance"

// ConversionInput moves an amount Days forward at InterestRate percent per year.
type ConversionInput struct {
	Amount       float64 `json:"amount"`
	InterestRate float64 `json:"interestRate"`
	Days         float64 `json:"days"`
}

type ProjectionInput struct {
	InitialAmount float64               `json:"initialAmount"`
	InterestRate  float64               `json:"interestRate"`
	FinalDays     float64               `json:"finalDays"`
	Transactions  []finance.Transaction `json:"transactions"`
}

type AvailableAmountInput struct {
	InitialCapital float64           `json:"initialCapital"`
	InterestRate   float64           `json:"interestRate"`
	ClosingDay     float64           `json:"closingDay"`
	CashFlows      []finance.DayFlow `json:"cashFlows"`
}

type CostsInput struct {
	DirectCosts   float64 `json:"directCosts"`
	IndirectCosts float64 `json:"indirectCosts"`
}

// AmountResult is the single-amount answer of the fund calculations.
type AmountResult struct {
	Amount float64 `json:"amount"`
}
