package domain

import "flowfinance/finance"

// IndicatorInput holds day-based fund flows and a discount rate in percent.
type IndicatorInput struct {
	CashFlows    []finance.DayFlow `json:"cashFlows"`
	DiscountRate float64           `json:"discountRate"`
}

// SimulationInput holds period-based flows and a discount rate in percent.
type SimulationInput struct {
	CashFlows    []finance.PeriodFlow `json:"cashFlows"`
	DiscountRate float64              `json:"discountRate"`
}

// IndicatorResult is the display form of finance.IndicatorResult: IRR is a percentage and
// amounts are rounded to cents.
type IndicatorResult struct {
	NPV           float64         `json:"npv"`
	IRR           finance.IRR     `json:"irr"`
	BCR           float64         `json:"bcr"`
	PaybackPeriod finance.Payback `json:"paybackPeriod"`
}
