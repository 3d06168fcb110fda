package service

const (
	MaxAmount         = 1_000_000_000.0 // 1 billón
	MaxInterestRate   = 1000.0          // 1000% anual
	MaxDays           = 36_500          // 100 años
	MaxTermYears      = 50
	MaxPayments       = 600 // 50 años de cuotas mensuales
	MaxFrequency      = 365 // pagos por año
	MaxCashFlows      = 500
	MaxExpenses       = 100
	MaxHistoryResults = 100

	currencyDecimals = 2
	ratioDecimals    = 4
	tceaDecimals     = 7
)
