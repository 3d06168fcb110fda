package finance

import (
	"fmt"
	"math"
)

// DaysInYear is the conversion basis for fund flows and day-based indicators.
const DaysInYear = 365.0

// DayFlow is a signed cash flow placed at a day offset from day 0.
// Positive amounts are inflows, negative amounts are outflows.
type DayFlow struct {
	Day    float64 `json:"day"`
	Amount float64 `json:"amount"`
}

// Transaction is a signed amount added to a running fund after compounding it by Days.
type Transaction struct {
	Days   float64 `json:"days"`
	Amount float64 `json:"amount"`
}

// growth returns (1+rate)^(days/365).
func growth(rate, days float64) float64 {
	return math.Pow(1+rate, days/DaysInYear)
}

// Convert compounds amount at rate for the given number of days.
func Convert(amount, rate, days float64) (float64, error) {
	if err := finite(arg{"amount", amount}, arg{"rate", rate}, arg{"days", days}); err != nil {
		return 0, err
	}
	return checkReal("converted amount", amount*growth(rate, days))
}

// TotalCosts adds direct and indirect costs.
func TotalCosts(direct, indirect float64) (float64, error) {
	if err := finite(arg{"direct costs", direct}, arg{"indirect costs", indirect}); err != nil {
		return 0, err
	}
	return direct + indirect, nil
}

// ProjectFundFlows compounds initial through each transaction in the given order, adding the
// transaction amount on arrival, then compounds the running total by finalDays.
// Transactions are not sorted.
func ProjectFundFlows(initial, rate, finalDays float64, transactions []Transaction) (float64, error) {
	if err := finite(arg{"initial amount", initial}, arg{"rate", rate}, arg{"final days", finalDays}); err != nil {
		return 0, err
	}

	amount := initial
	for i, t := range transactions {
		if err := finite(arg{"transaction days", t.Days}, arg{"transaction amount", t.Amount}); err != nil {
			return 0, fmt.Errorf("transaction %d: %w", i, err)
		}
		amount = amount*growth(rate, t.Days) + t.Amount
	}
	amount *= growth(rate, finalDays)

	return checkReal("projected amount", amount)
}

// AvailableAmount folds every flow with Day <= closingDay into initialCapital and compounds the
// result from the last included flow's day up to closingDay. When no flow qualifies the capital
// is compounded from day 0.
func AvailableAmount(initialCapital, rate, closingDay float64, flows []DayFlow) (float64, error) {
	if err := finite(arg{"initial capital", initialCapital}, arg{"rate", rate}, arg{"closing day", closingDay}); err != nil {
		return 0, err
	}
	if len(flows) == 0 {
		return 0, fmt.Errorf("%w: at least one cash flow is required", ErrEmptyInput)
	}

	amount := initialCapital
	lastDay := 0.0
	for i, f := range flows {
		if err := finite(arg{"flow day", f.Day}, arg{"flow amount", f.Amount}); err != nil {
			return 0, fmt.Errorf("flow %d: %w", i, err)
		}
		if f.Day > closingDay {
			continue
		}
		amount = amount*growth(rate, f.Day) + f.Amount
		lastDay = f.Day
	}
	amount *= growth(rate, closingDay-lastDay)

	return checkReal("available amount", amount)
}
