package finance

import (
	"fmt"
	"math"
)

// DaysInCommercialYear is the basis for promissory-note rates and TCEA.
const DaysInCommercialYear = 360.0

// DiscountResult is the outcome of discounting a promissory note.
type DiscountResult struct {
	NetValue float64 `json:"netValue"`
	Discount float64 `json:"discount"`
}

// DiscountedValue discounts a note of the given nominal value days before maturity.
// annualRate is a nominal annual rate capitalised every capPeriods days.
func DiscountedValue(nominal, days, annualRate, capPeriods float64) (DiscountResult, error) {
	if err := finite(
		arg{"nominal value", nominal},
		arg{"days", days},
		arg{"annual rate", annualRate},
		arg{"capitalization periods", capPeriods},
	); err != nil {
		return DiscountResult{}, err
	}
	if capPeriods == 0 {
		return DiscountResult{}, fmt.Errorf("%w: capitalization periods must not be zero", ErrDivisionByZero)
	}

	periodsPerYear := DaysInCommercialYear / capPeriods
	n := days / capPeriods
	effective := math.Pow(1+annualRate/periodsPerYear, n) - 1
	if effective == -1 {
		return DiscountResult{}, fmt.Errorf("%w: effective rate of -100%%", ErrDivisionByZero)
	}
	discountRate, err := checkReal("discount rate", effective/(1+effective))
	if err != nil {
		return DiscountResult{}, err
	}

	discount := nominal * discountRate
	return DiscountResult{
		NetValue: nominal - discount,
		Discount: discount,
	}, nil
}

// ReceivedValue is what the note holder receives at signing.
func ReceivedValue(netValue, initialCosts, retention float64) (float64, error) {
	if err := finite(arg{"net value", netValue}, arg{"initial costs", initialCosts}, arg{"retention", retention}); err != nil {
		return 0, err
	}
	return netValue - initialCosts - retention, nil
}

// FinalValue is what the note holder pays at maturity.
func FinalValue(nominal, finalCosts, retention float64) (float64, error) {
	if err := finite(arg{"nominal value", nominal}, arg{"final costs", finalCosts}, arg{"retention", retention}); err != nil {
		return 0, err
	}
	return nominal + finalCosts - retention, nil
}

// DelayedValue is what the note holder pays when settling after maturity.
func DelayedValue(nominal, finalCostsWithDelay, interestDelay, retention float64) (float64, error) {
	if err := finite(
		arg{"nominal value", nominal},
		arg{"final costs with delay", finalCostsWithDelay},
		arg{"delay interest", interestDelay},
		arg{"retention", retention},
	); err != nil {
		return 0, err
	}
	return nominal + finalCostsWithDelay + interestDelay - retention, nil
}

// TCEA returns the effective annual cost rate, in percent, of receiving receivedValue and
// paying finalValue days later.
func TCEA(finalValue, receivedValue, days float64) (float64, error) {
	if err := finite(arg{"final value", finalValue}, arg{"received value", receivedValue}, arg{"days", days}); err != nil {
		return 0, err
	}
	if receivedValue == 0 {
		return 0, fmt.Errorf("%w: received value is zero", ErrDivisionByZero)
	}
	if days == 0 {
		return 0, fmt.Errorf("%w: days is zero", ErrDivisionByZero)
	}

	tcea := (math.Pow(finalValue/receivedValue, DaysInCommercialYear/days) - 1) * 100
	return checkReal("tcea", tcea)
}

// DelayInterest is the late-payment interest on nominal after delayDays, for an effective
// rate quoted over rateDays.
func DelayInterest(nominal, rate, delayDays, rateDays float64) (float64, error) {
	if err := finite(
		arg{"nominal value", nominal},
		arg{"delay rate", rate},
		arg{"delay days", delayDays},
		arg{"rate days", rateDays},
	); err != nil {
		return 0, err
	}
	if rateDays == 0 {
		return 0, fmt.Errorf("%w: rate days is zero", ErrDivisionByZero)
	}
	return checkReal("delay interest", nominal*(math.Pow(1+rate, delayDays/rateDays)-1))
}
