package finance

import (
	"fmt"
	"math"
)

// LoanResult summarises a loan taken to cover expenses not met by savings.
type LoanResult struct {
	LoanAmount       float64 `json:"loanAmount"`
	MonthlyPayment   float64 `json:"monthlyPayment"`
	PrepaymentAmount float64 `json:"prepaymentAmount"`
}

// LoanAmount is the total of expenses minus savings.
func LoanAmount(savings float64, expenses []float64) (float64, error) {
	if err := finite(arg{"savings", savings}); err != nil {
		return 0, err
	}
	if len(expenses) == 0 {
		return 0, fmt.Errorf("%w: at least one expense is required", ErrEmptyInput)
	}

	var total float64
	for i, e := range expenses {
		if err := finite(arg{"expense", e}); err != nil {
			return 0, fmt.Errorf("expense %d: %w", i, err)
		}
		total += e
	}
	return total - savings, nil
}

// MonthlyRate converts a nominal annual rate into a 30-day effective rate using 180-day
// sub-periods: (1 + annual/180)^30 - 1.
func MonthlyRate(annualRate float64) (float64, error) {
	if err := finite(arg{"annual rate", annualRate}); err != nil {
		return 0, err
	}
	return checkReal("monthly rate", math.Pow(1+annualRate/180, 30)-1)
}

// annuity returns the level payment that amortises principal over n periods at rate i.
func annuity(principal, i, n float64) float64 {
	if i == 0 {
		return principal / n
	}
	f := math.Pow(1+i, n)
	return principal * i * f / (f - 1)
}

// MonthlyPayment is the level payment amortising loanAmount over termYears*12 months at the
// MonthlyRate of annualRate. A zero rate divides the amount evenly.
func MonthlyPayment(loanAmount, annualRate, termYears float64) (float64, error) {
	if err := finite(arg{"loan amount", loanAmount}, arg{"annual rate", annualRate}, arg{"term", termYears}); err != nil {
		return 0, err
	}
	months := termYears * 12
	if months == 0 {
		return 0, fmt.Errorf("%w: loan term is zero", ErrDivisionByZero)
	}

	i, err := MonthlyRate(annualRate)
	if err != nil {
		return 0, err
	}
	return checkReal("monthly payment", annuity(loanAmount, i, months))
}

// PrepaymentAmount is the current payment plus the present value of the other
// remainingPayments-1 payments at monthlyRate.
func PrepaymentAmount(monthlyPayment, monthlyRate, remainingPayments float64) (float64, error) {
	if err := finite(
		arg{"monthly payment", monthlyPayment},
		arg{"monthly rate", monthlyRate},
		arg{"remaining payments", remainingPayments},
	); err != nil {
		return 0, err
	}
	if monthlyRate == 0 {
		return 0, fmt.Errorf("%w: monthly rate is zero", ErrDivisionByZero)
	}

	f := math.Pow(1+monthlyRate, remainingPayments-1)
	amount := monthlyPayment + monthlyPayment*(f-1)/(monthlyRate*f)
	return checkReal("prepayment amount", amount)
}

// Installment is the level payment for principal over years at frequency payments per year.
// annualRate is split evenly across the payment periods.
func Installment(principal, annualRate, years, frequency float64) (float64, error) {
	if err := finite(
		arg{"principal", principal},
		arg{"annual rate", annualRate},
		arg{"years", years},
		arg{"frequency", frequency},
	); err != nil {
		return 0, err
	}
	if frequency == 0 {
		return 0, fmt.Errorf("%w: payment frequency is zero", ErrDivisionByZero)
	}
	n := years * frequency
	if n == 0 {
		return 0, fmt.Errorf("%w: number of payments is zero", ErrDivisionByZero)
	}
	return checkReal("installment", annuity(principal, annualRate/frequency, n))
}

// EvaluateLoan runs the loan worksheet: the amount to borrow, its monthly payment over
// termYears and the prepayment due with remainingPayments left.
func EvaluateLoan(savings float64, expenses []float64, annualRate, termYears, remainingPayments float64) (LoanResult, error) {
	amount, err := LoanAmount(savings, expenses)
	if err != nil {
		return LoanResult{}, err
	}
	payment, err := MonthlyPayment(amount, annualRate, termYears)
	if err != nil {
		return LoanResult{}, err
	}
	i, err := MonthlyRate(annualRate)
	if err != nil {
		return LoanResult{}, err
	}
	prepayment, err := PrepaymentAmount(payment, i, remainingPayments)
	if err != nil {
		return LoanResult{}, fmt.Errorf("prepayment: %w", err)
	}

	return LoanResult{
		LoanAmount:       amount,
		MonthlyPayment:   payment,
		PrepaymentAmount: prepayment,
	}, nil
}
