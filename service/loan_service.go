package service

import (
	"flowfinance/domain"
	"flowfinance/finance"
	"flowfinance/metrics"
	"flowfinance/repository"
)

type LoanService struct {
	recorder
}

// NewLoanService creates a new LoanService with the given repository.
func NewLoanService(repo repository.CalculationRepository, m *metrics.Registry) *LoanService {
	return &LoanService{recorder: recorder{repo: repo, metrics: m}}
}

// CalculateLoan computes the amount to borrow, its monthly payment and the prepayment due
// with the given number of payments left.
func (s *LoanService) CalculateLoan(
	input domain.LoanInput,
) (domain.LoanResult, error) {
	if err := validateLoan(input); err != nil {
		return domain.LoanResult{}, s.fail(domain.KindLoan, err)
	}

	annualRate := input.NominalRate / 100
	res, err := finance.EvaluateLoan(
		input.Savings,
		input.Expenses,
		annualRate,
		input.LoanTermYears,
		float64(input.RemainingPayments),
	)
	if err != nil {
		return domain.LoanResult{}, s.fail(domain.KindLoan, err)
	}
	if res.LoanAmount <= 0 {
		return domain.LoanResult{}, s.fail(domain.KindLoan, invalid("los ahorros cubren los gastos: no se requiere préstamo"))
	}
	monthlyRate, err := finance.MonthlyRate(annualRate)
	if err != nil {
		return domain.LoanResult{}, s.fail(domain.KindLoan, err)
	}

	result := domain.LoanResult{
		LoanAmount:       roundTo2Decimals(res.LoanAmount),
		MonthlyRate:      round(monthlyRate*100, ratioDecimals),
		MonthlyPayment:   roundTo2Decimals(res.MonthlyPayment),
		PrepaymentAmount: roundTo2Decimals(res.PrepaymentAmount),
	}
	s.done(domain.KindLoan, input, result)
	return result, nil
}

func validateLoan(input domain.LoanInput) error {
	if input.Savings < 0 || input.Savings > MaxAmount {
		return invalid("ahorros inválidos")
	}
	if len(input.Expenses) == 0 {
		return invalid("no se proporcionaron gastos")
	}
	if len(input.Expenses) > MaxExpenses {
		return invalidf("número de gastos excede el máximo de %d", MaxExpenses)
	}
	for _, e := range input.Expenses {
		if e < 0 || e > MaxAmount {
			return invalid("gasto inválido")
		}
	}
	if input.NominalRate <= 0 {
		return invalid("tasa inválida")
	}
	if input.NominalRate > MaxInterestRate {
		return invalidf("tasa de interés excede el máximo permitido de %.2f%%", MaxInterestRate)
	}
	if input.LoanTermYears <= 0 {
		return invalid("plazo inválido")
	}
	if input.LoanTermYears > MaxTermYears {
		return invalidf("plazo excede el máximo permitido de %d años", MaxTermYears)
	}
	if input.RemainingPayments <= 0 || float64(input.RemainingPayments) > input.LoanTermYears*12 {
		return invalid("cuotas restantes inválidas")
	}
	return nil
}

// CalculateInstallment calculates the level installment of a loan paid Frequency times a year.
func (s *LoanService) CalculateInstallment(
	input domain.InstallmentInput,
) (domain.InstallmentResult, error) {

	// Validar entrada
	if input.Principal <= 0 {
		return domain.InstallmentResult{}, s.fail(domain.KindInstallment, invalid("monto inválido"))
	}
	if input.Principal > MaxAmount {
		return domain.InstallmentResult{}, s.fail(domain.KindInstallment, invalidf("monto excede el máximo permitido de $%.2f", MaxAmount))
	}
	if input.InterestRate < 0 {
		return domain.InstallmentResult{}, s.fail(domain.KindInstallment, invalid("tasa inválida"))
	}
	if input.InterestRate > MaxInterestRate {
		return domain.InstallmentResult{}, s.fail(domain.KindInstallment, invalidf("tasa de interés excede el máximo permitido de %.2f%%", MaxInterestRate))
	}
	if input.Frequency <= 0 || input.Frequency > MaxFrequency {
		return domain.InstallmentResult{}, s.fail(domain.KindInstallment, invalid("frecuencia de pago inválida"))
	}
	payments := input.Years * float64(input.Frequency)
	if input.Years <= 0 || payments != float64(int(payments)) || payments < 1 {
		return domain.InstallmentResult{}, s.fail(domain.KindInstallment, invalid("plazo inválido"))
	}
	if input.Years > MaxTermYears {
		return domain.InstallmentResult{}, s.fail(domain.KindInstallment, invalidf("plazo excede el máximo permitido de %d años", MaxTermYears))
	}

	cuota, err := finance.Installment(input.Principal, input.InterestRate/100, input.Years, float64(input.Frequency))
	if err != nil {
		return domain.InstallmentResult{}, s.fail(domain.KindInstallment, err)
	}

	total := cuota * payments
	result := domain.InstallmentResult{
		Installment:   roundTo2Decimals(cuota),
		Payments:      int(payments),
		TotalPayment:  roundTo2Decimals(total),
		TotalInterest: roundTo2Decimals(total - input.Principal),
	}
	s.done(domain.KindInstallment, input, result)
	return result, nil
}
