package service

import (
	"flowfinance/domain"
	"flowfinance/finance"
	"flowfinance/metrics"
	"flowfinance/repository"
)

// FundService compounds capital and fund flows over day offsets.
type FundService struct {
	recorder
}

func NewFundService(repo repository.CalculationRepository, m *metrics.Registry) *FundService {
	return &FundService{recorder: recorder{repo: repo, metrics: m}}
}

func validateRate(rate float64) error {
	if rate <= -100 {
		return invalid("tasa inválida")
	}
	if rate > MaxInterestRate {
		return invalidf("tasa de interés excede el máximo permitido de %.2f%%", MaxInterestRate)
	}
	return nil
}

func validateDay(day float64, message string) error {
	if day < 0 || day > MaxDays {
		return invalid(message)
	}
	return nil
}

// Convert moves an amount forward by the given days.
func (s *FundService) Convert(input domain.ConversionInput) (domain.AmountResult, error) {
	if err := validateRate(input.InterestRate); err != nil {
		return domain.AmountResult{}, s.fail(domain.KindConversion, err)
	}
	if err := validateDay(input.Days, "días inválidos"); err != nil {
		return domain.AmountResult{}, s.fail(domain.KindConversion, err)
	}

	amount, err := finance.Convert(input.Amount, input.InterestRate/100, input.Days)
	if err != nil {
		return domain.AmountResult{}, s.fail(domain.KindConversion, err)
	}

	result := domain.AmountResult{Amount: roundTo2Decimals(amount)}
	s.done(domain.KindConversion, input, result)
	return result, nil
}

// Project runs the fund-flow projection. Transactions are applied in the order received.
func (s *FundService) Project(input domain.ProjectionInput) (domain.AmountResult, error) {
	if err := validateRate(input.InterestRate); err != nil {
		return domain.AmountResult{}, s.fail(domain.KindProjection, err)
	}
	if err := validateDay(input.FinalDays, "días finales inválidos"); err != nil {
		return domain.AmountResult{}, s.fail(domain.KindProjection, err)
	}
	if len(input.Transactions) > MaxCashFlows {
		return domain.AmountResult{}, s.fail(domain.KindProjection, invalidf("número de transacciones excede el máximo de %d", MaxCashFlows))
	}
	for _, t := range input.Transactions {
		if err := validateDay(t.Days, "días de transacción inválidos"); err != nil {
			return domain.AmountResult{}, s.fail(domain.KindProjection, err)
		}
	}

	amount, err := finance.ProjectFundFlows(input.InitialAmount, input.InterestRate/100, input.FinalDays, input.Transactions)
	if err != nil {
		return domain.AmountResult{}, s.fail(domain.KindProjection, err)
	}

	result := domain.AmountResult{Amount: roundTo2Decimals(amount)}
	s.done(domain.KindProjection, input, result)
	return result, nil
}

// AvailableAmount computes the capital available on the closing day.
func (s *FundService) AvailableAmount(input domain.AvailableAmountInput) (domain.AmountResult, error) {
	if err := validateRate(input.InterestRate); err != nil {
		return domain.AmountResult{}, s.fail(domain.KindAvailable, err)
	}
	if err := validateDay(input.ClosingDay, "día de cierre inválido"); err != nil {
		return domain.AmountResult{}, s.fail(domain.KindAvailable, err)
	}
	if len(input.CashFlows) > MaxCashFlows {
		return domain.AmountResult{}, s.fail(domain.KindAvailable, invalidf("número de flujos excede el máximo de %d", MaxCashFlows))
	}
	for _, f := range input.CashFlows {
		if err := validateDay(f.Day, "día del flujo inválido"); err != nil {
			return domain.AmountResult{}, s.fail(domain.KindAvailable, err)
		}
	}

	amount, err := finance.AvailableAmount(input.InitialCapital, input.InterestRate/100, input.ClosingDay, input.CashFlows)
	if err != nil {
		return domain.AmountResult{}, s.fail(domain.KindAvailable, err)
	}

	result := domain.AmountResult{Amount: roundTo2Decimals(amount)}
	s.done(domain.KindAvailable, input, result)
	return result, nil
}

// TotalCosts adds direct and indirect costs.
func (s *FundService) TotalCosts(input domain.CostsInput) (domain.AmountResult, error) {
	if input.DirectCosts < 0 || input.IndirectCosts < 0 {
		return domain.AmountResult{}, s.fail(domain.KindCosts, invalid("costos inválidos"))
	}

	amount, err := finance.TotalCosts(input.DirectCosts, input.IndirectCosts)
	if err != nil {
		return domain.AmountResult{}, s.fail(domain.KindCosts, err)
	}

	result := domain.AmountResult{Amount: roundTo2Decimals(amount)}
	s.done(domain.KindCosts, input, result)
	return result, nil
}
