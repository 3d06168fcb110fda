package service

import (
	"flowfinance/config"
	"flowfinance/domain"
	"flowfinance/finance"
	"flowfinance/metrics"
	"flowfinance/repository"
)

// NoteService discounts promissory notes under a configurable fee schedule.
type NoteService struct {
	recorder
	fees config.NoteConfig
}

func NewNoteService(repo repository.CalculationRepository, m *metrics.Registry, fees config.NoteConfig) *NoteService {
	return &NoteService{recorder: recorder{repo: repo, metrics: m}, fees: fees}
}

func sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}

// EvaluateNote discounts the note, then derives the amount received at signing, the amount due
// at maturity and its TCEA, and the same figures when paid DelayDays late.
func (s *NoteService) EvaluateNote(input domain.NoteInput) (domain.NoteResult, error) {
	if err := validateNote(input); err != nil {
		return domain.NoteResult{}, s.fail(domain.KindNote, err)
	}

	result, err := s.evaluate(input)
	if err != nil {
		return domain.NoteResult{}, s.fail(domain.KindNote, err)
	}
	s.done(domain.KindNote, input, result)
	return result, nil
}

func (s *NoteService) evaluate(input domain.NoteInput) (domain.NoteResult, error) {
	nominal := input.NominalValue
	retention := nominal * s.fees.RetentionRate
	initialCosts := sum(s.fees.InitialFees) + nominal*s.fees.InitialFeeRate
	finalCosts := sum(s.fees.FinalFees)

	disc, err := finance.DiscountedValue(nominal, input.Days, input.NominalRate/100, s.fees.CapitalizationDays)
	if err != nil {
		return domain.NoteResult{}, err
	}
	received, err := finance.ReceivedValue(disc.NetValue, initialCosts, retention)
	if err != nil {
		return domain.NoteResult{}, err
	}
	if received <= 0 {
		return domain.NoteResult{}, invalid("el monto recibido no cubre los costos iniciales y la retención")
	}
	final, err := finance.FinalValue(nominal, finalCosts, retention)
	if err != nil {
		return domain.NoteResult{}, err
	}
	tcea, err := finance.TCEA(final, received, input.Days)
	if err != nil {
		return domain.NoteResult{}, err
	}

	// Valores en caso de mora
	interestDelay, err := finance.DelayInterest(nominal, s.fees.DelayRate, input.DelayDays, s.fees.DelayRateDays)
	if err != nil {
		return domain.NoteResult{}, err
	}
	delayed, err := finance.DelayedValue(nominal, finalCosts+sum(s.fees.DelayFees), interestDelay, retention)
	if err != nil {
		return domain.NoteResult{}, err
	}
	delayedTCEA, err := finance.TCEA(delayed, received, input.Days+input.DelayDays)
	if err != nil {
		return domain.NoteResult{}, err
	}

	return domain.NoteResult{
		NetValue:      roundTo2Decimals(disc.NetValue),
		Discount:      roundTo2Decimals(disc.Discount),
		ReceivedValue: roundTo2Decimals(received),
		FinalValue:    roundTo2Decimals(final),
		TCEA:          round(tcea, tceaDecimals),
		DelayedValue:  roundTo2Decimals(delayed),
		DelayedTCEA:   round(delayedTCEA, tceaDecimals),
	}, nil
}

func validateNote(input domain.NoteInput) error {
	if input.NominalValue <= 0 {
		return invalid("valor nominal inválido")
	}
	if input.NominalValue > MaxAmount {
		return invalidf("valor nominal excede el máximo permitido de $%.2f", MaxAmount)
	}
	if input.NominalRate < 0 {
		return invalid("tasa inválida")
	}
	if input.NominalRate > MaxInterestRate {
		return invalidf("tasa de interés excede el máximo permitido de %.2f%%", MaxInterestRate)
	}
	if input.Days <= 0 || input.Days > MaxDays {
		return invalid("días inválidos")
	}
	if input.DelayDays < 0 || input.DelayDays > MaxDays {
		return invalid("días de mora inválidos")
	}
	return nil
}
