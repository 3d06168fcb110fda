package service

import (
	"github.com/rs/zerolog/log"

	"flowfinance/domain"
	"flowfinance/metrics"
	"flowfinance/repository"
)

// recorder keeps the calculation history and counters shared by every service.
type recorder struct {
	repo    repository.CalculationRepository
	metrics *metrics.Registry
}

func (r recorder) done(kind string, input, result any) {
	// Guardar el resultado (no crítico si falla)
	if err := r.repo.Save(domain.NewCalculation(kind, input, result)); err != nil {
		log.Warn().Err(err).Str("kind", kind).Msg("failed to save calculation")
	}
	r.metrics.CalculationDone(kind)
}

func (r recorder) fail(kind string, err error) error {
	errKind := ErrorKind(err)
	r.metrics.CalculationFailed(kind, errKind)
	log.Debug().Err(err).Str("kind", kind).Str("error_kind", errKind).Msg("calculation rejected")
	return err
}
