package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"flowfinance/domain"
	"flowfinance/finance"
	"flowfinance/metrics"
	"flowfinance/repository"
)

// IndicatorService computes NPV, IRR, B/C and payback for fund flows and simulations.
// Results are cached by input since the IRR probe may walk thousands of rates.
type IndicatorService struct {
	recorder
	cache repository.CacheRepository
}

func NewIndicatorService(
	repo repository.CalculationRepository,
	cache repository.CacheRepository,
	m *metrics.Registry,
) *IndicatorService {
	return &IndicatorService{recorder: recorder{repo: repo, metrics: m}, cache: cache}
}

func cacheKey(kind string, input any) (string, error) {
	b, err := json.Marshal(input)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(b)
	return kind + ":" + hex.EncodeToString(sum[:]), nil
}

// cached returns the stored result for input or computes and stores it.
func (s *IndicatorService) cached(
	ctx context.Context,
	kind string,
	input any,
	compute func() (domain.IndicatorResult, error),
) (domain.IndicatorResult, error) {
	key, err := cacheKey(kind, input)
	if err != nil {
		return domain.IndicatorResult{}, fmt.Errorf("cache key: %w", err)
	}

	if raw, ok := s.cache.Get(ctx, key); ok {
		var result domain.IndicatorResult
		if err := json.Unmarshal([]byte(raw), &result); err == nil {
			s.metrics.CacheLookup(kind, true)
			return result, nil
		}
		log.Warn().Str("key", key).Msg("discarding malformed cached result")
	}
	s.metrics.CacheLookup(kind, false)

	result, err := compute()
	if err != nil {
		return domain.IndicatorResult{}, err
	}
	if b, err := json.Marshal(result); err == nil {
		if err := s.cache.Set(ctx, key, string(b)); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("failed to cache result")
		}
	}
	return result, nil
}

func displayIndicators(res finance.IndicatorResult) domain.IndicatorResult {
	irr := res.IRR
	if irr.Converged {
		irr.Value = round(irr.Value*100, ratioDecimals)
	}
	return domain.IndicatorResult{
		NPV:           roundTo2Decimals(res.NPV),
		IRR:           irr,
		BCR:           round(res.BCR, ratioDecimals),
		PaybackPeriod: res.PaybackPeriod,
	}
}

// ComputeIndicators evaluates day-based flows. IRR is found by the linear probe.
func (s *IndicatorService) ComputeIndicators(
	ctx context.Context,
	input domain.IndicatorInput,
) (domain.IndicatorResult, error) {
	if err := validateRate(input.DiscountRate); err != nil {
		return domain.IndicatorResult{}, s.fail(domain.KindIndicators, err)
	}
	if len(input.CashFlows) > MaxCashFlows {
		return domain.IndicatorResult{}, s.fail(domain.KindIndicators, invalidf("número de flujos excede el máximo de %d", MaxCashFlows))
	}
	for _, f := range input.CashFlows {
		if err := validateDay(f.Day, "día del flujo inválido"); err != nil {
			return domain.IndicatorResult{}, s.fail(domain.KindIndicators, err)
		}
	}

	result, err := s.cached(ctx, domain.KindIndicators, input, func() (domain.IndicatorResult, error) {
		res, err := finance.ComputeIndicators(input.CashFlows, input.DiscountRate/100)
		if err != nil {
			return domain.IndicatorResult{}, err
		}
		return displayIndicators(res), nil
	})
	if err != nil {
		return domain.IndicatorResult{}, s.fail(domain.KindIndicators, err)
	}

	s.done(domain.KindIndicators, input, result)
	return result, nil
}

// Simulate evaluates period-based flows. IRR is found by Newton-Raphson.
func (s *IndicatorService) Simulate(
	ctx context.Context,
	input domain.SimulationInput,
) (domain.IndicatorResult, error) {
	if err := validateRate(input.DiscountRate); err != nil {
		return domain.IndicatorResult{}, s.fail(domain.KindSimulation, err)
	}
	if len(input.CashFlows) > MaxCashFlows {
		return domain.IndicatorResult{}, s.fail(domain.KindSimulation, invalidf("número de flujos excede el máximo de %d", MaxCashFlows))
	}
	for _, f := range input.CashFlows {
		if f.Period < 0 || f.Period > MaxPayments {
			return domain.IndicatorResult{}, s.fail(domain.KindSimulation, invalid("periodo del flujo inválido"))
		}
	}

	result, err := s.cached(ctx, domain.KindSimulation, input, func() (domain.IndicatorResult, error) {
		res, err := finance.SimulateIndicators(input.CashFlows, input.DiscountRate/100)
		if err != nil {
			return domain.IndicatorResult{}, err
		}
		return displayIndicators(res), nil
	})
	if err != nil {
		return domain.IndicatorResult{}, s.fail(domain.KindSimulation, err)
	}

	s.done(domain.KindSimulation, input, result)
	return result, nil
}
