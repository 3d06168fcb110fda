package http

import (
	"net/http"

	"flowfinance/domain"
	"flowfinance/service"
)

type IndicatorHandler struct {
	service *service.IndicatorService
}

func NewIndicatorHandler(service *service.IndicatorService) *IndicatorHandler {
	return &IndicatorHandler{service: service}
}

func (h *IndicatorHandler) ComputeIndicators(w http.ResponseWriter, r *http.Request) {
	calculate(w, r, func(input domain.IndicatorInput) (domain.IndicatorResult, error) {
		return h.service.ComputeIndicators(r.Context(), input)
	})
}

func (h *IndicatorHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	calculate(w, r, func(input domain.SimulationInput) (domain.IndicatorResult, error) {
		return h.service.Simulate(r.Context(), input)
	})
}
