package http

import (
	"net/http"

	"flowfinance/service"
)

type FundHandler struct {
	service *service.FundService
}

func NewFundHandler(service *service.FundService) *FundHandler {
	return &FundHandler{service: service}
}

func (h *FundHandler) Convert(w http.ResponseWriter, r *http.Request) {
	calculate(w, r, h.service.Convert)
}

func (h *FundHandler) Project(w http.ResponseWriter, r *http.Request) {
	calculate(w, r, h.service.Project)
}

func (h *FundHandler) AvailableAmount(w http.ResponseWriter, r *http.Request) {
	calculate(w, r, h.service.AvailableAmount)
}

func (h *FundHandler) TotalCosts(w http.ResponseWriter, r *http.Request) {
	calculate(w, r, h.service.TotalCosts)
}
