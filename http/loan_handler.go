package http

import (
	"net/http"

	"flowfinance/service"
)

type LoanHandler struct {
	service *service.LoanService
}

func NewLoanHandler(service *service.LoanService) *LoanHandler {
	return &LoanHandler{service: service}
}

func (h *LoanHandler) CalculateLoan(w http.ResponseWriter, r *http.Request) {
	calculate(w, r, h.service.CalculateLoan)
}

func (h *LoanHandler) CalculateInstallment(w http.ResponseWriter, r *http.Request) {
	calculate(w, r, h.service.CalculateInstallment)
}
