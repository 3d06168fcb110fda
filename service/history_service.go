package service

import (
	"flowfinance/domain"
	"flowfinance/repository"
)

type HistoryService struct {
	repo repository.CalculationRepository
}

func NewHistoryService(repo repository.CalculationRepository) *HistoryService {
	return &HistoryService{repo: repo}
}

// Recent returns the latest calculations, newest first.
func (s *HistoryService) Recent(limit int) ([]domain.Calculation, error) {
	if limit <= 0 || limit > MaxHistoryResults {
		return nil, invalidf("el límite debe estar entre 1 y %d", MaxHistoryResults)
	}
	return s.repo.List(limit)
}
