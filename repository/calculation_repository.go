package repository

import "flowfinance/domain"

type CalculationRepository interface {
	Save(calc domain.Calculation) error
	// List returns up to limit calculations, newest first. limit <= 0 returns all of them.
	List(limit int) ([]domain.Calculation, error)
}
