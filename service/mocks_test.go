package service

import (
	"errors"

	"flowfinance/domain"
)

type MockCalculationRepository struct {
	SaveCalled bool
	ForceError bool
	Saved      []domain.Calculation
}

func (m *MockCalculationRepository) Save(calc domain.Calculation) error {
	m.SaveCalled = true
	if m.ForceError {
		return errors.New("save error")
	}
	m.Saved = append(m.Saved, calc)
	return nil
}

func (m *MockCalculationRepository) List(limit int) ([]domain.Calculation, error) {
	if limit > 0 && limit < len(m.Saved) {
		return m.Saved[:limit], nil
	}
	return m.Saved, nil
}
