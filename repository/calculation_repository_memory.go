package repository

import (
	"sync"

	"flowfinance/domain"
)

// CalculationRepositoryMemory is an in-memory implementation of CalculationRepository that
// keeps the most recent calculations up to its capacity.
type CalculationRepositoryMemory struct {
	mu       sync.RWMutex
	capacity int
	data     []domain.Calculation
}

// NewCalculationRepositoryMemory creates a new in-memory calculation repository.
func NewCalculationRepositoryMemory(capacity int) *CalculationRepositoryMemory {
	return &CalculationRepositoryMemory{
		capacity: capacity,
		data:     []domain.Calculation{},
	}
}

// Save stores the calculation in memory, evicting the oldest one when full.
func (r *CalculationRepositoryMemory) Save(calc domain.Calculation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data = append(r.data, calc)
	if r.capacity > 0 && len(r.data) > r.capacity {
		r.data = append(r.data[:0:0], r.data[len(r.data)-r.capacity:]...)
	}
	return nil
}

func (r *CalculationRepositoryMemory) List(limit int) ([]domain.Calculation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := len(r.data)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]domain.Calculation, 0, n)
	for i := len(r.data) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, r.data[i])
	}
	return out, nil
}
