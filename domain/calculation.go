package domain

import (
	"time"

	"github.com/google/uuid"
)

// Calculation kinds.
const (
	KindIndicators  = "indicators"
	KindSimulation  = "simulation"
	KindConversion  = "conversion"
	KindProjection  = "projection"
	KindAvailable   = "available_amount"
	KindCosts       = "costs"
	KindNote        = "note"
	KindLoan        = "loan"
	KindInstallment = "installment"
)

// Calculation is a history entry of one successful calculation.
type Calculation struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	Input     any       `json:"input"`
	Result    any       `json:"result"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewCalculation stamps a history entry with a fresh ID and the current time.
func NewCalculation(kind string, input, result any) Calculation {
	return Calculation{
		ID:        uuid.New(),
		Kind:      kind,
		Input:     input,
		Result:    result,
		CreatedAt: time.Now().UTC(),
	}
}
