package domain

// NoteInput describes a promissory note discounted Days before maturity and, optionally,
// settled DelayDays after it.
type NoteInput struct {
	NominalValue float64 `json:"nominalValue"`
	NominalRate  float64 `json:"nominalRate"` // TNA en porcentaje
	Days         float64 `json:"days"`
	DelayDays    float64 `json:"delayDays"`
}

type NoteResult struct {
	NetValue      float64 `json:"netValue"`
	Discount      float64 `json:"discount"`
	ReceivedValue float64 `json:"receivedValue"`
	FinalValue    float64 `json:"finalValue"`
	TCEA          float64 `json:"tcea"`
	DelayedValue  float64 `json:"delayedValue"`
	DelayedTCEA   float64 `json:"delayedTcea"`
}
