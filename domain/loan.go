package domain

// LoanInput carries the loan form of the calculator. Rates are percentages.
type LoanInput struct {
	Savings           float64   `json:"savings"`
	Expenses          []float64 `json:"expenses"`
	NominalRate       float64   `json:"nominalRate"`
	LoanTermYears     float64   `json:"loanTermYears"`
	RemainingPayments int       `json:"remainingPayments"`
}

type LoanResult struct {
	LoanAmount       float64 `json:"loanAmount"`
	MonthlyRate      float64 `json:"monthlyRate"` // porcentaje efectivo a 30 días
	MonthlyPayment   float64 `json:"monthlyPayment"`
	PrepaymentAmount float64 `json:"prepaymentAmount"`
}

// InstallmentInput describes a level-payment loan with Frequency payments per year.
type InstallmentInput struct {
	Principal    float64 `json:"principal"`
	InterestRate float64 `json:"interestRate"`
	Years        float64 `json:"years"`
	Frequency    int     `json:"frequency"`
}

type InstallmentResult struct {
	Installment   float64 `json:"installment"`
	Payments      int     `json:"payments"`
	TotalPayment  float64 `json:"totalPayment"`
	TotalInterest float64 `json:"totalInterest"`
}
