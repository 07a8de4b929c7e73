package domain

// LoanTerms describes a fixed-rate, fixed-term loan.
type LoanTerms struct {
	Principal         float64 `json:"principal"`
	AnnualRatePercent float64 `json:"annualRatePercent"`
	TermYears         int     `json:"termYears"`
}

// Periods returns the number of monthly payments.
func (t LoanTerms) Periods() int {
	return t.TermYears * 12
}

// MonthlyRate converts the annual percentage into a monthly fraction.
func (t LoanTerms) MonthlyRate() float64 {
	return t.AnnualRatePercent / 100 / 12
}

type AmortizationEntry struct {
	Period           int     `json:"period"`
	Principal        float64 `json:"principal"`
	Interest         float64 `json:"interest"`
	RemainingBalance float64 `json:"remainingBalance"`
}

// AmortizationYear rolls twelve monthly entries into one row.
type AmortizationYear struct {
	Year          int     `json:"year"`
	Principal     float64 `json:"principal"`
	Interest      float64 `json:"interest"`
	EndingBalance float64 `json:"endingBalance"`
}
