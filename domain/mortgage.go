package domain

type MortgageInputs struct {
	HomePrice     float64 `json:"homePrice"`
	DownPayment   float64 `json:"downPayment"`
	InterestRate  float64 `json:"interestRate"`
	LoanTermYears int     `json:"loanTerm"`
	PropertyTax   float64 `json:"propertyTax"` // anual
	Insurance     float64 `json:"insurance"`   // anual
	HOA           float64 `json:"hoa"`         // mensual
}

type CostBreakdown struct {
	PrincipalAndInterest float64 `json:"principalAndInterest"`
	PropertyTax          float64 `json:"propertyTax"`
	Insurance            float64 `json:"insurance"`
	HOA                  float64 `json:"hoa"`
}

type MortgageResult struct {
	LoanAmount          float64             `json:"loanAmount"`
	PeriodicPayment     float64             `json:"periodicPayment"`
	MonthlyOtherCosts   float64             `json:"monthlyOtherCosts"`
	TotalMonthlyPayment float64             `json:"totalMonthlyPayment"`
	TotalInterest       float64             `json:"totalInterest"`
	TotalCost           float64             `json:"totalCost"`
	Breakdown           CostBreakdown       `json:"breakdown"`
	Schedule            []AmortizationEntry `json:"schedule,omitempty"`
	YearlySchedule      []AmortizationYear  `json:"yearlySchedule,omitempty"`
}
