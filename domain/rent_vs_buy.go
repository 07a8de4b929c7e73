package domain

type RentVsBuyInputs struct {
	MonthlyRent         float64 `json:"rent"`
	RentIncreasePercent float64 `json:"rentIncrease"`
	HomePrice           float64 `json:"homePrice"`
	AppreciationPercent float64 `json:"appreciation"`
	Years               int     `json:"years"`

	// Supuestos simplificados; nil significa "usar el valor por defecto".
	DownPaymentPercent  *float64 `json:"downPaymentPercent,omitempty"`
	MaintenancePercent  *float64 `json:"maintenancePercent,omitempty"`
	TaxInsurancePercent *float64 `json:"taxInsurancePercent,omitempty"`
	DebtServiceFactor   *float64 `json:"debtServiceFactor,omitempty"`
	LoanTermYears       *int     `json:"loanTerm,omitempty"`
}

const (
	DefaultDownPaymentPercent  = 20.0
	DefaultMaintenancePercent  = 1.0
	DefaultTaxInsurancePercent = 1.5
	// Monthly payment per dollar borrowed, roughly a 30-year loan in the mid 5% range.
	DefaultDebtServiceFactor = 0.0055
	DefaultLoanTermYears     = 30
)

// RentVsBuyAssumptions are the resolved buying assumptions of a simulation.
type RentVsBuyAssumptions struct {
	DownPaymentPercent  float64
	MaintenancePercent  float64
	TaxInsurancePercent float64
	DebtServiceFactor   float64
	LoanTermYears       int
}

// Assumptions resolves unset fields to their defaults. An explicit zero is kept.
func (in RentVsBuyInputs) Assumptions() RentVsBuyAssumptions {
	return RentVsBuyAssumptions{
		DownPaymentPercent:  valueOr(in.DownPaymentPercent, DefaultDownPaymentPercent),
		MaintenancePercent:  valueOr(in.MaintenancePercent, DefaultMaintenancePercent),
		TaxInsurancePercent: valueOr(in.TaxInsurancePercent, DefaultTaxInsurancePercent),
		DebtServiceFactor:   valueOr(in.DebtServiceFactor, DefaultDebtServiceFactor),
		LoanTermYears:       valueOr(in.LoanTermYears, DefaultLoanTermYears),
	}
}

// Ptr returns a pointer to v, for filling optional input fields.
func Ptr[T any](v T) *T {
	return &v
}

func valueOr[T any](v *T, fallback T) T {
	if v == nil {
		return fallback
	}
	return *v
}

type WealthPoint struct {
	Year            int     `json:"year"`
	NetRentPosition float64 `json:"netRentPosition"`
	NetBuyPosition  float64 `json:"netBuyPosition"`
}

type Verdict string

const (
	VerdictRenting Verdict = "renting"
	VerdictBuying  Verdict = "buying"
)

type WealthComparison struct {
	Series        []WealthPoint `json:"series"`
	Verdict       Verdict       `json:"verdict"`
	BreakEvenYear int           `json:"breakEvenYear"` // 0 si comprar nunca supera a alquilar
}
