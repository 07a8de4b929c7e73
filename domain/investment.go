package domain

import (
	"encoding/json"
	"errors"
)

// ErrUndefinedRatio is returned when a ratio's denominator is zero.
var ErrUndefinedRatio = errors.New("ratio is undefined")

// Ratio is a percentage that may be mathematically undefined.
type Ratio struct {
	Value   float64
	Defined bool
}

func DefinedRatio(v float64) Ratio {
	return Ratio{Value: v, Defined: true}
}

func UndefinedRatio() Ratio {
	return Ratio{}
}

func (r Ratio) Float() (float64, error) {
	if !r.Defined {
		return 0, ErrUndefinedRatio
	}
	return r.Value, nil
}

// MarshalJSON encodes an undefined ratio as null.
func (r Ratio) MarshalJSON() ([]byte, error) {
	if !r.Defined {
		return []byte("null"), nil
	}
	return json.Marshal(r.Value)
}

func (r *Ratio) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = UndefinedRatio()
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*r = DefinedRatio(v)
	return nil
}

type InvestmentInputs struct {
	PurchasePrice      float64 `json:"purchasePrice"`
	DownPaymentPercent float64 `json:"downPaymentPercent"`
	InterestRate       float64 `json:"interestRate"`
	LoanTermYears      int     `json:"loanTerm"`
	MonthlyRent        float64 `json:"monthlyRent"`
	OtherIncome        float64 `json:"otherIncome"` // mensual
	VacancyRate        float64 `json:"vacancyRate"`
	PropertyTax        float64 `json:"propertyTax"` // anual
	Insurance          float64 `json:"insurance"`   // anual
	Repairs            float64 `json:"repairs"`     // % del ingreso bruto
	Management         float64 `json:"management"`  // % del ingreso bruto
}

// InvestmentResult holds annual figures unless the field name says otherwise.
type InvestmentResult struct {
	DownPayment          float64 `json:"downPayment"`
	LoanAmount           float64 `json:"loanAmount"`
	MonthlyDebtService   float64 `json:"mortgagePayment"`
	AnnualDebtService    float64 `json:"annualDebtService"`
	GrossAnnualIncome    float64 `json:"grossIncome"`
	VacancyLoss          float64 `json:"vacancyLoss"`
	EffectiveGrossIncome float64 `json:"effectiveGrossIncome"`
	OperatingExpenses    float64 `json:"operatingExpenses"`
	NetOperatingIncome   float64 `json:"noi"`
	AnnualCashFlow       float64 `json:"annualCashFlow"`
	MonthlyCashFlow      float64 `json:"monthlyCashFlow"`
	TotalMonthlyExpenses float64 `json:"totalExpenses"`
	CapRatePercent       Ratio   `json:"capRate"`
	CashOnCashPercent    Ratio   `json:"cocReturn"`
}
