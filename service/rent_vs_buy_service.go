package service

import (
	"math"

	"property-calc/domain"
)

type RentVsBuyService struct{}

// NewRentVsBuyService creates a new RentVsBuyService.
func NewRentVsBuyService() *RentVsBuyService {
	return &RentVsBuyService{}
}

// Simulate projects cumulative rent paid against net home equity, one point
// per year. Debt service is a flat approximation, not an amortized payment.
func (s *RentVsBuyService) Simulate(
	input domain.RentVsBuyInputs,
) (domain.WealthComparison, error) {

	assumptions := input.Assumptions()
	if err := validateRentVsBuy(input, assumptions); err != nil {
		return domain.WealthComparison{}, err
	}

	downPayment := input.HomePrice * assumptions.DownPaymentPercent / 100
	loan := input.HomePrice - downPayment

	annualDebt := loan * assumptions.DebtServiceFactor * 12
	annualUpkeep := input.HomePrice * (assumptions.MaintenancePercent + assumptions.TaxInsurancePercent) / 100
	term := float64(assumptions.LoanTermYears)

	rentGrowth := 1 + input.RentIncreasePercent/100
	appreciation := 1 + input.AppreciationPercent/100

	series := make([]domain.WealthPoint, 0, input.Years)
	rentTotal := 0.0
	for year := 1; year <= input.Years; year++ {
		elapsed := float64(year)
		rentTotal += input.MonthlyRent * 12 * math.Pow(rentGrowth, elapsed-1)

		// La deuda se paga sólo durante el plazo del préstamo
		debtYears := math.Min(elapsed, term)
		value := input.HomePrice * math.Pow(appreciation, elapsed)
		equity := value - loan*(1-debtYears/term)
		outlay := annualDebt*debtYears + annualUpkeep*elapsed + downPayment

		series = append(series, domain.WealthPoint{
			Year:            year,
			NetRentPosition: -rentTotal,
			NetBuyPosition:  equity - outlay,
		})
	}

	return domain.WealthComparison{
		Series:        series,
		Verdict:       Verdict(series),
		BreakEvenYear: BreakEvenYear(series),
	}, nil
}

// Verdict favours buying only when its final position is strictly better.
// A tie goes to renting.
func Verdict(series []domain.WealthPoint) domain.Verdict {
	if len(series) == 0 {
		return domain.VerdictRenting
	}
	last := series[len(series)-1]
	if last.NetBuyPosition > last.NetRentPosition {
		return domain.VerdictBuying
	}
	return domain.VerdictRenting
}

// BreakEvenYear returns the first year buying is ahead, or 0.
func BreakEvenYear(series []domain.WealthPoint) int {
	for _, p := range series {
		if p.NetBuyPosition > p.NetRentPosition {
			return p.Year
		}
	}
	return 0
}

func validateRentVsBuy(input domain.RentVsBuyInputs, a domain.RentVsBuyAssumptions) error {
	if err := checkMoney("rent", input.MonthlyRent, MaxMonthlyRent); err != nil {
		return err
	}
	if err := checkMoney("home price", input.HomePrice, MaxPropertyPrice); err != nil {
		return err
	}
	if err := checkPercent("rent increase", input.RentIncreasePercent, MinGrowthPercent, MaxGrowthPercent); err != nil {
		return err
	}
	if err := checkPercent("appreciation", input.AppreciationPercent, MinGrowthPercent, MaxGrowthPercent); err != nil {
		return err
	}
	if input.Years < 1 || input.Years > MaxHorizonYears {
		return invalid("years must be between 1 and %d", MaxHorizonYears)
	}
	if err := checkPercent("down payment", a.DownPaymentPercent, 0, 100); err != nil {
		return err
	}
	if err := checkPercent("maintenance", a.MaintenancePercent, 0, 100); err != nil {
		return err
	}
	if err := checkPercent("tax and insurance", a.TaxInsurancePercent, 0, 100); err != nil {
		return err
	}
	if math.IsNaN(a.DebtServiceFactor) || a.DebtServiceFactor < 0 || a.DebtServiceFactor > 1 {
		return invalid("debt service factor must be between 0 and 1")
	}
	if a.LoanTermYears < MinTermYears || a.LoanTermYears > MaxTermYears {
		return invalid("loan term must be between %d and %d years", MinTermYears, MaxTermYears)
	}
	return nil
}
