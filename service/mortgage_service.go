package service

import (
	"slices"

	"property-calc/domain"
)

type ScheduleMode string

const (
	ScheduleNone    ScheduleMode = "none"
	ScheduleMonthly ScheduleMode = "monthly"
	ScheduleYearly  ScheduleMode = "yearly"
)

type MortgageService struct{}

// NewMortgageService creates a new MortgageService.
func NewMortgageService() *MortgageService {
	return &MortgageService{}
}

// Project computes the monthly payment, cost totals and the full monthly schedule.
func (s *MortgageService) Project(input domain.MortgageInputs) (domain.MortgageResult, error) {
	return s.ProjectWithSchedule(input, ScheduleMonthly)
}

// ProjectWithSchedule is Project with control over which schedule is attached
// to the result. Totals are always computed from the full schedule.
func (s *MortgageService) ProjectWithSchedule(
	input domain.MortgageInputs,
	mode ScheduleMode,
) (domain.MortgageResult, error) {

	// Validar entrada
	if err := checkMoney("home price", input.HomePrice, MaxPropertyPrice); err != nil {
		return domain.MortgageResult{}, err
	}
	if err := checkMoney("down payment", input.DownPayment, MaxPropertyPrice); err != nil {
		return domain.MortgageResult{}, err
	}
	if input.DownPayment > input.HomePrice {
		return domain.MortgageResult{}, invalid("down payment exceeds home price")
	}
	if err := checkMoney("property tax", input.PropertyTax, MaxAnnualCost); err != nil {
		return domain.MortgageResult{}, err
	}
	if err := checkMoney("insurance", input.Insurance, MaxAnnualCost); err != nil {
		return domain.MortgageResult{}, err
	}
	if err := checkMoney("hoa", input.HOA, MaxAnnualCost); err != nil {
		return domain.MortgageResult{}, err
	}

	terms := domain.LoanTerms{
		Principal:         input.HomePrice - input.DownPayment,
		AnnualRatePercent: input.InterestRate,
		TermYears:         input.LoanTermYears,
	}

	payment, err := ComputePeriodicPayment(terms)
	if err != nil {
		return domain.MortgageResult{}, err
	}
	schedule, err := BuildAmortizationSchedule(terms)
	if err != nil {
		return domain.MortgageResult{}, err
	}

	totalPaid := 0.0
	for entry := range schedule {
		totalPaid += entry.Principal + entry.Interest
	}

	breakdown := domain.CostBreakdown{
		PrincipalAndInterest: payment,
		PropertyTax:          input.PropertyTax / 12,
		Insurance:            input.Insurance / 12,
		HOA:                  input.HOA,
	}
	monthlyOther := breakdown.PropertyTax + breakdown.Insurance + breakdown.HOA
	periods := float64(terms.Periods())

	result := domain.MortgageResult{
		LoanAmount:          terms.Principal,
		PeriodicPayment:     payment,
		MonthlyOtherCosts:   monthlyOther,
		TotalMonthlyPayment: payment + monthlyOther,
		TotalInterest:       totalPaid - terms.Principal,
		TotalCost:           totalPaid + monthlyOther*periods,
		Breakdown:           breakdown,
	}

	switch mode {
	case ScheduleMonthly:
		result.Schedule = slices.Collect(schedule)
	case ScheduleYearly:
		result.YearlySchedule = SummarizeByYear(schedule)
	}

	return result, nil
}
