package service

import (
	"property-calc/domain"
)

type InvestmentService struct{}

// NewInvestmentService creates a new InvestmentService.
func NewInvestmentService() *InvestmentService {
	return &InvestmentService{}
}

// Analyze computes NOI, cash flow, cap rate and cash-on-cash return for a
// rental property. Repairs and management are charged on gross scheduled
// income, before vacancy, for conservative underwriting.
func (s *InvestmentService) Analyze(
	input domain.InvestmentInputs,
) (domain.InvestmentResult, error) {

	if err := validateInvestment(input); err != nil {
		return domain.InvestmentResult{}, err
	}

	downPayment := input.PurchasePrice * input.DownPaymentPercent / 100
	loan := input.PurchasePrice - downPayment

	monthlyDebt, err := ComputePeriodicPayment(domain.LoanTerms{
		Principal:         loan,
		AnnualRatePercent: input.InterestRate,
		TermYears:         input.LoanTermYears,
	})
	if err != nil {
		return domain.InvestmentResult{}, err
	}
	annualDebt := monthlyDebt * 12

	grossIncome := (input.MonthlyRent + input.OtherIncome) * 12
	vacancyLoss := grossIncome * input.VacancyRate / 100
	effectiveIncome := grossIncome - vacancyLoss

	operatingExpenses := input.PropertyTax +
		input.Insurance +
		grossIncome*input.Repairs/100 +
		grossIncome*input.Management/100

	noi := effectiveIncome - operatingExpenses
	annualCashFlow := noi - annualDebt

	result := domain.InvestmentResult{
		DownPayment:          downPayment,
		LoanAmount:           loan,
		MonthlyDebtService:   monthlyDebt,
		AnnualDebtService:    annualDebt,
		GrossAnnualIncome:    grossIncome,
		VacancyLoss:          vacancyLoss,
		EffectiveGrossIncome: effectiveIncome,
		OperatingExpenses:    operatingExpenses,
		NetOperatingIncome:   noi,
		AnnualCashFlow:       annualCashFlow,
		MonthlyCashFlow:      annualCashFlow / 12,
		TotalMonthlyExpenses: operatingExpenses/12 + monthlyDebt,
		CapRatePercent:       percentOf(noi, input.PurchasePrice),
		CashOnCashPercent:    percentOf(annualCashFlow, downPayment),
	}
	return result, nil
}

func percentOf(numerator, denominator float64) domain.Ratio {
	if denominator == 0 {
		return domain.UndefinedRatio()
	}
	return domain.DefinedRatio(100 * numerator / denominator)
}

func validateInvestment(input domain.InvestmentInputs) error {
	if err := checkMoney("purchase price", input.PurchasePrice, MaxPropertyPrice); err != nil {
		return err
	}
	if err := checkPercent("down payment", input.DownPaymentPercent, 0, 100); err != nil {
		return err
	}
	if err := checkMoney("monthly rent", input.MonthlyRent, MaxMonthlyRent); err != nil {
		return err
	}
	if err := checkMoney("other income", input.OtherIncome, MaxMonthlyRent); err != nil {
		return err
	}
	if err := checkPercent("vacancy rate", input.VacancyRate, 0, 100); err != nil {
		return err
	}
	if err := checkMoney("property tax", input.PropertyTax, MaxAnnualCost); err != nil {
		return err
	}
	if err := checkMoney("insurance", input.Insurance, MaxAnnualCost); err != nil {
		return err
	}
	if err := checkPercent("repairs", input.Repairs, 0, 100); err != nil {
		return err
	}
	return checkPercent("management", input.Management, 0, 100)
}
