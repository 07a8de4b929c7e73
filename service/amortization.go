package service

import (
	"iter"
	"math"

	"property-calc/domain"
)

// ValidateLoanTerms checks the terms accepted by the amortization engine.
func ValidateLoanTerms(terms domain.LoanTerms) error {
	if err := checkMoney("principal", terms.Principal, MaxPropertyPrice); err != nil {
		return err
	}
	if err := checkPercent("interest rate", terms.AnnualRatePercent, 0, MaxInterestRate); err != nil {
		return err
	}
	if terms.TermYears < MinTermYears {
		return invalid("term must be at least %d year", MinTermYears)
	}
	if terms.TermYears > MaxTermYears {
		return invalid("term exceeds the maximum of %d years", MaxTermYears)
	}
	return nil
}

// ComputePeriodicPayment returns the fixed monthly principal and interest payment.
func ComputePeriodicPayment(terms domain.LoanTerms) (float64, error) {
	if err := ValidateLoanTerms(terms); err != nil {
		return 0, err
	}
	return periodicPayment(terms), nil
}

func periodicPayment(terms domain.LoanTerms) float64 {
	n := float64(terms.Periods())

	// Sin interés la fórmula de anualidad divide por cero
	if terms.AnnualRatePercent == 0 {
		return terms.Principal / n
	}

	// (1+r)^n - 1 sin cancelación cuando r es muy pequeño
	r := terms.MonthlyRate()
	growthMinusOne := math.Expm1(n * math.Log1p(r))
	return terms.Principal * r * (growthMinusOne + 1) / growthMinusOne
}

// BuildAmortizationSchedule returns the month-by-month schedule as a lazy
// sequence. Every range over the sequence recomputes it from the terms.
func BuildAmortizationSchedule(terms domain.LoanTerms) (iter.Seq[domain.AmortizationEntry], error) {
	if err := ValidateLoanTerms(terms); err != nil {
		return nil, err
	}

	payment := periodicPayment(terms)
	rate := terms.MonthlyRate()
	periods := terms.Periods()

	return func(yield func(domain.AmortizationEntry) bool) {
		balance := terms.Principal
		for period := 1; period <= periods; period++ {
			interest := balance * rate
			principal := payment - interest
			if principal > balance || period == periods {
				// La última cuota liquida el saldo exacto
				principal = balance
			}
			balance -= principal
			if balance < BalanceTolerance {
				balance = 0
			}

			entry := domain.AmortizationEntry{
				Period:           period,
				Principal:        principal,
				Interest:         interest,
				RemainingBalance: balance,
			}
			if !yield(entry) {
				return
			}
		}
	}, nil
}

// SummarizeByYear groups a monthly schedule into calendar years of the loan.
func SummarizeByYear(schedule iter.Seq[domain.AmortizationEntry]) []domain.AmortizationYear {
	var years []domain.AmortizationYear
	for entry := range schedule {
		year := (entry.Period-1)/12 + 1
		if len(years) == 0 || years[len(years)-1].Year != year {
			years = append(years, domain.AmortizationYear{Year: year})
		}
		current := &years[len(years)-1]
		current.Principal += entry.Principal
		current.Interest += entry.Interest
		current.EndingBalance = entry.RemainingBalance
	}
	return years
}
