package service

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property-calc/domain"
)

func TestComputePeriodicPayment_Standard(t *testing.T) {
	payment, err := ComputePeriodicPayment(domain.LoanTerms{
		Principal:         360000,
		AnnualRatePercent: 6.5,
		TermYears:         30,
	})

	require.NoError(t, err)
	assert.InDelta(t, 2275.44, payment, 0.01)
}

func TestComputePeriodicPayment_ZeroInterest(t *testing.T) {
	payment, err := ComputePeriodicPayment(domain.LoanTerms{
		Principal:         120000,
		AnnualRatePercent: 0,
		TermYears:         30,
	})

	require.NoError(t, err)
	assert.Equal(t, 120000.0/360, payment)
	assert.InDelta(t, 333.33, payment, 0.005)
}

func TestComputePeriodicPayment_InvalidInput(t *testing.T) {
	cases := map[string]domain.LoanTerms{
		"negative principal": {Principal: -1, AnnualRatePercent: 5, TermYears: 30},
		"negative rate":      {Principal: 1000, AnnualRatePercent: -0.5, TermYears: 30},
		"zero term":          {Principal: 1000, AnnualRatePercent: 5, TermYears: 0},
		"term too long":      {Principal: 1000, AnnualRatePercent: 5, TermYears: MaxTermYears + 1},
		"NaN principal":      {Principal: math.NaN(), AnnualRatePercent: 5, TermYears: 30},
		"infinite rate":      {Principal: 1000, AnnualRatePercent: math.Inf(1), TermYears: 30},
	}

	for name, terms := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ComputePeriodicPayment(terms)
			assert.True(t, errors.Is(err, ErrInvalidInput), "expected ErrInvalidInput, got %v", err)

			_, err = BuildAmortizationSchedule(terms)
			assert.True(t, errors.Is(err, ErrInvalidInput), "expected ErrInvalidInput, got %v", err)
		})
	}
}

func TestBuildAmortizationSchedule_Properties(t *testing.T) {
	cases := []domain.LoanTerms{
		{Principal: 360000, AnnualRatePercent: 6.5, TermYears: 30},
		{Principal: 120000, AnnualRatePercent: 0, TermYears: 30},
		{Principal: 250000, AnnualRatePercent: 3.25, TermYears: 15},
		{Principal: 5000, AnnualRatePercent: 18, TermYears: 1},
		{Principal: 0, AnnualRatePercent: 7, TermYears: 10},
	}

	for _, terms := range cases {
		seq, err := BuildAmortizationSchedule(terms)
		require.NoError(t, err)
		payment, err := ComputePeriodicPayment(terms)
		require.NoError(t, err)

		schedule := slices.Collect(seq)
		n := terms.Periods()
		require.Len(t, schedule, n)

		totalPrincipal := 0.0
		previous := terms.Principal
		for i, entry := range schedule {
			assert.Equal(t, i+1, entry.Period)
			assert.GreaterOrEqual(t, entry.RemainingBalance, 0.0)
			assert.LessOrEqual(t, entry.RemainingBalance, previous)
			if i < n-1 {
				assert.InDelta(t, payment, entry.Principal+entry.Interest, 1e-6)
			}
			totalPrincipal += entry.Principal
			previous = entry.RemainingBalance
		}

		assert.InDelta(t, terms.Principal, totalPrincipal, 0.01*float64(n))
		assert.Equal(t, 0.0, schedule[n-1].RemainingBalance)
	}
}

func TestBuildAmortizationSchedule_FirstPeriod(t *testing.T) {
	seq, err := BuildAmortizationSchedule(domain.LoanTerms{
		Principal:         100000,
		AnnualRatePercent: 5,
		TermYears:         30,
	})
	require.NoError(t, err)

	for entry := range seq {
		assert.InDelta(t, 416.67, entry.Interest, 0.01)
		assert.InDelta(t, 536.82-416.67, entry.Principal, 0.01)
		break
	}
}

func TestBuildAmortizationSchedule_Restartable(t *testing.T) {
	seq, err := BuildAmortizationSchedule(domain.LoanTerms{
		Principal:         200000,
		AnnualRatePercent: 4.75,
		TermYears:         20,
	})
	require.NoError(t, err)

	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Equal(t, first, second)
}

func TestSummarizeByYear(t *testing.T) {
	terms := domain.LoanTerms{Principal: 360000, AnnualRatePercent: 6.5, TermYears: 30}
	seq, err := BuildAmortizationSchedule(terms)
	require.NoError(t, err)

	years := SummarizeByYear(seq)
	require.Len(t, years, 30)

	totalPrincipal := 0.0
	for i, y := range years {
		assert.Equal(t, i+1, y.Year)
		totalPrincipal += y.Principal
	}
	assert.InDelta(t, terms.Principal, totalPrincipal, 0.01)
	assert.Equal(t, 0.0, years[29].EndingBalance)
	assert.Greater(t, years[0].Interest, years[0].Principal)
}

func TestComputePeriodicPayment_TinyRates(t *testing.T) {
	linear := 120000.0 / 360

	for _, rate := range []float64{1e-15, 1e-12, 1e-9, 1e-6} {
		terms := domain.LoanTerms{Principal: 120000, AnnualRatePercent: rate, TermYears: 30}

		payment, err := ComputePeriodicPayment(terms)
		require.NoError(t, err)
		assert.False(t, math.IsInf(payment, 0) || math.IsNaN(payment), "rate %g gave %v", rate, payment)
		assert.InDelta(t, linear, payment, 0.01, "rate %g", rate)
		assert.GreaterOrEqual(t, payment, linear-1e-9, "rate %g", rate)

		seq, err := BuildAmortizationSchedule(terms)
		require.NoError(t, err)
		schedule := slices.Collect(seq)
		assert.InDelta(t, linear, schedule[1].Principal+schedule[1].Interest, 0.01, "rate %g", rate)
		assert.Equal(t, 0.0, schedule[len(schedule)-1].RemainingBalance)
	}
}
