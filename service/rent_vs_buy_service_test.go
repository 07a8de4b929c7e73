package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property-calc/domain"
)

func defaultRentVsBuyInputs() domain.RentVsBuyInputs {
	return domain.RentVsBuyInputs{
		MonthlyRent:         2200,
		RentIncreasePercent: 3,
		HomePrice:           450000,
		AppreciationPercent: 4,
		Years:               10,
	}
}

func TestSimulate_SeriesShape(t *testing.T) {
	for _, years := range []int{1, 10, 30, MaxHorizonYears} {
		input := defaultRentVsBuyInputs()
		input.Years = years

		result, err := NewRentVsBuyService().Simulate(input)
		require.NoError(t, err)
		require.Len(t, result.Series, years)

		for i, point := range result.Series {
			assert.Equal(t, i+1, point.Year)
			assert.LessOrEqual(t, point.NetRentPosition, 0.0)
		}
	}
}

func TestSimulate_FirstYear(t *testing.T) {
	result, err := NewRentVsBuyService().Simulate(defaultRentVsBuyInputs())
	require.NoError(t, err)

	first := result.Series[0]
	assert.InDelta(t, -26400.0, first.NetRentPosition, 1e-6)
	// 468000 - 348000 de saldo - (35010 de gastos + 90000 de enganche)
	assert.InDelta(t, -5010.0, first.NetBuyPosition, 1e-6)
}

func TestSimulate_RentCompounds(t *testing.T) {
	input := defaultRentVsBuyInputs()
	input.Years = 2

	result, err := NewRentVsBuyService().Simulate(input)
	require.NoError(t, err)

	assert.InDelta(t, -(26400.0 + 26400*1.03), result.Series[1].NetRentPosition, 1e-6)
}

func TestSimulate_ZeroGrowth(t *testing.T) {
	input := defaultRentVsBuyInputs()
	input.RentIncreasePercent = 0
	input.AppreciationPercent = 0

	result, err := NewRentVsBuyService().Simulate(input)
	require.NoError(t, err)

	for _, point := range result.Series {
		assert.InDelta(t, -26400.0*float64(point.Year), point.NetRentPosition, 1e-6)
	}
}

func TestSimulate_AppreciationMonotonic(t *testing.T) {
	service := NewRentVsBuyService()
	previous := 0.0

	for i, appreciation := range []float64{-5, 0, 1, 2.5, 4, 6, 10} {
		input := defaultRentVsBuyInputs()
		input.AppreciationPercent = appreciation

		result, err := service.Simulate(input)
		require.NoError(t, err)

		final := result.Series[len(result.Series)-1].NetBuyPosition
		if i > 0 {
			assert.GreaterOrEqual(t, final, previous, "appreciation %.1f%%", appreciation)
		}
		previous = final
	}
}

func TestSimulate_Deterministic(t *testing.T) {
	service := NewRentVsBuyService()

	first, err := service.Simulate(defaultRentVsBuyInputs())
	require.NoError(t, err)
	second, err := service.Simulate(defaultRentVsBuyInputs())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSimulate_VerdictAndBreakEven(t *testing.T) {
	input := defaultRentVsBuyInputs()
	input.MonthlyRent = 6000
	input.Years = 30

	result, err := NewRentVsBuyService().Simulate(input)
	require.NoError(t, err)

	assert.Equal(t, domain.VerdictBuying, result.Verdict)
	require.Greater(t, result.BreakEvenYear, 0)
	point := result.Series[result.BreakEvenYear-1]
	assert.Greater(t, point.NetBuyPosition, point.NetRentPosition)
}

func TestVerdict_TieFavorsRenting(t *testing.T) {
	series := []domain.WealthPoint{
		{Year: 1, NetRentPosition: -1000, NetBuyPosition: -1000},
	}
	assert.Equal(t, domain.VerdictRenting, Verdict(series))
	assert.Equal(t, 0, BreakEvenYear(series))
	assert.Equal(t, domain.VerdictRenting, Verdict(nil))

	series[0].NetBuyPosition = -999.99
	assert.Equal(t, domain.VerdictBuying, Verdict(series))
}

func TestSimulate_InvalidInput(t *testing.T) {
	cases := map[string]func(*domain.RentVsBuyInputs){
		"zero years":        func(in *domain.RentVsBuyInputs) { in.Years = 0 },
		"too many years":    func(in *domain.RentVsBuyInputs) { in.Years = MaxHorizonYears + 1 },
		"negative rent":     func(in *domain.RentVsBuyInputs) { in.MonthlyRent = -1 },
		"negative price":    func(in *domain.RentVsBuyInputs) { in.HomePrice = -1 },
		"appreciation -90%": func(in *domain.RentVsBuyInputs) { in.AppreciationPercent = -90 },
		"factor above one":  func(in *domain.RentVsBuyInputs) { in.DebtServiceFactor = domain.Ptr(2.0) },
		"zero loan term":    func(in *domain.RentVsBuyInputs) { in.LoanTermYears = domain.Ptr(0) },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			input := defaultRentVsBuyInputs()
			mutate(&input)

			_, err := NewRentVsBuyService().Simulate(input)
			assert.True(t, errors.Is(err, ErrInvalidInput), "expected ErrInvalidInput, got %v", err)
		})
	}
}

func TestSimulate_NoDebtServiceAfterLoanTerm(t *testing.T) {
	input := domain.RentVsBuyInputs{
		MonthlyRent:   2000,
		HomePrice:     400000,
		Years:         10,
		LoanTermYears: domain.Ptr(5),
	}

	result, err := NewRentVsBuyService().Simulate(input)
	require.NoError(t, err)

	// Sin apreciación: durante el plazo se paga deuda (21120) y mantenimiento (10000)
	during := result.Series[3].NetBuyPosition - result.Series[2].NetBuyPosition
	assert.InDelta(t, -31120.0+320000.0/5, during, 1e-6)

	// Tras el plazo sólo queda el mantenimiento
	for year := 6; year < 10; year++ {
		delta := result.Series[year].NetBuyPosition - result.Series[year-1].NetBuyPosition
		assert.InDelta(t, -10000.0, delta, 1e-6, "year %d", year+1)
	}
}

func TestSimulate_ExplicitZeroAssumptions(t *testing.T) {
	input := defaultRentVsBuyInputs()
	input.AppreciationPercent = 0
	input.DownPaymentPercent = domain.Ptr(100.0)
	input.MaintenancePercent = domain.Ptr(0.0)
	input.TaxInsurancePercent = domain.Ptr(0.0)
	input.DebtServiceFactor = domain.Ptr(0.0)

	result, err := NewRentVsBuyService().Simulate(input)
	require.NoError(t, err)

	// Compra al contado sin gastos: la posición neta se queda en cero
	for _, point := range result.Series {
		assert.InDelta(t, 0.0, point.NetBuyPosition, 1e-6, "year %d", point.Year)
	}
}

func TestAssumptions_Defaults(t *testing.T) {
	defaults := domain.RentVsBuyInputs{}.Assumptions()
	assert.Equal(t, domain.DefaultDownPaymentPercent, defaults.DownPaymentPercent)
	assert.Equal(t, domain.DefaultDebtServiceFactor, defaults.DebtServiceFactor)
	assert.Equal(t, domain.DefaultLoanTermYears, defaults.LoanTermYears)

	explicit := domain.RentVsBuyInputs{DownPaymentPercent: domain.Ptr(0.0)}.Assumptions()
	assert.Equal(t, 0.0, explicit.DownPaymentPercent)
}
