package service

const (
	MaxPropertyPrice = 1_000_000_000.0 // 1 billón
	MaxInterestRate  = 100.0           // 100% anual
	MaxTermYears     = 50
	MinTermYears     = 1
	MaxMonthlyRent   = 10_000_000.0
	MaxAnnualCost    = 100_000_000.0
	MaxHorizonYears  = 50

	// Límites para tasas de crecimiento en el comparador alquilar vs comprar
	MinGrowthPercent = -50.0
	MaxGrowthPercent = 100.0

	// Tolerancia de redondeo para el saldo final del calendario
	BalanceTolerance = 1e-6
)
