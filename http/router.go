package http

import (
	"net/http"
)

// NewRouter wires the calculator and analysis endpoints behind the rate limiter.
func NewRouter(
	calculator *CalculatorHandler,
	analysis *AnalysisHandler,
	limiter *RateLimiter,
) http.Handler {
	limited := func(h http.HandlerFunc) http.Handler {
		return RateLimitMiddleware(limiter, h)
	}

	mux := http.NewServeMux()
	mux.Handle("/mortgage/calculate", limited(calculator.CalculateMortgage))
	mux.Handle("/investment/analyze", limited(calculator.AnalyzeInvestment))
	mux.Handle("/rent-vs-buy/simulate", limited(calculator.SimulateRentVsBuy))
	mux.Handle("/analysis/deal", limited(analysis.AnalyzeDeal))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return RequestLogMiddleware(mux)
}
