package http

import (
	"fmt"
	"net/http"

	"property-calc/domain"
	"property-calc/service"
)

type CalculatorHandler struct {
	mortgage   *service.MortgageService
	investment *service.InvestmentService
	rentVsBuy  *service.RentVsBuyService
}

func NewCalculatorHandler(
	mortgage *service.MortgageService,
	investment *service.InvestmentService,
	rentVsBuy *service.RentVsBuyService,
) *CalculatorHandler {
	return &CalculatorHandler{
		mortgage:   mortgage,
		investment: investment,
		rentVsBuy:  rentVsBuy,
	}
}

func parseScheduleMode(raw string) (service.ScheduleMode, error) {
	switch mode := service.ScheduleMode(raw); mode {
	case "":
		return service.ScheduleYearly, nil
	case service.ScheduleNone, service.ScheduleMonthly, service.ScheduleYearly:
		return mode, nil
	}
	return "", fmt.Errorf("%w: unknown schedule mode %q", service.ErrInvalidInput, raw)
}

// CalculateMortgage handles POST /mortgage/calculate?schedule=monthly|yearly|none.
func (h *CalculatorHandler) CalculateMortgage(w http.ResponseWriter, r *http.Request) {
	var input domain.MortgageInputs
	if !decodeJSON(w, r, &input) {
		return
	}

	mode, err := parseScheduleMode(r.URL.Query().Get("schedule"))
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := h.mortgage.ProjectWithSchedule(input, mode)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *CalculatorHandler) AnalyzeInvestment(w http.ResponseWriter, r *http.Request) {
	var input domain.InvestmentInputs
	if !decodeJSON(w, r, &input) {
		return
	}

	result, err := h.investment.Analyze(input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *CalculatorHandler) SimulateRentVsBuy(w http.ResponseWriter, r *http.Request) {
	var input domain.RentVsBuyInputs
	if !decodeJSON(w, r, &input) {
		return
	}

	result, err := h.rentVsBuy.Simulate(input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
