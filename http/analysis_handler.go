package http

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"property-calc/domain"
	"property-calc/service"
)

type dealAnalysisRequest struct {
	Kind   domain.DealKind `json:"kind"`
	Inputs json.RawMessage `json:"inputs"`
}

type AnalysisHandler struct {
	analysis   *service.AnalysisService
	mortgage   *service.MortgageService
	investment *service.InvestmentService
}

func NewAnalysisHandler(
	analysis *service.AnalysisService,
	mortgage *service.MortgageService,
	investment *service.InvestmentService,
) *AnalysisHandler {
	return &AnalysisHandler{
		analysis:   analysis,
		mortgage:   mortgage,
		investment: investment,
	}
}

// AnalyzeDeal recomputes the scenario from the submitted inputs so the
// provider only ever sees numbers produced by the engine.
func (h *AnalysisHandler) AnalyzeDeal(w http.ResponseWriter, r *http.Request) {
	var req dealAnalysisRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !req.Kind.Valid() {
		writeError(w, fmt.Errorf("%w: unknown deal kind %q", service.ErrInvalidInput, req.Kind))
		return
	}

	var (
		inputs  any
		results any
	)
	switch req.Kind {
	case domain.DealMortgage:
		var in domain.MortgageInputs
		if err := json.Unmarshal(req.Inputs, &in); err != nil {
			log.Printf("Error decoding mortgage inputs: %v", err)
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		res, err := h.mortgage.ProjectWithSchedule(in, service.ScheduleNone)
		if err != nil {
			writeError(w, err)
			return
		}
		inputs, results = in, res
	case domain.DealInvestment:
		var in domain.InvestmentInputs
		if err := json.Unmarshal(req.Inputs, &in); err != nil {
			log.Printf("Error decoding investment inputs: %v", err)
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		res, err := h.investment.Analyze(in)
		if err != nil {
			writeError(w, err)
			return
		}
		inputs, results = in, res
	}

	writeJSON(w, http.StatusOK, h.analysis.Analyze(r.Context(), req.Kind, inputs, results))
}
