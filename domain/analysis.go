package domain

type DealKind string

const (
	DealMortgage   DealKind = "mortgage"
	DealInvestment DealKind = "investment"
)

func (k DealKind) Valid() bool {
	return k == DealMortgage || k == DealInvestment
}

type AnalysisStatus string

const (
	AnalysisOK          AnalysisStatus = "ok"
	AnalysisDisabled    AnalysisStatus = "disabled"
	AnalysisUnavailable AnalysisStatus = "unavailable"
)

type DealAnalysis struct {
	Kind   DealKind       `json:"kind"`
	Status AnalysisStatus `json:"status"`
	Text   string         `json:"text"`
	Cached bool           `json:"cached,omitempty"`
}
