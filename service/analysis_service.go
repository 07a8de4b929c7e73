package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/shopspring/decimal"

	"property-calc/domain"
	"property-calc/repository"
)

const (
	DisabledAnalysisMessage    = "AI Analysis is currently disabled. Please add a valid API_KEY to your environment variables to unlock professional deal insights."
	UnavailableAnalysisMessage = "Failed to generate analysis. Please try again later."
	EmptyAnalysisMessage       = "Unable to generate analysis at this time."

	defaultAnalysisTimeout = 30 * time.Second
	defaultAnalysisTTL     = 24 * time.Hour
)

// AnalysisService forwards a snapshot of a computed scenario to a text
// generation provider. A nil provider means the feature is switched off.
type AnalysisService struct {
	provider Provider
	cache    repository.CacheRepository
	ttl      time.Duration
	timeout  time.Duration
}

type AnalysisOption func(*AnalysisService)

func WithAnalysisTTL(ttl time.Duration) AnalysisOption {
	return func(s *AnalysisService) { s.ttl = ttl }
}

func WithAnalysisTimeout(timeout time.Duration) AnalysisOption {
	return func(s *AnalysisService) { s.timeout = timeout }
}

// NewAnalysisService creates an AnalysisService. provider and cache may be nil.
func NewAnalysisService(
	provider Provider,
	cache repository.CacheRepository,
	opts ...AnalysisOption,
) *AnalysisService {
	s := &AnalysisService{
		provider: provider,
		cache:    cache,
		ttl:      defaultAnalysisTTL,
		timeout:  defaultAnalysisTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *AnalysisService) Enabled() bool {
	return s.provider != nil
}

// Analyze never returns an error: every failure maps to a fallback message.
func (s *AnalysisService) Analyze(
	ctx context.Context,
	kind domain.DealKind,
	inputs any,
	results any,
) domain.DealAnalysis {
	analysis := domain.DealAnalysis{Kind: kind}

	if !s.Enabled() {
		analysis.Status = domain.AnalysisDisabled
		analysis.Text = DisabledAnalysisMessage
		return analysis
	}

	snapshot, err := BuildSnapshot(inputs, results)
	if err != nil {
		log.Printf("Error building %s snapshot: %v", kind, err)
		analysis.Status = domain.AnalysisUnavailable
		analysis.Text = UnavailableAnalysisMessage
		return analysis
	}

	key := cacheKey(s.provider.Name(), kind, snapshot)
	if s.cache != nil {
		if text, ok := s.cache.Get(ctx, key); ok {
			analysis.Status = domain.AnalysisOK
			analysis.Text = text
			analysis.Cached = true
			return analysis
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.provider.Generate(callCtx, buildDealPrompt(kind, snapshot, results))
	if err != nil {
		log.Printf("Error calling %s for %s analysis: %v", s.provider.Name(), kind, err)
		analysis.Status = domain.AnalysisUnavailable
		analysis.Text = UnavailableAnalysisMessage
		return analysis
	}
	if strings.TrimSpace(text) == "" {
		analysis.Status = domain.AnalysisUnavailable
		analysis.Text = EmptyAnalysisMessage
		return analysis
	}

	// Guardar en caché (no crítico si falla)
	if s.cache != nil {
		if err := s.cache.Set(ctx, key, text, s.ttl); err != nil {
			log.Printf("Warning: failed to cache %s analysis: %v", kind, err)
		}
	}

	analysis.Status = domain.AnalysisOK
	analysis.Text = text
	return analysis
}

// BuildSnapshot flattens inputs into a JSON object and adds the results
// under the "results" key.
func BuildSnapshot(inputs any, results any) ([]byte, error) {
	raw, err := json.Marshal(inputs)
	if err != nil {
		return nil, err
	}
	fields := map[string]any{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("inputs must encode as a JSON object: %w", err)
	}
	fields["results"] = results
	return json.MarshalIndent(fields, "", "  ")
}

// cacheKey scopes entries by provider and model so switching either never
// serves text generated by the previous one.
func cacheKey(provider string, kind domain.DealKind, snapshot []byte) string {
	return fmt.Sprintf("analysis:%s:%s:%016x", provider, kind, xxhash.Sum64(snapshot))
}

func buildDealPrompt(kind domain.DealKind, snapshot []byte, results any) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Analyze this real estate %s scenario:\n%s\n\n", kind, snapshot)

	if headline := headlineFigures(results); headline != "" {
		b.WriteString("Headline figures:\n")
		b.WriteString(headline)
		b.WriteString("\n")
	}

	b.WriteString(`Provide a professional summary including:
1. A one-sentence verdict and overall deal quality (High, Medium, Low risk).
2. Key financial strengths.
3. Key red flags or stress test warnings.
4. One actionable piece of advice for the buyer/investor.

Keep the response concise and formatted with clear markdown headings.`)
	return b.String()
}

func headlineFigures(results any) string {
	var lines []string
	add := func(label string, v float64) {
		lines = append(lines, fmt.Sprintf("- %s: $%s", label, cents(v)))
	}
	addRatio := func(label string, r domain.Ratio) {
		if v, err := r.Float(); err == nil {
			lines = append(lines, fmt.Sprintf("- %s: %s%%", label, cents(v)))
		} else {
			lines = append(lines, fmt.Sprintf("- %s: undefined", label))
		}
	}

	switch r := results.(type) {
	case domain.MortgageResult:
		add("Monthly payment (P&I)", r.PeriodicPayment)
		add("Total monthly payment", r.TotalMonthlyPayment)
		add("Total interest", r.TotalInterest)
		add("Total cost", r.TotalCost)
	case domain.InvestmentResult:
		add("Monthly cash flow", r.MonthlyCashFlow)
		add("Net operating income", r.NetOperatingIncome)
		addRatio("Cap rate", r.CapRatePercent)
		addRatio("Cash-on-cash return", r.CashOnCashPercent)
	}
	return strings.Join(lines, "\n")
}

func cents(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
