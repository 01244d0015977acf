package entity

import "time"

// TierMetrics associa o nome de um tier ao seu resumo de métricas.
type TierMetrics struct {
	Tier    string         `json:"tier"`
	Metrics MetricsSummary `json:"metrics"`
}

// ReportModel é o mapeamento ordenado tier -> métricas consumido pelos renderizadores.
// O valor é imutável: os construtores copiam a entrada e os acessores devolvem cópias.
type ReportModel struct {
	entries []TierMetrics
}

// NewReportModel builds a model preserving the order of first appearance.
// A repeated tier keeps its original position and takes the later summary.
func NewReportModel(entries ...TierMetrics) ReportModel {
	out := make([]TierMetrics, 0, len(entries))
	index := make(map[string]int, len(entries))
	for _, e := range entries {
		if i, ok := index[e.Tier]; ok {
			out[i] = e
			continue
		}
		index[e.Tier] = len(out)
		out = append(out, e)
	}
	return ReportModel{entries: out}
}

// SingleTier builds the one-entry model used per (file, tier) invocation.
func SingleTier(tier string, summary MetricsSummary) ReportModel {
	return NewReportModel(TierMetrics{Tier: tier, Metrics: summary})
}

func (r ReportModel) Len() int {
	return len(r.entries)
}

// Tiers devolve os nomes dos tiers na ordem do modelo.
func (r ReportModel) Tiers() []string {
	tiers := make([]string, len(r.entries))
	for i, e := range r.entries {
		tiers[i] = e.Tier
	}
	return tiers
}

// Entries devolve uma cópia das entradas do modelo.
func (r ReportModel) Entries() []TierMetrics {
	out := make([]TierMetrics, len(r.entries))
	copy(out, r.entries)
	return out
}

// Get devolve o resumo de um tier.
func (r ReportModel) Get(tier string) (MetricsSummary, bool) {
	for _, e := range r.entries {
		if e.Tier == tier {
			return e.Metrics, true
		}
	}
	return MetricsSummary{}, false
}

// ChartSeries derives the parallel revenue sequences used by the stacked bar chart.
func (r ReportModel) ChartSeries() ChartSeries {
	n := len(r.entries)
	s := ChartSeries{
		Labels:     make([]string, n),
		Boleto:     make([]float64, n),
		Card:       make([]float64, n),
		Other:      make([]float64, n),
		BoletoCard: make([]float64, n),
	}
	for i, e := range r.entries {
		s.Labels[i] = e.Tier
		s.Boleto[i] = e.Metrics.Boleto.Revenue
		s.Card[i] = e.Metrics.Card.Revenue
		s.Other[i] = e.Metrics.Other.Revenue
		s.BoletoCard[i] = s.Boleto[i] + s.Card[i]
	}
	return s
}

// ChartSeries contém uma posição por tier, na ordem do modelo.
type ChartSeries struct {
	Labels     []string
	Boleto     []float64
	Card       []float64
	Other      []float64
	BoletoCard []float64
}

// MaxStack devolve a maior altura empilhada (boleto + cartão + outras).
func (s ChartSeries) MaxStack() float64 {
	maxValue := 0.0
	for i := range s.Labels {
		if v := s.BoletoCard[i] + s.Other[i]; v > maxValue {
			maxValue = v
		}
	}
	return maxValue
}

// TierReport registra os artefatos gerados para um par (arquivo, tier).
type TierReport struct {
	SourceFile   string         `json:"source_file"`
	Tier         string         `json:"tier"`
	ReportDate   time.Time      `json:"report_date"`
	Metrics      MetricsSummary `json:"metrics"`
	ChartPath    string         `json:"chart_path"`
	DocumentPath string         `json:"document_path"`
}
