package service

import (
	"math"

	"github.com/diillson/segment-report-go/internal/domain/entity"
)

// Aggregator reduz um RecordSet ao resumo de métricas.
type Aggregator struct {
	classifier *Classifier
}

// NewAggregator cria um agregador com o classificador informado.
func NewAggregator(classifier *Classifier) *Aggregator {
	if classifier == nil {
		classifier = DefaultClassifier()
	}
	return &Aggregator{classifier: classifier}
}

// Compute calcula totais e o detalhamento por categoria. É uma função pura do
// RecordSet: não guarda estado entre chamadas.
func (a *Aggregator) Compute(rs entity.RecordSet) entity.MetricsSummary {
	var (
		totalRevenue float64
		qty          [3]int
		revenue      [3]float64
	)

	for _, row := range rs {
		value := finite(row.NetValue)
		totalRevenue += value

		cat := a.classifier.Classify(row.PaymentPlan)
		qty[cat]++
		revenue[cat] += value
	}

	totalOrders := len(rs)
	breakdown := func(cat entity.Category) entity.CategoryMetrics {
		return entity.CategoryMetrics{
			Qty:     qty[cat],
			Revenue: revenue[cat],
			PctQty:  ratio(float64(qty[cat]), float64(totalOrders)),
			PctRev:  ratio(revenue[cat], totalRevenue),
		}
	}

	return entity.MetricsSummary{
		TotalOrders:  totalOrders,
		TotalRevenue: totalRevenue,
		Boleto:       breakdown(entity.CategoryBoleto),
		Card:         breakdown(entity.CategoryCard),
		Other:        breakdown(entity.CategoryOther),
	}
}

// Compute usa o classificador padrão.
func Compute(rs entity.RecordSet) entity.MetricsSummary {
	return NewAggregator(nil).Compute(rs)
}

func ratio(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return part / total
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
