package service

import (
	"time"

	"github.com/diillson/segment-report-go/internal/domain/entity"
)

// Espaçamentos em pontos entre os blocos do relatório.
const (
	titleSpacing       = 6
	headerSpacing      = 4
	tableSpacing       = 8
	chartHeaderSpacing = 6

	chartAspectRatio = 0.4
	chartSectionName = "Gráficos"
)

// ChartImage aponta para o gráfico já renderizado. Exists indica se o arquivo
// estava presente no caminho esperado no momento da montagem.
type ChartImage struct {
	Path   string
	Exists bool
}

// BuildDocument monta a lista ordenada de blocos do relatório em PDF.
func BuildDocument(model entity.ReportModel, reportDate time.Time, chart ChartImage) entity.Document {
	geometry := entity.LandscapeA4()
	blocks := []entity.DocumentBlock{
		{Kind: entity.BlockTitle, Text: "Relatório - " + FormatReportDate(reportDate)},
		{Kind: entity.BlockSpacer, Height: titleSpacing},
	}

	for _, e := range model.Entries() {
		blocks = append(blocks,
			entity.DocumentBlock{Kind: entity.BlockHeader, Text: CapitalizeTier(e.Tier)},
			entity.DocumentBlock{Kind: entity.BlockSpacer, Height: headerSpacing},
			entity.DocumentBlock{Kind: entity.BlockTable, Rows: IndicatorRows(e.Metrics)},
			entity.DocumentBlock{Kind: entity.BlockSpacer, Height: tableSpacing},
		)
	}

	blocks = append(blocks, entity.DocumentBlock{Kind: entity.BlockPageBreak})

	if chart.Exists {
		width := geometry.UsableWidth()
		blocks = append(blocks,
			entity.DocumentBlock{Kind: entity.BlockHeader, Text: chartSectionName},
			entity.DocumentBlock{Kind: entity.BlockSpacer, Height: chartHeaderSpacing},
			entity.DocumentBlock{
				Kind:        entity.BlockImage,
				ImagePath:   chart.Path,
				Width:       width,
				ImageHeight: width * chartAspectRatio,
			},
		)
	}

	return entity.Document{Geometry: geometry, Blocks: blocks}
}

// IndicatorRows devolve a tabela fixa de 10 indicadores de um tier.
func IndicatorRows(m entity.MetricsSummary) []entity.TableRow {
	return []entity.TableRow{
		{Label: "Receita Total", Value: FormatCurrency(m.TotalRevenue)},
		{Label: "QT Total de Pedidos", Value: FormatCount(m.TotalOrders)},
		{Label: "Receita Total de Boletos", Value: FormatCurrency(m.Boleto.Revenue)},
		{Label: "QT de Boletos", Value: FormatCount(m.Boleto.Qty)},
		{Label: "% QT de Boletos / QT Total de Pedidos", Value: FormatPercent(m.Boleto.PctQty)},
		{Label: "Receita de Boletos / Total", Value: FormatPercent(m.Boleto.PctRev)},
		{Label: "Receita de Cartão", Value: FormatCurrency(m.Card.Revenue)},
		{Label: "QT de Cartão", Value: FormatCount(m.Card.Qty)},
		{Label: "% QT de Cartão / QT Total de Pedidos", Value: FormatPercent(m.Card.PctQty)},
		{Label: "Receita Cartão / Total", Value: FormatPercent(m.Card.PctRev)},
	}
}
