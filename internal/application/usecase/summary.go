package usecase

import (
	"context"
	"path/filepath"

	"github.com/diillson/segment-report-go/internal/domain/entity"
	"github.com/diillson/segment-report-go/internal/domain/service"
	"github.com/diillson/segment-report-go/internal/shared/types"
)

// displaySummary mostra a tabela de relatórios gerados e as barras de receita por modalidade.
func (uc *ReportUseCase) displaySummary(reports []entity.TierReport) {
	table := uc.console.CreateTable()
	table.AddColumn("Arquivo")
	table.AddColumn("Segmento")
	table.AddColumn("Pedidos")
	table.AddColumn("Receita Total")
	table.AddColumn("Boleto")
	table.AddColumn("Cartão")
	table.AddColumn("Outras")
	table.AddColumn("PDF")

	var totals [3]float64
	for _, rep := range reports {
		m := rep.Metrics
		table.AddRow(
			filepath.Base(rep.SourceFile),
			service.CapitalizeTier(rep.Tier),
			m.TotalOrders,
			service.FormatCurrency(m.TotalRevenue),
			service.FormatPercent(m.Boleto.PctRev),
			service.FormatPercent(m.Card.PctRev),
			service.FormatPercent(m.Other.PctRev),
			filepath.Base(rep.DocumentPath),
		)
		for _, cat := range entity.Categories {
			totals[cat] += m.ByCategory(cat).Revenue
		}
	}
	uc.console.Print(table.Render())

	bars := make([]types.RevenueBar, 0, len(entity.Categories))
	for _, cat := range entity.Categories {
		bars = append(bars, types.RevenueBar{Label: cat.Label(), Revenue: totals[cat]})
	}
	uc.console.DisplayRevenueBars("Receita por Modalidade", bars)
}

// exportSummary grava o resumo da execução nos formatos pedidos.
func (uc *ReportUseCase) exportSummary(settings entity.Settings, reports []entity.TierReport) {
	if settings.ReportName == "" {
		return
	}

	for _, reportType := range settings.ReportTypes {
		var (
			path string
			err  error
		)
		switch reportType {
		case "csv":
			path, err = uc.exportRepo.ExportSummaryToCSV(reports, settings.ReportName, settings.OutputDir)
		case "json":
			path, err = uc.exportRepo.ExportSummaryToJSON(reports, settings.ReportName, settings.OutputDir)
		case "xlsx":
			path, err = uc.exportRepo.ExportSummaryToXLSX(reports, settings.ReportName, settings.OutputDir)
		default:
			uc.console.LogWarning("%s: %s", types.ErrUnknownReportType, reportType)
			continue
		}

		if err != nil {
			uc.console.LogError("Failed to export summary to %s: %s", reportType, err)
		} else {
			uc.console.LogSuccess("Successfully exported summary to %s: %s", reportType, path)
		}
	}
}

// publishArtifacts envia PDFs e gráficos para o S3, se configurado.
func (uc *ReportUseCase) publishArtifacts(ctx context.Context, target entity.PublishTarget, reports []entity.TierReport) {
	if !target.Enabled() || uc.publisher == nil {
		return
	}

	if accountID, err := uc.publisher.GetAccountID(ctx, target.Profile); err != nil {
		uc.console.LogWarning("Could not resolve AWS account: %s", err)
	} else {
		uc.console.LogInfo("Publishing artifacts to s3://%s using account %s", target.Bucket, accountID)
	}

	status := uc.console.Status("Publicando artefatos no S3...")
	uploaded, err := uc.publisher.Publish(ctx, target, ArtifactPaths(reports))
	status.Stop()
	for _, uri := range uploaded {
		uc.console.LogSuccess("Uploaded %s", uri)
	}
	if err != nil {
		uc.console.LogError("Failed to publish artifacts: %s", err)
	}
}

// ArtifactPaths lista PDFs e gráficos gerados, sem repetir o gráfico de um mesmo período.
func ArtifactPaths(reports []entity.TierReport) []string {
	seen := make(map[string]bool)
	var paths []string
	add := func(p string) {
		if p == "" || seen[p] {
			return
		}
		seen[p] = true
		paths = append(paths, p)
	}
	for _, rep := range reports {
		add(rep.DocumentPath)
		add(rep.ChartPath)
	}
	return paths
}
