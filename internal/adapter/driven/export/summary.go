package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/diillson/segment-report-go/internal/domain/entity"
	"github.com/diillson/segment-report-go/internal/domain/service"
	"github.com/xuri/excelize/v2"
)

const resultsSheet = "RESULTADOS"

// Colunas da aba RESULTADOS, indexada por PAPEL (o tier).
var summaryHeaders = []string{
	"PAPEL",
	"QT Total de Pedidos", "Receita Total",
	"Receita Boletos", "QT Boletos", "% QT Boleto", "% Receitas Boleto",
	"Receita Cartão", "QT Cartão", "% QT Cartão", "% Receitas Cartão",
	"Receita Outras", "QT Outras",
	"Arquivo", "Data",
}

// --- Exportação do resumo da execução ---

func (r *ExportRepositoryImpl) ExportSummaryToCSV(reports []entity.TierReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating summary CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	writer.Comma = ';'

	if err := writer.Write(summaryHeaders); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, rep := range reports {
		m := rep.Metrics
		record := []string{
			rep.Tier,
			strconv.Itoa(m.TotalOrders),
			formatFloat(m.TotalRevenue),
			formatFloat(m.Boleto.Revenue),
			strconv.Itoa(m.Boleto.Qty),
			service.FormatPercent(m.Boleto.PctQty),
			service.FormatPercent(m.Boleto.PctRev),
			formatFloat(m.Card.Revenue),
			strconv.Itoa(m.Card.Qty),
			service.FormatPercent(m.Card.PctQty),
			service.FormatPercent(m.Card.PctRev),
			formatFloat(m.Other.Revenue),
			strconv.Itoa(m.Other.Qty),
			filepath.Base(rep.SourceFile),
			service.FormatReportDate(rep.ReportDate),
		}
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("error writing CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("error flushing CSV file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportSummaryToJSON(reports []entity.TierReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating summary JSON file: %w", err)
	}
	defer file.Close()

	if reports == nil {
		reports = []entity.TierReport{}
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(reports); err != nil {
		return "", fmt.Errorf("error encoding summary JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// ExportSummaryToXLSX grava a aba RESULTADOS com uma linha por (arquivo, tier).
// Percentuais ficam como frações numéricas para permitir fórmulas na planilha.
func (r *ExportRepositoryImpl) ExportSummaryToXLSX(reports []entity.TierReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "xlsx")
	if err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), resultsSheet); err != nil {
		return "", fmt.Errorf("error naming results sheet: %w", err)
	}

	header := make([]interface{}, len(summaryHeaders))
	for i, h := range summaryHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(resultsSheet, "A1", &header); err != nil {
		return "", fmt.Errorf("error writing results header: %w", err)
	}

	for i, rep := range reports {
		m := rep.Metrics
		row := []interface{}{
			rep.Tier,
			m.TotalOrders, m.TotalRevenue,
			m.Boleto.Revenue, m.Boleto.Qty, m.Boleto.PctQty, m.Boleto.PctRev,
			m.Card.Revenue, m.Card.Qty, m.Card.PctQty, m.Card.PctRev,
			m.Other.Revenue, m.Other.Qty,
			filepath.Base(rep.SourceFile),
			service.FormatReportDate(rep.ReportDate),
		}
		cellName, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", err
		}
		if err := f.SetSheetRow(resultsSheet, cellName, &row); err != nil {
			return "", fmt.Errorf("error writing results row: %w", err)
		}
	}

	if err := f.SaveAs(outputFilename); err != nil {
		return "", fmt.Errorf("error writing XLSX file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
