package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/diillson/segment-report-go/internal/domain/entity"
	"github.com/diillson/segment-report-go/internal/domain/repository"
	"github.com/diillson/segment-report-go/internal/domain/service"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct {
	now func() time.Time
}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{now: time.Now}
}

// NewExportRepositoryWithClock usa o relógio informado como data de fallback do relatório.
func NewExportRepositoryWithClock(now func() time.Time) repository.ExportRepository {
	return &ExportRepositoryImpl{now: now}
}

// --- Relatório em PDF ---

// RenderDocument monta os blocos do relatório e grava o PDF em outputPath.
// Sem data explícita, usa os 8 primeiros caracteres do nome do arquivo (AAAAMMDD)
// ou, se não forem uma data, a data atual.
func (r *ExportRepositoryImpl) RenderDocument(model entity.ReportModel, chartDir, outputPath string, reportDate *time.Time) error {
	date := service.ReportDateFromOutput(outputPath, r.now())
	if reportDate != nil {
		date = *reportDate
	}

	chartPath := service.ChartPath(chartDir, date)
	chart := service.ChartImage{Path: chartPath}
	if info, err := os.Stat(chartPath); err == nil && !info.IsDir() {
		chart.Exists = true
	}

	doc := service.BuildDocument(model, date, chart)

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("error creating output directory '%s': %w", filepath.Dir(outputPath), err)
	}
	if err := writePDF(doc, outputPath); err != nil {
		return fmt.Errorf("error writing PDF file: %w", err)
	}
	return nil
}

// --- Funções Auxiliares ---

// generateFilename monta o caminho do arquivo de resumo e garante que o diretório exista.
func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	filename := fmt.Sprintf("%s.%s", base, ext)
	return filepath.Join(dir, filename), nil
}
