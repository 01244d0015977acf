package repository

import (
	"time"

	"github.com/diillson/segment-report-go/internal/domain/entity"
)

type ExportRepository interface {
	// RenderDocument writes the PDF report. A nil reportDate is derived from the
	// output file name, falling back to the current date.
	RenderDocument(model entity.ReportModel, chartDir string, outputPath string, reportDate *time.Time) error

	ExportSummaryToCSV(reports []entity.TierReport, filename string, outputDir string) (string, error)
	ExportSummaryToJSON(reports []entity.TierReport, filename string, outputDir string) (string, error)
	ExportSummaryToXLSX(reports []entity.TierReport, filename string, outputDir string) (string, error)
}
