package repository

import (
	"time"

	"github.com/diillson/segment-report-go/internal/domain/entity"
)

// ChartRepository renders the stacked-bar chart of a report model.
type ChartRepository interface {
	RenderChart(model entity.ReportModel, outputDir string, period time.Time) (string, error)
}
