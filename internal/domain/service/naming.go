package service

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/diillson/segment-report-go/internal/shared/types"
)

const (
	chartFilePrefix    = "payment_methods_"
	chartFileExt       = ".png"
	documentFilePrefix = "relatorio_"
	documentFileExt    = ".pdf"

	compactDateLayout = "20060102"
	isoDateLayout     = "2006-01-02"
	brDateLayout      = "02/01/2006"
	periodLayout      = "2006-01"
)

var eightDigits = regexp.MustCompile(`\d{8}`)

// ChartFilename devolve o nome do gráfico do período: payment_methods_<YYYY>-<MM>.png.
func ChartFilename(period time.Time) string {
	return chartFilePrefix + period.Format(periodLayout) + chartFileExt
}

// ChartPath é o caminho do gráfico do período dentro da pasta de gráficos.
func ChartPath(folder string, period time.Time) string {
	return filepath.Join(folder, ChartFilename(period))
}

// DocumentFilename devolve relatorio_<tier>_<basename sem extensão>.pdf.
func DocumentFilename(tier, sourcePath string) string {
	base := filepath.Base(sourcePath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return fmt.Sprintf("%s%s_%s%s", documentFilePrefix, tier, base, documentFileExt)
}

// ReportDateFromOutput parses the first 8 characters of the output file name as
// YYYYMMDD, falling back to now.
func ReportDateFromOutput(outputPath string, now time.Time) time.Time {
	name := filepath.Base(outputPath)
	if len(name) < 8 {
		return now
	}
	t, err := time.Parse(compactDateLayout, name[:8])
	if err != nil {
		return now
	}
	return t
}

// ReportDateFromSource usa a primeira sequência de 8 dígitos do nome do arquivo de entrada.
func ReportDateFromSource(sourcePath string, now time.Time) time.Time {
	m := eightDigits.FindString(filepath.Base(sourcePath))
	if m == "" {
		return now
	}
	t, err := time.Parse(compactDateLayout, m)
	if err != nil {
		return now
	}
	return t
}

// FormatReportDate formata a data como DD/MM/YYYY.
func FormatReportDate(t time.Time) string {
	return t.Format(brDateLayout)
}

// ParseReportDate accepts YYYY-MM-DD, YYYYMMDD or DD/MM/YYYY.
func ParseReportDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{isoDateLayout, compactDateLayout, brDateLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", types.ErrInvalidReportDate, s)
}
