package service

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/diillson/segment-report-go/internal/shared/types"
)

func TestChartFilename(t *testing.T) {
	period := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	if got := ChartFilename(period); got != "payment_methods_2024-03.png" {
		t.Errorf("ChartFilename = %q", got)
	}
	want := filepath.Join("out", "graficos", "payment_methods_2024-03.png")
	if got := ChartPath(filepath.Join("out", "graficos"), period); got != want {
		t.Errorf("ChartPath = %q, want %q", got, want)
	}
}

func TestDocumentFilename(t *testing.T) {
	tests := []struct {
		tier, source, want string
	}{
		{"ouro", "/data/20240315_vendas.xlsx", "relatorio_ouro_20240315_vendas.pdf"},
		{"prata", "pedidos.csv", "relatorio_prata_pedidos.pdf"},
		{"bronze", "arquivo.com.ponto.xls", "relatorio_bronze_arquivo.com.ponto.pdf"},
	}
	for _, tt := range tests {
		if got := DocumentFilename(tt.tier, tt.source); got != tt.want {
			t.Errorf("DocumentFilename(%q, %q) = %q, want %q", tt.tier, tt.source, got, tt.want)
		}
	}
}

func TestReportDateFromOutput(t *testing.T) {
	now := time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		path string
		want string
	}{
		{"/tmp/20240315.pdf", "15/03/2024"},
		{"20231201_relatorio.pdf", "01/12/2023"},
		{"badname.pdf", "02/01/2025"},
		{"a.pdf", "02/01/2025"},
		{"relatorio_ouro_20240315.pdf", "02/01/2025"},
	}
	for _, tt := range tests {
		if got := FormatReportDate(ReportDateFromOutput(tt.path, now)); got != tt.want {
			t.Errorf("ReportDateFromOutput(%q) = %s, want %s", tt.path, got, tt.want)
		}
	}
}

func TestReportDateFromSource(t *testing.T) {
	now := time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		path string
		want string
	}{
		{"data/vendas_20240315.xlsx", "15/03/2024"},
		{"data/20240229-pedidos.csv", "29/02/2024"},
		{"data/vendas.xlsx", "02/01/2025"},
		{"data/99999999.xlsx", "02/01/2025"},
	}
	for _, tt := range tests {
		if got := FormatReportDate(ReportDateFromSource(tt.path, now)); got != tt.want {
			t.Errorf("ReportDateFromSource(%q) = %s, want %s", tt.path, got, tt.want)
		}
	}
}

func TestParseReportDate(t *testing.T) {
	for _, in := range []string{"2024-03-15", "20240315", "15/03/2024", " 2024-03-15 "} {
		got, err := ParseReportDate(in)
		if err != nil {
			t.Errorf("ParseReportDate(%q): %v", in, err)
			continue
		}
		if FormatReportDate(got) != "15/03/2024" {
			t.Errorf("ParseReportDate(%q) = %s", in, got)
		}
	}

	if _, err := ParseReportDate("março"); !errors.Is(err, types.ErrInvalidReportDate) {
		t.Errorf("expected ErrInvalidReportDate, got %v", err)
	}
}
