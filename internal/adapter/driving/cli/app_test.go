package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/diillson/segment-report-go/internal/adapter/driven/aws"
	"github.com/diillson/segment-report-go/internal/adapter/driven/chart"
	"github.com/diillson/segment-report-go/internal/adapter/driven/config"
	"github.com/diillson/segment-report-go/internal/adapter/driven/export"
	"github.com/diillson/segment-report-go/internal/adapter/driven/spreadsheet"
	"github.com/diillson/segment-report-go/internal/application/usecase"
	"github.com/diillson/segment-report-go/pkg/console"
	"github.com/xuri/excelize/v2"
)

func newTestApp() *CLIApp {
	app := NewCLIApp("test")
	app.SetReportUseCase(usecase.NewReportUseCase(
		spreadsheet.NewSpreadsheetRepository(),
		chart.NewChartRepository(),
		export.NewExportRepository(),
		config.NewConfigRepository(),
		aws.NewAWSRepository(),
		console.NewConsole(),
	))
	return app
}

func TestParseArgs(t *testing.T) {
	app := newTestApp()
	err := app.rootCmd.ParseFlags([]string{
		"-i", "planilhas",
		"--tiers", "ouro,prata",
		"-y", "csv", "-y", "json",
		"--report-date", "2024-03-15",
		"--no-banner",
	})
	if err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}

	args, err := app.parseArgs()
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	if !filepath.IsAbs(args.DataDir) || filepath.Base(args.DataDir) != "planilhas" {
		t.Errorf("DataDir = %q, want absolute path", args.DataDir)
	}
	if args.Dir != "" {
		t.Errorf("unset dir must stay empty, got %q", args.Dir)
	}
	if len(args.Tiers) != 2 || args.Tiers[1] != "prata" {
		t.Errorf("Tiers = %v", args.Tiers)
	}
	if len(args.ReportType) != 2 {
		t.Errorf("ReportType = %v", args.ReportType)
	}
	if args.ReportDate != "2024-03-15" || !args.NoBanner {
		t.Errorf("args = %+v", args)
	}
}

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	dataDir := filepath.Join(dir, "data")
	outDir := filepath.Join(dir, "output")
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		t.Fatal(err)
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", "ouro"); err != nil {
		t.Fatal(err)
	}
	rows := [][]interface{}{
		{"segmentacao", "ValorLiquido", "PlanoPagamento"},
		{"ouro", 100.0, "Boleto Bancário"},
		{"ouro", 50.0, "Cartão de Crédito"},
		{"ouro", 25.0, "PIX"},
	}
	for i, row := range rows {
		cellRef, _ := excelize.CoordinatesToCellName(1, i+1)
		r := row
		if err := f.SetSheetRow("ouro", cellRef, &r); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.SaveAs(filepath.Join(dataDir, "vendas_20240315.xlsx")); err != nil {
		t.Fatal(err)
	}
	f.Close()

	app := newTestApp()
	app.SetArgs([]string{
		"--data-dir", dataDir,
		"--dir", outDir,
		"--tiers", "ouro,prata",
		"--report-type", "csv",
		"--report-name", "resumo",
		"--log-format", "json",
	})
	if err := app.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	pdf, err := os.ReadFile(filepath.Join(outDir, "relatorio_ouro_vendas_20240315.pdf"))
	if err != nil {
		t.Fatalf("PDF not generated: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Error("output is not a PDF")
	}
	if _, err := os.Stat(filepath.Join(outDir, "graficos", "payment_methods_2024-03.png")); err != nil {
		t.Errorf("chart not generated: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outDir, "relatorio_prata_vendas_20240315.pdf")); !os.IsNotExist(err) {
		t.Error("no PDF expected for a tier without sheet")
	}
	if _, err := os.Stat(filepath.Join(outDir, "resumo.csv")); err != nil {
		t.Errorf("summary not generated: %v", err)
	}
}
