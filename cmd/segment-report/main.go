package main

import (
	"fmt"
	"os"

	"github.com/diillson/segment-report-go/internal/adapter/driven/aws"
	"github.com/diillson/segment-report-go/internal/adapter/driven/chart"
	"github.com/diillson/segment-report-go/internal/adapter/driven/config"
	"github.com/diillson/segment-report-go/internal/adapter/driven/export"
	"github.com/diillson/segment-report-go/internal/adapter/driven/spreadsheet"
	"github.com/diillson/segment-report-go/internal/adapter/driving/cli"
	"github.com/diillson/segment-report-go/internal/application/usecase"
	"github.com/diillson/segment-report-go/pkg/console"
	"github.com/diillson/segment-report-go/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	spreadsheetRepo := spreadsheet.NewSpreadsheetRepository()
	chartRepo := chart.NewChartRepository()
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	publisher := aws.NewAWSRepository()
	consoleImpl := console.NewConsole()

	// Inicializa o caso de uso
	reportUseCase := usecase.NewReportUseCase(
		spreadsheetRepo,
		chartRepo,
		exportRepo,
		configRepo,
		publisher,
		consoleImpl,
	)

	app.SetReportUseCase(reportUseCase)

	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
