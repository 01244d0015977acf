package cli

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/diillson/segment-report-go/internal/application/usecase"
	"github.com/diillson/segment-report-go/internal/shared/types"
	"github.com/diillson/segment-report-go/pkg/console"
	"github.com/diillson/segment-report-go/pkg/version"
	"github.com/spf13/cobra"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd       *cobra.Command
	reportUseCase *usecase.ReportUseCase
	version       string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:           "segment-report",
		Short:         "Relatórios de meios de pagamento por segmento de cliente",
		Long:          "Lê planilhas de pedidos com uma aba por segmento, calcula a divisão entre boleto, cartão e outras modalidades e gera um PDF com gráfico por segmento.",
		Version:       formattedVersion,
		RunE:          app.runCommand,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{printf "Segment Report version: %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().StringP("data-dir", "i", "", "Directory with the input spreadsheets (default: ./data)")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save the PDF reports (default: ./output)")
	rootCmd.PersistentFlags().String("graphs-dir", "", "Directory to save the charts (default: <dir>/graficos)")
	rootCmd.PersistentFlags().StringSliceP("tiers", "s", nil, "Customer tiers to report (comma-separated)")
	rootCmd.PersistentFlags().String("report-date", "", "Report date, YYYY-MM-DD (default: taken from the file name)")
	rootCmd.PersistentFlags().StringP("report-name", "n", "", "Base name for the summary file (without extension)")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", nil, "Summary types: csv, json, xlsx")
	rootCmd.PersistentFlags().String("log-format", "", "Log output format: text or json")
	rootCmd.PersistentFlags().String("s3-bucket", "", "Publish reports and charts to this S3 bucket")
	rootCmd.PersistentFlags().String("s3-prefix", "", "Key prefix for published objects")
	rootCmd.PersistentFlags().StringP("profile", "p", "", "AWS profile used to publish")
	rootCmd.PersistentFlags().StringP("region", "r", "", "AWS region of the bucket")
	rootCmd.PersistentFlags().Bool("no-banner", false, "Do not display the welcome banner")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// SetArgs substitui os argumentos da linha de comando.
func (app *CLIApp) SetArgs(args []string) {
	app.rootCmd.SetArgs(args)
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	flags := app.rootCmd.Flags()
	configFile, _ := flags.GetString("config-file")
	dataDir, _ := flags.GetString("data-dir")
	dir, _ := flags.GetString("dir")
	graphsDir, _ := flags.GetString("graphs-dir")
	tiers, _ := flags.GetStringSlice("tiers")
	reportDate, _ := flags.GetString("report-date")
	reportName, _ := flags.GetString("report-name")
	reportType, _ := flags.GetStringSlice("report-type")
	logFormat, _ := flags.GetString("log-format")
	s3Bucket, _ := flags.GetString("s3-bucket")
	s3Prefix, _ := flags.GetString("s3-prefix")
	profile, _ := flags.GetString("profile")
	region, _ := flags.GetString("region")
	noBanner, _ := flags.GetBool("no-banner")

	// Diretórios informados viram caminhos absolutos; vazios seguem para config/env/padrão.
	for _, p := range []*string{&dataDir, &dir, &graphsDir} {
		if *p == "" {
			continue
		}
		abs, err := filepath.Abs(*p)
		if err != nil {
			return nil, err
		}
		*p = abs
	}

	args := &types.CLIArgs{
		ConfigFile: configFile,
		DataDir:    dataDir,
		Dir:        dir,
		GraphsDir:  graphsDir,
		Tiers:      tiers,
		ReportDate: reportDate,
		ReportName: reportName,
		ReportType: reportType,
		LogFormat:  logFormat,
		S3Bucket:   s3Bucket,
		S3Prefix:   s3Prefix,
		Profile:    profile,
		Region:     region,
		NoBanner:   noBanner,
	}

	return args, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	settings, err := app.reportUseCase.ResolveSettings(cliArgs)
	if err != nil {
		return err
	}

	if strings.EqualFold(settings.LogFormat, "json") {
		jsonConsole, err := console.NewJSONConsole()
		if err != nil {
			return err
		}
		defer jsonConsole.Sync()
		app.reportUseCase.SetConsole(jsonConsole)
	} else {
		if !cliArgs.NoBanner {
			displayWelcomeBanner(app.version)
		}
		go version.CheckLatestVersion(app.version)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.reportUseCase.RunReports(ctx, settings)
}

// SetReportUseCase sets the report use case for the CLI app.
func (app *CLIApp) SetReportUseCase(useCase *usecase.ReportUseCase) {
	app.reportUseCase = useCase
}

// ExecuteContext runs the CLI application with the given context.
func (app *CLIApp) ExecuteContext(ctx context.Context) error {
	return app.rootCmd.ExecuteContext(ctx)
}
