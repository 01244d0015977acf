package usecase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/diillson/segment-report-go/internal/domain/entity"
	"github.com/diillson/segment-report-go/internal/domain/repository"
	"github.com/diillson/segment-report-go/internal/domain/service"
	"github.com/diillson/segment-report-go/internal/shared/types"
)

// ReportUseCase orquestra, para cada arquivo e tier: carga, filtro, agregação e renderização.
type ReportUseCase struct {
	loader     repository.SpreadsheetRepository
	chartRepo  repository.ChartRepository
	exportRepo repository.ExportRepository
	configRepo repository.ConfigRepository
	publisher  repository.PublisherRepository
	console    types.ConsoleInterface
	now        func() time.Time
}

// NewReportUseCase creates a new report use case.
func NewReportUseCase(
	loader repository.SpreadsheetRepository,
	chartRepo repository.ChartRepository,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	publisher repository.PublisherRepository,
	console types.ConsoleInterface,
) *ReportUseCase {
	return &ReportUseCase{
		loader:     loader,
		chartRepo:  chartRepo,
		exportRepo: exportRepo,
		configRepo: configRepo,
		publisher:  publisher,
		console:    console,
		now:        time.Now,
	}
}

// SetConsole troca a saída do console (ex.: JSON estruturado).
func (uc *ReportUseCase) SetConsole(console types.ConsoleInterface) {
	uc.console = console
}

// SetClock define o relógio usado como fallback da data do relatório.
func (uc *ReportUseCase) SetClock(now func() time.Time) {
	uc.now = now
}

// RunReports executa o pipeline completo sobre os arquivos do diretório de dados.
func (uc *ReportUseCase) RunReports(ctx context.Context, settings entity.Settings) error {
	files, err := uc.DiscoverInputFiles(settings.DataDir)
	if err != nil {
		if errors.Is(err, types.ErrNoInputFiles) {
			uc.console.LogWarning("Nenhum arquivo de planilha encontrado em %s", settings.DataDir)
			return nil
		}
		return err
	}

	reports := uc.ProcessFiles(ctx, settings, files)
	if len(reports) == 0 {
		uc.console.LogWarning("Nenhum relatório gerado")
		return nil
	}

	uc.displaySummary(reports)
	uc.exportSummary(settings, reports)
	uc.publishArtifacts(ctx, settings.Publish, reports)

	return nil
}

// DiscoverInputFiles lista, em ordem alfabética, as planilhas suportadas do diretório.
func (uc *ReportUseCase) DiscoverInputFiles(dataDir string) ([]string, error) {
	entries, err := os.ReadDir(dataDir)
	if err != nil {
		return nil, fmt.Errorf("error reading data directory '%s': %w", dataDir, err)
	}

	supported := make(map[string]bool)
	for _, ext := range uc.loader.SupportedExtensions() {
		supported[strings.ToLower(ext)] = true
	}

	var files []string
	for _, e := range entries {
		name := e.Name()
		// "~$" são arquivos de trava do Excel.
		if e.IsDir() || strings.HasPrefix(name, "~$") {
			continue
		}
		if supported[strings.ToLower(filepath.Ext(name))] {
			files = append(files, filepath.Join(dataDir, name))
		}
	}

	if len(files) == 0 {
		return nil, types.ErrNoInputFiles
	}
	sort.Strings(files)
	return files, nil
}

// ProcessFiles processa os arquivos em sequência. A falha de um arquivo é
// registrada e não interrompe os demais.
func (uc *ReportUseCase) ProcessFiles(ctx context.Context, settings entity.Settings, files []string) []entity.TierReport {
	aggregator := service.NewAggregator(service.NewClassifier(settings.Rules))
	progress := uc.console.ProgressWithTotal(len(files) * len(settings.Tiers))
	defer progress.Stop()

	var reports []entity.TierReport
	for _, file := range files {
		if ctx.Err() != nil {
			uc.console.LogWarning("Processamento interrompido: %s", ctx.Err())
			break
		}

		uc.console.LogInfo("Processando arquivo: %s", filepath.Base(file))
		fileReports, err := uc.ProcessFile(settings, aggregator, file, progress)
		if err != nil {
			uc.console.LogError("Falha ao processar %s: %s", filepath.Base(file), err)
			continue
		}
		reports = append(reports, fileReports...)
	}
	return reports
}

// ProcessFile carrega o arquivo uma única vez e gera os artefatos de cada tier configurado.
func (uc *ReportUseCase) ProcessFile(
	settings entity.Settings,
	aggregator *service.Aggregator,
	file string,
	progress types.ProgressHandle,
) ([]entity.TierReport, error) {
	workbook, err := uc.loader.Load(file, settings.Tiers)
	if err != nil {
		for range settings.Tiers {
			progress.Increment()
		}
		return nil, err
	}

	for _, ignored := range workbook.Ignored {
		if ignored.Suggestion != "" {
			uc.console.LogWarning("Aba '%s' ignorada em %s (você quis dizer '%s'?)", ignored.Name, filepath.Base(file), ignored.Suggestion)
		} else {
			uc.console.LogWarning("Aba '%s' ignorada em %s", ignored.Name, filepath.Base(file))
		}
	}
	if workbook.CoercedValues > 0 {
		uc.console.LogWarning("%d valor(es) não numérico(s) convertido(s) para 0 em %s", workbook.CoercedValues, filepath.Base(file))
	}

	reportDate := service.ReportDateFromSource(file, uc.now())
	if settings.ReportDate != nil {
		reportDate = *settings.ReportDate
	}

	var reports []entity.TierReport
	for _, tier := range settings.Tiers {
		report, err := uc.ProcessTier(settings, aggregator, workbook, tier, reportDate)
		progress.Increment()
		if err != nil {
			uc.console.LogError("Falha ao gerar relatório de '%s' para %s: %s", tier, filepath.Base(file), err)
			continue
		}
		if report != nil {
			reports = append(reports, *report)
		}
	}
	return reports, nil
}

// ProcessTier gera gráfico e PDF de um tier. Devolve nil sem erro quando o
// tier não existe no arquivo ou não tem linhas; nesses casos nenhum artefato é criado.
func (uc *ReportUseCase) ProcessTier(
	settings entity.Settings,
	aggregator *service.Aggregator,
	workbook entity.Workbook,
	tier string,
	reportDate time.Time,
) (*entity.TierReport, error) {
	source := filepath.Base(workbook.Source)

	raw, ok := workbook.Tier(tier)
	if !ok {
		uc.console.LogWarning("Aba '%s' não encontrada em %s", tier, source)
		return nil, nil
	}

	records := raw.FilterTier(tier)
	if records.IsEmpty() {
		uc.console.LogWarning("Sem dados para segmento '%s' em %s", tier, source)
		return nil, nil
	}

	metrics := aggregator.Compute(records)
	model := entity.SingleTier(tier, metrics)

	chartPath, err := uc.chartRepo.RenderChart(model, settings.GraphsDir, reportDate)
	if err != nil {
		return nil, fmt.Errorf("chart: %w", err)
	}

	outputPath := filepath.Join(settings.OutputDir, service.DocumentFilename(tier, workbook.Source))
	if err := uc.exportRepo.RenderDocument(model, settings.GraphsDir, outputPath, &reportDate); err != nil {
		return nil, fmt.Errorf("document: %w", err)
	}
	uc.console.LogSuccess("PDF gerado para %s: %s", tier, outputPath)

	return &entity.TierReport{
		SourceFile:   workbook.Source,
		Tier:         tier,
		ReportDate:   reportDate,
		Metrics:      metrics,
		ChartPath:    chartPath,
		DocumentPath: outputPath,
	}, nil
}
