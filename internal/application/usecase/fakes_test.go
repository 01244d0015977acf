package usecase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/diillson/segment-report-go/internal/domain/entity"
	"github.com/diillson/segment-report-go/internal/domain/service"
	"github.com/diillson/segment-report-go/internal/shared/types"
)

// fakeLoader devolve workbooks pré-montados por nome de arquivo.
type fakeLoader struct {
	workbooks map[string]entity.Workbook
	errs      map[string]error
}

func (f *fakeLoader) Load(filePath string, tiers []string) (entity.Workbook, error) {
	name := filepath.Base(filePath)
	if err, ok := f.errs[name]; ok {
		return entity.Workbook{}, err
	}
	wb, ok := f.workbooks[name]
	if !ok {
		return entity.Workbook{}, &types.MissingSheetError{File: name, Expected: tiers}
	}
	wb.Source = filePath
	return wb, nil
}

func (f *fakeLoader) SupportedExtensions() []string {
	return []string{".xlsx", ".csv"}
}

type fakeChart struct {
	calls []time.Time
	err   error
}

func (f *fakeChart) RenderChart(model entity.ReportModel, outputDir string, period time.Time) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.calls = append(f.calls, period)
	return service.ChartPath(outputDir, period), nil
}

type fakeExport struct {
	documents []string
	summaries []string
}

func (f *fakeExport) RenderDocument(model entity.ReportModel, chartDir, outputPath string, reportDate *time.Time) error {
	f.documents = append(f.documents, outputPath)
	return nil
}

func (f *fakeExport) ExportSummaryToCSV(reports []entity.TierReport, filename, outputDir string) (string, error) {
	f.summaries = append(f.summaries, "csv")
	return filepath.Join(outputDir, filename+".csv"), nil
}

func (f *fakeExport) ExportSummaryToJSON(reports []entity.TierReport, filename, outputDir string) (string, error) {
	f.summaries = append(f.summaries, "json")
	return filepath.Join(outputDir, filename+".json"), nil
}

func (f *fakeExport) ExportSummaryToXLSX(reports []entity.TierReport, filename, outputDir string) (string, error) {
	return "", errors.New("disk full")
}

type fakeConfig struct {
	file *types.Config
	env  *types.Config
}

func (f *fakeConfig) LoadConfigFile(filePath string) (*types.Config, error) {
	if f.file == nil {
		return nil, fmt.Errorf("error accessing config file: %w", os.ErrNotExist)
	}
	return f.file, nil
}

func (f *fakeConfig) LoadEnvConfig(envFile string) (*types.Config, error) {
	if f.env == nil {
		return &types.Config{}, nil
	}
	return f.env, nil
}

type fakePublisher struct {
	published []string
}

func (f *fakePublisher) GetAccountID(ctx context.Context, profile string) (string, error) {
	return "123456789012", nil
}

func (f *fakePublisher) Publish(ctx context.Context, target entity.PublishTarget, paths []string) ([]string, error) {
	f.published = append(f.published, paths...)
	uris := make([]string, len(paths))
	for i, p := range paths {
		uris[i] = "s3://" + target.Bucket + "/" + filepath.Base(p)
	}
	return uris, nil
}

// recordingConsole guarda as mensagens para as asserções.
type recordingConsole struct {
	mu       sync.Mutex
	infos    []string
	warnings []string
	errors   []string
	success  []string
	bars     []types.RevenueBar
	rows     int
}

func (c *recordingConsole) Print(a ...interface{})                 {}
func (c *recordingConsole) Printf(format string, a ...interface{}) {}
func (c *recordingConsole) Println(a ...interface{})               {}

func (c *recordingConsole) LogInfo(format string, a ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.infos = append(c.infos, fmt.Sprintf(format, a...))
}

func (c *recordingConsole) LogWarning(format string, a ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.warnings = append(c.warnings, fmt.Sprintf(format, a...))
}

func (c *recordingConsole) LogError(format string, a ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errors = append(c.errors, fmt.Sprintf(format, a...))
}

func (c *recordingConsole) LogSuccess(format string, a ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.success = append(c.success, fmt.Sprintf(format, a...))
}

func (c *recordingConsole) Status(message string) types.StatusHandle { return noopHandle{} }

func (c *recordingConsole) ProgressWithTotal(total int) types.ProgressHandle { return noopHandle{} }

func (c *recordingConsole) CreateTable() types.TableInterface { return &countingTable{console: c} }

func (c *recordingConsole) DisplayRevenueBars(title string, bars []types.RevenueBar) {
	c.bars = bars
}

type noopHandle struct{}

func (noopHandle) Update(string) {}
func (noopHandle) Increment()    {}
func (noopHandle) Stop()         {}

type countingTable struct {
	console *recordingConsole
}

func (t *countingTable) AddColumn(name string, options ...interface{}) {}
func (t *countingTable) AddRow(cells ...interface{})                   { t.console.rows++ }
func (t *countingTable) Render() string                                { return "" }
