package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/diillson/segment-report-go/internal/domain/entity"
	"github.com/diillson/segment-report-go/internal/domain/service"
	"github.com/disintegration/imaging"
	"github.com/xuri/excelize/v2"
)

func sampleReports() []entity.TierReport {
	metrics := service.Compute(entity.RecordSet{
		{Segment: "ouro", NetValue: 100, PaymentPlan: "Boleto"},
		{Segment: "ouro", NetValue: 50, PaymentPlan: "Cartão"},
		{Segment: "ouro", NetValue: 25, PaymentPlan: "PIX"},
	})
	return []entity.TierReport{{
		SourceFile:   "/data/vendas_20240315.xlsx",
		Tier:         "ouro",
		ReportDate:   time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		Metrics:      metrics,
		DocumentPath: "/out/relatorio_ouro_vendas_20240315.pdf",
	}}
}

func assertPDF(t *testing.T, path string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading PDF: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("%s is not a PDF", path)
	}
}

func TestRenderDocumentWithChart(t *testing.T) {
	dir := t.TempDir()
	graphs := filepath.Join(dir, "graficos")
	date := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	if err := os.MkdirAll(graphs, 0755); err != nil {
		t.Fatal(err)
	}
	img := imaging.New(200, 80, color.White)
	if err := imaging.Save(img, service.ChartPath(graphs, date)); err != nil {
		t.Fatal(err)
	}

	rep := sampleReports()[0]
	model := entity.SingleTier(rep.Tier, rep.Metrics)
	out := filepath.Join(dir, "pdf", "relatorio_ouro_vendas.pdf")

	repo := NewExportRepository()
	if err := repo.RenderDocument(model, graphs, out, &date); err != nil {
		t.Fatalf("RenderDocument: %v", err)
	}
	assertPDF(t, out)
}

func TestRenderDocumentWithoutChart(t *testing.T) {
	dir := t.TempDir()
	rep := sampleReports()[0]
	model := entity.SingleTier(rep.Tier, rep.Metrics)
	out := filepath.Join(dir, "20240315.pdf")

	repo := NewExportRepositoryWithClock(func() time.Time {
		return time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC)
	})
	if err := repo.RenderDocument(model, filepath.Join(dir, "sem_graficos"), out, nil); err != nil {
		t.Fatalf("RenderDocument: %v", err)
	}
	assertPDF(t, out)
}

func TestExportSummaryToCSV(t *testing.T) {
	dir := t.TempDir()
	path, err := NewExportRepository().ExportSummaryToCSV(sampleReports(), "resumo", dir)
	if err != nil {
		t.Fatalf("ExportSummaryToCSV: %v", err)
	}
	if filepath.Base(path) != "resumo.csv" {
		t.Errorf("path = %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = ';'
	records, err := r.ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want header + 1", len(records))
	}
	if records[0][0] != "PAPEL" || len(records[0]) != len(summaryHeaders) {
		t.Errorf("header = %v", records[0])
	}
	row := records[1]
	want := map[int]string{0: "ouro", 1: "3", 2: "175.00", 3: "100.00", 5: "33.3%", 6: "57.1%", 13: "vendas_20240315.xlsx", 14: "15/03/2024"}
	for i, v := range want {
		if row[i] != v {
			t.Errorf("column %s = %q, want %q", summaryHeaders[i], row[i], v)
		}
	}
}

func TestExportSummaryToJSON(t *testing.T) {
	dir := t.TempDir()
	repo := NewExportRepository()

	path, err := repo.ExportSummaryToJSON(sampleReports(), "resumo", dir)
	if err != nil {
		t.Fatalf("ExportSummaryToJSON: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var decoded []entity.TierReport
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(decoded) != 1 || decoded[0].Metrics.TotalOrders != 3 {
		t.Errorf("decoded = %+v", decoded)
	}

	emptyPath, err := repo.ExportSummaryToJSON(nil, "vazio", dir)
	if err != nil {
		t.Fatal(err)
	}
	data, _ = os.ReadFile(emptyPath)
	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("empty summary = %q, want []", data)
	}
}

func TestExportSummaryToXLSX(t *testing.T) {
	dir := t.TempDir()
	path, err := NewExportRepository().ExportSummaryToXLSX(sampleReports(), "resumo", dir)
	if err != nil {
		t.Fatalf("ExportSummaryToXLSX: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := f.GetRows(resultsSheet)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0][0] != "PAPEL" || rows[1][0] != "ouro" || rows[1][1] != "3" {
		t.Errorf("rows = %v", rows)
	}
}
