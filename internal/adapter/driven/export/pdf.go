package export

import (
	"fmt"

	"github.com/diillson/segment-report-go/internal/domain/entity"
	"github.com/jung-kurt/gofpdf"
)

const (
	ptToMM = 25.4 / 72

	labelColumnWidth = 50.0
	valueColumnWidth = 30.0
	tableRowHeight   = 4.5
)

// writePDF executa a lista de blocos com o gofpdf. A quebra de página só é
// materializada quando chega um bloco com conteúdo, evitando página em branco no fim.
func writePDF(doc entity.Document, outputPath string) error {
	g := doc.Geometry
	pdf := gofpdf.New(g.Orientation, "mm", g.Size, "")
	pdf.SetMargins(g.MarginLeft, g.MarginTop, g.MarginRight)
	pdf.SetAutoPageBreak(true, g.MarginBottom)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-g.MarginBottom)
		pdf.SetFont("Arial", "I", 7)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 5, tr(fmt.Sprintf("Página %d", pdf.PageNo())), "", 0, "R", false, 0, "")
	})

	pdf.AddPage()
	pendingBreak := false

	for _, b := range doc.Blocks {
		if b.Kind == entity.BlockPageBreak {
			pendingBreak = true
			continue
		}
		if pendingBreak {
			pdf.AddPage()
			pendingBreak = false
		}

		switch b.Kind {
		case entity.BlockTitle:
			pdf.SetFont("Arial", "B", 16)
			pdf.SetTextColor(0, 0, 0)
			pdf.CellFormat(0, 18*ptToMM, tr(b.Text), "", 1, "C", false, 0, "")
		case entity.BlockHeader:
			pdf.SetFont("Arial", "B", 14)
			pdf.SetTextColor(0, 0, 0)
			pdf.CellFormat(0, 16*ptToMM, tr(b.Text), "", 1, "L", false, 0, "")
		case entity.BlockSpacer:
			pdf.Ln(b.Height * ptToMM)
		case entity.BlockTable:
			pdf.SetFont("Arial", "", 8)
			pdf.SetTextColor(50, 50, 50)
			for _, row := range b.Rows {
				pdf.CellFormat(labelColumnWidth, tableRowHeight, tr(row.Label), "", 0, "L", false, 0, "")
				pdf.CellFormat(valueColumnWidth, tableRowHeight, tr(row.Value), "", 1, "R", false, 0, "")
			}
		case entity.BlockImage:
			pdf.ImageOptions(b.ImagePath, pdf.GetX(), pdf.GetY(), b.Width, b.ImageHeight, true,
				gofpdf.ImageOptions{ReadDpi: true}, 0, "")
		}
	}

	return pdf.OutputFileAndClose(outputPath)
}
