package spreadsheet

import (
	"fmt"
	"os"

	"github.com/shakinm/xlsReader/xls"
)

// readXLS lê um .xls (BIFF). Arquivos .xlsx renomeados para .xls são lidos pelo excelize.
func readXLS(filePath string) ([]rawSheet, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening workbook: %w", err)
	}
	defer file.Close()

	workbook, err := xls.OpenReader(file)
	if err != nil {
		if sheets, errX := readXLSX(filePath); errX == nil {
			return sheets, nil
		}
		return nil, fmt.Errorf("error reading .xls workbook: %w", err)
	}

	var sheets []rawSheet
	for _, sheet := range workbook.GetSheets() {
		var rows [][]string
		for _, row := range sheet.GetRows() {
			var cells []string
			for _, c := range row.GetCols() {
				cells = append(cells, c.GetString())
			}
			rows = append(rows, cells)
		}
		sheets = append(sheets, rawSheet{name: sheet.GetName(), rows: dropHeader(rows)})
	}
	return sheets, nil
}
