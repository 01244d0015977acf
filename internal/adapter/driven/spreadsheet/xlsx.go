package spreadsheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// readXLSX lê todas as abas de um .xlsx com valores crus (sem formatação de número).
func readXLSX(filePath string) ([]rawSheet, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening workbook: %w", err)
	}
	defer f.Close()

	var sheets []rawSheet
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("error reading sheet %q: %w", name, err)
		}
		sheets = append(sheets, rawSheet{name: name, rows: dropHeader(rows)})
	}
	return sheets, nil
}

// dropHeader descarta a primeira linha (cabeçalho).
func dropHeader(rows [][]string) [][]string {
	if len(rows) == 0 {
		return nil
	}
	return rows[1:]
}
