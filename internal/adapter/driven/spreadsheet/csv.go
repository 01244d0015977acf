package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// readCSV lê uma exportação CSV com as colunas A:C e agrupa as linhas pela
// segmentação, produzindo uma "aba" por segmento. Arquivos que não são UTF-8
// válido são decodificados como Windows-1252.
func readCSV(filePath string) ([]rawSheet, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading CSV file: %w", err)
	}
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	var reader io.Reader = bytes.NewReader(data)
	if !utf8.Valid(data) {
		reader = transform.NewReader(reader, charmap.Windows1252.NewDecoder())
	}

	r := csv.NewReader(reader)
	r.Comma = detectDelimiter(data)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}

	var sheets []rawSheet
	index := make(map[string]int)
	for _, record := range dropHeader(records) {
		name := strings.TrimSpace(cell(record, colSegment))
		key := strings.ToLower(name)
		i, ok := index[key]
		if !ok {
			i = len(sheets)
			index[key] = i
			sheets = append(sheets, rawSheet{name: name})
		}
		sheets[i].rows = append(sheets[i].rows, record)
	}
	return sheets, nil
}

// detectDelimiter escolhe ';' quando ele aparece mais que ',' na primeira linha.
func detectDelimiter(data []byte) rune {
	first := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		first = data[:i]
	}
	if bytes.Count(first, []byte(";")) > bytes.Count(first, []byte(",")) {
		return ';'
	}
	return ','
}
