package spreadsheet

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/diillson/segment-report-go/internal/domain/entity"
	"github.com/diillson/segment-report-go/internal/domain/repository"
	"github.com/diillson/segment-report-go/internal/shared/types"
	"github.com/schollz/closestmatch"
)

// Colunas A:C de cada aba: segmentacao, ValorLiquido, PlanoPagamento.
const (
	colSegment = iota
	colNetValue
	colPaymentPlan
)

// rawSheet são as linhas de dados (sem cabeçalho) de uma aba.
type rawSheet struct {
	name string
	rows [][]string
}

// SpreadsheetRepositoryImpl implementa o SpreadsheetRepository.
type SpreadsheetRepositoryImpl struct{}

// NewSpreadsheetRepository cria uma nova implementação do SpreadsheetRepository.
func NewSpreadsheetRepository() repository.SpreadsheetRepository {
	return &SpreadsheetRepositoryImpl{}
}

// SupportedExtensions lista as extensões aceitas pelo loader.
func (r *SpreadsheetRepositoryImpl) SupportedExtensions() []string {
	return []string{".xlsx", ".xlsm", ".xls", ".csv"}
}

// Load lê o arquivo e devolve as linhas de cada tier encontrado.
func (r *SpreadsheetRepositoryImpl) Load(filePath string, tiers []string) (entity.Workbook, error) {
	var (
		sheets []rawSheet
		err    error
	)

	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".xlsx", ".xlsm":
		sheets, err = readXLSX(filePath)
	case ".xls":
		sheets, err = readXLS(filePath)
	case ".csv":
		sheets, err = readCSV(filePath)
	default:
		return entity.Workbook{}, fmt.Errorf("%w: %s", types.ErrUnsupportedFormat, filepath.Base(filePath))
	}
	if err != nil {
		return entity.Workbook{}, err
	}

	return buildWorkbook(filePath, sheets, entity.NormalizeTiers(tiers))
}

// buildWorkbook associa as abas aos tiers configurados e normaliza as linhas.
func buildWorkbook(source string, sheets []rawSheet, tiers []string) (entity.Workbook, error) {
	wb := entity.Workbook{
		Source: source,
		Sheets: make(map[string]entity.RecordSet),
	}

	expected := make(map[string]bool, len(tiers))
	for _, t := range tiers {
		expected[t] = true
	}

	var matcher *closestmatch.ClosestMatch
	if len(tiers) > 0 {
		matcher = closestmatch.New(tiers, []int{2, 3})
	}

	for _, sheet := range sheets {
		key := strings.ToLower(strings.TrimSpace(sheet.name))
		if !expected[key] {
			ignored := entity.IgnoredSheet{Name: sheet.name}
			if matcher != nil && key != "" {
				ignored.Suggestion = matcher.Closest(key)
			}
			wb.Ignored = append(wb.Ignored, ignored)
			continue
		}

		rs, coerced := toRecordSet(sheet.rows)
		wb.Sheets[key] = append(wb.Sheets[key], rs...)
		wb.CoercedValues += coerced
	}

	if len(wb.Sheets) == 0 {
		return wb, &types.MissingSheetError{File: filepath.Base(source), Expected: tiers}
	}
	return wb, nil
}

// toRecordSet converte as colunas A:C em Rows, aplicando a coerção numérica.
func toRecordSet(rows [][]string) (entity.RecordSet, int) {
	rs := make(entity.RecordSet, 0, len(rows))
	coerced := 0
	for _, cells := range rows {
		segment := strings.TrimSpace(cell(cells, colSegment))
		rawValue := cell(cells, colNetValue)
		plan := strings.TrimSpace(cell(cells, colPaymentPlan))
		if segment == "" && strings.TrimSpace(rawValue) == "" && plan == "" {
			continue
		}

		value, ok := ParseNetValue(rawValue)
		if !ok {
			coerced++
		}
		rs = append(rs, entity.Row{Segment: segment, NetValue: value, PaymentPlan: plan})
	}
	return rs, coerced
}

func cell(cells []string, idx int) string {
	if idx < len(cells) {
		return cells[idx]
	}
	return ""
}
