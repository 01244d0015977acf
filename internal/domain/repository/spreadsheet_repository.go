package repository

import (
	"github.com/diillson/segment-report-go/internal/domain/entity"
)

// SpreadsheetRepository lê um arquivo de exportação e devolve as linhas por tier.
type SpreadsheetRepository interface {
	// Load returns only the tiers present in the file. It fails with
	// types.ErrNoMatchingSheets when none of the tiers is found.
	Load(filePath string, tiers []string) (entity.Workbook, error)
	SupportedExtensions() []string
}
