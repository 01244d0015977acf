package types

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoMatchingSheets  = errors.New("none of the expected tiers were found in the source file")
	ErrNoInputFiles      = errors.New("no spreadsheet files found in the data directory")
	ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")
	ErrInvalidReportDate = errors.New("invalid report date, expected YYYY-MM-DD or YYYYMMDD")
	ErrUnknownCategory   = errors.New("unknown payment category")
	ErrUnknownReportType = errors.New("unknown report type")
	ErrPublisherDisabled = errors.New("artifact publishing is not configured")
)

// MissingSheetError é retornado pelo loader quando nenhuma aba esperada existe no arquivo.
type MissingSheetError struct {
	File     string
	Expected []string
}

func (e *MissingSheetError) Error() string {
	return fmt.Sprintf("%s: %v (expected one of: %s)", e.File, ErrNoMatchingSheets, strings.Join(e.Expected, ", "))
}

func (e *MissingSheetError) Unwrap() error {
	return ErrNoMatchingSheets
}
