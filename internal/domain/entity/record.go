package entity

import "strings"

// Row é uma linha normalizada de uma aba de segmentação.
type Row struct {
	Segment     string  `json:"segment"`
	NetValue    float64 `json:"net_value"`
	PaymentPlan string  `json:"payment_plan"`
}

// RecordSet contém as linhas de uma única segmentação, na ordem da planilha.
type RecordSet []Row

// IsEmpty reports whether the set has no rows.
func (rs RecordSet) IsEmpty() bool {
	return len(rs) == 0
}

// FilterTier mantém apenas as linhas cuja segmentação (sem diferenciar maiúsculas) é igual ao tier.
func (rs RecordSet) FilterTier(tier string) RecordSet {
	tier = strings.ToLower(strings.TrimSpace(tier))
	filtered := make(RecordSet, 0, len(rs))
	for _, row := range rs {
		if strings.ToLower(strings.TrimSpace(row.Segment)) == tier {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// IgnoredSheet is a sheet (or CSV segment) that did not match any configured tier.
type IgnoredSheet struct {
	Name       string `json:"name"`
	Suggestion string `json:"suggestion,omitempty"`
}

// Workbook is the loader's view of one input file: tier name to its rows.
type Workbook struct {
	Source        string               `json:"source"`
	Sheets        map[string]RecordSet `json:"sheets"`
	Ignored       []IgnoredSheet       `json:"ignored,omitempty"`
	CoercedValues int                  `json:"coerced_values"`
}

// Tier devolve as linhas de um tier, se a aba existir.
func (w Workbook) Tier(name string) (RecordSet, bool) {
	rs, ok := w.Sheets[strings.ToLower(strings.TrimSpace(name))]
	return rs, ok
}
