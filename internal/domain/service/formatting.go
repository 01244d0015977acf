package service

import (
	"fmt"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatCurrency formata valores como "R$ 1,234.56" (milhar com vírgula, duas casas).
func FormatCurrency(v float64) string {
	p := message.NewPrinter(language.English)
	return "R$ " + p.Sprintf("%.2f", v)
}

// FormatPercent formats a fraction as a one-decimal percentage: 0.3333 -> "33.3%".
func FormatPercent(fraction float64) string {
	return fmt.Sprintf("%.1f%%", fraction*100)
}

// FormatCount imprime quantidades sem separador de milhar.
func FormatCount(n int) string {
	return strconv.Itoa(n)
}

// CapitalizeTier deixa a primeira letra maiúscula e o restante minúsculo.
func CapitalizeTier(tier string) string {
	return cases.Title(language.BrazilianPortuguese).String(tier)
}
