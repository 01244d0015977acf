package spreadsheet

import (
	"math"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var plainNumberRegex = regexp.MustCompile(`^-?\d+(\.\d+)?([eE][-+]?\d+)?$`)

// ParseNetValue converte o texto de uma célula em valor líquido.
//
// Aceita números crus ("1234.5", "1.2E+3") e o formato brasileiro
// ("R$ 1.234,56", "(10,00)"). Células vazias valem 0 sem contar como coerção.
// Valores ilegíveis, não finitos ou negativos viram 0 e ok=false.
func ParseNetValue(val string) (float64, bool) {
	s := strings.TrimSpace(val)
	s = strings.ReplaceAll(s, "R$", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "\u00a0", "")
	if s == "" {
		return 0, true
	}

	if !plainNumberRegex.MatchString(s) {
		s = normalizeBRL(s)
		if s == "" {
			return 0, false
		}
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, false
	}
	f, _ := d.Float64()
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0, false
	}
	return f, true
}

// normalizeBRL reescreve "1.234,56" como "1234.56". Devolve "" se não sobrar número.
func normalizeBRL(s string) string {
	if strings.IndexFunc(s, func(r rune) bool { return !strings.ContainsRune("0123456789.,()-", r) }) >= 0 {
		return ""
	}

	neg := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		neg = true
		s = strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
	}
	if strings.HasPrefix(s, "-") {
		neg = true
		s = strings.TrimPrefix(s, "-")
	}

	lastDot := strings.LastIndex(s, ".")
	lastComma := strings.LastIndex(s, ",")

	switch {
	case lastComma > lastDot:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	case lastDot > lastComma:
		s = strings.ReplaceAll(s, ",", "")
		// "1.234.567": vários pontos só podem ser separadores de milhar.
		if strings.Count(s, ".") > 1 {
			s = strings.ReplaceAll(s, ".", "")
		}
	}

	if strings.IndexAny(s, "0123456789") < 0 || strings.ContainsAny(s, "()-") {
		return ""
	}
	if neg {
		return "-" + s
	}
	return s
}
