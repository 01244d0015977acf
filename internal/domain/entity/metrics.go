package entity

import (
	"fmt"
	"strings"

	"github.com/diillson/segment-report-go/internal/shared/types"
)

// Category é a modalidade de pagamento de um pedido.
type Category int

const (
	CategoryBoleto Category = iota
	CategoryCard
	CategoryOther
)

// Categories lists every category in report order.
var Categories = []Category{CategoryBoleto, CategoryCard, CategoryOther}

func (c Category) String() string {
	switch c {
	case CategoryBoleto:
		return "boleto"
	case CategoryCard:
		return "card"
	default:
		return "other"
	}
}

// Label devolve o nome da modalidade usado nos relatórios.
func (c Category) Label() string {
	switch c {
	case CategoryBoleto:
		return "Boleto"
	case CategoryCard:
		return "Cartão"
	default:
		return "Outras"
	}
}

// ParseCategory converte o nome vindo da configuração em uma Category.
func ParseCategory(name string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "boleto":
		return CategoryBoleto, nil
	case "card", "cartao", "cartão":
		return CategoryCard, nil
	case "other", "outras", "outros":
		return CategoryOther, nil
	}
	return CategoryOther, fmt.Errorf("%w: %q", types.ErrUnknownCategory, name)
}

// CategoryMetrics holds the breakdown of one payment category.
type CategoryMetrics struct {
	Qty     int     `json:"qty"`
	Revenue float64 `json:"revenue"`
	PctQty  float64 `json:"pct_qty"`
	PctRev  float64 `json:"pct_rev"`
}

// MetricsSummary é o resumo agregado de uma segmentação.
type MetricsSummary struct {
	TotalOrders  int             `json:"total_orders"`
	TotalRevenue float64         `json:"total_revenue"`
	Boleto       CategoryMetrics `json:"boleto"`
	Card         CategoryMetrics `json:"card"`
	Other        CategoryMetrics `json:"other"`
}

// ByCategory devolve o detalhamento da categoria informada.
func (m MetricsSummary) ByCategory(c Category) CategoryMetrics {
	switch c {
	case CategoryBoleto:
		return m.Boleto
	case CategoryCard:
		return m.Card
	default:
		return m.Other
	}
}

func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
