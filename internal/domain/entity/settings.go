package entity

import (
	"strings"
	"time"
)

// DefaultTiers são as segmentações processadas quando nenhuma é configurada.
var DefaultTiers = []string{"bronze", "prata", "ouro", "platina", "rubi", "esmeralda", "diamante"}

// ClassificationRule maps a lowercase substring of the payment plan to a category.
type ClassificationRule struct {
	Pattern  string   `json:"pattern"`
	Category Category `json:"category"`
}

// DefaultRules devolve a tabela de classificação padrão. O padrão de cartão
// é sensível a acento: "cartao" não casa e cai em Outras.
func DefaultRules() []ClassificationRule {
	return []ClassificationRule{
		{Pattern: "boleto", Category: CategoryBoleto},
		{Pattern: "cartão", Category: CategoryCard},
	}
}

// PublishTarget identifica o destino de upload dos artefatos.
type PublishTarget struct {
	Bucket  string
	Prefix  string
	Profile string
	Region  string
}

// Enabled reports whether a bucket was configured.
func (t PublishTarget) Enabled() bool {
	return t.Bucket != ""
}

// Settings is the resolved, immutable run configuration.
type Settings struct {
	DataDir     string
	OutputDir   string
	GraphsDir   string
	Tiers       []string
	ReportDate  *time.Time
	ReportName  string
	ReportTypes []string
	Rules       []ClassificationRule
	Publish     PublishTarget
	LogFormat   string
}

// NormalizeTiers lowercases, trims and de-duplicates tier names keeping order.
func NormalizeTiers(tiers []string) []string {
	seen := make(map[string]bool, len(tiers))
	out := make([]string, 0, len(tiers))
	for _, t := range tiers {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
