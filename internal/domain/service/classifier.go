package service

import (
	"strings"

	"github.com/diillson/segment-report-go/internal/domain/entity"
)

// Classifier atribui a cada plano de pagamento exatamente uma categoria.
// As regras são avaliadas em ordem; a primeira que casar vence e, se nenhuma
// casar, o resultado é CategoryOther.
type Classifier struct {
	rules []entity.ClassificationRule
}

// NewClassifier copies the rule table, lowercasing patterns and dropping empty ones.
// Out-of-range categories are mapped to Other.
func NewClassifier(rules []entity.ClassificationRule) *Classifier {
	c := &Classifier{rules: make([]entity.ClassificationRule, 0, len(rules))}
	for _, r := range rules {
		p := strings.ToLower(strings.TrimSpace(r.Pattern))
		if p == "" {
			continue
		}
		cat := r.Category
		if cat < entity.CategoryBoleto || cat > entity.CategoryOther {
			cat = entity.CategoryOther
		}
		c.rules = append(c.rules, entity.ClassificationRule{Pattern: p, Category: cat})
	}
	return c
}

// DefaultClassifier usa entity.DefaultRules.
func DefaultClassifier() *Classifier {
	return NewClassifier(entity.DefaultRules())
}

// Classify never fails; empty labels are Other.
func (c *Classifier) Classify(label string) entity.Category {
	if label == "" {
		return entity.CategoryOther
	}
	lower := strings.ToLower(label)
	for _, r := range c.rules {
		if strings.Contains(lower, r.Pattern) {
			return r.Category
		}
	}
	return entity.CategoryOther
}

// Rules devolve uma cópia da tabela em uso.
func (c *Classifier) Rules() []entity.ClassificationRule {
	out := make([]entity.ClassificationRule, len(c.rules))
	copy(out, c.rules)
	return out
}
