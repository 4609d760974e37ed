// Package categorizer assigns spending categories to transactions using
// an ordered keyword rule set: the first rule whose keyword appears in
// the description (case-insensitive) decides the category.
package categorizer

import (
	"strings"

	"budgeteer/internal/logging"
	"budgeteer/internal/models"
)

// DefaultCategory is assigned when no rule matches a description.
const DefaultCategory = "Uncategorized"

// IncomeCategory is assigned to income-like descriptions that no
// ordinary rule claims first.
const IncomeCategory = "Income"

// Categorizer holds the immutable rule set for one run.
type Categorizer struct {
	rules          []models.CategoryRule
	incomeKeywords []string
	logger         logging.Logger
}

// New creates a Categorizer from an ordered rule set and an optional
// list of income-indicating keywords.
func New(rules []models.CategoryRule, incomeKeywords []string, logger logging.Logger) *Categorizer {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Categorizer{
		rules:          rules,
		incomeKeywords: incomeKeywords,
		logger:         logger,
	}
}

// Categorize returns the category for a transaction description.
// Rules are evaluated in configured order and the first match wins.
// Income keywords act as an additive fallback: they only apply when no
// ordinary rule matched. Deterministic and side-effect free.
func (c *Categorizer) Categorize(description string) string {
	desc := strings.ToLower(description)

	for _, rule := range c.rules {
		if strings.Contains(desc, strings.ToLower(rule.Keyword)) {
			c.logger.WithFields(
				logging.Field{Key: logging.FieldKeyword, Value: rule.Keyword},
				logging.Field{Key: logging.FieldCategory, Value: rule.Category},
			).Debug("Matched category rule")
			return rule.Category
		}
	}

	if c.IsIncomeLike(description) {
		return IncomeCategory
	}

	return DefaultCategory
}

// IsIncomeLike reports whether the description matches one of the
// configured income keywords. This is a secondary signal only: the
// income/expense split in the summary is still decided by amount sign.
func (c *Categorizer) IsIncomeLike(description string) bool {
	desc := strings.ToLower(description)
	for _, keyword := range c.incomeKeywords {
		if strings.Contains(desc, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}

// Apply assigns a category to every transaction in place and returns
// the slice for chaining. Each transaction's category is set exactly once.
func (c *Categorizer) Apply(transactions []models.Transaction) []models.Transaction {
	for i := range transactions {
		transactions[i].Category = c.Categorize(transactions[i].Description)
	}
	return transactions
}
