// Package models provides the data structures used throughout the application.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents one ledger entry from a bank export.
// The sign of Amount determines the income/expense classification:
// negative amounts are expenses, positive amounts are income.
type Transaction struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Category    string
}

// IsIncome returns true if the transaction brings money in.
func (t *Transaction) IsIncome() bool {
	return t.Amount.IsPositive()
}

// IsExpense returns true if the transaction takes money out.
func (t *Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}

// CategoryRule is an ordered (keyword, category) pair. Rules are
// evaluated in slice order; the first keyword found in a transaction's
// description decides the category.
type CategoryRule struct {
	Keyword  string
	Category string
}

// CategoryConfig represents a category entry in the categories YAML file.
type CategoryConfig struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// CategoriesConfig represents the structure of the categories YAML file.
type CategoriesConfig struct {
	Categories []CategoryConfig `yaml:"categories"`
}

// Settings holds the per-run report settings loaded from the general
// config file: currency symbol and income-indicating keywords.
type Settings struct {
	Currency       string   `yaml:"currency"`
	IncomeKeywords []string `yaml:"income_keywords"`
}

// MonthlySummary is the derived aggregate for one target month.
// NetSavings is always TotalIncome minus TotalExpense, and the category
// totals sum back up to TotalExpense.
type MonthlySummary struct {
	Month          Month
	TotalIncome    decimal.Decimal
	TotalExpense   decimal.Decimal
	NetSavings     decimal.Decimal
	SavingsRate    decimal.Decimal
	CategoryTotals map[string]decimal.Decimal
}

// CategoryTotal is one row of the category breakdown artifact.
type CategoryTotal struct {
	Category string          `csv:"category"`
	Amount   decimal.Decimal `csv:"amount"`
}
