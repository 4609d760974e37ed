// Package aggregator folds a categorized transaction sequence into a
// monthly financial summary: income, expenses, savings, savings rate
// and per-category expense totals.
package aggregator

import (
	"budgeteer/internal/logging"
	"budgeteer/internal/models"
	"budgeteer/internal/reporterror"

	"github.com/shopspring/decimal"
)

// Summarize computes the MonthlySummary for the target month from the
// full transaction sequence. Transactions outside the month are excluded
// from every total. A month with no transactions yields an all-zero
// summary, not an error.
func Summarize(transactions []models.Transaction, month models.Month) models.MonthlySummary {
	summary := models.MonthlySummary{
		Month:          month,
		TotalIncome:    decimal.Zero,
		TotalExpense:   decimal.Zero,
		NetSavings:     decimal.Zero,
		SavingsRate:    decimal.Zero,
		CategoryTotals: make(map[string]decimal.Decimal),
	}

	for _, tx := range transactions {
		if !month.Contains(tx.Date) {
			continue
		}
		switch {
		case tx.IsIncome():
			summary.TotalIncome = summary.TotalIncome.Add(tx.Amount)
		case tx.IsExpense():
			expense := tx.Amount.Neg()
			summary.TotalExpense = summary.TotalExpense.Add(expense)
			summary.CategoryTotals[tx.Category] = summary.CategoryTotals[tx.Category].Add(expense)
		}
		// Zero amounts are neutral: they affect no total.
	}

	summary.NetSavings = summary.TotalIncome.Sub(summary.TotalExpense)

	// Guard against division by zero: with no income the rate is zero.
	if summary.TotalIncome.IsPositive() {
		summary.SavingsRate = summary.NetSavings.Div(summary.TotalIncome)
	}

	logging.GetLogger().WithFields(
		logging.Field{Key: logging.FieldMonth, Value: month.String()},
		logging.Field{Key: "income", Value: summary.TotalIncome.StringFixed(2)},
		logging.Field{Key: "expense", Value: summary.TotalExpense.StringFixed(2)},
	).Debug("Computed monthly summary")

	return summary
}

// LatestMonth returns the most recent calendar month present in the
// data, decided by the maximum transaction date. This is the default
// target month when none is requested explicitly.
func LatestMonth(transactions []models.Transaction) (models.Month, error) {
	if len(transactions) == 0 {
		return models.Month{}, &reporterror.ConfigurationError{
			Subject: "month selection",
			Reason:  "no transactions in input, cannot determine a default month; pass --month",
		}
	}

	latest := models.MonthOf(transactions[0].Date)
	for _, tx := range transactions[1:] {
		if m := models.MonthOf(tx.Date); m.After(latest) {
			latest = m
		}
	}
	return latest, nil
}
