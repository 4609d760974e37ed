// Package pipeline wires the full run: load, categorize, aggregate,
// emit. One invocation is a single synchronous pass; each run is
// independent of prior runs.
package pipeline

import (
	"fmt"
	"path/filepath"

	"budgeteer/internal/aggregator"
	"budgeteer/internal/categorizer"
	"budgeteer/internal/chart"
	"budgeteer/internal/loader"
	"budgeteer/internal/logging"
	"budgeteer/internal/models"
	"budgeteer/internal/report"
	"budgeteer/internal/reporterror"
	"budgeteer/internal/store"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// Options collects everything one run needs.
type Options struct {
	CSVPath        string
	Month          string // YYYY-MM; empty means latest month in the data
	CategoriesFile string
	SettingsFile   string
	OutputDir      string
	Invert         bool
	SkipBadRows    bool
	NoChart        bool
	TopCategories  int
}

// Result reports what a run produced.
type Result struct {
	Summary   models.MonthlySummary
	Artifacts []string
}

// Run executes the whole pipeline and writes the artifacts for the
// target month. Chart rendering failures degrade to a warning; every
// other failure aborts the run.
func Run(opts Options, logger logging.Logger) (*Result, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}

	ruleStore := store.NewRuleStore(opts.CategoriesFile, opts.SettingsFile, logger)
	rules, err := ruleStore.LoadRules()
	if err != nil {
		return nil, err
	}
	settings, err := ruleStore.LoadSettings()
	if err != nil {
		return nil, err
	}

	transactions, err := loader.New(logger).Load(opts.CSVPath, loader.Options{
		Invert:      opts.Invert,
		SkipBadRows: opts.SkipBadRows,
	})
	if err != nil {
		return nil, err
	}

	cat := categorizer.New(rules, settings.IncomeKeywords, logger)
	transactions = cat.Apply(transactions)

	month, err := resolveMonth(opts.Month, transactions)
	if err != nil {
		return nil, err
	}

	summary := aggregator.Summarize(transactions, month)

	emitter := report.NewEmitter(opts.OutputDir, settings.Currency, opts.TopCategories, logger)
	result := &Result{Summary: summary}

	txPath, err := emitter.WriteTransactionsCSV(transactions, month)
	if err != nil {
		return nil, err
	}
	result.Artifacts = append(result.Artifacts, txPath)

	breakdownPath, err := emitter.WriteBreakdownCSV(summary)
	if err != nil {
		return nil, err
	}
	result.Artifacts = append(result.Artifacts, breakdownPath)

	reportPath, err := emitter.WriteMarkdown(summary)
	if err != nil {
		return nil, err
	}
	result.Artifacts = append(result.Artifacts, reportPath)

	if !opts.NoChart {
		chartPath := filepath.Join(opts.OutputDir, fmt.Sprintf("expenses_by_category_%s.png", month))
		if err := chart.Render(report.Breakdown(summary), month, chartPath); err != nil {
			logger.WithError(err).Warn("Chart rendering failed, continuing without chart")
		} else {
			result.Artifacts = append(result.Artifacts, chartPath)
		}
	}

	logger.WithFields(
		logging.Field{Key: logging.FieldMonth, Value: month.String()},
		logging.Field{Key: "income", Value: summary.TotalIncome.StringFixed(2)},
		logging.Field{Key: "expenses", Value: summary.TotalExpense.StringFixed(2)},
		logging.Field{Key: "savings_rate", Value: summary.SavingsRate.Mul(oneHundred).StringFixed(1) + "%"},
	).Info("Report generation complete")

	return result, nil
}

// resolveMonth parses the requested month or falls back to the latest
// month present in the data.
func resolveMonth(requested string, transactions []models.Transaction) (models.Month, error) {
	if requested != "" {
		month, err := models.ParseMonth(requested)
		if err != nil {
			return models.Month{}, &reporterror.ConfigurationError{Subject: "--month", Reason: err.Error()}
		}
		return month, nil
	}
	return aggregator.LatestMonth(transactions)
}
