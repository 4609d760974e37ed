// Package report renders the monthly summary into its output artifacts:
// a categorized-transactions CSV, a category-breakdown CSV and a
// Markdown narrative report. Output is deterministic so re-running on
// identical input overwrites artifacts with byte-identical content.
package report

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"

	"budgeteer/internal/fileutils"
	"budgeteer/internal/logging"
	"budgeteer/internal/models"
	"budgeteer/internal/reporterror"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// ReportFilePerm is the permission for generated report files.
const ReportFilePerm = 0o644

// Emitter writes report artifacts for one target month under an output
// directory.
type Emitter struct {
	outputDir string
	currency  string
	topN      int
	logger    logging.Logger
}

// NewEmitter creates an Emitter. topN caps the category list in the
// narrative report; the breakdown CSV always carries every category.
func NewEmitter(outputDir, currency string, topN int, logger logging.Logger) *Emitter {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Emitter{
		outputDir: outputDir,
		currency:  currency,
		topN:      topN,
		logger:    logger,
	}
}

// Breakdown flattens the category totals into rows ordered by total
// descending, ties broken by category name ascending. The fixed order
// keeps emission idempotent.
func Breakdown(summary models.MonthlySummary) []models.CategoryTotal {
	rows := make([]models.CategoryTotal, 0, len(summary.CategoryTotals))
	for category, amount := range summary.CategoryTotals {
		rows = append(rows, models.CategoryTotal{Category: category, Amount: amount})
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].Amount.Equal(rows[j].Amount) {
			return rows[i].Amount.GreaterThan(rows[j].Amount)
		}
		return rows[i].Category < rows[j].Category
	})
	return rows
}

// breakdownRow is the CSV shape of one breakdown entry.
type breakdownRow struct {
	Category string `csv:"category"`
	Amount   string `csv:"amount"`
}

// transactionRow is the CSV shape of one categorized transaction.
type transactionRow struct {
	Date        string `csv:"date"`
	Description string `csv:"description"`
	Amount      string `csv:"amount"`
	Category    string `csv:"category"`
}

// WriteBreakdownCSV writes the category breakdown artifact and returns
// its path.
func (e *Emitter) WriteBreakdownCSV(summary models.MonthlySummary) (string, error) {
	rows := make([]breakdownRow, 0, len(summary.CategoryTotals))
	for _, entry := range Breakdown(summary) {
		rows = append(rows, breakdownRow{
			Category: entry.Category,
			Amount:   entry.Amount.StringFixed(2),
		})
	}

	data, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		return "", fmt.Errorf("error marshalling category breakdown: %w", err)
	}

	path := filepath.Join(e.outputDir, fmt.Sprintf("category_expenses_%s.csv", summary.Month))
	if err := fileutils.WriteFile(path, data, ReportFilePerm); err != nil {
		return "", &reporterror.IOError{Path: path, Op: "write", Err: err}
	}

	e.logger.WithField(logging.FieldFile, path).Info("Wrote category breakdown")
	return path, nil
}

// WriteTransactionsCSV writes the categorized transactions for the
// target month and returns the artifact path.
func (e *Emitter) WriteTransactionsCSV(transactions []models.Transaction, month models.Month) (string, error) {
	rows := make([]transactionRow, 0, len(transactions))
	for _, tx := range transactions {
		if !month.Contains(tx.Date) {
			continue
		}
		rows = append(rows, transactionRow{
			Date:        tx.Date.Format("2006-01-02"),
			Description: tx.Description,
			Amount:      tx.Amount.StringFixed(2),
			Category:    tx.Category,
		})
	}

	data, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		return "", fmt.Errorf("error marshalling transactions: %w", err)
	}

	path := filepath.Join(e.outputDir, fmt.Sprintf("transactions_%s.csv", month))
	if err := fileutils.WriteFile(path, data, ReportFilePerm); err != nil {
		return "", &reporterror.IOError{Path: path, Op: "write", Err: err}
	}

	e.logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(rows)},
	).Info("Wrote categorized transactions")
	return path, nil
}

// RenderMarkdown produces the narrative Markdown report for a summary.
// Pure function of its inputs.
func (e *Emitter) RenderMarkdown(summary models.MonthlySummary) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "# Monthly Report - %s\n\n", summary.Month)
	fmt.Fprintf(&buf, "- **Income:** %s %s\n", e.currency, summary.TotalIncome.StringFixed(2))
	fmt.Fprintf(&buf, "- **Expenses:** %s %s\n", e.currency, summary.TotalExpense.StringFixed(2))
	fmt.Fprintf(&buf, "- **Savings:** %s %s\n", e.currency, summary.NetSavings.StringFixed(2))
	fmt.Fprintf(&buf, "- **Savings Rate:** %s%%\n", summary.SavingsRate.Mul(oneHundred).StringFixed(1))

	buf.WriteString("\n## Top Expense Categories\n\n")
	for i, entry := range Breakdown(summary) {
		if i >= e.topN {
			break
		}
		fmt.Fprintf(&buf, "- %s: %s %s\n", entry.Category, e.currency, entry.Amount.StringFixed(2))
	}

	buf.WriteString("\n## Notes\n")
	buf.WriteString("- Categorization is keyword-based; adjust `categories.yml` as needed.\n")
	buf.WriteString("- Use `--invert` if your bank exports expenses as positive numbers.\n")

	return buf.Bytes()
}

// WriteMarkdown writes the narrative report artifact and returns its path.
func (e *Emitter) WriteMarkdown(summary models.MonthlySummary) (string, error) {
	path := filepath.Join(e.outputDir, fmt.Sprintf("monthly_report_%s.md", summary.Month))
	if err := fileutils.WriteFile(path, e.RenderMarkdown(summary), ReportFilePerm); err != nil {
		return "", &reporterror.IOError{Path: path, Op: "write", Err: err}
	}

	e.logger.WithField(logging.FieldFile, path).Info("Wrote monthly report")
	return path, nil
}
