// Package loader reads bank transaction exports from CSV files into
// Transaction records. Column names are resolved case-insensitively and
// common header variants (posted date, memo, debit, ...) are accepted.
package loader

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"budgeteer/internal/dateutils"
	"budgeteer/internal/logging"
	"budgeteer/internal/models"
	"budgeteer/internal/reporterror"

	"github.com/gocarina/gocsv"
)

// Options controls how a CSV export is interpreted.
type Options struct {
	// Invert flips the sign of every parsed amount, for banks that
	// export expenses as positive numbers.
	Invert bool
	// SkipBadRows switches the malformed-row policy from fail-fast to
	// collect-and-warn.
	SkipBadRows bool
}

// csvRow is the raw shape of one input row. Date and amount stay
// strings here; parsing them is where row errors are detected.
type csvRow struct {
	Date        string `csv:"date"`
	Description string `csv:"description"`
	Amount      string `csv:"amount"`
}

// requiredColumns must all be present (after normalization) in the header.
var requiredColumns = []string{"date", "description", "amount"}

// columnAliases maps common header variants to the canonical column names.
var columnAliases = map[string]string{
	"posted date":      "date",
	"transaction date": "date",
	"details":          "description",
	"memo":             "description",
	"amount (usd)":     "amount",
	"debit":            "amount",
	"credit":           "amount",
}

// NormalizeColumn lowercases, trims and alias-resolves a header name.
func NormalizeColumn(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := columnAliases[normalized]; ok {
		return canonical
	}
	return normalized
}

func init() {
	gocsv.SetHeaderNormalizer(NormalizeColumn)
}

// Loader reads transaction CSV exports.
type Loader struct {
	logger logging.Logger
}

// New creates a Loader with the given logger.
func New(logger logging.Logger) *Loader {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Loader{logger: logger}
}

// Load reads the CSV file at filePath and returns its transactions in
// file order. The whole file is read up front; re-running Load on the
// same file yields the same sequence.
func (l *Loader) Load(filePath string, opts Options) ([]models.Transaction, error) {
	l.logger.WithField(logging.FieldFile, filePath).Info("Reading transaction CSV")

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, &reporterror.IOError{Path: filePath, Op: "read", Err: err}
	}

	if err := validateHeader(filePath, data); err != nil {
		return nil, err
	}

	var rows []csvRow
	if err := gocsv.UnmarshalBytes(data, &rows); err != nil {
		return nil, fmt.Errorf("error parsing CSV file %s: %w", filePath, err)
	}

	transactions := make([]models.Transaction, 0, len(rows))
	skipped := 0
	for i, row := range rows {
		// 1-based line number in the file, accounting for the header row.
		line := i + 2

		tx, err := l.buildTransaction(row, line, opts)
		if err != nil {
			if !opts.SkipBadRows {
				return nil, err
			}
			l.logger.WithError(err).WithField(logging.FieldRow, line).Warn("Skipping malformed row")
			skipped++
			continue
		}
		transactions = append(transactions, tx)
	}

	l.logger.WithFields(
		logging.Field{Key: logging.FieldCount, Value: len(transactions)},
		logging.Field{Key: "skipped", Value: skipped},
	).Info("Loaded transactions")

	return transactions, nil
}

// buildTransaction converts one raw row into a Transaction.
func (l *Loader) buildTransaction(row csvRow, line int, opts Options) (models.Transaction, error) {
	date, _, err := dateutils.ParseDate(row.Date)
	if err != nil {
		return models.Transaction{}, &reporterror.ParseError{
			Row:   line,
			Field: "date",
			Value: row.Date,
			Err:   err,
		}
	}

	amount, err := models.ParseAmount(row.Amount)
	if err != nil {
		return models.Transaction{}, &reporterror.ParseError{
			Row:   line,
			Field: "amount",
			Value: row.Amount,
			Err:   err,
		}
	}
	if opts.Invert {
		amount = amount.Neg()
	}

	return models.Transaction{
		Date:        date,
		Description: strings.TrimSpace(row.Description),
		Amount:      amount,
	}, nil
}

// validateHeader checks that the required columns are present in the
// file's header row, after normalization and alias resolution.
func validateHeader(filePath string, data []byte) error {
	reader := csv.NewReader(bytes.NewReader(data))
	header, err := reader.Read()
	if err == io.EOF {
		return &reporterror.ConfigurationError{
			Subject: filePath,
			Reason:  "file is empty, expected a header row",
		}
	}
	if err != nil {
		return fmt.Errorf("error reading CSV header from %s: %w", filePath, err)
	}

	seen := make(map[string]bool, len(header))
	for _, name := range header {
		seen[NormalizeColumn(name)] = true
	}

	var missing []string
	for _, required := range requiredColumns {
		if !seen[required] {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return &reporterror.ConfigurationError{
			Subject: filePath,
			Reason:  fmt.Sprintf("missing required column(s): %s (matching is case-insensitive)", strings.Join(missing, ", ")),
		}
	}

	return nil
}
