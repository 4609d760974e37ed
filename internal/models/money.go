package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a string amount into a decimal.Decimal.
// It tolerates the formatting noise found in bank exports: surrounding
// whitespace, currency symbols, thousands separators and parenthesized
// negatives. A value that is not numeric after cleanup is an error.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	amount := strings.TrimSpace(amountStr)
	if amount == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}

	// Accounting style: (12.34) means -12.34
	if strings.HasPrefix(amount, "(") && strings.HasSuffix(amount, ")") {
		amount = "-" + strings.TrimSuffix(strings.TrimPrefix(amount, "("), ")")
	}

	amount = strings.ReplaceAll(amount, " ", "")
	amount = strings.ReplaceAll(amount, "$", "")
	amount = strings.ReplaceAll(amount, "€", "")
	amount = strings.ReplaceAll(amount, "£", "")
	// Thousands separators
	amount = strings.ReplaceAll(amount, ",", "")
	amount = strings.ReplaceAll(amount, "'", "")

	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("not a numeric amount: %q", amountStr)
	}
	return dec, nil
}
