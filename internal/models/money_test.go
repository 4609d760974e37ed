package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    string
		expectError bool
	}{
		{name: "plain decimal", input: "4.50", expected: "4.5"},
		{name: "negative", input: "-4.50", expected: "-4.5"},
		{name: "integer", input: "2000", expected: "2000"},
		{name: "surrounding whitespace", input: "  12.30 ", expected: "12.3"},
		{name: "dollar symbol", input: "$49.99", expected: "49.99"},
		{name: "euro symbol", input: "€15.00", expected: "15"},
		{name: "thousands separator", input: "2,000.00", expected: "2000"},
		{name: "apostrophe separator", input: "1'250.50", expected: "1250.5"},
		{name: "accounting negative", input: "(12.34)", expected: "-12.34"},
		{name: "empty", input: "", expectError: true},
		{name: "whitespace only", input: "   ", expectError: true},
		{name: "not a number", input: "abc", expectError: true},
		{name: "currency only", input: "$", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			expected := decimal.RequireFromString(tt.expected)
			assert.True(t, expected.Equal(got), "expected %s, got %s", expected, got)
		})
	}
}

func TestTransactionSignClassification(t *testing.T) {
	income := Transaction{Amount: decimal.RequireFromString("100.00")}
	expense := Transaction{Amount: decimal.RequireFromString("-4.50")}
	neutral := Transaction{Amount: decimal.Zero}

	assert.True(t, income.IsIncome())
	assert.False(t, income.IsExpense())

	assert.True(t, expense.IsExpense())
	assert.False(t, expense.IsIncome())

	assert.False(t, neutral.IsIncome())
	assert.False(t, neutral.IsExpense())
}
