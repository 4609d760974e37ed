package chart

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"budgeteer/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	breakdown := []models.CategoryTotal{
		{Category: "Shopping", Amount: decimal.RequireFromString("120.99")},
		{Category: "Dining", Amount: decimal.RequireFromString("8.25")},
	}
	month := models.Month{Year: 2025, Month: time.July}
	path := filepath.Join(t.TempDir(), "expenses.png")

	err := Render(breakdown, month, path)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	// PNG magic bytes
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(data), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data[:4])
}

func TestRenderNoExpenses(t *testing.T) {
	month := models.Month{Year: 2025, Month: time.July}
	path := filepath.Join(t.TempDir(), "expenses.png")

	err := Render(nil, month, path)
	assert.ErrorIs(t, err, ErrNoExpenses)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
