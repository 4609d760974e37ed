package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"budgeteer/internal/logging"
	"budgeteer/internal/models"
	"budgeteer/internal/reporterror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadRulesFromFile(t *testing.T) {
	path := writeFile(t, "categories.yml", `categories:
  - name: Dining
    keywords: [coffee, pizza]
  - name: Transport
    keywords: [uber]
`)

	rules, err := NewRuleStore(path, "", &logging.MockLogger{}).LoadRules()
	require.NoError(t, err)

	// Rule order follows file order: categories first, keywords within.
	assert.Equal(t, []models.CategoryRule{
		{Keyword: "coffee", Category: "Dining"},
		{Keyword: "pizza", Category: "Dining"},
		{Keyword: "uber", Category: "Transport"},
	}, rules)
}

func TestLoadRulesBuiltInDefaults(t *testing.T) {
	rules, err := NewRuleStore("", "", &logging.MockLogger{}).LoadRules()
	require.NoError(t, err)
	require.NotEmpty(t, rules)

	// First default rule comes from the Groceries category.
	assert.Equal(t, "Groceries", rules[0].Category)
	assert.Equal(t, "kroger", rules[0].Keyword)
}

func TestLoadRulesExplicitFileMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yml")

	_, err := NewRuleStore(missing, "", &logging.MockLogger{}).LoadRules()
	require.Error(t, err)

	var ioErr *reporterror.IOError
	assert.True(t, errors.As(err, &ioErr))
}

func TestLoadRulesMalformedYAML(t *testing.T) {
	path := writeFile(t, "categories.yml", "categories: [text\n")

	_, err := NewRuleStore(path, "", &logging.MockLogger{}).LoadRules()
	require.Error(t, err)

	var configErr *reporterror.ConfigurationError
	assert.True(t, errors.As(err, &configErr))
}

func TestLoadRulesEmptyRuleSet(t *testing.T) {
	path := writeFile(t, "categories.yml", "categories: []\n")

	_, err := NewRuleStore(path, "", &logging.MockLogger{}).LoadRules()
	require.Error(t, err)

	var configErr *reporterror.ConfigurationError
	assert.True(t, errors.As(err, &configErr))
}

func TestLoadSettingsFromFile(t *testing.T) {
	path := writeFile(t, "config.yml", `currency: EUR
income_keywords: [salary, bonus]
`)

	settings, err := NewRuleStore("", path, &logging.MockLogger{}).LoadSettings()
	require.NoError(t, err)

	assert.Equal(t, "EUR", settings.Currency)
	assert.Equal(t, []string{"salary", "bonus"}, settings.IncomeKeywords)
}

func TestLoadSettingsDefaults(t *testing.T) {
	settings, err := NewRuleStore("", "", &logging.MockLogger{}).LoadSettings()
	require.NoError(t, err)

	assert.Equal(t, "USD", settings.Currency)
	assert.Contains(t, settings.IncomeKeywords, "payroll")
}

func TestLoadSettingsCurrencyFallback(t *testing.T) {
	path := writeFile(t, "config.yml", "income_keywords: [salary]\n")

	settings, err := NewRuleStore("", path, &logging.MockLogger{}).LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "USD", settings.Currency)
}

func TestFindConfigFileAbsolutePath(t *testing.T) {
	path := writeFile(t, "categories.yml", "categories: []\n")

	found, err := FindConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, found)

	_, err = FindConfigFile(filepath.Join(t.TempDir(), "absent.yml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
