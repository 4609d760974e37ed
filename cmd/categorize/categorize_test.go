package categorize

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"budgeteer/cmd/root"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategorizeWithDefaultRules(t *testing.T) {
	root.CategoriesFile = ""
	var out bytes.Buffer
	Cmd.SetOut(&out)

	require.NoError(t, Cmd.Flags().Set("description", "STARBUCKS STORE 0042"))
	require.NoError(t, categorizeFunc(Cmd, nil))

	assert.Equal(t, "Dining", strings.TrimSpace(out.String()))
}

func TestCategorizeUnmatchedDescription(t *testing.T) {
	root.CategoriesFile = ""
	var out bytes.Buffer
	Cmd.SetOut(&out)

	require.NoError(t, Cmd.Flags().Set("description", "Completely Unknown Merchant"))
	require.NoError(t, categorizeFunc(Cmd, nil))

	assert.Equal(t, "Uncategorized", strings.TrimSpace(out.String()))
}

func TestCategorizeWithCustomRules(t *testing.T) {
	categoriesPath := filepath.Join(t.TempDir(), "categories.yml")
	require.NoError(t, os.WriteFile(categoriesPath, []byte(`categories:
  - name: Coworking
    keywords: [wework]
`), 0o644))

	root.CategoriesFile = categoriesPath
	defer func() { root.CategoriesFile = "" }()

	var out bytes.Buffer
	Cmd.SetOut(&out)

	require.NoError(t, Cmd.Flags().Set("description", "WEWORK MEMBERSHIP"))
	require.NoError(t, categorizeFunc(Cmd, nil))

	assert.Equal(t, "Coworking", strings.TrimSpace(out.String()))
}
