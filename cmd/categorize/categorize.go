// Package categorize exposes one-off categorization of a single
// description against the loaded rule set, for rule debugging.
package categorize

import (
	"fmt"

	"budgeteer/cmd/root"
	"budgeteer/internal/categorizer"
	"budgeteer/internal/logging"
	"budgeteer/internal/store"

	"github.com/spf13/cobra"
)

var description string

// Cmd represents the categorize command.
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Categorize a single transaction description",
	Long: `Categorize a single transaction description against the configured
keyword rules and print the resulting category. Useful when tuning a
categories file.`,
	RunE: categorizeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&description, "description", "d", "", "Transaction description to categorize")
	_ = Cmd.MarkFlagRequired("description")
}

func categorizeFunc(cmd *cobra.Command, args []string) error {
	ruleStore := store.NewRuleStore(root.CategoriesFile, "", root.Log)
	rules, err := ruleStore.LoadRules()
	if err != nil {
		return err
	}
	settings, err := ruleStore.LoadSettings()
	if err != nil {
		return err
	}

	cat := categorizer.New(rules, settings.IncomeKeywords, root.Log)
	category := cat.Categorize(description)

	root.Log.WithFields(
		logging.Field{Key: logging.FieldCategory, Value: category},
		logging.Field{Key: "income_like", Value: cat.IsIncomeLike(description)},
	).Debug("Categorized description")

	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", category)
	return nil
}
