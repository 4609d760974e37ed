// Package root contains the root command for the application.
package root

import (
	"budgeteer/internal/config"
	"budgeteer/internal/logging"
	"budgeteer/internal/pipeline"

	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands.
	Log logging.Logger = logging.GetLogger()

	// AppConfig holds the ambient application configuration, loaded in
	// the persistent pre-run so every command sees the same settings.
	AppConfig *config.Config

	// Flags shared with subcommands.
	CategoriesFile string

	monthFlag   string
	settingsFlg string
	outputDir   string
	invert      bool
	skipBadRows bool
	noChart     bool

	// Cmd is the root command. Given a CSV path it runs the full
	// report pipeline; subcommands cover auxiliary operations.
	Cmd = &cobra.Command{
		Use:   "budgeteer <csv_path>",
		Short: "Categorize bank transactions and build a monthly financial report.",
		Long: `budgeteer reads a bank transaction CSV export, assigns a spending
category to every transaction using configurable keyword rules, and
writes a monthly summary: income, expenses, savings, savings rate and a
per-category expense breakdown, as CSV and Markdown artifacts plus an
optional chart.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				return err
			}
			AppConfig = cfg
			Log = config.ConfigureLogging(cfg)
			return nil
		},
		RunE: runReport,
	}
)

// Init initializes the root command flags.
func Init() {
	Cmd.Flags().StringVar(&monthFlag, "month", "", "Target month as YYYY-MM (default: latest month in the data)")
	Cmd.Flags().StringVar(&settingsFlg, "config", "", "Path to the report settings file (currency, income keywords)")
	Cmd.Flags().StringVar(&outputDir, "output-dir", "", "Directory for report artifacts (default from configuration)")
	Cmd.Flags().BoolVar(&invert, "invert", false, "Flip the sign of every parsed amount")
	Cmd.Flags().BoolVar(&skipBadRows, "skip-bad-rows", false, "Warn and skip rows that fail to parse instead of aborting")
	Cmd.Flags().BoolVar(&noChart, "no-chart", false, "Skip the expense chart")

	Cmd.PersistentFlags().StringVar(&CategoriesFile, "categories", "", "Path to the keyword-to-category rule file")
}

func runReport(cmd *cobra.Command, args []string) error {
	opts := pipeline.Options{
		CSVPath:        args[0],
		Month:          monthFlag,
		CategoriesFile: CategoriesFile,
		SettingsFile:   settingsFlg,
		OutputDir:      outputDir,
		Invert:         invert,
		SkipBadRows:    skipBadRows || AppConfig.Loader.SkipBadRows,
		NoChart:        noChart || !AppConfig.Chart.Enabled,
		TopCategories:  AppConfig.Report.TopCategories,
	}
	if opts.OutputDir == "" {
		opts.OutputDir = AppConfig.Output.Directory
	}

	_, err := pipeline.Run(opts, Log)
	return err
}
