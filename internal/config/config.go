// Package config provides Viper-based hierarchical configuration management
// for the ambient application settings: logging, output locations and
// loader/report policies. The per-run report settings (currency, income
// keywords) live in the rule store, not here.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"budgeteer/internal/logging"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Output struct {
		Directory string `mapstructure:"directory" yaml:"directory"`
	} `mapstructure:"output" yaml:"output"`

	Loader struct {
		SkipBadRows bool `mapstructure:"skip_bad_rows" yaml:"skip_bad_rows"`
	} `mapstructure:"loader" yaml:"loader"`

	Chart struct {
		Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	} `mapstructure:"chart" yaml:"chart"`

	Report struct {
		TopCategories int `mapstructure:"top_categories" yaml:"top_categories"`
	} `mapstructure:"report" yaml:"report"`
}

var envOnce sync.Once

// LoadEnv loads environment variables from a .env file if one exists in
// the current directory or the project root.
func LoadEnv() {
	envOnce.Do(func() {
		envFile := ".env"
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			envFile = filepath.Join("..", ".env")
			if _, err := os.Stat(envFile); os.IsNotExist(err) {
				return
			}
		}
		_ = godotenv.Load(envFile)
	})
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then an optional budgeteer.yaml config file, then BUDGETEER_*
// environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("budgeteer")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.budgeteer")
	v.AddConfigPath(".")

	v.SetEnvPrefix("BUDGETEER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
		// No config file is fine, defaults and env vars apply.
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("output.directory", "reports")
	v.SetDefault("loader.skip_bad_rows", false)
	v.SetDefault("chart.enabled", true)
	v.SetDefault("report.top_categories", 10)
}

// validateConfig validates the configuration values.
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.Report.TopCategories < 1 {
		return fmt.Errorf("report.top_categories must be at least 1, got: %d", config.Report.TopCategories)
	}

	return nil
}

// ConfigureLogging builds the application logger from the Config struct
// and installs it as the process-wide default.
func ConfigureLogging(config *Config) logging.Logger {
	logger := logging.NewLogrusAdapter(strings.ToLower(config.Log.Level), strings.ToLower(config.Log.Format))
	logging.SetLogger(logger)
	return logger
}
