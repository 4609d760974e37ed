package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfigDefaults(t *testing.T) {
	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "reports", cfg.Output.Directory)
	assert.False(t, cfg.Loader.SkipBadRows)
	assert.True(t, cfg.Chart.Enabled)
	assert.Equal(t, 10, cfg.Report.TopCategories)
}

func TestInitializeConfigEnvOverride(t *testing.T) {
	t.Setenv("BUDGETEER_LOG_LEVEL", "debug")
	t.Setenv("BUDGETEER_OUTPUT_DIRECTORY", "out")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "out", cfg.Output.Directory)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
	}{
		{name: "valid defaults", mutate: func(c *Config) {}},
		{
			name:        "bad log level",
			mutate:      func(c *Config) { c.Log.Level = "verbose" },
			expectError: true,
		},
		{
			name:        "bad log format",
			mutate:      func(c *Config) { c.Log.Format = "xml" },
			expectError: true,
		},
		{
			name:        "top categories below one",
			mutate:      func(c *Config) { c.Report.TopCategories = 0 },
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.Log.Level = "info"
			cfg.Log.Format = "text"
			cfg.Report.TopCategories = 10
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigureLogging(t *testing.T) {
	cfg := &Config{}
	cfg.Log.Level = "debug"
	cfg.Log.Format = "json"

	logger := ConfigureLogging(cfg)
	assert.NotNil(t, logger)
}
