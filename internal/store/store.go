// Package store provides loading of the category rule set and the
// report settings from YAML files, with built-in defaults when no file
// is supplied.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"budgeteer/internal/logging"
	"budgeteer/internal/models"
	"budgeteer/internal/reporterror"

	"gopkg.in/yaml.v3"
)

// RuleStore manages loading of category rules and report settings.
// Both are loaded once per run and immutable afterwards.
type RuleStore struct {
	CategoriesFile string
	SettingsFile   string
	logger         logging.Logger
}

// NewRuleStore creates a store reading from the given file paths. Either
// path may be empty, in which case the conventional filename is looked up
// and the built-in defaults apply when nothing is found.
func NewRuleStore(categoriesFile, settingsFile string, logger logging.Logger) *RuleStore {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &RuleStore{
		CategoriesFile: categoriesFile,
		SettingsFile:   settingsFile,
		logger:         logger,
	}
}

// FindConfigFile looks for a configuration file in standard locations:
// the path itself, ./config/, and ~/.config/budgeteer/.
func FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".config", "budgeteer", filename))
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadRules loads the ordered category rule set. Rules keep the file
// order: categories in declaration order, keywords in listed order, so
// the first matching rule always wins deterministically.
func (s *RuleStore) LoadRules() ([]models.CategoryRule, error) {
	data, source, err := s.readOrDefault(s.CategoriesFile, "categories.yml", DefaultCategoriesYAML)
	if err != nil {
		return nil, err
	}

	var cfg models.CategoriesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &reporterror.ConfigurationError{
			Subject: source,
			Reason:  fmt.Sprintf("malformed category rules: %v", err),
		}
	}
	if len(cfg.Categories) == 0 {
		return nil, &reporterror.ConfigurationError{
			Subject: source,
			Reason:  "no categories defined",
		}
	}

	var rules []models.CategoryRule
	for _, category := range cfg.Categories {
		for _, keyword := range category.Keywords {
			rules = append(rules, models.CategoryRule{
				Keyword:  keyword,
				Category: category.Name,
			})
		}
	}

	s.logger.WithFields(
		logging.Field{Key: "source", Value: source},
		logging.Field{Key: logging.FieldCount, Value: len(rules)},
	).Debug("Loaded category rules")

	return rules, nil
}

// LoadSettings loads the report settings (currency, income keywords).
func (s *RuleStore) LoadSettings() (models.Settings, error) {
	data, source, err := s.readOrDefault(s.SettingsFile, "config.yml", DefaultSettingsYAML)
	if err != nil {
		return models.Settings{}, err
	}

	var settings models.Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return models.Settings{}, &reporterror.ConfigurationError{
			Subject: source,
			Reason:  fmt.Sprintf("malformed settings: %v", err),
		}
	}
	if settings.Currency == "" {
		settings.Currency = "USD"
	}

	s.logger.WithField("source", source).Debug("Loaded report settings")
	return settings, nil
}

// readOrDefault resolves a config file and returns its contents, falling
// back to the built-in default document when no file is found. An
// explicitly requested file that cannot be read is an error; a missing
// conventional file is not.
func (s *RuleStore) readOrDefault(requested, conventional, defaultDoc string) ([]byte, string, error) {
	filename := requested
	explicit := requested != ""
	if !explicit {
		filename = conventional
	}

	path, err := FindConfigFile(filename)
	if err != nil {
		if explicit {
			return nil, "", &reporterror.IOError{Path: filename, Op: "open", Err: err}
		}
		s.logger.WithField("file", filename).Debug("No config file found, using built-in defaults")
		return []byte(defaultDoc), "built-in defaults", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", &reporterror.IOError{Path: path, Op: "read", Err: err}
	}
	return data, path, nil
}
