// Package config provides Viper-based hierarchical configuration management
package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. CO2_LOG_LEVEL.
const EnvPrefix = "CO2"

// LogConfig selects the logrus level and formatter.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// CSVConfig controls delimited-text reading and writing.
type CSVConfig struct {
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
}

// FilesConfig holds the default table locations.
type FilesConfig struct {
	Factors  string `mapstructure:"factors" yaml:"factors"`
	Invoices string `mapstructure:"invoices" yaml:"invoices"`
	Output   string `mapstructure:"output" yaml:"output"`
}

// MatchingConfig tunes the fuzzy tier.
type MatchingConfig struct {
	FuzzyEnabled bool    `mapstructure:"fuzzy_enabled" yaml:"fuzzy_enabled"`
	FuzzyCutoff  float64 `mapstructure:"fuzzy_cutoff" yaml:"fuzzy_cutoff"`
}

// ReportConfig selects how the summary is printed.
type ReportConfig struct {
	Format string `mapstructure:"format" yaml:"format"`
	Styled bool   `mapstructure:"styled" yaml:"styled"`
}

// ExportConfig controls the enriched CSV export.
type ExportConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
}

// Config represents the complete application configuration
type Config struct {
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
	CSV      CSVConfig      `mapstructure:"csv" yaml:"csv"`
	Files    FilesConfig    `mapstructure:"files" yaml:"files"`
	Matching MatchingConfig `mapstructure:"matching" yaml:"matching"`
	Report   ReportConfig   `mapstructure:"report" yaml:"report"`
	Export   ExportConfig   `mapstructure:"export" yaml:"export"`
}

var reportFormats = []string{"text", "json", "yaml"}

// InitializeConfig loads configuration from defaults, the optional
// config.yaml and CO2_* environment variables, in increasing precedence.
func InitializeConfig() (*Config, error) {
	return LoadConfig("")
}

// LoadConfig is InitializeConfig with an explicit config file. When
// configFile is set it must exist and parse.
func LoadConfig(configFile string) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.co2-csv")
		v.AddConfigPath(".co2-csv")
		v.AddConfigPath(".")
	}

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional unless given explicitly)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("files.factors", "emission_factors.csv")
	v.SetDefault("files.invoices", "invoices.csv")
	v.SetDefault("files.output", "invoice_with_co2_results.csv")

	v.SetDefault("matching.fuzzy_enabled", true)
	v.SetDefault("matching.fuzzy_cutoff", 0.7)

	v.SetDefault("report.format", "text")
	v.SetDefault("report.styled", true)

	v.SetDefault("export.enabled", true)
}

// Validate checks the configuration after flags have been applied.
func (c *Config) Validate() error {
	return validateConfig(c)
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if utf8.RuneCountInString(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	if config.Matching.FuzzyCutoff <= 0.0 || config.Matching.FuzzyCutoff > 1.0 {
		return fmt.Errorf("matching.fuzzy_cutoff must be in (0.0, 1.0], got: %f", config.Matching.FuzzyCutoff)
	}

	if !isReportFormat(config.Report.Format) {
		return fmt.Errorf("invalid report format: %s (must be one of %v)", config.Report.Format, reportFormats)
	}

	return nil
}

func isReportFormat(format string) bool {
	for _, f := range reportFormats {
		if f == format {
			return true
		}
	}
	return false
}

// DelimiterRune returns the configured CSV delimiter as a rune.
func (c *Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.CSV.Delimiter)
	return r
}
