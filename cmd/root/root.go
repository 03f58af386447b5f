// Package root contains the root command for the application
package root

import (
	"fmt"

	"fjacquet/co2-csv/internal/config"
	"fjacquet/co2-csv/internal/container"
	"fjacquet/co2-csv/internal/logging"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags shared by every command
type CommonFlags struct {
	ConfigFile   string
	LogLevel     string
	LogFormat    string
	CSVDelimiter string
}

var (
	// Log is the shared logger instance for commands
	Log = logging.NewLogrusAdapter("info", "text")

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "co2-csv",
		Short: "Estimate the carbon footprint of invoice line items.",
		Long: `co2-csv matches the free-text description of each purchased item against a
table of emission factors, computes the CO2 footprint of every line and
prints a summary report. Without a subcommand it runs 'calculate' with the
configured default files.`,
		SilenceUsage:       true,
		PersistentPreRunE:  initializeContainer,
		PersistentPostRunE: closeContainer,
	}

	// SharedFlags holds the persistent flag values.
	SharedFlags = CommonFlags{}

	appContainer *container.Container
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVar(&SharedFlags.ConfigFile, "config", "", "Config file (default: config.yaml in $HOME/.co2-csv, .co2-csv or .)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogFormat, "log-format", "", "Log format (text, json)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.CSVDelimiter, "csv-delimiter", "", "CSV field delimiter")
}

// LoadConfig reads the configuration and applies the persistent flags on top.
func LoadConfig(flags CommonFlags) (*config.Config, error) {
	cfg, err := config.LoadConfig(flags.ConfigFile)
	if err != nil {
		return nil, err
	}

	if flags.LogLevel != "" {
		cfg.Log.Level = flags.LogLevel
	}
	if flags.LogFormat != "" {
		cfg.Log.Format = flags.LogFormat
	}
	if flags.CSVDelimiter != "" {
		cfg.CSV.Delimiter = flags.CSVDelimiter
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func initializeContainer(cmd *cobra.Command, args []string) error {
	config.LoadEnv(Log)

	cfg, err := LoadConfig(SharedFlags)
	if err != nil {
		return err
	}

	c, err := container.NewContainer(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	SetContainer(c)
	return nil
}

func closeContainer(cmd *cobra.Command, args []string) error {
	if appContainer == nil {
		return nil
	}
	return appContainer.Close()
}

// SetContainer installs the container used by subcommands. Tests call it to
// bypass configuration loading.
func SetContainer(c *container.Container) {
	appContainer = c
	if c != nil {
		Log = c.GetLogger()
	}
}

// GetContainer returns the container built for the current invocation.
func GetContainer() *container.Container {
	return appContainer
}
