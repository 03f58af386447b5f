package main

import (
	"fmt"
	"os"
	"strings"

	"fjacquet/co2-csv/cmd/calculate"
	"fjacquet/co2-csv/cmd/match"
	"fjacquet/co2-csv/cmd/root"
	"fjacquet/co2-csv/cmd/summary"
	"fjacquet/co2-csv/internal/config"
	"fjacquet/co2-csv/internal/logging"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// 1. Load environment variables silently first (no logging yet)
	loadEnvSilently()

	// 2. The bootstrap logger honors CO2_LOG_LEVEL until the config is loaded
	root.Log = logging.NewLogrusAdapter(configureLogLevelDirectly().String(), "text")

	// 3. Initialize root command
	root.Init()

	// 4. A bare invocation runs calculate with the same flags
	calculate.RegisterFlags(root.Cmd)
	root.Cmd.RunE = calculate.Run

	// 5. Add all subcommands
	root.Cmd.AddCommand(calculate.Cmd)
	root.Cmd.AddCommand(match.Cmd)
	root.Cmd.AddCommand(summary.Cmd)
}

// loadEnvSilently loads .env before any logger exists, so nothing is logged
func loadEnvSilently() {
	if envFile := config.FindEnvFile(); envFile != "" {
		_ = godotenv.Load(envFile)
	}
}

// configureLogLevelDirectly sets the global logrus level from CO2_LOG_LEVEL
// and returns it
func configureLogLevelDirectly() logrus.Level {
	logLevelStr := os.Getenv("CO2_LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}

	logrus.SetLevel(logLevel)
	return logLevel
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
