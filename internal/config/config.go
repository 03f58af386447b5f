package config

import (
	"os"
	"path/filepath"

	"fjacquet/co2-csv/internal/logging"

	"github.com/joho/godotenv"
)

// FindEnvFile returns the .env file in the working directory or its parent,
// or "" when there is none.
func FindEnvFile() string {
	for _, candidate := range []string{".env", filepath.Join("..", ".env")} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// LoadEnv loads environment variables from a .env file if one exists.
// Variables already set in the environment win. It returns the file used.
func LoadEnv(logger logging.Logger) string {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}

	envFile := FindEnvFile()
	if envFile == "" {
		logger.Debug("No .env file found, using environment variables")
		return ""
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.WithError(err).Warn("Error loading .env file")
		return ""
	}
	logger.Debug("Loaded environment variables", logging.F(logging.FieldFile, envFile))
	return envFile
}

// NewLogger builds the application logger from the log section.
func NewLogger(cfg *Config) logging.Logger {
	return logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
}
