// Package container provides dependency injection for the co2-csv
// application. It centralizes the creation and wiring of all application
// dependencies, making them explicit and testable.
package container

import (
	"fmt"

	"fjacquet/co2-csv/internal/aggregator"
	"fjacquet/co2-csv/internal/calculator"
	"fjacquet/co2-csv/internal/config"
	"fjacquet/co2-csv/internal/factors"
	"fjacquet/co2-csv/internal/logging"
	"fjacquet/co2-csv/internal/matcher"
	"fjacquet/co2-csv/internal/report"
	"fjacquet/co2-csv/internal/store"

	"github.com/google/uuid"
)

// Container holds all application dependencies and provides methods to
// access them. It is immutable after creation.
//
// The matcher is not part of the container: it depends on a reference table
// chosen per command, so it is built on demand by LoadMatcher.
type Container struct {
	runID      string
	logger     logging.Logger
	config     *config.Config
	store      store.Store
	aggregator *aggregator.Aggregator
	reporter   *report.Generator
}

// NewContainer creates and wires all application dependencies.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	logger := config.NewLogger(cfg)
	return newContainer(cfg, logger, store.NewFileStore(cfg.DelimiterRune(), nil))
}

// NewContainerWithStore wires the container around an existing store and
// logger. Tests use it with store.MockStore and logging.MockLogger.
func NewContainerWithStore(cfg *config.Config, st store.Store, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if st == nil {
		return nil, fmt.Errorf("store cannot be nil")
	}
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return newContainer(cfg, logger, st)
}

func newContainer(cfg *config.Config, logger logging.Logger, st store.Store) (*Container, error) {
	runID := uuid.New().String()
	logger = logger.WithField(logging.FieldRunID, runID)

	if fs, ok := st.(*store.FileStore); ok {
		st = store.NewFileStore(fs.Delimiter(), logger)
	}

	logger.Debug("Container initialized successfully",
		logging.F("fuzzy_enabled", cfg.Matching.FuzzyEnabled),
		logging.F("fuzzy_cutoff", cfg.Matching.FuzzyCutoff),
		logging.F(logging.FieldDelimiter, cfg.CSV.Delimiter))

	return &Container{
		runID:      runID,
		logger:     logger,
		config:     cfg,
		store:      st,
		aggregator: aggregator.New(logger),
		reporter:   report.NewGenerator(logger, cfg.Report.Styled),
	}, nil
}

// LoadMatcher reads the reference table at path and builds a matcher over
// it with the configured matching options.
func (c *Container) LoadMatcher(path string) (*matcher.Matcher, error) {
	records, err := c.store.LoadFactors(path)
	if err != nil {
		return nil, err
	}

	index := factors.NewIndex(records, c.logger)
	if index.Len() == 0 {
		c.logger.Warn("Reference table has no usable rows; every line will be unmatched",
			logging.F(logging.FieldFile, path))
	}

	return matcher.New(index, c.MatcherOptions(), c.logger), nil
}

// MatcherOptions maps the matching section of the config.
func (c *Container) MatcherOptions() matcher.Options {
	return matcher.Options{
		FuzzyEnabled: c.config.Matching.FuzzyEnabled,
		FuzzyCutoff:  c.config.Matching.FuzzyCutoff,
	}
}

// NewCalculator returns a calculator backed by m.
func (c *Container) NewCalculator(m *matcher.Matcher) *calculator.Calculator {
	return calculator.New(m, c.logger)
}

// GetRunID returns the identifier attached to this run's logs and reports.
func (c *Container) GetRunID() string {
	return c.runID
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetStore returns the table store.
func (c *Container) GetStore() store.Store {
	return c.store
}

// GetAggregator returns the summary aggregator.
func (c *Container) GetAggregator() *aggregator.Aggregator {
	return c.aggregator
}

// GetReporter returns the report generator.
func (c *Container) GetReporter() *report.Generator {
	return c.reporter
}

// Close performs cleanup of container resources.
func (c *Container) Close() error {
	c.logger.Debug("Container closed")
	return nil
}
