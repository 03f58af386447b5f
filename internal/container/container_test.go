package container

import (
	"errors"
	"testing"

	"fjacquet/co2-csv/internal/config"
	"fjacquet/co2-csv/internal/logging"
	"fjacquet/co2-csv/internal/models"
	"fjacquet/co2-csv/internal/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Log:      config.LogConfig{Level: "info", Format: "text"},
		CSV:      config.CSVConfig{Delimiter: ";"},
		Matching: config.MatchingConfig{FuzzyEnabled: true, FuzzyCutoff: 0.7},
		Report:   config.ReportConfig{Format: "text"},
		Export:   config.ExportConfig{Enabled: true},
	}
}

func TestNewContainer(t *testing.T) {
	tests := []struct {
		name        string
		config      *config.Config
		expectError bool
		errorMsg    string
	}{
		{
			name:        "nil config",
			config:      nil,
			expectError: true,
			errorMsg:    "configuration cannot be nil",
		},
		{
			name:   "valid config",
			config: testConfig(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewContainer(tt.config)
			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, c)

			assert.Equal(t, tt.config, c.GetConfig())
			assert.NotNil(t, c.GetLogger())
			assert.NotNil(t, c.GetAggregator())
			assert.NotNil(t, c.GetReporter())

			fs, ok := c.GetStore().(*store.FileStore)
			require.True(t, ok)
			assert.Equal(t, ';', fs.Delimiter())

			_, err = uuid.Parse(c.GetRunID())
			assert.NoError(t, err)
			assert.NoError(t, c.Close())
		})
	}
}

func TestNewContainer_UniqueRunIDs(t *testing.T) {
	a, err := NewContainer(testConfig())
	require.NoError(t, err)
	b, err := NewContainer(testConfig())
	require.NoError(t, err)
	assert.NotEqual(t, a.GetRunID(), b.GetRunID())
}

func TestNewContainerWithStore(t *testing.T) {
	_, err := NewContainerWithStore(testConfig(), nil, nil)
	assert.EqualError(t, err, "store cannot be nil")

	_, err = NewContainerWithStore(nil, &store.MockStore{}, nil)
	assert.EqualError(t, err, "configuration cannot be nil")
}

func TestLoadMatcher(t *testing.T) {
	logger := logging.NewMockLogger()
	st := &store.MockStore{Factors: []models.FactorRecord{
		{Category: "laptop", Factor: "250.0"},
		{Category: "coffee", Factor: "5.0"},
	}}
	c, err := NewContainerWithStore(testConfig(), st, logger)
	require.NoError(t, err)

	m, err := c.LoadMatcher("factors.csv")
	require.NoError(t, err)
	assert.Equal(t, []string{"substring", "fuzzy"}, m.Strategies())
	assert.Equal(t, 5.0, m.Match("Coffe"))

	lines := c.NewCalculator(m).Calculate([]models.InvoiceLine{
		models.NewInvoiceLine("item_description", "Laptop", "quantity", "2"),
	})
	require.Len(t, lines, 1)
	assert.Equal(t, 500.0, lines[0].TotalLineCO2)

	// every entry carries the run id
	for _, e := range logger.Entries() {
		v, ok := e.FieldValue(logging.FieldRunID)
		require.True(t, ok, e.Message)
		assert.Equal(t, c.GetRunID(), v)
	}
}

func TestLoadMatcher_FuzzyDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Matching.FuzzyEnabled = false
	c, err := NewContainerWithStore(cfg, &store.MockStore{Factors: []models.FactorRecord{{Category: "coffee", Factor: "5"}}}, nil)
	require.NoError(t, err)

	m, err := c.LoadMatcher("factors.csv")
	require.NoError(t, err)
	assert.Equal(t, []string{"substring"}, m.Strategies())
}

func TestLoadMatcher_NoUsableRows(t *testing.T) {
	logger := logging.NewMockLogger()
	st := &store.MockStore{Factors: []models.FactorRecord{{Category: "laptop", Factor: "n/a"}}}
	c, err := NewContainerWithStore(testConfig(), st, logger)
	require.NoError(t, err)

	m, err := c.LoadMatcher("factors.csv")
	require.NoError(t, err)
	assert.Equal(t, 0.0, m.Match("laptop"))
	assert.True(t, logger.HasEntry("WARN", "Reference table has no usable rows; every line will be unmatched"))
}

func TestLoadMatcher_StoreError(t *testing.T) {
	boom := errors.New("boom")
	c, err := NewContainerWithStore(testConfig(), &store.MockStore{LoadFactorsError: boom}, nil)
	require.NoError(t, err)

	_, err = c.LoadMatcher("factors.csv")
	assert.ErrorIs(t, err, boom)
}
