// Package report renders a SummaryReport for people (the banner text
// report) or for machines (JSON, YAML).
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"fjacquet/co2-csv/internal/fileutils"
	"fjacquet/co2-csv/internal/logging"
	"fjacquet/co2-csv/internal/models"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Supported report formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists every format GenerateReport accepts.
var Formats = []string{FormatText, FormatJSON, FormatYAML}

const (
	ruleWidth = 40
	title     = "       CO2 ACCOUNTING REPORT       "
)

// Generator renders summaries in the supported formats.
type Generator struct {
	logger logging.Logger
	styled bool
}

// NewGenerator creates a Generator. When styled is set, text reports written
// to a terminal get a bordered, colored layout.
func NewGenerator(logger logging.Logger, styled bool) *Generator {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &Generator{logger: logger, styled: styled}
}

// IsSupportedFormat reports whether format is one of Formats.
func IsSupportedFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

// GenerateReport renders summary as plain text, JSON or YAML.
func (g *Generator) GenerateReport(summary *models.SummaryReport, format string) ([]byte, error) {
	switch format {
	case FormatText:
		return []byte(renderText(summary)), nil
	case FormatJSON:
		return g.generateJSONReport(summary)
	case FormatYAML:
		return g.generateYAMLReport(summary)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

// Write renders summary to w. Text goes through the styled layout only when
// styling is enabled and w is a terminal.
func (g *Generator) Write(w io.Writer, summary *models.SummaryReport, format string) error {
	var (
		out []byte
		err error
	)
	if format == FormatText && g.styled && isWriterTerminal(w) {
		out = []byte(renderStyled(summary))
	} else {
		out, err = g.GenerateReport(summary, format)
		if err != nil {
			return err
		}
	}

	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// SaveReport renders summary and writes it to path.
func (g *Generator) SaveReport(summary *models.SummaryReport, format, path string) error {
	out, err := g.GenerateReport(summary, format)
	if err != nil {
		return err
	}
	if err := fileutils.WriteFile(path, out, models.PermissionReportFile); err != nil {
		g.logger.WithError(err).Error("Failed to save report",
			logging.F(logging.FieldOutputFile, path))
		return err
	}
	g.logger.Info("Report saved", logging.F(logging.FieldOutputFile, path))
	return nil
}

// renderText reproduces the console banner report.
func renderText(summary *models.SummaryReport) string {
	rule := strings.Repeat("=", ruleWidth)

	var sb strings.Builder
	sb.WriteString("\n" + rule + "\n")
	sb.WriteString(title + "\n")
	sb.WriteString(rule + "\n")
	fmt.Fprintf(&sb, "Total Carbon Footprint: %.2f kg CO2\n", summary.TotalCO2)
	if hasNamedHighest(summary) {
		fmt.Fprintf(&sb, "Highest Emitting Item:  %s (%.2f kg)\n", *summary.HighestItem, summary.HighestValue)
	}
	if summary.UnmatchedCount > 0 {
		fmt.Fprintf(&sb, "Warning: %d items could not be matched to emission factors.\n", summary.UnmatchedCount)
	}
	sb.WriteString(rule + "\n\n")
	return sb.String()
}

// hasNamedHighest is false for an empty description as well as for a
// missing highest item; neither is worth a line.
func hasNamedHighest(summary *models.SummaryReport) bool {
	return summary.HighestItem != nil && *summary.HighestItem != ""
}

func isWriterTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// summaryDocument is the machine-readable layout.
type summaryDocument struct {
	RunID          string            `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	TotalCO2       float64           `json:"total_co2" yaml:"total_co2"`
	TotalCO2Kg     string            `json:"total_co2_kg" yaml:"total_co2_kg"`
	HighestItem    *string           `json:"highest_item" yaml:"highest_item"`
	HighestValue   float64           `json:"highest_value" yaml:"highest_value"`
	UnmatchedCount int               `json:"unmatched_count" yaml:"unmatched_count"`
	Stats          models.MatchStats `json:"stats" yaml:"stats"`
	MatchRate      float64           `json:"match_rate" yaml:"match_rate"`
}

func newSummaryDocument(summary *models.SummaryReport) summaryDocument {
	return summaryDocument{
		RunID:          summary.RunID,
		TotalCO2:       summary.TotalCO2,
		TotalCO2Kg:     models.FormatKg(summary.TotalCO2),
		HighestItem:    summary.HighestItem,
		HighestValue:   summary.HighestValue,
		UnmatchedCount: summary.UnmatchedCount,
		Stats:          summary.Stats,
		MatchRate:      summary.Stats.MatchRate(),
	}
}

func (g *Generator) generateJSONReport(summary *models.SummaryReport) ([]byte, error) {
	out, err := json.MarshalIndent(newSummaryDocument(summary), "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return append(out, '\n'), nil
}

func (g *Generator) generateYAMLReport(summary *models.SummaryReport) ([]byte, error) {
	out, err := yaml.Marshal(newSummaryDocument(summary))
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal YAML report")
		return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
	}
	return out, nil
}
