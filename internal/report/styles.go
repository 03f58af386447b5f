package report

import (
	"fmt"
	"strings"

	"fjacquet/co2-csv/internal/models"

	"github.com/charmbracelet/lipgloss"
)

// Terminal palette (ANSI 256).
var (
	ColorHeader  = lipgloss.Color("86")
	ColorBorder  = lipgloss.Color("240")
	ColorLabel   = lipgloss.Color("245")
	ColorValue   = lipgloss.Color("255")
	ColorWarning = lipgloss.Color("214")
)

// renderStyled lays out the same facts as renderText inside a rounded box.
func renderStyled(summary *models.SummaryReport) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)
	labelStyle := lipgloss.NewStyle().Foreground(ColorLabel)
	valueStyle := lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	warnStyle := lipgloss.NewStyle().Foreground(ColorWarning)

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(strings.TrimSpace(title)))
	sb.WriteString("\n\n")
	sb.WriteString(labelStyle.Render("Total Carbon Footprint: "))
	sb.WriteString(valueStyle.Render(fmt.Sprintf("%.2f kg CO2", summary.TotalCO2)))

	if hasNamedHighest(summary) {
		sb.WriteString("\n")
		sb.WriteString(labelStyle.Render("Highest Emitting Item:  "))
		sb.WriteString(valueStyle.Render(fmt.Sprintf("%s (%.2f kg)", *summary.HighestItem, summary.HighestValue)))
	}

	if summary.UnmatchedCount > 0 {
		sb.WriteString("\n")
		sb.WriteString(warnStyle.Render(fmt.Sprintf(
			"Warning: %d items could not be matched to emission factors.", summary.UnmatchedCount)))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)

	return "\n" + box.Render(sb.String()) + "\n\n"
}
