// Package calculate handles the CO2 calculation command
package calculate

import (
	"fjacquet/co2-csv/cmd/common"
	"fjacquet/co2-csv/cmd/root"

	"github.com/spf13/cobra"
)

// Flags holds the calculate command flag values
var Flags = common.CalculateOptions{}

// Cmd represents the calculate command
var Cmd = &cobra.Command{
	Use:   "calculate",
	Short: "Compute the CO2 footprint of an invoice table",
	Long: `Match every invoice line against the emission factor table, compute the
footprint of each line, print a summary report and export the enriched
table to CSV.`,
	Args: cobra.NoArgs,
	RunE: Run,
}

func init() {
	RegisterFlags(Cmd)
}

// RegisterFlags binds the calculate flags to cmd. The root command uses it
// so that a bare invocation accepts the same flags.
func RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&Flags.FactorsFile, "factors", "f", "", "Emission factor table (CSV, XLSX or YAML)")
	cmd.Flags().StringVarP(&Flags.InvoicesFile, "input", "i", "", "Invoice table (CSV or XLSX)")
	cmd.Flags().StringVarP(&Flags.OutputFile, "output", "o", "", "Enriched CSV output file")
	cmd.Flags().StringVar(&Flags.ReportFormat, "report-format", "", "Report format (text, json, yaml)")
	cmd.Flags().StringVar(&Flags.ReportFile, "report-file", "", "Also save the report to this file")
	cmd.Flags().BoolVar(&Flags.NoExport, "no-export", false, "Skip writing the enriched CSV")
}

// Run executes the calculation with the current flag values.
func Run(cmd *cobra.Command, args []string) error {
	root.Log.Info("Calculate command called")

	if _, err := common.RunCalculation(root.GetContainer(), Flags, cmd.OutOrStdout()); err != nil {
		root.Log.WithError(err).Error("CO2 calculation failed")
		return err
	}
	return nil
}
