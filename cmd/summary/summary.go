// Package summary handles reporting on a previously exported result table
package summary

import (
	"fjacquet/co2-csv/cmd/common"
	"fjacquet/co2-csv/cmd/root"

	"github.com/spf13/cobra"
)

var (
	inputFile    string
	reportFormat string
)

// Cmd represents the summary command
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Summarize an enriched CSV produced by calculate",
	Long: `Read a table exported by 'calculate' and print its summary report without
matching the lines again.`,
	Args: cobra.NoArgs,
	RunE: summaryFunc,
}

func init() {
	Cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Enriched CSV file (default: files.output)")
	Cmd.Flags().StringVar(&reportFormat, "report-format", "", "Report format (text, json, yaml)")
}

func summaryFunc(cmd *cobra.Command, args []string) error {
	root.Log.Info("Summary command called")

	_, err := common.RunSummary(root.GetContainer(), inputFile, reportFormat, cmd.OutOrStdout())
	return err
}
