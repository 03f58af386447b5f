// Package match handles the single-description lookup command
package match

import (
	"fmt"
	"strings"

	"fjacquet/co2-csv/cmd/common"
	"fjacquet/co2-csv/cmd/root"

	"github.com/spf13/cobra"
)

var (
	factorsFile string
	description string
)

// Cmd represents the match command
var Cmd = &cobra.Command{
	Use:   "match [description]",
	Short: "Show which emission factor a description resolves to",
	Long: `Run one item description through the matcher and print the factor, the
tier that produced it (substring, fuzzy or none) and the matched category.
The description is taken from --description or from the arguments.`,
	RunE: matchFunc,
}

func init() {
	Cmd.Flags().StringVarP(&factorsFile, "factors", "f", "", "Emission factor table (CSV, XLSX or YAML)")
	Cmd.Flags().StringVarP(&description, "description", "d", "", "Item description to match")
}

func matchFunc(cmd *cobra.Command, args []string) error {
	text := description
	if text == "" {
		text = strings.Join(args, " ")
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("a description is required")
	}

	result, err := common.ResolveDescription(root.GetContainer(), factorsFile, text)
	if err != nil {
		return err
	}
	return common.PrintMatch(cmd.OutOrStdout(), text, result)
}
