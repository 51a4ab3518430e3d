package cmd

import (
	"github.com/reasonance-lab/artifactmaker/internal/cli/handlers"
	"github.com/spf13/cobra"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export <json|yaml|csv>",
	Short: "Export the entries of a class",
	Long: `Export the entries of a class to stdout as JSON, YAML, or CSV. Each entry
lists its date, id, creation time, folder, media paths, notes, and transcript.

Examples:
  artifactmaker export json --class chemistry > chemistry.json
  artifactmaker export yaml --class chemistry --last 30
  artifactmaker export csv --class chemistry --from 2024-01-01`,
	ValidArgs: []string{handlers.FormatJSON, handlers.FormatYAML, handlers.FormatCSV},
	Args:      cobra.ExactArgs(1),
	Run: withServices(func(cmd *cobra.Command, args []string) {
		start, end, ok := parseRangeFlags(cmd)
		if !ok {
			return
		}
		class, _ := cmd.Flags().GetString("class")
		handlers.Export(deps, class, args[0], start, end)
	}),
}

func init() {
	rootCmd.AddCommand(exportCmd)

	addClassFlag(exportCmd, "Class name or slug (required)")
	addRangeFlags(exportCmd)
}
