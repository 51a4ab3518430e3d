package cmd

import (
	"github.com/reasonance-lab/artifactmaker/internal/cli/handlers"
	"github.com/spf13/cobra"
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <entry-id>",
	Short: "Delete a saved entry",
	Long: `Delete a saved entry and all of its files. Empty date and class folders
left behind are removed too. A confirmation prompt is shown unless --yes is
specified. Run 'artifactmaker entries' to find the date and entry id.

Example:
  artifactmaker delete --class chemistry --date 2024-01-15 093000-1a2b3c4d
  artifactmaker delete -c chemistry -d 2024-01-15 093000-1a2b3c4d --yes`,
	Args: cobra.ExactArgs(1),
	Run: withServices(func(cmd *cobra.Command, args []string) {
		class, _ := cmd.Flags().GetString("class")
		date, _ := cmd.Flags().GetString("date")
		yes, _ := cmd.Flags().GetBool("yes")
		handlers.DeleteEntry(deps, class, date, args[0], yes)
	}),
}

func init() {
	rootCmd.AddCommand(deleteCmd)

	addClassFlag(deleteCmd, "Class name or slug (required)")
	deleteCmd.Flags().StringP("date", "d", "", "Date of the entry (required)")
	deleteCmd.Flags().BoolP("yes", "y", false, "skip confirmation prompt")
}
