package cmd

import (
	"fmt"
	"time"

	"github.com/reasonance-lab/artifactmaker/internal/cli/handlers"
	"github.com/reasonance-lab/artifactmaker/internal/timeutil"
	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the gallery of a class",
	Long: `Show the entries of a class grouped by date, newest first.

Examples:
  artifactmaker list --class chemistry
  artifactmaker list --class chemistry --last 7
  artifactmaker list --class chemistry --from 2024-01-01 --to 2024-01-31`,
	Args: cobra.NoArgs,
	Run: withServices(func(cmd *cobra.Command, args []string) {
		start, end, ok := parseRangeFlags(cmd)
		if !ok {
			return
		}
		class, _ := cmd.Flags().GetString("class")
		handlers.ListGallery(deps, class, start, end)
	}),
}

// entriesCmd represents the entries command
var entriesCmd = &cobra.Command{
	Use:   "entries",
	Short: "List saved entries with their dates and ids",
	Long: `List every saved entry of a class as a one-line label with its date and
entry id, as needed by the delete command.`,
	Args: cobra.NoArgs,
	Run: withServices(func(cmd *cobra.Command, args []string) {
		class, _ := cmd.Flags().GetString("class")
		handlers.ListEntries(deps, class)
	}),
}

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check class storage health",
	Long: `Walk the folders of a class and report entries without metadata, folders
that are not dates, and files the gallery does not show. Files matching the
configured ignore_patterns are not reported.`,
	Args: cobra.NoArgs,
	Run: withServices(func(cmd *cobra.Command, args []string) {
		class, _ := cmd.Flags().GetString("class")
		handlers.Validate(deps, class)
	}),
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(entriesCmd)
	rootCmd.AddCommand(validateCmd)

	addClassFlag(listCmd, "Class name or slug (required)")
	addRangeFlags(listCmd)
	addClassFlag(entriesCmd, "Class name or slug (required)")
	addClassFlag(validateCmd, "Class name or slug (required)")
}

// parseRangeFlags reads --from, --to, and --last, reporting invalid values.
func parseRangeFlags(cmd *cobra.Command) (time.Time, time.Time, bool) {
	fromStr, _ := cmd.Flags().GetString("from")
	toStr, _ := cmd.Flags().GetString("to")
	lastDays, _ := cmd.Flags().GetInt("last")

	start, end, err := timeutil.ParseDateRangeFlags(fromStr, toStr, lastDays)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use either --last N or --from/--to, with dates like 2024-01-15 or 15/01/2024")
		deps.Exit(1)
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}
