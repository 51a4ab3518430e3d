package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "artifactmaker",
	Short: "Capture and browse classroom artifacts",
	Long: `artifactmaker saves classroom captures (photos, videos, voice notes, and
typed notes) into per-class, per-date folders and lets you browse them later.

Usage:
  artifactmaker classes                                  List configured classes
  artifactmaker capture --class chemistry --file a.jpg   Save a new entry
  artifactmaker transcribe note.wav                      Transcribe a voice note
  artifactmaker list --class chemistry                   Show the class gallery
  artifactmaker entries --class chemistry                List entries for deletion
  artifactmaker delete --class chemistry --date D <id>   Delete an entry (with confirmation)
  artifactmaker export json --class chemistry            Export entries as JSON, YAML, or CSV
  artifactmaker validate --class chemistry               Check class storage health
  artifactmaker browse                                   Open the gallery browser

Dates are YYYY-MM-DD or DD/MM/YYYY, or the words today and yesterday.`,
	SilenceUsage: true,
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"artifactmaker version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command. An interrupt cancels the command context,
// which stops a running transcription.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	defer deps.Close()
	return rootCmd.ExecuteContext(ctx)
}

// addClassFlag adds the --class flag with shell completion of class slugs.
func addClassFlag(cmd *cobra.Command, usage string) {
	cmd.Flags().StringP("class", "c", "", usage)
	_ = cmd.RegisterFlagCompletionFunc("class", completeClasses)
}

// addRangeFlags adds the --from, --to, and --last date filters.
func addRangeFlags(cmd *cobra.Command) {
	cmd.Flags().String("from", "", "Start date (YYYY-MM-DD or DD/MM/YYYY)")
	cmd.Flags().String("to", "", "End date (YYYY-MM-DD or DD/MM/YYYY)")
	cmd.Flags().Int("last", 0, "Only the last N days, including today")
}
