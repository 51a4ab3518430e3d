package cmd

import (
	"fmt"

	"github.com/reasonance-lab/artifactmaker/internal/classes"
	"github.com/reasonance-lab/artifactmaker/internal/tui"
	"github.com/spf13/cobra"
)

// runProgram starts the browser; tests replace it.
var runProgram = tui.Run

// browseCmd represents the browse command
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the interactive gallery browser",
	Long: `Open the terminal gallery browser. It shows one entry at a time for the
selected class, newest first, and remembers where you were in each class
while it stays open.

Keyboard shortcuts:
  ←/→ or h/l    Previous / next entry
  g/G           First / last entry
  Tab           Next class
  c             Copy the entry text to the clipboard
  d             Delete the entry (asks for confirmation)
  r             Reload from disk
  t             Next theme
  ?             Show help
  q             Quit`,
	Args: cobra.NoArgs,
	Run: withServices(func(cmd *cobra.Command, args []string) {
		name, _ := cmd.Flags().GetString("class")
		var class classes.ClassInfo
		if name != "" {
			c, err := deps.Services.Gallery.Resolve(name)
			if err != nil {
				_, _ = fmt.Fprintf(deps.Stderr, "Error: Unknown class '%s'\n", name)
				_, _ = fmt.Fprintln(deps.Stderr, "Hint: Run 'artifactmaker classes' to see configured classes")
				deps.Exit(1)
				return
			}
			class = c
		}

		if err := runProgram(deps.Services, class); err != nil {
			_, _ = fmt.Fprintf(deps.Stderr, "Error running browser: %v\n", err)
			deps.Exit(1)
		}
	}),
}

func init() {
	rootCmd.AddCommand(browseCmd)
	addClassFlag(browseCmd, "Class to open first (default: the first class)")
}
