package cmd

import (
	"github.com/reasonance-lab/artifactmaker/internal/cli"
	"github.com/spf13/cobra"
)

// deps is the global dependencies instance used by commands.
// In production, this is cli.DefaultDeps(). Tests can replace it.
var deps = cli.DefaultDeps()

// SetDeps sets the global dependencies (for testing).
func SetDeps(d *cli.Deps) {
	deps = d
}

// ResetDeps resets dependencies to defaults (for testing cleanup).
func ResetDeps() {
	deps = cli.DefaultDeps()
}

// withServices loads the services before running a command body.
func withServices(run func(cmd *cobra.Command, args []string)) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		if !deps.LoadServices() {
			return
		}
		run(cmd, args)
	}
}
