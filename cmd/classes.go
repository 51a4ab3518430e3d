package cmd

import (
	"github.com/reasonance-lab/artifactmaker/internal/cli/handlers"
	"github.com/spf13/cobra"
)

// classesCmd represents the classes command
var classesCmd = &cobra.Command{
	Use:   "classes",
	Short: "List configured classes",
	Long: `List the configured classes with their slugs. Either the name or the slug
can be passed to --class.`,
	Args: cobra.NoArgs,
	Run: withServices(func(cmd *cobra.Command, args []string) {
		handlers.ListClasses(deps)
	}),
}

func init() {
	rootCmd.AddCommand(classesCmd)
}
