package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// completionCmd represents the completion command
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for artifactmaker. Completion covers
commands, flags, and the class names accepted by --class.

Bash:
  source <(artifactmaker completion bash)
  artifactmaker completion bash > ~/.local/share/bash-completion/completions/artifactmaker

Zsh:
  mkdir -p ~/.zsh/completion
  artifactmaker completion zsh > ~/.zsh/completion/_artifactmaker

Fish:
  artifactmaker completion fish > ~/.config/fish/completions/artifactmaker.fish

PowerShell:
  artifactmaker completion powershell | Out-String | Invoke-Expression`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Run: func(cmd *cobra.Command, args []string) {
		generateCompletion(args[0])
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// generateCompletion generates the appropriate completion script based on shell type
func generateCompletion(shell string) {
	var err error

	switch shell {
	case "bash":
		err = rootCmd.GenBashCompletionV2(deps.Stdout, true)
	case "zsh":
		err = rootCmd.GenZshCompletion(deps.Stdout)
	case "fish":
		err = rootCmd.GenFishCompletion(deps.Stdout, true)
	case "powershell":
		err = rootCmd.GenPowerShellCompletionWithDesc(deps.Stdout)
	default:
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Unsupported shell '%s'\n", shell)
		_, _ = fmt.Fprintln(deps.Stderr, "Supported shells: bash, zsh, fish, powershell")
		deps.Exit(1)
		return
	}

	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to generate %s completion: %v\n", shell, err)
		deps.Exit(1)
		return
	}
}

// completeClasses offers class slugs for --class. Configuration errors yield
// no suggestions.
func completeClasses(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if deps.Services == nil && deps.NewServices != nil {
		if services, err := deps.NewServices(); err == nil {
			deps.Services = services
		}
	}
	if deps.Services == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var out []string
	for _, c := range deps.Services.Classes.All() {
		if strings.HasPrefix(c.Slug, strings.ToLower(toComplete)) {
			out = append(out, c.Slug+"\t"+c.Name)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
