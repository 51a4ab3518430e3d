package cmd

import (
	"github.com/reasonance-lab/artifactmaker/internal/cli/handlers"
	"github.com/spf13/cobra"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display or manage configuration settings",
	Long: `Display the current effective configuration settings for artifactmaker.

Shows the configuration file location, whether it exists, and all current
settings. Values are merged from the config file with defaults, then
environment variables are applied on top:

  DATA_ROOT              data_root
  WHISPER_BACKEND        transcription.backend (local, openai, none)
  WHISPER_MODEL_SIZE     transcription.model_size
  WHISPER_COMPUTE_TYPE   transcription.compute_type
  WHISPER_DEVICE         transcription.device
  OPENAI_API_KEY         API key for the openai backend (never saved)
  OPENAI_BASE_URL        transcription.openai_base_url
  ARTIFACTMAKER_LOG_DIR  log_dir

Configuration file location:
  ~/.config/artifactmaker/config.toml   Linux
  %APPDATA%\artifactmaker\config.toml   Windows`,
	Args: cobra.NoArgs,
	Run: withServices(func(cmd *cobra.Command, args []string) {
		handlers.ShowConfig(deps)
	}),
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a sample config file",
	Args:  cobra.NoArgs,
	Run: withServices(func(cmd *cobra.Command, args []string) {
		handlers.InitConfig(deps)
	}),
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
}
