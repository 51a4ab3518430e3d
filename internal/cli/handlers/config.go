package handlers

import (
	"fmt"
	"strings"

	"github.com/reasonance-lab/artifactmaker/internal/cli"
)

// ShowConfig displays the current configuration
func ShowConfig(deps *cli.Deps) {
	cfg := deps.Services.Config.Get()
	path := deps.Services.Config.GetPath()

	_, _ = fmt.Fprintln(deps.Stdout, "Configuration:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "Config file: %s\n", path)
	if deps.Services.Config.Exists() {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: File exists")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: Using defaults (no config file)")
	}
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "data_root:       %s\n", cfg.DataRoot)
	_, _ = fmt.Fprintf(deps.Stdout, "theme:           %s\n", orDefault(cfg.Theme))
	_, _ = fmt.Fprintf(deps.Stdout, "ignore_patterns: %s\n", strings.Join(cfg.IgnorePatterns, ", "))
	if logPath := deps.Services.Log.LogPath(); logPath != "" {
		_, _ = fmt.Fprintf(deps.Stdout, "log file:        %s\n", logPath)
	}
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))

	t := cfg.Transcription
	_, _ = fmt.Fprintf(deps.Stdout, "backend:         %s\n", t.Backend)
	_, _ = fmt.Fprintf(deps.Stdout, "model_size:      %s\n", t.ModelSize)
	_, _ = fmt.Fprintf(deps.Stdout, "compute_type:    %s\n", t.ComputeType)
	_, _ = fmt.Fprintf(deps.Stdout, "device:          %s\n", t.Device)
	_, _ = fmt.Fprintf(deps.Stdout, "openai_model:    %s\n", t.OpenAIModel)
	if t.APIKey != "" {
		_, _ = fmt.Fprintln(deps.Stdout, "api key:         set (from environment)")
	}
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))

	_, _ = fmt.Fprintln(deps.Stdout, "classes:")
	for _, c := range deps.Services.Classes.All() {
		_, _ = fmt.Fprintf(deps.Stdout, "  %-30s %-30s %s\n", c.Name, c.Slug, c.AccentColor)
	}
}

// InitConfig creates a sample config file
func InitConfig(deps *cli.Deps) {
	err := deps.Services.Config.Init()
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	path := deps.Services.Config.GetPath()
	_, _ = fmt.Fprintf(deps.Stdout, "Created config file: %s\n", path)
	_, _ = fmt.Fprintln(deps.Stdout, "Edit this file to customize your settings.")
}

func orDefault(s string) string {
	if s == "" {
		return "(default)"
	}
	return s
}
