// Package config loads the artifactmaker TOML configuration and layers
// environment overrides on top of it.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gobwas/glob"
	"github.com/reasonance-lab/artifactmaker/internal/classes"
	"github.com/reasonance-lab/artifactmaker/internal/osutil"
)

const (
	// AppName is the application name used for config directory
	AppName = "artifactmaker"
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
	// LogDirName is the directory under the config dir holding session logs
	LogDirName = "logs"
)

// Transcription backends.
const (
	BackendLocal  = "local"
	BackendOpenAI = "openai"
	BackendNone   = "none"
)

// Environment variables read by ApplyEnv.
const (
	EnvDataRoot    = "DATA_ROOT"
	EnvModelSize   = "WHISPER_MODEL_SIZE"
	EnvComputeType = "WHISPER_COMPUTE_TYPE"
	EnvDevice      = "WHISPER_DEVICE"
	EnvBackend     = "WHISPER_BACKEND"
	EnvOpenAIKey   = "OPENAI_API_KEY"
	EnvOpenAIURL   = "OPENAI_BASE_URL"
	EnvLogDir      = "ARTIFACTMAKER_LOG_DIR"
)

// Config represents the application configuration
type Config struct {
	// DataRoot is the directory holding <class>/<date>/<entry> trees
	DataRoot string `toml:"data_root"`
	// Theme is the bubbletint theme id used by the browser
	Theme string `toml:"theme"`
	// IgnorePatterns are glob patterns for files validate should not report
	IgnorePatterns []string `toml:"ignore_patterns"`
	// LogDir overrides where session logs are written
	LogDir string `toml:"log_dir"`

	Transcription Transcription `toml:"transcription"`

	// Classes replaces the built-in class list when non-empty
	Classes []classes.ClassInfo `toml:"classes"`
}

// Transcription configures the speech-to-text engine.
type Transcription struct {
	Backend     string `toml:"backend"`
	ModelSize   string `toml:"model_size"`
	ComputeType string `toml:"compute_type"`
	Device      string `toml:"device"`
	OpenAIModel string `toml:"openai_model"`
	BaseURL     string `toml:"openai_base_url"`

	// APIKey only ever comes from the environment.
	APIKey string `toml:"-"`
}

// DefaultConfig returns a Config with sensible defaults.
// - data_root: "data" relative to the working directory
// - transcription: local whisper, small model, int8_float16 on cpu
// - classes: the built-in class list
func DefaultConfig() Config {
	return Config{
		DataRoot:       "data",
		Theme:          "",
		IgnorePatterns: []string{".DS_Store", "Thumbs.db", "*.tmp"},
		Transcription: Transcription{
			Backend:     BackendLocal,
			ModelSize:   "small",
			ComputeType: "int8_float16",
			Device:      "cpu",
			OpenAIModel: "whisper-1",
		},
		Classes: classes.Defaults(),
	}
}

// Load reads and validates the config file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	cfg.Classes = nil
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if len(cfg.Classes) == 0 {
		cfg.Classes = classes.Defaults()
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault loads the config at path, or returns DefaultConfig when the
// file does not exist. Any other failure is returned.
func LoadOrDefault(path string) (Config, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("failed to access config file: %w", err)
	}
	return Load(path)
}

// ApplyEnv layers environment overrides on top of the file values.
func (c *Config) ApplyEnv(getenv func(string) string) {
	set := func(dst *string, key string) {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			*dst = v
		}
	}
	set(&c.DataRoot, EnvDataRoot)
	set(&c.LogDir, EnvLogDir)
	set(&c.Transcription.Backend, EnvBackend)
	set(&c.Transcription.ModelSize, EnvModelSize)
	set(&c.Transcription.ComputeType, EnvComputeType)
	set(&c.Transcription.Device, EnvDevice)
	set(&c.Transcription.APIKey, EnvOpenAIKey)
	set(&c.Transcription.BaseURL, EnvOpenAIURL)
	c.Normalize()
}

// Normalize trims values and lowercases the enumerated ones in place.
func (c *Config) Normalize() {
	c.DataRoot = strings.TrimSpace(c.DataRoot)
	c.Theme = strings.TrimSpace(c.Theme)
	c.LogDir = strings.TrimSpace(c.LogDir)
	c.Transcription.Backend = strings.ToLower(strings.TrimSpace(c.Transcription.Backend))
	c.Transcription.Device = strings.ToLower(strings.TrimSpace(c.Transcription.Device))
	c.Transcription.ModelSize = strings.TrimSpace(c.Transcription.ModelSize)
	c.Transcription.ComputeType = strings.TrimSpace(c.Transcription.ComputeType)
	c.Transcription.OpenAIModel = strings.TrimSpace(c.Transcription.OpenAIModel)
	if c.DataRoot == "" {
		c.DataRoot = "data"
	}
	if c.Transcription.Backend == "" {
		c.Transcription.Backend = BackendLocal
	}
}

// Validate checks that the config can be used.
func (c *Config) Validate() error {
	switch c.Transcription.Backend {
	case BackendLocal, BackendOpenAI, BackendNone:
	default:
		return fmt.Errorf("invalid transcription backend %q (must be %q, %q or %q)",
			c.Transcription.Backend, BackendLocal, BackendOpenAI, BackendNone)
	}
	if c.Transcription.Backend == BackendLocal && c.Transcription.ModelSize == "" {
		return fmt.Errorf("transcription model_size cannot be empty for the %q backend", BackendLocal)
	}
	for _, p := range c.IgnorePatterns {
		if _, err := glob.Compile(p); err != nil {
			return fmt.Errorf("invalid ignore pattern %q: %w", p, err)
		}
	}
	if _, err := c.Registry(); err != nil {
		return err
	}
	return nil
}

// Registry builds the class registry from the configured classes, falling
// back to the built-in list when none are configured.
func (c *Config) Registry() (*classes.Registry, error) {
	if len(c.Classes) == 0 {
		return classes.DefaultRegistry(), nil
	}
	return classes.NewRegistry(c.Classes)
}

// GetConfigPath returns the path to the config file.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func GetConfigPath() (string, error) {
	appDir, err := appDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(appDir, ConfigFile), nil
}

// GetLogDir returns the session log directory: the configured LogDir, or
// logs/ under the config directory.
func (c *Config) GetLogDir() (string, error) {
	if c.LogDir != "" {
		return c.LogDir, nil
	}
	dir, err := appDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, LogDirName), nil
}

func appDir() (string, error) {
	return osutil.AppDir(AppName)
}

// GenerateSampleConfig returns a commented sample configuration file.
func GenerateSampleConfig() string {
	return `# artifactmaker configuration file
#
# Environment variables override these values:
#   DATA_ROOT, WHISPER_BACKEND, WHISPER_MODEL_SIZE, WHISPER_COMPUTE_TYPE,
#   WHISPER_DEVICE, OPENAI_API_KEY, OPENAI_BASE_URL, ARTIFACTMAKER_LOG_DIR

# Directory holding <class>/<date>/<entry> folders
# data_root = "data"

# Browser theme (any bubbletint id, e.g. "dracula", "nord", "gruvbox_dark")
# theme = "dracula"

# Files the validate command should not report
# ignore_patterns = [".DS_Store", "Thumbs.db", "*.tmp"]

# Where session logs are written (defaults to logs/ next to this file)
# log_dir = ""

[transcription]
# Speech-to-text engine: "local" (whisper-ctranslate2), "openai", or "none"
# backend = "local"
# model_size = "small"
# compute_type = "int8_float16"
# device = "cpu"
# openai_model = "whisper-1"
# openai_base_url = ""

# Classes replace the built-in list when present. slug and gallery_title are
# derived from name when omitted.
#
# [[classes]]
# name = "AP Chemistry"
# slug = "ap-chemistry"
# gallery_title = "AP Chemistry Gallery"
# accent_color = "#2563eb"
`
}
