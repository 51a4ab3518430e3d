package service

import (
	"os"

	"github.com/reasonance-lab/artifactmaker/internal/classes"
	"github.com/reasonance-lab/artifactmaker/internal/config"
	"github.com/reasonance-lab/artifactmaker/internal/logging"
	"github.com/reasonance-lab/artifactmaker/internal/storage"
	"github.com/reasonance-lab/artifactmaker/internal/transcribe"
)

// Services holds all service instances used by the application
type Services struct {
	Classes     *classes.Registry
	Store       *storage.Store
	Transcriber *transcribe.Transcriber
	Capture     *CaptureService
	Gallery     *GalleryService
	Manage      *ManageService
	Config      *ConfigService
	Log         *logging.Logger
}

// Options configures NewServicesWithOptions. Zero values select defaults.
type Options struct {
	ConfigPath string
	Config     config.Config
	Logger     *logging.Logger
	// Engine overrides the engine factory built from Config.Transcription.
	Engine       transcribe.Factory
	StoreOptions []storage.Option
}

// NewServices creates a new Services instance from the config file and
// environment, logging to the configured log directory.
func NewServices() (*Services, error) {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv(os.Getenv)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var log *logging.Logger
	if dir, err := cfg.GetLogDir(); err == nil {
		// New falls back to stderr when the directory is unusable.
		log, _ = logging.New(dir, "artifactmaker")
	} else {
		log = logging.NewWriter(os.Stderr, "artifactmaker")
	}

	return NewServicesWithOptions(Options{
		ConfigPath: configPath,
		Config:     cfg,
		Logger:     log,
	})
}

// NewServicesWithOptions wires services from explicit options (useful for testing)
func NewServicesWithOptions(o Options) (*Services, error) {
	cfg := o.Config
	registry, err := cfg.Registry()
	if err != nil {
		return nil, err
	}
	ignore, err := storage.CompileIgnore(cfg.IgnorePatterns)
	if err != nil {
		return nil, err
	}

	log := o.Logger
	storeOpts := append([]storage.Option{storage.WithLogger(log.With("storage"))}, o.StoreOptions...)
	store := storage.New(cfg.DataRoot, storeOpts...)

	factory := o.Engine
	if factory == nil {
		factory = transcribe.NewFactory(cfg.Transcription, log.With("transcribe"))
	}
	transcriber := transcribe.NewTranscriber(
		transcribe.NewProvider(factory, log.With("transcribe")),
		log.With("transcribe"),
	)

	return &Services{
		Classes:     registry,
		Store:       store,
		Transcriber: transcriber,
		Capture:     NewCaptureService(store, transcriber, log.With("capture")),
		Gallery:     NewGalleryService(store, registry, ignore, log.With("gallery")),
		Manage:      NewManageService(store, log.With("manage")),
		Config:      NewConfigService(o.ConfigPath, cfg),
		Log:         log,
	}, nil
}

// Close releases the session log.
func (s *Services) Close() error {
	return s.Log.Close()
}
