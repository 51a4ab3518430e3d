package transcribe

import (
	"context"
	"fmt"
	"os"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/reasonance-lab/artifactmaker/internal/config"
	"github.com/reasonance-lab/artifactmaker/internal/logging"
)

// DefaultOpenAIModel is used when no openai_model is configured.
const DefaultOpenAIModel = "whisper-1"

// openAIEngine sends audio to an OpenAI-compatible transcription endpoint.
// The whole response is a single segment.
type openAIEngine struct {
	client openai.Client
	model  string
	log    *logging.Logger
}

func newOpenAIEngine(cfg config.Transcription, log *logging.Logger) (*openAIEngine, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: %s is not set", ErrEngineUnavailable, config.EnvOpenAIKey)
	}
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	model := cfg.OpenAIModel
	if model == "" {
		model = DefaultOpenAIModel
	}
	return &openAIEngine{
		client: openai.NewClient(opts...),
		model:  model,
		log:    log,
	}, nil
}

func (e *openAIEngine) Transcribe(ctx context.Context, audioPath string) ([]Segment, error) {
	f, err := os.Open(audioPath)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	e.log.Debugf("requesting %s transcription for %s", e.model, audioPath)
	resp, err := e.client.Audio.Transcriptions.New(ctx, openai.AudioTranscriptionNewParams{
		File:  f,
		Model: openai.AudioModel(e.model),
	})
	if err != nil {
		return nil, err
	}
	return []Segment{{Text: resp.Text}}, nil
}
