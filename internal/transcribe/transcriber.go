package transcribe

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/reasonance-lab/artifactmaker/internal/logging"
)

// Transcriber runs audio bytes through the provider's engine.
type Transcriber struct {
	provider *Provider
	log      *logging.Logger
}

// NewTranscriber creates a Transcriber over provider.
func NewTranscriber(provider *Provider, log *logging.Logger) *Transcriber {
	return &Transcriber{provider: provider, log: log}
}

// Available reports whether an engine can be used.
func (t *Transcriber) Available() bool {
	return t.provider.Available()
}

// Transcribe returns the recognized text of audio with segments trimmed and
// joined by single spaces. An empty string means no transcript: either no
// speech was recognized or no engine is available. Engine failures are
// returned as *Error. The temporary file handed to the engine is always
// removed.
func (t *Transcriber) Transcribe(ctx context.Context, audio []byte) (string, error) {
	engine, err := t.provider.Engine()
	if err != nil {
		if errors.Is(err, ErrEngineUnavailable) {
			return "", nil
		}
		return "", &Error{Op: "load", Err: err}
	}

	path, err := writeTemp(audio)
	if err != nil {
		return "", &Error{Op: "prepare", Err: err}
	}
	defer func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			t.log.Warnf("failed to remove temp audio %s: %v", path, err)
		}
	}()

	segments, err := engine.Transcribe(ctx, path)
	if err != nil {
		return "", &Error{Op: "run", Err: err}
	}
	return JoinSegments(segments), nil
}

// JoinSegments trims each segment, drops empty ones, and joins the rest with
// single spaces.
func JoinSegments(segments []Segment) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		if text := strings.TrimSpace(s.Text); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}

func writeTemp(audio []byte) (string, error) {
	f, err := os.CreateTemp("", "artifactmaker-*.wav")
	if err != nil {
		return "", err
	}
	if _, err := f.Write(audio); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}
