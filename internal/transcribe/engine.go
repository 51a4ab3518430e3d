// Package transcribe turns recorded audio into text with a speech-to-text
// engine and memoizes the result per clip.
package transcribe

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/reasonance-lab/artifactmaker/internal/config"
	"github.com/reasonance-lab/artifactmaker/internal/logging"
)

// ErrEngineUnavailable means no speech-to-text engine can be used. Callers
// treat it as "no transcript", not as a failure.
var ErrEngineUnavailable = errors.New("transcription engine unavailable")

// Segment is one span of recognized speech.
type Segment struct {
	Text string
}

// Engine recognizes speech in an audio file.
type Engine interface {
	Transcribe(ctx context.Context, path string) ([]Segment, error)
}

// Error reports a failure inside the engine.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("transcription %s failed: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Factory constructs an engine. Returning ErrEngineUnavailable (or a nil
// engine) means transcription is switched off for the process.
type Factory func() (Engine, error)

// Provider constructs the engine on first use and hands the same engine to
// every later caller. Construction is serialized, so concurrent first use
// builds one engine. A ready engine and ErrEngineUnavailable are kept for the
// process; any other failure is retried on the next call.
type Provider struct {
	factory Factory
	log     *logging.Logger

	mu     sync.Mutex
	done   bool
	engine Engine
	err    error
}

// NewProvider wraps a factory. A nil factory yields no engine.
func NewProvider(factory Factory, log *logging.Logger) *Provider {
	if factory == nil {
		factory = func() (Engine, error) { return nil, ErrEngineUnavailable }
	}
	return &Provider{factory: factory, log: log}
}

// Engine returns the engine, constructing it on the first call.
func (p *Provider) Engine() (Engine, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.done {
		return p.engine, p.err
	}

	engine, err := p.factory()
	if err == nil && engine == nil {
		err = ErrEngineUnavailable
	}
	switch {
	case err == nil:
		p.log.Infof("transcription engine ready")
	case errors.Is(err, ErrEngineUnavailable):
		p.log.Warnf("transcription disabled: %v", err)
	default:
		p.log.Errorf("transcription engine failed to load, will retry: %v", err)
		return nil, err
	}
	p.engine, p.err, p.done = engine, err, true
	return p.engine, p.err
}

// Available reports whether an engine could be constructed.
func (p *Provider) Available() bool {
	_, err := p.Engine()
	return err == nil
}

// NewFactory returns the factory for the configured backend.
func NewFactory(cfg config.Transcription, log *logging.Logger) Factory {
	switch cfg.Backend {
	case config.BackendNone:
		return func() (Engine, error) {
			return nil, fmt.Errorf("%w: backend is %q", ErrEngineUnavailable, config.BackendNone)
		}
	case config.BackendOpenAI:
		return func() (Engine, error) {
			e, err := newOpenAIEngine(cfg, log)
			if err != nil {
				return nil, err
			}
			return e, nil
		}
	default:
		return func() (Engine, error) {
			e, err := newCLIEngine("", cfg, log)
			if err != nil {
				return nil, err
			}
			return e, nil
		}
	}
}
