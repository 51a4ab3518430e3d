package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/reasonance-lab/artifactmaker/internal/classes"
	"github.com/reasonance-lab/artifactmaker/internal/config"
	"github.com/reasonance-lab/artifactmaker/internal/logging"
	"github.com/reasonance-lab/artifactmaker/internal/storage"
	"github.com/reasonance-lab/artifactmaker/internal/transcribe"
)

var labDay = time.Date(2024, time.January, 15, 0, 0, 0, 0, time.Local)

// fakeEngine returns fixed segments or an error.
type fakeEngine struct {
	segments []transcribe.Segment
	err      error
	calls    int
}

func (f *fakeEngine) Transcribe(ctx context.Context, path string) ([]transcribe.Segment, error) {
	f.calls++
	return f.segments, f.err
}

func engineFactory(e transcribe.Engine) transcribe.Factory {
	return func() (transcribe.Engine, error) { return e, nil }
}

func unavailableFactory() (transcribe.Engine, error) {
	return nil, transcribe.ErrEngineUnavailable
}

// newTestServices wires services over a temp data root with a fixed clock.
func newTestServices(t *testing.T, factory transcribe.Factory) *Services {
	t.Helper()
	tmpDir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.DataRoot = filepath.Join(tmpDir, "data")

	clock := time.Date(2024, time.January, 15, 9, 30, 0, 0, time.Local)
	svcs, err := NewServicesWithOptions(Options{
		ConfigPath:   filepath.Join(tmpDir, "config.toml"),
		Config:       cfg,
		Logger:       logging.Nop(),
		Engine:       factory,
		StoreOptions: []storage.Option{storage.WithClock(func() time.Time { return clock })},
	})
	if err != nil {
		t.Fatalf("NewServicesWithOptions() returned unexpected error: %v", err)
	}
	return svcs
}

func mustClass(t *testing.T, s *Services, name string) classes.ClassInfo {
	t.Helper()
	c, err := s.Gallery.Resolve(name)
	if err != nil {
		t.Fatalf("Resolve(%q) failed: %v", name, err)
	}
	return c
}

func TestNewServicesWithOptions(t *testing.T) {
	svcs := newTestServices(t, unavailableFactory)

	if svcs.Capture == nil || svcs.Gallery == nil || svcs.Manage == nil || svcs.Config == nil {
		t.Fatal("expected all services to be wired")
	}
	if svcs.Store == nil || svcs.Transcriber == nil || svcs.Classes == nil {
		t.Fatal("expected store, transcriber, and registry")
	}
	if svcs.Transcriber.Available() {
		t.Error("transcriber should report unavailable engine")
	}
	if err := svcs.Close(); err != nil {
		t.Errorf("Close() returned error: %v", err)
	}
}

func TestNewServicesWithOptions_InvalidClasses(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Classes = []classes.ClassInfo{{Name: "Bio"}, {Name: "Bio"}}

	_, err := NewServicesWithOptions(Options{Config: cfg})
	if err == nil {
		t.Error("expected error for duplicate classes")
	}
}

func TestNewServicesWithOptions_InvalidIgnorePattern(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.IgnorePatterns = []string{"[bad"}

	_, err := NewServicesWithOptions(Options{Config: cfg})
	if err == nil {
		t.Error("expected error for bad ignore pattern")
	}
}

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status   Status
		expected string
	}{
		{StatusSuccess, "success"},
		{StatusInfo, "info"},
		{StatusWarning, "warning"},
		{StatusError, "error"},
		{Status(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.expected {
			t.Errorf("String() = %q, expected %q", got, tt.expected)
		}
	}
}

func TestOutcome_OK(t *testing.T) {
	if !(Outcome{Status: StatusInfo}).OK() {
		t.Error("info should be OK")
	}
	if (Outcome{Status: StatusWarning}).OK() {
		t.Error("warning should not be OK")
	}
}
