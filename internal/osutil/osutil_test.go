package osutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type fakePaths struct {
	configDir string
	configErr error
	mkdirErr  error
	created   []string
}

func (f *fakePaths) UserConfigDir() (string, error) {
	return f.configDir, f.configErr
}

func (f *fakePaths) MkdirAll(path string, perm os.FileMode) error {
	if f.mkdirErr != nil {
		return f.mkdirErr
	}
	f.created = append(f.created, path)
	return os.MkdirAll(path, perm)
}

func useFake(t *testing.T, f *fakePaths) {
	t.Helper()
	SetProvider(f)
	t.Cleanup(ResetProvider)
}

func TestAppDir_CreatesUnderConfigDir(t *testing.T) {
	base := t.TempDir()
	fake := &fakePaths{configDir: base}
	useFake(t, fake)

	dir, err := AppDir("artifactmaker")
	if err != nil {
		t.Fatalf("AppDir() returned unexpected error: %v", err)
	}
	expected := filepath.Join(base, "artifactmaker")
	if dir != expected {
		t.Errorf("AppDir() = %q, expected %q", dir, expected)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Errorf("AppDir() did not create %s: %v", dir, err)
	}
	if len(fake.created) != 1 || fake.created[0] != expected {
		t.Errorf("MkdirAll calls = %v, expected [%s]", fake.created, expected)
	}
}

func TestAppDir_Failures(t *testing.T) {
	denied := errors.New("permission denied")

	tests := []struct {
		name    string
		fake    *fakePaths
		wantErr error
	}{
		{"config dir lookup fails", &fakePaths{configErr: denied}, denied},
		{"config dir empty", &fakePaths{}, ErrNoConfigDir},
		{"mkdir fails", &fakePaths{configDir: "/home/teacher/.config", mkdirErr: denied}, denied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useFake(t, tt.fake)

			dir, err := AppDir("artifactmaker")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("AppDir() error = %v, expected %v", err, tt.wantErr)
			}
			if dir != "" {
				t.Errorf("AppDir() = %q, expected empty path on failure", dir)
			}
			if len(tt.fake.created) != 0 {
				t.Errorf("nothing should be created, got %v", tt.fake.created)
			}
		})
	}
}

func TestResetProvider(t *testing.T) {
	SetProvider(&fakePaths{})
	ResetProvider()

	if _, ok := Provider.(systemPaths); !ok {
		t.Errorf("Provider = %T after reset, expected the os-backed provider", Provider)
	}
}
