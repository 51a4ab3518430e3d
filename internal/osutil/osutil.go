// Package osutil resolves the per-user directory artifactmaker keeps its
// config file and session logs in. Tests replace Provider to reach the
// failure paths.
package osutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNoConfigDir is returned when the platform reports an empty user
// config directory.
var ErrNoConfigDir = errors.New("user config directory is not set")

// PathProvider is the OS surface AppDir depends on.
type PathProvider interface {
	UserConfigDir() (string, error)
	MkdirAll(path string, perm os.FileMode) error
}

type systemPaths struct{}

func (systemPaths) UserConfigDir() (string, error) {
	return os.UserConfigDir()
}

func (systemPaths) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Provider is the active PathProvider.
var Provider PathProvider = systemPaths{}

// SetProvider replaces Provider.
func SetProvider(p PathProvider) {
	Provider = p
}

// ResetProvider restores the os-backed provider.
func ResetProvider() {
	Provider = systemPaths{}
}

// AppDir returns <user config dir>/<app>, creating it when missing.
func AppDir(app string) (string, error) {
	base, err := Provider.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate user config directory: %w", err)
	}
	if base == "" {
		return "", ErrNoConfigDir
	}

	dir := filepath.Join(base, app)
	if err := Provider.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}
	return dir, nil
}
