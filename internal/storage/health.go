package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"
	"github.com/reasonance-lab/artifactmaker/internal/classes"
	"github.com/reasonance-lab/artifactmaker/internal/media"
)

// Matcher reports whether a file name should be left out of health reports.
type Matcher interface {
	Match(name string) bool
}

type globSet []glob.Glob

func (g globSet) Match(name string) bool {
	for _, p := range g {
		if p.Match(name) {
			return true
		}
	}
	return false
}

// CompileIgnore compiles glob patterns (matched against base file names)
// into a Matcher.
func CompileIgnore(patterns []string) (Matcher, error) {
	set := make(globSet, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", p, err)
		}
		set = append(set, g)
	}
	return set, nil
}

// Health summarizes the state of one class directory.
type Health struct {
	ClassDir string
	Exists   bool
	Buckets  int
	Entries  int
	Files    int

	// SkippedDirs are children of the class directory that are not dates.
	SkippedDirs []string
	// MissingMetadata are entry directories without a readable metadata.json.
	MissingMetadata []string
	// Unrecognized are files List does not show: neither media nor a text
	// sidecar, and not matched by the ignore patterns.
	Unrecognized []string
}

// Healthy reports whether nothing needs attention.
func (h Health) Healthy() bool {
	return len(h.MissingMetadata) == 0 && len(h.Unrecognized) == 0
}

// Health walks a class directory and reports entries with missing metadata
// and files that List leaves out. ignore may be nil.
func (s *Store) Health(class classes.ClassInfo, ignore Matcher) (Health, error) {
	h := Health{ClassDir: s.ClassDir(class)}

	dateDirs, err := os.ReadDir(h.ClassDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return h, nil
		}
		return h, storageErr("check class", h.ClassDir, err)
	}
	h.Exists = true

	for _, d := range dateDirs {
		datePath := filepath.Join(h.ClassDir, d.Name())
		if !d.IsDir() {
			continue
		}
		if _, ok := parseDateDir(d.Name()); !ok {
			h.SkippedDirs = append(h.SkippedDirs, datePath)
			continue
		}

		entryDirs, err := os.ReadDir(datePath)
		if err != nil {
			return h, storageErr("check date", datePath, err)
		}
		counted := false
		for _, e := range entryDirs {
			if !e.IsDir() {
				continue
			}
			if !counted {
				h.Buckets++
				counted = true
			}
			h.Entries++
			if err := s.checkEntry(filepath.Join(datePath, e.Name()), ignore, &h); err != nil {
				return h, err
			}
		}
	}
	return h, nil
}

func (s *Store) checkEntry(dir string, ignore Matcher, h *Health) error {
	if _, _, err := readCreatedAt(filepath.Join(dir, media.MetadataFile)); err != nil {
		h.MissingMetadata = append(h.MissingMetadata, dir)
	}

	files, err := os.ReadDir(dir)
	if err != nil {
		return storageErr("check entry", dir, err)
	}
	for _, f := range files {
		if f.IsDir() || f.Name() == media.MetadataFile {
			continue
		}
		h.Files++
		if media.KindOf(f.Name()) != media.KindIgnored {
			continue
		}
		if ignore != nil && ignore.Match(f.Name()) {
			continue
		}
		h.Unrecognized = append(h.Unrecognized, filepath.Join(dir, f.Name()))
	}
	return nil
}
