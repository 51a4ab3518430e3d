package storage

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/reasonance-lab/artifactmaker/internal/classes"
	"github.com/reasonance-lab/artifactmaker/internal/entry"
	"github.com/reasonance-lab/artifactmaker/internal/media"
)

// rawMetadata mirrors entry.Metadata but keeps created_at as a string so
// timestamps without a zone offset can still be read.
type rawMetadata struct {
	CreatedAt string `json:"created_at"`
	Sequence  int64  `json:"sequence"`
}

var createdAtLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

// List reconstructs every entry of a class grouped into date buckets.
// Buckets are ordered newest date first and entries newest first. A class
// with no directory yet yields an empty list and no error. Child
// directories whose names are not dates are skipped.
func (s *Store) List(class classes.ClassInfo) ([]entry.DateBucket, error) {
	classDir := s.ClassDir(class)
	dateDirs, err := os.ReadDir(classDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []entry.DateBucket{}, nil
		}
		return nil, storageErr("list class", classDir, err)
	}

	buckets := []entry.DateBucket{}
	for _, d := range dateDirs {
		if !d.IsDir() {
			continue
		}
		day, ok := parseDateDir(d.Name())
		if !ok {
			continue
		}
		entries, err := s.loadDate(filepath.Join(classDir, d.Name()))
		if err != nil {
			return nil, err
		}
		if len(entries) == 0 {
			continue
		}
		buckets = append(buckets, entry.DateBucket{Date: day, Entries: entries})
	}

	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Date.After(buckets[j].Date)
	})
	return buckets, nil
}

func parseDateDir(name string) (time.Time, bool) {
	day, err := time.ParseInLocation(entry.DateLayout, name, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return day, true
}

func (s *Store) loadDate(dateDir string) ([]entry.Entry, error) {
	children, err := os.ReadDir(dateDir)
	if err != nil {
		return nil, storageErr("list date", dateDir, err)
	}

	entries := make([]entry.Entry, 0, len(children))
	for _, c := range children {
		if !c.IsDir() {
			continue
		}
		e, err := s.loadEntry(filepath.Join(dateDir, c.Name()))
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Sequence != b.Sequence {
			return a.Sequence > b.Sequence
		}
		return a.EntryID > b.EntryID
	})
	return entries, nil
}

func (s *Store) loadEntry(dir string) (entry.Entry, error) {
	e := entry.Entry{
		EntryID:   filepath.Base(dir),
		Directory: dir,
		MediaFiles: map[media.Category][]string{
			media.Image: {},
			media.Video: {},
			media.Audio: {},
		},
	}

	created, seq, err := readCreatedAt(filepath.Join(dir, media.MetadataFile))
	if err != nil {
		s.log.Debugf("metadata unavailable for %s, using mtime: %v", dir, err)
		info, statErr := os.Stat(dir)
		if statErr != nil {
			return e, storageErr("read entry", dir, statErr)
		}
		created = info.ModTime()
		seq = created.UnixNano()
	}
	e.CreatedAt = created
	e.Sequence = seq

	files, err := os.ReadDir(dir)
	if err != nil {
		return e, storageErr("read entry", dir, err)
	}
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		name := f.Name()
		path := filepath.Join(dir, name)
		switch media.KindOf(name) {
		case media.KindSidecar:
			data, err := os.ReadFile(path)
			if err != nil {
				return e, storageErr("read text", path, err)
			}
			text := strings.TrimSpace(string(data))
			kind, _ := media.Sidecar(name)
			switch kind {
			case media.ManualNotes:
				e.Text.ManualText = &text
			case media.Transcript:
				e.Text.TranscriptText = &text
			}
		case media.KindMedia:
			c, _ := media.Classify(name)
			e.MediaFiles[c] = append(e.MediaFiles[c], path)
		}
	}
	return e, nil
}

// readCreatedAt returns the creation time and ordering key recorded in
// metadata.json.
func readCreatedAt(path string) (time.Time, int64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return time.Time{}, 0, err
	}
	var raw rawMetadata
	if err := json.Unmarshal(data, &raw); err != nil {
		return time.Time{}, 0, err
	}
	if raw.CreatedAt == "" {
		return time.Time{}, 0, errors.New("created_at missing")
	}

	var (
		created time.Time
		perr    error
	)
	for _, layout := range createdAtLayouts {
		created, perr = time.ParseInLocation(layout, raw.CreatedAt, time.Local)
		if perr == nil {
			break
		}
	}
	if perr != nil {
		return time.Time{}, 0, perr
	}

	seq := raw.Sequence
	if seq == 0 {
		seq = created.UnixNano()
	}
	return created, seq, nil
}
