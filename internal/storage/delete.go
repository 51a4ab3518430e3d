package storage

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/reasonance-lab/artifactmaker/internal/classes"
)

// DeleteStatus is the outcome of Store.Delete.
type DeleteStatus int

const (
	// DeleteNotFound means no entry directory existed.
	DeleteNotFound DeleteStatus = iota
	// DeleteFailed means the entry directory could not be removed.
	DeleteFailed
	// DeleteRemoved means the entry and any emptied parents were removed.
	DeleteRemoved
	// DeleteRemovedCleanupIncomplete means the entry was removed but an
	// empty date or class directory could not be pruned.
	DeleteRemovedCleanupIncomplete
)

func (s DeleteStatus) String() string {
	switch s {
	case DeleteNotFound:
		return "not found"
	case DeleteFailed:
		return "failed"
	case DeleteRemoved:
		return "removed"
	case DeleteRemovedCleanupIncomplete:
		return "removed, cleanup incomplete"
	}
	return "unknown"
}

// DeleteResult reports what Delete did. Failures are values, not errors.
type DeleteResult struct {
	Status   DeleteStatus
	Dir      string
	Err      error // cause when Status is DeleteFailed
	PruneErr error // cause when Status is DeleteRemovedCleanupIncomplete
}

// Removed reports whether the entry directory itself was removed.
func (r DeleteResult) Removed() bool {
	return r.Status == DeleteRemoved || r.Status == DeleteRemovedCleanupIncomplete
}

// Delete removes an entry directory and its contents, then removes the date
// directory and the class directory if either is left empty. Emptiness is
// checked on disk at prune time.
func (s *Store) Delete(class classes.ClassInfo, day time.Time, entryID string) DeleteResult {
	dateDir := s.DateDir(class, day)
	dir := filepath.Join(dateDir, entryID)
	result := DeleteResult{Status: DeleteNotFound, Dir: dir}

	if entryID == "" || entryID == "." || entryID == ".." || entryID != filepath.Base(entryID) {
		return result
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return result
	}

	if err := s.removeAll(dir); err != nil {
		s.log.Errorf("delete %s failed: %v", dir, err)
		result.Status = DeleteFailed
		result.Err = err
		return result
	}

	result.Status = DeleteRemoved
	pruneErr := s.removeIfEmpty(dateDir)
	if pruneErr == nil {
		pruneErr = s.removeIfEmpty(s.ClassDir(class))
	}
	if pruneErr != nil {
		s.log.Warnf("entry %s removed but parent cleanup failed: %v", dir, pruneErr)
		result.Status = DeleteRemovedCleanupIncomplete
		result.PruneErr = pruneErr
	}
	s.log.Infof("deleted entry %s", dir)
	return result
}

// PruneEmpty retries the parent cleanup for a class and date. It is the
// follow-up for DeleteRemovedCleanupIncomplete.
func (s *Store) PruneEmpty(class classes.ClassInfo, day time.Time) error {
	if err := s.removeIfEmpty(s.DateDir(class, day)); err != nil {
		return err
	}
	return s.removeIfEmpty(s.ClassDir(class))
}

func (s *Store) removeIfEmpty(dir string) error {
	children, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	if len(children) > 0 {
		return nil
	}
	if err := s.remove(dir); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
