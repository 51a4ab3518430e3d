package storage

import "fmt"

// StorageError reports a filesystem failure while creating or writing an
// entry. Files written before the failure are left in place.
type StorageError struct {
	Op   string // operation, e.g. "create entry", "save file"
	Path string // path being written
	Err  error  // underlying cause
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageErr(op, path string, err error) error {
	return &StorageError{Op: op, Path: path, Err: err}
}
