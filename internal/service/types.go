// Package service provides the use cases of artifactmaker: saving a capture,
// browsing a class gallery, and managing saved entries. It wraps the storage,
// transcription, and config packages for both the CLI and TUI frontends.
package service

import (
	"time"

	"github.com/reasonance-lab/artifactmaker/internal/classes"
	"github.com/reasonance-lab/artifactmaker/internal/media"
	"github.com/reasonance-lab/artifactmaker/internal/storage"
)

// Status classifies an Outcome for display.
type Status int

const (
	StatusSuccess Status = iota
	StatusInfo
	StatusWarning
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusInfo:
		return "info"
	case StatusWarning:
		return "warning"
	case StatusError:
		return "error"
	}
	return "unknown"
}

// Outcome is the user-facing result of an operation. It is returned to the
// caller and never stored.
type Outcome struct {
	Status  Status
	Message string
	// Detail carries the underlying cause for errors, if any.
	Detail string
}

// OK reports whether the outcome is a success or informational.
func (o Outcome) OK() bool {
	return o.Status == StatusSuccess || o.Status == StatusInfo
}

// CaptureRequest is everything collected for one entry.
type CaptureRequest struct {
	Class    classes.ClassInfo
	Date     time.Time
	Uploads  []storage.Upload
	Captures []storage.Capture
	Notes    string
}

// SaveResult reports what Save wrote.
type SaveResult struct {
	Outcome Outcome
	// Handle is nil when nothing was written.
	Handle *storage.Handle
	Files  []string
	Err    error
}

// MediaCount is the number of files of one category in an entry.
type MediaCount struct {
	Category media.Category
	Count    int
}

// EntryOption describes one saved entry for selection and deletion.
type EntryOption struct {
	Label          string
	Date           time.Time
	EntryID        string
	CreatedAt      time.Time
	ManualText     *string
	TranscriptText *string
	MediaCounts    []MediaCount
}

// ExportEntry is the serialized form of one entry.
type ExportEntry struct {
	Date       string    `json:"date" yaml:"date"`
	EntryID    string    `json:"entry_id" yaml:"entry_id"`
	CreatedAt  time.Time `json:"created_at" yaml:"created_at"`
	Directory  string    `json:"directory" yaml:"directory"`
	Images     []string  `json:"images" yaml:"images"`
	Videos     []string  `json:"videos" yaml:"videos"`
	Audio      []string  `json:"audio" yaml:"audio"`
	Notes      *string   `json:"notes,omitempty" yaml:"notes,omitempty"`
	Transcript *string   `json:"transcript,omitempty" yaml:"transcript,omitempty"`
}

// ExportDocument is a class listing prepared for JSON or YAML output.
type ExportDocument struct {
	Class       classes.ClassInfo `json:"class" yaml:"class"`
	GeneratedAt time.Time         `json:"generated_at" yaml:"generated_at"`
	Entries     []ExportEntry     `json:"entries" yaml:"entries"`
}
