package entry

import (
	"time"

	"github.com/reasonance-lab/artifactmaker/internal/media"
)

// DateLayout is the on-disk format of date directories.
const DateLayout = "2006-01-02"

// Text holds the optional text sidecars of an entry.
type Text struct {
	ManualText     *string `json:"manual_text,omitempty" yaml:"manual_text,omitempty"`
	TranscriptText *string `json:"transcript_text,omitempty" yaml:"transcript_text,omitempty"`
}

// Entry represents one capture session reconstructed from its directory
type Entry struct {
	EntryID    string                      `json:"entry_id" yaml:"entry_id"`
	CreatedAt  time.Time                   `json:"created_at" yaml:"created_at"`
	Directory  string                      `json:"directory" yaml:"directory"`
	MediaFiles map[media.Category][]string `json:"media_files" yaml:"media_files"`
	Text       Text                        `json:"text" yaml:"text"`

	// Sequence is the creation order key from metadata (UnixNano), or the
	// directory mtime when metadata could not be read.
	Sequence int64 `json:"-" yaml:"-"`
}

// MediaCount returns the number of files in the given category.
func (e Entry) MediaCount(c media.Category) int {
	return len(e.MediaFiles[c])
}

// HasMedia reports whether any media file was attached.
func (e Entry) HasMedia() bool {
	for _, paths := range e.MediaFiles {
		if len(paths) > 0 {
			return true
		}
	}
	return false
}

// Snippet returns the manual text, falling back to the transcript.
func (e Entry) Snippet() string {
	if e.Text.ManualText != nil && *e.Text.ManualText != "" {
		return *e.Text.ManualText
	}
	if e.Text.TranscriptText != nil {
		return *e.Text.TranscriptText
	}
	return ""
}

// DateBucket groups all entries for one class on one calendar date.
type DateBucket struct {
	Date    time.Time `json:"date" yaml:"date"`
	Entries []Entry   `json:"entries" yaml:"entries"`
}

// Key returns the bucket date in DateLayout.
func (b DateBucket) Key() string {
	return b.Date.Format(DateLayout)
}

// Metadata is the content of metadata.json. It is written once when the
// entry directory is created.
type Metadata struct {
	Class     string    `json:"class"`
	Date      string    `json:"date"`
	EntryID   string    `json:"entry_id"`
	CreatedAt time.Time `json:"created_at"`
	Sequence  int64     `json:"sequence,omitempty"`
}
