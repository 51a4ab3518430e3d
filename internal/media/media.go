// Package media classifies the files found inside an entry directory.
package media

import (
	"path/filepath"
	"strconv"
	"strings"
)

// Category is a kind of captured media.
type Category string

const (
	Image Category = "image"
	Video Category = "video"
	Audio Category = "audio"
)

// SidecarKind identifies one of the recognized text sidecar files.
type SidecarKind int

const (
	ManualNotes SidecarKind = iota
	Transcript
)

// Kind is the classification outcome for a single file. Every file is
// exactly one of these.
type Kind int

const (
	KindIgnored Kind = iota
	KindMedia
	KindSidecar
)

const (
	// NotesFile holds typed notes for an entry
	NotesFile = "notes.txt"
	// TranscriptFile holds the voice note transcript for an entry
	TranscriptFile = "voice_transcript.txt"
	// MetadataFile is written once when an entry is created
	MetadataFile = "metadata.json"
)

var extensions = map[string]Category{
	".png":  Image,
	".jpg":  Image,
	".jpeg": Image,
	".webp": Image,
	".bmp":  Image,
	".gif":  Image,
	".heic": Image,

	".mp4":  Video,
	".mov":  Video,
	".m4v":  Video,
	".avi":  Video,
	".mkv":  Video,
	".webm": Video,

	".wav": Audio,
	".mp3": Audio,
	".m4a": Audio,
	".aac": Audio,
	".ogg": Audio,
}

var sidecars = map[string]SidecarKind{
	NotesFile:      ManualNotes,
	TranscriptFile: Transcript,
}

// Categories returns the media categories in display order.
func Categories() []Category {
	return []Category{Image, Video, Audio}
}

// Classify maps a file name to its media category using the lowercased
// extension. The second result is false for unrecognized extensions.
func Classify(name string) (Category, bool) {
	c, ok := extensions[strings.ToLower(filepath.Ext(name))]
	return c, ok
}

// Sidecar reports whether name is one of the recognized text sidecars.
// Matching is exact on the base name.
func Sidecar(name string) (SidecarKind, bool) {
	k, ok := sidecars[filepath.Base(name)]
	return k, ok
}

// KindOf classifies a file as media, sidecar, or ignored. Sidecars are
// checked first so a file never lands in two buckets.
func KindOf(name string) Kind {
	base := filepath.Base(name)
	if base == MetadataFile {
		return KindIgnored
	}
	if _, ok := Sidecar(base); ok {
		return KindSidecar
	}
	if _, ok := Classify(base); ok {
		return KindMedia
	}
	return KindIgnored
}

// Count returns the display label for n items of this category,
// e.g. "1 image" or "3 videos".
func (c Category) Count(n int) string {
	label := string(c)
	if n > 1 {
		label += "s"
	}
	return strconv.Itoa(n) + " " + label
}

// Title returns the category name with an uppercase first letter.
func (c Category) Title() string {
	s := string(c)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
