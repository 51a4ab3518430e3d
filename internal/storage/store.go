// Package storage owns the on-disk entry hierarchy:
//
//	<root>/<class-slug>/<YYYY-MM-DD>/<entry-id>/
//
// Each entry directory holds an immutable metadata.json, optional text
// sidecars, and any number of media files. There is no multi-file commit:
// readers may observe an entry while its files are still being written.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/reasonance-lab/artifactmaker/internal/classes"
	"github.com/reasonance-lab/artifactmaker/internal/entry"
	"github.com/reasonance-lab/artifactmaker/internal/logging"
	"github.com/reasonance-lab/artifactmaker/internal/media"
)

const (
	// DefaultRoot is used when no data root is configured
	DefaultRoot = "data"

	timePrefixLayout = "150405"
	maxNameAttempts  = 100
	dirPerm          = 0o755
	filePerm         = 0o644
)

// Upload is an uploaded file: its original name and raw bytes.
type Upload struct {
	Name string
	Data []byte
}

// Capture is a still taken from a device camera.
type Capture struct {
	Name string
	Data []byte
	MIME string
}

// Handle identifies an entry directory created by Store.Create.
type Handle struct {
	Class     classes.ClassInfo
	Date      time.Time
	EntryID   string
	Dir       string
	CreatedAt time.Time
}

// Store creates, lists, and deletes entries under a root directory.
type Store struct {
	root      string
	now       func() time.Time
	newSuffix func() string
	removeAll func(path string) error
	remove    func(path string) error
	log       *logging.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the time source used for ids, file prefixes, and metadata.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithIDSuffix sets the generator for the random part of entry ids.
func WithIDSuffix(fn func() string) Option {
	return func(s *Store) {
		s.newSuffix = fn
	}
}

// WithRemover sets the calls Delete uses to remove an entry tree and to
// prune an empty directory. Nil keeps the os default.
func WithRemover(removeAll, remove func(path string) error) Option {
	return func(s *Store) {
		if removeAll != nil {
			s.removeAll = removeAll
		}
		if remove != nil {
			s.remove = remove
		}
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(l *logging.Logger) Option {
	return func(s *Store) {
		s.log = l
	}
}

// New creates a Store rooted at root. An empty root means DefaultRoot.
func New(root string, opts ...Option) *Store {
	if root == "" {
		root = DefaultRoot
	}
	s := &Store{
		root:      root,
		now:       time.Now,
		newSuffix: randomSuffix,
		removeAll: os.RemoveAll,
		remove:    os.Remove,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func randomSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// Root returns the storage root directory.
func (s *Store) Root() string {
	return s.root
}

// ClassDir returns the directory holding all dates for a class.
func (s *Store) ClassDir(class classes.ClassInfo) string {
	return filepath.Join(s.root, class.Slug)
}

// DateDir returns the directory holding all entries for a class and date.
func (s *Store) DateDir(class classes.ClassInfo, day time.Time) string {
	return filepath.Join(s.ClassDir(class), day.Format(entry.DateLayout))
}

// Create allocates a new entry id, creates its directory, and writes
// metadata.json. The id is the creation time (HHMMSS) plus a random suffix;
// the directory is created exclusively, so a colliding id is retried rather
// than shared.
func (s *Store) Create(class classes.ClassInfo, day time.Time) (*Handle, error) {
	dateKey := day.Format(entry.DateLayout)
	dateDir := s.DateDir(class, day)
	if err := os.MkdirAll(dateDir, dirPerm); err != nil {
		return nil, storageErr("create entry", dateDir, err)
	}

	var (
		id, dir string
		created time.Time
	)
	for attempt := 0; ; attempt++ {
		created = s.now()
		id = created.Format(timePrefixLayout) + "-" + s.newSuffix()
		dir = filepath.Join(dateDir, id)
		err := os.Mkdir(dir, dirPerm)
		if err == nil {
			break
		}
		if errors.Is(err, fs.ErrExist) && attempt < maxNameAttempts {
			continue
		}
		return nil, storageErr("create entry", dir, err)
	}

	meta := entry.Metadata{
		Class:     class.Slug,
		Date:      dateKey,
		EntryID:   id,
		CreatedAt: created,
		Sequence:  created.UnixNano(),
	}
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return nil, storageErr("write metadata", dir, err)
	}
	metaPath := filepath.Join(dir, media.MetadataFile)
	if err := writeExclusive(metaPath, data); err != nil {
		return nil, storageErr("write metadata", metaPath, err)
	}

	s.log.Infof("created entry %s/%s/%s", class.Slug, dateKey, id)
	return &Handle{
		Class:     class,
		Date:      day,
		EntryID:   id,
		Dir:       dir,
		CreatedAt: created,
	}, nil
}

// SaveFiles writes uploads into the entry directory as
// <HHMMSS>-<NN>-<sanitized-name>, where NN is the upload's position.
// Uploads with neither a name nor data are skipped but keep their position.
// Writing stops at the first failure; the paths already written are
// returned with the error.
func (s *Store) SaveFiles(h *Handle, uploads []Upload) ([]string, error) {
	prefix := s.now().Format(timePrefixLayout)
	saved := make([]string, 0, len(uploads))
	for i, u := range uploads {
		if u.Name == "" && len(u.Data) == 0 {
			continue
		}
		name := fmt.Sprintf("%s-%02d-%s", prefix, i, SafeFilename(u.Name))
		path, err := writeNew(h.Dir, name, u.Data)
		if err != nil {
			return saved, storageErr("save file", filepath.Join(h.Dir, name), err)
		}
		saved = append(saved, path)
	}
	return saved, nil
}

// SaveCaptures writes camera stills as camera-<HHMMSS>-<NN>-<name>. A name
// without an extension gets one derived from the MIME type.
func (s *Store) SaveCaptures(h *Handle, captures []Capture) ([]string, error) {
	prefix := s.now().Format(timePrefixLayout)
	saved := make([]string, 0, len(captures))
	for i, c := range captures {
		if len(c.Data) == 0 {
			continue
		}
		base := c.Name
		if base == "" {
			base = "camera"
		}
		if filepath.Ext(base) == "" {
			base += extensionForMIME(c.MIME)
		}
		name := fmt.Sprintf("camera-%s-%02d-%s", prefix, i, SafeFilename(base))
		path, err := writeNew(h.Dir, name, c.Data)
		if err != nil {
			return saved, storageErr("save capture", filepath.Join(h.Dir, name), err)
		}
		saved = append(saved, path)
	}
	return saved, nil
}

// SaveAudio writes a voice clip as audio-<HHMMSS>.wav.
func (s *Store) SaveAudio(h *Handle, data []byte) (string, error) {
	name := "audio-" + s.now().Format(timePrefixLayout) + ".wav"
	path, err := writeNew(h.Dir, name, data)
	if err != nil {
		return "", storageErr("save audio", filepath.Join(h.Dir, name), err)
	}
	return path, nil
}

// SaveText writes content trimmed and newline-terminated to name inside the
// entry directory. Existing files are never overwritten.
func (s *Store) SaveText(h *Handle, name, content string) (string, error) {
	path := filepath.Join(h.Dir, name)
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return "", storageErr("save text", path, fmt.Errorf("invalid file name %q", name))
	}
	if err := writeExclusive(path, []byte(strings.TrimSpace(content)+"\n")); err != nil {
		return "", storageErr("save text", path, err)
	}
	return path, nil
}

// SafeFilename reduces an uploaded name to a filesystem-safe stem plus its
// lowercased extension. An empty stem becomes "file".
func SafeFilename(original string) string {
	base := filepath.Base(strings.ReplaceAll(original, `\`, "/"))
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	ext = strings.ToLower(ext)
	if e := strings.TrimPrefix(ext, "."); e == "" || classes.Sanitize(e, true) != e {
		ext = ""
	}
	stem = classes.Sanitize(stem, false)
	if stem == "" {
		stem = "file"
	}
	return stem + ext
}

var mimeExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
	"image/bmp":  ".bmp",
	"image/heic": ".heic",
}

func extensionForMIME(mime string) string {
	mime = strings.ToLower(strings.TrimSpace(strings.SplitN(mime, ";", 2)[0]))
	if ext, ok := mimeExtensions[mime]; ok {
		return ext
	}
	return ".jpg"
}

// writeExclusive creates path and writes data, failing if path exists.
func writeExclusive(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, filePerm)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// writeNew writes data to dir/name, or to dir/<stem>-2<ext>, -3, ... when the
// name is taken. It returns the path written.
func writeNew(dir, name string, data []byte) (string, error) {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	candidate := name
	for n := 2; ; n++ {
		path := filepath.Join(dir, candidate)
		err := writeExclusive(path, data)
		if err == nil {
			return path, nil
		}
		if !errors.Is(err, fs.ErrExist) || n > maxNameAttempts {
			return "", err
		}
		candidate = fmt.Sprintf("%s-%d%s", stem, n, ext)
	}
}
