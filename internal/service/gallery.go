package service

import (
	"time"

	"github.com/reasonance-lab/artifactmaker/internal/classes"
	"github.com/reasonance-lab/artifactmaker/internal/entry"
	"github.com/reasonance-lab/artifactmaker/internal/logging"
	"github.com/reasonance-lab/artifactmaker/internal/media"
	"github.com/reasonance-lab/artifactmaker/internal/slides"
	"github.com/reasonance-lab/artifactmaker/internal/storage"
	"github.com/reasonance-lab/artifactmaker/internal/timeutil"
)

// GalleryService reads class listings for display and export.
type GalleryService struct {
	store    *storage.Store
	registry *classes.Registry
	ignore   storage.Matcher
	now      func() time.Time
	log      *logging.Logger
}

// NewGalleryService creates a new GalleryService. ignore may be nil.
func NewGalleryService(store *storage.Store, registry *classes.Registry, ignore storage.Matcher, log *logging.Logger) *GalleryService {
	return &GalleryService{
		store:    store,
		registry: registry,
		ignore:   ignore,
		now:      time.Now,
		log:      log,
	}
}

// Classes returns the configured classes in display order.
func (s *GalleryService) Classes() []classes.ClassInfo {
	return s.registry.All()
}

// Resolve finds a class by slug or name.
func (s *GalleryService) Resolve(nameOrSlug string) (classes.ClassInfo, error) {
	return s.registry.Resolve(nameOrSlug)
}

// List returns the buckets of class whose date lies in [start, end]. Zero
// times leave that side of the range open.
func (s *GalleryService) List(class classes.ClassInfo, start, end time.Time) ([]entry.DateBucket, error) {
	buckets, err := s.store.List(class)
	if err != nil {
		return nil, err
	}
	if start.IsZero() && end.IsZero() {
		return buckets, nil
	}
	filtered := buckets[:0]
	for _, b := range buckets {
		if timeutil.IsInRange(b.Date, start, end) {
			filtered = append(filtered, b)
		}
	}
	return filtered, nil
}

// View returns the slides of every entry of class.
func (s *GalleryService) View(class classes.ClassInfo) (slides.View, error) {
	buckets, err := s.store.List(class)
	if err != nil {
		return slides.View{}, err
	}
	return slides.NewView(buckets), nil
}

// Health checks the class directory using the configured ignore patterns.
func (s *GalleryService) Health(class classes.ClassInfo) (storage.Health, error) {
	return s.store.Health(class, s.ignore)
}

// Export converts buckets into a serializable document.
func (s *GalleryService) Export(class classes.ClassInfo, buckets []entry.DateBucket) ExportDocument {
	doc := ExportDocument{
		Class:       class,
		GeneratedAt: s.now(),
		Entries:     []ExportEntry{},
	}
	for _, b := range buckets {
		for _, e := range b.Entries {
			doc.Entries = append(doc.Entries, ExportEntry{
				Date:       b.Key(),
				EntryID:    e.EntryID,
				CreatedAt:  e.CreatedAt,
				Directory:  e.Directory,
				Images:     nonNil(e.MediaFiles[media.Image]),
				Videos:     nonNil(e.MediaFiles[media.Video]),
				Audio:      nonNil(e.MediaFiles[media.Audio]),
				Notes:      e.Text.ManualText,
				Transcript: e.Text.TranscriptText,
			})
		}
	}
	return doc
}

func nonNil(paths []string) []string {
	if paths == nil {
		return []string{}
	}
	return paths
}
