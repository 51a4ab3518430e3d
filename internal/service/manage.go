package service

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/reasonance-lab/artifactmaker/internal/classes"
	"github.com/reasonance-lab/artifactmaker/internal/entry"
	"github.com/reasonance-lab/artifactmaker/internal/logging"
	"github.com/reasonance-lab/artifactmaker/internal/media"
	"github.com/reasonance-lab/artifactmaker/internal/storage"
	"github.com/reasonance-lab/artifactmaker/internal/timeutil"
)

const (
	snippetLimit = 70
	snippetKeep  = 67
	labelSep     = " · "
)

// ManageService lists entries for selection and deletes them.
type ManageService struct {
	store *storage.Store
	log   *logging.Logger
}

// NewManageService creates a new ManageService
func NewManageService(store *storage.Store, log *logging.Logger) *ManageService {
	return &ManageService{store: store, log: log}
}

// Options returns one option per saved entry of class, newest first.
func (s *ManageService) Options(class classes.ClassInfo) ([]EntryOption, error) {
	buckets, err := s.store.List(class)
	if err != nil {
		return nil, err
	}
	var options []EntryOption
	for _, b := range buckets {
		for _, e := range b.Entries {
			options = append(options, NewEntryOption(b.Date, e))
		}
	}
	return options, nil
}

// Find returns the option for one entry.
func (s *ManageService) Find(class classes.ClassInfo, day time.Time, entryID string) (EntryOption, bool, error) {
	options, err := s.Options(class)
	if err != nil {
		return EntryOption{}, false, err
	}
	key := day.Format(entry.DateLayout)
	for _, o := range options {
		if o.EntryID == entryID && o.Date.Format(entry.DateLayout) == key {
			return o, true, nil
		}
	}
	return EntryOption{}, false, nil
}

// Delete removes one entry and describes the result.
func (s *ManageService) Delete(class classes.ClassInfo, day time.Time, entryID string) (storage.DeleteResult, Outcome) {
	result := s.store.Delete(class, day, entryID)
	dateKey := day.Format(entry.DateLayout)

	switch result.Status {
	case storage.DeleteRemoved:
		return result, Outcome{
			Status:  StatusSuccess,
			Message: fmt.Sprintf("Deleted entry from %s in %s.", dateKey, class.Name),
		}
	case storage.DeleteRemovedCleanupIncomplete:
		return result, Outcome{
			Status:  StatusWarning,
			Message: fmt.Sprintf("Deleted entry from %s in %s, but its empty folders could not be removed.", dateKey, class.Name),
			Detail:  result.PruneErr.Error(),
		}
	case storage.DeleteFailed:
		return result, Outcome{
			Status:  StatusError,
			Message: "We couldn't delete that entry.",
			Detail:  result.Err.Error(),
		}
	default:
		return result, Outcome{
			Status:  StatusError,
			Message: "We couldn't delete that entry. It may have already been removed.",
		}
	}
}

// NewEntryOption builds the option for e, saved on day. The label reads
// "Jan 15, 2024 · 9:30 AM · 2 images, 1 video · "snippet"".
func NewEntryOption(day time.Time, e entry.Entry) EntryOption {
	opt := EntryOption{
		Date:           day,
		EntryID:        e.EntryID,
		CreatedAt:      e.CreatedAt,
		ManualText:     e.Text.ManualText,
		TranscriptText: e.Text.TranscriptText,
	}
	for _, c := range media.Categories() {
		if n := len(e.MediaFiles[c]); n > 0 {
			opt.MediaCounts = append(opt.MediaCounts, MediaCount{Category: c, Count: n})
		}
	}

	parts := []string{timeutil.FormatShortDate(day), timeutil.FormatEntryTime(e.CreatedAt)}
	if len(opt.MediaCounts) > 0 {
		counts := make([]string, len(opt.MediaCounts))
		for i, mc := range opt.MediaCounts {
			counts[i] = mc.Category.Count(mc.Count)
		}
		parts = append(parts, strings.Join(counts, ", "))
	}
	if snippet := Snippet(e.Snippet()); snippet != "" {
		parts = append(parts, `"`+snippet+`"`)
	}
	opt.Label = strings.Join(parts, labelSep)
	return opt
}

// Snippet trims text and shortens it to 67 characters plus an ellipsis when
// it is longer than 70.
func Snippet(text string) string {
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) <= snippetLimit {
		return text
	}
	runes := []rune(text)
	return strings.TrimSpace(string(runes[:snippetKeep])) + "…"
}
