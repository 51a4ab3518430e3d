package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/reasonance-lab/artifactmaker/internal/entry"
	"github.com/reasonance-lab/artifactmaker/internal/logging"
	"github.com/reasonance-lab/artifactmaker/internal/media"
	"github.com/reasonance-lab/artifactmaker/internal/storage"
	"github.com/reasonance-lab/artifactmaker/internal/transcribe"
)

// ErrNothingToSave is returned when a capture has no media, audio, or notes.
var ErrNothingToSave = errors.New("nothing to save")

const (
	msgNothingToSave     = "Add at least one photo, video, voice note, or typed note before saving."
	msgTranscriptReady   = "Voice transcription ready."
	msgTranscriptEmpty   = "Audio saved without a transcript. Check your Whisper configuration."
	msgTranscriptFailed  = "Transcription failed. Review the details below."
	msgTranscriptReused  = "Audio unchanged; reusing the existing transcript."
	msgTranscriptSkipped = "Audio attached without a transcript."
	msgNoAudio           = "Record or attach audio before transcribing."
	msgSavePartial       = "Saving stopped partway. The entry at %s may be incomplete; delete it and try again."
	msgSaveCreateFailed  = "Could not create the entry folder."
	msgSaved             = "Saved entry to %s/%s%s."
)

// CaptureService saves new entries.
type CaptureService struct {
	store       *storage.Store
	transcriber *transcribe.Transcriber
	log         *logging.Logger
}

// NewCaptureService creates a new CaptureService
func NewCaptureService(store *storage.Store, transcriber *transcribe.Transcriber, log *logging.Logger) *CaptureService {
	return &CaptureService{
		store:       store,
		transcriber: transcriber,
		log:         log,
	}
}

// AttachAudio records clip in state. A clip identical to the one already held
// keeps its transcript; a new clip is transcribed when run is true.
func (s *CaptureService) AttachAudio(ctx context.Context, state *transcribe.AudioState, clip []byte, run bool) Outcome {
	if !state.NeedsRetranscription(clip) {
		return Outcome{Status: StatusInfo, Message: msgTranscriptReused}
	}
	state.Set(clip, nil)
	if !run {
		return Outcome{Status: StatusInfo, Message: msgTranscriptSkipped}
	}
	return s.Transcribe(ctx, state)
}

// Transcribe runs the held clip through the engine and stores the transcript
// in state. A failed attempt leaves the clip in place so it can be retried.
func (s *CaptureService) Transcribe(ctx context.Context, state *transcribe.AudioState) Outcome {
	clip := state.Audio()
	if len(clip) == 0 {
		return Outcome{Status: StatusWarning, Message: msgNoAudio}
	}

	text, err := s.transcriber.Transcribe(ctx, clip)
	if err != nil {
		s.log.Errorf("transcription failed: %v", err)
		out := Outcome{Status: StatusError, Message: msgTranscriptFailed, Detail: err.Error()}
		if cause := errors.Unwrap(err); cause != nil {
			out.Detail = cause.Error()
		}
		return out
	}
	if text == "" {
		return Outcome{Status: StatusWarning, Message: msgTranscriptEmpty}
	}
	state.Set(clip, &text)
	return Outcome{Status: StatusSuccess, Message: msgTranscriptReady}
}

// Save validates req, writes a new entry, and clears state on success. The
// audio clip and transcript come from state, which may be nil.
func (s *CaptureService) Save(req CaptureRequest, state *transcribe.AudioState) SaveResult {
	var (
		clip       []byte
		transcript *string
	)
	if state != nil {
		clip = state.Audio()
		transcript = state.Transcript()
	}
	hasAudio := len(clip) > 0
	notes := strings.TrimSpace(req.Notes)

	if len(req.Uploads) == 0 && len(req.Captures) == 0 && !hasAudio && notes == "" {
		return SaveResult{
			Outcome: Outcome{Status: StatusWarning, Message: msgNothingToSave},
			Err:     ErrNothingToSave,
		}
	}

	h, err := s.store.Create(req.Class, req.Date)
	if err != nil {
		return SaveResult{
			Outcome: Outcome{Status: StatusError, Message: msgSaveCreateFailed, Detail: err.Error()},
			Err:     err,
		}
	}
	result := SaveResult{Handle: h}

	fail := func(err error) SaveResult {
		s.log.Errorf("save into %s stopped: %v", h.Dir, err)
		result.Err = err
		result.Outcome = Outcome{
			Status:  StatusError,
			Message: fmt.Sprintf(msgSavePartial, h.Dir),
			Detail:  err.Error(),
		}
		return result
	}

	files, err := s.store.SaveFiles(h, req.Uploads)
	result.Files = append(result.Files, files...)
	if err != nil {
		return fail(err)
	}
	if len(req.Captures) > 0 {
		files, err := s.store.SaveCaptures(h, req.Captures)
		result.Files = append(result.Files, files...)
		if err != nil {
			return fail(err)
		}
	}
	if hasAudio {
		path, err := s.store.SaveAudio(h, clip)
		if err != nil {
			return fail(err)
		}
		result.Files = append(result.Files, path)
		if transcript != nil && strings.TrimSpace(*transcript) != "" {
			path, err := s.store.SaveText(h, media.TranscriptFile, *transcript)
			if err != nil {
				return fail(err)
			}
			result.Files = append(result.Files, path)
		}
	}
	if notes != "" {
		path, err := s.store.SaveText(h, media.NotesFile, req.Notes)
		if err != nil {
			return fail(err)
		}
		result.Files = append(result.Files, path)
	}

	if state != nil {
		state.Clear()
	}
	result.Outcome = Outcome{
		Status:  StatusSuccess,
		Message: fmt.Sprintf(msgSaved, req.Class.Slug, req.Date.Format(entry.DateLayout), summarize(req, hasAudio, notes != "")),
	}
	return result
}

// summarize lists what was attached, e.g. " (2 uploads, audio clip)".
func summarize(req CaptureRequest, hasAudio, hasNotes bool) string {
	var parts []string
	if n := len(req.Uploads); n > 0 {
		parts = append(parts, plural(n, "upload"))
	}
	if n := len(req.Captures); n > 0 {
		parts = append(parts, plural(n, "camera photo"))
	}
	if hasAudio {
		parts = append(parts, "audio clip")
	}
	if hasNotes {
		parts = append(parts, "typed notes")
	}
	if len(parts) == 0 {
		return ""
	}
	return " (" + strings.Join(parts, ", ") + ")"
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
