package handlers

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"time"

	"github.com/reasonance-lab/artifactmaker/internal/cli"
	"github.com/reasonance-lab/artifactmaker/internal/service"
	"github.com/reasonance-lab/artifactmaker/internal/storage"
	"github.com/reasonance-lab/artifactmaker/internal/timeutil"
	"github.com/reasonance-lab/artifactmaker/internal/transcribe"
)

// CaptureInput holds the flags of the capture command.
type CaptureInput struct {
	Class        string
	Date         string
	Files        []string
	Camera       []string
	Note         string
	Audio        string
	NoTranscribe bool
}

// Capture reads the given files and saves them as one new entry.
func Capture(ctx context.Context, deps *cli.Deps, in CaptureInput) {
	class, ok := resolveClass(deps, in.Class)
	if !ok {
		return
	}
	day, ok := parseEntryDate(deps, in.Date)
	if !ok {
		return
	}

	uploads := make([]storage.Upload, 0, len(in.Files))
	for _, path := range in.Files {
		data, ok := readInput(deps, path)
		if !ok {
			return
		}
		uploads = append(uploads, storage.Upload{Name: filepath.Base(path), Data: data})
	}

	captures := make([]storage.Capture, 0, len(in.Camera))
	for _, path := range in.Camera {
		data, ok := readInput(deps, path)
		if !ok {
			return
		}
		captures = append(captures, storage.Capture{
			Name: filepath.Base(path),
			Data: data,
			MIME: mime.TypeByExtension(filepath.Ext(path)),
		})
	}

	state := &transcribe.AudioState{}
	transcriptFailed := false
	if in.Audio != "" {
		clip, ok := readInput(deps, in.Audio)
		if !ok {
			return
		}
		out := deps.Services.Capture.AttachAudio(ctx, state, clip, !in.NoTranscribe)
		cli.PrintOutcome(deps, out)
		transcriptFailed = out.Status == service.StatusError
	}

	result := deps.Services.Capture.Save(service.CaptureRequest{
		Class:    class,
		Date:     day,
		Uploads:  uploads,
		Captures: captures,
		Notes:    in.Note,
	}, state)
	cli.PrintOutcome(deps, result.Outcome)

	if result.Err != nil {
		if errors.Is(result.Err, service.ErrNothingToSave) {
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: Pass at least one of --file, --camera, --audio, or --note")
		} else {
			_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that the data directory is writable: %s\n", deps.Services.Store.Root())
		}
		deps.Exit(1)
		return
	}
	for _, path := range result.Files {
		_, _ = fmt.Fprintf(deps.Stdout, "  %s\n", path)
	}
	if transcriptFailed {
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: The entry was saved with its audio but no transcript")
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: 'artifactmaker transcribe %s' prints the text only; capture the entry again to store a transcript\n", in.Audio)
	}
}

// TranscribeFile runs one audio file through the configured engine and
// prints the transcript.
func TranscribeFile(ctx context.Context, deps *cli.Deps, path string) {
	clip, ok := readInput(deps, path)
	if !ok {
		return
	}
	if !deps.Services.Transcriber.Available() {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: No transcription engine is available")
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Install %s, or set WHISPER_BACKEND=openai and OPENAI_API_KEY\n", transcribe.WhisperBinary)
		deps.Exit(1)
		return
	}

	state := &transcribe.AudioState{}
	out := deps.Services.Capture.AttachAudio(ctx, state, clip, true)
	if out.Status == service.StatusSuccess {
		_, _ = fmt.Fprintln(deps.Stdout, *state.Transcript())
		return
	}
	cli.PrintOutcome(deps, out)
	if out.Status == service.StatusError {
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Re-run the command to try again")
		deps.Exit(1)
	}
}

func parseEntryDate(deps *cli.Deps, value string) (time.Time, bool) {
	if value == "" {
		return timeutil.Today(), true
	}
	day, err := timeutil.ParseDate(value)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid date '%s'\n", value)
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return time.Time{}, false
	}
	return day, true
}

func readInput(deps *cli.Deps, path string) ([]byte, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to read '%s'\n", path)
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return nil, false
	}
	return data, true
}
