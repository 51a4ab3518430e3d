// Package views contains the screens of the gallery browser.
package views

import (
	"fmt"
	"strings"

	"github.com/reasonance-lab/artifactmaker/internal/entry"
	"github.com/reasonance-lab/artifactmaker/internal/service"
	"github.com/reasonance-lab/artifactmaker/internal/tui/ui"
)

// StatusMsg carries an outcome to show in the view's status line. When
// Reload is set the view reloads its class afterwards.
type StatusMsg struct {
	Outcome service.Outcome
	Reload  bool
}

// EntryText returns the text copied for an entry: the typed notes, the
// transcript, or both separated by a blank line.
func EntryText(e entry.Entry) string {
	var notes, transcript string
	if e.Text.ManualText != nil {
		notes = strings.TrimSpace(*e.Text.ManualText)
	}
	if e.Text.TranscriptText != nil {
		transcript = strings.TrimSpace(*e.Text.TranscriptText)
	}

	switch {
	case notes != "" && transcript != "":
		return notes + "\n\nTranscript:\n" + transcript
	case notes != "":
		return notes
	default:
		return transcript
	}
}

// RenderOutcome renders an outcome in the style matching its status.
func RenderOutcome(o service.Outcome, styles ui.Styles) string {
	text := o.Message
	if o.Detail != "" {
		text = fmt.Sprintf("%s (%s)", text, o.Detail)
	}

	switch o.Status {
	case service.StatusSuccess:
		return styles.Success.Render(text)
	case service.StatusWarning:
		return styles.Warning.Render(text)
	case service.StatusError:
		return styles.Error.Render(text)
	default:
		return styles.Info.Render(text)
	}
}
