package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/reasonance-lab/artifactmaker/internal/entry"
	"github.com/reasonance-lab/artifactmaker/internal/media"
	"github.com/reasonance-lab/artifactmaker/internal/service"
)

func TestPrintOutcome(t *testing.T) {
	tests := []struct {
		name       string
		outcome    service.Outcome
		wantStdout string
		wantStderr string
	}{
		{"success", service.Outcome{Status: service.StatusSuccess, Message: "Saved."}, "Saved.\n", ""},
		{"info", service.Outcome{Status: service.StatusInfo, Message: "Reusing."}, "Reusing.\n", ""},
		{"warning", service.Outcome{Status: service.StatusWarning, Message: "Careful."}, "", "Warning: Careful.\n"},
		{"error with detail", service.Outcome{Status: service.StatusError, Message: "Failed.", Detail: "disk full"}, "", "Error: Failed.\nDetails: disk full\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
			PrintOutcome(&Deps{Stdout: stdout, Stderr: stderr}, tt.outcome)
			if stdout.String() != tt.wantStdout {
				t.Errorf("stdout = %q, want %q", stdout.String(), tt.wantStdout)
			}
			if stderr.String() != tt.wantStderr {
				t.Errorf("stderr = %q, want %q", stderr.String(), tt.wantStderr)
			}
		})
	}
}

func TestFormatDateRangeForDisplay(t *testing.T) {
	jan15 := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.Local)
	jan20 := time.Date(2024, time.January, 20, 23, 59, 59, 0, time.Local)
	dec28 := time.Date(2023, time.December, 28, 0, 0, 0, 0, time.Local)

	tests := []struct {
		name       string
		start, end time.Time
		want       string
	}{
		{"open", time.Time{}, time.Time{}, "all dates"},
		{"open start", time.Time{}, jan20, "through Jan 20, 2024"},
		{"open end", jan15, time.Time{}, "since Jan 15, 2024"},
		{"single day", jan15, jan15.Add(12 * time.Hour), "Mon, Jan 15, 2024"},
		{"same year", jan15, jan20, "Jan 15 - Jan 20, 2024"},
		{"across years", dec28, jan15, "Dec 28, 2023 - Jan 15, 2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDateRangeForDisplay(tt.start, tt.end); got != tt.want {
				t.Errorf("FormatDateRangeForDisplay() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatMediaCounts(t *testing.T) {
	tests := []struct {
		name  string
		files map[media.Category][]string
		want  string
	}{
		{"none", nil, "no media"},
		{"single", map[media.Category][]string{media.Video: {"a.mp4"}}, "1 video"},
		{"mixed", map[media.Category][]string{
			media.Audio: {"a.wav"},
			media.Image: {"a.jpg", "b.png"},
		}, "2 images, 1 audio"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatMediaCounts(entry.Entry{MediaFiles: tt.files}); got != tt.want {
				t.Errorf("FormatMediaCounts() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatEntryLine(t *testing.T) {
	notes := "  Precipitate formed  "
	e := entry.Entry{
		EntryID:    "143000-deadbeef",
		CreatedAt:  time.Date(2024, time.January, 15, 14, 30, 0, 0, time.Local),
		MediaFiles: map[media.Category][]string{media.Image: {"a.jpg"}},
		Text:       entry.Text{ManualText: &notes},
	}

	got := FormatEntryLine(e)
	want := ` 2:30 PM  143000-deadbeef  1 image  "Precipitate formed"`
	if got != want {
		t.Errorf("FormatEntryLine() = %q, want %q", got, want)
	}

	e.Text = entry.Text{}
	if strings.Contains(FormatEntryLine(e), `"`) {
		t.Error("no snippet expected without text")
	}
}

func TestPluralize(t *testing.T) {
	tests := []struct {
		word  string
		count int
		want  string
	}{
		{"entry", 0, "entries"},
		{"entry", 1, "entry"},
		{"day", 2, "days"},
		{"date", 1, "date"},
		{"date", 2, "dates"},
	}
	for _, tt := range tests {
		if got := Pluralize(tt.word, tt.count); got != tt.want {
			t.Errorf("Pluralize(%q, %d) = %q, want %q", tt.word, tt.count, got, tt.want)
		}
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"  y  \n", true},
		{"yes\n", false},
		{"n\n", false},
		{"", false},
	}
	for _, tt := range tests {
		stdout := &bytes.Buffer{}
		deps := &Deps{Stdout: stdout, Stdin: strings.NewReader(tt.input)}
		if got := Confirm(deps, "Delete?"); got != tt.want {
			t.Errorf("Confirm(%q) = %v, want %v", tt.input, got, tt.want)
		}
		if stdout.String() != "Delete? [y/N]: " {
			t.Errorf("prompt = %q", stdout.String())
		}
	}
}
