// Package cli provides the CLI presentation layer for artifactmaker.
// It handles command-line output formatting and user interaction.
package cli

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	"github.com/reasonance-lab/artifactmaker/internal/entry"
	"github.com/reasonance-lab/artifactmaker/internal/media"
	"github.com/reasonance-lab/artifactmaker/internal/service"
	"github.com/reasonance-lab/artifactmaker/internal/timeutil"
)

// PrintOutcome writes an outcome the way every command reports results:
// successes and info to stdout, warnings and errors to stderr with their
// detail on a "Details:" line.
func PrintOutcome(deps *Deps, out service.Outcome) {
	switch out.Status {
	case service.StatusSuccess, service.StatusInfo:
		_, _ = fmt.Fprintln(deps.Stdout, out.Message)
	case service.StatusWarning:
		_, _ = fmt.Fprintf(deps.Stderr, "Warning: %s\n", out.Message)
	default:
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %s\n", out.Message)
	}
	if out.Detail != "" {
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %s\n", out.Detail)
	}
}

// FormatDateRangeForDisplay formats a date range for human-readable display.
// Zero times are open ends.
func FormatDateRangeForDisplay(start, end time.Time) string {
	switch {
	case start.IsZero() && end.IsZero():
		return "all dates"
	case start.IsZero():
		return "through " + end.Format("Jan 2, 2006")
	case end.IsZero():
		return "since " + start.Format("Jan 2, 2006")
	}
	if start.Format(entry.DateLayout) == end.Format(entry.DateLayout) {
		return start.Format("Mon, Jan 2, 2006")
	}
	if start.Year() == end.Year() {
		return fmt.Sprintf("%s - %s", start.Format("Jan 2"), end.Format("Jan 2, 2006"))
	}
	return fmt.Sprintf("%s - %s", start.Format("Jan 2, 2006"), end.Format("Jan 2, 2006"))
}

// FormatMediaCounts formats the media of an entry like "2 images, 1 video".
// Returns "no media" when nothing is attached.
func FormatMediaCounts(e entry.Entry) string {
	var parts []string
	for _, c := range media.Categories() {
		if n := e.MediaCount(c); n > 0 {
			parts = append(parts, c.Count(n))
		}
	}
	if len(parts) == 0 {
		return "no media"
	}
	return strings.Join(parts, ", ")
}

// FormatEntryLine formats one entry of a gallery listing:
// "9:30 AM  093000-1a2b3c4d  2 images  "snippet"".
func FormatEntryLine(e entry.Entry) string {
	line := fmt.Sprintf("%8s  %s  %s", timeutil.FormatEntryTime(e.CreatedAt), e.EntryID, FormatMediaCounts(e))
	if snippet := service.Snippet(e.Snippet()); snippet != "" {
		line += `  "` + snippet + `"`
	}
	return line
}

// Pluralize returns the singular or plural form of a word based on count
func Pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	if n := len(word); n > 1 && word[n-1] == 'y' && !strings.ContainsRune("aeiou", rune(word[n-2])) {
		return word[:n-1] + "ies"
	}
	return word + "s"
}

// Confirm prints prompt and reads one line from stdin. Only "y" or "Y"
// confirms.
func Confirm(deps *Deps, prompt string) bool {
	_, _ = fmt.Fprintf(deps.Stdout, "%s [y/N]: ", prompt)

	scanner := bufio.NewScanner(deps.Stdin)
	if !scanner.Scan() {
		return false
	}
	response := strings.TrimSpace(scanner.Text())
	return response == "y" || response == "Y"
}
