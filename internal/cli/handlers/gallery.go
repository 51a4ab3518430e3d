package handlers

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/reasonance-lab/artifactmaker/internal/cli"
	"github.com/reasonance-lab/artifactmaker/internal/service"
	"github.com/reasonance-lab/artifactmaker/internal/timeutil"
	"gopkg.in/yaml.v3"
)

// Export formats accepted by Export.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatCSV  = "csv"
)

// ListGallery prints the entries of a class grouped by date, newest first.
// Zero start or end leave that side of the range open.
func ListGallery(deps *cli.Deps, className string, start, end time.Time) {
	class, ok := resolveClass(deps, className)
	if !ok {
		return
	}
	buckets, err := deps.Services.Gallery.List(class, start, end)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to read entries")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that the data directory is readable: %s\n", deps.Services.Store.Root())
		deps.Exit(1)
		return
	}

	period := cli.FormatDateRangeForDisplay(start, end)
	if len(buckets) == 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "No entries found for %s (%s)\n", class.Name, period)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "%s (%s)\n", class.GalleryTitle, period)
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 60))
	total := 0
	for i, b := range buckets {
		if i > 0 {
			_, _ = fmt.Fprintln(deps.Stdout)
		}
		_, _ = fmt.Fprintln(deps.Stdout, timeutil.FormatDayHeading(b.Date))
		_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 60))
		for _, e := range b.Entries {
			_, _ = fmt.Fprintln(deps.Stdout, cli.FormatEntryLine(e))
		}
		total += len(b.Entries)
	}
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 60))
	_, _ = fmt.Fprintf(deps.Stdout, "Total: %d %s on %d %s\n",
		total, cli.Pluralize("entry", total), len(buckets), cli.Pluralize("date", len(buckets)))
}

// ListEntries prints one selectable label per saved entry of a class.
func ListEntries(deps *cli.Deps, className string) {
	class, ok := resolveClass(deps, className)
	if !ok {
		return
	}
	options, err := deps.Services.Manage.Options(class)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to read entries")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}
	if len(options) == 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "No saved entries for %s yet.\n", class.Name)
		return
	}

	width := len(strconv.Itoa(len(options)))
	for i, o := range options {
		_, _ = fmt.Fprintf(deps.Stdout, "[%*d] %s\n", width, i+1, o.Label)
		_, _ = fmt.Fprintf(deps.Stdout, "%*s %s %s\n", width+2, "", o.Date.Format("2006-01-02"), o.EntryID)
	}
	_, _ = fmt.Fprintf(deps.Stdout, "\nDelete with: artifactmaker delete --class %s --date <date> <entry-id>\n", class.Slug)
}

// Validate reports the storage health of a class.
func Validate(deps *cli.Deps, className string) {
	class, ok := resolveClass(deps, className)
	if !ok {
		return
	}
	h, err := deps.Services.Gallery.Health(class)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to check class storage")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Class directory: %s\n", h.ClassDir)
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
	if !h.Exists {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: No entries saved yet")
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Dates:            %d\n", h.Buckets)
	_, _ = fmt.Fprintf(deps.Stdout, "Entries:          %d\n", h.Entries)
	_, _ = fmt.Fprintf(deps.Stdout, "Files:            %d\n", h.Files)
	_, _ = fmt.Fprintf(deps.Stdout, "Skipped folders:  %d\n", len(h.SkippedDirs))
	_, _ = fmt.Fprintf(deps.Stdout, "Missing metadata: %d\n", len(h.MissingMetadata))
	_, _ = fmt.Fprintf(deps.Stdout, "Unrecognized:     %d\n", len(h.Unrecognized))

	printPaths(deps, "Skipped folders (not a YYYY-MM-DD date):", h.SkippedDirs)
	printPaths(deps, "Entries without readable metadata.json:", h.MissingMetadata)
	printPaths(deps, "Files hidden from the gallery:", h.Unrecognized)

	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
	if h.Healthy() {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: ✓ Class storage is healthy")
		return
	}
	problems := len(h.MissingMetadata) + len(h.Unrecognized)
	_, _ = fmt.Fprintf(deps.Stderr, "Status: ⚠ %d %s to review\n", problems, cli.Pluralize("item", problems))
}

func printPaths(deps *cli.Deps, title string, paths []string) {
	if len(paths) == 0 {
		return
	}
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	_, _ = fmt.Fprintln(deps.Stdout, title)
	for _, p := range paths {
		_, _ = fmt.Fprintf(deps.Stdout, "  %s\n", p)
	}
}

// Export writes the entries of a class in the given format to stdout.
func Export(deps *cli.Deps, className, format string, start, end time.Time) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "yml" {
		format = FormatYAML
	}
	if format != FormatJSON && format != FormatYAML && format != FormatCSV {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Unsupported export format '%s'\n", format)
		_, _ = fmt.Fprintln(deps.Stderr, "Supported formats: json, yaml, csv")
		deps.Exit(1)
		return
	}

	class, ok := resolveClass(deps, className)
	if !ok {
		return
	}
	buckets, err := deps.Services.Gallery.List(class, start, end)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to read entries")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}
	doc := deps.Services.Gallery.Export(class, buckets)

	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(deps.Stdout)
		encoder.SetIndent("", "  ")
		err = encoder.Encode(doc)
	case FormatYAML:
		encoder := yaml.NewEncoder(deps.Stdout)
		encoder.SetIndent(2)
		err = encoder.Encode(doc)
		if err == nil {
			err = encoder.Close()
		}
	case FormatCSV:
		err = writeCSV(deps, doc)
	}
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to encode %s output\n", strings.ToUpper(format))
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
	}
}

var csvHeader = []string{"date", "entry_id", "created_at", "images", "videos", "audio", "notes", "transcript", "directory"}

func writeCSV(deps *cli.Deps, doc service.ExportDocument) error {
	writer := csv.NewWriter(deps.Stdout)
	if err := writer.Write(csvHeader); err != nil {
		return err
	}
	for _, e := range doc.Entries {
		row := []string{
			e.Date,
			e.EntryID,
			e.CreatedAt.Format(time.RFC3339),
			strings.Join(e.Images, ";"),
			strings.Join(e.Videos, ";"),
			strings.Join(e.Audio, ";"),
			deref(e.Notes),
			deref(e.Transcript),
			e.Directory,
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
