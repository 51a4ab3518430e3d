package handlers

import (
	"fmt"

	"github.com/reasonance-lab/artifactmaker/internal/cli"
	"github.com/reasonance-lab/artifactmaker/internal/entry"
	"github.com/reasonance-lab/artifactmaker/internal/storage"
	"github.com/reasonance-lab/artifactmaker/internal/timeutil"
)

// DeleteEntry removes one saved entry after confirmation, unless yes is set.
func DeleteEntry(deps *cli.Deps, className, date, entryID string, yes bool) {
	class, ok := resolveClass(deps, className)
	if !ok {
		return
	}
	if date == "" {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: --date is required")
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Run 'artifactmaker entries --class %s' to see entry dates and ids\n", class.Slug)
		deps.Exit(1)
		return
	}
	day, err := timeutil.ParseDate(date)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid date '%s'\n", date)
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	opt, found, err := deps.Services.Manage.Find(class, day, entryID)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to read entries")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}
	if !found {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: No entry '%s' on %s in %s\n", entryID, day.Format(entry.DateLayout), class.Name)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Run 'artifactmaker entries --class %s' to see saved entries\n", class.Slug)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Entry to delete:")
	_, _ = fmt.Fprintf(deps.Stdout, "  %s\n", opt.Label)

	if !yes && !cli.Confirm(deps, "Delete this entry?") {
		_, _ = fmt.Fprintln(deps.Stdout, "Deletion cancelled")
		return
	}

	result, out := deps.Services.Manage.Delete(class, day, entryID)
	cli.PrintOutcome(deps, out)
	if result.Status == storage.DeleteRemovedCleanupIncomplete {
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Remove the empty folder manually if it is still there: %s\n", deps.Services.Store.DateDir(class, day))
	}
	if !result.Removed() {
		deps.Exit(1)
	}
}
