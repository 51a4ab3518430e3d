package handlers

import (
	"os"
	"strings"
	"testing"
)

func TestDeleteEntry(t *testing.T) {
	tests := []struct {
		name        string
		stdin       string
		yes         bool
		wantDeleted bool
		wantStdout  string
	}{
		{"confirmed", "y\n", false, true, "Deleted entry from 2024-01-15 in Chemistry."},
		{"confirmed uppercase", "Y\n", false, true, "Deleted entry from 2024-01-15 in Chemistry."},
		{"declined", "n\n", false, false, "Deletion cancelled"},
		{"no answer", "", false, false, "Deletion cancelled"},
		{"yes flag", "", true, true, "Deleted entry from 2024-01-15 in Chemistry."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps, stdout, _, exitCode := setupTestDeps(t)
			deps.Stdin = strings.NewReader(tt.stdin)
			h := seedEntry(t, deps, labDay, "to be removed")

			DeleteEntry(deps, "chemistry", "2024-01-15", h.EntryID, tt.yes)

			if *exitCode != 0 {
				t.Errorf("expected exit code 0, got %d", *exitCode)
			}
			output := stdout.String()
			if !strings.Contains(output, "Entry to delete:") || !strings.Contains(output, `"to be removed"`) {
				t.Errorf("expected entry preview, got %q", output)
			}
			if !strings.Contains(output, tt.wantStdout) {
				t.Errorf("expected %q in output, got %q", tt.wantStdout, output)
			}
			_, err := os.Stat(h.Dir)
			if deleted := os.IsNotExist(err); deleted != tt.wantDeleted {
				t.Errorf("deleted = %v, expected %v", deleted, tt.wantDeleted)
			}
		})
	}
}

func TestDeleteEntry_Errors(t *testing.T) {
	tests := []struct {
		name       string
		date       string
		entryID    string
		wantStderr string
	}{
		{"missing date", "", "093000-abc", "--date is required"},
		{"invalid date", "15-01-2024", "093000-abc", "Invalid date '15-01-2024'"},
		{"unknown entry", "2024-01-15", "093000-missing", "No entry '093000-missing' on 2024-01-15 in Chemistry"},
		{"path traversal", "2024-01-15", "../2024-01-14", "No entry"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps, _, stderr, exitCode := setupTestDeps(t)
			seedEntry(t, deps, labDay, "")

			DeleteEntry(deps, "chemistry", tt.date, tt.entryID, true)

			if *exitCode != 1 {
				t.Errorf("expected exit code 1, got %d", *exitCode)
			}
			if !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("expected %q in stderr, got %q", tt.wantStderr, stderr.String())
			}
		})
	}
}

func TestDeleteEntry_DateFormats(t *testing.T) {
	deps, stdout, _, exitCode := setupTestDeps(t)
	h := seedEntry(t, deps, labDay, "")

	DeleteEntry(deps, "Chemistry", "15/01/2024", h.EntryID, true)

	if *exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *exitCode)
	}
	if !strings.Contains(stdout.String(), "Deleted entry") {
		t.Errorf("unexpected output: %q", stdout.String())
	}
}
