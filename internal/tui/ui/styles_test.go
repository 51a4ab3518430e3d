package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestNewStylesFromRegistry(t *testing.T) {
	styles := NewThemeProvider("").Styles()

	tests := []struct {
		name  string
		style lipgloss.Style
	}{
		{"App", styles.App},
		{"TabBar", styles.TabBar},
		{"TabActive", styles.TabActive},
		{"TabInactive", styles.TabInactive},
		{"ViewTitle", styles.ViewTitle},
		{"SlideMeta", styles.SlideMeta},
		{"Section", styles.Section},
		{"FileName", styles.FileName},
		{"Body", styles.Body},
		{"Muted", styles.Muted},
		{"NavOn", styles.NavOn},
		{"NavOff", styles.NavOff},
		{"StatusBar", styles.StatusBar},
		{"StatusKey", styles.StatusKey},
		{"StatusHelp", styles.StatusHelp},
		{"Dialog", styles.Dialog},
		{"Error", styles.Error},
		{"Warning", styles.Warning},
		{"Success", styles.Success},
		{"Info", styles.Info},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.style.Render("test") == "" {
				t.Errorf("expected non-empty rendered output for style %s", tt.name)
			}
		})
	}
}

func TestStyles_WithAccent(t *testing.T) {
	base := NewThemeProvider("").Styles()

	accented := base.WithAccent("#059669")
	if got := accented.TabActive.GetForeground(); got != lipgloss.Color("#059669") {
		t.Errorf("expected accent on active tab, got %v", got)
	}
	if got := accented.ViewTitle.GetForeground(); got != lipgloss.Color("#059669") {
		t.Errorf("expected accent on title, got %v", got)
	}
	if accented.TabInactive.GetForeground() != base.TabInactive.GetForeground() {
		t.Error("inactive tabs should keep the theme color")
	}

	unchanged := base.WithAccent("")
	if unchanged.TabActive.GetForeground() != base.TabActive.GetForeground() {
		t.Error("empty accent should keep the theme color")
	}
}
