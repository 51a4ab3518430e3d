package ui

import (
	"testing"
)

func TestNewThemeProvider(t *testing.T) {
	tests := []struct {
		name    string
		initial string
		want    string
	}{
		{"empty uses default", "", DefaultTheme},
		{"known theme", "nord", "nord"},
		{"unknown falls back", "nonexistent-theme-xyz", DefaultTheme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tp := NewThemeProvider(tt.initial)
			if got := tp.CurrentName(); got != tt.want {
				t.Errorf("expected theme %q, got %q", tt.want, got)
			}
		})
	}
}

func TestThemeProvider_SetTheme(t *testing.T) {
	tp := NewThemeProvider("")

	if !tp.SetTheme("nord") {
		t.Error("expected SetTheme to return true for a known theme")
	}
	if tp.CurrentName() != "nord" {
		t.Errorf("expected theme 'nord', got %q", tp.CurrentName())
	}

	if tp.SetTheme("nonexistent-theme-xyz") {
		t.Error("expected SetTheme to return false for an unknown theme")
	}
	if tp.CurrentName() != "nord" {
		t.Errorf("theme should not change after a failed SetTheme, got %q", tp.CurrentName())
	}
}

func TestThemeProvider_Cycle(t *testing.T) {
	tp := NewThemeProvider("dracula")

	next := tp.NextTheme()
	if tp.CurrentName() != next {
		t.Errorf("CurrentName() should match NextTheme(), got %q and %q", tp.CurrentName(), next)
	}

	back := tp.PreviousTheme()
	if back != "dracula" {
		t.Errorf("expected PreviousTheme to return to dracula, got %q", back)
	}
}

func TestThemeProvider_Styles(t *testing.T) {
	tp := NewThemeProvider("dracula")

	styles := tp.Styles()
	if styles.App.GetPaddingTop() == 0 && styles.App.GetPaddingBottom() == 0 {
		t.Error("expected App style to have padding")
	}
	if tp.CurrentDisplayName() == "" {
		t.Error("expected non-empty display name")
	}
}
