package ui

import (
	"github.com/charmbracelet/lipgloss"
	tint "github.com/lrstanley/bubbletint"
)

// Styles contains all the styles used in the gallery browser
type Styles struct {
	App lipgloss.Style

	// Class tabs
	TabBar      lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	// Slide
	ViewTitle lipgloss.Style
	SlideMeta lipgloss.Style
	Section   lipgloss.Style
	FileName  lipgloss.Style
	Body      lipgloss.Style
	Muted     lipgloss.Style
	NavOn     lipgloss.Style
	NavOff    lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusKey  lipgloss.Style
	StatusHelp lipgloss.Style

	Dialog lipgloss.Style

	// Outcomes
	Error   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style
	Info    lipgloss.Style
}

// NewStylesFromRegistry creates a Styles struct using colors from a bubbletint registry.
// This maps theme colors to semantic UI elements:
// - Primary: Purple (tabs, titles)
// - Secondary: Cyan (times, keys, file names)
// - Muted: BrightBlack (inactive elements, labels)
// - Success/Warning/Error: Green/Yellow/Red
func NewStylesFromRegistry(r *tint.Registry) Styles {
	primary := r.Purple()
	secondary := r.Cyan()
	muted := r.BrightBlack()
	fg := r.Fg()
	bg := r.Bg()

	return Styles{
		App: lipgloss.NewStyle().Padding(1, 2),

		TabBar: lipgloss.NewStyle().
			MarginBottom(1).
			BorderBottom(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(muted),
		TabActive: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			Underline(true).
			Padding(0, 2),
		TabInactive: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 2),

		ViewTitle: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			MarginBottom(1),
		SlideMeta: lipgloss.NewStyle().
			Foreground(secondary),
		Section: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),
		FileName: lipgloss.NewStyle().
			Foreground(secondary),
		Body: lipgloss.NewStyle().
			Foreground(fg),
		Muted: lipgloss.NewStyle().
			Foreground(muted),
		NavOn: lipgloss.NewStyle().
			Foreground(fg).
			Bold(true),
		NavOff: lipgloss.NewStyle().
			Foreground(muted).
			Faint(true),

		StatusBar: lipgloss.NewStyle().
			Foreground(fg).
			Background(bg).
			Padding(0, 1),
		StatusKey: lipgloss.NewStyle().
			Foreground(secondary).
			Bold(true),
		StatusHelp: lipgloss.NewStyle().
			Foreground(muted),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(1, 2).
			Width(60),

		Error: lipgloss.NewStyle().
			Foreground(r.Red()),
		Warning: lipgloss.NewStyle().
			Foreground(r.Yellow()),
		Success: lipgloss.NewStyle().
			Foreground(r.Green()),
		Info: lipgloss.NewStyle().
			Foreground(secondary),
	}
}

// WithAccent returns a copy of s whose active tab, title, and section
// headings use a class accent color such as "#059669". An empty accent
// keeps the theme colors.
func (s Styles) WithAccent(accent string) Styles {
	if accent == "" {
		return s
	}
	c := lipgloss.Color(accent)
	s.TabActive = s.TabActive.Foreground(c)
	s.ViewTitle = s.ViewTitle.Foreground(c)
	s.Section = s.Section.Foreground(c)
	s.Dialog = s.Dialog.BorderForeground(c)
	return s
}
