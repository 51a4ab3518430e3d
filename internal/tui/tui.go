// Package tui provides the terminal gallery browser for artifactmaker.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/reasonance-lab/artifactmaker/internal/classes"
	"github.com/reasonance-lab/artifactmaker/internal/service"
	"github.com/reasonance-lab/artifactmaker/internal/slides"
	"github.com/reasonance-lab/artifactmaker/internal/tui/ui"
	"github.com/reasonance-lab/artifactmaker/internal/tui/views"
)

// Model is the root TUI model. Each configured class is a tab.
type Model struct {
	services *service.Services
	classes  []classes.ClassInfo
	active   int

	width    int
	height   int
	showHelp bool

	gallery  views.GalleryModel
	sessions *slides.Sessions

	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap
}

// New creates the browser opened on class. A zero class opens the first
// configured class.
func New(services *service.Services, class classes.ClassInfo) Model {
	all := services.Gallery.Classes()
	active := 0
	for i, c := range all {
		if c.Slug == class.Slug {
			active = i
			break
		}
	}

	themeProvider := ui.NewThemeProvider(services.Config.Get().Theme)
	styles := themeProvider.Styles()
	keys := ui.DefaultKeyMap()
	sessions := slides.NewSessions()

	return Model{
		services:      services,
		classes:       all,
		active:        active,
		sessions:      sessions,
		themeProvider: themeProvider,
		styles:        styles,
		keys:          keys,
		gallery:       views.NewGalleryModel(services, sessions, all[active], styles, keys),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.gallery.Init()
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.gallery.IsConfirming() {
			m.gallery, cmd = m.gallery.Update(msg)
			return m, cmd
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.NextClass):
			return m.switchClass(m.active + 1)

		case key.Matches(msg, m.keys.PrevClass):
			return m.switchClass(m.active - 1)

		case key.Matches(msg, m.keys.Theme):
			return m.changeTheme(m.themeProvider.NextTheme())

		case key.Matches(msg, m.keys.PrevTheme):
			return m.changeTheme(m.themeProvider.PreviousTheme())
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.gallery.SetSize(m.width, m.height-4) // tabs and status bar
		return m, nil
	}

	m.gallery, cmd = m.gallery.Update(msg)
	return m, cmd
}

func (m Model) switchClass(index int) (tea.Model, tea.Cmd) {
	n := len(m.classes)
	m.active = (index%n + n) % n
	var cmd tea.Cmd
	m.gallery, cmd = m.gallery.SetClass(m.classes[m.active])
	return m, cmd
}

func (m Model) changeTheme(name string) (tea.Model, tea.Cmd) {
	m.styles = m.themeProvider.Styles()
	m.gallery, _ = m.gallery.Update(ui.ThemeChangedMsg{ThemeName: name, Styles: m.styles})
	return m, m.saveTheme(name, m.themeProvider.CurrentDisplayName())
}

// saveTheme persists the theme and reports the result in the status line
func (m Model) saveTheme(name, displayName string) tea.Cmd {
	cfg := m.services.Config
	return func() tea.Msg {
		if err := cfg.SetTheme(name); err != nil {
			return views.StatusMsg{Outcome: service.Outcome{
				Status:  service.StatusWarning,
				Message: fmt.Sprintf("Theme set to %s but could not be saved.", displayName),
				Detail:  err.Error(),
			}}
		}
		return views.StatusMsg{Outcome: service.Outcome{
			Status:  service.StatusInfo,
			Message: "Theme: " + displayName,
		}}
	}
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	if m.showHelp {
		b.WriteString(m.renderHelp())
	} else {
		b.WriteString(m.gallery.View())
	}

	b.WriteString("\n\n")
	b.WriteString(m.renderStatusBar())
	return m.styles.App.Render(b.String())
}

// renderTabs renders one tab per class, the active one in its accent color
func (m Model) renderTabs() string {
	tabs := make([]string, 0, len(m.classes))
	for i, c := range m.classes {
		if i == m.active {
			tabs = append(tabs, m.styles.WithAccent(c.AccentColor).TabActive.Render(c.Name))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(c.Name))
		}
	}
	return m.styles.TabBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

// renderStatusBar renders the status bar at the bottom
func (m Model) renderStatusBar() string {
	var parts []string
	if m.gallery.IsConfirming() {
		parts = append(parts, m.renderKeyHelp("y", "delete"))
		parts = append(parts, m.renderKeyHelp("n/esc", "cancel"))
	} else {
		for _, b := range []key.Binding{m.keys.Prev, m.keys.Next, m.keys.NextClass, m.keys.Copy, m.keys.Delete, m.keys.Help, m.keys.Quit} {
			parts = append(parts, m.renderKeyHelp(b.Help().Key, b.Help().Desc))
		}
	}

	content := strings.Join(parts, "  ")
	if padding := m.width - lipgloss.Width(content) - 6; padding > 0 {
		content += strings.Repeat(" ", padding)
	}
	return m.styles.StatusBar.Render(content)
}

// renderKeyHelp renders a single key help item
func (m Model) renderKeyHelp(key, desc string) string {
	return fmt.Sprintf("%s %s",
		m.styles.StatusKey.Render(key),
		m.styles.StatusHelp.Render(desc))
}

// renderHelp renders the keyboard shortcut panel
func (m Model) renderHelp() string {
	var help strings.Builder
	help.WriteString(m.styles.ViewTitle.Render("Keyboard Shortcuts"))
	help.WriteString("\n")

	groups := []struct {
		title    string
		bindings []key.Binding
	}{
		{"Browse", []key.Binding{m.keys.Prev, m.keys.Next, m.keys.First, m.keys.Last}},
		{"Classes", []key.Binding{m.keys.NextClass, m.keys.PrevClass}},
		{"Entry", []key.Binding{m.keys.Copy, m.keys.Delete, m.keys.Refresh}},
		{"General", []key.Binding{m.keys.Theme, m.keys.PrevTheme, m.keys.Help, m.keys.Quit}},
	}
	for _, g := range groups {
		help.WriteString("\n")
		help.WriteString(m.styles.Section.Render(g.title + ":"))
		help.WriteString("\n")
		for _, b := range g.bindings {
			help.WriteString(fmt.Sprintf("  %-12s %s\n", b.Help().Key, b.Help().Desc))
		}
	}

	help.WriteString("\n")
	help.WriteString(m.styles.Muted.Render("Theme: " + m.themeProvider.CurrentDisplayName() + "  ·  Press ? to close"))
	return m.styles.Dialog.Render(help.String())
}

// Run starts the browser on class, or on the first class when class is zero.
func Run(services *service.Services, class classes.ClassInfo) error {
	p := tea.NewProgram(New(services, class), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
