package views

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/reasonance-lab/artifactmaker/internal/classes"
	"github.com/reasonance-lab/artifactmaker/internal/media"
	"github.com/reasonance-lab/artifactmaker/internal/service"
	"github.com/reasonance-lab/artifactmaker/internal/slides"
	"github.com/reasonance-lab/artifactmaker/internal/timeutil"
	"github.com/reasonance-lab/artifactmaker/internal/tui/ui"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

type galleryMode int

const (
	galleryModeBrowse galleryMode = iota
	galleryModeDelete
)

// GalleryModel shows the entries of one class, one slide at a time.
type GalleryModel struct {
	services *service.Services
	sessions *slides.Sessions
	styles   ui.Styles
	keys     ui.KeyMap

	class  classes.ClassInfo
	view   slides.View
	cursor *slides.Cursor
	loaded bool
	err    error
	mode   galleryMode
	status *service.Outcome

	width  int
	height int
}

// galleryLoadedMsg is sent when a class listing has been read
type galleryLoadedMsg struct {
	slug string
	view slides.View
	err  error
}

// NewGalleryModel creates a gallery for class. Cursor positions are kept in
// sessions so they survive switching classes.
func NewGalleryModel(services *service.Services, sessions *slides.Sessions, class classes.ClassInfo, styles ui.Styles, keys ui.KeyMap) GalleryModel {
	return GalleryModel{
		services: services,
		sessions: sessions,
		styles:   styles,
		keys:     keys,
		class:    class,
	}
}

// Init implements tea.Model
func (m GalleryModel) Init() tea.Cmd {
	return m.load()
}

// Class returns the class being shown.
func (m GalleryModel) Class() classes.ClassInfo {
	return m.class
}

// SetClass switches to another class and starts loading it.
func (m GalleryModel) SetClass(class classes.ClassInfo) (GalleryModel, tea.Cmd) {
	m.saveCursor()
	m.class = class
	m.view = slides.View{}
	m.cursor = nil
	m.loaded = false
	m.err = nil
	m.mode = galleryModeBrowse
	m.status = nil
	return m, m.load()
}

// Current returns the slide under the cursor.
func (m GalleryModel) Current() (slides.Slide, bool) {
	if m.cursor == nil {
		return slides.Slide{}, false
	}
	return m.view.At(m.cursor.Position())
}

// IsConfirming reports whether a delete confirmation is open. All keys go
// to the gallery while it is.
func (m GalleryModel) IsConfirming() bool {
	return m.mode == galleryModeDelete
}

// SetSize sets the available width and height.
func (m *GalleryModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update implements tea.Model
func (m GalleryModel) Update(msg tea.Msg) (GalleryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.mode == galleryModeDelete {
			return m.handleDeleteMode(msg)
		}
		return m.handleBrowseMode(msg)

	case galleryLoadedMsg:
		if msg.slug != m.class.Slug {
			return m, nil
		}
		m.loaded = true
		m.err = msg.err
		if msg.err == nil {
			m.view = msg.view
			m.cursor = m.sessions.Open(m.class.Slug, msg.view)
		}
		return m, nil

	case StatusMsg:
		outcome := msg.Outcome
		m.status = &outcome
		if msg.Reload {
			return m, m.load()
		}
		return m, nil

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}
	return m, nil
}

func (m GalleryModel) handleBrowseMode(msg tea.KeyMsg) (GalleryModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Prev):
		m.move((*slides.Cursor).Prev)
	case key.Matches(msg, m.keys.Next):
		m.move((*slides.Cursor).Next)
	case key.Matches(msg, m.keys.First):
		m.move(func(c *slides.Cursor) bool { c.First(); return true })
	case key.Matches(msg, m.keys.Last):
		m.move(func(c *slides.Cursor) bool { c.Last(); return true })
	case key.Matches(msg, m.keys.Refresh):
		m.status = nil
		return m, m.load()
	case key.Matches(msg, m.keys.Copy):
		return m, m.copyCurrent()
	case key.Matches(msg, m.keys.Delete):
		if _, ok := m.Current(); ok {
			m.mode = galleryModeDelete
			m.status = nil
		}
	}
	return m, nil
}

// handleDeleteMode handles key events when in delete confirmation mode
func (m GalleryModel) handleDeleteMode(msg tea.KeyMsg) (GalleryModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.mode = galleryModeBrowse
		return m, m.deleteCurrent()
	case key.Matches(msg, m.keys.Back):
		m.mode = galleryModeBrowse
		m.status = &service.Outcome{Status: service.StatusInfo, Message: "Deletion cancelled."}
	}
	return m, nil
}

func (m *GalleryModel) move(step func(*slides.Cursor) bool) {
	if m.cursor == nil {
		return
	}
	if step(m.cursor) {
		m.status = nil
	}
	m.saveCursor()
}

func (m GalleryModel) saveCursor() {
	if m.cursor != nil {
		m.sessions.Save(m.class.Slug, m.cursor)
	}
}

func (m GalleryModel) load() tea.Cmd {
	class := m.class
	gallery := m.services.Gallery
	return func() tea.Msg {
		view, err := gallery.View(class)
		return galleryLoadedMsg{slug: class.Slug, view: view, err: err}
	}
}

func (m GalleryModel) copyCurrent() tea.Cmd {
	slide, ok := m.Current()
	if !ok {
		return nil
	}
	text := EntryText(slide.Entry)
	return func() tea.Msg {
		if text == "" {
			return StatusMsg{Outcome: service.Outcome{Status: service.StatusInfo, Message: "This entry has no text to copy."}}
		}
		if err := writeClipboard(text); err != nil {
			return StatusMsg{Outcome: service.Outcome{
				Status:  service.StatusError,
				Message: "Could not copy to the clipboard.",
				Detail:  err.Error(),
			}}
		}
		return StatusMsg{Outcome: service.Outcome{Status: service.StatusSuccess, Message: "Copied entry text to the clipboard."}}
	}
}

func (m GalleryModel) deleteCurrent() tea.Cmd {
	slide, ok := m.Current()
	if !ok {
		return nil
	}
	class := m.class
	manage := m.services.Manage
	return func() tea.Msg {
		_, outcome := manage.Delete(class, slide.Date, slide.Entry.EntryID)
		return StatusMsg{Outcome: outcome, Reload: true}
	}
}

// View implements tea.Model
func (m GalleryModel) View() string {
	st := m.styles.WithAccent(m.class.AccentColor)

	var b strings.Builder
	b.WriteString(st.ViewTitle.Render(m.class.GalleryTitle))
	b.WriteString("\n")

	switch {
	case !m.loaded:
		b.WriteString(st.Muted.Render("Loading entries..."))
	case m.err != nil:
		b.WriteString(st.Error.Render(fmt.Sprintf("Could not load entries: %v", m.err)))
	case m.view.Len() == 0:
		b.WriteString(st.Muted.Render(fmt.Sprintf("No entries saved for %s yet.", m.class.Name)))
		b.WriteString("\n")
		b.WriteString(st.Muted.Render(fmt.Sprintf("Capture one with: artifactmaker capture --class %s", m.class.Slug)))
	default:
		slide, _ := m.Current()
		if m.mode == galleryModeDelete {
			b.WriteString(m.renderDeleteConfirm(slide, st))
		} else {
			b.WriteString(m.renderSlide(slide, st))
		}
		b.WriteString("\n\n")
		b.WriteString(m.renderNav(st))
	}

	if m.status != nil {
		b.WriteString("\n\n")
		b.WriteString(RenderOutcome(*m.status, st))
	}
	return b.String()
}

func (m GalleryModel) renderSlide(slide slides.Slide, st ui.Styles) string {
	e := slide.Entry

	var b strings.Builder
	b.WriteString(st.SlideMeta.Render(timeutil.FormatDayHeading(slide.Date) + " · " + timeutil.FormatEntryTime(e.CreatedAt)))
	b.WriteString("\n")
	b.WriteString(st.Muted.Render(e.Directory))
	b.WriteString("\n")

	empty := true
	for _, c := range media.Categories() {
		files := e.MediaFiles[c]
		if len(files) == 0 {
			continue
		}
		empty = false
		b.WriteString("\n")
		b.WriteString(st.Section.Render(c.Title()))
		b.WriteString(st.Muted.Render(fmt.Sprintf(" (%d)", len(files))))
		b.WriteString("\n")
		for _, f := range files {
			b.WriteString("  ")
			b.WriteString(st.FileName.Render(filepath.Base(f)))
			b.WriteString("\n")
		}
	}

	body := st.Body
	if m.width > 8 {
		body = body.Width(m.width - 8)
	}
	if e.Text.ManualText != nil && *e.Text.ManualText != "" {
		empty = false
		b.WriteString("\n")
		b.WriteString(st.Section.Render("Notes"))
		b.WriteString("\n")
		b.WriteString(body.Render(*e.Text.ManualText))
		b.WriteString("\n")
	}
	if e.Text.TranscriptText != nil && *e.Text.TranscriptText != "" {
		empty = false
		b.WriteString("\n")
		b.WriteString(st.Section.Render("Transcript"))
		b.WriteString("\n")
		b.WriteString(body.Render(*e.Text.TranscriptText))
		b.WriteString("\n")
	}
	if empty {
		b.WriteString("\n")
		b.WriteString(st.Muted.Render("This entry has no media or text."))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m GalleryModel) renderNav(st ui.Styles) string {
	prev, next := st.NavOff, st.NavOff
	if m.cursor.CanPrev() {
		prev = st.NavOn
	}
	if m.cursor.CanNext() {
		next = st.NavOn
	}
	position := st.Muted.Render(fmt.Sprintf("Entry %d of %d", m.cursor.Position()+1, m.view.Len()))
	return lipgloss.JoinHorizontal(lipgloss.Top,
		prev.Render("← Newer"), "   ", position, "   ", next.Render("Older →"))
}

// renderDeleteConfirm renders the delete confirmation dialog
func (m GalleryModel) renderDeleteConfirm(slide slides.Slide, st ui.Styles) string {
	opt := service.NewEntryOption(slide.Date, slide.Entry)

	var b strings.Builder
	b.WriteString(st.Section.Render("Delete Entry"))
	b.WriteString("\n\n")
	b.WriteString(st.Warning.Render("Delete this entry and all of its files?"))
	b.WriteString("\n\n")
	b.WriteString(st.Body.Render(opt.Label))
	b.WriteString("\n\n")
	b.WriteString(st.Muted.Render("Press Y to confirm, N or Esc to cancel"))
	return st.Dialog.Render(b.String())
}
