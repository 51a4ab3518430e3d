// Package slides turns a class listing into a linear sequence of entries
// that can be stepped through one at a time.
package slides

import (
	"sync"
	"time"

	"github.com/reasonance-lab/artifactmaker/internal/entry"
)

// Slide is one entry together with the date of its bucket.
type Slide struct {
	Date  time.Time
	Entry entry.Entry
}

// View is the flattened, ordered slides of one listing. Build a new View
// whenever the listing changes.
type View struct {
	slides []Slide
}

// NewView flattens buckets in order: newest date first, newest entry first
// within a date, as returned by the store.
func NewView(buckets []entry.DateBucket) View {
	n := 0
	for _, b := range buckets {
		n += len(b.Entries)
	}
	slides := make([]Slide, 0, n)
	for _, b := range buckets {
		for _, e := range b.Entries {
			slides = append(slides, Slide{Date: b.Date, Entry: e})
		}
	}
	return View{slides: slides}
}

// Len returns the number of slides.
func (v View) Len() int {
	return len(v.slides)
}

// At returns the slide at i.
func (v View) At(i int) (Slide, bool) {
	if i < 0 || i >= len(v.slides) {
		return Slide{}, false
	}
	return v.slides[i], true
}

// Slides returns all slides in order.
func (v View) Slides() []Slide {
	return v.slides
}

// Cursor is a position within a View of a given length. It never wraps:
// stepping past either end is refused.
type Cursor struct {
	pos    int
	length int
}

// NewCursor returns a cursor at position 0 over length slides.
func NewCursor(length int) *Cursor {
	c := &Cursor{}
	c.Clamp(length)
	return c
}

// Position returns the current index. It is 0 for an empty view.
func (c *Cursor) Position() int {
	return c.pos
}

// Len returns the length the cursor was last clamped to.
func (c *Cursor) Len() int {
	return c.length
}

// Clamp sets the view length and pulls the position back inside
// [0, length-1], or to 0 when length is 0.
func (c *Cursor) Clamp(length int) {
	if length < 0 {
		length = 0
	}
	c.length = length
	if c.pos >= length {
		c.pos = length - 1
	}
	if c.pos < 0 {
		c.pos = 0
	}
}

// CanNext reports whether Next would move.
func (c *Cursor) CanNext() bool {
	return c.pos < c.length-1
}

// CanPrev reports whether Prev would move.
func (c *Cursor) CanPrev() bool {
	return c.pos > 0
}

// Next advances one slide. It returns false at the last slide.
func (c *Cursor) Next() bool {
	if !c.CanNext() {
		return false
	}
	c.pos++
	return true
}

// Prev steps back one slide. It returns false at the first slide.
func (c *Cursor) Prev() bool {
	if !c.CanPrev() {
		return false
	}
	c.pos--
	return true
}

// First moves to the first slide.
func (c *Cursor) First() {
	c.pos = 0
}

// Last moves to the last slide.
func (c *Cursor) Last() {
	c.pos = 0
	if c.length > 0 {
		c.pos = c.length - 1
	}
}

// Sessions remembers one cursor position per class for a browsing session.
type Sessions struct {
	mu        sync.Mutex
	positions map[string]int
}

// NewSessions returns empty sessions; every class starts at slide 0.
func NewSessions() *Sessions {
	return &Sessions{positions: make(map[string]int)}
}

// Open returns a cursor over view for class slug, restored to the stored
// position and clamped to the view.
func (s *Sessions) Open(slug string, view View) *Cursor {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := &Cursor{pos: s.positions[slug]}
	c.Clamp(view.Len())
	s.positions[slug] = c.pos
	return c
}

// Save stores the cursor position for class slug.
func (s *Sessions) Save(slug string, c *Cursor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.positions[slug] = c.Position()
}

// Reset forgets the position for class slug.
func (s *Sessions) Reset(slug string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.positions, slug)
}
