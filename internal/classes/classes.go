// Package classes holds the static class registry used to route captures to
// their on-disk location and gallery title.
package classes

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrUnknownClass is returned when a name or slug matches no configured class.
var ErrUnknownClass = errors.New("unknown class")

// ClassInfo is the static identity and display metadata for one class.
type ClassInfo struct {
	Name         string `toml:"name" json:"name" yaml:"name"`
	Slug         string `toml:"slug" json:"slug" yaml:"slug"`
	GalleryTitle string `toml:"gallery_title" json:"gallery_title" yaml:"gallery_title"`
	AccentColor  string `toml:"accent_color" json:"accent_color" yaml:"accent_color"`
}

// Defaults returns the built-in class list.
func Defaults() []ClassInfo {
	return []ClassInfo{
		{
			Name:         "AP Chemistry",
			Slug:         "ap-chemistry",
			GalleryTitle: "AP Chemistry Gallery",
			AccentColor:  "#2563eb",
		},
		{
			Name:         "Chemistry",
			Slug:         "chemistry",
			GalleryTitle: "Chemistry Gallery",
			AccentColor:  "#059669",
		},
		{
			Name:         "PLTW Medical Interventions",
			Slug:         "pltw-medical-interventions",
			GalleryTitle: "PLTW Medical Interventions Gallery",
			AccentColor:  "#d97706",
		},
	}
}

// Registry is an immutable set of classes indexed by name and slug.
type Registry struct {
	infos  []ClassInfo
	byName map[string]ClassInfo
	bySlug map[string]ClassInfo
}

// NewRegistry builds a registry from infos. Missing slugs are derived from
// the name and missing gallery titles default to "<name> Gallery".
// Duplicate names or slugs are rejected.
func NewRegistry(infos []ClassInfo) (*Registry, error) {
	r := &Registry{
		byName: make(map[string]ClassInfo, len(infos)),
		bySlug: make(map[string]ClassInfo, len(infos)),
	}
	for _, info := range infos {
		info.Name = strings.TrimSpace(info.Name)
		if info.Name == "" {
			return nil, fmt.Errorf("class name cannot be empty")
		}
		if info.Slug == "" {
			info.Slug = Slugify(info.Name)
		}
		if info.Slug == "" || info.Slug != Slugify(info.Slug) {
			return nil, fmt.Errorf("class %q: slug %q is not filesystem safe", info.Name, info.Slug)
		}
		if info.GalleryTitle == "" {
			info.GalleryTitle = info.Name + " Gallery"
		}
		if _, dup := r.byName[info.Name]; dup {
			return nil, fmt.Errorf("duplicate class name %q", info.Name)
		}
		if _, dup := r.bySlug[info.Slug]; dup {
			return nil, fmt.Errorf("duplicate class slug %q", info.Slug)
		}
		r.infos = append(r.infos, info)
		r.byName[info.Name] = info
		r.bySlug[info.Slug] = info
	}
	return r, nil
}

// DefaultRegistry returns a registry over Defaults.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(Defaults())
	if err != nil {
		panic(err)
	}
	return r
}

// All returns the classes in configuration order.
func (r *Registry) All() []ClassInfo {
	out := make([]ClassInfo, len(r.infos))
	copy(out, r.infos)
	return out
}

// Names returns the display names in configuration order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.infos))
	for _, info := range r.infos {
		names = append(names, info.Name)
	}
	return names
}

// ByName looks up a class by its exact display name.
func (r *Registry) ByName(name string) (ClassInfo, bool) {
	info, ok := r.byName[name]
	return info, ok
}

// BySlug looks up a class by slug.
func (r *Registry) BySlug(slug string) (ClassInfo, bool) {
	info, ok := r.bySlug[slug]
	return info, ok
}

// Resolve accepts either a slug, an exact name, or a name that slugifies to
// a known slug ("ap chemistry" -> "ap-chemistry").
func (r *Registry) Resolve(s string) (ClassInfo, error) {
	s = strings.TrimSpace(s)
	if info, ok := r.BySlug(s); ok {
		return info, nil
	}
	if info, ok := r.ByName(s); ok {
		return info, nil
	}
	if info, ok := r.BySlug(Slugify(s)); ok {
		return info, nil
	}
	return ClassInfo{}, fmt.Errorf("%w: %q (known: %s)", ErrUnknownClass, s, strings.Join(r.Names(), ", "))
}

// Slugify derives a lowercase, hyphen-separated identifier from s.
func Slugify(s string) string {
	return Sanitize(s, true)
}

// Sanitize reduces s to runs of ASCII letters and digits joined by single
// hyphens. Accented letters are folded to their base letter and apostrophes
// are dropped. Case is preserved unless lower is set. The result may be empty.
// It is safe for concurrent use.
func Sanitize(s string, lower bool) string {
	// Transformers keep internal state, so each call builds its own chain.
	foldMarks := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(foldMarks, s)
	if err != nil {
		folded = s
	}
	if lower {
		folded = strings.ToLower(folded)
	}

	var b strings.Builder
	pendingSep := false
	for _, r := range folded {
		switch {
		case r == '\'' || r == '’':
			continue
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingSep = false
			b.WriteRune(r)
		default:
			pendingSep = true
		}
	}
	return b.String()
}
