package catalog

import (
	"fmt"
	"strings"
)

// Kind is the input kind of a template field
type Kind string

const (
	// KindText is a single-line free-text field
	KindText Kind = "text"
	// KindTextarea is a multi-line free-text field
	KindTextarea Kind = "textarea"
	// KindSelect is a closed choice between the field's options
	KindSelect Kind = "select"
)

// Valid reports whether k is one of the known field kinds
func (k Kind) Valid() bool {
	switch k {
	case KindText, KindTextarea, KindSelect:
		return true
	default:
		return false
	}
}

// String returns the kind as written in template files
func (k Kind) String() string {
	return string(k)
}

// Style selects how a template is rendered into a Discord message
type Style string

const (
	// StyleEmbed renders one rich embed (default)
	StyleEmbed Style = "embed"
	// StyleContent renders plain markdown content lines
	StyleContent Style = "content"
)

// Valid reports whether s is a known style
func (s Style) Valid() bool {
	return s == StyleEmbed || s == StyleContent
}

// MaxColor is the largest 24-bit RGB color value Discord accepts
const MaxColor = 0xFFFFFF

// SourceBuiltin marks templates compiled into the binary
const SourceBuiltin = "builtin"

// Field describes one input of a template form
type Field struct {
	Name        string
	Kind        Kind
	Label       string
	Placeholder string
	Required    bool
	Default     *string
	Options     []string
	Inline      bool // embed layout hint
}

// DefaultValue returns the configured default and whether one was set
func (f Field) DefaultValue() (string, bool) {
	if f.Default == nil {
		return "", false
	}
	return *f.Default, true
}

// HasOption reports whether value is one of the field's options
func (f Field) HasOption(value string) bool {
	for _, opt := range f.Options {
		if opt == value {
			return true
		}
	}
	return false
}

// WebhookSettings controls the message envelope a template produces
type WebhookSettings struct {
	Username      string
	AvatarURL     string
	Color         *uint32
	Style         Style
	Footer        string
	AllowMentions bool
}

// EffectiveStyle returns the configured style, falling back to embed
func (w WebhookSettings) EffectiveStyle() Style {
	if w.Style == "" {
		return StyleEmbed
	}
	return w.Style
}

// Template is a named, immutable message layout
type Template struct {
	ID          string
	Name        string
	Description string
	Fields      []Field
	Webhook     WebhookSettings
	Source      string // file path, or SourceBuiltin
}

// Field returns the field with the given name
func (t *Template) Field(name string) (Field, bool) {
	for _, f := range t.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// String returns a short "id (name)" label
func (t *Template) String() string {
	return fmt.Sprintf("%s (%s)", t.ID, t.Name)
}

// Catalog is the ordered set of templates offered to the user
type Catalog struct {
	Templates []*Template
}

// New creates a catalog from templates in display order
func New(templates ...*Template) *Catalog {
	return &Catalog{Templates: templates}
}

// Len returns the number of templates
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Templates)
}

// At returns the template at index i, or nil when out of range
func (c *Catalog) At(i int) *Template {
	if c == nil || i < 0 || i >= len(c.Templates) {
		return nil
	}
	return c.Templates[i]
}

// Get looks a template up by ID (case-insensitive)
func (c *Catalog) Get(id string) (*Template, bool) {
	if c == nil {
		return nil, false
	}
	for _, t := range c.Templates {
		if strings.EqualFold(t.ID, id) {
			return t, true
		}
	}
	return nil, false
}
