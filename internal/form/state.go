package form

import (
	"fmt"
	"unicode/utf8"

	"go.uber.org/multierr"

	"github.com/ptwebhook/ptwebhook/internal/catalog"
)

// FieldValue pairs a field name with its current value
type FieldValue struct {
	Name  string
	Value string
}

// State is the in-progress form for one template. Values are kept in the
// template's declared field order and the focus index is always within
// range. The zero value is not usable; call New.
type State struct {
	template *catalog.Template
	values   []string
	focus    int
	invalid  map[string]*ValidationError
}

// New creates a form for t. Each value starts at the field default, or
// empty; a select field without a default starts at its first option.
func New(t *catalog.Template) *State {
	s := &State{
		template: t,
		values:   make([]string, len(t.Fields)),
		invalid:  make(map[string]*ValidationError),
	}
	for i, f := range t.Fields {
		if def, ok := f.DefaultValue(); ok {
			s.values[i] = def
		} else if f.Kind == catalog.KindSelect && len(f.Options) > 0 {
			s.values[i] = f.Options[0]
		}
	}
	return s
}

// Clone returns an independent copy of the form
func (s *State) Clone() *State {
	c := &State{
		template: s.template,
		values:   make([]string, len(s.values)),
		focus:    s.focus,
		invalid:  make(map[string]*ValidationError, len(s.invalid)),
	}
	copy(c.values, s.values)
	for k, v := range s.invalid {
		c.invalid[k] = v
	}
	return c
}

// Template returns the template this form fills
func (s *State) Template() *catalog.Template {
	return s.template
}

// Len returns the number of fields
func (s *State) Len() int {
	return len(s.values)
}

// Focus returns the index of the focused field
func (s *State) Focus() int {
	return s.focus
}

// FocusedField returns the definition of the focused field
func (s *State) FocusedField() (catalog.Field, bool) {
	if s.focus < 0 || s.focus >= len(s.template.Fields) {
		return catalog.Field{}, false
	}
	return s.template.Fields[s.focus], true
}

// MoveFocus shifts focus by delta, clamped to the field range
func (s *State) MoveFocus(delta int) {
	s.focus = clamp(s.focus+delta, 0, len(s.values)-1)
}

// Value returns the current value of the named field
func (s *State) Value(name string) string {
	if i := s.index(name); i >= 0 {
		return s.values[i]
	}
	return ""
}

// ValueAt returns the value of the field at index i
func (s *State) ValueAt(i int) string {
	if i < 0 || i >= len(s.values) {
		return ""
	}
	return s.values[i]
}

// Values returns every field value in declared order
func (s *State) Values() []FieldValue {
	out := make([]FieldValue, len(s.values))
	for i, f := range s.template.Fields {
		out[i] = FieldValue{Name: f.Name, Value: s.values[i]}
	}
	return out
}

// SetValue replaces the value of the named field. Select values must be
// one of the field's options.
func (s *State) SetValue(name, value string) error {
	i := s.index(name)
	if i < 0 {
		return fmt.Errorf("template %q has no field %q", s.template.ID, name)
	}
	f := s.template.Fields[i]
	if f.Kind == catalog.KindSelect && !f.HasOption(value) {
		return fmt.Errorf("field %q: %q is not one of %v", name, value, f.Options)
	}
	s.values[i] = value
	s.revalidate(i)
	return nil
}

// InsertRune edits the focused field: free-text fields get r appended,
// select fields advance to the next option.
func (s *State) InsertRune(r rune) {
	f, ok := s.FocusedField()
	if !ok {
		return
	}
	if f.Kind == catalog.KindSelect {
		s.CycleOption(1)
		return
	}
	s.values[s.focus] += string(r)
	s.revalidate(s.focus)
}

// Backspace edits the focused field: free-text fields lose their last
// rune, select fields step back one option.
func (s *State) Backspace() {
	f, ok := s.FocusedField()
	if !ok {
		return
	}
	if f.Kind == catalog.KindSelect {
		s.CycleOption(-1)
		return
	}
	v := s.values[s.focus]
	if v == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(v)
	s.values[s.focus] = v[:len(v)-size]
	s.revalidate(s.focus)
}

// InsertNewline appends a line break to a focused textarea field
func (s *State) InsertNewline() {
	f, ok := s.FocusedField()
	if !ok || f.Kind != catalog.KindTextarea {
		return
	}
	s.values[s.focus] += "\n"
	s.revalidate(s.focus)
}

// CycleOption moves a focused select field dir steps through its
// options, wrapping at both ends.
func (s *State) CycleOption(dir int) {
	f, ok := s.FocusedField()
	if !ok || f.Kind != catalog.KindSelect || len(f.Options) == 0 {
		return
	}
	cur := 0
	for i, opt := range f.Options {
		if opt == s.values[s.focus] {
			cur = i
			break
		}
	}
	n := len(f.Options)
	s.values[s.focus] = f.Options[((cur+dir)%n+n)%n]
}

// ValidateAll re-checks every field and replaces the invalid set. It
// returns the combined validation errors, or nil when the form is valid.
func (s *State) ValidateAll() error {
	s.invalid = make(map[string]*ValidationError)
	var errs error
	for i, f := range s.template.Fields {
		if err := Validate(f, s.values[i]); err != nil {
			if ve, ok := err.(*ValidationError); ok {
				s.invalid[f.Name] = ve
			}
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}

// Valid reports whether the invalid set is empty
func (s *State) Valid() bool {
	return len(s.invalid) == 0
}

// IsInvalid reports whether the named field is marked invalid
func (s *State) IsInvalid(name string) bool {
	_, ok := s.invalid[name]
	return ok
}

// InvalidReason returns why the named field is invalid, or ""
func (s *State) InvalidReason(name string) string {
	if ve, ok := s.invalid[name]; ok {
		return ve.Reason
	}
	return ""
}

// Invalid returns the names of invalid fields in declared order
func (s *State) Invalid() []string {
	var names []string
	for _, f := range s.template.Fields {
		if _, ok := s.invalid[f.Name]; ok {
			names = append(names, f.Name)
		}
	}
	return names
}

// revalidate refreshes the mark on field i if it is currently marked
func (s *State) revalidate(i int) {
	f := s.template.Fields[i]
	if _, marked := s.invalid[f.Name]; !marked {
		return
	}
	if err := Validate(f, s.values[i]); err != nil {
		if ve, ok := err.(*ValidationError); ok {
			s.invalid[f.Name] = ve
		}
		return
	}
	delete(s.invalid, f.Name)
}

func (s *State) index(name string) int {
	for i, f := range s.template.Fields {
		if f.Name == name {
			return i
		}
	}
	return -1
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
