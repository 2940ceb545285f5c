package wizard

import (
	"github.com/ptwebhook/ptwebhook/internal/catalog"
	"github.com/ptwebhook/ptwebhook/internal/dispatch"
	"github.com/ptwebhook/ptwebhook/internal/payload"
)

// TemplateItem is one row of the template list
type TemplateItem struct {
	ID          string
	Name        string
	Description string
	Selected    bool
}

// FieldView is one row of the form
type FieldView struct {
	Name        string
	Label       string
	Kind        catalog.Kind
	Placeholder string
	Required    bool
	Options     []string
	Value       string
	Focused     bool
	Invalid     bool
	Reason      string
}

// ViewModel is a read-only snapshot of everything a renderer needs
type ViewModel struct {
	Screen    Screen
	Templates []TemplateItem
	Cursor    int
	Template  *catalog.Template
	Fields    []FieldView
	Focus     int
	Invalid   []string
	Preview   *payload.Payload // rendered on Preview and Result
	Pending   bool
	Outcome   *dispatch.Outcome
	Attempt   int
}

// View derives the ViewModel for a session
func View(s Session) ViewModel {
	vm := ViewModel{
		Screen:  s.Screen,
		Cursor:  s.Cursor,
		Pending: s.Pending,
		Outcome: s.Outcome,
		Attempt: s.Attempt,
	}

	if s.Screen == ScreenSelectTemplate {
		vm.Templates = make([]TemplateItem, s.Catalog.Len())
		for i := range vm.Templates {
			t := s.Catalog.At(i)
			vm.Templates[i] = TemplateItem{
				ID:          t.ID,
				Name:        t.Name,
				Description: t.Description,
				Selected:    i == s.Cursor,
			}
		}
		return vm
	}

	if s.Form == nil {
		return vm
	}

	t := s.Form.Template()
	vm.Template = t
	vm.Focus = s.Form.Focus()
	vm.Invalid = s.Form.Invalid()
	vm.Fields = make([]FieldView, len(t.Fields))
	for i, f := range t.Fields {
		vm.Fields[i] = FieldView{
			Name:        f.Name,
			Label:       f.Label,
			Kind:        f.Kind,
			Placeholder: f.Placeholder,
			Required:    f.Required,
			Options:     f.Options,
			Value:       s.Form.ValueAt(i),
			Focused:     i == vm.Focus,
			Invalid:     s.Form.IsInvalid(f.Name),
			Reason:      s.Form.InvalidReason(f.Name),
		}
	}

	if s.Screen == ScreenPreview || s.Screen == ScreenResult {
		p := payload.RenderTemplate(s.Form)
		vm.Preview = &p
	}
	return vm
}
