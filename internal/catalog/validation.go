package catalog

import (
	"errors"

	"go.uber.org/multierr"
)

// ErrEmptyCatalog is reported when no template could be loaded
var ErrEmptyCatalog = errors.New("catalog contains no templates")

// Validate checks every template and returns a *CatalogError listing all
// problems, or nil when the catalog is usable.
func (c *Catalog) Validate() error {
	if c.Len() == 0 {
		return &CatalogError{Problems: []error{ErrEmptyCatalog}}
	}

	var errs error
	seen := make(map[string]bool, len(c.Templates))
	for _, t := range c.Templates {
		if seen[t.ID] {
			errs = multierr.Append(errs, templateProblem(t.ID, "duplicate template identifier"))
		}
		seen[t.ID] = true
		errs = multierr.Append(errs, validateTemplate(t))
	}
	return newCatalogError(errs)
}

// ValidateTemplate checks a single template definition
func ValidateTemplate(t *Template) error {
	return newCatalogError(validateTemplate(t))
}

func validateTemplate(t *Template) error {
	var errs error

	if t.ID == "" {
		errs = multierr.Append(errs, templateProblem(t.ID, "identifier is empty"))
	}
	if t.Name == "" {
		errs = multierr.Append(errs, templateProblem(t.ID, "name is empty"))
	}
	if len(t.Fields) == 0 {
		errs = multierr.Append(errs, templateProblem(t.ID, "has no fields"))
	}

	names := make(map[string]bool, len(t.Fields))
	for _, f := range t.Fields {
		if names[f.Name] {
			errs = multierr.Append(errs, fieldProblem(t.ID, f.Name, "duplicate field name"))
		}
		names[f.Name] = true
		errs = multierr.Append(errs, validateField(t.ID, f))
	}

	w := t.Webhook
	if w.Style != "" && !w.Style.Valid() {
		errs = multierr.Append(errs, templateProblem(t.ID, "unknown webhook style %q (want embed or content)", w.Style))
	}
	if w.Color != nil && *w.Color > MaxColor {
		errs = multierr.Append(errs, templateProblem(t.ID, "webhook color %#x exceeds 0xFFFFFF", *w.Color))
	}

	return errs
}

func validateField(id string, f Field) error {
	var errs error

	if f.Name == "" {
		errs = multierr.Append(errs, templateProblem(id, "field with empty name"))
	}
	if !f.Kind.Valid() {
		errs = multierr.Append(errs, fieldProblem(id, f.Name, "unknown type %q (want text, textarea or select)", f.Kind))
		return errs
	}

	if f.Kind == KindSelect {
		if len(f.Options) == 0 {
			errs = multierr.Append(errs, fieldProblem(id, f.Name, "select field has no options"))
		}
		if def, ok := f.DefaultValue(); ok && len(f.Options) > 0 && !f.HasOption(def) {
			errs = multierr.Append(errs, fieldProblem(id, f.Name, "default %q is not one of the options", def))
		}
	} else if len(f.Options) > 0 {
		errs = multierr.Append(errs, fieldProblem(id, f.Name, "options are only allowed on select fields"))
	}

	return errs
}
