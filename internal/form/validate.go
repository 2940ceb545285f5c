package form

import (
	"fmt"
	"strings"

	"github.com/ptwebhook/ptwebhook/internal/catalog"
)

// ReasonRequired is the validation reason for an empty required field
const ReasonRequired = "required"

// ValidationError marks a single field value as unacceptable
type ValidationError struct {
	Field  string // field name
	Label  string // field label, for display
	Reason string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	name := e.Label
	if name == "" {
		name = e.Field
	}
	return fmt.Sprintf("%s: %s", name, e.Reason)
}

// Validate checks one value against its field definition. Free-text
// fields are invalid only when required and blank after trimming; select
// values are always valid because the form keeps them inside the option
// set.
func Validate(f catalog.Field, value string) error {
	switch f.Kind {
	case catalog.KindSelect:
		return nil
	case catalog.KindText, catalog.KindTextarea:
		if f.Required && strings.TrimSpace(value) == "" {
			return &ValidationError{Field: f.Name, Label: f.Label, Reason: ReasonRequired}
		}
		return nil
	default:
		return &ValidationError{Field: f.Name, Label: f.Label, Reason: fmt.Sprintf("unknown field type %q", f.Kind)}
	}
}
