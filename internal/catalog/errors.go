package catalog

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// CatalogError reports every problem found while loading or validating
// a template catalog. It is fatal at startup.
type CatalogError struct {
	Problems []error
}

// Error implements the error interface
func (e *CatalogError) Error() string {
	switch len(e.Problems) {
	case 0:
		return "invalid template catalog"
	case 1:
		return "invalid template catalog: " + e.Problems[0].Error()
	}
	msgs := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		msgs[i] = p.Error()
	}
	return fmt.Sprintf("invalid template catalog: %d problems: %s", len(e.Problems), strings.Join(msgs, "; "))
}

// Unwrap exposes the individual problems to errors.Is / errors.As
func (e *CatalogError) Unwrap() []error {
	return e.Problems
}

// newCatalogError flattens a multierr chain into a CatalogError, or
// returns nil when err is nil.
func newCatalogError(err error) error {
	if err == nil {
		return nil
	}
	return &CatalogError{Problems: multierr.Errors(err)}
}

// templateProblem prefixes a problem with the template it belongs to
func templateProblem(id, format string, args ...any) error {
	return fmt.Errorf("template %q: %s", id, fmt.Sprintf(format, args...))
}

// fieldProblem prefixes a problem with its template and field
func fieldProblem(id, field, format string, args ...any) error {
	return fmt.Errorf("template %q: field %q: %s", id, field, fmt.Sprintf(format, args...))
}
