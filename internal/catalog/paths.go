package catalog

import (
	"go.uber.org/multierr"
)

// LoadOptions controls catalog assembly
type LoadOptions struct {
	// Dirs are searched in order; the first directory that defines an ID wins.
	Dirs []string
	// SkipBuiltin leaves the embedded templates out of the catalog.
	SkipBuiltin bool
}

// LoadFromSearchPaths assembles a catalog from the given directories
// followed by the embedded builtins. Templates keep their directory order;
// an ID already defined by an earlier directory shadows later ones.
// The result is validated; any problem is returned as a *CatalogError
// together with whatever could be loaded.
func LoadFromSearchPaths(dirs ...string) (*Catalog, error) {
	return Load(LoadOptions{Dirs: dirs})
}

// Load is LoadFromSearchPaths with options
func Load(opts LoadOptions) (*Catalog, error) {
	c := &Catalog{}
	seen := make(map[string]bool)
	var errs error

	add := func(templates []*Template) {
		for _, t := range templates {
			if seen[t.ID] {
				continue
			}
			seen[t.ID] = true
			c.Templates = append(c.Templates, t)
		}
	}

	for _, dir := range opts.Dirs {
		if dir == "" {
			continue
		}
		templates, err := LoadTemplatesFromDir(dir)
		if err != nil {
			errs = appendProblems(errs, err)
		}
		add(templates)
	}

	if !opts.SkipBuiltin {
		templates, err := LoadBuiltinTemplates()
		if err != nil {
			errs = multierr.Append(errs, err)
		}
		add(templates)
	}

	if err := c.Validate(); err != nil {
		errs = appendProblems(errs, err)
	}
	return c, newCatalogError(errs)
}

// appendProblems flattens a *CatalogError into its individual problems
func appendProblems(errs, err error) error {
	if ce, ok := err.(*CatalogError); ok {
		return multierr.Append(errs, multierr.Combine(ce.Problems...))
	}
	return multierr.Append(errs, err)
}
