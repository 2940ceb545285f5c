package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
)

//go:embed builtin/*.toml builtin/*.yaml
var builtinFS embed.FS

// LoadBuiltinTemplates returns the templates compiled into the binary,
// sorted by identifier.
func LoadBuiltinTemplates() ([]*Template, error) {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("failed to read builtin templates: %w", err)
	}

	var templates []*Template
	for _, entry := range entries {
		if entry.IsDir() || !IsTemplateFile(entry.Name()) {
			continue
		}
		data, err := builtinFS.ReadFile(path.Join("builtin", entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read builtin template %s: %w", entry.Name(), err)
		}
		t, err := ParseTemplate(TemplateID(entry.Name()), path.Ext(entry.Name()), data)
		if err != nil {
			return nil, fmt.Errorf("builtin template %s: %w", entry.Name(), err)
		}
		t.Source = SourceBuiltin
		templates = append(templates, t)
	}

	sort.Slice(templates, func(i, j int) bool {
		return templates[i].ID < templates[j].ID
	})
	return templates, nil
}
