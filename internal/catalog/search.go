package catalog

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Filter returns the templates matching query, best match first. An empty
// query returns every template in catalog order.
func (c *Catalog) Filter(query string) []*Template {
	if c.Len() == 0 {
		return nil
	}
	query = strings.TrimSpace(query)
	if query == "" {
		out := make([]*Template, len(c.Templates))
		copy(out, c.Templates)
		return out
	}

	searchStrings := make([]string, len(c.Templates))
	for i, t := range c.Templates {
		searchStrings[i] = t.ID + " " + t.Name + " " + t.Description
	}

	matches := fuzzy.Find(query, searchStrings)
	out := make([]*Template, 0, len(matches))
	for _, match := range matches {
		out = append(out, c.Templates[match.Index])
	}
	return out
}
