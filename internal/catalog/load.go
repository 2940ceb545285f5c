package catalog

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// fileTemplate is the on-disk shape shared by TOML and YAML templates.
//
//	[template]
//	name = "Announcement"
//	description = "..."
//	order = ["title", "content"]   # optional, for [fields.*] tables
//
//	[fields.title]
//	type = "text"
//	label = "Title"
//	required = true
//
//	[webhook]
//	username = "Bot"
//	color = 0x5865F2
//
// Fields may instead be declared as an ordered [[field]] array with a
// name key.
type fileTemplate struct {
	Template struct {
		Name        string   `toml:"name" yaml:"name"`
		Description string   `toml:"description" yaml:"description"`
		Order       []string `toml:"order" yaml:"order"`
	} `toml:"template" yaml:"template"`
	Fields  map[string]fileField `toml:"fields" yaml:"fields"`
	Field   []fileField          `toml:"field" yaml:"field"`
	Webhook fileWebhook          `toml:"webhook" yaml:"webhook"`
}

type fileField struct {
	Name        string   `toml:"name" yaml:"name"`
	Type        string   `toml:"type" yaml:"type"`
	Label       string   `toml:"label" yaml:"label"`
	Placeholder string   `toml:"placeholder" yaml:"placeholder"`
	Required    bool     `toml:"required" yaml:"required"`
	Options     []string `toml:"options" yaml:"options"`
	Default     *string  `toml:"default" yaml:"default"`
	Inline      bool     `toml:"inline" yaml:"inline"`
}

type fileWebhook struct {
	Username      string  `toml:"username" yaml:"username"`
	AvatarURL     string  `toml:"avatar_url" yaml:"avatar_url"`
	Color         *uint32 `toml:"color" yaml:"color"`
	Style         string  `toml:"style" yaml:"style"`
	Footer        string  `toml:"footer" yaml:"footer"`
	AllowMentions bool    `toml:"allow_mentions" yaml:"allow_mentions"`
}

// IsTemplateFile reports whether path has a supported template extension
func IsTemplateFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// TemplateID derives a template identifier from its file name (the stem)
func TemplateID(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// LoadTemplateFile reads and decodes one template file
func LoadTemplateFile(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template %s: %w", path, err)
	}
	t, err := ParseTemplate(TemplateID(path), filepath.Ext(path), data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	t.Source = path
	return t, nil
}

// ParseTemplate decodes template data; ext selects the format (".toml",
// ".yaml" or ".yml").
func ParseTemplate(id, ext string, data []byte) (*Template, error) {
	var ft fileTemplate

	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.NewDecoder(bytes.NewReader(data)).Decode(&ft); err != nil {
			return nil, fmt.Errorf("failed to parse TOML template: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &ft); err != nil {
			return nil, fmt.Errorf("failed to parse YAML template: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported template format %q", ext)
	}

	if len(ft.Fields) > 0 && len(ft.Field) > 0 {
		return nil, fmt.Errorf("template %q declares both [fields.*] and [[field]]", id)
	}

	t := &Template{
		ID:          id,
		Name:        ft.Template.Name,
		Description: ft.Template.Description,
		Webhook: WebhookSettings{
			Username:      ft.Webhook.Username,
			AvatarURL:     ft.Webhook.AvatarURL,
			Color:         ft.Webhook.Color,
			Style:         Style(strings.ToLower(ft.Webhook.Style)),
			Footer:        ft.Webhook.Footer,
			AllowMentions: ft.Webhook.AllowMentions,
		},
	}

	for _, ff := range orderedFields(ft) {
		t.Fields = append(t.Fields, ff.toField())
	}

	return t, nil
}

// orderedFields flattens either field form into declaration order.
// Map-form fields follow template.order, then any remaining names
// alphabetically.
func orderedFields(ft fileTemplate) []fileField {
	if len(ft.Field) > 0 {
		return ft.Field
	}

	fields := make([]fileField, 0, len(ft.Fields))
	used := make(map[string]bool, len(ft.Fields))
	for _, name := range ft.Template.Order {
		ff, ok := ft.Fields[name]
		if !ok || used[name] {
			continue
		}
		ff.Name = name
		fields = append(fields, ff)
		used[name] = true
	}

	var rest []string
	for name := range ft.Fields {
		if !used[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	for _, name := range rest {
		ff := ft.Fields[name]
		ff.Name = name
		fields = append(fields, ff)
	}

	return fields
}

func (ff fileField) toField() Field {
	f := Field{
		Name:        ff.Name,
		Kind:        Kind(strings.ToLower(ff.Type)),
		Label:       ff.Label,
		Placeholder: ff.Placeholder,
		Required:    ff.Required,
		Default:     ff.Default,
		Options:     ff.Options,
		Inline:      ff.Inline,
	}
	if f.Kind == "" {
		f.Kind = KindText
	}
	if f.Label == "" {
		f.Label = f.Name
	}
	return f
}

// LoadTemplatesFromDir loads every template file in dir, sorted by file
// name. A missing directory yields no templates and no error.
func LoadTemplatesFromDir(dir string) ([]*Template, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read template directory %s: %w", dir, err)
	}

	var templates []*Template
	var problems []error
	for _, entry := range entries {
		if entry.IsDir() || !IsTemplateFile(entry.Name()) {
			continue
		}
		t, err := LoadTemplateFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			problems = append(problems, err)
			continue
		}
		templates = append(templates, t)
	}

	if len(problems) > 0 {
		return templates, &CatalogError{Problems: problems}
	}
	return templates, nil
}
