// Package catalog defines message templates and loads them from disk.
//
// A template names a form (an ordered list of fields) and the webhook
// envelope the filled form is rendered into. Templates are read from TOML
// or YAML files; the file stem is the template identifier. Directories
// are searched in precedence order and the embedded builtin templates come
// last, so a user file named announcement.toml replaces the builtin
// announcement.
//
// Catalog problems (bad field types, select fields without options,
// defaults outside the option set, duplicate names) are collected into a
// single *CatalogError so every mistake can be reported at once.
package catalog
