// Package form holds the values a user has typed into a template and the
// rules deciding whether those values may be sent.
package form
