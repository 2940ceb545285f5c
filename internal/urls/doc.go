// Package urls centralizes external documentation links.
//
// Keeping them in one place means hints and help text never drift apart
// when Discord moves a page.
package urls
