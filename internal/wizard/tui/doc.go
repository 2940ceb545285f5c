// Package tui implements the terminal user interface for the ptwebhook wizard.
//
// The package is a thin Bubble Tea adapter over package wizard. AppModel owns
// a single wizard.Session; key presses are translated to wizard events,
// applied with wizard.HandleInput, and the returned effects become commands.
// No wizard state is changed here directly.
//
// # Screen Flow
//
//  1. Select template: pick a template from the catalog.
//  2. Fill form: type into text and textarea fields, cycle select options.
//     Enter validates; invalid required fields are highlighted.
//  3. Preview: the rendered payload is shown as markdown (glamour) in a
//     scrollable viewport. Enter sends, Esc returns to the form.
//  4. Result: a spinner while the submission is in flight, then the
//     outcome with troubleshooting hints. "e" edits and retries.
//
// # Sending
//
// A send effect runs as a tea.Cmd in its own goroutine, bounded by a
// context timeout. The classified outcome comes back as a message and is
// applied with wizard.Complete, which ignores results for stale attempts.
//
// All screens use RenderApplicationContainer for a consistent header,
// content area and context-sensitive footer built with bubbles/help.
//
// # Usage Example
//
//	err := tui.Run(tui.Options{
//	    Catalog:    cat,
//	    WebhookURL: url,
//	    Timeout:    10 * time.Second,
//	})
package tui
