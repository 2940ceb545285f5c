// Package ui provides styled terminal output for the ptwebhook CLI.
//
// Unlike the interactive wizard in package tui, these components follow a
// "print once" pattern for non-interactive commands such as send,
// templates and validate. Output is rendered with Lipgloss and sized to
// the terminal with golang.org/x/term.
//
// # Components
//
//   - Header: command banner showing the operation and its parameters
//   - Result: success, failure or warning box with ordered details and
//     troubleshooting tips
//   - Printer: writes headers, results, payload JSON, template listings
//     and catalog problems to an io.Writer
//   - ConfirmSend: y/N prompt shown before a non-interactive send
//
// Example:
//
//	p := ui.NewPrinter(os.Stdout)
//	p.PrintHeader("Send Message", "ptwebhook send",
//	    ui.Detail{Key: "Template", Value: "announcement"})
//	p.PrintSuccess("Message delivered", ui.Detail{Key: "Status", Value: "HTTP 204"})
//
// # Logging Integration
//
// Logging is controlled by PTWEBHOOK_LOG_LEVEL or --log-level. When unset,
// zap logging is silent so the curated output is displayed cleanly.
package ui
