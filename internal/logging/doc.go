// Package logging provides structured logging for ptwebhook.
//
// This package wraps a package-level zap logger with convenience functions.
// Logging is silent unless a level is given, either with --log-level or
// the PTWEBHOOK_LOG_LEVEL environment variable.
//
// # Output
//
// The wizard draws on stdout, so logs go to a file (by default
// ptwebhook.log in the config directory) or stderr:
//
//	if err := logging.Initialize("debug", "/tmp/ptwebhook.log"); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// # Specialized Logging
//
//	logging.LogTransition(sessionID, "Preview", "Result", "Confirm")
//	logging.LogDispatch(sessionID, url, attempt, "Sent", 204, elapsed)
//	logging.LogCatalogLoaded(len(templates), dirs)
//
// Webhook URLs carry a secret token and are always redacted by
// LogDispatch. Never log a raw URL with the generic helpers.
package logging
