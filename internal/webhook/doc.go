// Package webhook talks to Discord's execute-webhook endpoint.
//
// ParseURL accepts the full URL, the URL without scheme, or just
// "{id}/{token}", and returns the canonical https form. Redact masks the
// token for display and logs. Client.Send performs a single JSON POST and
// reports the raw result; classifying it is left to the dispatch package.
package webhook
