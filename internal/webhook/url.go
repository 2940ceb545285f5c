package webhook

import (
	"fmt"
	"regexp"
	"strings"
)

// BaseURL is the canonical prefix of every webhook URL
const BaseURL = "https://discord.com/api/webhooks/"

var (
	// {id}/{token}
	idTokenPattern = regexp.MustCompile(`^(\d+)/([A-Za-z0-9_-]+)$`)

	// optional scheme, optional ptb./canary. subdomain, discord or discordapp
	hostPattern = regexp.MustCompile(`^(?:https?://)?(?:(?:ptb|canary)\.)?discord(?:app)?\.com/api(?:/v\d+)?/webhooks/`)
)

// URLError reports an input that is not a Discord webhook URL
type URLError struct {
	Input  string
	Reason string
}

// Error implements the error interface
func (e *URLError) Error() string {
	return fmt.Sprintf("invalid webhook URL: %s\nsupported formats:\n"+
		"  https://discord.com/api/webhooks/{id}/{token}\n"+
		"  discord.com/api/webhooks/{id}/{token}\n"+
		"  {id}/{token}", e.Reason)
}

// ParseURL normalizes any accepted webhook form into the canonical
// https://discord.com/api/webhooks/{id}/{token} URL.
func ParseURL(input string) (string, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", &URLError{Input: input, Reason: "empty"}
	}

	if loc := hostPattern.FindStringIndex(s); loc != nil {
		s = s[loc[1]:]
	} else if strings.Contains(s, "://") {
		return "", &URLError{Input: input, Reason: "not a discord.com webhook address"}
	}

	// Discord accepts query strings such as ?wait=true and a trailing slash
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimSuffix(s, "/")

	m := idTokenPattern.FindStringSubmatch(s)
	if m == nil {
		return "", &URLError{Input: input, Reason: "expected a numeric id followed by /token"}
	}
	return BaseURL + m[1] + "/" + m[2], nil
}

// Redact hides the token part of a webhook URL so it can be shown or
// logged. Inputs that do not parse are fully masked.
func Redact(webhookURL string) string {
	canonical, err := ParseURL(webhookURL)
	if err != nil {
		return "***"
	}
	rest := strings.TrimPrefix(canonical, BaseURL)
	id, token, _ := strings.Cut(rest, "/")
	if len(token) > 4 {
		token = token[:4]
	}
	return BaseURL + id + "/" + token + "***"
}
