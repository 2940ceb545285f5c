package dispatch

import (
	"fmt"
	"net/http"

	"github.com/ptwebhook/ptwebhook/internal/urls"
)

// Hint returns troubleshooting tips for a failed outcome, or nil when
// the message was sent.
func Hint(o Outcome) []string {
	switch o.Reason {
	case ReasonTimeout:
		return []string{
			"Discord did not answer in time",
			"Check your internet connection",
			"Try again, or raise the timeout with --timeout",
		}

	case ReasonUnreachable:
		switch o.Network {
		case NetworkDNS:
			return []string{
				"Could not resolve discord.com",
				"Check your DNS settings and internet connection",
			}
		case NetworkTLS:
			return []string{
				"The TLS certificate presented for discord.com was not trusted",
				"A proxy or firewall may be intercepting HTTPS traffic",
			}
		case NetworkConnectionRefused, NetworkHostUnreachable, NetworkNetworkUnreachable:
			return []string{
				"Discord could not be reached from this machine",
				"Check your network connection, proxy and firewall",
			}
		default:
			return []string{
				"Check your network connection",
				"Verify that HTTPS traffic to discord.com is allowed",
			}
		}

	case ReasonRejected:
		return rejectedHint(o)
	}
	return nil
}

func rejectedHint(o Outcome) []string {
	switch o.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
		return []string{
			"The webhook token is invalid or the webhook was deleted",
			"Copy the webhook URL again from Server Settings > Integrations > Webhooks",
		}
	case http.StatusTooManyRequests:
		hint := []string{"Discord is rate limiting this webhook"}
		if o.RetryAfter > 0 {
			hint = append(hint, fmt.Sprintf("Wait %.1fs before sending again", o.RetryAfter))
		}
		return append(hint, "Rate limits: "+urls.RateLimits)
	case http.StatusBadRequest, http.StatusRequestEntityTooLarge:
		return []string{
			"Discord refused the message content",
			"Check field lengths and the avatar URL",
			"Message limits: " + urls.EmbedLimits,
		}
	}
	if o.StatusCode >= 500 {
		return []string{
			fmt.Sprintf("Discord returned a server error (HTTP %d)", o.StatusCode),
			"This is usually temporary; try again shortly",
			"Status page: " + urls.DiscordStatus,
		}
	}
	return []string{
		fmt.Sprintf("Discord returned HTTP %d", o.StatusCode),
		"Webhook reference: " + urls.ExecuteWebhook,
	}
}
