package dispatch

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"strings"
	"syscall"

	"github.com/ptwebhook/ptwebhook/internal/webhook"
)

// maxMessageLength bounds a raw response body used as a message
const maxMessageLength = 200

// discordError is the JSON error body Discord returns
type discordError struct {
	Message    string  `json:"message"`
	Code       int     `json:"code"`
	RetryAfter float64 `json:"retry_after"`
}

// Classify maps a transport result onto an Outcome. A transport error is
// a Timeout when it is a deadline or timeout and Unreachable otherwise; a
// 2xx status is Sent; any other status is Rejected.
func Classify(r webhook.Result) Outcome {
	if r.Err != nil {
		return classifyNetworkError(r.Err)
	}

	if r.StatusCode >= 200 && r.StatusCode < 300 {
		return Outcome{Status: StatusSent, StatusCode: r.StatusCode}
	}

	o := Outcome{
		Status:     StatusFailed,
		Reason:     ReasonRejected,
		StatusCode: r.StatusCode,
	}

	var body discordError
	if err := json.Unmarshal(r.Body, &body); err == nil && body.Message != "" {
		o.Message = body.Message
		o.RetryAfter = body.RetryAfter
		return o
	}

	if text := strings.TrimSpace(string(r.Body)); text != "" {
		if len([]rune(text)) > maxMessageLength {
			text = string([]rune(text)[:maxMessageLength]) + "…"
		}
		o.Message = text
		return o
	}

	o.Message = http.StatusText(r.StatusCode)
	if o.Message == "" {
		o.Message = fmt.Sprintf("HTTP %d", r.StatusCode)
	}
	return o
}

func classifyNetworkError(err error) Outcome {
	if isTimeout(err) {
		return Outcome{
			Status:  StatusFailed,
			Reason:  ReasonTimeout,
			Message: "Request timed out",
			Err:     err,
		}
	}

	o := Outcome{
		Status:  StatusFailed,
		Reason:  ReasonUnreachable,
		Message: "Network error occurred",
		Network: NetworkGeneral,
		Err:     err,
	}

	var dnsErr *net.DNSError
	var opErr *net.OpError
	var certErr *tls.CertificateVerificationError
	var unknownAuthority x509.UnknownAuthorityError
	var hostnameErr x509.HostnameError

	switch {
	case errors.As(err, &dnsErr):
		o.Network = NetworkDNS
		o.Message = fmt.Sprintf("DNS resolution failed for %s", dnsErr.Name)
	case errors.As(err, &certErr), errors.As(err, &unknownAuthority), errors.As(err, &hostnameErr):
		o.Network = NetworkTLS
		o.Message = "TLS certificate could not be verified"
	case errors.As(err, &opErr) && errors.Is(opErr.Err, syscall.ECONNREFUSED):
		o.Network = NetworkConnectionRefused
		o.Message = "Connection refused"
	case errors.As(err, &opErr) && errors.Is(opErr.Err, syscall.EHOSTUNREACH):
		o.Network = NetworkHostUnreachable
		o.Message = "Host unreachable"
	case errors.As(err, &opErr) && errors.Is(opErr.Err, syscall.ENETUNREACH):
		o.Network = NetworkNetworkUnreachable
		o.Message = "Network unreachable"
	}

	return o
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || os.IsTimeout(err) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Timeout()
	}
	return false
}
