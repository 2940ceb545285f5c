package dispatch

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strings"
	"syscall"
	"testing"

	"github.com/ptwebhook/ptwebhook/internal/webhook"
)

type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		name        string
		result      webhook.Result
		wantStatus  Status
		wantReason  Reason
		wantMessage string
	}{
		{"204 no content", webhook.Result{StatusCode: 204}, StatusSent, ReasonNone, ""},
		{"200 ok", webhook.Result{StatusCode: 200, Body: []byte(`{"id":"1"}`)}, StatusSent, ReasonNone, ""},
		{
			"400 with discord json",
			webhook.Result{StatusCode: 400, Body: []byte(`{"message": "Cannot send an empty message", "code": 50006}`)},
			StatusFailed, ReasonRejected, "Cannot send an empty message",
		},
		{
			"404 unknown webhook",
			webhook.Result{StatusCode: 404, Body: []byte(`{"message": "Unknown Webhook", "code": 10015}`)},
			StatusFailed, ReasonRejected, "Unknown Webhook",
		},
		{
			"502 plain body",
			webhook.Result{StatusCode: 502, Body: []byte("  bad gateway from proxy \n")},
			StatusFailed, ReasonRejected, "bad gateway from proxy",
		},
		{
			"500 empty body",
			webhook.Result{StatusCode: 500},
			StatusFailed, ReasonRejected, "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.result)
			if got.Status != tt.wantStatus {
				t.Errorf("Status = %v, want %v", got.Status, tt.wantStatus)
			}
			if got.Reason != tt.wantReason {
				t.Errorf("Reason = %v, want %v", got.Reason, tt.wantReason)
			}
			if got.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", got.Message, tt.wantMessage)
			}
			if got.StatusCode != tt.result.StatusCode {
				t.Errorf("StatusCode = %d, want %d", got.StatusCode, tt.result.StatusCode)
			}
		})
	}
}

func TestClassifyRateLimit(t *testing.T) {
	got := Classify(webhook.Result{
		StatusCode: 429,
		Body:       []byte(`{"message": "You are being rate limited.", "retry_after": 1.5, "global": false}`),
	})

	if got.Reason != ReasonRejected || got.RetryAfter != 1.5 {
		t.Errorf("got %+v, want Rejected with RetryAfter 1.5", got)
	}
	if !got.Retryable() {
		t.Error("rate limited outcome should be retryable")
	}
}

func TestClassifyLongBodyIsTruncated(t *testing.T) {
	got := Classify(webhook.Result{StatusCode: 503, Body: []byte(strings.Repeat("x", 1000))})
	if n := len([]rune(got.Message)); n != maxMessageLength+1 {
		t.Errorf("message length = %d, want %d", n, maxMessageLength+1)
	}
}

func TestClassifyNetworkErrors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantReason  Reason
		wantNetwork NetworkSubtype
	}{
		{"context deadline", fmt.Errorf("post: %w", context.DeadlineExceeded), ReasonTimeout, NetworkGeneral},
		{"deadline exceeded", os.ErrDeadlineExceeded, ReasonTimeout, NetworkGeneral},
		{"net timeout", &url.Error{Op: "Post", URL: "https://discord.com", Err: timeoutError{}}, ReasonTimeout, NetworkGeneral},
		{
			"dns",
			&url.Error{Op: "Post", URL: "https://discord.com", Err: &net.OpError{Op: "dial", Err: &net.DNSError{Name: "discord.com", Err: "no such host"}}},
			ReasonUnreachable, NetworkDNS,
		},
		{
			"refused",
			&url.Error{Op: "Post", URL: "https://discord.com", Err: &net.OpError{Op: "dial", Err: os.NewSyscallError("connect", syscall.ECONNREFUSED)}},
			ReasonUnreachable, NetworkConnectionRefused,
		},
		{
			"host unreachable",
			&net.OpError{Op: "dial", Err: os.NewSyscallError("connect", syscall.EHOSTUNREACH)},
			ReasonUnreachable, NetworkHostUnreachable,
		},
		{"other", errors.New("something broke"), ReasonUnreachable, NetworkGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(webhook.Result{Err: tt.err})
			if got.Status != StatusFailed {
				t.Errorf("Status = %v, want Failed", got.Status)
			}
			if got.Reason != tt.wantReason {
				t.Errorf("Reason = %v, want %v", got.Reason, tt.wantReason)
			}
			if got.Network != tt.wantNetwork {
				t.Errorf("Network = %v, want %v", got.Network, tt.wantNetwork)
			}
			if !errors.Is(got.Error(), tt.err) {
				t.Error("outcome error should wrap the transport error")
			}
		})
	}
}

func TestOutcomeString(t *testing.T) {
	tests := []struct {
		outcome Outcome
		want    string
	}{
		{Outcome{Status: StatusSent, StatusCode: 204}, "Sent (HTTP 204)"},
		{Outcome{Status: StatusFailed, Reason: ReasonRejected, StatusCode: 400, Message: "Bad"}, "Rejected (HTTP 400): Bad"},
		{Outcome{Status: StatusFailed, Reason: ReasonTimeout, Message: "Request timed out"}, "Timeout: Request timed out"},
		{Outcome{Status: StatusFailed, Reason: ReasonUnreachable}, "Unreachable"},
	}
	for _, tt := range tests {
		if got := tt.outcome.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestOutcomeErrorNilWhenSent(t *testing.T) {
	if err := (Outcome{Status: StatusSent, StatusCode: 204}).Error(); err != nil {
		t.Errorf("Error() = %v, want nil", err)
	}
}

func TestHint(t *testing.T) {
	if Hint(Outcome{Status: StatusSent}) != nil {
		t.Error("sent outcome should have no hint")
	}

	tests := []struct {
		name    string
		outcome Outcome
		want    string
	}{
		{"timeout", Outcome{Status: StatusFailed, Reason: ReasonTimeout}, "--timeout"},
		{"dns", Outcome{Status: StatusFailed, Reason: ReasonUnreachable, Network: NetworkDNS}, "DNS"},
		{"unknown webhook", Outcome{Status: StatusFailed, Reason: ReasonRejected, StatusCode: 404}, "webhook token is invalid"},
		{"rate limited", Outcome{Status: StatusFailed, Reason: ReasonRejected, StatusCode: 429, RetryAfter: 2}, "Wait 2.0s"},
		{"server error", Outcome{Status: StatusFailed, Reason: ReasonRejected, StatusCode: 503}, "HTTP 503"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hint := strings.Join(Hint(tt.outcome), "\n")
			if !strings.Contains(hint, tt.want) {
				t.Errorf("Hint() = %q, want it to mention %q", hint, tt.want)
			}
		})
	}
}
