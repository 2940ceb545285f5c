package dispatch

import "fmt"

// Status is the top-level result of a submission
type Status int

const (
	// StatusSent means Discord accepted the message
	StatusSent Status = iota
	// StatusFailed means the message was not delivered
	StatusFailed
)

// String returns a human-readable name for the status
func (s Status) String() string {
	switch s {
	case StatusSent:
		return "Sent"
	case StatusFailed:
		return "Failed"
	default:
		return fmt.Sprintf("Status(%d)", s)
	}
}

// Reason categorizes a failed submission
type Reason int

const (
	// ReasonNone is used for sent outcomes
	ReasonNone Reason = iota
	// ReasonTimeout indicates no response arrived in time
	ReasonTimeout
	// ReasonRejected indicates Discord answered with a non-2xx status
	ReasonRejected
	// ReasonUnreachable indicates Discord could not be contacted at all
	ReasonUnreachable
)

// String returns a human-readable name for the reason
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "None"
	case ReasonTimeout:
		return "Timeout"
	case ReasonRejected:
		return "Rejected"
	case ReasonUnreachable:
		return "Unreachable"
	default:
		return fmt.Sprintf("Reason(%d)", r)
	}
}

// NetworkSubtype narrows down an Unreachable outcome
type NetworkSubtype int

const (
	NetworkGeneral NetworkSubtype = iota
	NetworkDNS
	NetworkConnectionRefused
	NetworkHostUnreachable
	NetworkNetworkUnreachable
	NetworkTLS
)

// Outcome is the classified result of one webhook submission
type Outcome struct {
	Status     Status
	Reason     Reason
	StatusCode int    // HTTP status, when a response arrived
	Message    string // Discord's message, or a description of the failure
	Network    NetworkSubtype
	RetryAfter float64 // seconds, from a 429 response
	Err        error   // underlying transport error
}

// Sent reports whether Discord accepted the message
func (o Outcome) Sent() bool {
	return o.Status == StatusSent
}

// Retryable reports whether resubmitting unchanged could succeed
func (o Outcome) Retryable() bool {
	switch o.Reason {
	case ReasonTimeout, ReasonUnreachable:
		return true
	case ReasonRejected:
		return o.StatusCode == 429 || o.StatusCode >= 500
	default:
		return false
	}
}

// String returns a one-line summary, e.g. "Rejected (HTTP 400): Cannot send an empty message"
func (o Outcome) String() string {
	switch {
	case o.Sent():
		return fmt.Sprintf("Sent (HTTP %d)", o.StatusCode)
	case o.Reason == ReasonRejected:
		return fmt.Sprintf("Rejected (HTTP %d): %s", o.StatusCode, o.Message)
	case o.Message != "":
		return fmt.Sprintf("%s: %s", o.Reason, o.Message)
	default:
		return o.Reason.String()
	}
}

// Label is the short outcome name used in logs
func (o Outcome) Label() string {
	if o.Sent() {
		return StatusSent.String()
	}
	return o.Reason.String()
}

// Error returns the outcome as an error for failed submissions, or nil
func (o Outcome) Error() error {
	if o.Sent() {
		return nil
	}
	return &Error{Outcome: o}
}

// Error wraps a failed outcome so CLI commands can return it
type Error struct {
	Outcome Outcome
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.Outcome.String()
}

// Unwrap returns the underlying transport error, if any
func (e *Error) Unwrap() error {
	return e.Outcome.Err
}
