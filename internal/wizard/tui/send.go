package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ptwebhook/ptwebhook/internal/dispatch"
	"github.com/ptwebhook/ptwebhook/internal/logging"
	"github.com/ptwebhook/ptwebhook/internal/payload"
	"github.com/ptwebhook/ptwebhook/internal/webhook"
)

// Sender submits an encoded payload to a webhook URL.
// *webhook.Client satisfies it.
type Sender interface {
	Send(ctx context.Context, webhookURL string, body []byte) webhook.Result
}

// dispatchDoneMsg carries the classified outcome of one submission back
// into the event loop
type dispatchDoneMsg struct {
	attempt int
	outcome dispatch.Outcome
}

// sendCmd performs a submission off the event loop. The request is
// bounded by timeout; the program may quit before it returns.
func sendCmd(sender Sender, sessionID, webhookURL string, timeout time.Duration, attempt int, p payload.Payload) tea.Cmd {
	return func() tea.Msg {
		body, err := p.Marshal()
		if err != nil {
			outcome := dispatch.Classify(webhook.Result{Err: err})
			return dispatchDoneMsg{attempt: attempt, outcome: outcome}
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		result := sender.Send(ctx, webhookURL, body)
		outcome := dispatch.Classify(result)

		logging.LogDispatch(sessionID, webhookURL, attempt, outcome.Label(), outcome.StatusCode, result.Duration)
		return dispatchDoneMsg{attempt: attempt, outcome: outcome}
	}
}
