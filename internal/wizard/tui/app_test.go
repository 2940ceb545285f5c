package tui

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ptwebhook/ptwebhook/internal/catalog"
	"github.com/ptwebhook/ptwebhook/internal/config"
	"github.com/ptwebhook/ptwebhook/internal/dispatch"
	"github.com/ptwebhook/ptwebhook/internal/payload"
	"github.com/ptwebhook/ptwebhook/internal/webhook"
	"github.com/ptwebhook/ptwebhook/internal/wizard"
)

const testWebhookURL = "https://discord.com/api/webhooks/123/secrettoken"

type fakeSender struct {
	mu     sync.Mutex
	result webhook.Result
	urls   []string
	bodies [][]byte
}

func (f *fakeSender) Send(ctx context.Context, webhookURL string, body []byte) webhook.Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.urls = append(f.urls, webhookURL)
	f.bodies = append(f.bodies, body)
	return f.result
}

func newTestModel(sender Sender) AppModel {
	return NewAppModel(Options{
		Catalog:    catalog.New(testTemplate()),
		WebhookURL: testWebhookURL,
		Sender:     sender,
		Theme:      config.ThemePlain,
	})
}

func press(t *testing.T, m AppModel, msgs ...tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var updated tea.Model
		updated, cmd = m.Update(msg)
		m = updated.(AppModel)
	}
	return m, cmd
}

// runCmd executes cmd, expanding batches, and returns every message
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, runCmd(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

func findDone(t *testing.T, msgs []tea.Msg) dispatchDoneMsg {
	t.Helper()
	for _, msg := range msgs {
		if done, ok := msg.(dispatchDoneMsg); ok {
			return done
		}
	}
	t.Fatalf("no dispatchDoneMsg in %v", msgs)
	return dispatchDoneMsg{}
}

func toPreview(t *testing.T, m AppModel) AppModel {
	t.Helper()
	m, _ = press(t, m,
		keyOf(tea.KeyEnter),
		runes("Hello"),
		keyOf(tea.KeyTab),
		runes("World"),
		keyOf(tea.KeyEnter),
	)
	require.Equal(t, wizard.ScreenPreview, m.Session.Screen)
	return m
}

func TestAppHappyPath(t *testing.T) {
	sender := &fakeSender{result: webhook.Result{StatusCode: http.StatusNoContent}}
	m := newTestModel(sender)
	m, _ = press(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	m = toPreview(t, m)
	assert.Contains(t, m.View(), "Hello")

	m, cmd := press(t, m, keyOf(tea.KeyEnter))
	require.Equal(t, wizard.ScreenResult, m.Session.Screen)
	require.True(t, m.Session.Pending)
	assert.Contains(t, m.View(), "Sending")

	done := findDone(t, runCmd(cmd))
	assert.Equal(t, 1, done.attempt)
	assert.True(t, done.outcome.Sent())

	require.Len(t, sender.bodies, 1)
	assert.Equal(t, testWebhookURL, sender.urls[0])
	var sent payload.Payload
	require.NoError(t, json.Unmarshal(sender.bodies[0], &sent))
	require.Len(t, sent.Embeds, 1)
	assert.Equal(t, "Announcement", sent.Embeds[0].Title)

	m, _ = press(t, m, done)
	assert.False(t, m.Session.Pending)
	require.NotNil(t, m.Session.Outcome)
	assert.Contains(t, m.View(), "Message Sent")

	m, _ = press(t, m, keyOf(tea.KeyEnter))
	assert.Equal(t, wizard.ScreenSelectTemplate, m.Session.Screen)
}

func TestAppFailureShowsHintsAndEditKeepsValues(t *testing.T) {
	sender := &fakeSender{result: webhook.Result{StatusCode: http.StatusNotFound, Body: []byte(`{"message": "Unknown Webhook", "code": 10015}`)}}
	m := toPreview(t, newTestModel(sender))

	m, cmd := press(t, m, keyOf(tea.KeyEnter))
	m, _ = press(t, m, findDone(t, runCmd(cmd)))

	require.NotNil(t, m.Session.Outcome)
	assert.Equal(t, dispatch.ReasonRejected, m.Session.Outcome.Reason)
	view := m.View()
	assert.Contains(t, view, "Unknown Webhook")
	assert.Contains(t, view, "Troubleshooting")

	m, _ = press(t, m, runes("e"))
	require.Equal(t, wizard.ScreenFillForm, m.Session.Screen)
	assert.Equal(t, "Hello", m.Session.Form.Value("title"))
	assert.Equal(t, "World", m.Session.Form.Value("content"))
}

func TestAppIgnoresStaleDispatch(t *testing.T) {
	m := toPreview(t, newTestModel(&fakeSender{}))
	m, _ = press(t, m, keyOf(tea.KeyEnter))

	stale := dispatchDoneMsg{attempt: 99, outcome: dispatch.Outcome{Status: dispatch.StatusSent, StatusCode: 204}}
	m, _ = press(t, m, stale)

	assert.True(t, m.Session.Pending)
	assert.Nil(t, m.Session.Outcome)
}

func TestAppBlocksInvalidSubmit(t *testing.T) {
	m := newTestModel(&fakeSender{})
	m, _ = press(t, m, keyOf(tea.KeyEnter), keyOf(tea.KeyEnter))

	assert.Equal(t, wizard.ScreenFillForm, m.Session.Screen)
	assert.Equal(t, []string{"title", "content"}, m.Session.Form.Invalid())
	assert.Contains(t, m.View(), "need attention")
}

func TestAppQuit(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.Msg
	}{
		{"list q", []tea.Msg{runes("q")}},
		{"form ctrl+c", []tea.Msg{keyOf(tea.KeyEnter), keyOf(tea.KeyCtrlC)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, cmd := press(t, newTestModel(&fakeSender{}), tt.keys...)
			require.NotNil(t, cmd)
			assert.Equal(t, tea.QuitMsg{}, cmd())
			assert.Empty(t, m.View())
		})
	}
}

func TestAppTypingQInFormIsText(t *testing.T) {
	m := newTestModel(&fakeSender{})
	m, cmd := press(t, m, keyOf(tea.KeyEnter), runes("q"))

	assert.Nil(t, cmd)
	assert.Equal(t, "q", m.Session.Form.Value("title"))
}

func TestSendCmdClassifiesTransportError(t *testing.T) {
	sender := &fakeSender{result: webhook.Result{Err: errors.New("boom")}}
	cmd := sendCmd(sender, "session", testWebhookURL, config.DefaultTimeout, 3, payload.Payload{Content: "hi"})

	done, ok := cmd().(dispatchDoneMsg)
	require.True(t, ok)
	assert.Equal(t, 3, done.attempt)
	assert.Equal(t, dispatch.ReasonUnreachable, done.outcome.Reason)
}

func TestPreviewMarkdown(t *testing.T) {
	color := uint32(0x5865F2)
	p := payload.Payload{
		Username: "Bot",
		Embeds: []payload.Embed{{
			Title:       "Release",
			Description: "Notes",
			Color:       &color,
			Fields:      []payload.EmbedField{{Name: "Version", Value: "1.2"}},
			Footer:      &payload.EmbedFooter{Text: "ops"},
		}},
	}

	md := previewMarkdown(p)
	assert.True(t, strings.HasPrefix(md, "**Bot**"))
	assert.Contains(t, md, "> ### Release")
	assert.Contains(t, md, "> **Version**\n> 1.2")
	assert.Contains(t, md, "> *ops*")

	assert.Contains(t, previewMarkdown(payload.Payload{}), "empty message")
}

func TestTemplateIcon(t *testing.T) {
	assert.Equal(t, "📢", templateIcon("announcement"))
	assert.Equal(t, "🎓", templateIcon("academy-event"))
	assert.Equal(t, "💼", templateIcon("project-update"))
	assert.Equal(t, "📄", templateIcon("quick-message"))
}
