package wizard

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ptwebhook/ptwebhook/internal/catalog"
	"github.com/ptwebhook/ptwebhook/internal/dispatch"
	"github.com/ptwebhook/ptwebhook/internal/form"
	"github.com/ptwebhook/ptwebhook/internal/payload"
	"github.com/ptwebhook/ptwebhook/internal/webhook"
)

// send runs an EffectSend the way the terminal front end does
func send(t *testing.T, url string, eff Effect) dispatch.Outcome {
	t.Helper()
	body, err := eff.Payload.Marshal()
	require.NoError(t, err)
	return dispatch.Classify(webhook.NewClient().Send(context.Background(), url, body))
}

func TestScenarioHappyPath(t *testing.T) {
	var received payload.Payload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &received)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	s := NewSession(catalog.New(announcementTemplate()))

	s, _ = HandleInput(s, Key(EventConfirm))
	require.Equal(t, ScreenFillForm, s.Screen)

	s, _ = apply(s, typeText("Hello")...)
	s, _ = apply(s, Key(EventNext))
	s, _ = apply(s, typeText("World")...)
	s, _ = HandleInput(s, Key(EventConfirm))
	require.Equal(t, ScreenPreview, s.Screen)

	s, effects := HandleInput(s, Key(EventConfirm))
	require.Equal(t, ScreenResult, s.Screen)
	require.Len(t, effects, 1)
	require.Equal(t, EffectSend, effects[0].Kind)

	fields := effects[0].Payload.Embeds[0].Fields
	assert.Contains(t, fields, payload.EmbedField{Name: "Title", Value: "Hello"})
	assert.Contains(t, fields, payload.EmbedField{Name: "Content", Value: "World"})

	outcome := send(t, server.URL, effects[0])
	s = Complete(s, effects[0].Attempt, outcome)

	require.NotNil(t, s.Outcome)
	assert.True(t, s.Outcome.Sent())
	assert.Equal(t, http.StatusNoContent, s.Outcome.StatusCode)
	assert.False(t, s.Pending)
	require.Len(t, received.Embeds, 1)
	assert.Equal(t, "Announcement", received.Embeds[0].Title)
}

func TestScenarioBlockedSubmit(t *testing.T) {
	s := NewSession(catalog.New(announcementTemplate()))
	s, _ = HandleInput(s, Key(EventConfirm))
	s, _ = apply(s, Key(EventNext))
	s, _ = apply(s, typeText("World")...)

	s, effects := HandleInput(s, Key(EventConfirm))

	assert.Equal(t, ScreenFillForm, s.Screen)
	assert.Empty(t, effects)
	assert.Equal(t, []string{"title"}, s.Form.Invalid())
}

func TestScenarioSelectCycling(t *testing.T) {
	s := NewSession(catalog.New(announcementTemplate()))
	s, _ = apply(s, Key(EventConfirm), Key(EventNext), Key(EventNext))
	require.Equal(t, "Medium", s.Form.Value("priority"))

	var seen []string
	for i := 0; i < 3; i++ {
		s, _ = HandleInput(s, Char('x'))
		seen = append(seen, s.Form.Value("priority"))
	}

	assert.Equal(t, []string{"High", "Low", "Medium"}, seen)
}

func TestScenarioDispatchFailureKeepsValues(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	closedURL := server.URL
	server.Close()

	s := readyForPreview(t)
	s, effects := HandleInput(s, Key(EventConfirm))
	require.Len(t, effects, 1)

	outcome := send(t, closedURL, effects[0])
	s = Complete(s, effects[0].Attempt, outcome)

	require.NotNil(t, s.Outcome)
	assert.Equal(t, dispatch.StatusFailed, s.Outcome.Status)
	assert.Equal(t, dispatch.ReasonUnreachable, s.Outcome.Reason)

	s, _ = HandleInput(s, Key(EventEdit))
	require.Equal(t, ScreenFillForm, s.Screen)
	assert.Equal(t, "Hello", s.Form.Value("title"))
	assert.Equal(t, "World", s.Form.Value("content"))
	assert.Nil(t, s.Outcome)

	s, _ = apply(s, Key(EventConfirm), Key(EventConfirm))
	require.Equal(t, ScreenResult, s.Screen)
	s = Complete(s, s.Attempt, dispatch.Outcome{Status: dispatch.StatusSent, StatusCode: 204})
	s, _ = HandleInput(s, Key(EventConfirm))
	assert.Equal(t, ScreenSelectTemplate, s.Screen)
	assert.Nil(t, s.Form, "values are only cleared by restarting from Result")
}

func TestScenarioRenderIdempotent(t *testing.T) {
	s := readyForPreview(t)

	first, err := payload.RenderTemplate(s.Form).Marshal()
	require.NoError(t, err)
	second, err := payload.RenderTemplate(s.Form).Marshal()
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestScenarioDefaultsRoundTrip(t *testing.T) {
	templates, err := catalog.LoadBuiltinTemplates()
	require.NoError(t, err)
	templates = append(templates, announcementTemplate())

	for _, tmpl := range templates {
		f := form.New(tmpl)
		_ = f.ValidateAll()
		for _, field := range tmpl.Fields {
			if !field.Required {
				assert.False(t, f.IsInvalid(field.Name), "%s.%s", tmpl.ID, field.Name)
			}
		}
	}
}
