package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ptwebhook/ptwebhook/internal/catalog"
	"github.com/ptwebhook/ptwebhook/internal/config"
	"github.com/ptwebhook/ptwebhook/internal/payload"
)

func builtin(t *testing.T, id string) *catalog.Template {
	t.Helper()
	templates, err := catalog.LoadBuiltinTemplates()
	if err != nil {
		t.Fatalf("LoadBuiltinTemplates() error = %v", err)
	}
	for _, tmpl := range templates {
		if tmpl.ID == id {
			return tmpl
		}
	}
	t.Fatalf("builtin template %s not found", id)
	return nil
}

func TestFillForm(t *testing.T) {
	tmpl := builtin(t, "announcement")

	state, err := fillForm(tmpl, []string{"title=Release", `content=line one\nline two`, "priority=High"})
	if err != nil {
		t.Fatalf("fillForm() error = %v", err)
	}
	if got := state.Value("content"); got != "line one\nline two" {
		t.Errorf("content = %q, want a line break", got)
	}
	if got := state.Value("priority"); got != "High" {
		t.Errorf("priority = %q, want High", got)
	}
}

func TestFillFormErrors(t *testing.T) {
	tmpl := builtin(t, "announcement")

	tests := []struct {
		name   string
		values []string
	}{
		{"missing equals", []string{"title"}},
		{"unknown field", []string{"title=a", "content=b", "nope=c"}},
		{"option not allowed", []string{"title=a", "content=b", "priority=Urgent"}},
		{"required blank", []string{"title=   ", "content=b"}},
		{"required missing", []string{"title=a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := fillForm(tmpl, tt.values); err == nil {
				t.Error("fillForm() should fail")
			}
		})
	}
}

func TestSendDryRun(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("PTWEBHOOK_WEBHOOK", "")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{
		"--config", filepath.Join(t.TempDir(), "config.yaml"),
		"send", "--template", "announcement",
		"--set", "title=Release 1.2",
		"--set", "content=Out now",
		"--dry-run",
	})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("send --dry-run error = %v", err)
	}

	var p payload.Payload
	if err := json.Unmarshal(out.Bytes(), &p); err != nil {
		t.Fatalf("dry run output is not JSON: %v\n%s", err, out.String())
	}
	if len(p.Embeds) != 1 || p.Embeds[0].Title != "Announcement" {
		t.Errorf("payload = %+v", p)
	}
	if p.Username != "Announcements" {
		t.Errorf("Username = %q, want Announcements", p.Username)
	}
}

func TestResolveWebhook(t *testing.T) {
	cfg = &config.Config{}
	if _, err := resolveWebhook(); err == nil || !strings.Contains(err.Error(), "no webhook configured") {
		t.Errorf("resolveWebhook() with no webhook error = %v", err)
	}

	cfg = &config.Config{Webhook: "123/abc"}
	got, err := resolveWebhook()
	if err != nil {
		t.Fatalf("resolveWebhook() error = %v", err)
	}
	if got != "https://discord.com/api/webhooks/123/abc" {
		t.Errorf("resolveWebhook() = %s", got)
	}
}
