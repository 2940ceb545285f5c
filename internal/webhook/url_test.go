package webhook

import (
	"errors"
	"strings"
	"testing"
)

const canonical = "https://discord.com/api/webhooks/123456789/abc_DEF-ghi"

func TestParseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"full url", canonical, canonical, false},
		{"surrounding whitespace", "  " + canonical + "\n", canonical, false},
		{"no scheme", "discord.com/api/webhooks/123456789/abc_DEF-ghi", canonical, false},
		{"id and token", "123456789/abc_DEF-ghi", canonical, false},
		{"discordapp host", "https://discordapp.com/api/webhooks/123456789/abc_DEF-ghi", canonical, false},
		{"canary host", "https://canary.discord.com/api/webhooks/123456789/abc_DEF-ghi", canonical, false},
		{"ptb host", "https://ptb.discord.com/api/webhooks/123456789/abc_DEF-ghi", canonical, false},
		{"versioned api", "https://discord.com/api/v10/webhooks/123456789/abc_DEF-ghi", canonical, false},
		{"query and slash", canonical + "/?wait=true", canonical, false},
		{"empty", "", "", true},
		{"other host", "https://example.com/api/webhooks/123/abc", "", true},
		{"non numeric id", "abc/def", "", true},
		{"missing token", "123456789", "", true},
		{"bad token chars", "123456789/abc$def", "", true},
		{"extra segment", "123/abc/def", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseURL(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseURL(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseURLErrorListsFormats(t *testing.T) {
	_, err := ParseURL("nope")

	var urlErr *URLError
	if !errors.As(err, &urlErr) {
		t.Fatalf("error type = %T, want *URLError", err)
	}
	if !strings.Contains(err.Error(), "{id}/{token}") {
		t.Errorf("error should list supported formats, got %q", err.Error())
	}
}

func TestRedact(t *testing.T) {
	got := Redact(canonical)
	if got != "https://discord.com/api/webhooks/123456789/abc_***" {
		t.Errorf("Redact() = %q", got)
	}
	if strings.Contains(got, "DEF-ghi") {
		t.Error("Redact() leaked the token")
	}

	if got := Redact("garbage"); got != "***" {
		t.Errorf("Redact(garbage) = %q, want ***", got)
	}
}
