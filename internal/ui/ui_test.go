package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/ptwebhook/ptwebhook/internal/catalog"
)

func TestResultRenderKeepsDetailOrder(t *testing.T) {
	out := NewSuccessResult("Message delivered",
		Detail{Key: "Template", Value: "announcement"},
		Detail{Key: "Status", Value: "HTTP 204"},
	).SetWidth(80).Render()

	if !strings.Contains(out, "SUCCESS") || !strings.Contains(out, "Message delivered") {
		t.Errorf("success box missing title:\n%s", out)
	}
	first := strings.Index(out, "Template:")
	second := strings.Index(out, "Status:")
	if first < 0 || second < 0 || first > second {
		t.Errorf("details out of order:\n%s", out)
	}
}

func TestFailureResultShowsErrorAndTips(t *testing.T) {
	out := NewFailureResult("Send failed", errors.New("boom"), []string{"Check the URL"}).
		SetWidth(80).
		Render()

	for _, want := range []string{"FAILED", "Error: boom", "Troubleshooting:", "Check the URL"} {
		if !strings.Contains(out, want) {
			t.Errorf("failure box missing %q:\n%s", want, out)
		}
	}
}

func TestHeaderRender(t *testing.T) {
	out := NewHeader("Send message", "ptwebhook send",
		Detail{Key: "Template", Value: "announcement"},
		Detail{Key: "Webhook", Value: "https://discord.com/api/webhooks/1/abcd***"},
	).SetWidth(100).Render()

	if !strings.Contains(out, "SEND MESSAGE") {
		t.Errorf("title should be upper-cased:\n%s", out)
	}
	if strings.Index(out, "Template:") > strings.Index(out, "Webhook:") {
		t.Errorf("params out of order:\n%s", out)
	}
}

func TestPrinterTemplates(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf).SetWidth(80)

	p.PrintTemplates([]*catalog.Template{{
		ID:     "poll",
		Name:   "Poll",
		Source: catalog.SourceBuiltin,
		Fields: []catalog.Field{
			{Name: "question", Kind: catalog.KindText, Required: true},
			{Name: "choice", Kind: catalog.KindSelect, Options: []string{"Yes", "No"}},
		},
	}})

	out := buf.String()
	for _, want := range []string{"poll", "2 field(s)", "builtin", "question (text) required", "choice (select): Yes, No"} {
		if !strings.Contains(out, want) {
			t.Errorf("listing missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	p.PrintTemplates(nil)
	if !strings.Contains(buf.String(), "No templates found") {
		t.Errorf("empty listing = %q", buf.String())
	}
}

func TestPrinterProblems(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintProblems(&catalog.CatalogError{Problems: []error{
		errors.New("first problem"),
		errors.New("second problem"),
	}})

	out := buf.String()
	if strings.Count(out, FailureMarker) != 2 {
		t.Errorf("want one line per problem, got:\n%s", out)
	}
	if !strings.Contains(out, "second problem") {
		t.Errorf("missing problem:\n%s", out)
	}
}

func TestConfirmSend(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"yes", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		got := ConfirmSend(strings.NewReader(tt.input), &out, "About to send", []Detail{{Key: "Template", Value: "poll"}})
		if got != tt.want {
			t.Errorf("ConfirmSend(%q) = %v, want %v", tt.input, got, tt.want)
		}
		if !strings.Contains(out.String(), "[y/N]") {
			t.Errorf("prompt not shown for %q", tt.input)
		}
	}
}
