package webhook

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestNewClient(t *testing.T) {
	client := NewClient()

	if client.HTTPClient == nil {
		t.Fatal("HTTPClient should not be nil")
	}
	if client.HTTPClient.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", client.HTTPClient.Timeout, DefaultTimeout)
	}
	if !strings.HasPrefix(client.UserAgent, "ptwebhook/") {
		t.Errorf("UserAgent = %s, want ptwebhook/<version>", client.UserAgent)
	}
}

func TestSetTimeout(t *testing.T) {
	client := NewClient()
	client.SetTimeout(5 * time.Second)

	if client.HTTPClient.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", client.HTTPClient.Timeout)
	}
}

func TestSendPostsJSON(t *testing.T) {
	var gotMethod, gotType, gotAgent, gotBody string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotType = r.Header.Get("Content-Type")
		gotAgent = r.Header.Get("User-Agent")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient()
	result := client.Send(context.Background(), server.URL, []byte(`{"content":"hi"}`))

	if result.Err != nil {
		t.Fatalf("Send() Err = %v", result.Err)
	}
	if result.StatusCode != http.StatusNoContent {
		t.Errorf("StatusCode = %d, want 204", result.StatusCode)
	}
	if gotMethod != http.MethodPost {
		t.Errorf("method = %s, want POST", gotMethod)
	}
	if gotType != "application/json" {
		t.Errorf("Content-Type = %s, want application/json", gotType)
	}
	if gotAgent != client.UserAgent {
		t.Errorf("User-Agent = %s, want %s", gotAgent, client.UserAgent)
	}
	if gotBody != `{"content":"hi"}` {
		t.Errorf("body = %s", gotBody)
	}
}

func TestSendKeepsErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message": "Cannot send an empty message", "code": 50006}`))
	}))
	defer server.Close()

	result := NewClient().Send(context.Background(), server.URL, []byte(`{}`))

	if result.Err != nil {
		t.Fatalf("Send() Err = %v, want nil for an HTTP error status", result.Err)
	}
	if result.StatusCode != http.StatusBadRequest {
		t.Errorf("StatusCode = %d, want 400", result.StatusCode)
	}
	if !strings.Contains(string(result.Body), "Cannot send an empty message") {
		t.Errorf("Body = %s", result.Body)
	}
}

func TestSendContextDeadline(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	result := NewClient().Send(ctx, server.URL, []byte(`{}`))
	if result.Err == nil {
		t.Fatal("Send() should fail when the context expires")
	}
	if result.StatusCode != 0 {
		t.Errorf("StatusCode = %d, want 0", result.StatusCode)
	}
}

func TestSendConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	result := NewClient().Send(context.Background(), url, []byte(`{}`))
	if result.Err == nil {
		t.Error("Send() to a closed server should fail")
	}
}
