package wire

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

type testEndpoint struct {
	baseURL string
	headers map[string]string
}

func (e testEndpoint) BaseURL() string                { return e.baseURL }
func (e testEndpoint) AuthHeaders() map[string]string { return e.headers }

func TestClientComplete(t *testing.T) {
	var gotPath, gotAuth, gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "msg_01",
			"type": "message",
			"role": "assistant",
			"model": "grok-3",
			"content": [{"type": "text", "text": "ok"}],
			"stop_reason": "end_turn",
			"usage": {"input_tokens": 3, "output_tokens": 1}
		}`))
	}))
	defer server.Close()

	client, err := NewClient(ClientConfig{
		Endpoint: testEndpoint{
			baseURL: server.URL,
			headers: map[string]string{"Authorization": "Bearer secret"},
		},
		Codec: AnthropicCodec{},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := client.Complete(context.Background(), "grok-3", ChatRequest{
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "ok" {
		t.Fatalf("text = %q", resp.Text)
	}
	if gotPath != "/messages" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotAuth != "Bearer secret" {
		t.Fatalf("authorization = %q", gotAuth)
	}
	if gotContentType != "application/json" {
		t.Fatalf("content type = %q", gotContentType)
	}
}

func TestClientCompleteErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no key", http.StatusUnauthorized)
	}))
	defer server.Close()

	client, err := NewClient(ClientConfig{
		Endpoint: testEndpoint{baseURL: server.URL, headers: map[string]string{}},
		Codec:    AnthropicCodec{},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = client.Complete(context.Background(), "grok-3", ChatRequest{
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
	})
	if err == nil {
		t.Fatalf("expected error for 401 response")
	}
}

func TestNewClientValidation(t *testing.T) {
	if _, err := NewClient(ClientConfig{Codec: AnthropicCodec{}}); err == nil {
		t.Fatalf("expected error for missing endpoint")
	}
	if _, err := NewClient(ClientConfig{Endpoint: testEndpoint{}}); err == nil {
		t.Fatalf("expected error for missing codec")
	}
}
