package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestOllama_Complete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/v1/chat/completions") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "" {
			t.Error("Authorization header set without an API key")
		}

		resp := openaiResponse{
			Choices: []openaiChoice{
				{Message: openaiMessage{Role: "assistant", Content: "## Feedback"}},
			},
			Usage: openaiUsage{TotalTokens: 25},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	o := &Ollama{
		model:   "llama3.3",
		baseURL: server.URL + "/v1/chat/completions",
		client:  server.Client(),
	}

	resp, err := o.Complete(context.Background(), CompletionRequest{
		SystemPrompt: "mentor",
		UserPrompt:   "transform",
	})
	if err != nil {
		t.Fatalf("Complete error: %v", err)
	}
	if resp.Content != "## Feedback" {
		t.Errorf("Content = %q, want %q", resp.Content, "## Feedback")
	}
}

func TestNewOllama_URLNormalization(t *testing.T) {
	tests := []struct {
		host string
		want string
	}{
		{"http://localhost:11434", "http://localhost:11434/v1/chat/completions"},
		{"http://localhost:11434/", "http://localhost:11434/v1/chat/completions"},
		{"http://localhost:11434/v1", "http://localhost:11434/v1/chat/completions"},
		{"http://localhost:11434/v1/chat/completions", "http://localhost:11434/v1/chat/completions"},
	}
	for _, tt := range tests {
		t.Setenv("OLLAMA_HOST", tt.host)
		o, err := NewOllama("llama3.3")
		if err != nil {
			t.Fatalf("NewOllama(%q): %v", tt.host, err)
		}
		if o.baseURL != tt.want {
			t.Errorf("baseURL for %q = %q, want %q", tt.host, o.baseURL, tt.want)
		}
	}
}

func TestNew(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "k")
	t.Setenv("ANTHROPIC_API_KEY", "k")

	for _, name := range []string{"openai", "anthropic", "ollama", "lmstudio"} {
		p, err := New(name, "some-model")
		if err != nil {
			t.Errorf("New(%q): %v", name, err)
			continue
		}
		if p == nil {
			t.Errorf("New(%q) returned nil provider", name)
		}
	}

	if _, err := New("bogus", "m"); err == nil {
		t.Error("New(bogus) should fail")
	}
}
