package agent

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

func TestNLPAgentMissingKeySkipsNetwork(t *testing.T) {
	var hits int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
	}))
	defer srv.Close()

	a := NewNLPAgent("", srv.URL)
	result, err := a.Handle(Payload{"query": "hello"})
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	if result["response"] != "Groq API Key is missing!" {
		t.Errorf("response = %v, want missing-key message", result["response"])
	}
	if atomic.LoadInt64(&hits) != 0 {
		t.Error("outbound call made despite missing API key")
	}
}

func TestNLPAgentSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q, want bearer test-key", got)
		}

		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req["model"] != "llama3-8b-8192" {
			t.Errorf("model = %v, want llama3-8b-8192", req["model"])
		}
		if req["temperature"] != 0.7 {
			t.Errorf("temperature = %v, want 0.7", req["temperature"])
		}
		msgs, _ := req["messages"].([]any)
		if len(msgs) != 1 {
			t.Fatalf("got %d messages, want 1", len(msgs))
		}
		msg := msgs[0].(map[string]any)
		if msg["role"] != "user" || msg["content"] != "when are exams?" {
			t.Errorf("unexpected message: %v", msg)
		}

		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": "Exams start in May."}},
			},
		})
	}))
	defer srv.Close()

	a := NewNLPAgent("test-key", srv.URL)
	result, err := a.Handle(Payload{"query": "when are exams?"})
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	if result["response"] != "Exams start in May." {
		t.Errorf("response = %v, want assistant text", result["response"])
	}
}

func TestNLPAgentUpstreamErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":"rate limited"}`))
	}))
	defer srv.Close()

	a := NewNLPAgent("test-key", srv.URL)
	result, err := a.Handle(Payload{"query": "q"})
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	resp, _ := result["response"].(string)
	if !strings.HasPrefix(resp, "Groq API Error: ") || !strings.Contains(resp, "rate limited") {
		t.Errorf("response = %q, want wrapped upstream error body", resp)
	}
}

func TestNLPAgentNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	a := NewNLPAgent("test-key", srv.URL)
	result, err := a.Handle(Payload{"query": "q"})
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	resp, _ := result["response"].(string)
	if !strings.HasPrefix(resp, "Network Error: ") {
		t.Errorf("response = %q, want network error message", resp)
	}
}

func TestNLPAgentEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	a := NewNLPAgent("test-key", srv.URL)
	result, err := a.Handle(Payload{"query": "q"})
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	if result["response"] != "Error processing request." {
		t.Errorf("response = %v, want placeholder message", result["response"])
	}
}
