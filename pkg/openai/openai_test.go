package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sales-agentic-assistant/pkg/openai"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()

	mux.HandleFunc("/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req openai.Request
		json.NewDecoder(r.Body).Decode(&req)

		if len(req.Messages) > 0 && strings.Contains(req.Messages[len(req.Messages)-1].Content, "boom") {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]string{"message": "server exploded", "type": "server_error"},
			})
			return
		}

		json.NewEncoder(w).Encode(openai.Response{
			ID:    "cmpl-1",
			Model: req.Model,
			Choices: []openai.Choice{
				{Message: openai.Message{Role: "assistant", Content: "hello"}},
			},
		})
	})

	mux.HandleFunc("/embeddings", func(w http.ResponseWriter, r *http.Request) {
		var req openai.EmbedRequest
		json.NewDecoder(r.Body).Decode(&req)

		data := make([]openai.EmbeddingData, len(req.Input))
		for i := range req.Input {
			data[i] = openai.EmbeddingData{Embedding: []float32{0.1, 0.2, 0.3}, Index: i}
		}
		json.NewEncoder(w).Encode(openai.EmbedResponse{Data: data})
	})

	return httptest.NewServer(mux)
}

func TestGenerateContent(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()

	client, err := openai.New(openai.Config{APIKey: "test-key", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}

	t.Run("Success", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), &openai.Request{
			Messages: []openai.Message{{Role: "user", Content: "hi"}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Choices[0].Message.Content != "hello" {
			t.Errorf("unexpected content: %q", resp.Choices[0].Message.Content)
		}
	})

	t.Run("API Error", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), &openai.Request{
			Messages: []openai.Message{{Role: "user", Content: "boom"}},
		})
		if err == nil {
			t.Fatalf("expected error for server failure")
		}
		if !strings.Contains(err.Error(), "server exploded") {
			t.Errorf("expected API error message, got %v", err)
		}
	})
}

func TestEmbed(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()

	client, _ := openai.New(openai.Config{APIKey: "test-key", BaseURL: ts.URL})

	vectors, err := client.Embed(context.Background(), []string{"a", "b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vectors) != 2 || len(vectors[0]) != 3 {
		t.Errorf("unexpected embedding shape: %v", vectors)
	}

	if _, err := client.Embed(context.Background(), nil); err == nil {
		t.Errorf("expected error for empty input")
	}
}

func TestNewValidation(t *testing.T) {
	if _, err := openai.New(openai.Config{}); err == nil {
		t.Fatalf("expected error for missing API key")
	}
}
