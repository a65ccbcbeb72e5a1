package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/venturedesk/pitch-simulator/pkg/config"
)

func candidateBody(text string) map[string]interface{} {
	return map[string]interface{}{
		"candidates": []map[string]interface{}{
			{"content": map[string]interface{}{
				"parts": []map[string]string{{"text": text}},
			}},
		},
	}
}

func TestGenerateContent_Success(t *testing.T) {
	var captured map[string]interface{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST got %s", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(candidateBody(`{"ok":true}`))
	}))
	defer ts.Close()

	client := NewClient(&config.GeminiConfig{APIKey: "test-key", BaseURL: ts.URL})

	text, err := client.GenerateContent(context.Background(), Request{
		Parts:          []Part{TextPart("analyze this"), MediaPart("application/pdf", "QUJD")},
		ResponseSchema: Object(map[string]*Schema{"ok": Boolean()}, "ok"),
		Temperature:    0.3,
	})
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if text != `{"ok":true}` {
		t.Fatalf("unexpected text %q", text)
	}

	genCfg, ok := captured["generationConfig"].(map[string]interface{})
	if !ok {
		t.Fatalf("missing generationConfig in payload")
	}
	if genCfg["responseMimeType"] != "application/json" {
		t.Fatalf("expected JSON response mime type, got %v", genCfg["responseMimeType"])
	}
	if genCfg["responseSchema"] == nil {
		t.Fatalf("expected declared response schema")
	}

	contents := captured["contents"].([]interface{})
	parts := contents[0].(map[string]interface{})["parts"].([]interface{})
	if len(parts) != 2 {
		t.Fatalf("expected 2 parts, got %d", len(parts))
	}
	inline := parts[1].(map[string]interface{})["inline_data"].(map[string]interface{})
	if inline["mime_type"] != "application/pdf" || inline["data"] != "QUJD" {
		t.Fatalf("unexpected inline data %v", inline)
	}
}

func TestGenerateContent_MissingAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	hit := false
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = true
	}))
	defer ts.Close()

	client := NewClient(&config.GeminiConfig{BaseURL: ts.URL})

	_, err := client.GenerateContent(context.Background(), Request{Parts: []Part{TextPart("hi")}})
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
	if hit {
		t.Fatalf("network must not be touched without an API key")
	}
}

func TestGenerateContent_EmptyCandidates(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{"candidates": []interface{}{}})
	}))
	defer ts.Close()

	client := NewClient(&config.GeminiConfig{APIKey: "test-key", BaseURL: ts.URL})

	_, err := client.GenerateContent(context.Background(), Request{Parts: []Part{TextPart("hi")}})
	if !errors.Is(err, ErrEmptyResponse) {
		t.Fatalf("expected ErrEmptyResponse, got %v", err)
	}
}

func TestGenerateContent_HTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer ts.Close()

	client := NewClient(&config.GeminiConfig{APIKey: "test-key", BaseURL: ts.URL})

	_, err := client.GenerateContent(context.Background(), Request{Parts: []Part{TextPart("hi")}})
	if err == nil {
		t.Fatalf("expected error on 429 response")
	}
}
