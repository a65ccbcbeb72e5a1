package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/venturedesk/pitch-simulator/pkg/config"
)

const (
	defaultBaseURL   = "https://generativelanguage.googleapis.com/v1beta"
	defaultModelName = "gemini-2.5-flash"
)

// Client errors
var (
	// ErrMissingAPIKey is the configuration error raised before any network
	// I/O when no API key is available.
	ErrMissingAPIKey = errors.New("gemini API key is not configured")
	// ErrEmptyResponse means the call succeeded but carried no usable text.
	ErrEmptyResponse = errors.New("empty response from model")
	// ErrMalformedResponse tags model output that is not the declared JSON.
	ErrMalformedResponse = errors.New("model response is not valid JSON")
)

// Client is a minimal client for the Gemini generateContent API.
type Client struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// NewClient creates a Gemini client using values from the provided config.
// Pass a nil config to fall back to environment variables.
func NewClient(cfg *config.GeminiConfig) *Client {
	var apiKey, base, model string
	timeout := 120 * time.Second
	if cfg != nil {
		apiKey = cfg.APIKey
		base = cfg.BaseURL
		model = cfg.Model
		if cfg.Timeout > 0 {
			timeout = cfg.Timeout
		}
	}
	if base == "" {
		base = os.Getenv("GEMINI_API_URL")
		if base == "" {
			base = defaultBaseURL
		}
	}
	if model == "" {
		model = defaultModelName
	}

	return &Client{
		apiKey:  apiKey,
		baseURL: base,
		model:   model,
		client:  &http.Client{Timeout: timeout},
	}
}

// Part is one piece of multi-part request content: either plain text or an
// inline base64 media blob.
type Part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *InlineData `json:"inline_data,omitempty"`
}

// InlineData carries base64-encoded media with its MIME type.
type InlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

// TextPart builds a text content part.
func TextPart(text string) Part {
	return Part{Text: text}
}

// MediaPart builds an inline base64 media part.
func MediaPart(mimeType, base64Data string) Part {
	return Part{InlineData: &InlineData{MimeType: mimeType, Data: base64Data}}
}

// Request describes one generateContent call.
type Request struct {
	Parts             []Part
	SystemInstruction string
	// ResponseSchema, when set, declares structured JSON output and switches
	// the response MIME type to application/json.
	ResponseSchema *Schema
	Temperature    float64
	MaxTokens      int
}

// generateContentResponse is the minimal response shape we read.
type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (r generateContentResponse) firstText() string {
	for _, candidate := range r.Candidates {
		for _, part := range candidate.Content.Parts {
			if strings.TrimSpace(part.Text) != "" {
				return part.Text
			}
		}
	}
	return ""
}

// resolveKey returns the API key, preferring config over the environment.
// The key is read per call so a demo started without it can pick it up later.
func (c *Client) resolveKey() string {
	if c.apiKey != "" {
		return c.apiKey
	}
	return os.Getenv("GEMINI_API_KEY")
}

// GenerateContent sends one generateContent request and returns the first
// candidate text. A missing API key fails before any network I/O with
// ErrMissingAPIKey.
func (c *Client) GenerateContent(ctx context.Context, req Request) (string, error) {
	apiKey := c.resolveKey()
	if apiKey == "" {
		return "", ErrMissingAPIKey
	}

	payload := c.buildRequestBody(req)
	bodyBytes, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", c.baseURL, normalizeModel(c.model), apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini returned status %d: %s", resp.StatusCode, truncate(string(b), 200))
	}

	var result generateContentResponse
	if err := json.Unmarshal(b, &result); err != nil {
		return "", err
	}
	text := result.firstText()
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

func (c *Client) buildRequestBody(req Request) map[string]interface{} {
	parts := make([]map[string]interface{}, 0, len(req.Parts))
	for _, p := range req.Parts {
		if p.InlineData != nil {
			parts = append(parts, map[string]interface{}{
				"inline_data": map[string]string{
					"mime_type": p.InlineData.MimeType,
					"data":      p.InlineData.Data,
				},
			})
			continue
		}
		parts = append(parts, map[string]interface{}{"text": p.Text})
	}

	generationConfig := map[string]interface{}{
		"temperature": req.Temperature,
	}
	if req.MaxTokens > 0 {
		generationConfig["maxOutputTokens"] = req.MaxTokens
	}
	if req.ResponseSchema != nil {
		generationConfig["responseMimeType"] = "application/json"
		generationConfig["responseSchema"] = req.ResponseSchema
	}

	body := map[string]interface{}{
		"contents": []map[string]interface{}{
			{"role": "user", "parts": parts},
		},
		"generationConfig": generationConfig,
	}

	if strings.TrimSpace(req.SystemInstruction) != "" {
		body["systemInstruction"] = map[string]interface{}{
			"parts": []map[string]string{
				{"text": req.SystemInstruction},
			},
		}
	}

	return body
}

func normalizeModel(model string) string {
	model = strings.TrimSpace(model)
	if model == "" {
		return "models/" + defaultModelName
	}
	if strings.HasPrefix(model, "models/") {
		return model
	}
	return "models/" + model
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
