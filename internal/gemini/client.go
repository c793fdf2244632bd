// Package gemini is a REST client for the Gemini generateContent endpoint.
//
// The wire format is fixed: a single POST to
// {base}/models/{model}:generateContent?key={apiKey} with body
// {"contents":[{"parts":[{"text":"<prompt>"}]}]}, answered by an envelope
// whose first candidate's first text part carries the generated text.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultTimeout bounds the synchronous generation call. The upstream
// service is untrusted and would otherwise block a request indefinitely.
const DefaultTimeout = 30 * time.Second

// Part is one text fragment of a content block.
type Part struct {
	Text string `json:"text"`
}

// Content is a block of parts.
type Content struct {
	Parts []Part `json:"parts"`
}

// generateRequest is the request body for generateContent.
type generateRequest struct {
	Contents []Content `json:"contents"`
}

// Candidate is one generated answer in the response envelope.
type Candidate struct {
	Content *Content `json:"content"`
}

// Envelope is the generateContent response body.
type Envelope struct {
	Candidates []Candidate `json:"candidates"`
}

// Client calls the generation service. Safe for concurrent use.
type Client struct {
	httpClient *http.Client
	apiKey     string
	model      string
	baseURL    string
}

// NewClient creates a client for the given API key and model.
// baseURL is the API root, e.g. "https://generativelanguage.googleapis.com/v1beta".
func NewClient(apiKey, model, baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		apiKey:     apiKey,
		model:      model,
		baseURL:    baseURL,
	}
}

// WithHTTPClient overrides the underlying HTTP client (used by tests).
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// Generate submits the prompt and returns the first candidate's text along
// with the raw response envelope. A missing or empty candidate is not an
// error here: the caller treats unparseable text as a degraded result and
// needs the raw envelope either way. Errors are limited to transport
// failures, timeouts and non-2xx statuses.
func (c *Client) Generate(ctx context.Context, prompt string) (string, json.RawMessage, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []Content{{Parts: []Part{{Text: prompt}}}},
	})
	if err != nil {
		return "", nil, fmt.Errorf("failed to marshal generation request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		c.baseURL, c.model, url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", nil, fmt.Errorf("failed to build generation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", nil, fmt.Errorf("generation request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read generation response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", nil, fmt.Errorf("generation service returned status %d", resp.StatusCode)
	}

	var envelope Envelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		// A 2xx with a non-JSON body still degrades rather than fails.
		return "", json.RawMessage(raw), nil
	}

	return envelope.Text(), json.RawMessage(raw), nil
}

// Text returns the first candidate's first text part, or "" when absent.
func (e *Envelope) Text() string {
	if len(e.Candidates) == 0 {
		return ""
	}
	content := e.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return ""
	}
	return content.Parts[0].Text
}
