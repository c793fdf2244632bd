package gemini

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_WireFormat(t *testing.T) {
	var gotPath, gotKey, gotContentType string
	var gotBody []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"hello"}]}}]}`))
	}))
	defer srv.Close()

	client := NewClient("secret-key", "gemini-pro", srv.URL)
	text, raw, err := client.Generate(context.Background(), "say hello")
	require.NoError(t, err)

	assert.Equal(t, "/models/gemini-pro:generateContent", gotPath)
	assert.Equal(t, "secret-key", gotKey)
	assert.Equal(t, "application/json", gotContentType)
	// The request body bytes are part of the wire contract.
	assert.Equal(t, `{"contents":[{"parts":[{"text":"say hello"}]}]}`, string(gotBody))

	assert.Equal(t, "hello", text)
	assert.JSONEq(t, `{"candidates":[{"content":{"parts":[{"text":"hello"}]}}]}`, string(raw))
}

func TestGenerate_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":{"message":"quota exceeded"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient("k", "gemini-pro", srv.URL)
	_, _, err := client.Generate(context.Background(), "p")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestGenerate_EmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	client := NewClient("k", "gemini-pro", srv.URL)
	text, raw, err := client.Generate(context.Background(), "p")
	require.NoError(t, err)
	assert.Empty(t, text)
	assert.NotEmpty(t, raw)
}

func TestGenerate_NonJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json at all"))
	}))
	defer srv.Close()

	client := NewClient("k", "gemini-pro", srv.URL)
	text, raw, err := client.Generate(context.Background(), "p")
	require.NoError(t, err)
	assert.Empty(t, text)
	assert.Equal(t, "not json at all", string(raw))
}

func TestGenerate_Timeout(t *testing.T) {
	blocked := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-blocked
	}))
	defer srv.Close()
	defer close(blocked)

	client := NewClient("k", "gemini-pro", srv.URL).
		WithHTTPClient(&http.Client{Timeout: 20 * time.Millisecond})
	_, _, err := client.Generate(context.Background(), "p")
	require.Error(t, err)
}

func TestEnvelope_Text(t *testing.T) {
	tests := []struct {
		name     string
		envelope string
		want     string
	}{
		{"full", `{"candidates":[{"content":{"parts":[{"text":"a"},{"text":"b"}]}}]}`, "a"},
		{"no candidates", `{"candidates":[]}`, ""},
		{"nil content", `{"candidates":[{}]}`, ""},
		{"no parts", `{"candidates":[{"content":{"parts":[]}}]}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e Envelope
			require.NoError(t, json.Unmarshal([]byte(tt.envelope), &e))
			assert.Equal(t, tt.want, e.Text())
		})
	}
}
