package artifact

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"
)

func TestParse_ValidObject(t *testing.T) {
	raw := json.RawMessage(`{"candidates":[]}`)
	a := Parse(`{"guidance":"go for it","strategicAdvice":["a","b"]}`, raw)

	assert.False(t, a.Degraded)
	assert.Equal(t, "go for it", a.Get("guidance"))
	assert.Equal(t, []any{"a", "b"}, a.Get("strategicAdvice"))
	assert.Nil(t, a.Get("growthSuggestions"))
}

func TestParse_MarkdownFences(t *testing.T) {
	a := Parse("```json\n{\"guidance\":\"fenced\"}\n```", nil)
	assert.False(t, a.Degraded)
	assert.Equal(t, "fenced", a.Get("guidance"))
}

func TestParse_InvalidJSON(t *testing.T) {
	raw := json.RawMessage(`{"candidates":[{"content":{"parts":[{"text":"Sure! Here is..."}]}}]}`)
	a := Parse("Sure! Here is some advice without JSON.", raw)

	assert.True(t, a.Degraded)
	assert.Nil(t, a.Get("guidance"))

	sentinel := a.Sentinel()
	assert.Equal(t, ParseFailureMessage, sentinel["error"])
	assert.Equal(t, raw, sentinel["raw"])
}

func TestSentinel_NonJSONEnvelope(t *testing.T) {
	// A 2xx with a non-JSON body degrades with the body as the raw
	// envelope; the sentinel must still be encodable.
	a := Parse("not json at all", json.RawMessage("not json at all"))
	require.True(t, a.Degraded)

	sentinel := a.Sentinel()
	assert.Equal(t, "not json at all", sentinel["raw"])

	encoded, err := json.Marshal(sentinel)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), ParseFailureMessage)
}

func TestParse_EmptyText(t *testing.T) {
	a := Parse("", json.RawMessage(`{}`))
	assert.True(t, a.Degraded)
}

func TestParse_NonObjectJSON(t *testing.T) {
	// Arrays decode fine but carry none of the expected fields;
	// that is missing data, not a parse failure.
	a := Parse(`["a","b"]`, nil)
	assert.False(t, a.Degraded)
	assert.Nil(t, a.Get("guidance"))
}

func TestCheckShape(t *testing.T) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(`{
		"type": "object",
		"required": ["guidance"],
		"properties": {
			"guidance": {"type": "string"},
			"strategicAdvice": {"type": "array", "items": {"type": "string"}}
		}
	}`))
	require.NoError(t, err)

	good := Parse(`{"guidance":"x","strategicAdvice":["a"]}`, nil)
	assert.Empty(t, good.CheckShape(schema))

	missing := Parse(`{"strategicAdvice":["a"]}`, nil)
	assert.NotEmpty(t, missing.CheckShape(schema))

	degraded := Parse("nope", nil)
	assert.Empty(t, degraded.CheckShape(schema))
}
