// Package artifact represents the parsed result of a generation call.
//
// The generation service replies with free text that is expected, but not
// guaranteed, to be JSON in the shape the prompt asked for. Parsing never
// fails a request: an undecodable payload produces a degraded artifact
// carrying the raw response envelope, and callers must check which variant
// they received instead of trusting field presence.
package artifact

import (
	"encoding/json"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ParseFailureMessage is the sentinel error value callers see when the
// generated text was not valid JSON.
const ParseFailureMessage = "Failed to parse response"

// Artifact is the tagged result of decoding generated text.
// Exactly one of the two variants holds:
//   - Degraded == false: Fields carries the decoded object (possibly empty
//     when the model returned valid JSON that was not an object).
//   - Degraded == true: the text was not valid JSON; Raw carries the
//     original response envelope and Fields is empty.
type Artifact struct {
	Fields   map[string]any
	Degraded bool
	Raw      json.RawMessage
}

// Parse decodes generated text into an Artifact. raw is the full response
// envelope, kept for the degraded variant.
func Parse(text string, raw json.RawMessage) Artifact {
	cleaned := cleanJSONBlock(text)

	var fields map[string]any
	if err := json.Unmarshal([]byte(cleaned), &fields); err == nil {
		return Artifact{Fields: fields, Raw: raw}
	}

	// Valid JSON that is not an object (array, bare string, number) parses,
	// but none of the expected fields exist on it.
	var anything any
	if err := json.Unmarshal([]byte(cleaned), &anything); err == nil {
		return Artifact{Fields: map[string]any{}, Raw: raw}
	}

	return Artifact{Fields: map[string]any{}, Degraded: true, Raw: raw}
}

// Get returns the named field, or nil when it is absent or the artifact is
// degraded. Absent fields persist and serialize as null.
func (a Artifact) Get(key string) any {
	if a.Degraded {
		return nil
	}
	return a.Fields[key]
}

// Sentinel is the degraded-success payload returned to callers in place of
// the expected fields. The raw envelope is embedded as-is when it is valid
// JSON and as a string otherwise, so the payload always encodes.
func (a Artifact) Sentinel() map[string]any {
	var raw any = a.Raw
	if !json.Valid(a.Raw) {
		raw = string(a.Raw)
	}
	return map[string]any{
		"error": ParseFailureMessage,
		"raw":   raw,
	}
}

// CheckShape validates a non-degraded artifact against the endpoint's
// expected JSON Schema. Mismatches are reported for logging only; the
// pipeline persists and responds with whatever fields are present.
func (a Artifact) CheckShape(schema *gojsonschema.Schema) []string {
	if a.Degraded || schema == nil {
		return nil
	}

	result, err := schema.Validate(gojsonschema.NewGoLoader(a.Fields))
	if err != nil {
		return []string{err.Error()}
	}
	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		problems = append(problems, e.String())
	}
	return problems
}

// cleanJSONBlock removes markdown code block wrappers from JSON
func cleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
