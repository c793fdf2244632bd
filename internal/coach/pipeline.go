// Package coach implements the request/generate/persist/respond pipeline
// shared by every career-coaching endpoint.
//
// Each endpoint repeats the same seven linear steps: validate the request,
// resolve the user profile, render a prompt, call the generation service,
// parse the reply, insert one record, and return a curated subset of the
// parsed fields. The pipeline is generic; endpoints.go declares the
// per-endpoint configuration (required fields, prompt template, target
// table, persisted and returned fields).
package coach

import (
	"context"
	"encoding/json"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/xeipuuv/gojsonschema"

	"careercoach/internal/artifact"
	"careercoach/internal/db"
)

// ProfileStore reads user profiles with skills and education included.
type ProfileStore interface {
	GetUserProfile(ctx context.Context, userID string) (*db.UserProfile, error)
}

// Generator submits a prompt to the generation service and returns the
// generated text plus the raw response envelope.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, json.RawMessage, error)
}

// RecordStore inserts one generated record per successful pipeline run.
type RecordStore interface {
	InsertRecord(ctx context.Context, table string, cols map[string]any) (uuid.UUID, error)
}

// Field maps an artifact or request key to a table column.
type Field struct {
	Key    string
	Column string
}

// Endpoint is the declarative configuration for one pipeline variant.
type Endpoint struct {
	// Name identifies the endpoint in logs.
	Name string
	// ResponseKey is the top-level key the artifact subset is returned under.
	ResponseKey string
	// Table receives the stored record.
	Table string
	// Required lists request body fields that must be present.
	Required []string
	// Params maps request fields to persisted columns.
	Params []Field
	// Store maps artifact fields to persisted columns. Absent fields
	// persist as NULL.
	Store []Field
	// Respond lists the artifact keys returned to the caller.
	Respond []string
	// Prompt renders the generation instruction for this endpoint.
	Prompt func(profile *db.UserProfile, params map[string]any) string
	// Shape is the JSON Schema the artifact is expected to match.
	// Mismatches are logged, never fatal.
	Shape *gojsonschema.Schema
}

// Pipeline holds the collaborators shared by all endpoints.
type Pipeline struct {
	Profiles  ProfileStore
	Generator Generator
	Records   RecordStore
}

var validate = validator.New()

// Run executes the seven pipeline steps for one request and returns the
// response body. The record is inserted exactly once per successful run;
// resubmitting an identical request inserts a second record. A degraded
// generation result is still persisted (with NULL generated columns) and
// still answered with 200 carrying the sentinel payload.
func (p *Pipeline) Run(ctx context.Context, ep Endpoint, params map[string]any) (map[string]any, error) {
	if err := RequireFields(params, ep.Required); err != nil {
		return nil, err
	}

	userID, _ := params["userId"].(string)
	profile, err := p.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	art, err := p.Generate(ctx, ep.Prompt(profile, params))
	if err != nil {
		return nil, err
	}
	if problems := art.CheckShape(ep.Shape); len(problems) > 0 {
		log.Printf("%s: artifact shape mismatch: %v", ep.Name, problems)
	}

	cols := map[string]any{"status": db.StatusDraft}
	for _, f := range ep.Params {
		cols[f.Column] = params[f.Key]
	}
	for _, f := range ep.Store {
		cols[f.Column] = art.Get(f.Key)
	}
	if err := p.Insert(ctx, ep.Table, cols); err != nil {
		return nil, err
	}

	return map[string]any{
		"userId":       userID,
		ep.ResponseKey: ResponsePayload(art, ep.Respond),
	}, nil
}

// RequireFields checks that every listed field is present and non-empty.
func RequireFields(params map[string]any, required []string) error {
	if len(required) == 0 {
		return nil
	}
	rules := make(map[string]any, len(required))
	for _, f := range required {
		rules[f] = "required"
	}
	if errs := validate.ValidateMap(params, rules); len(errs) > 0 {
		return &ValidationError{Message: "Missing required fields"}
	}
	return nil
}

// Profile resolves a user profile, mapping absence to NotFoundError.
func (p *Pipeline) Profile(ctx context.Context, userID string) (*db.UserProfile, error) {
	profile, err := p.Profiles.GetUserProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, &NotFoundError{UserID: userID}
	}
	return profile, nil
}

// Generate calls the generation service and parses the reply into an
// artifact. Transport failures map to GenerationError; unparseable text
// degrades the artifact instead of failing.
func (p *Pipeline) Generate(ctx context.Context, prompt string) (artifact.Artifact, error) {
	text, raw, err := p.Generator.Generate(ctx, prompt)
	if err != nil {
		return artifact.Artifact{}, &GenerationError{Err: err}
	}
	return artifact.Parse(text, raw), nil
}

// Insert stores one record, mapping failure to PersistenceError.
func (p *Pipeline) Insert(ctx context.Context, table string, cols map[string]any) error {
	if _, err := p.Records.InsertRecord(ctx, table, cols); err != nil {
		return &PersistenceError{Err: err}
	}
	return nil
}

// ResponsePayload builds the caller-facing subset of an artifact: the listed
// keys that are actually present, or the sentinel shape when the artifact
// is degraded.
func ResponsePayload(art artifact.Artifact, keys []string) map[string]any {
	if art.Degraded {
		return art.Sentinel()
	}
	payload := make(map[string]any, len(keys))
	for _, k := range keys {
		if v, ok := art.Fields[k]; ok {
			payload[k] = v
		}
	}
	return payload
}
