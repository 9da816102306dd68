package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func summaryTestSchema() *Schema {
	return &Schema{
		Name:        "module-summary-test",
		Description: "A module summary",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"summary": map[string]any{"type": "string", "minLength": 1},
			},
			"required":             []any{"summary"},
			"additionalProperties": false,
		},
	}
}

func moduleSchema() *Schema {
	return &Schema{
		Name: "module-record-test",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id":       map[string]any{"type": "string"},
				"progress": map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
				"status": map[string]any{
					"type": "string",
					"enum": []any{"not-started", "in-progress", "completed"},
				},
				"dependencies": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"id", "progress"},
		},
	}
}

func TestSchemaValidate(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"id":"mppf","progress":60,"status":"in-progress"}`, false},
		{"optional fields omitted", `{"id":"mps","progress":0}`, false},
		{"missing required", `{"id":"mtc"}`, true},
		{"wrong type", `{"id":"mbd","progress":"sixty"}`, true},
		{"out of range", `{"id":"mbd","progress":101}`, true},
		{"bad enum", `{"id":"maem","progress":0,"status":"paused"}`, true},
		{"bad array item", `{"id":"maem","progress":0,"dependencies":[1,2]}`, true},
		{"malformed JSON", `{not json}`, true},
		{"empty", ``, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := moduleSchema().Validate(json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var invErr *ErrInvalidResponse
				if !errors.As(err, &invErr) {
					t.Fatalf("expected ErrInvalidResponse, got: %T", err)
				}
				if string(invErr.Content) != tt.raw {
					t.Fatalf("expected offending content to be kept, got %q", invErr.Content)
				}
			}
		})
	}
}

func TestSchemaValidate_NilSchema(t *testing.T) {
	var s *Schema
	if err := s.Validate(json.RawMessage(`anything`)); err != nil {
		t.Fatalf("expected nil schema to accept anything, got: %v", err)
	}
}

func TestSchemaValidate_AdditionalProperties(t *testing.T) {
	s := summaryTestSchema()
	if err := s.Validate(json.RawMessage(`{"summary":"ok"}`)); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if err := s.Validate(json.RawMessage(`{"summary":"ok","extra":1}`)); err == nil {
		t.Fatal("expected error for unexpected property")
	}
	if err := s.Validate(json.RawMessage(`{"summary":""}`)); err == nil {
		t.Fatal("expected error for empty summary")
	}
}

func TestSchemaValidate_Cached(t *testing.T) {
	s := moduleSchema()
	if err := s.Validate(json.RawMessage(`{"id":"a","progress":1}`)); err != nil {
		t.Fatalf("first validate: %v", err)
	}
	if _, ok := schemaCache.Load(s.Name); !ok {
		t.Fatal("expected compiled schema to be cached")
	}
	if err := s.Validate(json.RawMessage(`{"id":"b","progress":2}`)); err != nil {
		t.Fatalf("second validate: %v", err)
	}
}
