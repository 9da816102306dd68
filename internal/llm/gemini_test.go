package llm

import (
	"context"
	"testing"

	"google.golang.org/genai"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"},
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary":  map[string]any{"type": "string", "description": "Plain-language summary"},
			"progress": map[string]any{"type": "integer"},
			"status":   map[string]any{"type": "string", "enum": []any{"not-started", "in-progress", "completed"}},
			"scores": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "integer"},
			},
		},
		"required": []any{"summary", "status"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["summary"].Type != "STRING" {
		t.Fatalf("expected STRING for summary, got %s", schema.Properties["summary"].Type)
	}
	if schema.Properties["progress"].Type != "INTEGER" {
		t.Fatalf("expected INTEGER for progress, got %s", schema.Properties["progress"].Type)
	}
	if len(schema.Properties["status"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["status"].Enum))
	}
	if schema.Properties["scores"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for scores, got %s", schema.Properties["scores"].Type)
	}
	if schema.Properties["scores"].Items.Type != "INTEGER" {
		t.Fatalf("expected INTEGER for scores items, got %s", schema.Properties["scores"].Items.Type)
	}
	if schema.Properties["summary"].Description != "Plain-language summary" {
		t.Fatalf("expected description to carry over, got %q", schema.Properties["summary"].Description)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}

func TestNewGeminiProvider_RequiresKey(t *testing.T) {
	if _, err := NewGeminiProvider(context.Background(), GeminiConfig{Model: "gemini-flash"}); err == nil {
		t.Fatal("expected error for empty API key")
	}
}

func TestMapGeminiStopReason(t *testing.T) {
	truncated := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{FinishReason: "MAX_TOKENS"}},
	}
	if got := mapGeminiStopReason(truncated); got != stopMaxTokens {
		t.Fatalf("expected %q, got %q", stopMaxTokens, got)
	}
	if got := mapGeminiStopReason(&genai.GenerateContentResponse{}); got != stopEnd {
		t.Fatalf("expected %q, got %q", stopEnd, got)
	}
}
