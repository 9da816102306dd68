package summarizer

import "github.com/abhisek/coursemap/internal/llm"

// SummarySchema is the structured output requested from the provider.
var SummarySchema = &llm.Schema{
	Name:        "module-summary",
	Description: "Concise summary of a course module's key concepts",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "A concise summary of the module content",
				"minLength":   1,
			},
		},
		"required":             []any{"summary"},
		"additionalProperties": false,
	},
}
