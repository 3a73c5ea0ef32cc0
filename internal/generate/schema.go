package generate

import "github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/llm"

// BatchSchema is the JSON schema for the model's question batch output:
// a bare array so the response maps 1:1 onto the endpoint contract.
var BatchSchema = &llm.Schema{
	Name:        "question-batch",
	Description: "A batch of multiple-choice quiz questions",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"text": map[string]any{
					"type":        "string",
					"description": "Question text. Emphasized phrases and the question stem are wrapped in **.",
				},
				"options": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "Exactly 4 answer options, in A, B, C, D order.",
				},
				"correctAnswer": map[string]any{
					"type":        "integer",
					"minimum":     0,
					"maximum":     3,
					"description": "Index of the correct option: 0=A, 1=B, 2=C, 3=D.",
				},
				"explanation": map[string]any{
					"type":        "string",
					"description": "Short solution explanation, age-appropriate for a 5th grader.",
				},
			},
			"required": []any{"text", "options", "correctAnswer", "explanation"},
		},
	},
}
