package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var batchTestSchema = &Schema{
	Name:        "validate-test-batch",
	Description: "test schema",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"text":          map[string]any{"type": "string"},
				"correctAnswer": map[string]any{"type": "integer"},
			},
			"required": []any{"text", "correctAnswer"},
		},
	},
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`[{"text":"Soru?","correctAnswer":2}]`)
	if err := validateResponse(batchTestSchema, raw); err != nil {
		t.Errorf("validateResponse: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`[{"text":"Soru?"}]`)
	err := validateResponse(batchTestSchema, raw)
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
}

func TestValidateResponse_NotJSON(t *testing.T) {
	raw := json.RawMessage(`not json at all`)
	err := validateResponse(batchTestSchema, raw)
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`whatever`)); err != nil {
		t.Errorf("nil schema should validate anything, got %v", err)
	}
}
