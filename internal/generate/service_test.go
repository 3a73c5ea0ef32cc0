package generate

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/llm"
)

func mathRequest(count int) BatchRequest {
	return BatchRequest{
		Subject:    "Matematik",
		UnitName:   "4. Tema: Sayılar ve Nicelikler - II",
		Topics:     []string{"Kesirler", "Ondalık Gösterim", "Yüzdeler"},
		Difficulty: Medium,
		Count:      count,
	}
}

const twoQuestionBatch = `[
  {"text":"**Hangisi** bir kesirdir?","options":["3/4","5","0,5","%20"],"correctAnswer":0,"explanation":"3/4 pay ve paydadan oluşur."},
  {"text":"1/2 kesrinin ondalık gösterimi **hangisidir**?","options":["0,2","0,5","1,2","2,1"],"correctAnswer":1,"explanation":"1 bölü 2 = 0,5."}
]`

func TestService_GenerateBatch(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(twoQuestionBatch)})
	svc := NewService(mock, DefaultConfig())

	questions, err := svc.GenerateBatch(context.Background(), mathRequest(2))
	if err != nil {
		t.Fatalf("GenerateBatch: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("len(questions) = %d, want 2", len(questions))
	}

	seen := make(map[string]bool)
	for _, q := range questions {
		if q.ID == "" {
			t.Error("question ID not assigned")
		}
		if seen[q.ID] {
			t.Errorf("duplicate question ID %q", q.ID)
		}
		seen[q.ID] = true
		if q.Difficulty != Medium {
			t.Errorf("difficulty = %q, want medium", q.Difficulty)
		}
	}
	if questions[1].CorrectAnswer != 1 {
		t.Errorf("correctAnswer = %d, want 1", questions[1].CorrectAnswer)
	}
}

func TestService_PromptCarriesRequest(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(twoQuestionBatch)})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.GenerateBatch(context.Background(), mathRequest(5)); err != nil {
		t.Fatalf("GenerateBatch: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
	msg := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"Matematik", "Kesirler, Ondalık Gösterim, Yüzdeler", "Zorluk: medium", "TAM 5 ADET"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q:\n%s", want, msg)
		}
	}
	if mock.Calls[0].Schema != BatchSchema {
		t.Error("batch schema not attached to request")
	}
}

func TestService_StripsCodeFence(t *testing.T) {
	fenced := "```json\n" + twoQuestionBatch + "\n```"
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(fenced)})
	svc := NewService(mock, DefaultConfig())

	questions, err := svc.GenerateBatch(context.Background(), mathRequest(2))
	if err != nil {
		t.Fatalf("GenerateBatch: %v", err)
	}
	if len(questions) != 2 {
		t.Errorf("len(questions) = %d, want 2", len(questions))
	}
}

func TestService_ShortShapeGetsDefaults(t *testing.T) {
	short := `[{"text":"Eksik soru"}]`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(short)})
	svc := NewService(mock, DefaultConfig())

	questions, err := svc.GenerateBatch(context.Background(), mathRequest(1))
	if err != nil {
		t.Fatalf("GenerateBatch: %v", err)
	}
	q := questions[0]
	if len(q.Options) != 4 {
		t.Errorf("len(options) = %d, want 4 placeholders", len(q.Options))
	}
	if q.CorrectAnswer != 0 {
		t.Errorf("correctAnswer = %d, want 0 default", q.CorrectAnswer)
	}
}

func TestService_OutOfRangeAnswerClamped(t *testing.T) {
	bad := `[{"text":"S","options":["a","b","c","d"],"correctAnswer":7,"explanation":"x"}]`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(bad)})
	svc := NewService(mock, DefaultConfig())

	questions, err := svc.GenerateBatch(context.Background(), mathRequest(1))
	if err != nil {
		t.Fatalf("GenerateBatch: %v", err)
	}
	if questions[0].CorrectAnswer != 0 {
		t.Errorf("correctAnswer = %d, want 0", questions[0].CorrectAnswer)
	}
}

func TestService_EmptyBatch(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`[]`)})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.GenerateBatch(context.Background(), mathRequest(3))
	if !errors.Is(err, ErrEmptyBatch) {
		t.Fatalf("err = %v, want ErrEmptyBatch", err)
	}
}

func TestService_MissingParams(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := NewService(mock, DefaultConfig())

	req := mathRequest(5)
	req.Topics = nil
	_, err := svc.GenerateBatch(context.Background(), req)

	var missing *MissingParamError
	if !errors.As(err, &missing) {
		t.Fatalf("err = %v, want MissingParamError", err)
	}
	if missing.Param != "topics" {
		t.Errorf("param = %q, want topics", missing.Param)
	}
	if mock.CallCount() != 0 {
		t.Errorf("provider calls = %d, want 0", mock.CallCount())
	}
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no fence", `[1,2]`, `[1,2]`},
		{"json fence", "```json\n[1,2]\n```", `[1,2]`},
		{"bare fence", "```\n[1,2]\n```", `[1,2]`},
		{"surrounding space", "  [1,2]\n", `[1,2]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(StripCodeFence(json.RawMessage(tt.in)))
			if got != tt.want {
				t.Errorf("StripCodeFence(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
