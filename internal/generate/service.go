package generate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/llm"
)

// Config tunes the model call.
type Config struct {
	MaxTokens   int
	Temperature float64

	// Timeout bounds one batch generation end to end.
	Timeout time.Duration
}

// DefaultConfig matches the batch sizes this app requests (up to 10
// questions with explanations).
func DefaultConfig() Config {
	return Config{
		MaxTokens:   4096,
		Temperature: 0.7,
		Timeout:     20 * time.Second,
	}
}

// Service implements Generator against an llm.Provider.
type Service struct {
	provider llm.Provider
	config   Config
}

// NewService creates a model-backed batch generator.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, config: cfg}
}

// rawQuestion is the model output shape before reshaping.
type rawQuestion struct {
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer *int     `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// GenerateBatch asks the model for req.Count questions and reshapes the
// response: fresh unique IDs, the requested difficulty tag, and
// blank-tolerant defaults when the model under-fills a field.
func (s *Service) GenerateBatch(ctx context.Context, req BatchRequest) ([]Question, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(req)},
		},
		Schema:      BatchSchema,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("batch generation failed: %w", err)
	}

	var raw []rawQuestion
	if err := json.Unmarshal(StripCodeFence(resp.Content), &raw); err != nil {
		return nil, fmt.Errorf("parse batch response: %w", err)
	}
	if len(raw) == 0 {
		return nil, ErrEmptyBatch
	}

	return reshape(raw, req.Difficulty), nil
}

// reshape converts raw model items into Questions, filling defaults the
// way the endpoint always has: missing options render as blanks rather
// than failing the whole batch.
func reshape(raw []rawQuestion, difficulty Difficulty) []Question {
	out := make([]Question, len(raw))
	for i, r := range raw {
		q := Question{
			ID:          uuid.New().String(),
			Text:        r.Text,
			Options:     r.Options,
			Explanation: r.Explanation,
			Difficulty:  difficulty,
		}
		if len(q.Options) == 0 {
			q.Options = []string{"A", "B", "C", "D"}
		}
		if r.CorrectAnswer != nil && *r.CorrectAnswer >= 0 && *r.CorrectAnswer < len(q.Options) {
			q.CorrectAnswer = *r.CorrectAnswer
		}
		out[i] = q
	}
	return out
}

// StripCodeFence removes a markdown ```json wrapper some models insist
// on emitting around structured output.
func StripCodeFence(raw json.RawMessage) json.RawMessage {
	s := strings.TrimSpace(string(raw))
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
		s = strings.TrimSpace(s)
	}
	return json.RawMessage(s)
}
