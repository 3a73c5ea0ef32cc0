package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ClientTimeout is the hard cap on one remote generation call. The
// model is slow; anything past this is treated as a failure and the
// user retries manually.
const ClientTimeout = 20 * time.Second

// Client implements Generator against a remote generation endpoint
// (POST {base}/api/generate). Used when the quiz client is configured
// to talk to a hosted endpoint instead of calling the model directly.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: ClientTimeout},
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// GenerateBatch posts the request and decodes the question array. A
// non-2xx response surfaces the server's error message prefixed with
// retry guidance; timeouts get their own message.
func (c *Client) GenerateBatch(ctx context.Context, req BatchRequest) ([]Question, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("soru isteği zaman aşımına uğradı")
		}
		return nil, fmt.Errorf("soru servisine ulaşılamadı: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errBody errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&errBody)
		msg := errBody.Error
		if msg == "" {
			msg = fmt.Sprintf("sunucu hatası (%d)", resp.StatusCode)
		}
		return nil, fmt.Errorf("%s — ağ bağlantınızı kontrol edin ve tekrar deneyin", msg)
	}

	var questions []Question
	if err := json.NewDecoder(resp.Body).Decode(&questions); err != nil {
		return nil, fmt.Errorf("decode batch: %w", err)
	}
	if len(questions) == 0 {
		return nil, ErrEmptyBatch
	}

	return questions, nil
}
