package telemetry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/generate"
)

// EnvWebhookURL configures the Google Sheets Apps Script endpoint that
// mirrors generated batches. Unset means telemetry is off.
const EnvWebhookURL = "SORU_SHEETS_WEBHOOK_URL"

const sendTimeout = 15 * time.Second

// QuestionRecord is one generated question as mirrored to the sheet.
type QuestionRecord struct {
	ID                 string   `json:"id"`
	Text               string   `json:"text"`
	Options            []string `json:"options"`
	CorrectAnswerIndex int      `json:"correctAnswerIndex"`
	CorrectAnswerText  string   `json:"correctAnswerText"`
	Explanation        string   `json:"explanation"`
}

// SheetRow matches the Apps Script sheet columns. Field names are the
// Turkish column headers the script reads.
type SheetRow struct {
	Tarih string `json:"tarih"`
	Ders  string `json:"ders"`
	Konu  string `json:"konu"`
	Soru  string `json:"soru"`
	Cevap string `json:"cevap"`
}

// Payload is one webhook POST. Both the structured question list and
// the flat row format are sent; the script side reads whichever it
// needs.
type Payload struct {
	CreatedAt  string           `json:"createdAt"`
	Subject    string           `json:"subject"`
	UnitName   string           `json:"unitName"`
	Topics     []string         `json:"topics"`
	Difficulty string           `json:"difficulty"`
	Questions  []QuestionRecord `json:"questions"`
	Rows       []SheetRow       `json:"rows"`
}

// Sink mirrors generated question batches to a webhook, fire and
// forget. All failures are logged and swallowed; the quiz flow never
// waits on or sees the outcome.
type Sink struct {
	url    string
	client *http.Client
	now    func() time.Time
}

// NewSink creates a Sink for the given webhook URL. An empty URL
// yields a silent no-op sink.
func NewSink(url string) *Sink {
	return &Sink{
		url:    url,
		client: &http.Client{Timeout: sendTimeout},
		now:    time.Now,
	}
}

// SinkFromEnv reads the webhook URL from the environment.
func SinkFromEnv() *Sink {
	return NewSink(os.Getenv(EnvWebhookURL))
}

// Enabled reports whether a webhook URL is configured.
func (s *Sink) Enabled() bool {
	return s.url != ""
}

// Record mirrors one generated batch to the webhook in a detached
// goroutine. Returns immediately; errors never surface.
func (s *Sink) Record(req generate.BatchRequest, questions []generate.Question) {
	if !s.Enabled() {
		return
	}
	payload := s.buildPayload(req, questions)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		defer cancel()
		if err := s.send(ctx, payload); err != nil {
			fmt.Fprintf(os.Stderr, "warning: telemetry send failed: %v\n", err)
		}
	}()
}

func (s *Sink) buildPayload(req generate.BatchRequest, questions []generate.Question) Payload {
	nowISO := s.now().UTC().Format(time.RFC3339)
	konu := req.UnitName + " - " + strings.Join(req.Topics, ", ")

	records := make([]QuestionRecord, len(questions))
	rows := make([]SheetRow, len(questions))
	for i, q := range questions {
		answer := ""
		if q.CorrectAnswer >= 0 && q.CorrectAnswer < len(q.Options) {
			answer = q.Options[q.CorrectAnswer]
		}
		records[i] = QuestionRecord{
			ID:                 q.ID,
			Text:               q.Text,
			Options:            q.Options,
			CorrectAnswerIndex: q.CorrectAnswer,
			CorrectAnswerText:  answer,
			Explanation:        q.Explanation,
		}
		rows[i] = SheetRow{
			Tarih: nowISO,
			Ders:  req.Subject,
			Konu:  konu,
			Soru:  q.Text,
			Cevap: answer,
		}
	}

	return Payload{
		CreatedAt:  nowISO,
		Subject:    req.Subject,
		UnitName:   req.UnitName,
		Topics:     req.Topics,
		Difficulty: string(req.Difficulty),
		Questions:  records,
		Rows:       rows,
	}
}

func (s *Sink) send(ctx context.Context, payload Payload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned %d", resp.StatusCode)
	}
	return nil
}
