package telemetry

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/generate"
)

func sampleBatch() (generate.BatchRequest, []generate.Question) {
	req := generate.BatchRequest{
		Subject:    "Fen Bilimleri",
		UnitName:   "Canlılar Dünyası",
		Topics:     []string{"Mikroskobik Canlılar", "Mantarlar"},
		Difficulty: generate.Hard,
		Count:      2,
	}
	questions := []generate.Question{
		{
			ID:            "q1",
			Text:          "Maya **hangi** canlı grubundandır?",
			Options:       []string{"Bitki", "Mantar", "Hayvan", "Bakteri"},
			CorrectAnswer: 1,
			Explanation:   "Maya tek hücreli bir mantardır.",
			Difficulty:    generate.Hard,
		},
	}
	return req, questions
}

func TestSink_PayloadShape(t *testing.T) {
	sink := NewSink("http://example.invalid")
	sink.now = func() time.Time {
		return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	}
	req, questions := sampleBatch()

	payload := sink.buildPayload(req, questions)

	if payload.CreatedAt != "2026-03-01T12:00:00Z" {
		t.Errorf("createdAt = %q", payload.CreatedAt)
	}
	if payload.Subject != "Fen Bilimleri" || payload.Difficulty != "hard" {
		t.Errorf("context = %q/%q", payload.Subject, payload.Difficulty)
	}
	if len(payload.Questions) != 1 || len(payload.Rows) != 1 {
		t.Fatalf("questions/rows = %d/%d, want 1/1", len(payload.Questions), len(payload.Rows))
	}
	q := payload.Questions[0]
	if q.CorrectAnswerIndex != 1 || q.CorrectAnswerText != "Mantar" {
		t.Errorf("question record = %+v", q)
	}
	row := payload.Rows[0]
	if row.Konu != "Canlılar Dünyası - Mikroskobik Canlılar, Mantarlar" {
		t.Errorf("konu = %q", row.Konu)
	}
	if row.Cevap != "Mantar" || row.Ders != "Fen Bilimleri" {
		t.Errorf("row = %+v", row)
	}
}

func TestSink_OutOfRangeAnswerBlank(t *testing.T) {
	sink := NewSink("http://example.invalid")
	req, questions := sampleBatch()
	questions[0].CorrectAnswer = 9

	payload := sink.buildPayload(req, questions)

	if payload.Rows[0].Cevap != "" {
		t.Errorf("cevap = %q, want blank for out-of-range index", payload.Rows[0].Cevap)
	}
}

func TestSink_SendPostsJSON(t *testing.T) {
	var got Payload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
	}))
	defer srv.Close()

	sink := NewSink(srv.URL)
	req, questions := sampleBatch()

	if err := sink.send(context.Background(), sink.buildPayload(req, questions)); err != nil {
		t.Fatalf("send: %v", err)
	}
	if got.UnitName != "Canlılar Dünyası" {
		t.Errorf("server saw %+v", got)
	}
}

func TestSink_SendReportsHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	sink := NewSink(srv.URL)
	req, questions := sampleBatch()

	if err := sink.send(context.Background(), sink.buildPayload(req, questions)); err == nil {
		t.Error("expected error on 403")
	}
}

func TestSink_DisabledIsNoop(t *testing.T) {
	sink := NewSink("")

	if sink.Enabled() {
		t.Error("empty URL should disable the sink")
	}
	// Must not panic or block.
	req, questions := sampleBatch()
	sink.Record(req, questions)
}
