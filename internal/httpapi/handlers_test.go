package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/generate"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/store"
)

// fakeGenerator returns canned batches or errors.
type fakeGenerator struct {
	questions []generate.Question
	err       error
	lastReq   generate.BatchRequest
}

func (f *fakeGenerator) GenerateBatch(_ context.Context, req generate.BatchRequest) ([]generate.Question, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.questions, nil
}

// fakeEvents records appended generation events.
type fakeEvents struct {
	events []store.GenerationEventData
}

func (f *fakeEvents) AppendGeneration(_ context.Context, data store.GenerationEventData) error {
	f.events = append(f.events, data)
	return nil
}

func validBody() string {
	return `{"subject":"Matematik","unitName":"Sayılar","topics":["Kesirler"],"difficulty":"medium","count":5}`
}

func TestGenerate_Success(t *testing.T) {
	gen := &fakeGenerator{questions: []generate.Question{{
		ID: "q1", Text: "Soru", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 2, Difficulty: generate.Medium,
	}}}
	events := &fakeEvents{}
	srv := NewServer(gen, events, "gemini-2.0-flash")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(validBody()))
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body)
	}
	var questions []generate.Question
	if err := json.NewDecoder(rec.Body).Decode(&questions); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(questions) != 1 || questions[0].ID != "q1" {
		t.Errorf("questions = %+v", questions)
	}
	if gen.lastReq.Subject != "Matematik" || gen.lastReq.Count != 5 {
		t.Errorf("generator saw %+v", gen.lastReq)
	}

	if len(events.events) != 1 {
		t.Fatalf("events = %d, want 1", len(events.events))
	}
	ev := events.events[0]
	if !ev.Success || ev.ReturnedCount != 1 || ev.Model != "gemini-2.0-flash" {
		t.Errorf("event = %+v", ev)
	}
}

func TestGenerate_MissingParams(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty object", `{}`},
		{"no topics", `{"subject":"Matematik","unitName":"Sayılar","topics":[],"difficulty":"easy","count":5}`},
		{"not json", `soru ver`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := NewServer(&fakeGenerator{}, nil, "")
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(tt.body))
			srv.Router().ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			var body map[string]string
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decode error body: %v", err)
			}
			if body["error"] == "" {
				t.Error("missing error message")
			}
		})
	}
}

func TestGenerate_UpstreamFailure(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("model exploded")}
	events := &fakeEvents{}
	srv := NewServer(gen, events, "gemini-2.0-flash")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(validBody()))
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
	var body map[string]string
	json.NewDecoder(rec.Body).Decode(&body)
	if body["error"] != "Sorular oluşturulamadı." {
		t.Errorf("error = %q", body["error"])
	}

	if len(events.events) != 1 || events.events[0].Success {
		t.Errorf("failure event not recorded: %+v", events.events)
	}
}

func TestGenerate_EmptyBatchMessage(t *testing.T) {
	srv := NewServer(&fakeGenerator{err: generate.ErrEmptyBatch}, nil, "")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(validBody()))
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "tekrar deneyin") {
		t.Errorf("body = %s", rec.Body)
	}
}

func TestHealthz(t *testing.T) {
	srv := NewServer(&fakeGenerator{}, nil, "")
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
