package generate

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClient_GenerateBatch(t *testing.T) {
	var got BatchRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/generate" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]Question{{
			ID:            "q1",
			Text:          "2+2 kaçtır?",
			Options:       []string{"3", "4", "5", "6"},
			CorrectAnswer: 1,
			Explanation:   "2+2=4.",
			Difficulty:    Easy,
		}})
	}))
	defer srv.Close()

	client := NewClient(srv.URL + "/")
	questions, err := client.GenerateBatch(context.Background(), mathRequest(1))
	if err != nil {
		t.Fatalf("GenerateBatch: %v", err)
	}
	if len(questions) != 1 || questions[0].ID != "q1" {
		t.Fatalf("questions = %+v", questions)
	}
	if got.Subject != "Matematik" || got.Count != 1 {
		t.Errorf("server saw request %+v", got)
	}
}

func TestClient_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		json.NewEncoder(w).Encode(map[string]string{"error": "Sorular oluşturulamadı."})
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).GenerateBatch(context.Background(), mathRequest(3))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "Sorular oluşturulamadı.") {
		t.Errorf("error does not carry server message: %v", err)
	}
	if !strings.Contains(err.Error(), "tekrar deneyin") {
		t.Errorf("error missing retry guidance: %v", err)
	}
}

func TestClient_EmptyBatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).GenerateBatch(context.Background(), mathRequest(3))
	if !errors.Is(err, ErrEmptyBatch) {
		t.Fatalf("err = %v, want ErrEmptyBatch", err)
	}
}

func TestClient_InvalidRequestNotSent(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	req := mathRequest(3)
	req.Subject = ""
	_, err := NewClient(srv.URL).GenerateBatch(context.Background(), req)

	var missing *MissingParamError
	if !errors.As(err, &missing) {
		t.Fatalf("err = %v, want MissingParamError", err)
	}
	if called {
		t.Error("invalid request reached the server")
	}
}
