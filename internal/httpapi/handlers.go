package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/generate"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/llm"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/store"
)

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generate.BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Geçersiz istek gövdesi.")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "Eksik parametreler: subject, unitName, topics, count gerekli.")
		return
	}

	start := time.Now()
	questions, err := s.generator.GenerateBatch(r.Context(), req)
	s.recordEvent(r, req, questions, time.Since(start), err)

	if err != nil {
		writeError(w, http.StatusBadGateway, userMessage(err))
		return
	}

	writeJSON(w, http.StatusOK, questions)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// recordEvent appends a generation event, best effort. A logging
// failure must never fail the request.
func (s *Server) recordEvent(r *http.Request, req generate.BatchRequest, questions []generate.Question, latency time.Duration, genErr error) {
	if s.events == nil {
		return
	}
	data := store.GenerationEventData{
		Subject:        req.Subject,
		UnitName:       req.UnitName,
		Topics:         req.Topics,
		Difficulty:     string(req.Difficulty),
		RequestedCount: req.Count,
		ReturnedCount:  len(questions),
		Model:          s.model,
		LatencyMs:      latency.Milliseconds(),
		Success:        genErr == nil,
	}
	if genErr != nil {
		data.ErrorMessage = genErr.Error()
	}
	if err := s.events.AppendGeneration(r.Context(), data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log generation event: %v\n", err)
	}
}

// userMessage maps generation failures to the Turkish messages the
// client surfaces.
func userMessage(err error) string {
	var rateLimit *llm.ErrRateLimit
	switch {
	case errors.As(err, &rateLimit):
		return "Çok fazla istek yapıldı. Bir dakika bekleyip tekrar deneyin."
	case errors.Is(err, generate.ErrEmptyBatch):
		return "Model hiç soru üretmedi. Lütfen tekrar deneyin."
	case isTimeout(err):
		return "İstek zaman aşımına uğradı. Daha sonra tekrar deneyin."
	default:
		return "Sorular oluşturulamadı."
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var unavailable *llm.ErrProviderUnavailable
	return errors.As(err, &unavailable) && errors.Is(unavailable.Err, context.DeadlineExceeded)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "warning: write response: %v\n", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
