package quiz

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/curriculum"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/generate"
)

func testBatch(n int) []generate.Question {
	batch := make([]generate.Question, n)
	for i := range batch {
		batch[i] = generate.Question{
			ID:            fmt.Sprintf("q%d", i),
			Text:          fmt.Sprintf("Soru %d", i),
			Options:       []string{"A", "B", "C", "D"},
			CorrectAnswer: i % 4,
			Difficulty:    generate.Medium,
		}
	}
	return batch
}

func startAttempt(t *testing.T, n int) (*Session, int) {
	t.Helper()
	math, err := curriculum.SubjectByName(curriculum.Math)
	if err != nil {
		t.Fatalf("Matematik not in catalog: %v", err)
	}
	s := NewSession()
	s.Configure(math, math.Units[0])
	gen := s.BeginGeneration()
	s.GenerationSucceeded(gen, testBatch(n))
	return s, gen
}

func TestEffectiveTopics_EmptyMeansAll(t *testing.T) {
	math, _ := curriculum.SubjectByName(curriculum.Math)
	unit := math.Units[0]

	s := NewSession()
	s.Configure(math, unit)

	topics := s.EffectiveTopics()
	if len(topics) != len(unit.Topics) {
		t.Fatalf("effective topics = %d, want all %d unit topics", len(topics), len(unit.Topics))
	}
	req := s.BatchRequest()
	if len(req.Topics) != len(unit.Topics) {
		t.Errorf("request topics = %v, want full unit", req.Topics)
	}
	if req.Count != DefaultCount || req.Difficulty != generate.Medium {
		t.Errorf("request defaults = count %d difficulty %s", req.Count, req.Difficulty)
	}
}

func TestEffectiveTopics_SubsetKept(t *testing.T) {
	math, _ := curriculum.SubjectByName(curriculum.Math)
	s := NewSession()
	s.Configure(math, math.Units[0])
	s.Config.Topics = []string{math.Units[0].Topics[0]}

	if got := s.EffectiveTopics(); len(got) != 1 {
		t.Errorf("effective topics = %v, want the one selected", got)
	}
}

func TestGenerationSuccess_ArmsCountdown(t *testing.T) {
	s, _ := startAttempt(t, 5)

	if s.Phase != PhaseInProgress {
		t.Fatalf("phase = %v, want PhaseInProgress", s.Phase)
	}
	want := s.Subject.TimePerQuestion * 5
	if s.Remaining != want {
		t.Errorf("remaining = %d, want %d", s.Remaining, want)
	}
}

func TestGenerationFailure_ReturnsToConfiguring(t *testing.T) {
	math, _ := curriculum.SubjectByName(curriculum.Math)
	s := NewSession()
	s.Configure(math, math.Units[0])
	gen := s.BeginGeneration()

	s.GenerationFailed(gen, errors.New("ağ hatası"))

	if s.Phase != PhaseConfiguring {
		t.Fatalf("phase = %v, want PhaseConfiguring", s.Phase)
	}
	if s.Err == nil {
		t.Error("failure not surfaced")
	}
	if _, ok := s.Result(); ok {
		t.Error("failed attempt has a result")
	}
}

func TestEmptyBatch_IsFailure(t *testing.T) {
	math, _ := curriculum.SubjectByName(curriculum.Math)
	s := NewSession()
	s.Configure(math, math.Units[0])
	gen := s.BeginGeneration()

	s.GenerationSucceeded(gen, nil)

	if s.Phase != PhaseConfiguring {
		t.Fatalf("phase = %v, want PhaseConfiguring", s.Phase)
	}
	if !errors.Is(s.Err, generate.ErrEmptyBatch) {
		t.Errorf("err = %v, want ErrEmptyBatch", s.Err)
	}
}

func TestStaleGenerationCompletionDiscarded(t *testing.T) {
	math, _ := curriculum.SubjectByName(curriculum.Math)
	s := NewSession()
	s.Configure(math, math.Units[0])
	staleGen := s.BeginGeneration()
	s.Reset()

	s.GenerationSucceeded(staleGen, testBatch(5))

	if s.Phase != PhaseIdle {
		t.Fatalf("stale completion changed phase to %v", s.Phase)
	}
	if len(s.Questions) != 0 {
		t.Error("stale batch installed")
	}
}

func TestScoring_UnansweredCountIncorrect(t *testing.T) {
	s, _ := startAttempt(t, 5)

	// Answer 3 of 5 correctly, leave 2 unanswered.
	s.Answer("q0", 0)
	s.Answer("q1", 1)
	s.Answer("q2", 2)

	result := s.Submit()
	if result.Score != 3 || result.Total != 5 {
		t.Fatalf("result = %+v, want score 3 total 5", result)
	}
	if len(s.AnswersCopy()) != 3 {
		t.Errorf("answers = %d entries, want 3 (unanswered absent)", len(s.Answers))
	}
}

func TestAnswerOverwrites(t *testing.T) {
	s, _ := startAttempt(t, 2)

	s.Answer("q1", 3) // wrong
	s.Answer("q1", 1) // corrected
	result := s.Submit()

	if result.Score != 1 {
		t.Errorf("score = %d, want 1 after overwrite", result.Score)
	}
}

func TestSubmitIdempotent(t *testing.T) {
	s, _ := startAttempt(t, 4)
	s.Answer("q0", 0)

	first := s.Submit()
	s.Answer("q1", 1) // frozen; must not change the result
	second := s.Submit()

	if first != second {
		t.Fatalf("second submit = %+v, first = %+v", second, first)
	}
	if len(s.Answers) != 1 {
		t.Errorf("answers mutated after submission: %v", s.Answers)
	}
}

func TestUnderDelivery_TotalIsBatchLength(t *testing.T) {
	math, _ := curriculum.SubjectByName(curriculum.Math)
	s := NewSession()
	s.Configure(math, math.Units[0])
	s.Config.Count = 10
	gen := s.BeginGeneration()

	s.GenerationSucceeded(gen, testBatch(7))
	result := s.Submit()

	if result.Total != 7 {
		t.Errorf("total = %d, want batch length 7", result.Total)
	}
}

func TestTick_ZeroSubmitsOnce(t *testing.T) {
	s, gen := startAttempt(t, 1)
	s.Answer("q0", 0)

	submitted := 0
	for s.Phase == PhaseInProgress {
		if s.Tick(gen) {
			submitted++
		}
	}

	if submitted != 1 {
		t.Fatalf("tick-driven submissions = %d, want exactly 1", submitted)
	}
	result, ok := s.Result()
	if !ok || result.Score != 1 {
		t.Errorf("result = %+v ok=%v, want recorded answers scored", result, ok)
	}
	if s.Remaining != 0 {
		t.Errorf("remaining = %d after expiry, want 0", s.Remaining)
	}
}

func TestTick_StaleGenerationDiscarded(t *testing.T) {
	s, staleGen := startAttempt(t, 5)
	s.Reset()

	// A fresh attempt must not be decremented by the old timer.
	s.Configure(s.Subject, s.Unit)
	gen := s.BeginGeneration()
	if gen == staleGen {
		t.Fatal("generation counter did not advance across reset")
	}
	s.GenerationSucceeded(gen, testBatch(5))
	before := s.Remaining

	if s.Tick(staleGen) {
		t.Error("stale tick submitted the attempt")
	}
	if s.Remaining != before {
		t.Errorf("stale tick decremented countdown: %d -> %d", before, s.Remaining)
	}
}

func TestTick_StopsAfterSubmission(t *testing.T) {
	s, gen := startAttempt(t, 2)
	s.Submit()

	if s.Tick(gen) {
		t.Error("tick after submission reported expiry")
	}
	if s.Phase != PhaseSubmitted {
		t.Errorf("phase = %v, want PhaseSubmitted", s.Phase)
	}
}

func TestZeroDurationSubmitsImmediately(t *testing.T) {
	subject := curriculum.Subject{Name: "Test", TimePerQuestion: 0, Units: []curriculum.Unit{{ID: "u", Name: "U", Topics: []string{"t"}}}}
	s := NewSession()
	s.Configure(subject, subject.Units[0])
	gen := s.BeginGeneration()

	s.GenerationSucceeded(gen, testBatch(3))

	if s.Phase != PhaseSubmitted {
		t.Fatalf("phase = %v, want immediate PhaseSubmitted", s.Phase)
	}
	result, _ := s.Result()
	if result.Total != 3 {
		t.Errorf("total = %d, want 3", result.Total)
	}
}

func TestReset_DiscardsEverything(t *testing.T) {
	s, _ := startAttempt(t, 3)
	s.Answer("q0", 0)
	s.Submit()

	s.Reset()

	if s.Phase != PhaseIdle {
		t.Fatalf("phase = %v, want PhaseIdle", s.Phase)
	}
	if s.Questions != nil || s.Answers != nil || s.Err != nil {
		t.Error("attempt state survived reset")
	}
	if _, ok := s.Result(); ok {
		t.Error("result survived reset")
	}
}
