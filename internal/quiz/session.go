package quiz

import (
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/curriculum"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/generate"
)

// Phase represents where one quiz attempt is in its lifecycle.
type Phase int

const (
	PhaseIdle        Phase = iota // No attempt active
	PhaseConfiguring              // Picking topics, count, difficulty
	PhaseGenerating               // Waiting on the question batch
	PhaseInProgress               // Answering against the countdown
	PhaseSubmitted                // Scored; showing the result
)

// Question count bounds for one attempt.
const (
	MinCount     = 1
	MaxCount     = 10
	DefaultCount = 5
)

// Config is the user's selection for one attempt. Mutable while
// configuring, frozen once generation starts.
type Config struct {
	Count      int
	Difficulty generate.Difficulty

	// Topics narrows the unit's topic list. Empty means all topics.
	Topics []string
}

// DefaultConfig returns the selection the configure screen starts from.
func DefaultConfig() Config {
	return Config{Count: DefaultCount, Difficulty: generate.Medium}
}

// Result is the outcome of a scored attempt.
type Result struct {
	Score int // Questions answered correctly
	Total int // Batch length, not the requested count
}

// Session is the state of one quiz attempt, from subject selection
// through submission. It is a pure state machine: all IO (the
// generator call, the countdown tick, persistence) is driven from the
// outside and reported back through the transition methods.
type Session struct {
	// Phase is the current lifecycle phase.
	Phase Phase

	// Subject and Unit are fixed once configuration begins.
	Subject curriculum.Subject
	Unit    curriculum.Unit

	// Config is the user's selection for this attempt.
	Config Config

	// Questions is the generated batch, set on generation success.
	Questions []generate.Question

	// Answers maps question ID to the chosen option index. Partial;
	// unanswered questions are simply absent.
	Answers map[string]int

	// Remaining is the countdown in seconds.
	Remaining int

	// Generation counts attempts started in this session. Tick
	// messages carry the value they were armed with; a mismatch means
	// the tick belongs to a discarded attempt and must be ignored.
	Generation int

	// Err is the last generation failure, shown on the configure
	// screen. Cleared when a new generation starts.
	Err error

	result *Result
}

// NewSession returns an idle session.
func NewSession() *Session {
	return &Session{Phase: PhaseIdle}
}

// Configure fixes the subject and unit and enters the configuration
// phase with a fresh default Config.
func (s *Session) Configure(subject curriculum.Subject, unit curriculum.Unit) {
	s.Subject = subject
	s.Unit = unit
	s.Config = DefaultConfig()
	s.Phase = PhaseConfiguring
}

// EffectiveTopics expands an empty topic selection to the whole unit.
// The generator contract requires a non-empty topic list.
func (s *Session) EffectiveTopics() []string {
	if len(s.Config.Topics) > 0 {
		return s.Config.Topics
	}
	out := make([]string, len(s.Unit.Topics))
	copy(out, s.Unit.Topics)
	return out
}

// BatchRequest builds the generator request for the current
// configuration.
func (s *Session) BatchRequest() generate.BatchRequest {
	return generate.BatchRequest{
		Subject:    s.Subject.Name,
		UnitName:   s.Unit.Name,
		Topics:     s.EffectiveTopics(),
		Difficulty: s.Config.Difficulty,
		Count:      s.Config.Count,
	}
}

// BeginGeneration freezes the configuration and clears any state left
// over from a prior attempt. Returns the generation counter the caller
// must stamp on its tick and completion messages.
func (s *Session) BeginGeneration() int {
	s.Questions = nil
	s.Answers = make(map[string]int)
	s.result = nil
	s.Err = nil
	s.Remaining = 0
	s.Generation++
	s.Phase = PhaseGenerating
	return s.Generation
}

// GenerationSucceeded installs the batch and arms the countdown at
// timePerQuestion × batch length. An under-delivered batch is used as
// is. If the countdown arms at zero the attempt submits immediately.
// Completions stamped with a stale generation are discarded: the user
// reset or restarted while the request was in flight.
func (s *Session) GenerationSucceeded(generation int, questions []generate.Question) {
	if s.Phase != PhaseGenerating || generation != s.Generation {
		return
	}
	if len(questions) == 0 {
		s.GenerationFailed(generation, generate.ErrEmptyBatch)
		return
	}
	s.Questions = questions
	s.Remaining = s.Subject.TimePerQuestion * len(questions)
	s.Phase = PhaseInProgress
	if s.Remaining <= 0 {
		s.Submit()
	}
}

// GenerationFailed records the error and returns to configuration so
// the user can retry. No attempt state survives the failure.
func (s *Session) GenerationFailed(generation int, err error) {
	if s.Phase != PhaseGenerating || generation != s.Generation {
		return
	}
	s.Err = err
	s.Questions = nil
	s.Phase = PhaseConfiguring
}

// Answer records the chosen option for a question, overwriting any
// prior choice. Ignored outside PhaseInProgress.
func (s *Session) Answer(questionID string, option int) {
	if s.Phase != PhaseInProgress {
		return
	}
	if option < 0 || option > 3 {
		return
	}
	s.Answers[questionID] = option
}

// Tick decrements the countdown by one second. When it reaches zero
// the attempt submits with whatever answers were recorded. Returns
// true if this tick caused the submission. Ticks stamped with a stale
// generation, or arriving outside PhaseInProgress, are discarded.
func (s *Session) Tick(generation int) bool {
	if s.Phase != PhaseInProgress || generation != s.Generation {
		return false
	}
	s.Remaining--
	if s.Remaining > 0 {
		return false
	}
	s.Remaining = 0
	s.Submit()
	return true
}

// Submit scores the attempt. Unanswered questions count as incorrect.
// Idempotent: a second call returns the first result without
// re-scoring.
func (s *Session) Submit() Result {
	if s.result != nil {
		return *s.result
	}
	if s.Phase != PhaseInProgress {
		return Result{}
	}

	score := 0
	for _, q := range s.Questions {
		if chosen, ok := s.Answers[q.ID]; ok && chosen == q.CorrectAnswer {
			score++
		}
	}

	s.result = &Result{Score: score, Total: len(s.Questions)}
	s.Phase = PhaseSubmitted
	return *s.result
}

// Result returns the scored outcome, or false before submission.
func (s *Session) Result() (Result, bool) {
	if s.result == nil {
		return Result{}, false
	}
	return *s.result, true
}

// AnswersCopy returns a snapshot of the answer mapping for history
// recording.
func (s *Session) AnswersCopy() map[string]int {
	out := make(map[string]int, len(s.Answers))
	for id, opt := range s.Answers {
		out[id] = opt
	}
	return out
}

// Reset discards all attempt state and returns to idle. The
// generation counter advances so any in-flight tick or generator
// completion is recognized as stale.
func (s *Session) Reset() {
	s.Generation++
	s.Questions = nil
	s.Answers = nil
	s.result = nil
	s.Err = nil
	s.Remaining = 0
	s.Config = Config{}
	s.Phase = PhaseIdle
}
