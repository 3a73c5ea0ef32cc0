package configure

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/curriculum"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/generate"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/progress"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/quiz"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/router"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/screen"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/screens/play"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/screens/result"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/telemetry"
)

// fakeGenerator implements generate.Generator for testing.
type fakeGenerator struct {
	questions []generate.Question
	err       error
	requests  []generate.BatchRequest
}

func (f *fakeGenerator) GenerateBatch(_ context.Context, req generate.BatchRequest) ([]generate.Question, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return f.questions, nil
}

// memStore implements progress.Store in memory.
type memStore struct{}

func (memStore) Load(context.Context) (*progress.UserStats, error) { return nil, nil }
func (memStore) Save(context.Context, *progress.UserStats) error   { return nil }

// recordStore additionally records every save.
type recordStore struct {
	saved []*progress.UserStats
}

func (r *recordStore) Load(context.Context) (*progress.UserStats, error) { return nil, nil }
func (r *recordStore) Save(_ context.Context, s *progress.UserStats) error {
	r.saved = append(r.saved, s)
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testConfigureScreen(t *testing.T, gen *fakeGenerator, topics []string) *ConfigureScreen {
	t.Helper()
	subject, err := curriculum.SubjectByName(curriculum.Math)
	if err != nil {
		t.Fatalf("SubjectByName: %v", err)
	}
	tracker := progress.NewTracker(memStore{})
	return New(gen, tracker, telemetry.NewSink(""), subject, subject.Units[0], topics)
}

func sampleBatch(n int) []generate.Question {
	qs := make([]generate.Question, n)
	for i := range qs {
		qs[i] = generate.Question{
			ID:            string(rune('a' + i)),
			Text:          "soru",
			Options:       []string{"1", "2", "3", "4"},
			CorrectAnswer: 0,
		}
	}
	return qs
}

// runUntilBatchReady executes cmd, unwrapping batches, until a
// batchReadyMsg appears.
func runUntilBatchReady(cmd tea.Cmd) (batchReadyMsg, bool) {
	if cmd == nil {
		return batchReadyMsg{}, false
	}
	switch msg := cmd().(type) {
	case batchReadyMsg:
		return msg, true
	case tea.BatchMsg:
		for _, sub := range msg {
			if ready, ok := runUntilBatchReady(sub); ok {
				return ready, true
			}
		}
	}
	return batchReadyMsg{}, false
}

func TestConfigureScreen_Defaults(t *testing.T) {
	c := testConfigureScreen(t, &fakeGenerator{}, nil)
	cfg := c.session.Config
	if cfg.Count != quiz.DefaultCount {
		t.Errorf("count = %d, want %d", cfg.Count, quiz.DefaultCount)
	}
	if cfg.Difficulty != generate.Medium {
		t.Errorf("difficulty = %q, want medium", cfg.Difficulty)
	}
}

func TestConfigureScreen_CountClampedToRange(t *testing.T) {
	c := testConfigureScreen(t, &fakeGenerator{}, nil)

	var scr screen.Screen = c
	for i := 0; i < 20; i++ {
		scr, _ = scr.Update(keyPress('l'))
	}
	if got := c.session.Config.Count; got != quiz.MaxCount {
		t.Errorf("count = %d, want capped at %d", got, quiz.MaxCount)
	}

	for i := 0; i < 20; i++ {
		scr, _ = scr.Update(keyPress('h'))
	}
	if got := c.session.Config.Count; got != quiz.MinCount {
		t.Errorf("count = %d, want floored at %d", got, quiz.MinCount)
	}
}

func TestConfigureScreen_DifficultyCycles(t *testing.T) {
	c := testConfigureScreen(t, &fakeGenerator{}, nil)

	var scr screen.Screen = c
	scr, _ = scr.Update(keyPress('j')) // to difficulty row
	scr, _ = scr.Update(keyPress('l'))
	if got := c.session.Config.Difficulty; got != generate.Hard {
		t.Errorf("difficulty = %q, want hard", got)
	}
	scr, _ = scr.Update(keyPress('l'))
	if got := c.session.Config.Difficulty; got != generate.Easy {
		t.Errorf("difficulty = %q, want easy after wrap", got)
	}
}

func TestConfigureScreen_StartRequestsBatch(t *testing.T) {
	gen := &fakeGenerator{questions: sampleBatch(5)}
	c := testConfigureScreen(t, gen, []string{"Doğal Sayılar"})

	var scr screen.Screen = c
	scr, _ = scr.Update(keyPress('j'))
	scr, _ = scr.Update(keyPress('j'))
	_, cmd := scr.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a generation command")
	}
	if !c.generating {
		t.Error("expected generating state")
	}

	ready, ok := runUntilBatchReady(cmd)
	if !ok {
		t.Fatal("expected a batchReadyMsg from the command")
	}
	if len(gen.requests) != 1 {
		t.Fatalf("requests = %d, want 1", len(gen.requests))
	}
	req := gen.requests[0]
	if req.Subject != curriculum.Math || req.Count != quiz.DefaultCount {
		t.Errorf("unexpected request %+v", req)
	}
	if len(req.Topics) != 1 || req.Topics[0] != "Doğal Sayılar" {
		t.Errorf("topics = %v, want the selection", req.Topics)
	}
	if len(ready.Questions) != 5 {
		t.Errorf("questions = %d, want 5", len(ready.Questions))
	}
}

func TestConfigureScreen_BatchReadyArmsAndPushesPlay(t *testing.T) {
	c := testConfigureScreen(t, &fakeGenerator{}, nil)
	gen := c.session.BeginGeneration()
	c.generating = true

	var scr screen.Screen = c
	scr, cmd := scr.Update(batchReadyMsg{Generation: gen, Questions: sampleBatch(3)})
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("msg = %T, want PushScreenMsg", cmd())
	}
	if _, ok := push.Screen.(*play.PlayScreen); !ok {
		t.Errorf("pushed screen = %T, want PlayScreen", push.Screen)
	}
	if c.session.Phase != quiz.PhaseInProgress {
		t.Errorf("phase = %d, want InProgress", c.session.Phase)
	}
	if scr.(*ConfigureScreen).generating {
		t.Error("expected generating cleared")
	}
}

func TestConfigureScreen_ZeroDurationBatchStillReachesResult(t *testing.T) {
	// A subject with no time allowance submits the attempt the moment
	// the batch arrives; the play screen must still be pushed so its
	// Init can route straight to the result and commit.
	subject := curriculum.Subject{
		Name:            "Deneme",
		TimePerQuestion: 0,
		Units: []curriculum.Unit{
			{ID: "d1", Name: "Ünite", Topics: []string{"konu"}},
		},
	}
	store := &recordStore{}
	tracker := progress.NewTracker(store)
	c := New(&fakeGenerator{}, tracker, telemetry.NewSink(""), subject, subject.Units[0], nil)
	gen := c.session.BeginGeneration()
	c.generating = true

	var scr screen.Screen = c
	_, cmd := scr.Update(batchReadyMsg{Generation: gen, Questions: sampleBatch(2)})
	if c.session.Phase != quiz.PhaseSubmitted {
		t.Fatalf("phase = %d, want Submitted", c.session.Phase)
	}
	if cmd == nil {
		t.Fatal("expected a navigation command for the submitted attempt")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("msg = %T, want PushScreenMsg", cmd())
	}
	playScr, ok := push.Screen.(*play.PlayScreen)
	if !ok {
		t.Fatalf("pushed screen = %T, want PlayScreen", push.Screen)
	}

	initCmd := playScr.Init()
	if initCmd == nil {
		t.Fatal("expected the play screen to finish a submitted attempt")
	}
	rep, ok := initCmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("msg = %T, want ReplaceScreenMsg", initCmd())
	}
	if _, ok := rep.Screen.(*result.ResultScreen); !ok {
		t.Errorf("replacement screen = %T, want ResultScreen", rep.Screen)
	}
	if len(store.saved) != 1 {
		t.Errorf("saved stats = %d, want 1 commit", len(store.saved))
	}
}

func TestConfigureScreen_GenerationFailureStaysWithError(t *testing.T) {
	c := testConfigureScreen(t, &fakeGenerator{}, nil)
	gen := c.session.BeginGeneration()
	c.generating = true

	boom := errors.New("Sorular oluşturulamadı.")
	_, cmd := c.Update(batchReadyMsg{Generation: gen, Err: boom})
	if cmd != nil {
		t.Error("expected no navigation on failure")
	}
	if c.session.Phase != quiz.PhaseConfiguring {
		t.Errorf("phase = %d, want back to Configuring", c.session.Phase)
	}
	if c.session.Err == nil {
		t.Error("expected the error kept for display")
	}
	if c.generating {
		t.Error("expected generating cleared for retry")
	}
}

func TestConfigureScreen_StaleBatchDiscarded(t *testing.T) {
	c := testConfigureScreen(t, &fakeGenerator{}, nil)
	stale := c.session.BeginGeneration()
	c.session.Reset()

	_, cmd := c.Update(batchReadyMsg{Generation: stale, Questions: sampleBatch(3)})
	if cmd != nil {
		t.Error("expected stale completion dropped")
	}
	if c.session.Phase == quiz.PhaseInProgress {
		t.Error("stale completion must not arm the attempt")
	}
}

func TestConfigureScreen_KeysIgnoredWhileGenerating(t *testing.T) {
	c := testConfigureScreen(t, &fakeGenerator{}, nil)
	c.generating = true

	before := c.session.Config.Count
	c.Update(keyPress('l'))
	if c.session.Config.Count != before {
		t.Error("expected config frozen while generating")
	}
}

func TestConfigureScreen_View(t *testing.T) {
	c := testConfigureScreen(t, &fakeGenerator{}, nil)
	if view := c.View(80, 24); view == "" {
		t.Error("expected non-empty view")
	}

	c.generating = true
	if view := c.View(80, 24); view == "" {
		t.Error("expected non-empty generating view")
	}
}
