package play

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/curriculum"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/generate"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/progress"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/quiz"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/router"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/screen"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/screens/result"
)

// memStore implements progress.Store in memory.
type memStore struct {
	saved []*progress.UserStats
}

func (m *memStore) Load(context.Context) (*progress.UserStats, error) { return nil, nil }
func (m *memStore) Save(_ context.Context, s *progress.UserStats) error {
	m.saved = append(m.saved, s)
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testBatch(n int) []generate.Question {
	qs := make([]generate.Question, n)
	for i := range qs {
		qs[i] = generate.Question{
			ID:            string(rune('a' + i)),
			Text:          "Soru metni **vurgulu** kısım",
			Options:       []string{"bir", "iki", "üç", "dört"},
			CorrectAnswer: i % 4,
			Explanation:   "açıklama",
			Difficulty:    generate.Medium,
		}
	}
	return qs
}

func armedSession(t *testing.T, n int) *quiz.Session {
	t.Helper()
	subject, err := curriculum.SubjectByName(curriculum.Math)
	if err != nil {
		t.Fatalf("SubjectByName: %v", err)
	}
	s := quiz.NewSession()
	s.Configure(subject, subject.Units[0])
	gen := s.BeginGeneration()
	s.GenerationSucceeded(gen, testBatch(n))
	if s.Phase != quiz.PhaseInProgress {
		t.Fatalf("phase = %d, want InProgress", s.Phase)
	}
	return s
}

func testPlayScreen(t *testing.T, n int) (*PlayScreen, *memStore) {
	t.Helper()
	store := &memStore{}
	return New(armedSession(t, n), progress.NewTracker(store)), store
}

func TestPlayScreen_InitStartsCountdown(t *testing.T) {
	p, _ := testPlayScreen(t, 3)
	if cmd := p.Init(); cmd == nil {
		t.Error("expected a tick command for an armed attempt")
	}
}

func TestPlayScreen_NumberKeyAnswersAndAdvances(t *testing.T) {
	p, _ := testPlayScreen(t, 3)

	var scr screen.Screen = p
	scr, _ = scr.Update(keyPress('2'))
	ps := scr.(*PlayScreen)

	if got := ps.session.Answers["a"]; got != 1 {
		t.Errorf("answer for first question = %d, want 1", got)
	}
	if ps.current != 1 {
		t.Errorf("current = %d, want 1 after answering", ps.current)
	}
}

func TestPlayScreen_EnterAnswersAtCursor(t *testing.T) {
	p, _ := testPlayScreen(t, 2)

	var scr screen.Screen = p
	scr, _ = scr.Update(keyPress('j'))
	scr, _ = scr.Update(keyPress('j'))
	scr, _ = scr.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	ps := scr.(*PlayScreen)

	if got := ps.session.Answers["a"]; got != 2 {
		t.Errorf("answer = %d, want 2", got)
	}
}

func TestPlayScreen_NavigationRestoresChosenOption(t *testing.T) {
	p, _ := testPlayScreen(t, 3)

	var scr screen.Screen = p
	scr, _ = scr.Update(keyPress('4')) // answer first, advance to second
	scr, _ = scr.Update(keyPress('p')) // back to first
	ps := scr.(*PlayScreen)

	if ps.current != 0 {
		t.Fatalf("current = %d, want 0", ps.current)
	}
	if ps.cursor != 3 {
		t.Errorf("cursor = %d, want recorded answer 3", ps.cursor)
	}
}

func TestPlayScreen_TickExpiryCommitsAndShowsResult(t *testing.T) {
	p, store := testPlayScreen(t, 1)
	p.session.Remaining = 1
	p.session.Answer("a", 0) // correct

	var scr screen.Screen = p
	_, cmd := scr.Update(tickMsg{Generation: p.session.Generation})
	if cmd == nil {
		t.Fatal("expected a finish command on expiry")
	}

	msg := cmd()
	rep, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("msg = %T, want ReplaceScreenMsg", msg)
	}
	if _, ok := rep.Screen.(*result.ResultScreen); !ok {
		t.Errorf("replacement screen = %T, want ResultScreen", rep.Screen)
	}
	if len(store.saved) != 1 {
		t.Fatalf("saved stats = %d, want 1 commit", len(store.saved))
	}
	if got := store.saved[0].Points; got != progress.PointsPerCorrect {
		t.Errorf("points = %d, want %d", got, progress.PointsPerCorrect)
	}
}

func TestPlayScreen_StaleTickIgnored(t *testing.T) {
	p, store := testPlayScreen(t, 1)
	p.session.Remaining = 1

	var scr screen.Screen = p
	_, cmd := scr.Update(tickMsg{Generation: p.session.Generation - 1})
	if cmd != nil {
		t.Error("expected stale tick to stop the timer chain")
	}
	if p.session.Phase != quiz.PhaseInProgress {
		t.Errorf("phase = %d, want still InProgress", p.session.Phase)
	}
	if len(store.saved) != 0 {
		t.Error("stale tick must not commit")
	}
}

func TestPlayScreen_EscOpensQuitConfirm(t *testing.T) {
	p, _ := testPlayScreen(t, 2)

	if cmd := p.HandleEsc(); cmd != nil {
		t.Error("expected Esc to open the confirmation, not navigate")
	}
	if !p.confirmQuit {
		t.Fatal("expected quit confirmation")
	}

	// Any other key dismisses.
	var scr screen.Screen = p
	scr, _ = scr.Update(keyPress('h'))
	if scr.(*PlayScreen).confirmQuit {
		t.Error("expected confirmation dismissed")
	}
}

func TestPlayScreen_QuitConfirmResetsAndPopsToRoot(t *testing.T) {
	p, store := testPlayScreen(t, 2)
	p.HandleEsc()

	var scr screen.Screen = p
	_, cmd := scr.Update(keyPress('e'))
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Error("expected PopToRootMsg")
	}
	if p.session.Phase != quiz.PhaseIdle {
		t.Errorf("phase = %d, want Idle after abandon", p.session.Phase)
	}
	if len(store.saved) != 0 {
		t.Error("abandoned attempt must not commit")
	}
}

func TestPlayScreen_FinishKeyConfirmsAndCommits(t *testing.T) {
	p, store := testPlayScreen(t, 2)

	var scr screen.Screen = p
	scr, _ = scr.Update(keyPress('b'))
	if !scr.(*PlayScreen).confirmFinish {
		t.Fatal("expected finish confirmation")
	}

	_, cmd := scr.Update(keyPress('e'))
	if cmd == nil {
		t.Fatal("expected a finish command")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg")
	}
	if p.session.Phase != quiz.PhaseSubmitted {
		t.Errorf("phase = %d, want Submitted", p.session.Phase)
	}
	if len(store.saved) != 1 {
		t.Errorf("saved stats = %d, want 1", len(store.saved))
	}
}

func TestPlayScreen_ExpiryDuringFinishConfirmCommitsOnce(t *testing.T) {
	p, store := testPlayScreen(t, 2)
	p.session.Remaining = 1
	p.session.Answer("a", 0)

	var scr screen.Screen = p
	scr, _ = scr.Update(keyPress('b'))
	if !scr.(*PlayScreen).confirmFinish {
		t.Fatal("expected finish confirmation")
	}

	// Countdown runs out while the dialog is still open.
	_, cmd := scr.Update(tickMsg{Generation: p.session.Generation})
	if cmd == nil {
		t.Fatal("expected a finish command on expiry")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg")
	}

	// The confirm key lands after the attempt already committed.
	_, cmd = scr.Update(keyPress('e'))
	if cmd != nil {
		t.Error("expected no second finish command")
	}
	if len(store.saved) != 1 {
		t.Errorf("saved stats = %d, want exactly 1 commit", len(store.saved))
	}
}

func TestPlayScreen_KeysIgnoredAfterSubmit(t *testing.T) {
	p, _ := testPlayScreen(t, 2)
	p.session.Submit()

	var scr screen.Screen = p
	scr, _ = scr.Update(keyPress('1'))
	if len(scr.(*PlayScreen).session.Answers) != 0 {
		t.Error("expected answers frozen after submission")
	}
}

func TestPlayScreen_View(t *testing.T) {
	p, _ := testPlayScreen(t, 2)
	if view := p.View(80, 24); view == "" {
		t.Error("expected non-empty view")
	}

	p.confirmQuit = true
	if view := p.View(80, 24); view == "" {
		t.Error("expected non-empty confirmation view")
	}
}

func TestPlayScreen_Title(t *testing.T) {
	p, _ := testPlayScreen(t, 3)
	want := curriculum.Math + " · Soru 1/3"
	if got := p.Title(); got != want {
		t.Errorf("Title = %q, want %q", got, want)
	}
}
