// Package play runs one armed quiz attempt: countdown, answer
// collection, submission. The attempt state itself lives in
// quiz.Session; this screen only drives it with messages and renders
// it.
package play

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/progress"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/quiz"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/router"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/screen"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/screens/result"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/ui/layout"
)

// tickMsg is the 1-second countdown beat, stamped with the attempt
// generation it was armed for. A tick from a submitted or reset
// attempt is dropped.
type tickMsg struct {
	Generation int
}

// PlayScreen drives one InProgress quiz attempt.
type PlayScreen struct {
	session *quiz.Session
	tracker *progress.Tracker

	current       int // question index being shown
	cursor        int // option index under the cursor
	confirmQuit   bool
	confirmFinish bool
	committed     bool
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)
var _ screen.EscHandler = (*PlayScreen)(nil)

// New creates the play screen for an attempt that is already
// InProgress.
func New(session *quiz.Session, tracker *progress.Tracker) *PlayScreen {
	return &PlayScreen{session: session, tracker: tracker}
}

func (p *PlayScreen) Init() tea.Cmd {
	// The attempt may have submitted on arrival (zero-duration
	// countdown); skip straight to the result.
	if p.session.Phase == quiz.PhaseSubmitted {
		return p.finishCmd()
	}
	return tickCmd(p.session.Generation)
}

func tickCmd(generation int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{Generation: generation}
	})
}

func (p *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return p.handleTick(msg)
	case tea.KeyMsg:
		return p.handleKey(msg)
	}
	return p, nil
}

func (p *PlayScreen) handleTick(msg tickMsg) (screen.Screen, tea.Cmd) {
	expired := p.session.Tick(msg.Generation)
	if expired {
		// The countdown submitted the attempt with whatever answers
		// were recorded.
		return p, p.finishCmd()
	}
	if p.session.Phase != quiz.PhaseInProgress || msg.Generation != p.session.Generation {
		// Submitted, reset, or a tick from an older attempt; stop
		// the timer chain.
		return p, nil
	}
	return p, tickCmd(msg.Generation)
}

func (p *PlayScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if p.confirmQuit {
		switch key {
		case "y", "Y", "e", "E":
			p.session.Reset()
			return p, func() tea.Msg { return router.PopToRootMsg{} }
		default:
			p.confirmQuit = false
		}
		return p, nil
	}

	if p.confirmFinish {
		switch key {
		case "y", "Y", "e", "E":
			p.confirmFinish = false
			p.session.Submit()
			return p, p.finishCmd()
		default:
			p.confirmFinish = false
		}
		return p, nil
	}

	if p.session.Phase != quiz.PhaseInProgress {
		return p, nil
	}

	questions := p.session.Questions
	q := questions[p.current]

	switch key {
	case "left", "p":
		if p.current > 0 {
			p.current--
			p.cursor = p.chosenOr(questions[p.current].ID, 0)
		}
	case "right", "n", "tab":
		if p.current < len(questions)-1 {
			p.current++
			p.cursor = p.chosenOr(questions[p.current].ID, 0)
		}
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(q.Options)-1 {
			p.cursor++
		}
	case "enter", "space", " ":
		p.session.Answer(q.ID, p.cursor)
		// Convenience: move on to the next unanswered question.
		if p.current < len(questions)-1 {
			p.current++
			p.cursor = p.chosenOr(questions[p.current].ID, 0)
		}
	case "1", "2", "3", "4":
		option := int(key[0] - '1')
		if option < len(q.Options) {
			p.session.Answer(q.ID, option)
			if p.current < len(questions)-1 {
				p.current++
				p.cursor = p.chosenOr(questions[p.current].ID, 0)
			}
		}
	case "b", "B":
		p.confirmFinish = true
	}

	return p, nil
}

// HandleEsc opens the leave confirmation instead of popping the
// screen mid-attempt.
func (p *PlayScreen) HandleEsc() tea.Cmd {
	if p.session.Phase == quiz.PhaseInProgress {
		p.confirmQuit = true
		return nil
	}
	return func() tea.Msg { return router.PopToRootMsg{} }
}

// chosenOr returns the recorded answer for a question, or fallback.
func (p *PlayScreen) chosenOr(questionID string, fallback int) int {
	if chosen, ok := p.session.Answers[questionID]; ok {
		return chosen
	}
	return fallback
}

// finishCmd commits the submitted attempt and swaps in the result
// screen. Commits at most once per screen: the countdown can expire
// while a finish confirmation is open, and the confirm key must not
// record the attempt a second time.
func (p *PlayScreen) finishCmd() tea.Cmd {
	res, ok := p.session.Result()
	if !ok || p.committed {
		return nil
	}
	p.committed = true

	attempt := progress.Attempt{
		Subject:    p.session.Subject.Name,
		UnitName:   p.session.Unit.Name,
		Topics:     p.session.EffectiveTopics(),
		Difficulty: p.session.Config.Difficulty,
		Questions:  p.session.Questions,
		Answers:    p.session.AnswersCopy(),
		Score:      res.Score,
		Total:      res.Total,
	}
	stats, item := p.tracker.Commit(context.Background(), attempt)

	return func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: result.New(res, stats, item),
		}
	}
}

func (p *PlayScreen) Title() string {
	return fmt.Sprintf("%s · Soru %d/%d", p.session.Subject.Name, p.current+1, len(p.session.Questions))
}

func (p *PlayScreen) KeyHints() []layout.KeyHint {
	if p.confirmQuit {
		return []layout.KeyHint{
			{Key: "E", Description: "Evet, çık"},
			{Key: "H", Description: "Hayır, devam"},
		}
	}
	if p.confirmFinish {
		return []layout.KeyHint{
			{Key: "E", Description: "Evet, bitir"},
			{Key: "H", Description: "Hayır, devam"},
		}
	}
	return []layout.KeyHint{
		{Key: "◀▶", Description: "Soru değiştir"},
		{Key: "1-4", Description: "Cevapla"},
		{Key: "B", Description: "Bitir"},
		{Key: "Esc", Description: "Çık"},
	}
}
