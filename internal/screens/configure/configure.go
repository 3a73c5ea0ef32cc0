// Package configure collects the question count and difficulty, then
// requests the batch and hands the armed attempt to the play screen.
// Generation failures land back here with the error visible, so the
// user can retry.
package configure

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/curriculum"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/generate"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/progress"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/quiz"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/router"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/screen"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/screens/play"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/telemetry"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/ui/components"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/ui/layout"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/ui/theme"
)

// batchReadyMsg carries the generator result, stamped with the
// attempt generation so a completion from an abandoned attempt is
// discarded.
type batchReadyMsg struct {
	Generation int
	Questions  []generate.Question
	Err        error
}

// Rows of the configuration form.
const (
	rowCount = iota
	rowDifficulty
	rowStart
)

var difficulties = []generate.Difficulty{generate.Easy, generate.Medium, generate.Hard}

var difficultyLabels = map[generate.Difficulty]string{
	generate.Easy:   "Kolay",
	generate.Medium: "Orta",
	generate.Hard:   "Zor",
}

// ConfigureScreen is the final step before generation.
type ConfigureScreen struct {
	generator  generate.Generator
	tracker    *progress.Tracker
	sink       *telemetry.Sink
	session    *quiz.Session
	spinner    components.Spinner
	row        int
	generating bool
}

var _ screen.Screen = (*ConfigureScreen)(nil)
var _ screen.KeyHintProvider = (*ConfigureScreen)(nil)

// New creates the configuration screen for the chosen curriculum
// coordinates.
func New(generator generate.Generator, tracker *progress.Tracker, sink *telemetry.Sink, subject curriculum.Subject, unit curriculum.Unit, topics []string) *ConfigureScreen {
	session := quiz.NewSession()
	session.Configure(subject, unit)
	session.Config.Topics = topics

	return &ConfigureScreen{
		generator: generator,
		tracker:   tracker,
		sink:      sink,
		session:   session,
		spinner:   components.NewSpinner(),
	}
}

func (c *ConfigureScreen) Init() tea.Cmd {
	return nil
}

func (c *ConfigureScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case batchReadyMsg:
		return c.handleBatchReady(msg)
	case tea.KeyMsg:
		if c.generating {
			return c, nil
		}
		return c.handleKey(msg)
	}

	if c.generating {
		var cmd tea.Cmd
		c.spinner, cmd = c.spinner.Update(msg)
		return c, cmd
	}
	return c, nil
}

func (c *ConfigureScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	cfg := &c.session.Config

	switch msg.String() {
	case "up", "k":
		if c.row > rowCount {
			c.row--
		}
	case "down", "j":
		if c.row < rowStart {
			c.row++
		}
	case "left", "h":
		switch c.row {
		case rowCount:
			if cfg.Count > quiz.MinCount {
				cfg.Count--
			}
		case rowDifficulty:
			cfg.Difficulty = cycleDifficulty(cfg.Difficulty, -1)
		}
	case "right", "l":
		switch c.row {
		case rowCount:
			if cfg.Count < quiz.MaxCount {
				cfg.Count++
			}
		case rowDifficulty:
			cfg.Difficulty = cycleDifficulty(cfg.Difficulty, +1)
		}
	case "enter":
		if c.row == rowStart {
			return c.startGeneration()
		}
		c.row++
	}

	return c, nil
}

// startGeneration freezes the configuration and fires the batch
// request.
func (c *ConfigureScreen) startGeneration() (screen.Screen, tea.Cmd) {
	gen := c.session.BeginGeneration()
	req := c.session.BatchRequest()
	c.generating = true

	generator := c.generator
	return c, tea.Batch(
		c.spinner.Init(),
		func() tea.Msg {
			questions, err := generator.GenerateBatch(context.Background(), req)
			return batchReadyMsg{Generation: gen, Questions: questions, Err: err}
		},
	)
}

func (c *ConfigureScreen) handleBatchReady(msg batchReadyMsg) (screen.Screen, tea.Cmd) {
	c.generating = false

	if msg.Err != nil {
		c.session.GenerationFailed(msg.Generation, msg.Err)
		return c, nil
	}

	c.session.GenerationSucceeded(msg.Generation, msg.Questions)
	// A zero-duration countdown submits on arrival; the play screen
	// routes a submitted attempt straight to the result, so it still
	// gets pushed. Anything else here means the batch was rejected.
	if c.session.Generation != msg.Generation {
		return c, nil
	}
	switch c.session.Phase {
	case quiz.PhaseInProgress, quiz.PhaseSubmitted:
	default:
		return c, nil
	}

	// Mirror the batch to the sheet. Detached; never awaited.
	c.sink.Record(c.session.BatchRequest(), msg.Questions)

	return c, func() tea.Msg {
		return router.PushScreenMsg{
			Screen: play.New(c.session, c.tracker),
		}
	}
}

func cycleDifficulty(d generate.Difficulty, dir int) generate.Difficulty {
	for i, cand := range difficulties {
		if cand == d {
			next := (i + dir + len(difficulties)) % len(difficulties)
			return difficulties[next]
		}
	}
	return generate.Medium
}

func (c *ConfigureScreen) View(width, height int) string {
	cfg := c.session.Config

	var b strings.Builder
	b.WriteString(theme.Title.Render(c.session.Subject.Icon + "  " + c.session.Unit.Name))
	b.WriteString("\n")
	topicCount := len(cfg.Topics)
	if topicCount == 0 {
		b.WriteString(theme.Subtitle.Render("Tüm konular"))
	} else {
		b.WriteString(theme.Subtitle.Render(fmt.Sprintf("%d konu seçili", topicCount)))
	}
	b.WriteString("\n\n")

	if c.generating {
		b.WriteString(c.spinner.View() + theme.Body.Render(" Canavar soruları hazırlıyor..."))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Bu birkaç saniye sürebilir."))
	} else {
		b.WriteString(renderRow(c.row == rowCount, "Soru Sayısı", fmt.Sprintf("◀ %d ▶", cfg.Count)))
		b.WriteString("\n")
		b.WriteString(renderRow(c.row == rowDifficulty, "Zorluk", fmt.Sprintf("◀ %s ▶", difficultyLabels[cfg.Difficulty])))
		b.WriteString("\n\n")
		start := "BAŞLA"
		if c.row == rowStart {
			b.WriteString(theme.Selected.Render("  ▸ " + start))
		} else {
			b.WriteString(theme.Unselected.Render("    " + start))
		}
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(fmt.Sprintf("Süre: soru başına %d saniye", c.session.Subject.TimePerQuestion)))
	}

	if err := c.session.Err; err != nil {
		b.WriteString("\n\n")
		b.WriteString(theme.Incorrect.Render(err.Error()))
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(b.String())
}

func renderRow(selected bool, label, value string) string {
	line := fmt.Sprintf("%-12s %s", label, value)
	if selected {
		return theme.Selected.Render("  ▸ " + line)
	}
	return theme.Unselected.Render("    " + line)
}

func (c *ConfigureScreen) Title() string {
	return "Ayarlar"
}

func (c *ConfigureScreen) KeyHints() []layout.KeyHint {
	if c.generating {
		return []layout.KeyHint{{Key: "Ctrl+C", Description: "Çıkış"}}
	}
	return []layout.KeyHint{
		{Key: "◀▶", Description: "Değiştir"},
		{Key: "Enter", Description: "Başla"},
		{Key: "Esc", Description: "Geri"},
	}
}
