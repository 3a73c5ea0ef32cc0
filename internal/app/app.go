// Package app wires the screens into the root Bubble Tea model.
package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/generate"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/progress"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/router"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/screen"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/screens/home"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/telemetry"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	tracker *progress.Tracker
	width   int
	height  int
}

// newAppModel creates the root model with the home screen at the
// bottom of the stack.
func newAppModel(generator generate.Generator, tracker *progress.Tracker, sink *telemetry.Sink) AppModel {
	homeScreen := home.New(generator, tracker, sink)
	return AppModel{
		router:  router.New(homeScreen),
		tracker: tracker,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// A screen may intercept Esc, e.g. for a leave
			// confirmation mid-quiz.
			if h, ok := m.router.Active().(screen.EscHandler); ok {
				return m, h.HandleEsc()
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	stats := m.tracker.Stats(context.Background())
	header := layout.RenderHeader(title, layout.HeaderStats{
		Level:  stats.Level,
		Points: stats.Points,
		Streak: stats.Streak,
	}, m.width)

	footerHints := m.footerHints(active)
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Gezin"},
			{Key: "Enter", Description: "Seç"},
			{Key: "Esc", Description: "Geri"},
			{Key: "Ctrl+C", Description: "Çıkış"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Gezin"},
		{Key: "Enter", Description: "Seç"},
		{Key: "Ctrl+C", Description: "Çıkış"},
	}
}

// Run starts the Bubble Tea program.
func Run(generator generate.Generator, tracker *progress.Tracker, sink *telemetry.Sink) error {
	p := tea.NewProgram(newAppModel(generator, tracker, sink))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
