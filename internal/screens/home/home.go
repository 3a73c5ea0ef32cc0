package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/generate"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/progress"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/router"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/screen"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/screens/history"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/screens/subjects"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/telemetry"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/ui/components"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/ui/theme"
)

// HomeScreen is the main menu.
type HomeScreen struct {
	menu    components.Menu
	tracker *progress.Tracker
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen.
func New(generator generate.Generator, tracker *progress.Tracker, sink *telemetry.Sink) *HomeScreen {
	items := []components.MenuItem{
		{Label: "OYUNA BAŞLA", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: subjects.New(generator, tracker, sink)}
			}
		}},
		{Label: "GEÇMİŞ", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(tracker)}
			}
		}},
		{Label: "ÇIKIŞ", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:    components.NewMenu(items),
		tracker: tracker,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	stats := h.tracker.Stats(context.Background())

	title := theme.Title.Render("SORU CANAVARI") + "\n" +
		theme.Subtitle.Render("5. Sınıf · Soru çöz, canavarını büyüt!")

	mascot := lipgloss.JoinVertical(lipgloss.Center,
		RenderMascot(stats.Evolution),
		theme.Hint.Render(MascotName(stats.Evolution)),
	)

	var progressLine string
	intoLevel := stats.Points % progress.LevelThreshold
	progressLine = components.NewProgressBar(
		fmt.Sprintf("Seviye %d", stats.Level),
		float64(intoLevel)/float64(progress.LevelThreshold),
		false, 40,
	).View() + theme.Hint.Render(fmt.Sprintf("  %d/%d P", intoLevel, progress.LevelThreshold))

	statLine := theme.Body.Render(fmt.Sprintf(
		"Toplam: %d puan · %d/%d doğru", stats.Points, stats.CorrectAnswers, stats.TotalQuestions))

	sections := []string{title, mascot, progressLine, statLine, h.menu.View()}
	content := strings.Join(sections, "\n\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Ana Menü"
}
