// Package topics lets the user narrow the unit's topic list. Nothing
// selected means all topics.
package topics

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/curriculum"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/generate"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/progress"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/router"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/screen"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/screens/configure"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/telemetry"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/ui/components"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/ui/layout"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/ui/theme"
)

// TopicsScreen is the multi-select topic filter for one unit.
type TopicsScreen struct {
	generator generate.Generator
	tracker   *progress.Tracker
	sink      *telemetry.Sink
	subject   curriculum.Subject
	unit      curriculum.Unit
	list      components.Checklist
}

var _ screen.Screen = (*TopicsScreen)(nil)
var _ screen.KeyHintProvider = (*TopicsScreen)(nil)

// New creates the topic selection screen.
func New(generator generate.Generator, tracker *progress.Tracker, sink *telemetry.Sink, subject curriculum.Subject, unit curriculum.Unit) *TopicsScreen {
	return &TopicsScreen{
		generator: generator,
		tracker:   tracker,
		sink:      sink,
		subject:   subject,
		unit:      unit,
		list:      components.NewChecklist(unit.Topics),
	}
}

func (t *TopicsScreen) Init() tea.Cmd {
	return nil
}

func (t *TopicsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		selected := t.list.Selected()
		return t, func() tea.Msg {
			return router.PushScreenMsg{
				Screen: configure.New(t.generator, t.tracker, t.sink, t.subject, t.unit, selected),
			}
		}
	}

	var cmd tea.Cmd
	t.list, cmd = t.list.Update(msg)
	return t, cmd
}

func (t *TopicsScreen) View(width, height int) string {
	content := theme.Title.Render(t.unit.Name) + "\n" +
		theme.Subtitle.Render("Konuları seç. Hiçbir şey seçmezsen hepsi dahil.") + "\n\n" +
		t.list.View()
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (t *TopicsScreen) Title() string {
	return "Konu Seçimi"
}

func (t *TopicsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Boşluk", Description: "İşaretle"},
		{Key: "A", Description: "Tümü"},
		{Key: "Enter", Description: "Devam"},
		{Key: "Esc", Description: "Geri"},
	}
}
