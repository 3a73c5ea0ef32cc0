// Package subjects lets the user pick one of the six 5th grade
// subjects.
package subjects

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/curriculum"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/generate"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/progress"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/router"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/screen"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/screens/units"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/telemetry"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/ui/components"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/ui/theme"
)

// SubjectsScreen is the subject selection menu.
type SubjectsScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*SubjectsScreen)(nil)

// New creates the subject selection screen.
func New(generator generate.Generator, tracker *progress.Tracker, sink *telemetry.Sink) *SubjectsScreen {
	all := curriculum.Subjects()
	items := make([]components.MenuItem, 0, len(all))
	for _, subject := range all {
		subject := subject
		items = append(items, components.MenuItem{
			Label:  subject.Icon + "  " + subject.Name,
			Detail: fmt.Sprintf("%d ünite", len(subject.Units)),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: units.New(generator, tracker, sink, subject),
					}
				}
			},
		})
	}

	return &SubjectsScreen{menu: components.NewMenu(items)}
}

func (s *SubjectsScreen) Init() tea.Cmd {
	return nil
}

func (s *SubjectsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *SubjectsScreen) View(width, height int) string {
	content := theme.Title.Render("Hangi dersten soru çözelim?") + "\n\n" + s.menu.View()
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (s *SubjectsScreen) Title() string {
	return "Ders Seçimi"
}
