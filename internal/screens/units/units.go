// Package units lets the user pick a unit within the chosen subject.
package units

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/curriculum"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/generate"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/progress"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/router"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/screen"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/screens/topics"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/telemetry"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/ui/components"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/ui/theme"
)

// UnitsScreen is the unit selection menu for one subject.
type UnitsScreen struct {
	subject curriculum.Subject
	menu    components.Menu
}

var _ screen.Screen = (*UnitsScreen)(nil)

// New creates the unit selection screen.
func New(generator generate.Generator, tracker *progress.Tracker, sink *telemetry.Sink, subject curriculum.Subject) *UnitsScreen {
	items := make([]components.MenuItem, 0, len(subject.Units))
	for _, unit := range subject.Units {
		unit := unit
		items = append(items, components.MenuItem{
			Label:  unit.Name,
			Detail: fmt.Sprintf("%d konu", len(unit.Topics)),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: topics.New(generator, tracker, sink, subject, unit),
					}
				}
			},
		})
	}

	return &UnitsScreen{subject: subject, menu: components.NewMenu(items)}
}

func (u *UnitsScreen) Init() tea.Cmd {
	return nil
}

func (u *UnitsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	u.menu, cmd = u.menu.Update(msg)
	return u, cmd
}

func (u *UnitsScreen) View(width, height int) string {
	content := theme.Title.Render(u.subject.Icon+"  "+u.subject.Name) + "\n" +
		theme.Subtitle.Render("Bir ünite seç") + "\n\n" + u.menu.View()
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (u *UnitsScreen) Title() string {
	return "Ünite Seçimi"
}
