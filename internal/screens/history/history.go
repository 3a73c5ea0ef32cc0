// Package history lists the recorded quiz attempts, newest first.
package history

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/progress"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/router"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/screen"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/screens/historydetail"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/ui/components"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/ui/theme"
)

// HistoryScreen lists past attempts and opens them for review.
type HistoryScreen struct {
	menu  components.Menu
	empty bool
}

var _ screen.Screen = (*HistoryScreen)(nil)

// New creates the history screen from the tracker's recorded
// attempts.
func New(tracker *progress.Tracker) *HistoryScreen {
	stats := tracker.Stats(context.Background())

	items := make([]components.MenuItem, 0, len(stats.History))
	for _, entry := range stats.History {
		entry := entry
		items = append(items, components.MenuItem{
			Label:  fmt.Sprintf("%s · %s", entry.Date.Format("02.01.2006"), entry.Subject),
			Detail: fmt.Sprintf("%s · %d/%d doğru", entry.UnitName, entry.Score, entry.Total),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: historydetail.New(entry)}
				}
			},
		})
	}

	return &HistoryScreen{
		menu:  components.NewMenu(items),
		empty: len(items) == 0,
	}
}

func (h *HistoryScreen) Init() tea.Cmd {
	return nil
}

func (h *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HistoryScreen) View(width, height int) string {
	if h.empty {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Henüz hiç sınav çözmedin.\nAna menüden OYUNA BAŞLA ile ilk sınavını başlat!")
	}

	title := theme.Title.Render("GEÇMİŞ") + "\n" +
		theme.Subtitle.Render("Bir denemeyi seçip cevaplarını incele")

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(title + "\n\n" + h.menu.View())
}

func (h *HistoryScreen) Title() string {
	return "Geçmiş"
}
