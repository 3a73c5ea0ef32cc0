// Package result shows the outcome of one submitted quiz attempt and
// the updated progress it earned.
package result

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/progress"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/quiz"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/router"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/screen"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/screens/historydetail"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/ui/components"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/ui/theme"
)

// ResultScreen shows the score of a finished attempt.
type ResultScreen struct {
	result quiz.Result
	stats  *progress.UserStats
	item   progress.HistoryItem
	menu   components.Menu
}

var _ screen.Screen = (*ResultScreen)(nil)

// New creates a result screen for a just-committed attempt.
func New(result quiz.Result, stats *progress.UserStats, item progress.HistoryItem) *ResultScreen {
	items := []components.MenuItem{
		{Label: "CEVAPLARI GÖR", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: historydetail.New(item)}
			}
		}},
		{Label: "ANA MENÜ", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PopToRootMsg{}
			}
		}},
	}

	return &ResultScreen{
		result: result,
		stats:  stats,
		item:   item,
		menu:   components.NewMenu(items),
	}
}

func (r *ResultScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	r.menu, cmd = r.menu.Update(msg)
	return r, cmd
}

func (r *ResultScreen) View(width, height int) string {
	verdict, style := r.verdict()

	scoreLine := style.Render(fmt.Sprintf("%d / %d", r.result.Score, r.result.Total))
	earned := theme.Body.Render(fmt.Sprintf("+%d puan kazandın!", r.result.Score*progress.PointsPerCorrect))

	statsLine := theme.Hint.Render(fmt.Sprintf(
		"Seviye %d · %d puan · 🔥 %d günlük seri",
		r.stats.Level, r.stats.Points, r.stats.Streak))

	header := theme.Title.Render(verdict) + "\n\n" +
		theme.Subtitle.Render(fmt.Sprintf("%s · %s", r.item.Subject, r.item.UnitName))

	content := strings.Join([]string{
		header,
		scoreLine,
		earned,
		statsLine,
		r.menu.View(),
	}, "\n\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// verdict picks an encouraging headline for the score.
func (r *ResultScreen) verdict() (string, lipgloss.Style) {
	if r.result.Total == 0 {
		return "SINAV BİTTİ", theme.Body
	}
	switch ratio := float64(r.result.Score) / float64(r.result.Total); {
	case ratio >= 0.9:
		return "MÜKEMMEL! 🏆", theme.Correct
	case ratio >= 0.7:
		return "ÇOK İYİ! ⭐", theme.Correct
	case ratio >= 0.5:
		return "FENA DEĞİL 💪", theme.Body.Bold(true)
	default:
		return "DAHA ÇOK ÇALIŞMALISIN 📚", theme.Incorrect
	}
}

func (r *ResultScreen) Title() string {
	return "Sonuç"
}
