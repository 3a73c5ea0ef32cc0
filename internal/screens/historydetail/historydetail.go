// Package historydetail reviews a single recorded quiz attempt
// question by question: what was asked, what was answered, what the
// correct option was.
package historydetail

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/progress"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/screen"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/ui/components"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/ui/layout"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/ui/theme"
)

// DetailScreen walks through one attempt's questions.
type DetailScreen struct {
	item    progress.HistoryItem
	current int
}

var _ screen.Screen = (*DetailScreen)(nil)
var _ screen.KeyHintProvider = (*DetailScreen)(nil)

// New creates a review screen for a recorded attempt.
func New(item progress.HistoryItem) *DetailScreen {
	return &DetailScreen{item: item}
}

func (d *DetailScreen) Init() tea.Cmd {
	return nil
}

func (d *DetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}

	switch kmsg.String() {
	case "left", "p", "up", "k":
		if d.current > 0 {
			d.current--
		}
	case "right", "n", "down", "j", "tab", "enter", "space", " ":
		if d.current < len(d.item.Questions)-1 {
			d.current++
		}
	}
	return d, nil
}

func (d *DetailScreen) View(width, height int) string {
	if len(d.item.Questions) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Bu deneme için soru kaydı yok.")
	}

	var b strings.Builder
	b.WriteString(d.renderHeader(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 1))))
	b.WriteString("\n\n")
	b.WriteString(d.renderQuestion(width))
	return b.String()
}

func (d *DetailScreen) renderHeader(width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s · %s", d.item.Subject, d.item.UnitName))

	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s · %d/%d doğru · Soru %d/%d",
			d.item.Date.Format("02.01.2006"),
			d.item.Score, d.item.Total,
			d.current+1, len(d.item.Questions)))

	line := left
	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}
	return line
}

func (d *DetailScreen) renderQuestion(width int) string {
	q := d.item.Questions[d.current]
	chosen, answered := d.item.Answers[q.ID]

	var b strings.Builder

	questionStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Bold(true)
	b.WriteString(questionStyle.Render(components.RenderMarkup(q.Text)))
	b.WriteString("\n\n")

	for i, option := range q.Options {
		marker := "   "
		style := theme.Unselected
		switch {
		case i == q.CorrectAnswer:
			marker = " ✓ "
			style = theme.Correct
		case answered && i == chosen:
			marker = " ✗ "
			style = theme.Incorrect
		}
		line := fmt.Sprintf("%s%c) %s", marker, 'A'+i, components.RenderMarkup(option))
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if !answered {
		b.WriteString(theme.Hint.Render("  Bu soru boş bırakıldı.\n\n"))
	}
	if q.Explanation != "" {
		label := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("  Açıklama: ")
		b.WriteString(label + components.RenderMarkup(q.Explanation))
		b.WriteString("\n")
	}
	return b.String()
}

func (d *DetailScreen) Title() string {
	return "Cevap İncelemesi"
}

func (d *DetailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "◀▶", Description: "Soru değiştir"},
		{Key: "Esc", Description: "Geri"},
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
