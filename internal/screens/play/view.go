package play

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/quiz"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/ui/components"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/ui/theme"
)

// lowTimeThreshold is where the countdown switches to the warning
// style.
const lowTimeThreshold = 60

func (p *PlayScreen) View(width, height int) string {
	if p.confirmQuit {
		return p.renderConfirm(width, "Sınavdan çıkmak istiyor musun?", "Bu deneme kaydedilmeden silinecek.")
	}
	if p.confirmFinish {
		return p.renderConfirm(width, "Sınavı bitirmek istiyor musun?", "Boş bıraktığın sorular yanlış sayılacak.")
	}
	if p.session.Phase != quiz.PhaseInProgress || len(p.session.Questions) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Sonuç hesaplanıyor...")
	}

	var b strings.Builder
	b.WriteString(p.renderStatusLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 1))))
	b.WriteString("\n\n")
	b.WriteString(p.renderQuestion(width))
	return b.String()
}

// renderStatusLine shows position, answered count and the countdown.
func (p *PlayScreen) renderStatusLine(width int) string {
	questions := p.session.Questions

	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Soru %d/%d", p.current+1, len(questions)))

	answered := len(p.session.Answers)
	mins := p.session.Remaining / 60
	secs := p.session.Remaining % 60
	timerStyle := lipgloss.NewStyle().Foreground(theme.Accent)
	if p.session.Remaining < lowTimeThreshold {
		timerStyle = theme.TimerLow
	}

	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Cevaplanan %d/%d  ", answered, len(questions))) +
		timerStyle.Render(fmt.Sprintf("⏱ %d:%02d", mins, secs))

	line := left
	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}
	return line
}

// renderQuestion shows the current question text and its options.
func (p *PlayScreen) renderQuestion(width int) string {
	q := p.session.Questions[p.current]
	chosen, hasAnswer := p.session.Answers[q.ID]

	var b strings.Builder

	questionStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Bold(true)
	b.WriteString(questionStyle.Render(components.RenderMarkup(q.Text)))
	b.WriteString("\n\n")

	for i, option := range q.Options {
		prefix := "   "
		if i == p.cursor {
			prefix = " ▸ "
		}
		marker := "( )"
		if hasAnswer && i == chosen {
			marker = "(●)"
		}
		line := fmt.Sprintf("%s%s %c) %s", prefix, marker, 'A'+i, components.RenderMarkup(option))

		switch {
		case i == p.cursor:
			b.WriteString(theme.Selected.Render(line))
		case hasAnswer && i == chosen:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render(line))
		default:
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	bar := components.NewProgressBar("  İlerleme",
		float64(len(p.session.Answers))/float64(len(p.session.Questions)),
		false, min(width-8, 50))
	b.WriteString(bar.View())
	return b.String()
}

// renderConfirm shows a yes/no overlay in place of the question.
func (p *PlayScreen) renderConfirm(width int, question, detail string) string {
	body := theme.Incorrect.Render(question) + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail) + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.Text).Render("[E] Evet    [H] Hayır")

	return "\n\n" + lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(theme.Card.Render(body))
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
