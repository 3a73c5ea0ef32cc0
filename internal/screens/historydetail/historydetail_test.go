package historydetail

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/generate"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/progress"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/screen"
)

func sampleItem() progress.HistoryItem {
	return progress.HistoryItem{
		ID:       "h1",
		Date:     time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		Subject:  "Fen Bilimleri",
		UnitName: "Canlılar Dünyası",
		Score:    1,
		Total:    2,
		Questions: []generate.Question{
			{
				ID:            "q1",
				Text:          "Hangisi bir **mantar** türüdür?",
				Options:       []string{"Şapkalı mantar", "Papatya", "Çam", "Yosun"},
				CorrectAnswer: 0,
				Explanation:   "Şapkalı mantarlar mantarlar alemindendir.",
			},
			{
				ID:            "q2",
				Text:          "İkinci soru",
				Options:       []string{"a", "b", "c", "d"},
				CorrectAnswer: 2,
			},
		},
		Answers: map[string]int{"q1": 0},
	}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestDetailScreen_ShowsCorrectAndExplanation(t *testing.T) {
	d := New(sampleItem())
	view := d.View(80, 24)
	if !strings.Contains(view, "Şapkalı mantar") {
		t.Error("expected options rendered")
	}
	if !strings.Contains(view, "Şapkalı mantarlar mantarlar alemindendir.") {
		t.Error("expected explanation rendered")
	}
}

func TestDetailScreen_MarksUnanswered(t *testing.T) {
	d := New(sampleItem())

	var scr screen.Screen = d
	scr, _ = scr.Update(keyPress('n'))
	view := scr.View(80, 24)
	if !strings.Contains(view, "Bu soru boş bırakıldı.") {
		t.Error("expected unanswered note on second question")
	}
}

func TestDetailScreen_NavigationBounds(t *testing.T) {
	d := New(sampleItem())

	var scr screen.Screen = d
	scr, _ = scr.Update(keyPress('p'))
	if d.current != 0 {
		t.Errorf("current = %d, want clamped at 0", d.current)
	}
	scr, _ = scr.Update(keyPress('n'))
	scr, _ = scr.Update(keyPress('n'))
	if d.current != 1 {
		t.Errorf("current = %d, want clamped at last question", d.current)
	}
}

func TestDetailScreen_EmptyItem(t *testing.T) {
	d := New(progress.HistoryItem{})
	view := d.View(80, 24)
	if !strings.Contains(view, "soru kaydı yok") {
		t.Errorf("expected empty message, got %q", view)
	}
}
