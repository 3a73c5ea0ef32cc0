package history

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/progress"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/router"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/screen"
)

type memStore struct {
	stats *progress.UserStats
}

func (m *memStore) Load(context.Context) (*progress.UserStats, error) { return m.stats, nil }
func (m *memStore) Save(context.Context, *progress.UserStats) error   { return nil }

func trackerWith(history ...progress.HistoryItem) *progress.Tracker {
	stats := progress.DefaultStats()
	stats.History = history
	return progress.NewTracker(&memStore{stats: stats})
}

func TestHistoryScreen_EmptyState(t *testing.T) {
	h := New(trackerWith())
	view := h.View(80, 24)
	if !strings.Contains(view, "Henüz hiç sınav çözmedin") {
		t.Errorf("expected empty-state message, got %q", view)
	}
}

func TestHistoryScreen_OpensDetailOnEnter(t *testing.T) {
	item := progress.HistoryItem{
		ID:       "h1",
		Date:     time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		Subject:  "Matematik",
		UnitName: "Sayılar",
		Score:    3,
		Total:    5,
	}
	h := New(trackerWith(item))

	var scr screen.Screen = h
	_, cmd := scr.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Errorf("msg = %T, want PushScreenMsg", cmd())
	}
}

func TestHistoryScreen_ListShowsScore(t *testing.T) {
	item := progress.HistoryItem{
		ID:       "h1",
		Date:     time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		Subject:  "Matematik",
		UnitName: "Sayılar",
		Score:    3,
		Total:    5,
	}
	h := New(trackerWith(item))
	view := h.View(80, 24)
	if !strings.Contains(view, "3/5 doğru") {
		t.Errorf("expected score in list, got %q", view)
	}
	if !strings.Contains(view, "01.03.2026") {
		t.Errorf("expected date in list, got %q", view)
	}
}
