package progress

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

func attemptItem(score, total int, date time.Time) HistoryItem {
	return HistoryItem{
		ID:       fmt.Sprintf("h-%d-%d", score, total),
		Date:     date,
		Subject:  "Matematik",
		UnitName: "Kesirler",
		Score:    score,
		Total:    total,
	}
}

func TestApply_PointsLevelEvolution(t *testing.T) {
	stats := DefaultStats()
	day := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	Apply(stats, attemptItem(3, 5, day))

	if stats.Points != 75 {
		t.Errorf("points = %d, want 75", stats.Points)
	}
	if stats.Level != 1 {
		t.Errorf("level = %d, want 1", stats.Level)
	}
	if stats.CorrectAnswers != 3 || stats.TotalQuestions != 5 {
		t.Errorf("totals = %d/%d, want 3/5", stats.CorrectAnswers, stats.TotalQuestions)
	}
	if len(stats.History) != 1 {
		t.Fatalf("history = %d items, want 1", len(stats.History))
	}
}

func TestApply_LevelInvariantHolds(t *testing.T) {
	stats := DefaultStats()
	day := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	prevEvolution := 0
	for i := 0; i < 40; i++ {
		Apply(stats, attemptItem(10, 10, day))

		if want := stats.Points/LevelThreshold + 1; stats.Level != want {
			t.Fatalf("after %d attempts: level = %d, want %d (points %d)", i+1, stats.Level, want, stats.Points)
		}
		wantEvo := stats.Level / 4
		if wantEvo > MaxEvolution {
			wantEvo = MaxEvolution
		}
		if stats.Evolution != wantEvo {
			t.Fatalf("evolution = %d, want %d at level %d", stats.Evolution, wantEvo, stats.Level)
		}
		if stats.Evolution < prevEvolution {
			t.Fatalf("evolution regressed: %d -> %d", prevEvolution, stats.Evolution)
		}
		prevEvolution = stats.Evolution
	}

	if stats.Evolution != MaxEvolution {
		t.Errorf("evolution = %d, want saturated at %d", stats.Evolution, MaxEvolution)
	}
}

func TestApply_HistoryNewestFirstCapped(t *testing.T) {
	stats := DefaultStats()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	for i := 0; i < MaxHistory+10; i++ {
		item := attemptItem(1, 5, base.Add(time.Duration(i)*time.Minute))
		item.ID = fmt.Sprintf("attempt-%d", i)
		Apply(stats, item)
	}

	if len(stats.History) != MaxHistory {
		t.Fatalf("history = %d items, want capped at %d", len(stats.History), MaxHistory)
	}
	if stats.History[0].ID != fmt.Sprintf("attempt-%d", MaxHistory+9) {
		t.Errorf("history[0] = %s, want the newest attempt", stats.History[0].ID)
	}
	for i := 1; i < len(stats.History); i++ {
		if stats.History[i].Date.After(stats.History[i-1].Date) {
			t.Fatalf("history not newest-first at index %d", i)
		}
	}
}

func TestStreak(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 3, d, 20, 0, 0, 0, time.UTC)
	}
	tests := []struct {
		name string
		days []int
		want int
	}{
		{"first play", []int{1}, 1},
		{"same day twice", []int{1, 1}, 1},
		{"consecutive days", []int{1, 2, 3}, 3},
		{"gap resets", []int{1, 2, 5}, 1},
		{"resumes after gap", []int{1, 5, 6}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := DefaultStats()
			for _, d := range tt.days {
				Apply(stats, attemptItem(2, 5, day(d)))
			}
			if stats.Streak != tt.want {
				t.Errorf("streak = %d, want %d", stats.Streak, tt.want)
			}
		})
	}
}

// memStore is an in-memory Store for tracker tests.
type memStore struct {
	stats   *UserStats
	loadErr error
	saveErr error
	saves   int
}

func (m *memStore) Load(context.Context) (*UserStats, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.stats, nil
}

func (m *memStore) Save(_ context.Context, stats *UserStats) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.stats = stats
	return nil
}

func TestTracker_LoadFallsBackToDefault(t *testing.T) {
	tracker := NewTracker(&memStore{loadErr: errors.New("corrupt snapshot")})

	stats := tracker.Load(context.Background())

	if stats.Points != 0 || stats.Level != 1 || len(stats.History) != 0 {
		t.Errorf("fallback stats = %+v, want zeroed default", stats)
	}
}

func TestTracker_CommitPersists(t *testing.T) {
	store := &memStore{}
	tracker := NewTracker(store)

	stats, item := tracker.Commit(context.Background(), Attempt{
		Subject: "Matematik", UnitName: "Kesirler",
		Score: 4, Total: 5,
	})

	if stats.Points != 100 {
		t.Errorf("points = %d, want 100", stats.Points)
	}
	if item.ID == "" {
		t.Error("history item ID not assigned")
	}
	if store.saves != 1 {
		t.Errorf("saves = %d, want 1", store.saves)
	}
	if store.stats == nil || store.stats.Points != 100 {
		t.Error("committed stats not persisted")
	}
}

func TestTracker_SaveFailureDoesNotLoseResult(t *testing.T) {
	store := &memStore{saveErr: errors.New("disk full")}
	tracker := NewTracker(store)

	stats, _ := tracker.Commit(context.Background(), Attempt{Score: 2, Total: 5})

	// The in-memory aggregate still reflects the attempt.
	if stats.Points != 50 {
		t.Errorf("points = %d, want 50 despite write failure", stats.Points)
	}
}

func TestTracker_ResetAll(t *testing.T) {
	store := &memStore{}
	tracker := NewTracker(store)
	tracker.Commit(context.Background(), Attempt{Score: 5, Total: 5})

	stats := tracker.ResetAll(context.Background())

	if stats.Points != 0 || stats.Level != 1 || len(stats.History) != 0 {
		t.Errorf("reset stats = %+v, want zeroed default", stats)
	}
	if store.stats.Points != 0 {
		t.Error("wipe not persisted")
	}
}
