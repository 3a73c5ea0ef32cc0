package store

import (
	"context"
	"testing"
	"time"

	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/progress"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestStats_LoadEmpty(t *testing.T) {
	s := openTestStore(t)

	stats, err := s.StatsRepo().Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if stats != nil {
		t.Fatalf("stats = %+v, want nil before first save", stats)
	}
}

func TestStats_SaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.StatsRepo()
	ctx := context.Background()

	in := progress.DefaultStats()
	progress.Apply(in, progress.HistoryItem{
		ID:      "h1",
		Date:    time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		Subject: "Matematik",
		Score:   4,
		Total:   5,
	})

	if err := repo.Save(ctx, in); err != nil {
		t.Fatalf("save: %v", err)
	}

	out, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if out.Points != 100 || out.Level != 1 {
		t.Errorf("loaded stats = %+v", out)
	}
	if len(out.History) != 1 || out.History[0].ID != "h1" {
		t.Errorf("history = %+v", out.History)
	}
}

func TestStats_LatestSnapshotWins(t *testing.T) {
	s := openTestStore(t)
	repo := s.StatsRepo()
	ctx := context.Background()

	stats := progress.DefaultStats()
	for i := 0; i < 3; i++ {
		progress.Apply(stats, progress.HistoryItem{
			ID:    "h",
			Date:  time.Now(),
			Score: 2, Total: 5,
		})
		if err := repo.Save(ctx, stats); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	out, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if out.Points != 150 {
		t.Errorf("points = %d, want the latest save (150)", out.Points)
	}
}

func TestStats_CorruptRowFallsBackThroughTracker(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// Write a snapshot whose data is not a UserStats shape.
	_, err := s.Client().StatsSnapshot.Create().
		SetData(map[string]any{"points": "çok"}).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed corrupt row: %v", err)
	}

	stats := progress.NewTracker(s.StatsRepo()).Load(ctx)
	if stats.Points != 0 || stats.Level != 1 || len(stats.History) != 0 {
		t.Errorf("stats = %+v, want zeroed default on corrupt snapshot", stats)
	}
}

func TestEvents_AppendGeneration(t *testing.T) {
	s := openTestStore(t)
	events, err := s.EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		err := events.AppendGeneration(ctx, GenerationEventData{
			Subject:        "Türkçe",
			UnitName:       "Okuma Kültürü",
			Topics:         []string{"Söz Varlığı"},
			Difficulty:     "easy",
			RequestedCount: 5,
			ReturnedCount:  5,
			Model:          "gemini-2.0-flash",
			LatencyMs:      1200,
			Success:        true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	rows, err := s.Client().GenerationEvent.Query().All(ctx)
	if err != nil {
		t.Fatalf("query events: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("events = %d, want 2", len(rows))
	}
	if rows[0].Sequence == rows[1].Sequence {
		t.Error("sequence numbers not unique")
	}
}
