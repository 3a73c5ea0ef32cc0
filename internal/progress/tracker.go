package progress

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/generate"
)

// Store persists the UserStats aggregate. Load tolerates missing or
// unreadable records by returning the zeroed default.
type Store interface {
	Load(ctx context.Context) (*UserStats, error)
	Save(ctx context.Context, stats *UserStats) error
}

// Attempt carries everything the tracker needs to record one
// submitted quiz.
type Attempt struct {
	Subject    string
	UnitName   string
	Topics     []string
	Difficulty generate.Difficulty
	Questions  []generate.Question
	Answers    map[string]int
	Score      int
	Total      int
}

// Tracker owns the in-memory UserStats for the life of the process
// and is its only mutator. Load once at startup, Commit after every
// submission.
type Tracker struct {
	store Store
	stats *UserStats
	now   func() time.Time
}

// NewTracker creates a Tracker over the given store.
func NewTracker(store Store) *Tracker {
	return &Tracker{store: store, now: time.Now}
}

// Load reads the persisted aggregate. Any read failure falls back to
// the zeroed default; progress resumes from scratch rather than
// blocking startup.
func (t *Tracker) Load(ctx context.Context) *UserStats {
	stats, err := t.store.Load(ctx)
	if err != nil || stats == nil {
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to load progress, starting fresh: %v\n", err)
		}
		stats = DefaultStats()
	}
	t.stats = stats
	return t.stats
}

// Stats returns the current aggregate, loading it first if needed.
func (t *Tracker) Stats(ctx context.Context) *UserStats {
	if t.stats == nil {
		return t.Load(ctx)
	}
	return t.stats
}

// Commit folds a submitted attempt into the aggregate and writes it
// back. A write failure is logged and otherwise ignored: the result
// still shows, this attempt's progress may be lost.
func (t *Tracker) Commit(ctx context.Context, attempt Attempt) (*UserStats, HistoryItem) {
	stats := t.Stats(ctx)

	item := HistoryItem{
		ID:         uuid.New().String(),
		Date:       t.now(),
		Subject:    attempt.Subject,
		UnitName:   attempt.UnitName,
		Topics:     attempt.Topics,
		Score:      attempt.Score,
		Total:      attempt.Total,
		Difficulty: attempt.Difficulty,
		Questions:  attempt.Questions,
		Answers:    attempt.Answers,
	}
	Apply(stats, item)

	if err := t.store.Save(ctx, stats); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to save progress: %v\n", err)
	}

	return stats, item
}

// ResetAll clears the aggregate back to the zeroed default and
// persists the wipe.
func (t *Tracker) ResetAll(ctx context.Context) *UserStats {
	t.stats = DefaultStats()
	if err := t.store.Save(ctx, t.stats); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to save progress: %v\n", err)
	}
	return t.stats
}
