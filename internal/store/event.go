package store

// Generation event infrastructure.
//
// Each event type lives in its own ent-managed table, so per-table
// auto-increment IDs can't establish cross-type ordering. The shared
// counter assigns a single increasing sequence to every event
// regardless of type. Uses raw SQL outside ent because ent doesn't
// support database-level atomic counters; the mutex serializes within
// the process, the RETURNING clause makes the increment atomic at the
// database level.

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/ent"
)

// GenerationEventData captures one batch generation request.
type GenerationEventData struct {
	Subject        string
	UnitName       string
	Topics         []string
	Difficulty     string
	RequestedCount int
	ReturnedCount  int
	Model          string
	LatencyMs      int64
	Success        bool
	ErrorMessage   string
}

// EventRepo provides append access to generation events.
type EventRepo interface {
	// AppendGeneration records one batch generation request.
	AppendGeneration(ctx context.Context, data GenerationEventData) error
}

// eventRepo implements EventRepo backed by ent and the global
// sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendGeneration(ctx context.Context, data GenerationEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.GenerationEvent.Create().
		SetSequence(seqNum).
		SetSubject(data.Subject).
		SetUnitName(data.UnitName).
		SetTopics(data.Topics).
		SetDifficulty(data.Difficulty).
		SetRequestedCount(data.RequestedCount).
		SetReturnedCount(data.ReturnedCount).
		SetModel(data.Model).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save generation event: %w", err)
	}

	return nil
}

// sequenceCounter manages the global monotonic sequence number shared
// across all event types.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}
