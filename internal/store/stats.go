package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/ent"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/ent/statssnapshot"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/progress"
)

// keepSnapshots is how many stats rows survive a save. The newest row
// is authoritative; the rest are a short undo window.
const keepSnapshots = 5

// StatsRepo persists the progress aggregate as JSON snapshot rows. It
// implements progress.Store.
type StatsRepo struct {
	client *ent.Client
}

// Load returns the most recent aggregate, or (nil, nil) when nothing
// has been saved yet. A row that cannot be decoded back into the
// UserStats shape is reported as an error; the caller falls back to
// the zeroed default.
func (r *StatsRepo) Load(ctx context.Context) (*progress.UserStats, error) {
	row, err := r.client.StatsSnapshot.Query().
		Order(ent.Desc(statssnapshot.FieldTimestamp)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query stats snapshot: %w", err)
	}

	b, err := json.Marshal(row.Data)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot data: %w", err)
	}
	var stats progress.UserStats
	if err := json.Unmarshal(b, &stats); err != nil {
		return nil, fmt.Errorf("decode stats snapshot: %w", err)
	}
	if stats.Level < 1 {
		stats.Level = 1
	}
	if stats.History == nil {
		stats.History = []progress.HistoryItem{}
	}
	return &stats, nil
}

// Save writes a new snapshot row and prunes old ones.
func (r *StatsRepo) Save(ctx context.Context, stats *progress.UserStats) error {
	data, err := statsToMap(stats)
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}

	if _, err := r.client.StatsSnapshot.Create().SetData(data).Save(ctx); err != nil {
		return fmt.Errorf("save stats snapshot: %w", err)
	}

	return r.prune(ctx, keepSnapshots)
}

func (r *StatsRepo) prune(ctx context.Context, keep int) error {
	old, err := r.client.StatsSnapshot.Query().
		Order(ent.Desc(statssnapshot.FieldTimestamp)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	if len(old) == 0 {
		return nil
	}

	_, err = r.client.StatsSnapshot.Delete().
		Where(statssnapshot.TimestampLTE(old[0].Timestamp)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

// statsToMap converts UserStats to map[string]any for ent JSON storage.
func statsToMap(stats *progress.UserStats) (map[string]any, error) {
	b, err := json.Marshal(stats)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}
