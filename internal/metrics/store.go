package metrics

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	metricsdb "menu-engine/internal/metrics/metrics_db"
)

// GenerationRun records the totals of one weekly batch.
type GenerationRun struct {
	ID                  string    `json:"id"`
	WeekStart           string    `json:"week_start"`
	WeekEnd             string    `json:"week_end"`
	ForceRegenerate     bool      `json:"force_regenerate"`
	Generated           int       `json:"generated"`
	Skipped             int       `json:"skipped"`
	Failed              int       `json:"failed"`
	NotificationsSent   int       `json:"notifications_sent"`
	NotificationsFailed int       `json:"notifications_failed"`
	LatencyMS           int64     `json:"latency_ms"`
	StartedAt           time.Time `json:"started_at"`
}

// Store handles persistence of batch run metrics to SQLite.
type Store struct {
	queries *metricsdb.Queries
	db      *sql.DB
}

// NewStore initializes the Store with an existing database connection.
func NewStore(db *sql.DB) *Store {
	return &Store{
		queries: metricsdb.New(db),
		db:      db,
	}
}

// Record saves a run and returns its id. A missing id or start time is filled in.
func (s *Store) Record(ctx context.Context, r GenerationRun) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.StartedAt.IsZero() {
		r.StartedAt = time.Now()
	}

	err := s.queries.InsertGenerationRun(ctx, metricsdb.InsertGenerationRunParams{
		ID:                  r.ID,
		WeekStart:           r.WeekStart,
		WeekEnd:             r.WeekEnd,
		ForceRegenerate:     r.ForceRegenerate,
		Generated:           int64(r.Generated),
		Skipped:             int64(r.Skipped),
		Failed:              int64(r.Failed),
		NotificationsSent:   int64(r.NotificationsSent),
		NotificationsFailed: int64(r.NotificationsFailed),
		LatencyMs:           r.LatencyMS,
		StartedAt:           r.StartedAt.UTC(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to record generation run: %w", err)
	}
	return r.ID, nil
}

// Recent returns up to limit runs, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]GenerationRun, error) {
	rows, err := s.queries.ListRecentGenerationRuns(ctx, int64(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list generation runs: %w", err)
	}

	runs := make([]GenerationRun, 0, len(rows))
	for _, r := range rows {
		runs = append(runs, GenerationRun{
			ID:                  r.ID,
			WeekStart:           r.WeekStart,
			WeekEnd:             r.WeekEnd,
			ForceRegenerate:     r.ForceRegenerate,
			Generated:           int(r.Generated),
			Skipped:             int(r.Skipped),
			Failed:              int(r.Failed),
			NotificationsSent:   int(r.NotificationsSent),
			NotificationsFailed: int(r.NotificationsFailed),
			LatencyMS:           r.LatencyMs,
			StartedAt:           r.StartedAt,
		})
	}
	return runs, nil
}

// Cleanup removes runs older than the specified number of days.
func (s *Store) Cleanup(ctx context.Context, olderThanDays int) (int64, error) {
	threshold := time.Now().UTC().AddDate(0, 0, -olderThanDays)
	n, err := s.queries.CleanupGenerationRuns(ctx, threshold)
	if err != nil {
		return 0, fmt.Errorf("failed to clean up generation runs: %w", err)
	}
	return n, nil
}
