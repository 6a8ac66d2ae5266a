package stock

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"menu-engine/internal/catalog"
	"menu-engine/internal/logger"
	stockdb "menu-engine/internal/stock/stock_db"
)

const StatusApproved = "approved"

// Substitution links a served replacement to the meal it stands in for.
type Substitution struct {
	UserID       int64
	WeeklyMenuID int64
	Original     catalog.Meal
	Substitute   catalog.Meal
}

// SubstitutionRecord is a persisted substitution.
type SubstitutionRecord struct {
	ID               int64
	OriginalMealID   int64
	SubstituteMealID int64
	WeeklyMenuID     int64
	Status           string
	ApprovedBy       *int64
	ApprovedAt       time.Time
}

// SubstitutionAlerter is notified after every recorded substitution.
type SubstitutionAlerter interface {
	SubstitutionAlert(ctx context.Context, userID, weeklyMenuID int64, originalName, substituteName string) error
}

// Recorder persists automatic, self-approved substitutions.
type Recorder struct {
	queries *stockdb.Queries
	alerter SubstitutionAlerter
	log     *logger.Logger
	now     func() time.Time
}

// NewRecorder creates a new Recorder.
func NewRecorder(d *sql.DB, alerter SubstitutionAlerter, log *logger.Logger) *Recorder {
	return &Recorder{
		queries: stockdb.New(d),
		alerter: alerter,
		log:     log.With("component", "SubstitutionRecorder"),
		now:     time.Now,
	}
}

// Record inserts an approved substitution and raises the substitution alert.
// Alert failures are logged only; the substitution row is what matters.
func (r *Recorder) Record(ctx context.Context, s Substitution) (int64, error) {
	id, err := r.queries.InsertMealSubstitution(ctx, stockdb.InsertMealSubstitutionParams{
		OriginalMealID:   s.Original.ID,
		SubstituteMealID: s.Substitute.ID,
		WeeklyMenuID:     s.WeeklyMenuID,
		Status:           StatusApproved,
		ApprovedAt:       sql.NullTime{Time: r.now().UTC(), Valid: true},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to insert substitution %d->%d: %w", s.Original.ID, s.Substitute.ID, err)
	}

	if err := r.alerter.SubstitutionAlert(ctx, s.UserID, s.WeeklyMenuID, s.Original.Name, s.Substitute.Name); err != nil {
		r.log.Warn("Substitution alert failed", "substitution_id", id, "user_id", s.UserID, "error", err)
	}
	return id, nil
}

// ListByMenu returns the substitutions recorded for a weekly menu.
func (r *Recorder) ListByMenu(ctx context.Context, weeklyMenuID int64) ([]SubstitutionRecord, error) {
	rows, err := r.queries.ListSubstitutionsByMenu(ctx, weeklyMenuID)
	if err != nil {
		return nil, fmt.Errorf("failed to list substitutions for menu %d: %w", weeklyMenuID, err)
	}
	records := make([]SubstitutionRecord, 0, len(rows))
	for _, row := range rows {
		rec := SubstitutionRecord{
			ID:               row.ID,
			OriginalMealID:   row.OriginalMealID,
			SubstituteMealID: row.SubstituteMealID,
			WeeklyMenuID:     row.WeeklyMenuID,
			Status:           row.Status,
			ApprovedAt:       row.ApprovedAt.Time,
		}
		if row.ApprovedBy.Valid {
			approver := row.ApprovedBy.Int64
			rec.ApprovedBy = &approver
		}
		records = append(records, rec)
	}
	return records, nil
}
