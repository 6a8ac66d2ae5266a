package menu

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"menu-engine/internal/database"
	menudb "menu-engine/internal/menu/menu_db"
)

const (
	StatusGenerated = "generated"
	GeneratedByAuto = "auto"
)

// ErrAlreadyGenerated is returned by Create when a menu for the same user and week exists.
var ErrAlreadyGenerated = errors.New("weekly menu already generated for this week")

// WeeklyMenu is the generated schedule of one user for one week.
type WeeklyMenu struct {
	ID               int64
	UserID           int64
	SubscriptionID   int64
	WeekStart        string
	WeekEnd          string
	Status           string
	GeneratedBy      string
	NotificationSent bool
	Days             []Day
}

// Day is one concrete date of a weekly menu.
type Day struct {
	ID        int64
	DayNumber Weekday
	Date      string
	Meals     []DayMeal
}

// DayMeal is a scheduled meal. OriginalMealID is set when the meal substitutes another.
type DayMeal struct {
	ID             int64
	MealID         int64
	OrderIndex     int
	IsOriginal     bool
	OriginalMealID *int64
}

// NewMenu carries the header fields of a menu about to be generated.
type NewMenu struct {
	UserID         int64
	SubscriptionID int64
	WeekStart      string
	WeekEnd        string
}

// Repository persists the weekly menu aggregate.
type Repository struct {
	queries *menudb.Queries
	db      *sql.DB
}

// NewRepository creates a new Repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{
		queries: menudb.New(d),
		db:      d,
	}
}

// FindByUserWeek returns the header of the user's menu for weekStart, or nil if none exists.
func (r *Repository) FindByUserWeek(ctx context.Context, userID int64, weekStart string) (*WeeklyMenu, error) {
	row, err := r.queries.GetWeeklyMenuByUserWeek(ctx, menudb.GetWeeklyMenuByUserWeekParams{
		UserID:        userID,
		WeekStartDate: weekStart,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up menu for user %d week %s: %w", userID, weekStart, err)
	}
	m := fromRow(row)
	return &m, nil
}

// Create inserts the menu header. A concurrent or earlier run holding the same
// (user, week) yields ErrAlreadyGenerated.
func (r *Repository) Create(ctx context.Context, m NewMenu) (int64, error) {
	id, err := r.queries.InsertWeeklyMenu(ctx, menudb.InsertWeeklyMenuParams{
		UserID:         m.UserID,
		SubscriptionID: sql.NullInt64{Int64: m.SubscriptionID, Valid: m.SubscriptionID > 0},
		WeekStartDate:  m.WeekStart,
		WeekEndDate:    m.WeekEnd,
		Status:         StatusGenerated,
		GeneratedBy:    GeneratedByAuto,
	})
	if err != nil {
		if database.IsUniqueViolation(err) {
			return 0, ErrAlreadyGenerated
		}
		return 0, fmt.Errorf("failed to insert weekly menu: %w", err)
	}
	return id, nil
}

// AddDay inserts one day row of a menu.
func (r *Repository) AddDay(ctx context.Context, menuID int64, day Weekday, date string) (int64, error) {
	if !day.Valid() {
		return 0, fmt.Errorf("invalid day number %d", int(day))
	}
	id, err := r.queries.InsertWeeklyMenuDay(ctx, menudb.InsertWeeklyMenuDayParams{
		WeeklyMenuID: menuID,
		DayNumber:    int64(day),
		Date:         date,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to insert %s of menu %d: %w", day, menuID, err)
	}
	return id, nil
}

// AddMeal schedules a meal on a menu day.
func (r *Repository) AddMeal(ctx context.Context, dayID int64, meal DayMeal) (int64, error) {
	var original sql.NullInt64
	if meal.OriginalMealID != nil {
		original = sql.NullInt64{Int64: *meal.OriginalMealID, Valid: true}
	}
	id, err := r.queries.InsertWeeklyMenuDayMeal(ctx, menudb.InsertWeeklyMenuDayMealParams{
		WeeklyMenuDayID: dayID,
		MealID:          meal.MealID,
		OrderIndex:      int64(meal.OrderIndex),
		IsOriginal:      meal.IsOriginal,
		OriginalMealID:  original,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to insert meal %d on day %d: %w", meal.MealID, dayID, err)
	}
	return id, nil
}

// Delete removes a menu with its days, day meals and substitutions in one transaction.
func (r *Repository) Delete(ctx context.Context, menuID int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	q := r.queries.WithTx(tx)
	if err := q.DeleteSubstitutionsByMenu(ctx, menuID); err != nil {
		return fmt.Errorf("failed to delete substitutions of menu %d: %w", menuID, err)
	}
	if err := q.DeleteDayMealsByMenu(ctx, menuID); err != nil {
		return fmt.Errorf("failed to delete day meals of menu %d: %w", menuID, err)
	}
	if err := q.DeleteDaysByMenu(ctx, menuID); err != nil {
		return fmt.Errorf("failed to delete days of menu %d: %w", menuID, err)
	}
	if _, err := q.DeleteWeeklyMenu(ctx, menuID); err != nil {
		return fmt.Errorf("failed to delete menu %d: %w", menuID, err)
	}
	return tx.Commit()
}

// MarkNotificationSent flags a menu whose owner was notified.
func (r *Repository) MarkNotificationSent(ctx context.Context, menuID int64) error {
	if err := r.queries.MarkNotificationSent(ctx, menuID); err != nil {
		return fmt.Errorf("failed to mark menu %d notified: %w", menuID, err)
	}
	return nil
}

// Get loads the full aggregate, or nil if the menu does not exist.
func (r *Repository) Get(ctx context.Context, menuID int64) (*WeeklyMenu, error) {
	row, err := r.queries.GetWeeklyMenu(ctx, menuID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get menu %d: %w", menuID, err)
	}
	m := fromRow(row)

	days, err := r.queries.ListDaysByMenu(ctx, menuID)
	if err != nil {
		return nil, fmt.Errorf("failed to list days of menu %d: %w", menuID, err)
	}
	meals, err := r.queries.ListDayMealsByMenu(ctx, menuID)
	if err != nil {
		return nil, fmt.Errorf("failed to list meals of menu %d: %w", menuID, err)
	}

	byDay := make(map[int64][]DayMeal, len(days))
	for _, dm := range meals {
		meal := DayMeal{
			ID:         dm.ID,
			MealID:     dm.MealID,
			OrderIndex: int(dm.OrderIndex),
			IsOriginal: dm.IsOriginal,
		}
		if dm.OriginalMealID.Valid {
			original := dm.OriginalMealID.Int64
			meal.OriginalMealID = &original
		}
		byDay[dm.WeeklyMenuDayID] = append(byDay[dm.WeeklyMenuDayID], meal)
	}
	for _, d := range days {
		m.Days = append(m.Days, Day{
			ID:        d.ID,
			DayNumber: Weekday(d.DayNumber),
			Date:      d.Date,
			Meals:     byDay[d.ID],
		})
	}
	return &m, nil
}

func fromRow(row menudb.WeeklyMenu) WeeklyMenu {
	return WeeklyMenu{
		ID:               row.ID,
		UserID:           row.UserID,
		SubscriptionID:   row.SubscriptionID.Int64,
		WeekStart:        row.WeekStartDate,
		WeekEnd:          row.WeekEndDate,
		Status:           row.Status,
		GeneratedBy:      row.GeneratedBy,
		NotificationSent: row.NotificationSent,
	}
}
