package nutrition

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	nutritiondb "menu-engine/internal/nutrition/nutrition_db"
)

// Plan is a user's active nutrition plan template, keyed by day number (1 = Monday).
type Plan struct {
	ID     int64
	UserID int64
	Name   string
	Days   map[int]PlanDay
}

// PlanDay holds the ordered meals planned for one weekday.
type PlanDay struct {
	ID        int64
	DayNumber int
	Meals     []PlanDayMeal
}

// PlanDayMeal references a catalog meal with a name/calorie snapshot taken when the plan was built.
type PlanDayMeal struct {
	MealID     int64
	MealName   string
	Calories   int
	OrderIndex int
}

// Day returns the plan day for dayNumber, if the plan covers it.
func (p *Plan) Day(dayNumber int) (PlanDay, bool) {
	if p == nil {
		return PlanDay{}, false
	}
	d, ok := p.Days[dayNumber]
	return d, ok
}

// Repository reads nutrition plans produced by the nutrition-profile calculator.
type Repository struct {
	queries *nutritiondb.Queries
	db      *sql.DB
}

// NewRepository creates a new Repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{
		queries: nutritiondb.New(d),
		db:      d,
	}
}

// ActivePlanForUser returns the most recently created active plan of a user,
// or nil when the user has none.
func (r *Repository) ActivePlanForUser(ctx context.Context, userID int64) (*Plan, error) {
	row, err := r.queries.GetLatestActivePlan(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active plan for user %d: %w", userID, err)
	}

	meals, err := r.queries.ListPlanDayMeals(ctx, row.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list meals of plan %d: %w", row.ID, err)
	}

	plan := &Plan{
		ID:     row.ID,
		UserID: row.UserID,
		Name:   row.Name,
		Days:   make(map[int]PlanDay),
	}
	for _, m := range meals {
		dayNumber := int(m.DayNumber)
		day := plan.Days[dayNumber]
		day.ID = m.PlanDayID
		day.DayNumber = dayNumber
		day.Meals = append(day.Meals, PlanDayMeal{
			MealID:     m.MealID,
			MealName:   m.MealName,
			Calories:   int(m.Calories),
			OrderIndex: int(m.OrderIndex),
		})
		plan.Days[dayNumber] = day
	}
	return plan, nil
}
