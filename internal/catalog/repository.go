package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	catalogdb "menu-engine/internal/catalog/catalog_db"
)

var (
	// ErrMealNotFound is returned when a meal id has no catalog row.
	ErrMealNotFound = errors.New("meal not found")
	// ErrNoStockRecord is returned when a meal has no stock ledger row.
	ErrNoStockRecord = errors.New("no stock record")
)

// Repository is a read-only database-backed view of the meal catalog and stock ledger.
type Repository struct {
	queries *catalogdb.Queries
	db      *sql.DB
}

// NewRepository creates a new Repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{
		queries: catalogdb.New(d),
		db:      d,
	}
}

// GetMeal retrieves a meal by its ID.
func (r *Repository) GetMeal(ctx context.Context, id int64) (Meal, error) {
	row, err := r.queries.GetMeal(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Meal{}, fmt.Errorf("meal %d: %w", id, ErrMealNotFound)
		}
		return Meal{}, fmt.Errorf("failed to get meal %d: %w", id, err)
	}
	return toMeal(row)
}

// ListPlanEligible returns up to limit available, non-menu-item meals of the given type.
func (r *Repository) ListPlanEligible(ctx context.Context, mealType MealType, limit int) ([]Meal, error) {
	rows, err := r.queries.ListPlanEligibleMealsByType(ctx, catalogdb.ListPlanEligibleMealsByTypeParams{
		Type:  string(mealType),
		Limit: int64(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list %s meals: %w", mealType, err)
	}
	return toMeals(rows)
}

// ListSubstitutes returns plan-eligible meals of the given type excluding excludeID.
// When withinCalories is non-nil only meals in the inclusive [min, max] range are returned.
func (r *Repository) ListSubstitutes(ctx context.Context, mealType MealType, excludeID int64, withinCalories *CalorieRange, limit int) ([]Meal, error) {
	var (
		rows []catalogdb.Meal
		err  error
	)
	if withinCalories != nil {
		rows, err = r.queries.ListSubstituteCandidatesInRange(ctx, catalogdb.ListSubstituteCandidatesInRangeParams{
			Type:       string(mealType),
			ID:         excludeID,
			Calories:   int64(withinCalories.Min),
			Calories_2: int64(withinCalories.Max),
			Limit:      int64(limit),
		})
	} else {
		rows, err = r.queries.ListSubstituteCandidates(ctx, catalogdb.ListSubstituteCandidatesParams{
			Type:  string(mealType),
			ID:    excludeID,
			Limit: int64(limit),
		})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list substitute candidates for meal %d: %w", excludeID, err)
	}
	return toMeals(rows)
}

// GetStock retrieves the stock ledger row for a meal.
func (r *Repository) GetStock(ctx context.Context, mealID int64) (MealStock, error) {
	row, err := r.queries.GetMealStock(ctx, mealID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return MealStock{}, ErrNoStockRecord
		}
		return MealStock{}, fmt.Errorf("failed to get stock for meal %d: %w", mealID, err)
	}
	return MealStock{
		MealID:        row.MealID,
		StockQuantity: int(row.StockQuantity),
		IsOutOfStock:  row.IsOutOfStock,
	}, nil
}

// CalorieRange is an inclusive calorie window.
type CalorieRange struct {
	Min int
	Max int
}

// Contains reports whether kcal falls inside the window.
func (c CalorieRange) Contains(kcal int) bool {
	return kcal >= c.Min && kcal <= c.Max
}

func toMeal(row catalogdb.Meal) (Meal, error) {
	mealType, err := ParseMealType(row.Type)
	if err != nil {
		return Meal{}, fmt.Errorf("meal %d: %w", row.ID, err)
	}
	return Meal{
		ID:         row.ID,
		Name:       row.Name,
		Type:       mealType,
		Calories:   int(row.Calories),
		Available:  row.Available,
		IsMenuItem: row.IsMenuItem,
	}, nil
}

func toMeals(rows []catalogdb.Meal) ([]Meal, error) {
	meals := make([]Meal, 0, len(rows))
	for _, row := range rows {
		m, err := toMeal(row)
		if err != nil {
			return nil, err
		}
		meals = append(meals, m)
	}
	return meals, nil
}
