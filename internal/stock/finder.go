package stock

import (
	"context"
	"fmt"

	"menu-engine/internal/catalog"
	"menu-engine/internal/logger"
)

const (
	// CalorieTolerance is the +/- kcal window around the reference calories.
	CalorieTolerance = 100
	primaryLimit     = 20
	widenedLimit     = 10
)

type mealCatalog interface {
	GetMeal(ctx context.Context, id int64) (catalog.Meal, error)
	ListSubstitutes(ctx context.Context, mealType catalog.MealType, excludeID int64, withinCalories *catalog.CalorieRange, limit int) ([]catalog.Meal, error)
}

// Query describes the meal that needs replacing.
type Query struct {
	OriginalMealID int64
	Type           catalog.MealType
	// ReferenceCalories centres the calorie window. Zero means "use the original meal's calories".
	ReferenceCalories int
}

// Finder searches the catalog for a stocked replacement of an out-of-stock meal.
type Finder struct {
	catalog mealCatalog
	oracle  *Oracle
	log     *logger.Logger
}

// NewFinder creates a new Finder.
func NewFinder(c mealCatalog, oracle *Oracle, log *logger.Logger) *Finder {
	return &Finder{catalog: c, oracle: oracle, log: log.With("component", "SubstitutionFinder")}
}

// FindSubstitute returns the first stocked candidate of the same type, first inside the
// calorie window and, only when that window holds no candidates at all, among any calories.
// A nil meal with a nil error means no substitute exists.
func (f *Finder) FindSubstitute(ctx context.Context, q Query) (*catalog.Meal, error) {
	reference := q.ReferenceCalories
	if reference <= 0 {
		original, err := f.catalog.GetMeal(ctx, q.OriginalMealID)
		if err != nil {
			return nil, fmt.Errorf("failed to load original meal: %w", err)
		}
		reference = original.Calories
	}

	window := CalorieWindow(reference)
	candidates, err := f.catalog.ListSubstitutes(ctx, q.Type, q.OriginalMealID, &window, primaryLimit)
	if err != nil {
		return nil, err
	}

	if len(candidates) == 0 {
		f.log.Debug("No candidates in calorie window, widening search",
			"meal_id", q.OriginalMealID, "min_kcal", window.Min, "max_kcal", window.Max)
		candidates, err = f.catalog.ListSubstitutes(ctx, q.Type, q.OriginalMealID, nil, widenedLimit)
		if err != nil {
			return nil, err
		}
	}

	for _, c := range candidates {
		if f.oracle.HasStock(ctx, c.ID) {
			meal := c
			return &meal, nil
		}
	}
	return nil, nil
}

// CalorieWindow returns the inclusive substitution window around reference.
func CalorieWindow(reference int) catalog.CalorieRange {
	return catalog.CalorieRange{Min: reference - CalorieTolerance, Max: reference + CalorieTolerance}
}
