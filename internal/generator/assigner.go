package generator

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"menu-engine/internal/catalog"
	"menu-engine/internal/logger"
	"menu-engine/internal/menu"
	"menu-engine/internal/nutrition"
	"menu-engine/internal/stock"
)

// fallbackCandidateLimit caps the catalog query used when no plan covers a day.
const fallbackCandidateLimit = 20

type mealSource interface {
	GetMeal(ctx context.Context, id int64) (catalog.Meal, error)
	ListPlanEligible(ctx context.Context, mealType catalog.MealType, limit int) ([]catalog.Meal, error)
}

type dayMealWriter interface {
	AddMeal(ctx context.Context, dayID int64, meal menu.DayMeal) (int64, error)
}

type stockChecker interface {
	HasStock(ctx context.Context, mealID int64) bool
}

type substituteFinder interface {
	FindSubstitute(ctx context.Context, q stock.Query) (*catalog.Meal, error)
}

type substitutionRecorder interface {
	Record(ctx context.Context, s stock.Substitution) (int64, error)
}

// DayInput is everything needed to fill one menu day.
type DayInput struct {
	UserID       int64
	WeeklyMenuID int64
	DayID        int64
	Day          menu.Weekday
	Date         string
	Plan         *nutrition.Plan
	MealsPerDay  int
}

// DayAssigner fills a menu day from the user's plan or, failing that, from the catalog.
type DayAssigner struct {
	catalog  mealSource
	menus    dayMealWriter
	oracle   stockChecker
	finder   substituteFinder
	recorder substitutionRecorder
	log      *logger.Logger

	// pick returns a uniform index in [0, n).
	pick func(n int) int
}

// NewDayAssigner creates a new DayAssigner.
func NewDayAssigner(
	c mealSource,
	menus dayMealWriter,
	oracle stockChecker,
	finder substituteFinder,
	recorder substitutionRecorder,
	log *logger.Logger,
) *DayAssigner {
	return &DayAssigner{
		catalog:  c,
		menus:    menus,
		oracle:   oracle,
		finder:   finder,
		recorder: recorder,
		log:      log.With("component", "DayMealAssigner"),
		pick:     rand.IntN,
	}
}

// SlotType is the meal type served in a fallback slot: lunch first, then alternating.
func SlotType(slot int) catalog.MealType {
	if slot%2 == 0 {
		return catalog.MealTypeLunch
	}
	return catalog.MealTypeDinner
}

// AssignDay inserts the meals of one day and returns how many were inserted.
func (a *DayAssigner) AssignDay(ctx context.Context, in DayInput) (int, error) {
	if planDay, ok := in.Plan.Day(int(in.Day)); ok {
		return a.assignFromPlan(ctx, in, planDay)
	}
	return a.assignFromCatalog(ctx, in)
}

func (a *DayAssigner) assignFromPlan(ctx context.Context, in DayInput, planDay nutrition.PlanDay) (int, error) {
	meals := planDay.Meals
	if len(meals) > in.MealsPerDay {
		meals = meals[:in.MealsPerDay]
	}

	inserted := 0
	for slot, pm := range meals {
		original, err := a.catalog.GetMeal(ctx, pm.MealID)
		if err != nil {
			if errors.Is(err, catalog.ErrMealNotFound) {
				a.log.Warn("Plan meal missing from catalog, skipping slot",
					"user_id", in.UserID, "day", in.Day.String(), "meal_id", pm.MealID)
				continue
			}
			return inserted, err
		}

		dm, err := a.resolveStock(ctx, in, original, pm.Calories)
		if err != nil {
			return inserted, err
		}
		dm.OrderIndex = slot
		if _, err := a.menus.AddMeal(ctx, in.DayID, dm); err != nil {
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}

// resolveStock keeps a stocked plan meal, otherwise swaps in a recorded substitute.
// Without a substitute the original is kept.
func (a *DayAssigner) resolveStock(ctx context.Context, in DayInput, original catalog.Meal, plannedCalories int) (menu.DayMeal, error) {
	keep := menu.DayMeal{MealID: original.ID, IsOriginal: true}
	if a.oracle.HasStock(ctx, original.ID) {
		return keep, nil
	}

	sub, err := a.finder.FindSubstitute(ctx, stock.Query{
		OriginalMealID:    original.ID,
		Type:              original.Type,
		ReferenceCalories: plannedCalories,
	})
	if err != nil {
		return menu.DayMeal{}, fmt.Errorf("failed to find substitute for meal %d: %w", original.ID, err)
	}
	if sub == nil {
		a.log.Info("No substitute found, keeping out-of-stock meal",
			"user_id", in.UserID, "day", in.Day.String(), "meal_id", original.ID)
		return keep, nil
	}

	if _, err := a.recorder.Record(ctx, stock.Substitution{
		UserID:       in.UserID,
		WeeklyMenuID: in.WeeklyMenuID,
		Original:     original,
		Substitute:   *sub,
	}); err != nil {
		return menu.DayMeal{}, err
	}

	originalID := original.ID
	return menu.DayMeal{MealID: sub.ID, IsOriginal: false, OriginalMealID: &originalID}, nil
}

func (a *DayAssigner) assignFromCatalog(ctx context.Context, in DayInput) (int, error) {
	inserted := 0
	for slot := 0; slot < in.MealsPerDay; slot++ {
		mealType := SlotType(slot)
		candidates, err := a.catalog.ListPlanEligible(ctx, mealType, fallbackCandidateLimit)
		if err != nil {
			return inserted, err
		}
		if len(candidates) == 0 {
			a.log.Warn("No catalog meals for slot, skipping",
				"user_id", in.UserID, "day", in.Day.String(), "slot", slot, "type", string(mealType))
			continue
		}

		chosen := a.choose(ctx, candidates)
		if _, err := a.menus.AddMeal(ctx, in.DayID, menu.DayMeal{
			MealID:     chosen.ID,
			OrderIndex: slot,
			IsOriginal: true,
		}); err != nil {
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}

// choose picks uniformly among stocked candidates, or the first candidate when none is stocked.
func (a *DayAssigner) choose(ctx context.Context, candidates []catalog.Meal) catalog.Meal {
	stocked := make([]catalog.Meal, 0, len(candidates))
	for _, c := range candidates {
		if a.oracle.HasStock(ctx, c.ID) {
			stocked = append(stocked, c)
		}
	}
	if len(stocked) == 0 {
		return candidates[0]
	}
	return stocked[a.pick(len(stocked))]
}
