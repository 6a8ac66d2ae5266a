package nutrition

import (
	"context"
	"testing"

	"menu-engine/internal/testutil"
)

func TestActivePlanForUser(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	repo := NewRepository(db)

	userID := testutil.CreateUser(t, db, "Ana", "client")
	lunch := testutil.CreateMeal(t, db, testutil.MealSeed{Name: "Bowl", Type: "lunch", Calories: 500})
	dinner := testutil.CreateMeal(t, db, testutil.MealSeed{Name: "Soup", Type: "dinner", Calories: 300})

	t.Run("NoPlan", func(t *testing.T) {
		plan, err := repo.ActivePlanForUser(ctx, userID)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if plan != nil {
			t.Fatalf("Expected nil plan, got %+v", plan)
		}
		if _, ok := plan.Day(1); ok {
			t.Error("Expected nil plan to have no days")
		}
	})

	t.Run("LatestActivePlanWins", func(t *testing.T) {
		testutil.CreatePlan(t, db, userID, map[int][]testutil.PlanMealSeed{
			1: {{MealID: dinner, Name: "Soup", Calories: 300}},
		})
		latest := testutil.CreatePlan(t, db, userID, map[int][]testutil.PlanMealSeed{
			1: {{MealID: lunch, Name: "Bowl", Calories: 500}, {MealID: dinner, Name: "Soup", Calories: 300}},
			3: {{MealID: dinner, Name: "Soup", Calories: 300}},
		})

		plan, err := repo.ActivePlanForUser(ctx, userID)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if plan == nil || plan.ID != latest {
			t.Fatalf("Expected plan %d, got %+v", latest, plan)
		}
		monday, ok := plan.Day(1)
		if !ok || len(monday.Meals) != 2 {
			t.Fatalf("Expected 2 Monday meals, got %+v", monday)
		}
		if monday.Meals[0].MealID != lunch || monday.Meals[1].MealID != dinner {
			t.Errorf("Expected stored order lunch,dinner, got %+v", monday.Meals)
		}
		if _, ok := plan.Day(2); ok {
			t.Error("Expected no Tuesday in plan")
		}
	})
}
