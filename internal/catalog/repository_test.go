package catalog

import (
	"context"
	"errors"
	"testing"

	"menu-engine/internal/testutil"
)

func TestRepository(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	repo := NewRepository(db)

	light := testutil.CreateMeal(t, db, testutil.MealSeed{Name: "Salad", Type: "lunch", Calories: 350})
	mid := testutil.CreateMeal(t, db, testutil.MealSeed{Name: "Bowl", Type: "lunch", Calories: 500})
	heavy := testutil.CreateMeal(t, db, testutil.MealSeed{Name: "Lasagna", Type: "lunch", Calories: 800})
	testutil.CreateMeal(t, db, testutil.MealSeed{Name: "Retired", Type: "lunch", Calories: 450, Unavailable: true})
	testutil.CreateMeal(t, db, testutil.MealSeed{Name: "Pizza slice", Type: "lunch", Calories: 480, IsMenuItem: true})
	soup := testutil.CreateMeal(t, db, testutil.MealSeed{Name: "Soup", Type: "dinner", Calories: 300})

	t.Run("GetMeal", func(t *testing.T) {
		m, err := repo.GetMeal(ctx, soup)
		if err != nil {
			t.Fatalf("GetMeal failed: %v", err)
		}
		if m.Name != "Soup" || m.Type != MealTypeDinner || m.Calories != 300 || !m.Available {
			t.Errorf("Unexpected meal %+v", m)
		}
		if _, err := repo.GetMeal(ctx, 9999); !errors.Is(err, ErrMealNotFound) {
			t.Errorf("Expected ErrMealNotFound, got %v", err)
		}
	})

	t.Run("ListPlanEligible", func(t *testing.T) {
		meals, err := repo.ListPlanEligible(ctx, MealTypeLunch, 10)
		if err != nil {
			t.Fatalf("ListPlanEligible failed: %v", err)
		}
		want := []int64{light, mid, heavy}
		if len(meals) != len(want) {
			t.Fatalf("Expected %d eligible lunches, got %+v", len(want), meals)
		}
		for i, id := range want {
			if meals[i].ID != id {
				t.Errorf("Position %d: expected meal %d, got %d", i, id, meals[i].ID)
			}
		}
		limited, _ := repo.ListPlanEligible(ctx, MealTypeLunch, 2)
		if len(limited) != 2 {
			t.Errorf("Expected limit to cap results at 2, got %d", len(limited))
		}
	})

	t.Run("ListSubstitutes", func(t *testing.T) {
		within, err := repo.ListSubstitutes(ctx, MealTypeLunch, mid, &CalorieRange{Min: 400, Max: 600}, 10)
		if err != nil {
			t.Fatalf("ListSubstitutes failed: %v", err)
		}
		if len(within) != 0 {
			t.Errorf("Expected no lunch in 400..600 besides the original, got %+v", within)
		}
		all, err := repo.ListSubstitutes(ctx, MealTypeLunch, mid, nil, 10)
		if err != nil {
			t.Fatalf("ListSubstitutes failed: %v", err)
		}
		if len(all) != 2 || all[0].ID != light || all[1].ID != heavy {
			t.Errorf("Expected salad and lasagna, got %+v", all)
		}
	})

	t.Run("GetStock", func(t *testing.T) {
		if _, err := repo.GetStock(ctx, light); !errors.Is(err, ErrNoStockRecord) {
			t.Errorf("Expected ErrNoStockRecord, got %v", err)
		}
		testutil.SetStock(t, db, light, 0, false)
		s, err := repo.GetStock(ctx, light)
		if err != nil {
			t.Fatalf("GetStock failed: %v", err)
		}
		if s.InStock() {
			t.Errorf("Expected zero quantity to be out of stock, got %+v", s)
		}
	})
}

func TestCalorieRangeContains(t *testing.T) {
	r := CalorieRange{Min: 400, Max: 600}
	for kcal, want := range map[int]bool{399: false, 400: true, 500: true, 600: true, 601: false} {
		if got := r.Contains(kcal); got != want {
			t.Errorf("Contains(%d) = %v, want %v", kcal, got, want)
		}
	}
}
