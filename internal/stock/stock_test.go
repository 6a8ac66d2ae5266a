package stock

import (
	"context"
	"errors"
	"testing"

	"menu-engine/internal/catalog"
	"menu-engine/internal/logger"
	"menu-engine/internal/testutil"
)

func TestOracleCheck(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	oracle := NewOracle(catalog.NewRepository(db), logger.Nop())

	stocked := testutil.CreateMeal(t, db, testutil.MealSeed{Name: "Stocked"})
	testutil.SetStock(t, db, stocked, 5, false)
	empty := testutil.CreateMeal(t, db, testutil.MealSeed{Name: "Empty"})
	testutil.SetStock(t, db, empty, 0, false)
	flagged := testutil.CreateMeal(t, db, testutil.MealSeed{Name: "Flagged"})
	testutil.SetStock(t, db, flagged, 12, true)
	untracked := testutil.CreateMeal(t, db, testutil.MealSeed{Name: "Untracked"})

	tests := []struct {
		name   string
		mealID int64
		want   StockStatus
		has    bool
	}{
		{"Available", stocked, StatusAvailable, true},
		{"ZeroQuantity", empty, StatusOutOfStock, false},
		{"OutOfStockFlag", flagged, StatusOutOfStock, false},
		{"MissingRecordFailsOpen", untracked, StatusUnknown, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := oracle.Check(ctx, tt.mealID); got != tt.want {
				t.Errorf("Expected status %s, got %s", tt.want, got)
			}
			if got := oracle.HasStock(ctx, tt.mealID); got != tt.has {
				t.Errorf("Expected HasStock %v, got %v", tt.has, got)
			}
		})
	}
}

type failingStock struct{}

func (failingStock) GetStock(ctx context.Context, mealID int64) (catalog.MealStock, error) {
	return catalog.MealStock{}, errors.New("disk I/O error")
}

func TestOracleStorageErrorFailsOpen(t *testing.T) {
	oracle := NewOracle(failingStock{}, logger.Nop())
	if got := oracle.Check(context.Background(), 1); got != StatusUnknown {
		t.Errorf("Expected unknown status on storage error, got %s", got)
	}
	if !oracle.HasStock(context.Background(), 1) {
		t.Error("Expected storage errors to be treated as available")
	}
}

func TestFindSubstitute(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*Finder, func(testutil.MealSeed, int) int64) {
		db := testutil.NewDB(t)
		repo := catalog.NewRepository(db)
		finder := NewFinder(repo, NewOracle(repo, logger.Nop()), logger.Nop())
		create := func(m testutil.MealSeed, qty int) int64 {
			id := testutil.CreateMeal(t, db, m)
			testutil.SetStock(t, db, id, qty, qty == 0)
			return id
		}
		return finder, create
	}

	t.Run("StaysInsideCalorieWindow", func(t *testing.T) {
		finder, create := setup(t)
		original := create(testutil.MealSeed{Name: "Original", Type: "dinner", Calories: 500}, 0)
		create(testutil.MealSeed{Name: "TooRich", Type: "dinner", Calories: 601}, 10)
		create(testutil.MealSeed{Name: "InWindowEmpty", Type: "dinner", Calories: 450}, 0)
		want := create(testutil.MealSeed{Name: "InWindow", Type: "dinner", Calories: 400}, 3)

		got, err := finder.FindSubstitute(ctx, Query{OriginalMealID: original, Type: catalog.MealTypeDinner})
		if err != nil {
			t.Fatalf("FindSubstitute failed: %v", err)
		}
		if got == nil || got.ID != want {
			t.Fatalf("Expected substitute %d, got %+v", want, got)
		}
	})

	t.Run("NeverPicksOutsideWindowWhenWindowHasCandidates", func(t *testing.T) {
		finder, create := setup(t)
		original := create(testutil.MealSeed{Name: "Original", Type: "dinner", Calories: 500}, 0)
		create(testutil.MealSeed{Name: "InWindowEmpty", Type: "dinner", Calories: 600}, 0)
		create(testutil.MealSeed{Name: "TooRich", Type: "dinner", Calories: 601}, 10)

		got, err := finder.FindSubstitute(ctx, Query{OriginalMealID: original, Type: catalog.MealTypeDinner, ReferenceCalories: 500})
		if err != nil {
			t.Fatalf("FindSubstitute failed: %v", err)
		}
		if got != nil {
			t.Fatalf("Expected no substitute, got %+v", got)
		}
	})

	t.Run("WidensWhenWindowIsEmpty", func(t *testing.T) {
		finder, create := setup(t)
		original := create(testutil.MealSeed{Name: "Original", Type: "lunch", Calories: 500}, 0)
		create(testutil.MealSeed{Name: "OtherType", Type: "dinner", Calories: 500}, 10)
		create(testutil.MealSeed{Name: "MenuItem", Type: "lunch", Calories: 900, IsMenuItem: true}, 10)
		create(testutil.MealSeed{Name: "Unavailable", Type: "lunch", Calories: 900, Unavailable: true}, 10)
		want := create(testutil.MealSeed{Name: "Heavy", Type: "lunch", Calories: 900}, 10)

		got, err := finder.FindSubstitute(ctx, Query{OriginalMealID: original, Type: catalog.MealTypeLunch})
		if err != nil {
			t.Fatalf("FindSubstitute failed: %v", err)
		}
		if got == nil || got.ID != want {
			t.Fatalf("Expected widened substitute %d, got %+v", want, got)
		}
	})

	t.Run("CallerCaloriesOverrideOriginal", func(t *testing.T) {
		finder, create := setup(t)
		original := create(testutil.MealSeed{Name: "Original", Type: "lunch", Calories: 900}, 0)
		create(testutil.MealSeed{Name: "NearOriginal", Type: "lunch", Calories: 880}, 5)
		want := create(testutil.MealSeed{Name: "NearReference", Type: "lunch", Calories: 310}, 5)

		got, err := finder.FindSubstitute(ctx, Query{OriginalMealID: original, Type: catalog.MealTypeLunch, ReferenceCalories: 300})
		if err != nil {
			t.Fatalf("FindSubstitute failed: %v", err)
		}
		if got == nil || got.ID != want {
			t.Fatalf("Expected substitute %d, got %+v", want, got)
		}
	})
}

type recordingAlerter struct {
	calls []string
	err   error
}

func (a *recordingAlerter) SubstitutionAlert(ctx context.Context, userID, weeklyMenuID int64, originalName, substituteName string) error {
	a.calls = append(a.calls, originalName+"->"+substituteName)
	return a.err
}

func TestRecorder(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)

	userID := testutil.CreateUser(t, db, "Ana", "client")
	original := catalog.Meal{ID: testutil.CreateMeal(t, db, testutil.MealSeed{Name: "Lasagna", Type: "dinner"}), Name: "Lasagna"}
	substitute := catalog.Meal{ID: testutil.CreateMeal(t, db, testutil.MealSeed{Name: "Risotto", Type: "dinner"}), Name: "Risotto"}
	res, err := db.Exec(`INSERT INTO weekly_menus (user_id, week_start_date, week_end_date) VALUES (?, '2026-10-12', '2026-10-18')`, userID)
	if err != nil {
		t.Fatal(err)
	}
	menuID, _ := res.LastInsertId()

	alerter := &recordingAlerter{err: errors.New("smtp down")}
	recorder := NewRecorder(db, alerter, logger.Nop())

	id, err := recorder.Record(ctx, Substitution{UserID: userID, WeeklyMenuID: menuID, Original: original, Substitute: substitute})
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if id == 0 {
		t.Error("Expected a substitution id")
	}
	if len(alerter.calls) != 1 || alerter.calls[0] != "Lasagna->Risotto" {
		t.Errorf("Expected one alert with both meal names, got %v", alerter.calls)
	}

	records, err := recorder.ListByMenu(ctx, menuID)
	if err != nil {
		t.Fatalf("ListByMenu failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("Expected 1 substitution, got %d", len(records))
	}
	rec := records[0]
	if rec.Status != StatusApproved || rec.ApprovedBy != nil || rec.ApprovedAt.IsZero() {
		t.Errorf("Expected self-approved substitution, got %+v", rec)
	}
	if rec.OriginalMealID != original.ID || rec.SubstituteMealID != substitute.ID {
		t.Errorf("Expected %d->%d, got %d->%d", original.ID, substitute.ID, rec.OriginalMealID, rec.SubstituteMealID)
	}
}
