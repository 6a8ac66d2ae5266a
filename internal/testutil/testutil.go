// Package testutil provides migrated throwaway SQLite databases and seed
// helpers for package tests.
package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"menu-engine/internal/database"
	"menu-engine/internal/logger"
)

// NewDB returns a migrated database living in the test's temp dir.
func NewDB(t *testing.T) *sql.DB {
	t.Helper()
	d, err := database.NewDB(filepath.Join(t.TempDir(), "menus.db"), logger.Nop())
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { d.Close() })
	return d.SQL
}

func insert(t *testing.T, db *sql.DB, query string, args ...any) int64 {
	t.Helper()
	res, err := db.Exec(query, args...)
	if err != nil {
		t.Fatalf("Seed insert failed: %v\n%s", err, query)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("Seed insert id failed: %v", err)
	}
	return id
}

func nullableInt(v int) any {
	if v <= 0 {
		return nil
	}
	return v
}

// CreateUser inserts a user with the given role ("client", "nutritionist", ...).
func CreateUser(t *testing.T, db *sql.DB, name, role string) int64 {
	t.Helper()
	return insert(t, db, `INSERT INTO users (name, role) VALUES (?, ?)`, name, role)
}

// LinkTelegram sets the telegram chat of a user.
func LinkTelegram(t *testing.T, db *sql.DB, userID, chatID int64) {
	t.Helper()
	if _, err := db.Exec(`UPDATE users SET telegram_chat_id = ? WHERE id = ?`, chatID, userID); err != nil {
		t.Fatalf("Failed to link telegram chat: %v", err)
	}
}

// MealSeed describes a catalog meal. The zero value is an available plan-eligible lunch.
type MealSeed struct {
	Name        string
	Type        string
	Calories    int
	Unavailable bool
	IsMenuItem  bool
}

// CreateMeal inserts a catalog meal.
func CreateMeal(t *testing.T, db *sql.DB, m MealSeed) int64 {
	t.Helper()
	if m.Type == "" {
		m.Type = "lunch"
	}
	if m.Name == "" {
		m.Name = m.Type + " meal"
	}
	return insert(t, db,
		`INSERT INTO meals (name, type, calories, available, is_menu_item) VALUES (?, ?, ?, ?, ?)`,
		m.Name, m.Type, m.Calories, !m.Unavailable, m.IsMenuItem)
}

// SetStock inserts or replaces the stock row of a meal.
func SetStock(t *testing.T, db *sql.DB, mealID int64, quantity int, outOfStock bool) {
	t.Helper()
	_, err := db.Exec(
		`INSERT OR REPLACE INTO meal_stock (meal_id, stock_quantity, is_out_of_stock) VALUES (?, ?, ?)`,
		mealID, quantity, outOfStock)
	if err != nil {
		t.Fatalf("Failed to set stock: %v", err)
	}
}

// CreateIndividualSubscription inserts an active subscription for one user.
// mealsPerDay <= 0 stores NULL.
func CreateIndividualSubscription(t *testing.T, db *sql.DB, userID int64, mealsPerDay int) int64 {
	t.Helper()
	return insert(t, db,
		`INSERT INTO subscriptions (user_id, meals_per_day, status) VALUES (?, ?, 'active')`,
		userID, nullableInt(mealsPerDay))
}

// CreateGroupSubscription inserts a group and its active subscription.
func CreateGroupSubscription(t *testing.T, db *sql.DB, name string, mealsPerDay int) (subscriptionID, groupID int64) {
	t.Helper()
	groupID = insert(t, db, `INSERT INTO subscription_groups (name) VALUES (?)`, name)
	subscriptionID = insert(t, db,
		`INSERT INTO subscriptions (group_id, meals_per_day, status) VALUES (?, ?, 'active')`,
		groupID, nullableInt(mealsPerDay))
	return subscriptionID, groupID
}

// AddGroupMember adds a member to a group. mealsPerWeek <= 0 stores NULL.
func AddGroupMember(t *testing.T, db *sql.DB, groupID, userID int64, mealsPerWeek int, removed bool) int64 {
	t.Helper()
	var removedAt any
	if removed {
		removedAt = "2026-01-01 00:00:00"
	}
	return insert(t, db,
		`INSERT INTO group_members (group_id, user_id, meals_per_week, removed_at) VALUES (?, ?, ?, ?)`,
		groupID, userID, nullableInt(mealsPerWeek), removedAt)
}

// PlanMealSeed is one meal of a plan day, in serving order.
type PlanMealSeed struct {
	MealID   int64
	Name     string
	Calories int
}

// CreatePlan inserts an active nutrition plan keyed by day number (1-7).
func CreatePlan(t *testing.T, db *sql.DB, userID int64, days map[int][]PlanMealSeed) int64 {
	t.Helper()
	planID := insert(t, db, `INSERT INTO nutrition_plans (user_id, name, status) VALUES (?, 'plan', 'active')`, userID)
	for dayNumber, meals := range days {
		dayID := insert(t, db, `INSERT INTO plan_days (plan_id, day_number) VALUES (?, ?)`, planID, dayNumber)
		for i, m := range meals {
			insert(t, db,
				`INSERT INTO plan_day_meals (plan_day_id, meal_id, meal_name, calories, order_index) VALUES (?, ?, ?, ?, ?)`,
				dayID, m.MealID, m.Name, m.Calories, i)
		}
	}
	return planID
}

// AssignNutritionist creates an active nutritionist-client assignment.
func AssignNutritionist(t *testing.T, db *sql.DB, nutritionistID, clientID int64) {
	t.Helper()
	insert(t, db,
		`INSERT INTO nutritionist_clients (nutritionist_id, client_id, status) VALUES (?, ?, 'active')`,
		nutritionistID, clientID)
}

// Count runs a COUNT(*) style query and returns the result.
func Count(t *testing.T, db *sql.DB, query string, args ...any) int {
	t.Helper()
	var n int
	if err := db.QueryRow(query, args...).Scan(&n); err != nil {
		t.Fatalf("Count query failed: %v\n%s", err, query)
	}
	return n
}
