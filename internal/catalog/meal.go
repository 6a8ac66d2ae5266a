package catalog

import "fmt"

// MealType is the closed set of meal slots a menu can serve.
type MealType string

const (
	MealTypeLunch  MealType = "lunch"
	MealTypeDinner MealType = "dinner"
)

// ParseMealType validates a stored type value.
func ParseMealType(s string) (MealType, error) {
	switch MealType(s) {
	case MealTypeLunch, MealTypeDinner:
		return MealType(s), nil
	default:
		return "", fmt.Errorf("unknown meal type %q", s)
	}
}

// Meal is a catalog entry.
type Meal struct {
	ID         int64    `json:"id"`
	Name       string   `json:"name"`
	Type       MealType `json:"type"`
	Calories   int      `json:"calories"`
	Available  bool     `json:"available"`
	IsMenuItem bool     `json:"is_menu_item"` // walk-in menu item, never plan-driven
}

// MealStock is the inventory row attached to a meal.
type MealStock struct {
	MealID        int64
	StockQuantity int
	IsOutOfStock  bool
}

// InStock reports whether the row allows serving the meal.
func (s MealStock) InStock() bool {
	return !s.IsOutOfStock && s.StockQuantity > 0
}
