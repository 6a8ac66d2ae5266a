package stock

import (
	"context"
	"errors"

	"menu-engine/internal/catalog"
	"menu-engine/internal/logger"
)

// StockStatus is the outcome of a stock lookup.
type StockStatus int

const (
	// StatusUnknown means there was no stock row or it could not be read.
	// It is treated as available so generation is never blocked on missing inventory.
	StatusUnknown StockStatus = iota
	StatusAvailable
	StatusOutOfStock
)

func (s StockStatus) String() string {
	switch s {
	case StatusAvailable:
		return "available"
	case StatusOutOfStock:
		return "out_of_stock"
	default:
		return "unknown"
	}
}

// Servable reports whether a meal with this status may be put on a menu.
func (s StockStatus) Servable() bool {
	return s != StatusOutOfStock
}

type stockReader interface {
	GetStock(ctx context.Context, mealID int64) (catalog.MealStock, error)
}

// Oracle answers whether a meal currently has inventory.
type Oracle struct {
	stock stockReader
	log   *logger.Logger
}

// NewOracle creates a new Oracle.
func NewOracle(stock stockReader, log *logger.Logger) *Oracle {
	return &Oracle{stock: stock, log: log.With("component", "StockOracle")}
}

// Check returns the stock status of a meal. Storage errors degrade to StatusUnknown.
func (o *Oracle) Check(ctx context.Context, mealID int64) StockStatus {
	s, err := o.stock.GetStock(ctx, mealID)
	if err != nil {
		if !errors.Is(err, catalog.ErrNoStockRecord) {
			o.log.Warn("Stock lookup failed, assuming available", "meal_id", mealID, "error", err)
		}
		return StatusUnknown
	}
	if s.InStock() {
		return StatusAvailable
	}
	return StatusOutOfStock
}

// HasStock is Check reduced to a yes/no answer.
func (o *Oracle) HasStock(ctx context.Context, mealID int64) bool {
	return o.Check(ctx, mealID).Servable()
}
