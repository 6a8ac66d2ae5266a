package generator

import (
	"database/sql"

	"menu-engine/internal/catalog"
	"menu-engine/internal/logger"
	"menu-engine/internal/menu"
	"menu-engine/internal/metrics"
	"menu-engine/internal/notification"
	"menu-engine/internal/nutrition"
	"menu-engine/internal/stock"
	"menu-engine/internal/subscription"
)

// NewRunnerFromDB wires every repository and service of the batch on one database.
func NewRunnerFromDB(d *sql.DB, deliverer notification.Deliverer, log *logger.Logger) *Runner {
	catalogRepo := catalog.NewRepository(d)
	menuRepo := menu.NewRepository(d)

	dispatcher := notification.NewDispatcher(notification.NewStore(d), deliverer, menuRepo, log)
	oracle := stock.NewOracle(catalogRepo, log)
	finder := stock.NewFinder(catalogRepo, oracle, log)
	recorder := stock.NewRecorder(d, dispatcher, log)

	assigner := NewDayAssigner(catalogRepo, menuRepo, oracle, finder, recorder, log)
	orchestrator := NewOrchestrator(menuRepo, nutrition.NewRepository(d), assigner, dispatcher, log)

	return NewRunner(subscription.NewRepository(d), orchestrator, dispatcher, metrics.NewStore(d), log)
}
