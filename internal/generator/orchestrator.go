package generator

import (
	"context"
	"errors"
	"fmt"

	"menu-engine/internal/logger"
	"menu-engine/internal/menu"
	"menu-engine/internal/nutrition"
	"menu-engine/internal/subscription"
	"menu-engine/internal/week"
)

const (
	reasonAlreadyExists   = "already exists"
	reasonConcurrentWrite = "already exists (created by a concurrent run)"
)

type menuStore interface {
	FindByUserWeek(ctx context.Context, userID int64, weekStart string) (*menu.WeeklyMenu, error)
	Create(ctx context.Context, m menu.NewMenu) (int64, error)
	AddDay(ctx context.Context, menuID int64, day menu.Weekday, date string) (int64, error)
	Delete(ctx context.Context, menuID int64) error
}

type planSource interface {
	ActivePlanForUser(ctx context.Context, userID int64) (*nutrition.Plan, error)
}

type completionNotifier interface {
	GenerationComplete(ctx context.Context, userID int64, weekStart string) error
}

// Orchestrator builds the weekly menu of a single target.
type Orchestrator struct {
	menus    menuStore
	plans    planSource
	assigner *DayAssigner
	notifier completionNotifier
	log      *logger.Logger
}

// NewOrchestrator creates a new Orchestrator.
func NewOrchestrator(menus menuStore, plans planSource, assigner *DayAssigner, notifier completionNotifier, log *logger.Logger) *Orchestrator {
	return &Orchestrator{
		menus:    menus,
		plans:    plans,
		assigner: assigner,
		notifier: notifier,
		log:      log.With("component", "MenuOrchestrator"),
	}
}

// Generate produces the menu of target for window w. It never returns an error:
// every failure is captured in a Failed outcome.
func (o *Orchestrator) Generate(ctx context.Context, target subscription.GenerationTarget, w week.Window, force bool) Outcome {
	log := o.log.With("user_id", target.UserID, "subscription_id", target.SubscriptionID)
	weekStart := w.WeekStart()

	failed := func(err error) Outcome {
		log.Error("Menu generation failed", "error", err)
		return Failed{UserID: target.UserID, SubscriptionID: target.SubscriptionID, Err: err}
	}
	skipped := func(reason string) Outcome {
		log.Info("Skipping target", "reason", reason, "week_start", weekStart)
		return Skipped{UserID: target.UserID, SubscriptionID: target.SubscriptionID, Reason: reason}
	}

	existing, err := o.menus.FindByUserWeek(ctx, target.UserID, weekStart)
	if err != nil {
		return failed(err)
	}
	if existing != nil {
		if !force {
			return skipped(reasonAlreadyExists)
		}
		if err := o.menus.Delete(ctx, existing.ID); err != nil {
			return failed(fmt.Errorf("failed to remove menu %d for regeneration: %w", existing.ID, err))
		}
		log.Info("Removed existing menu for regeneration", "weekly_menu_id", existing.ID)
	}

	plan, err := o.plans.ActivePlanForUser(ctx, target.UserID)
	if err != nil {
		return failed(err)
	}

	menuID, err := o.menus.Create(ctx, menu.NewMenu{
		UserID:         target.UserID,
		SubscriptionID: target.SubscriptionID,
		WeekStart:      weekStart,
		WeekEnd:        w.WeekEnd(),
	})
	if errors.Is(err, menu.ErrAlreadyGenerated) {
		return skipped(reasonConcurrentWrite)
	}
	if err != nil {
		return failed(err)
	}

	if err := o.fillDays(ctx, target, w, menuID, plan); err != nil {
		// Leave no half-built menu behind so the next run starts clean.
		if delErr := o.menus.Delete(context.WithoutCancel(ctx), menuID); delErr != nil {
			log.Error("Failed to remove partial menu", "weekly_menu_id", menuID, "error", delErr)
		}
		return failed(err)
	}

	if err := o.notifier.GenerationComplete(ctx, target.UserID, weekStart); err != nil {
		log.Warn("Failed to log menu-ready notification", "weekly_menu_id", menuID, "error", err)
	}

	log.Info("Weekly menu generated", "weekly_menu_id", menuID, "week_start", weekStart, "plan", plan != nil)
	return Generated{
		UserID:         target.UserID,
		SubscriptionID: target.SubscriptionID,
		WeeklyMenuID:   menuID,
		WeekStart:      weekStart,
		WeekEnd:        w.WeekEnd(),
		IsGroupMember:  target.IsGroupMember,
	}
}

func (o *Orchestrator) fillDays(ctx context.Context, target subscription.GenerationTarget, w week.Window, menuID int64, plan *nutrition.Plan) error {
	mealsPerDay := target.MealsPerDay()
	for _, day := range menu.Weekdays() {
		date := w.Date(int(day)).Format(week.DateLayout)
		dayID, err := o.menus.AddDay(ctx, menuID, day, date)
		if err != nil {
			return err
		}
		if _, err := o.assigner.AssignDay(ctx, DayInput{
			UserID:       target.UserID,
			WeeklyMenuID: menuID,
			DayID:        dayID,
			Day:          day,
			Date:         date,
			Plan:         plan,
			MealsPerDay:  mealsPerDay,
		}); err != nil {
			return fmt.Errorf("failed to assign meals for %s: %w", day, err)
		}
	}
	return nil
}
