package notification

import (
	"context"
	"errors"
	"fmt"

	"menu-engine/internal/logger"
)

type menuMarker interface {
	MarkNotificationSent(ctx context.Context, menuID int64) error
}

// Result is the outcome of one post-batch delivery.
type Result struct {
	UserID       int64  `json:"user_id"`
	WeeklyMenuID int64  `json:"weekly_menu_id"`
	Channel      string `json:"channel"`
	Success      bool   `json:"success"`
	Error        string `json:"error,omitempty"`
}

// Dispatcher writes in-app notification logs and delivers post-batch messages.
type Dispatcher struct {
	store     *Store
	deliverer Deliverer
	menus     menuMarker
	log       *logger.Logger
}

// NewDispatcher creates a new Dispatcher.
func NewDispatcher(store *Store, deliverer Deliverer, menus menuMarker, log *logger.Logger) *Dispatcher {
	return &Dispatcher{
		store:     store,
		deliverer: deliverer,
		menus:     menus,
		log:       log.With("component", "NotificationDispatcher"),
	}
}

// GenerationComplete logs the "new weekly menu ready" entry for a user.
func (d *Dispatcher) GenerationComplete(ctx context.Context, userID int64, weekStart string) error {
	_, err := d.store.Log(ctx, Entry{
		UserID:  userID,
		Type:    TypeWeeklyMenu,
		Title:   "New weekly menu ready",
		Message: fmt.Sprintf("Your menu for the week starting %s has been generated.", weekStart),
	})
	return err
}

// SubstitutionAlert notifies the user's assigned nutritionist about an automatic
// substitution, or every nutritionist when the user has none.
func (d *Dispatcher) SubstitutionAlert(ctx context.Context, userID, weeklyMenuID int64, originalName, substituteName string) error {
	nutritionistID, ok, err := d.store.AssignedNutritionist(ctx, userID)
	if err != nil {
		return err
	}

	recipients := []int64{nutritionistID}
	if !ok {
		recipients, err = d.store.Nutritionists(ctx)
		if err != nil {
			return err
		}
	}
	if len(recipients) == 0 {
		d.log.Warn("No nutritionist to alert about substitution", "user_id", userID, "weekly_menu_id", weeklyMenuID)
		return nil
	}

	message := fmt.Sprintf("%s was out of stock and was replaced by %s in weekly menu %d of user %d.",
		originalName, substituteName, weeklyMenuID, userID)

	var errs []error
	for _, id := range recipients {
		if _, err := d.store.Log(ctx, Entry{
			UserID:  id,
			Type:    TypeStockSubstitution,
			Title:   "Automatic meal substitution",
			Message: message,
		}); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// DeliverAll sends one delivery per generated menu, group members included individually.
// Failures are reported per recipient and never touch menu data.
func (d *Dispatcher) DeliverAll(ctx context.Context, deliveries []Delivery) (results []Result, sent int) {
	results = make([]Result, 0, len(deliveries))
	for _, dl := range deliveries {
		res := Result{UserID: dl.UserID, WeeklyMenuID: dl.WeeklyMenuID, Channel: d.deliverer.Channel()}

		if err := d.deliver(ctx, dl); err != nil {
			d.log.Warn("Notification delivery failed", "user_id", dl.UserID, "weekly_menu_id", dl.WeeklyMenuID, "error", err)
			res.Error = err.Error()
			results = append(results, res)
			continue
		}

		res.Success = true
		sent++
		if err := d.menus.MarkNotificationSent(ctx, dl.WeeklyMenuID); err != nil {
			d.log.Warn("Failed to flag menu as notified", "weekly_menu_id", dl.WeeklyMenuID, "error", err)
		}
		results = append(results, res)
	}
	return results, sent
}

func (d *Dispatcher) deliver(ctx context.Context, dl Delivery) error {
	to, err := d.store.Recipient(ctx, dl.UserID)
	if err != nil {
		return err
	}
	return d.deliverer.Deliver(ctx, to, dl)
}
