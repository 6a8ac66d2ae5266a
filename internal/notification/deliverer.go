package notification

import (
	"context"
	"fmt"

	"menu-engine/internal/logger"
)

// Delivery is one outbound "your weekly menu is ready" message.
type Delivery struct {
	UserID        int64  `json:"user_id"`
	WeeklyMenuID  int64  `json:"weekly_menu_id"`
	WeekStart     string `json:"week_start"`
	WeekEnd       string `json:"week_end"`
	IsGroupMember bool   `json:"is_group_member"`
}

// Text renders the human readable body of a delivery.
func (d Delivery) Text(name string) string {
	greeting := "Hi"
	if name != "" {
		greeting = "Hi " + name
	}
	return fmt.Sprintf("%s! Your weekly menu for %s to %s is ready.", greeting, d.WeekStart, d.WeekEnd)
}

// Deliverer sends a delivery to one recipient over a single channel.
type Deliverer interface {
	Deliver(ctx context.Context, to Recipient, d Delivery) error
	Channel() string
}

// LogDeliverer only writes deliveries to the log. Used when no channel is configured.
type LogDeliverer struct {
	log *logger.Logger
}

// NewLogDeliverer creates a new LogDeliverer.
func NewLogDeliverer(log *logger.Logger) *LogDeliverer {
	return &LogDeliverer{log: log.With("component", "LogDeliverer")}
}

func (l *LogDeliverer) Deliver(_ context.Context, to Recipient, d Delivery) error {
	l.log.Info("Weekly menu notification",
		"user_id", to.UserID,
		"weekly_menu_id", d.WeeklyMenuID,
		"week_start", d.WeekStart,
		"is_group_member", d.IsGroupMember,
	)
	return nil
}

func (l *LogDeliverer) Channel() string { return "log" }
