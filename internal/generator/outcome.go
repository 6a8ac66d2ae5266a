package generator

import (
	"encoding/json"

	"menu-engine/internal/notification"
)

// Outcome is the per-target result of a batch: Generated, Skipped or Failed.
type Outcome interface {
	isOutcome()
}

// Generated means a fresh 7-day menu was persisted for the target.
type Generated struct {
	UserID         int64
	SubscriptionID int64
	WeeklyMenuID   int64
	WeekStart      string
	WeekEnd        string
	IsGroupMember  bool
}

// Skipped means the target already had a menu for the week.
type Skipped struct {
	UserID         int64
	SubscriptionID int64
	Reason         string
}

// Failed means the target could not be generated. The batch carried on.
type Failed struct {
	UserID         int64
	SubscriptionID int64
	Err            error
}

func (Generated) isOutcome() {}
func (Skipped) isOutcome()   {}
func (Failed) isOutcome()    {}

func (g Generated) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		UserID        int64  `json:"user_id"`
		WeeklyMenuID  int64  `json:"weekly_menu_id"`
		WeekStartDate string `json:"week_start_date"`
		Status        string `json:"status"`
		IsGroupMember bool   `json:"is_group_member"`
	}{g.UserID, g.WeeklyMenuID, g.WeekStart, "generated", g.IsGroupMember})
}

func (s Skipped) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		UserID         int64  `json:"user_id"`
		SubscriptionID int64  `json:"subscription_id"`
		Status         string `json:"status"`
		Reason         string `json:"reason"`
	}{s.UserID, s.SubscriptionID, "skipped", s.Reason})
}

func (f Failed) MarshalJSON() ([]byte, error) {
	msg := ""
	if f.Err != nil {
		msg = f.Err.Error()
	}
	return json.Marshal(struct {
		SubscriptionID int64  `json:"subscription_id"`
		UserID         int64  `json:"user_id"`
		Error          string `json:"error"`
	}{f.SubscriptionID, f.UserID, msg})
}

// BatchResult accumulates outcomes in target order.
type BatchResult struct {
	Outcomes []Outcome
}

// Add appends one outcome.
func (b *BatchResult) Add(o Outcome) {
	b.Outcomes = append(b.Outcomes, o)
}

// Generated returns the successful outcomes.
func (b *BatchResult) Generated() []Generated {
	var out []Generated
	for _, o := range b.Outcomes {
		if g, ok := o.(Generated); ok {
			out = append(out, g)
		}
	}
	return out
}

// Counts tallies the outcomes by kind.
func (b *BatchResult) Counts() (generated, skipped, failed int) {
	for _, o := range b.Outcomes {
		switch o.(type) {
		case Generated:
			generated++
		case Skipped:
			skipped++
		case Failed:
			failed++
		}
	}
	return generated, skipped, failed
}

// Deliveries turns every generated menu into one outbound notification,
// so group members sharing a subscription are each notified.
func (b *BatchResult) Deliveries() []notification.Delivery {
	generated := b.Generated()
	deliveries := make([]notification.Delivery, 0, len(generated))
	for _, g := range generated {
		deliveries = append(deliveries, notification.Delivery{
			UserID:        g.UserID,
			WeeklyMenuID:  g.WeeklyMenuID,
			WeekStart:     g.WeekStart,
			WeekEnd:       g.WeekEnd,
			IsGroupMember: g.IsGroupMember,
		})
	}
	return deliveries
}
