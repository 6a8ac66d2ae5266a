package subscription

import (
	"context"
	"database/sql"
	"fmt"

	subscriptiondb "menu-engine/internal/subscription/subscription_db"
)

// Subscription is an active meal subscription owned by one user or one group.
type Subscription struct {
	ID          int64
	UserID      int64 // zero for group subscriptions
	GroupID     int64 // zero for individual subscriptions
	MealsPerDay int   // <= 0 means unset
	Members     []GroupMember
}

// IsGroup reports whether the subscription is group-backed.
func (s Subscription) IsGroup() bool {
	return s.GroupID != 0
}

// GroupMember is one person sharing a group subscription.
type GroupMember struct {
	ID           int64
	UserID       int64
	MealsPerWeek int // <= 0 means "use the subscription quota"
	Removed      bool
}

// Repository reads active subscriptions and their group membership.
type Repository struct {
	queries *subscriptiondb.Queries
	db      *sql.DB
}

// NewRepository creates a new Repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{
		queries: subscriptiondb.New(d),
		db:      d,
	}
}

// ListActive returns every active subscription, with members loaded for group subscriptions.
func (r *Repository) ListActive(ctx context.Context) ([]Subscription, error) {
	rows, err := r.queries.ListActiveSubscriptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active subscriptions: %w", err)
	}

	subs := make([]Subscription, 0, len(rows))
	for _, row := range rows {
		sub := Subscription{
			ID:          row.ID,
			UserID:      row.UserID.Int64,
			GroupID:     row.GroupID.Int64,
			MealsPerDay: int(row.MealsPerDay.Int64),
		}
		if sub.IsGroup() {
			members, err := r.queries.ListGroupMembers(ctx, sub.GroupID)
			if err != nil {
				return nil, fmt.Errorf("failed to list members of group %d: %w", sub.GroupID, err)
			}
			for _, m := range members {
				sub.Members = append(sub.Members, GroupMember{
					ID:           m.ID,
					UserID:       m.UserID,
					MealsPerWeek: int(m.MealsPerWeek.Int64),
					Removed:      m.Removed,
				})
			}
		}
		subs = append(subs, sub)
	}
	return subs, nil
}
