package notification

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	notificationdb "menu-engine/internal/notification/notification_db"
)

const (
	TypeWeeklyMenu        = "weekly_menu"
	TypeStockSubstitution = "stock_substitution"
)

// Entry is one in-app notification log row.
type Entry struct {
	ID          int64
	UserID      int64
	Type        string
	Title       string
	Message     string
	IsMandatory bool
	IsRead      bool
}

// Recipient is the contact data needed to deliver a notification to a user.
type Recipient struct {
	UserID         int64
	Name           string
	TelegramChatID int64 // zero when the user never linked a chat
}

// Store reads users and nutritionist assignments and writes notification logs.
type Store struct {
	queries *notificationdb.Queries
	db      *sql.DB
}

// NewStore creates a new Store.
func NewStore(d *sql.DB) *Store {
	return &Store{
		queries: notificationdb.New(d),
		db:      d,
	}
}

// Log writes a notification log entry and returns its id.
func (s *Store) Log(ctx context.Context, e Entry) (int64, error) {
	id, err := s.queries.InsertNotificationLog(ctx, notificationdb.InsertNotificationLogParams{
		UserID:      e.UserID,
		Type:        e.Type,
		Title:       e.Title,
		Message:     e.Message,
		IsMandatory: e.IsMandatory,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to log %s notification for user %d: %w", e.Type, e.UserID, err)
	}
	return id, nil
}

// ListByUser returns a user's notification log, oldest first.
func (s *Store) ListByUser(ctx context.Context, userID int64) ([]Entry, error) {
	rows, err := s.queries.ListNotificationLogsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications for user %d: %w", userID, err)
	}
	entries := make([]Entry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, Entry{
			ID:          r.ID,
			UserID:      r.UserID,
			Type:        r.Type,
			Title:       r.Title,
			Message:     r.Message,
			IsMandatory: r.IsMandatory,
			IsRead:      r.IsRead,
		})
	}
	return entries, nil
}

// AssignedNutritionist returns the active nutritionist of a client. ok is false when unassigned.
func (s *Store) AssignedNutritionist(ctx context.Context, clientID int64) (id int64, ok bool, err error) {
	id, err = s.queries.GetActiveNutritionistForClient(ctx, clientID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to look up nutritionist of user %d: %w", clientID, err)
	}
	return id, true, nil
}

// Nutritionists lists every nutritionist-role user.
func (s *Store) Nutritionists(ctx context.Context) ([]int64, error) {
	ids, err := s.queries.ListNutritionists(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list nutritionists: %w", err)
	}
	return ids, nil
}

// Recipient loads the delivery contact of a user.
func (s *Store) Recipient(ctx context.Context, userID int64) (Recipient, error) {
	u, err := s.queries.GetUser(ctx, userID)
	if err != nil {
		return Recipient{}, fmt.Errorf("failed to load user %d: %w", userID, err)
	}
	return Recipient{UserID: u.ID, Name: u.Name, TelegramChatID: u.TelegramChatID.Int64}, nil
}
