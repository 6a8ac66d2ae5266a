package notification

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/golang-jwt/jwt/v5"

	"menu-engine/internal/config"
	"menu-engine/internal/logger"
	"menu-engine/internal/menu"
	"menu-engine/internal/testutil"
)

type fakeSender struct {
	sent []tgbotapi.MessageConfig
	err  error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if f.err != nil {
		return tgbotapi.Message{}, f.err
	}
	f.sent = append(f.sent, c.(tgbotapi.MessageConfig))
	return tgbotapi.Message{}, nil
}

type failingDeliverer struct {
	failFor int64
}

func (f failingDeliverer) Deliver(_ context.Context, to Recipient, _ Delivery) error {
	if to.UserID == f.failFor {
		return errors.New("endpoint down")
	}
	return nil
}

func (f failingDeliverer) Channel() string { return "fake" }

func TestSubstitutionAlert(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	store := NewStore(db)
	d := NewDispatcher(store, NewLogDeliverer(logger.Nop()), menu.NewRepository(db), logger.Nop())

	n1 := testutil.CreateUser(t, db, "Nina", "nutritionist")
	n2 := testutil.CreateUser(t, db, "Nuno", "nutritionist")
	assigned := testutil.CreateUser(t, db, "Ana", "client")
	unassigned := testutil.CreateUser(t, db, "Bia", "client")
	testutil.AssignNutritionist(t, db, n2, assigned)

	t.Run("AssignedNutritionistOnly", func(t *testing.T) {
		if err := d.SubstitutionAlert(ctx, assigned, 7, "Bowl", "Wrap"); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		entries, _ := store.ListByUser(ctx, n2)
		if len(entries) != 1 {
			t.Fatalf("Expected 1 alert for assigned nutritionist, got %d", len(entries))
		}
		e := entries[0]
		if e.Type != TypeStockSubstitution || e.IsMandatory || e.IsRead {
			t.Errorf("Unexpected entry: %+v", e)
		}
		if !strings.Contains(e.Message, "Bowl") || !strings.Contains(e.Message, "Wrap") {
			t.Errorf("Expected both meal names in message, got %q", e.Message)
		}
		if n := testutil.Count(t, db, `SELECT COUNT(*) FROM notification_logs WHERE user_id = ?`, n1); n != 0 {
			t.Errorf("Expected no alert for unassigned nutritionist, got %d", n)
		}
	})

	t.Run("BroadcastWhenUnassigned", func(t *testing.T) {
		if err := d.SubstitutionAlert(ctx, unassigned, 8, "Soup", "Stew"); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		for _, id := range []int64{n1, n2} {
			n := testutil.Count(t, db,
				`SELECT COUNT(*) FROM notification_logs WHERE user_id = ? AND message LIKE '%Stew%'`, id)
			if n != 1 {
				t.Errorf("Expected nutritionist %d to get the broadcast, got %d", id, n)
			}
		}
	})
}

func TestGenerationComplete(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	store := NewStore(db)
	d := NewDispatcher(store, NewLogDeliverer(logger.Nop()), menu.NewRepository(db), logger.Nop())
	userID := testutil.CreateUser(t, db, "Ana", "client")

	if err := d.GenerationComplete(ctx, userID, "2026-10-19"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	entries, _ := store.ListByUser(ctx, userID)
	if len(entries) != 1 || entries[0].Type != TypeWeeklyMenu || entries[0].IsMandatory {
		t.Fatalf("Unexpected entries: %+v", entries)
	}
}

func TestDeliverAll(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	menus := menu.NewRepository(db)

	ok := testutil.CreateUser(t, db, "Ana", "client")
	bad := testutil.CreateUser(t, db, "Bia", "client")
	okMenu, _ := menus.Create(ctx, menu.NewMenu{UserID: ok, WeekStart: "2026-10-19", WeekEnd: "2026-10-25"})
	badMenu, _ := menus.Create(ctx, menu.NewMenu{UserID: bad, WeekStart: "2026-10-19", WeekEnd: "2026-10-25"})

	d := NewDispatcher(NewStore(db), failingDeliverer{failFor: bad}, menus, logger.Nop())
	results, sent := d.DeliverAll(ctx, []Delivery{
		{UserID: ok, WeeklyMenuID: okMenu, WeekStart: "2026-10-19", WeekEnd: "2026-10-25"},
		{UserID: bad, WeeklyMenuID: badMenu, WeekStart: "2026-10-19", WeekEnd: "2026-10-25", IsGroupMember: true},
	})

	if sent != 1 || len(results) != 2 {
		t.Fatalf("Expected 1 sent of 2 results, got %d of %d", sent, len(results))
	}
	if !results[0].Success || results[0].Channel != "fake" {
		t.Errorf("Unexpected first result: %+v", results[0])
	}
	if results[1].Success || results[1].Error == "" {
		t.Errorf("Expected second delivery to fail, got %+v", results[1])
	}

	m, _ := menus.Get(ctx, okMenu)
	if !m.NotificationSent {
		t.Error("Expected delivered menu to be flagged")
	}
	m, _ = menus.Get(ctx, badMenu)
	if m.NotificationSent {
		t.Error("Expected failed menu to stay unflagged")
	}
}

func TestWebhookDeliverer(t *testing.T) {
	t.Run("SignedRequest", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				t.Errorf("Expected bearer token, got %q", auth)
			}
			claims := &jwt.RegisteredClaims{}
			_, err := jwt.ParseWithClaims(strings.TrimPrefix(auth, "Bearer "), claims, func(*jwt.Token) (any, error) {
				return []byte("s3cret"), nil
			}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithAudience(webhookAudience))
			if err != nil {
				t.Errorf("Expected valid token, got %v", err)
			}
			if claims.Subject != "42" {
				t.Errorf("Expected subject 42, got %q", claims.Subject)
			}
			w.WriteHeader(http.StatusAccepted)
		}))
		defer server.Close()

		w := NewWebhookDeliverer(server.URL, "s3cret", time.Second)
		err := w.Deliver(context.Background(), Recipient{UserID: 42, Name: "Ana"}, Delivery{UserID: 42, WeeklyMenuID: 1})
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
	})

	t.Run("ServerError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		w := NewWebhookDeliverer(server.URL, "s3cret", time.Second)
		if err := w.Deliver(context.Background(), Recipient{UserID: 1}, Delivery{UserID: 1}); err == nil {
			t.Fatal("Expected an error for non-2xx status code, got nil")
		}
	})
}

func TestTelegramDeliverer(t *testing.T) {
	t.Run("SendsToChat", func(t *testing.T) {
		sender := &fakeSender{}
		d := &TelegramDeliverer{api: sender}
		err := d.Deliver(context.Background(), Recipient{UserID: 1, Name: "Ana", TelegramChatID: 555},
			Delivery{WeekStart: "2026-10-19", WeekEnd: "2026-10-25"})
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if len(sender.sent) != 1 || sender.sent[0].ChatID != 555 {
			t.Fatalf("Expected one message to chat 555, got %+v", sender.sent)
		}
		if !strings.Contains(sender.sent[0].Text, "2026-10-19") {
			t.Errorf("Expected week in text, got %q", sender.sent[0].Text)
		}
	})

	t.Run("NoChat", func(t *testing.T) {
		d := &TelegramDeliverer{api: &fakeSender{}}
		err := d.Deliver(context.Background(), Recipient{UserID: 1}, Delivery{})
		if !errors.Is(err, ErrNoTelegramChat) {
			t.Fatalf("Expected ErrNoTelegramChat, got %v", err)
		}
	})
}

func TestNewDelivererFromConfig(t *testing.T) {
	d, err := NewDelivererFromConfig(&config.Config{}, logger.Nop())
	if err != nil || d.Channel() != "log" {
		t.Fatalf("Expected log channel, got %v (%v)", d, err)
	}

	d, err = NewDelivererFromConfig(&config.Config{
		NotifyWebhookURL:       "http://localhost/hook",
		NotifyWebhookSecret:    "s",
		TelegramBotToken:       "ignored",
		DeliveryTimeoutSeconds: 3,
	}, logger.Nop())
	if err != nil || d.Channel() != "webhook" {
		t.Fatalf("Expected webhook channel, got %v (%v)", d, err)
	}
}
