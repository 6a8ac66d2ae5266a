package notification

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// ErrNoTelegramChat is returned for recipients that never linked a Telegram chat.
var ErrNoTelegramChat = errors.New("recipient has no telegram chat")

type messageSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramDeliverer sends deliveries as bot messages.
type TelegramDeliverer struct {
	api messageSender
}

// NewTelegramDeliverer authorizes the bot token and returns a deliverer using it.
func NewTelegramDeliverer(token string) (*TelegramDeliverer, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram api: %w", err)
	}
	return &TelegramDeliverer{api: api}, nil
}

func (t *TelegramDeliverer) Channel() string { return "telegram" }

func (t *TelegramDeliverer) Deliver(_ context.Context, to Recipient, d Delivery) error {
	if to.TelegramChatID == 0 {
		return ErrNoTelegramChat
	}
	msg := tgbotapi.NewMessage(to.TelegramChatID, d.Text(to.Name))
	if _, err := t.api.Send(msg); err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}
	return nil
}
