package notification

import (
	"time"

	"menu-engine/internal/config"
	"menu-engine/internal/logger"
)

// NewDelivererFromConfig picks the delivery channel: the webhook when configured,
// then Telegram, else log-only.
func NewDelivererFromConfig(cfg *config.Config, log *logger.Logger) (Deliverer, error) {
	switch {
	case cfg.NotifyWebhookURL != "":
		timeout := time.Duration(cfg.DeliveryTimeoutSeconds) * time.Second
		return NewWebhookDeliverer(cfg.NotifyWebhookURL, cfg.NotifyWebhookSecret, timeout), nil
	case cfg.TelegramBotToken != "":
		return NewTelegramDeliverer(cfg.TelegramBotToken)
	default:
		log.Warn("No notification channel configured, deliveries are only logged")
		return NewLogDeliverer(log), nil
	}
}
