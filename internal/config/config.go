package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds the configuration for the application.
type Config struct {
	CronSecret         string
	DatabasePath       string
	Port               string
	Environment        string
	AllowManualTrigger bool
	LogMode            string

	// Notification delivery (all optional, log-only delivery when empty)
	NotifyWebhookURL       string
	NotifyWebhookSecret    string
	TelegramBotToken       string
	DeliveryTimeoutSeconds int

	// Origins allowed to call the manual trigger from a browser (comma separated)
	CORSAllowedOrigins []string

	// Tracing
	OtelEnabled     bool
	OtelEndpoint    string
	OtelInsecure    bool
	OtelSampleRatio float64
}

// NewFromEnv creates a new Config object from environment variables.
func NewFromEnv() (*Config, error) {
	cronSecret := os.Getenv("CRON_SECRET")
	if cronSecret == "" {
		return nil, fmt.Errorf("CRON_SECRET environment variable not set")
	}

	webhookURL := strings.TrimSpace(os.Getenv("NOTIFY_WEBHOOK_URL"))
	webhookSecret := os.Getenv("NOTIFY_WEBHOOK_SECRET")
	if webhookURL != "" && webhookSecret == "" {
		return nil, fmt.Errorf("NOTIFY_WEBHOOK_SECRET environment variable not set")
	}

	environment := getEnv("ENVIRONMENT", "development")

	return &Config{
		CronSecret:             cronSecret,
		DatabasePath:           getEnv("DATABASE_PATH", "data/menus.db"),
		Port:                   getEnv("PORT", "8080"),
		Environment:            environment,
		AllowManualTrigger:     os.Getenv("ALLOW_MANUAL_TRIGGER") == "true",
		LogMode:                getEnv("LOG_MODE", environment),
		NotifyWebhookURL:       webhookURL,
		NotifyWebhookSecret:    webhookSecret,
		TelegramBotToken:       os.Getenv("TELEGRAM_BOT_TOKEN"),
		DeliveryTimeoutSeconds: getInt("DELIVERY_TIMEOUT_SECONDS", 10),
		CORSAllowedOrigins:     getList("CORS_ALLOWED_ORIGINS"),
		OtelEnabled:            getBool("OTEL_ENABLED"),
		OtelEndpoint:           strings.TrimSpace(os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")),
		OtelInsecure:           getBool("OTEL_EXPORTER_OTLP_INSECURE"),
		OtelSampleRatio:        getRatio("OTEL_SAMPLER_RATIO", 1),
	}, nil
}

// IsProduction reports whether the service runs with ENVIRONMENT=production.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil || i <= 0 {
		return def
	}
	return i
}

func getBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

func getList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// getRatio reads a float clamped to [0, 1].
func getRatio(key string, def float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return max(0, min(1, f))
}
