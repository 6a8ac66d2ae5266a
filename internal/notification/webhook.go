package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const webhookAudience = "weekly-menus"

// WebhookDeliverer POSTs deliveries as JSON to an endpoint, authenticated
// with a short-lived HS256 bearer token.
type WebhookDeliverer struct {
	httpClient *http.Client
	url        string
	secret     []byte
}

type webhookPayload struct {
	Delivery
	Name    string `json:"name,omitempty"`
	Message string `json:"message"`
}

// NewWebhookDeliverer creates a new WebhookDeliverer.
func NewWebhookDeliverer(url, secret string, timeout time.Duration) *WebhookDeliverer {
	return &WebhookDeliverer{
		httpClient: &http.Client{Timeout: timeout},
		url:        url,
		secret:     []byte(secret),
	}
}

func (w *WebhookDeliverer) Channel() string { return "webhook" }

// Deliver sends one delivery. Any non-2xx status is an error.
func (w *WebhookDeliverer) Deliver(ctx context.Context, to Recipient, d Delivery) error {
	token, err := w.createToken(to.UserID)
	if err != nil {
		return fmt.Errorf("failed to create delivery token: %w", err)
	}

	body, err := json.Marshal(webhookPayload{Delivery: d, Name: to.Name, Message: d.Text(to.Name)})
	if err != nil {
		return fmt.Errorf("failed to marshal delivery: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("delivery endpoint error: status %d", resp.StatusCode)
	}
	return nil
}

// createToken generates a short-lived JWT identifying the recipient.
func (w *WebhookDeliverer) createToken(userID int64) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		Audience:  jwt.ClaimStrings{webhookAudience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(5 * time.Minute)),
	})
	return token.SignedString(w.secret)
}
