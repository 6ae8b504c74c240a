// Package notify is the outbound phone-message side channel. Messages are
// composed as free text and handed to an external messaging capability;
// delivery is fire-and-forget and never tracked in the data model.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

// Messenger sends a free-text message to a phone number
type Messenger interface {
	Send(ctx context.Context, phone, message string) error
}

// Config holds the webhook messenger configuration
type Config struct {
	WebhookURL string
	APIKey     string
	Timeout    time.Duration
}

// WebhookMessenger posts messages to an external messaging webhook
type WebhookMessenger struct {
	config Config
	client *http.Client
}

// NewWebhookMessenger creates a messenger backed by an HTTP webhook
func NewWebhookMessenger(config Config) *WebhookMessenger {
	if config.Timeout <= 0 {
		config.Timeout = 10 * time.Second
	}
	return &WebhookMessenger{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
	}
}

type webhookPayload struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// Send posts the message to the configured webhook
func (m *WebhookMessenger) Send(ctx context.Context, phone, message string) error {
	body, err := json.Marshal(webhookPayload{Phone: phone, Message: message})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.config.WebhookURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if m.config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+m.config.APIKey)
	}

	resp, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("messaging webhook returned status %d", resp.StatusCode)
	}
	return nil
}

// NullMessenger discards messages. Used when no messaging webhook is
// configured so callers never have to branch.
type NullMessenger struct{}

// NewNullMessenger creates a messenger that drops everything
func NewNullMessenger() *NullMessenger {
	return &NullMessenger{}
}

// Send logs and discards the message
func (m *NullMessenger) Send(ctx context.Context, phone, message string) error {
	log.Printf("notify: no messenger configured, dropping message to %s", phone)
	return nil
}
