package service

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

const webhookTimeout = 10 * time.Second

// WebhookManager posts event notifications to registered URLs. Delivery is
// best-effort: failures are logged and never propagate to the caller.
type WebhookManager struct {
	webhooks map[string][]string
	client   *http.Client
}

type webhookPayload struct {
	Event      string `json:"event"`
	DocumentID string `json:"document_id"`
	Data       any    `json:"data"`
}

// NewWebhookManager builds a manager from the event -> URLs config mapping
func NewWebhookManager(webhooks map[string][]string) *WebhookManager {
	if webhooks == nil {
		webhooks = make(map[string][]string)
	}
	return &WebhookManager{
		webhooks: webhooks,
		client:   &http.Client{Timeout: webhookTimeout},
	}
}

// Trigger notifies every URL registered for the event
func (m *WebhookManager) Trigger(ctx context.Context, event, documentID string, data any) {
	urls := m.webhooks[event]
	if len(urls) == 0 {
		return
	}

	body, err := json.Marshal(webhookPayload{
		Event:      event,
		DocumentID: documentID,
		Data:       data,
	})
	if err != nil {
		slog.Error("webhook payload marshal failed", "event", event, "error", err)
		return
	}

	for _, url := range urls {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			slog.Error("webhook request failed", "event", event, "url", url, "error", err)
			continue
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := m.client.Do(req)
		if err != nil {
			slog.Error("webhook delivery failed", "event", event, "url", url, "error", err)
			continue
		}
		resp.Body.Close()

		slog.Debug("webhook delivered", "event", event, "url", url, "status", resp.StatusCode)
	}
}
