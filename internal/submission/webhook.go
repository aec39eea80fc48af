package submission

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Dispatcher sends one payload to the remote collector
type Dispatcher interface {
	Dispatch(ctx context.Context, payload Payload) error
}

// WebhookDispatcher posts payloads as JSON to a fixed URL. The endpoint's
// response is never inspected: only failing to send is an error.
type WebhookDispatcher struct {
	url    string
	client *http.Client
}

// NewWebhookDispatcher creates a dispatcher for url. A nil client uses a
// client without timeout.
func NewWebhookDispatcher(url string, client *http.Client) *WebhookDispatcher {
	if client == nil {
		client = &http.Client{}
	}
	return &WebhookDispatcher{
		url:    url,
		client: client,
	}
}

// Dispatch performs exactly one POST carrying payload as the full body
func (d *WebhookDispatcher) Dispatch(ctx context.Context, payload Payload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send webhook request: %w", err)
	}
	resp.Body.Close()

	return nil
}
