package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Notification is one message addressed to all subscribers of a channel.
type Notification struct {
	Channel  string            `json:"channel"`
	Message  string            `json:"message"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Dispatcher delivers notifications to subscribers. Delivery is asynchronous
// on the gateway side; Send only confirms the gateway accepted the message.
type Dispatcher interface {
	Send(ctx context.Context, n Notification) error
}

// NewDispatcher creates a Dispatcher for the configured gateway. When no
// endpoint is configured, a no-op dispatcher is returned so callers never
// need to special-case disabled push.
func NewDispatcher(cfg Config) Dispatcher {
	if !cfg.IsEnabled() {
		return nopDispatcher{}
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 10
	}

	return &httpDispatcher{
		endpoint: cfg.Endpoint,
		apiKey:   cfg.ApiKey,
		http: &http.Client{
			Timeout: time.Duration(timeout) * time.Second,
		},
	}
}

// httpDispatcher POSTs notifications to an HTTP push gateway.
type httpDispatcher struct {
	endpoint string
	apiKey   string
	http     *http.Client
}

func (d *httpDispatcher) Send(ctx context.Context, n Notification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to encode notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if d.apiKey != "" {
		req.Header.Set("X-Api-Key", d.apiKey)
	}

	resp, err := d.http.Do(req)
	if err != nil {
		return fmt.Errorf("push dispatch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("push gateway returned status %d", resp.StatusCode)
	}

	return nil
}

type nopDispatcher struct{}

func (nopDispatcher) Send(ctx context.Context, n Notification) error {
	return nil
}
