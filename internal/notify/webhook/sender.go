// Package webhook delivers settings-updated events via an HTTP webhook.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/pmorken/settings-hub/internal/notify"
)

const defaultTimeout = 10 * time.Second

// Limit how much of an error body we keep; sink responses are untrusted.
const maxErrorBody = 4 << 10

// Config holds webhook sender configuration.
type Config struct {
	URL     string        // sink endpoint, required
	Timeout time.Duration // request timeout
}

// Sender posts each event as a JSON body to the configured endpoint. Any
// response outside the 2xx range is a delivery failure; there are no retries
// and no batching across invocations.
type Sender struct {
	config     Config
	httpClient *http.Client
}

// NewSender creates a new webhook sender.
func NewSender(config Config) *Sender {
	if config.Timeout == 0 {
		config.Timeout = defaultTimeout
	}

	return &Sender{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// Send delivers one event to the sink.
func (s *Sender) Send(ctx context.Context, event notify.SettingsUpdatedEvent) error {
	start := time.Now()
	err := s.send(ctx, event)
	if err != nil {
		notify.RecordEventSent("error", time.Since(start))
		return err
	}
	notify.RecordEventSent("ok", time.Since(start))
	return nil
}

func (s *Sender) send(ctx context.Context, event notify.SettingsUpdatedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	return s.handleResponse(resp, event.ID)
}

func (s *Sender) handleResponse(resp *http.Response, eventID string) error {
	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		slog.Debug("event delivered", "event_id", eventID, "url", maskURL(s.config.URL))
		return nil
	}

	return &StatusError{
		Code: resp.StatusCode,
		Body: string(respBody),
	}
}

// maskURL hides part of the URL for logging.
func maskURL(url string) string {
	if len(url) > 40 {
		return url[:20] + "..." + url[len(url)-10:]
	}
	return url
}

// StatusError indicates the sink answered with a non-success status.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("webhook status %d: %s", e.Code, e.Body)
	}
	return fmt.Sprintf("webhook status %d", e.Code)
}
