package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/Renal37/laundry-service/internal/logger"
)

// ErrUnavailable is returned while the breaker refuses to call the webhook.
var ErrUnavailable = errors.New("notification channel is unavailable")

// Sender delivers a rendered message to staff.
type Sender interface {
	Send(ctx context.Context, message string) error
}

// LogSender writes messages to the service log. It is used when no webhook
// is configured.
type LogSender struct{}

func (LogSender) Send(_ context.Context, message string) error {
	logger.Log.Info("order notification", zap.String("message", message))
	return nil
}

type webhookPayload struct {
	Text string `json:"text"`
}

// WebhookSender posts {"text": message} to a chat webhook behind a circuit breaker.
type WebhookSender struct {
	url    string
	client *http.Client
	cb     *gobreaker.CircuitBreaker
}

func NewWebhookSender(url string, client *http.Client) *WebhookSender {
	if client == nil {
		client = http.DefaultClient
	}

	settings := gobreaker.Settings{
		Name:        "NotificationWebhook",
		MaxRequests: 3,
		Interval:    5 * time.Second,
		Timeout:     10 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 5 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Log.Warn(
				"circuit breaker state changed",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	}

	return &WebhookSender{
		url:    url,
		client: client,
		cb:     gobreaker.NewCircuitBreaker(settings),
	}
}

func (s *WebhookSender) Send(ctx context.Context, message string) error {
	_, err := executeWithBreaker(s.cb, func() (int, error) {
		return s.post(ctx, message)
	})

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	return err
}

func (s *WebhookSender) post(ctx context.Context, message string) (int, error) {
	body, err := json.Marshal(webhookPayload{Text: message})
	if err != nil {
		return 0, fmt.Errorf("failed to encode webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to call webhook: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusMultipleChoices {
		return resp.StatusCode, fmt.Errorf("webhook responded with status %d", resp.StatusCode)
	}

	return resp.StatusCode, nil
}

func executeWithBreaker[T any](cb *gobreaker.CircuitBreaker, fn func() (T, error)) (T, error) {
	res, err := cb.Execute(func() (interface{}, error) {
		return fn()
	})

	if err != nil {
		return *new(T), err
	}

	return res.(T), nil
}
