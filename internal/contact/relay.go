package contact

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/ratelimit"
	"resty.dev/v3"
)

var ErrRelayRejected = errors.New("contact: relay rejected submission")

// Relay delivers a submission to whoever reads the intake mails.
type Relay interface {
	Deliver(ctx context.Context, payload Payload) error
}

type RelayConfig struct {
	URL     string
	Timeout time.Duration
	// RequestsPerSecond throttles outbound posts; zero or less means unlimited.
	RequestsPerSecond int
}

// HTTPRelay posts submissions as JSON to a form relay endpoint. It makes
// exactly one attempt per delivery.
type HTTPRelay struct {
	rl     ratelimit.Limiter
	url    string
	client *resty.Client
}

func NewHTTPRelay(cfg RelayConfig) *HTTPRelay {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	rl := ratelimit.NewUnlimited()
	if cfg.RequestsPerSecond > 0 {
		rl = ratelimit.New(cfg.RequestsPerSecond)
	}

	return &HTTPRelay{
		rl:     rl,
		url:    cfg.URL,
		client: client,
	}
}

// Deliver posts the payload. Any 2xx status is success; the response body is
// not inspected.
func (r *HTTPRelay) Deliver(ctx context.Context, payload Payload) error {
	if r.url == "" {
		return fmt.Errorf("contact relay: no url configured")
	}

	r.rl.Take()

	resp, err := r.client.R().
		SetContext(ctx).
		SetBody(payload).
		Post(r.url)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("contact relay: request cancelled: %w", ctx.Err())
		}
		return fmt.Errorf("contact relay: %w", err)
	}

	if !resp.IsSuccess() {
		return fmt.Errorf("%w: status %d", ErrRelayRejected, resp.StatusCode())
	}
	return nil
}

func (r *HTTPRelay) Close() error {
	return r.client.Close()
}
