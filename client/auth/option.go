package auth

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

type Option func(*Manager)

// WithHTTPClient sets http client used for refresh exchange
func WithHTTPClient(client *http.Client) Option {
	return func(m *Manager) {
		m.client = client
	}
}

// WithLogger sets logger
func WithLogger(logger *zap.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithClock sets time source used for expiry checks
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// WithExpiryMargin treats tokens expiring within margin as expired
func WithExpiryMargin(margin time.Duration) Option {
	return func(m *Manager) {
		m.margin = margin
	}
}
